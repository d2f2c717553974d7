package services

import (
	"mission-mischief/models"
)

// GatingState is the player's position in the unlock state machine.
type GatingState string

const (
	StateLockedPreFAFO     GatingState = "locked_pre_fafo"
	StateSetup             GatingState = "setup"
	StateBuyInPending      GatingState = "buyin_pending"
	StateUnlockedThrottled GatingState = "unlocked_throttled"
	StateUnlockedOpen      GatingState = "unlocked_open"
)

// Mascot thresholds on completed-mission count.
const (
	haloMissionCeiling = 5
	crownBuyInCount    = 3
)

// ProgressionService derives everything the UI shows from a profile.
// It holds no player state; every method is a function of (profile, catalog).
type ProgressionService struct {
	Catalog *Catalog
}

func NewProgressionService(catalog *Catalog) *ProgressionService {
	return &ProgressionService{Catalog: catalog}
}

// baseline substitutes an empty profile for nil so reads never fail.
func baseline(p *models.PlayerProfile) *models.PlayerProfile {
	if p == nil {
		return &models.PlayerProfile{}
	}
	return p
}

func (s *ProgressionService) completedSet(p *models.PlayerProfile) map[int]bool {
	done := make(map[int]bool, len(p.CompletedMissionIDs))
	for _, id := range p.CompletedMissionIDs {
		if _, ok := s.Catalog.ByID(id); ok {
			done[id] = true
		}
	}
	return done
}

// GatingState reports which unlock state the profile is in.
func (s *ProgressionService) GatingState(profile *models.PlayerProfile) GatingState {
	p := baseline(profile)
	if !p.FAFOCompleted {
		return StateLockedPreFAFO
	}
	done := s.completedSet(p)
	for _, id := range models.SetupMissionIDs {
		if id != models.BuyInSelectMissionID && !done[id] {
			return StateSetup
		}
	}
	if !done[models.BuyInSelectMissionID] {
		return StateBuyInPending
	}
	if s.isOpen(p) {
		return StateUnlockedOpen
	}
	return StateUnlockedThrottled
}

// isOpen: only an explicit "nothing" throttles. A missing choice opens the catalog.
func (s *ProgressionService) isOpen(p *models.PlayerProfile) bool {
	if len(p.CompletedBuyIns) > 0 {
		return true
	}
	return p.CurrentBuyIn != models.BuyInNothing
}

// AvailableMissions lists, in catalog order, the missions the player may submit now.
func (s *ProgressionService) AvailableMissions(profile *models.PlayerProfile) []models.Mission {
	p := baseline(profile)
	state := s.GatingState(p)

	switch state {
	case StateLockedPreFAFO:
		return []models.Mission{}
	case StateSetup, StateBuyInPending:
		out := make([]models.Mission, 0, len(models.SetupMissionIDs))
		for _, id := range models.SetupMissionIDs {
			if m, ok := s.Catalog.ByID(id); ok {
				out = append(out, m)
			}
		}
		return out
	}

	done := s.completedSet(p)
	nonTerminal := make([]models.Mission, 0, s.Catalog.Len())
	allDone := true
	for _, m := range s.Catalog.All() {
		if m.ID == models.FinishLineMissionID {
			continue
		}
		nonTerminal = append(nonTerminal, m)
		if !done[m.ID] {
			allDone = false
		}
	}

	var out []models.Mission
	if state == StateUnlockedThrottled {
		count := 0
		for id := range done {
			if id != models.FinishLineMissionID {
				count++
			}
		}
		limit := count + 1
		if limit > len(nonTerminal) {
			limit = len(nonTerminal)
		}
		out = append(out, nonTerminal[:limit]...)
	} else {
		out = nonTerminal
	}

	if allDone {
		if finish, ok := s.Catalog.ByID(models.FinishLineMissionID); ok {
			out = append(out, finish)
		}
	}
	return out
}

// IsAvailable reports whether mission id is in the available set.
func (s *ProgressionService) IsAvailable(profile *models.PlayerProfile, id int) bool {
	for _, m := range s.AvailableMissions(profile) {
		if m.ID == id {
			return true
		}
	}
	return false
}

// NextMission is the first available mission not yet completed.
func (s *ProgressionService) NextMission(profile *models.PlayerProfile) (models.Mission, bool) {
	p := baseline(profile)
	done := s.completedSet(p)
	for _, m := range s.AvailableMissions(p) {
		if !done[m.ID] {
			return m, true
		}
	}
	return models.Mission{}, false
}

// HasCrownOfChaos holds once all three real buy-in paths are completed.
func (s *ProgressionService) HasCrownOfChaos(profile *models.PlayerProfile) bool {
	p := baseline(profile)
	real := 0
	for _, id := range uniqueStrings(p.CompletedBuyIns) {
		if id != models.BuyInNothing {
			real++
		}
	}
	return real >= crownBuyInCount
}

// BuyInBadge is the artwork for the player's buy-in status, or "" for none.
func (s *ProgressionService) BuyInBadge(profile *models.PlayerProfile) string {
	p := baseline(profile)
	if s.HasCrownOfChaos(p) {
		return models.CrownBadge
	}
	if p.CurrentBuyIn == "" {
		return ""
	}
	b, ok := s.Catalog.BuyIn(p.CurrentBuyIn)
	if !ok {
		return ""
	}
	return b.Badge
}

// SpecialOverlay: cheater outranks bounty hunter.
func (s *ProgressionService) SpecialOverlay(profile *models.PlayerProfile) models.SpecialOverlay {
	p := baseline(profile)
	switch {
	case p.IsCheater:
		return models.OverlayCheater
	case p.BountyHunterCount > 0:
		return models.OverlayBountyHunter
	}
	return models.OverlayNone
}

// MascotExpression picks Mayhem's mood, first match wins.
func (s *ProgressionService) MascotExpression(profile *models.PlayerProfile) models.MascotExpression {
	p := baseline(profile)
	completed := len(s.completedSet(p))
	switch {
	case p.IsCheater:
		return models.MascotWorried
	case s.HasCrownOfChaos(p):
		return models.MascotExcited
	case p.BountyHunterCount > 0:
		return models.MascotVampire
	case completed == 0:
		return models.MascotBlankStare
	case completed < haloMissionCeiling:
		return models.MascotHalo
	}
	return models.MascotExcited
}

// AvailableBuyIns lists the buy-ins the selection mission may be submitted with.
// The opt-out disappears for good once any buy-in is completed.
func (s *ProgressionService) AvailableBuyIns(profile *models.PlayerProfile) []models.BuyIn {
	p := baseline(profile)
	var out []models.BuyIn
	for _, b := range s.Catalog.BuyIns() {
		if b.ID == models.BuyInNothing && len(p.CompletedBuyIns) > 0 {
			continue
		}
		out = append(out, b)
	}
	return out
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
