package services

import "mission-mischief/models"

// Snapshot is the read-only view handed to the UI layer.
type Snapshot struct {
	UserName       string                  `json:"user_name,omitempty"`
	UserHandle     string                  `json:"user_handle,omitempty"`
	State          GatingState             `json:"state"`
	Available      []models.Mission        `json:"available_missions"`
	Next           *models.Mission         `json:"next_mission,omitempty"`
	Badges         []models.BadgeView      `json:"badges"`
	BuyIns         []models.BuyIn          `json:"available_buy_ins"`
	CurrentBuyIn   string                  `json:"current_buy_in,omitempty"`
	BuyInBadge     string                  `json:"buy_in_badge,omitempty"`
	CrownOfChaos   bool                    `json:"crown_of_chaos"`
	Overlay        models.SpecialOverlay   `json:"overlay,omitempty"`
	Mascot         models.MascotExpression `json:"mascot"`
	IsCheater      bool                    `json:"is_cheater"`
	BountyHunter   int                     `json:"bounty_hunter_count"`
	CompletedCount int                     `json:"completed_count"`
	TotalPoints    int                     `json:"total_points"`
	HonorScore     int                     `json:"honor_score"`
	CanStartTrial  bool                    `json:"can_start_trial"`
	PendingDebts   []models.BeerDebt       `json:"pending_debts"`
}

// Snapshot aggregates every derived view for one profile.
func (s *ProgressionService) Snapshot(profile *models.PlayerProfile) Snapshot {
	p := baseline(profile)
	badges := NewBadgeService(s.Catalog)

	snap := Snapshot{
		UserName:       p.UserName,
		UserHandle:     p.UserHandle,
		State:          s.GatingState(p),
		Available:      s.AvailableMissions(p),
		Badges:         badges.AllBadgeTiers(p),
		BuyIns:         s.AvailableBuyIns(p),
		CurrentBuyIn:   p.CurrentBuyIn,
		BuyInBadge:     s.BuyInBadge(p),
		CrownOfChaos:   s.HasCrownOfChaos(p),
		Overlay:        s.SpecialOverlay(p),
		Mascot:         s.MascotExpression(p),
		IsCheater:      p.IsCheater,
		BountyHunter:   p.BountyHunterCount,
		CompletedCount: len(s.completedSet(p)),
		TotalPoints:    p.TotalPoints,
		HonorScore:     p.HonorScore,
		CanStartTrial:  CanStartTrial(p),
		PendingDebts:   p.PendingDebts(),
	}
	if next, ok := s.NextMission(p); ok {
		snap.Next = &next
	}
	if snap.PendingDebts == nil {
		snap.PendingDebts = []models.BeerDebt{}
	}
	return snap
}
