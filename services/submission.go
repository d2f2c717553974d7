package services

import (
	"time"

	"mission-mischief/models"
)

// FAFOBadge is awarded with the onboarding latch.
const FAFOBadge = "mugshot"

// SubmitRequest is one mission completion event.
type SubmitRequest struct {
	MissionID int    `json:"mission_id"`
	Points    int    `json:"points"`
	ProofURL  string `json:"proof_url,omitempty"`
	BuyInID   string `json:"buy_in_id,omitempty"` // only for the buy-in selection mission
}

// SubmissionService applies completion events. Every method returns a new
// profile and leaves its input untouched, so a failed call changes nothing.
type SubmissionService struct {
	Catalog     *Catalog
	Progression *ProgressionService
}

func NewSubmissionService(catalog *Catalog) *SubmissionService {
	return &SubmissionService{Catalog: catalog, Progression: NewProgressionService(catalog)}
}

// Submit records a mission completion.
func (s *SubmissionService) Submit(profile *models.PlayerProfile, req SubmitRequest, now time.Time) (*models.PlayerProfile, error) {
	const op = "submit"
	p := baseline(profile)

	mission, ok := s.Catalog.ByID(req.MissionID)
	if !ok {
		return nil, newErrorf(op, ErrMissionNotFound, "id %d", req.MissionID)
	}
	if !s.Progression.IsAvailable(p, mission.ID) {
		return nil, newErrorf(op, ErrMissionLocked, "mission %d in state %s", mission.ID, s.Progression.GatingState(p))
	}
	if !mission.Points.Allows(req.Points) {
		return nil, newErrorf(op, ErrPointsOutOfRange, "%d not allowed by %q", req.Points, mission.Points.Label)
	}

	var buyIn models.BuyIn
	if mission.ID == models.BuyInSelectMissionID {
		var err error
		if buyIn, err = s.availableBuyIn(op, p, req.BuyInID); err != nil {
			return nil, err
		}
	}

	out := p.Clone()
	if out.Submissions == nil {
		out.Submissions = map[int]models.Submission{}
	}
	out.Submissions[mission.ID] = models.Submission{
		Timestamp: now.UTC(),
		Points:    req.Points,
		ProofURL:  req.ProofURL,
		Status:    models.SubmissionSubmitted,
	}
	if !out.HasCompleted(mission.ID) {
		out.CompletedMissionIDs = append(out.CompletedMissionIDs, mission.ID)
	}
	if buyIn.ID != "" {
		out.CurrentBuyIn = buyIn.ID
	}
	// Missions outside the prank/goodwill pairing carry a one-off badge.
	if mission.BadgeGroup != "" && mission.Kind != models.MissionKindPrank && mission.Kind != models.MissionKindGoodwill {
		awardBadge(out, mission.BadgeGroup)
	}
	out.RecalculatePoints()
	return out, nil
}

func (s *SubmissionService) availableBuyIn(op string, p *models.PlayerProfile, id string) (models.BuyIn, error) {
	if id == "" {
		return models.BuyIn{}, newError(op, ErrBuyInRequired)
	}
	b, ok := s.Catalog.BuyIn(id)
	if !ok {
		return models.BuyIn{}, newErrorf(op, ErrBuyInNotFound, "%q", id)
	}
	for _, avail := range s.Progression.AvailableBuyIns(p) {
		if avail.ID == id {
			return b, nil
		}
	}
	return models.BuyIn{}, newErrorf(op, ErrBuyInUnavailable, "%q", id)
}

// CompleteFAFO latches the onboarding mission. Calling it again is a no-op.
func (s *SubmissionService) CompleteFAFO(profile *models.PlayerProfile, now time.Time) *models.PlayerProfile {
	p := baseline(profile)
	out := p.Clone()
	if out.FAFOCompleted {
		return out
	}
	at := now.UTC()
	out.FAFOCompleted = true
	out.FAFOCompletedDate = &at
	if out.Submissions == nil {
		out.Submissions = map[int]models.Submission{}
	}
	if _, ok := out.Submissions[models.FAFOMissionID]; !ok {
		out.Submissions[models.FAFOMissionID] = models.Submission{
			Timestamp: at,
			Points:    0,
			Status:    models.SubmissionSubmitted,
		}
	}
	if !out.HasCompleted(models.FAFOMissionID) {
		out.CompletedMissionIDs = append(out.CompletedMissionIDs, models.FAFOMissionID)
	}
	awardBadge(out, FAFOBadge)
	out.RecalculatePoints()
	return out
}

// CompleteBuyIn marks a real buy-in path as done. It leaves CurrentBuyIn alone.
func (s *SubmissionService) CompleteBuyIn(profile *models.PlayerProfile, id string) (*models.PlayerProfile, error) {
	const op = "complete buy-in"
	p := baseline(profile)
	if _, ok := s.Catalog.BuyIn(id); !ok {
		return nil, newErrorf(op, ErrBuyInNotFound, "%q", id)
	}
	if id == models.BuyInNothing {
		return nil, newErrorf(op, ErrBuyInUnavailable, "%q cannot be completed", id)
	}
	out := p.Clone()
	if !out.HasBuyIn(id) {
		out.CompletedBuyIns = append(out.CompletedBuyIns, id)
	}
	return out, nil
}

// SelectBuyIn changes the in-progress buy-in choice.
func (s *SubmissionService) SelectBuyIn(profile *models.PlayerProfile, id string) (*models.PlayerProfile, error) {
	p := baseline(profile)
	b, err := s.availableBuyIn("select buy-in", p, id)
	if err != nil {
		return nil, err
	}
	out := p.Clone()
	out.CurrentBuyIn = b.ID
	return out, nil
}

// AwardBadge grants a one-off special badge. Idempotent.
func (s *SubmissionService) AwardBadge(profile *models.PlayerProfile, id string) (*models.PlayerProfile, error) {
	p := baseline(profile)
	if _, ok := s.Catalog.Badge(id); !ok {
		return nil, newErrorf("award badge", ErrBadgeNotFound, "%q", id)
	}
	out := p.Clone()
	awardBadge(out, id)
	return out, nil
}

func awardBadge(p *models.PlayerProfile, id string) {
	if !p.HasBadge(id) {
		p.Badges = append(p.Badges, id)
	}
}
