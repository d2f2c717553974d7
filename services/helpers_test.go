package services

import (
	"fmt"
	"testing"
	"time"

	"mission-mischief/models"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.June, 14, 18, 0, 0, 0, time.UTC)

func missionIDs(ms []models.Mission) []int {
	ids := make([]int, len(ms))
	for i, m := range ms {
		ids[i] = m.ID
	}
	return ids
}

func mustSubmit(t *testing.T, svc *SubmissionService, p *models.PlayerProfile, req SubmitRequest) *models.PlayerProfile {
	t.Helper()
	out, err := svc.Submit(p, req, testNow)
	require.NoError(t, err, "submit mission %d", req.MissionID)
	return out
}

// throughSetup signs FAFO and submits the remaining setup missions, choosing buyIn.
func throughSetup(t *testing.T, svc *SubmissionService, buyIn string) *models.PlayerProfile {
	t.Helper()
	p := svc.CompleteFAFO(models.NewPlayerProfile(testNow), testNow)
	p = mustSubmit(t, svc, p, SubmitRequest{MissionID: 2, Points: 1})
	p = mustSubmit(t, svc, p, SubmitRequest{MissionID: 3, Points: 3})
	p = mustSubmit(t, svc, p, SubmitRequest{MissionID: 4, Points: 0, BuyInID: buyIn})
	return p
}

// completeNext submits the next mission at its lowest allowed value.
func completeNext(t *testing.T, svc *SubmissionService, p *models.PlayerProfile) (*models.PlayerProfile, models.Mission) {
	t.Helper()
	next, ok := svc.Progression.NextMission(p)
	require.True(t, ok, "expected a next mission")
	req := SubmitRequest{MissionID: next.ID, Points: next.Points.Options()[0]}
	if next.ID == models.BuyInSelectMissionID {
		req.BuyInID = p.CurrentBuyIn
	}
	return mustSubmit(t, svc, p, req), next
}

type sequentialIDs struct{ n int }

func (s *sequentialIDs) next() string {
	s.n++
	return fmt.Sprintf("id-%03d", s.n)
}

func newTestJustice() *JusticeService {
	ids := &sequentialIDs{}
	return &JusticeService{NewID: ids.next}
}
