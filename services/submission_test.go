package services

import (
	"testing"
	"time"

	"mission-mischief/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitErrors(t *testing.T) {
	svc := NewSubmissionService(DefaultCatalog())
	setup := svc.CompleteFAFO(models.NewPlayerProfile(testNow), testNow)
	open := throughSetup(t, svc, models.BuyInRecycling)

	cases := []struct {
		name    string
		profile *models.PlayerProfile
		req     SubmitRequest
		want    error
		kind    Kind
	}{
		{"unknown mission", open, SubmitRequest{MissionID: 51, Points: 1}, ErrMissionNotFound, KindNotFound},
		{"before fafo", models.NewPlayerProfile(testNow), SubmitRequest{MissionID: 2, Points: 1}, ErrMissionLocked, KindGatingViolation},
		{"locked in setup", setup, SubmitRequest{MissionID: 5, Points: 1}, ErrMissionLocked, KindGatingViolation},
		{"fixed mismatch", open, SubmitRequest{MissionID: 8, Points: 2}, ErrPointsOutOfRange, KindRangeViolation},
		{"outside set", setup, SubmitRequest{MissionID: 3, Points: 2}, ErrPointsOutOfRange, KindRangeViolation},
		{"above range", open, SubmitRequest{MissionID: 5, Points: 4}, ErrPointsOutOfRange, KindRangeViolation},
		{"negative variable", open, SubmitRequest{MissionID: 7, Points: -1}, ErrPointsOutOfRange, KindRangeViolation},
		{"buy-in missing", setup, SubmitRequest{MissionID: 4, Points: 0}, ErrBuyInRequired, KindRangeViolation},
		{"buy-in unknown", setup, SubmitRequest{MissionID: 4, Points: 0, BuyInID: "lottery"}, ErrBuyInNotFound, KindNotFound},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			before := tc.profile.Clone()
			out, err := svc.Submit(tc.profile, tc.req, testNow)
			require.ErrorIs(t, err, tc.want)
			assert.Equal(t, tc.kind, KindOf(err))
			assert.Nil(t, out)
			assert.Equal(t, before, tc.profile, "input must be untouched")
		})
	}
}

func TestSubmitRecordsAndLeavesInputUntouched(t *testing.T) {
	svc := NewSubmissionService(DefaultCatalog())
	p := throughSetup(t, svc, models.BuyInRecycling)
	before := p.Clone()

	out, err := svc.Submit(p, SubmitRequest{MissionID: 7, Points: 12, ProofURL: "https://example.com/bueller.mp4"}, testNow)
	require.NoError(t, err)

	assert.Equal(t, before, p)
	assert.True(t, out.HasCompleted(7))
	assert.Equal(t, 16, out.TotalPoints)
	sub := out.Submissions[7]
	assert.Equal(t, 12, sub.Points)
	assert.Equal(t, models.SubmissionSubmitted, sub.Status)
	assert.Equal(t, "https://example.com/bueller.mp4", sub.ProofURL)
	assert.False(t, out.HasBadge("coffee"), "paired badges are tiered, not awarded")
}

func TestResubmitReplacesPointsWithoutDuplicating(t *testing.T) {
	svc := NewSubmissionService(DefaultCatalog())
	p := throughSetup(t, svc, models.BuyInRecycling)

	p = mustSubmit(t, svc, p, SubmitRequest{MissionID: 5, Points: 3})
	p = mustSubmit(t, svc, p, SubmitRequest{MissionID: 5, Points: 1})

	count := 0
	for _, id := range p.CompletedMissionIDs {
		if id == 5 {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, 5, p.TotalPoints)
}

func TestCompletedMissionsOnlyGrow(t *testing.T) {
	svc := NewSubmissionService(DefaultCatalog())
	p := throughSetup(t, svc, models.BuyInNothing)

	for i := 0; i < 10; i++ {
		prev := append([]int(nil), p.CompletedMissionIDs...)
		p, _ = completeNext(t, svc, p)
		assert.Subset(t, p.CompletedMissionIDs, prev)
		assert.Len(t, p.CompletedMissionIDs, len(prev)+1)
	}
}

func TestSetupSubmissionsAwardOneOffBadges(t *testing.T) {
	svc := NewSubmissionService(DefaultCatalog())
	p := throughSetup(t, svc, models.BuyInCleanup)

	assert.ElementsMatch(t, []string{FAFOBadge, "beer"}, p.Badges)
	assert.Equal(t, models.BuyInCleanup, p.CurrentBuyIn)
	assert.Equal(t, 4, p.TotalPoints)
}

func TestCompleteFAFOIsIdempotent(t *testing.T) {
	svc := NewSubmissionService(DefaultCatalog())
	fresh := models.NewPlayerProfile(testNow)

	once := svc.CompleteFAFO(fresh, testNow)
	twice := svc.CompleteFAFO(once, testNow.Add(time.Hour))

	assert.False(t, fresh.FAFOCompleted)
	assert.Equal(t, once, twice)
	assert.Equal(t, []int{models.FAFOMissionID}, twice.CompletedMissionIDs)
	require.NotNil(t, twice.FAFOCompletedDate)
	assert.Equal(t, testNow, *twice.FAFOCompletedDate)
	assert.Equal(t, 0, twice.TotalPoints)
}

func TestSelectBuyInSwitchesChoice(t *testing.T) {
	svc := NewSubmissionService(DefaultCatalog())
	p := throughSetup(t, svc, models.BuyInNothing)

	out, err := svc.SelectBuyIn(p, models.BuyInReferral)
	require.NoError(t, err)
	assert.Equal(t, models.BuyInReferral, out.CurrentBuyIn)
	assert.Equal(t, models.BuyInNothing, p.CurrentBuyIn)
	assert.Equal(t, StateUnlockedOpen, svc.Progression.GatingState(out))

	_, err = svc.SelectBuyIn(p, "")
	assert.ErrorIs(t, err, ErrBuyInRequired)
}

func TestAwardBadge(t *testing.T) {
	svc := NewSubmissionService(DefaultCatalog())
	p := models.NewPlayerProfile(testNow)

	out, err := svc.AwardBadge(p, "bounty")
	require.NoError(t, err)
	out, err = svc.AwardBadge(out, "bounty")
	require.NoError(t, err)
	assert.Equal(t, []string{"bounty"}, out.Badges)

	_, err = svc.AwardBadge(p, "unicorn")
	assert.ErrorIs(t, err, ErrBadgeNotFound)
	assert.Equal(t, KindNotFound, KindOf(err))
}
