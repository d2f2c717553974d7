package services

import (
	"testing"
	"time"

	"mission-mischief/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func honorProfile(handle string, honor int) *models.PlayerProfile {
	p := models.NewPlayerProfile(testNow)
	p.UserHandle = handle
	p.HonorScore = honor
	return p
}

func openTrial(t *testing.T, js *JusticeService) *models.Trial {
	t.Helper()
	trial, err := js.NewTrial(honorProfile("@Alice", 100), Accusation{
		Accused:        "@Bob",
		EvidenceURL:    "https://example.com/evidence.jpg",
		AccusationText: "  that coffee was decaf  ",
	}, testNow)
	require.NoError(t, err)
	return trial
}

func TestCanonicalIdentity(t *testing.T) {
	assert.Equal(t, "bob", CanonicalIdentity("@Bob"))
	assert.Equal(t, "bob", CanonicalIdentity("  bob "))
	assert.Equal(t, "some-player", CanonicalIdentity("@Some Player"))
	assert.Equal(t, "", CanonicalIdentity("@"))
}

func TestUpdateHonorFloorsAtZero(t *testing.T) {
	p := honorProfile("carol", 3)
	out := UpdateHonor(p, -models.GuiltyHonorPenalty, ReasonGuiltyVerdict, testNow)

	assert.Equal(t, 0, out.HonorScore)
	assert.Equal(t, 3, p.HonorScore)
	require.Len(t, out.HonorHistory, 1)
	assert.Equal(t, models.HonorEntry{Delta: -10, Reason: ReasonGuiltyVerdict, Score: 0, At: testNow}, out.HonorHistory[0])

	up := UpdateHonor(honorProfile("carol", 100), 7, ReasonJuryDuty, testNow)
	assert.Equal(t, 107, up.HonorScore, "no upper cap")
}

func TestNewTrial(t *testing.T) {
	js := newTestJustice()
	trial := openTrial(t, js)

	assert.Equal(t, "id-001", trial.ID)
	assert.Equal(t, "alice", trial.Accuser)
	assert.Equal(t, "bob", trial.Accused)
	assert.Equal(t, "that coffee was decaf", trial.AccusationText)
	assert.Equal(t, models.TrialActive, trial.Status)
	assert.Equal(t, testNow.Add(6*time.Hour), trial.ExpiresAt)
	assert.Empty(t, trial.Voters)

	_, err := js.NewTrial(honorProfile("alice", 49), Accusation{Accused: "bob"}, testNow)
	assert.ErrorIs(t, err, ErrInsufficientHonor)
	assert.Equal(t, KindGatingViolation, KindOf(err))

	_, err = js.NewTrial(honorProfile("alice", 50), Accusation{Accused: "@ALICE"}, testNow)
	assert.ErrorIs(t, err, ErrInvalidTrial)

	_, err = js.NewTrial(honorProfile("", 100), Accusation{Accused: "bob"}, testNow)
	assert.ErrorIs(t, err, ErrInvalidTrial)
}

func TestCastVote(t *testing.T) {
	js := newTestJustice()
	trial := openTrial(t, js)

	voted, err := js.CastVote(trial, models.VerdictGuilty, "@Carol", testNow.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, voted.Votes.Guilty)
	assert.Equal(t, []string{"carol"}, voted.Voters)
	assert.Empty(t, trial.Voters, "input trial is untouched")

	_, err = js.CastVote(voted, models.VerdictInnocent, "carol", testNow.Add(2*time.Hour))
	assert.ErrorIs(t, err, ErrAlreadyVoted)

	_, err = js.CastVote(voted, "maybe", "dave", testNow)
	assert.ErrorIs(t, err, ErrInvalidVerdict)
	assert.Equal(t, KindRangeViolation, KindOf(err))

	_, err = js.CastVote(voted, models.VerdictGuilty, "dave", trial.ExpiresAt)
	assert.NoError(t, err, "the closing instant is still open")

	_, err = js.CastVote(voted, models.VerdictGuilty, "dave", trial.ExpiresAt.Add(time.Second))
	assert.ErrorIs(t, err, ErrTrialExpired)
}

func TestConcludeTieAcquits(t *testing.T) {
	js := newTestJustice()
	trial := openTrial(t, js)

	ballots := []struct {
		voter   string
		verdict models.Verdict
	}{
		{"carol", models.VerdictGuilty},
		{"dave", models.VerdictInnocent},
		{"erin", models.VerdictGuilty},
		{"frank", models.VerdictInnocent},
	}
	var err error
	for _, b := range ballots {
		trial, err = js.CastVote(trial, b.verdict, b.voter, testNow)
		require.NoError(t, err)
	}

	done, outcome, err := js.Conclude(trial, testNow.Add(7*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, models.VerdictInnocent, done.Verdict)
	assert.Equal(t, models.TrialConcluded, done.Status)
	assert.Equal(t, []string{"carol", "dave", "erin", "frank"}, done.PendingVoterAwards)

	require.Len(t, outcome.Debts, 1)
	assert.Equal(t, models.DebtEffect{Debtor: "alice", Creditor: "bob", Beers: 3, Reason: ReasonFalseAccusation}, outcome.Debts[0])
	assert.Equal(t, models.HonorEffect{Identity: "alice", Delta: -5, Reason: ReasonFalseAccusation}, outcome.HonorEffects[0])
	assert.Len(t, outcome.HonorEffects, 5)
	assert.Equal(t, "INNOCENT: @alice owes @bob 3 beers for a false accusation", VerdictHeadline(outcome))

	_, _, err = js.Conclude(done, testNow.Add(8*time.Hour))
	assert.ErrorIs(t, err, ErrTrialConcluded)

	_, err = js.CastVote(done, models.VerdictGuilty, "gina", testNow)
	assert.ErrorIs(t, err, ErrTrialConcluded)
}

func TestApplyOutcomeGuilty(t *testing.T) {
	js := newTestJustice()
	trial := openTrial(t, js)
	trial, err := js.CastVote(trial, models.VerdictGuilty, "alice", testNow)
	require.NoError(t, err)
	_, outcome, err := js.Conclude(trial, testNow)
	require.NoError(t, err)
	require.Equal(t, models.VerdictGuilty, outcome.Verdict)
	assert.Equal(t, "GUILTY: @bob owes @alice 1 beer", VerdictHeadline(outcome))

	bob := js.ApplyOutcome(honorProfile("@Bob", 100), outcome, testNow)
	assert.True(t, bob.IsCheater)
	assert.Equal(t, 90, bob.HonorScore)
	require.Len(t, bob.BeerDebts, 1)
	debt := bob.BeerDebts[0]
	assert.Equal(t, "alice", debt.Creditor)
	assert.Equal(t, 1, debt.Amount)
	assert.Equal(t, 5, debt.AmountUSD)
	assert.Equal(t, testNow.Add(7*24*time.Hour), debt.DueAt)
	assert.Equal(t, models.DebtPending, debt.Status)

	alice := js.ApplyOutcome(honorProfile("alice", 100), outcome, testNow)
	assert.Equal(t, 1, alice.BountyHunterCount)
	assert.Equal(t, 101, alice.HonorScore, "accuser also voted")
	assert.Empty(t, alice.BeerDebts)

	again := js.ApplyOutcome(alice, outcome, testNow)
	assert.Equal(t, alice, again, "settling twice is a no-op")

	bystander := js.ApplyOutcome(honorProfile("zed", 100), outcome, testNow)
	assert.Equal(t, 100, bystander.HonorScore)
	assert.Equal(t, []string{outcome.TrialID}, bystander.SettledTrialIDs)
}

func TestMarkDebtPaid(t *testing.T) {
	p := honorProfile("bob", 100)
	p.BeerDebts = []models.BeerDebt{{ID: "d1", Amount: 1, Status: models.DebtPending}}

	paid, err := MarkDebtPaid(p, "d1", testNow)
	require.NoError(t, err)
	assert.Equal(t, models.DebtPaid, paid.BeerDebts[0].Status)
	assert.Empty(t, paid.PendingDebts())
	assert.Len(t, p.PendingDebts(), 1)

	again, err := MarkDebtPaid(paid, "d1", testNow.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, testNow, *again.BeerDebts[0].PaidAt)

	_, err = MarkDebtPaid(p, "nope", testNow)
	assert.ErrorIs(t, err, ErrDebtNotFound)
}

func TestTimeRemaining(t *testing.T) {
	trial := &models.Trial{ExpiresAt: testNow.Add(6 * time.Hour)}

	clock := TimeRemaining(trial, testNow.Add(90*time.Minute))
	assert.Equal(t, "4h 30m remaining", clock.Label)
	assert.False(t, clock.Urgent)

	clock = TimeRemaining(trial, testNow.Add(5*time.Hour+15*time.Minute))
	assert.True(t, clock.Urgent)
	assert.Equal(t, "0h 45m remaining", clock.Label)

	clock = TimeRemaining(trial, testNow.Add(6*time.Hour))
	assert.True(t, clock.Expired)
}
