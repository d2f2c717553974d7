package services

import (
	"fmt"
	"strings"
	"time"

	"mission-mischief/models"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// verdictLabel upper-cases a verdict with a fresh Caser per call.
func verdictLabel(v models.Verdict) string {
	return cases.Upper(language.English).String(string(v))
}

// Accusation opens a trial.
type Accusation struct {
	Accuser        string `json:"accuser"`
	Accused        string `json:"accused"`
	EvidenceURL    string `json:"evidence_url"`
	AccusationText string `json:"accusation_text"`
}

// JusticeService runs the trial lifecycle. Trials and profiles are values:
// each call returns fresh copies.
type JusticeService struct {
	NewID func() string
}

func NewJusticeService() *JusticeService {
	return &JusticeService{NewID: uuid.NewString}
}

// CanonicalIdentity folds "@Some.Player" and "some player" to the same key.
func CanonicalIdentity(identity string) string {
	return slug.Make(strings.TrimLeft(strings.TrimSpace(identity), "@"))
}

// NewTrial opens a trial if the accusing profile clears the honor gate.
func (s *JusticeService) NewTrial(accuser *models.PlayerProfile, a Accusation, now time.Time) (*models.Trial, error) {
	const op = "new trial"
	p := baseline(accuser)
	if !CanStartTrial(p) {
		return nil, newErrorf(op, ErrInsufficientHonor, "honor %d below %d", p.HonorScore, models.MinHonorForTrial)
	}

	by := a.Accuser
	if by == "" {
		by = p.UserHandle
	}
	by = CanonicalIdentity(by)
	accused := CanonicalIdentity(a.Accused)
	switch {
	case by == "":
		return nil, newErrorf(op, ErrInvalidTrial, "accuser is required")
	case accused == "":
		return nil, newErrorf(op, ErrInvalidTrial, "accused is required")
	case by == accused:
		return nil, newErrorf(op, ErrInvalidTrial, "cannot accuse yourself")
	}

	created := now.UTC()
	return &models.Trial{
		ID:             s.NewID(),
		Accuser:        by,
		Accused:        accused,
		EvidenceURL:    a.EvidenceURL,
		AccusationText: strings.TrimSpace(a.AccusationText),
		Voters:         []string{},
		Status:         models.TrialActive,
		CreatedAt:      created,
		ExpiresAt:      created.Add(models.TrialDuration),
		UpdatedAt:      created,
	}, nil
}

// CastVote records one ballot per voter identity while the trial is open.
func (s *JusticeService) CastVote(trial *models.Trial, verdict models.Verdict, voter string, now time.Time) (*models.Trial, error) {
	const op = "cast vote"
	if trial == nil {
		return nil, newError(op, ErrTrialNotFound)
	}
	if !verdict.Valid() {
		return nil, newErrorf(op, ErrInvalidVerdict, "%q", verdict)
	}
	id := CanonicalIdentity(voter)
	if id == "" {
		return nil, newErrorf(op, ErrInvalidTrial, "voter is required")
	}
	if trial.Status != models.TrialActive {
		return nil, newErrorf(op, ErrTrialConcluded, "trial %s", trial.ID)
	}
	if trial.Expired(now) {
		return nil, newErrorf(op, ErrTrialExpired, "trial %s expired at %s", trial.ID, trial.ExpiresAt.Format(time.RFC3339))
	}
	if trial.HasVoted(id) {
		return nil, newErrorf(op, ErrAlreadyVoted, "%s on trial %s", id, trial.ID)
	}

	out := trial.Clone()
	switch verdict {
	case models.VerdictGuilty:
		out.Votes.Guilty++
	case models.VerdictInnocent:
		out.Votes.Innocent++
	}
	out.Voters = append(out.Voters, id)
	out.UpdatedAt = now.UTC()
	return out, nil
}

// Conclude tallies the votes. Ties acquit. It may run before expiry as an
// explicit tally; a trial concludes only once.
func (s *JusticeService) Conclude(trial *models.Trial, now time.Time) (*models.Trial, models.TrialOutcome, error) {
	const op = "conclude trial"
	if trial == nil {
		return nil, models.TrialOutcome{}, newError(op, ErrTrialNotFound)
	}
	if trial.Status == models.TrialConcluded {
		return nil, models.TrialOutcome{}, newErrorf(op, ErrTrialConcluded, "trial %s", trial.ID)
	}

	at := now.UTC()
	out := trial.Clone()
	out.Status = models.TrialConcluded
	out.ConcludedAt = &at
	out.UpdatedAt = at
	out.Verdict = models.VerdictInnocent
	if out.Votes.Guilty > out.Votes.Innocent {
		out.Verdict = models.VerdictGuilty
	}
	out.PendingVoterAwards = append([]string(nil), out.Voters...)
	return out, OutcomeOf(out), nil
}

// OutcomeOf rebuilds the effects of a concluded trial, e.g. one pulled from
// the shared store.
func OutcomeOf(t *models.Trial) models.TrialOutcome {
	outcome := models.TrialOutcome{
		TrialID: t.ID,
		Verdict: t.Verdict,
		Accuser: t.Accuser,
		Accused: t.Accused,
	}
	if t.ConcludedAt != nil {
		outcome.ConcludedAt = *t.ConcludedAt
	}
	if t.Verdict == models.VerdictGuilty {
		outcome.HonorEffects = append(outcome.HonorEffects, models.HonorEffect{
			Identity: t.Accused, Delta: -models.GuiltyHonorPenalty, Reason: ReasonGuiltyVerdict,
		})
		outcome.Debts = append(outcome.Debts, models.DebtEffect{
			Debtor: t.Accused, Creditor: t.Accuser, Beers: models.GuiltyBeerDebt, Reason: ReasonGuiltyVerdict,
		})
	} else {
		outcome.HonorEffects = append(outcome.HonorEffects, models.HonorEffect{
			Identity: t.Accuser, Delta: -models.FalseAccusationHonor, Reason: ReasonFalseAccusation,
		})
		outcome.Debts = append(outcome.Debts, models.DebtEffect{
			Debtor: t.Accuser, Creditor: t.Accused, Beers: models.FalseAccusationBeers, Reason: ReasonFalseAccusation,
		})
	}
	for _, v := range t.PendingVoterAwards {
		outcome.HonorEffects = append(outcome.HonorEffects, models.HonorEffect{
			Identity: v, Delta: models.VoterHonorReward, Reason: ReasonJuryDuty,
		})
	}
	return outcome
}

// ApplyOutcome applies the effects naming the local player. Applying the same
// trial twice is a no-op.
func (s *JusticeService) ApplyOutcome(profile *models.PlayerProfile, outcome models.TrialOutcome, now time.Time) *models.PlayerProfile {
	out := baseline(profile).Clone()
	if outcome.TrialID == "" || out.HasSettled(outcome.TrialID) {
		return out
	}
	self := CanonicalIdentity(out.UserHandle)
	if self == "" {
		return out
	}

	for _, e := range outcome.HonorEffects {
		if e.Identity == self {
			applyHonor(out, e.Delta, e.Reason, now)
		}
	}
	at := now.UTC()
	for _, d := range outcome.Debts {
		if d.Debtor != self {
			continue
		}
		out.BeerDebts = append(out.BeerDebts, models.BeerDebt{
			ID:        s.NewID(),
			Creditor:  d.Creditor,
			Amount:    d.Beers,
			AmountUSD: d.Beers * models.BeerPriceUSD,
			Reason:    d.Reason,
			TrialID:   outcome.TrialID,
			CreatedAt: at,
			DueAt:     at.Add(models.DebtDueAfter),
			Status:    models.DebtPending,
		})
	}
	if outcome.Verdict == models.VerdictGuilty {
		if outcome.Accused == self {
			out.IsCheater = true
		}
		if outcome.Accuser == self {
			out.BountyHunterCount++
		}
	}
	out.SettledTrialIDs = append(out.SettledTrialIDs, outcome.TrialID)
	return out
}

// MarkDebtPaid settles a beer debt. Paying twice keeps the first payment date.
func MarkDebtPaid(profile *models.PlayerProfile, debtID string, now time.Time) (*models.PlayerProfile, error) {
	out := baseline(profile).Clone()
	for i := range out.BeerDebts {
		d := &out.BeerDebts[i]
		if d.ID != debtID {
			continue
		}
		if d.Status != models.DebtPaid {
			at := now.UTC()
			d.Status = models.DebtPaid
			d.PaidAt = &at
		}
		return out, nil
	}
	return nil, newErrorf("mark debt paid", ErrDebtNotFound, "%q", debtID)
}

// TrialClock is the countdown shown on an open trial.
type TrialClock struct {
	Remaining time.Duration `json:"remaining"`
	Expired   bool          `json:"expired"`
	Urgent    bool          `json:"urgent"`
	Label     string        `json:"label"`
}

// TimeRemaining reports how long voting stays open. Under an hour is urgent.
func TimeRemaining(trial *models.Trial, now time.Time) TrialClock {
	left := trial.ExpiresAt.Sub(now)
	if left <= 0 {
		return TrialClock{Expired: true, Label: "Expired"}
	}
	hours := int(left / time.Hour)
	minutes := int((left % time.Hour) / time.Minute)
	return TrialClock{
		Remaining: left,
		Urgent:    left < time.Hour,
		Label:     fmt.Sprintf("%dh %dm remaining", hours, minutes),
	}
}

// VerdictHeadline renders an outcome for logs and notifications.
func VerdictHeadline(o models.TrialOutcome) string {
	if o.Verdict == models.VerdictGuilty {
		return fmt.Sprintf("%s: @%s owes @%s %d beer", verdictLabel(o.Verdict), o.Accused, o.Accuser, models.GuiltyBeerDebt)
	}
	return fmt.Sprintf("%s: @%s owes @%s %d beers for a false accusation", verdictLabel(o.Verdict), o.Accuser, o.Accused, models.FalseAccusationBeers)
}
