package models

import "time"

// TrialDuration is how long a trial stays open for votes.
const TrialDuration = 6 * time.Hour

// Trial outcome constants.
const (
	GuiltyHonorPenalty    = 10
	FalseAccusationHonor  = 5
	VoterHonorReward      = 1
	SubmissionHonorReward = 1
	GuiltyBeerDebt        = 1
	FalseAccusationBeers  = 3
	BeerPriceUSD          = 5
	DebtDueAfter          = 7 * 24 * time.Hour
	MinHonorForTrial      = 50
)

type TrialStatus string

const (
	TrialActive    TrialStatus = "active"
	TrialConcluded TrialStatus = "concluded"
)

type Verdict string

const (
	VerdictGuilty   Verdict = "guilty"
	VerdictInnocent Verdict = "innocent"
)

// Valid reports whether v is one of the two ballot options.
func (v Verdict) Valid() bool {
	return v == VerdictGuilty || v == VerdictInnocent
}

type Votes struct {
	Guilty   int `json:"guilty"`
	Innocent int `json:"innocent"`
}

// Trial is a community vote on whether a submission was cheated.
type Trial struct {
	ID                 string      `json:"trial_id"`
	Accuser            string      `json:"accuser"`
	Accused            string      `json:"accused"`
	EvidenceURL        string      `json:"evidence_url"`
	AccusationText     string      `json:"accusation_text"`
	Votes              Votes       `json:"votes"`
	Voters             []string    `json:"voters"`
	Status             TrialStatus `json:"status"`
	CreatedAt          time.Time   `json:"created_at"`
	ExpiresAt          time.Time   `json:"expires_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
	Verdict            Verdict     `json:"verdict,omitempty"`
	ConcludedAt        *time.Time  `json:"concluded_at,omitempty"`
	PendingVoterAwards []string    `json:"pending_voter_awards,omitempty"`
}

// Clone deep-copies the trial.
func (t *Trial) Clone() *Trial {
	if t == nil {
		return nil
	}
	out := *t
	out.Voters = cloneSlice(t.Voters)
	out.PendingVoterAwards = cloneSlice(t.PendingVoterAwards)
	if t.ConcludedAt != nil {
		c := *t.ConcludedAt
		out.ConcludedAt = &c
	}
	return &out
}

// HasVoted reports whether identity already cast a ballot.
func (t *Trial) HasVoted(identity string) bool {
	for _, v := range t.Voters {
		if v == identity {
			return true
		}
	}
	return false
}

// Expired reports whether voting time has run out at now.
func (t *Trial) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// HonorEffect is a signed honor change for one identity.
type HonorEffect struct {
	Identity string `json:"identity"`
	Delta    int    `json:"delta"`
	Reason   string `json:"reason"`
}

// DebtEffect is a beer debt created by a verdict.
type DebtEffect struct {
	Debtor   string `json:"debtor"`
	Creditor string `json:"creditor"`
	Beers    int    `json:"beers"`
	Reason   string `json:"reason"`
}

// TrialOutcome is the full set of effects produced by concluding a trial.
type TrialOutcome struct {
	TrialID      string        `json:"trial_id"`
	Verdict      Verdict       `json:"verdict"`
	Accuser      string        `json:"accuser"`
	Accused      string        `json:"accused"`
	HonorEffects []HonorEffect `json:"honor_effects"`
	Debts        []DebtEffect  `json:"debts"`
	ConcludedAt  time.Time     `json:"concluded_at"`
}

// HonorRecord is a player's honor as exchanged with the shared store.
type HonorRecord struct {
	User       string    `json:"user"`
	HonorScore int       `json:"honor_score"`
	UpdatedAt  time.Time `json:"updated_at"`
}
