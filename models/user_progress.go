package models

import (
	"time"
)

// ProfileSchemaVersion is bumped whenever PlayerProfile gains a field that needs backfilling.
const ProfileSchemaVersion = 2

// Default honor every player starts with.
const DefaultHonorScore = 100

// SubmissionStatus of a recorded mission completion.
type SubmissionStatus string

const (
	SubmissionSubmitted SubmissionStatus = "submitted"
	SubmissionDirect    SubmissionStatus = "direct" // posted through the honor-gated direct flow
)

// Submission is the record kept per completed mission.
type Submission struct {
	Timestamp time.Time        `json:"timestamp"`
	Points    int              `json:"points"`
	ProofURL  string           `json:"proof_url,omitempty"`
	Status    SubmissionStatus `json:"status"`
}

// DebtStatus of a beer debt.
type DebtStatus string

const (
	DebtPending DebtStatus = "pending"
	DebtPaid    DebtStatus = "paid"
)

// BeerDebt is owed by the local player to Creditor, in beers.
type BeerDebt struct {
	ID        string     `json:"id"`
	Creditor  string     `json:"creditor"`
	Amount    int        `json:"amount"`
	AmountUSD int        `json:"amount_usd"`
	Reason    string     `json:"reason"`
	TrialID   string     `json:"trial_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	DueAt     time.Time  `json:"due_at"`
	Status    DebtStatus `json:"status"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
}

// HonorEntry is one line of the append-only honor audit trail.
type HonorEntry struct {
	Delta  int       `json:"delta"`
	Reason string    `json:"reason"`
	Score  int       `json:"score"`
	At     time.Time `json:"at"`
}

// PlayerProfile is the single local player's durable progression state.
type PlayerProfile struct {
	SchemaVersion int `json:"schema_version"`

	UserName   string    `json:"user_name"`
	UserHandle string    `json:"user_handle"`
	JoinDate   time.Time `json:"join_date"`

	// Progression
	CompletedMissionIDs []int              `json:"completed_mission_ids"`
	Submissions         map[int]Submission `json:"submissions"`
	TotalPoints         int                `json:"total_points"`
	Badges              []string           `json:"badges"`
	CompletedBuyIns     []string           `json:"completed_buy_ins"`
	CurrentBuyIn        string             `json:"current_buy_in,omitempty"`

	// FAFO latch
	FAFOCompleted     bool       `json:"fafo_completed"`
	FAFOCompletedDate *time.Time `json:"fafo_completed_date,omitempty"`

	// Justice
	HonorScore        int          `json:"honor_score"`
	HonorHistory      []HonorEntry `json:"honor_history"`
	BeerDebts         []BeerDebt   `json:"beer_debts"`
	IsCheater         bool         `json:"is_cheater"`
	BountyHunterCount int          `json:"bounty_hunter_count"`
	SettledTrialIDs   []string     `json:"settled_trial_ids"` // outcomes already applied here
}

// NewPlayerProfile returns a baseline profile for a fresh install.
func NewPlayerProfile(now time.Time) *PlayerProfile {
	return &PlayerProfile{
		SchemaVersion:       ProfileSchemaVersion,
		JoinDate:            now.UTC(),
		CompletedMissionIDs: []int{},
		Submissions:         map[int]Submission{},
		Badges:              []string{},
		CompletedBuyIns:     []string{},
		HonorScore:          DefaultHonorScore,
		HonorHistory:        []HonorEntry{},
		BeerDebts:           []BeerDebt{},
		SettledTrialIDs:     []string{},
	}
}

// Clone deep-copies the profile so callers can mutate without aliasing.
func (p *PlayerProfile) Clone() *PlayerProfile {
	if p == nil {
		return nil
	}
	out := *p
	out.CompletedMissionIDs = cloneSlice(p.CompletedMissionIDs)
	out.Badges = cloneSlice(p.Badges)
	out.CompletedBuyIns = cloneSlice(p.CompletedBuyIns)
	out.HonorHistory = cloneSlice(p.HonorHistory)
	out.SettledTrialIDs = cloneSlice(p.SettledTrialIDs)
	out.BeerDebts = cloneSlice(p.BeerDebts)
	for i, d := range out.BeerDebts {
		if d.PaidAt != nil {
			t := *d.PaidAt
			out.BeerDebts[i].PaidAt = &t
		}
	}
	if p.Submissions != nil {
		out.Submissions = make(map[int]Submission, len(p.Submissions))
		for k, v := range p.Submissions {
			out.Submissions[k] = v
		}
	}
	if p.FAFOCompletedDate != nil {
		t := *p.FAFOCompletedDate
		out.FAFOCompletedDate = &t
	}
	return &out
}

// HasCompleted reports whether mission id is in the completed set.
func (p *PlayerProfile) HasCompleted(id int) bool {
	for _, c := range p.CompletedMissionIDs {
		if c == id {
			return true
		}
	}
	return false
}

// HasBuyIn reports whether the buy-in has been completed before.
func (p *PlayerProfile) HasBuyIn(id string) bool {
	for _, b := range p.CompletedBuyIns {
		if b == id {
			return true
		}
	}
	return false
}

// HasBadge reports whether a special badge was explicitly awarded.
func (p *PlayerProfile) HasBadge(id string) bool {
	for _, b := range p.Badges {
		if b == id {
			return true
		}
	}
	return false
}

// RecalculatePoints re-derives TotalPoints from submissions.
func (p *PlayerProfile) RecalculatePoints() int {
	total := 0
	for _, s := range p.Submissions {
		total += s.Points
	}
	p.TotalPoints = total
	return total
}

// HasSettled reports whether the outcome of trialID was already applied.
func (p *PlayerProfile) HasSettled(trialID string) bool {
	for _, id := range p.SettledTrialIDs {
		if id == trialID {
			return true
		}
	}
	return false
}

// PendingDebts returns the debts not yet paid.
func (p *PlayerProfile) PendingDebts() []BeerDebt {
	var out []BeerDebt
	for _, d := range p.BeerDebts {
		if d.Status != DebtPaid {
			out = append(out, d)
		}
	}
	return out
}

// cloneSlice copies s, keeping nil and empty distinct so documents round-trip.
func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}
