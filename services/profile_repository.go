package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"mission-mischief/models"
	"mission-mischief/stores"

	"go.uber.org/zap"
)

// Well-known storage keys.
const (
	ProfileKey = "missionMischiefUser"
	TrialsKey  = "missionMischiefTrials"
)

// ProfileRepository loads and saves the single local profile.
type ProfileRepository struct {
	Store stores.DocumentStore
	Now   func() time.Time
}

func NewProfileRepository(store stores.DocumentStore) *ProfileRepository {
	return &ProfileRepository{Store: store, Now: time.Now}
}

// Load returns the stored profile, migrated to the current schema, or a fresh
// one on first use. A document that no longer parses is set aside and replaced.
func (r *ProfileRepository) Load(ctx context.Context) (*models.PlayerProfile, error) {
	now := r.Now()
	raw, err := r.Store.Get(ctx, ProfileKey)
	if errors.Is(err, stores.ErrNotFound) {
		p := models.NewPlayerProfile(now)
		zap.S().Infof("🆕 [PROFILE] No stored profile, created a fresh one")
		return p, r.Save(ctx, p)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	p, repaired, err := MigrateProfile(raw, now)
	if err != nil {
		zap.S().Warnf("⚠️ [PROFILE] %s: stored profile unreadable, starting over: %v", KindSchemaRecovery, err)
		if putErr := r.Store.Put(ctx, ProfileKey+".corrupt", raw); putErr != nil {
			zap.S().Errorf("❌ [PROFILE] Failed to back up unreadable profile: %v", putErr)
		}
		p = models.NewPlayerProfile(now)
		return p, r.Save(ctx, p)
	}
	for _, group := range repaired {
		zap.S().Warnf("⚠️ [PROFILE] %s: repaired %s", KindSchemaRecovery, group)
	}
	if len(repaired) > 0 {
		if err := r.Save(ctx, p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Save writes the whole profile.
func (r *ProfileRepository) Save(ctx context.Context, p *models.PlayerProfile) error {
	p.SchemaVersion = models.ProfileSchemaVersion
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := r.Store.Put(ctx, ProfileKey, body); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// Reset discards the stored profile and starts a new one.
func (r *ProfileRepository) Reset(ctx context.Context) (*models.PlayerProfile, error) {
	if err := r.Store.Delete(ctx, ProfileKey); err != nil {
		return nil, fmt.Errorf("failed to reset profile: %w", err)
	}
	p := models.NewPlayerProfile(r.Now())
	return p, r.Save(ctx, p)
}

// MigrateProfile decodes raw and fills anything an older schema left out.
// It returns the names of the repaired field groups.
func MigrateProfile(raw []byte, now time.Time) (*models.PlayerProfile, []string, error) {
	var present map[string]json.RawMessage
	if err := json.Unmarshal(raw, &present); err != nil {
		return nil, nil, err
	}
	var p models.PlayerProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, nil, err
	}

	var repaired []string
	mark := func(group string) { repaired = append(repaired, group) }

	adopted, err := adoptLegacyFields(&p, present, raw)
	if err != nil {
		return nil, nil, err
	}
	if adopted {
		mark("legacy_schema")
	}

	if _, ok := present["honor_score"]; !ok {
		p.HonorScore = models.DefaultHonorScore
		mark("honor_score")
	} else if p.HonorScore < 0 {
		p.HonorScore = 0
		mark("honor_score")
	}
	if p.JoinDate.IsZero() {
		p.JoinDate = now.UTC()
		mark("join_date")
	}

	if p.Submissions == nil {
		p.Submissions = map[int]models.Submission{}
		mark("submissions")
	}
	if p.CompletedMissionIDs == nil {
		p.CompletedMissionIDs = []int{}
		mark("completed_mission_ids")
	}
	// Completed set must cover every submission and hold no duplicates.
	ids := dedupeInts(p.CompletedMissionIDs)
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	var missing []int
	for id := range p.Submissions {
		if !seen[id] {
			missing = append(missing, id)
		}
	}
	sort.Ints(missing)
	if len(missing) > 0 || len(ids) != len(p.CompletedMissionIDs) {
		mark("completed_mission_ids")
	}
	ids = append(ids, missing...)
	p.CompletedMissionIDs = ids

	if p.Badges == nil {
		p.Badges = []string{}
		mark("badges")
	}
	if p.CompletedBuyIns == nil {
		p.CompletedBuyIns = []string{}
		mark("completed_buy_ins")
	}
	if p.HonorHistory == nil {
		p.HonorHistory = []models.HonorEntry{}
		mark("honor_history")
	}
	if p.BeerDebts == nil {
		p.BeerDebts = []models.BeerDebt{}
		mark("beer_debts")
	}
	if p.SettledTrialIDs == nil {
		p.SettledTrialIDs = []string{}
		mark("settled_trial_ids")
	}

	if !p.FAFOCompleted && p.FAFOCompletedDate != nil {
		p.FAFOCompleted = true
		mark("fafo_completed")
	}

	stored := p.TotalPoints
	if p.RecalculatePoints() != stored {
		mark("total_points")
	}
	if p.SchemaVersion < models.ProfileSchemaVersion {
		p.SchemaVersion = models.ProfileSchemaVersion
		mark("schema_version")
	}
	return &p, repaired, nil
}

// legacyProfile is the camelCase document the browser build kept under the
// same key. Absent and null fields stay nil.
type legacyProfile struct {
	UserName          *string    `json:"userName"`
	UserHandle        *string    `json:"userHandle"`
	JoinDate          *time.Time `json:"joinDate"`
	CompletedMissions []int      `json:"completedMissions"`
	CompletedBuyIns   []string   `json:"completedBuyIns"`
	CurrentBuyIn      *string    `json:"currentBuyIn"`
	FAFOCompleted     *bool      `json:"fafoCompleted"`
	FAFOCompletedDate *time.Time `json:"fafoCompletedDate"`
	HonorScore        *int       `json:"honorScore"`
	IsCheater         *bool      `json:"isCheater"`
	BountyHunterCount *int       `json:"bountyHunterCount"`
	Submissions       map[int]struct {
		ProofURL string `json:"proofUrl"`
	} `json:"submissions"`
}

// adoptLegacyFields copies camelCase values into p wherever the current
// field is absent from the document. It marks adopted keys as present.
func adoptLegacyFields(p *models.PlayerProfile, present map[string]json.RawMessage, raw []byte) (bool, error) {
	var old legacyProfile
	if err := json.Unmarshal(raw, &old); err != nil {
		return false, err
	}
	adopted := false
	take := func(key string, ok bool) bool {
		if _, has := present[key]; has || !ok {
			return false
		}
		present[key] = nil
		adopted = true
		return true
	}

	if take("user_name", old.UserName != nil) {
		p.UserName = *old.UserName
	}
	if take("user_handle", old.UserHandle != nil) {
		p.UserHandle = *old.UserHandle
	}
	if take("join_date", old.JoinDate != nil) {
		p.JoinDate = old.JoinDate.UTC()
	}
	if take("completed_mission_ids", old.CompletedMissions != nil) {
		p.CompletedMissionIDs = old.CompletedMissions
	}
	if take("completed_buy_ins", old.CompletedBuyIns != nil) {
		p.CompletedBuyIns = old.CompletedBuyIns
	}
	if take("current_buy_in", old.CurrentBuyIn != nil) {
		p.CurrentBuyIn = *old.CurrentBuyIn
	}
	if take("fafo_completed", old.FAFOCompleted != nil) {
		p.FAFOCompleted = *old.FAFOCompleted
	}
	if take("fafo_completed_date", old.FAFOCompletedDate != nil) {
		at := old.FAFOCompletedDate.UTC()
		p.FAFOCompletedDate = &at
	}
	if take("honor_score", old.HonorScore != nil) {
		p.HonorScore = *old.HonorScore
	}
	if take("is_cheater", old.IsCheater != nil) {
		p.IsCheater = *old.IsCheater
	}
	if take("bounty_hunter_count", old.BountyHunterCount != nil) {
		p.BountyHunterCount = *old.BountyHunterCount
	}
	for id, sub := range old.Submissions {
		cur, ok := p.Submissions[id]
		if !ok || cur.ProofURL != "" || sub.ProofURL == "" {
			continue
		}
		cur.ProofURL = sub.ProofURL
		if cur.Status == "" {
			cur.Status = models.SubmissionSubmitted
		}
		p.Submissions[id] = cur
		adopted = true
	}
	return adopted, nil
}

func dedupeInts(in []int) []int {
	seen := make(map[int]bool, len(in))
	out := make([]int, 0, len(in))
	for _, v := range in {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
