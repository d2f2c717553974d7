package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"mission-mischief/models"
	"mission-mischief/stores"

	"go.uber.org/zap"
)

// TrialRepository is the local durable record of trials, keyed by trial id.
type TrialRepository struct {
	Store stores.DocumentStore
	mu    sync.Mutex
}

func NewTrialRepository(store stores.DocumentStore) *TrialRepository {
	return &TrialRepository{Store: store}
}

func (r *TrialRepository) load(ctx context.Context) (map[string]*models.Trial, error) {
	raw, err := r.Store.Get(ctx, TrialsKey)
	if errors.Is(err, stores.ErrNotFound) {
		return map[string]*models.Trial{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load trials: %w", err)
	}
	var list []*models.Trial
	if err := json.Unmarshal(raw, &list); err != nil {
		// Keep the unreadable body before anything can overwrite it.
		if putErr := r.Store.Put(ctx, TrialsKey+".corrupt", raw); putErr != nil {
			return nil, fmt.Errorf("failed to back up unreadable trials: %w", putErr)
		}
		zap.S().Warnf("⚠️ [TRIALS] %s: stored trials unreadable, backed up to %s.corrupt: %v", KindSchemaRecovery, TrialsKey, err)
		return map[string]*models.Trial{}, nil
	}
	out := make(map[string]*models.Trial, len(list))
	for _, t := range list {
		if t == nil || t.ID == "" {
			continue
		}
		if t.Voters == nil {
			t.Voters = []string{}
		}
		out[t.ID] = t
	}
	return out, nil
}

func (r *TrialRepository) save(ctx context.Context, trials map[string]*models.Trial) error {
	body, err := json.Marshal(sortedTrials(trials))
	if err != nil {
		return fmt.Errorf("failed to encode trials: %w", err)
	}
	if err := r.Store.Put(ctx, TrialsKey, body); err != nil {
		return fmt.Errorf("failed to save trials: %w", err)
	}
	return nil
}

// List returns every trial, newest first.
func (r *TrialRepository) List(ctx context.Context) ([]*models.Trial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	trials, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return sortedTrials(trials), nil
}

func (r *TrialRepository) Get(ctx context.Context, id string) (*models.Trial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	trials, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	t, ok := trials[id]
	if !ok {
		return nil, newErrorf("get trial", ErrTrialNotFound, "%q", id)
	}
	return t, nil
}

// Save stores t unconditionally.
func (r *TrialRepository) Save(ctx context.Context, t *models.Trial) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	trials, err := r.load(ctx)
	if err != nil {
		return err
	}
	trials[t.ID] = t.Clone()
	return r.save(ctx, trials)
}

// Changes returns the incoming trials Merge would accept, without saving.
func (r *TrialRepository) Changes(ctx context.Context, incoming []*models.Trial) ([]*models.Trial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	trials, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return newerTrials(trials, incoming), nil
}

// Merge reconciles incoming trials last-write-wins on UpdatedAt and returns
// the ones that replaced or added local state.
func (r *TrialRepository) Merge(ctx context.Context, incoming []*models.Trial) ([]*models.Trial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	trials, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	changed := newerTrials(trials, incoming)
	if len(changed) == 0 {
		return nil, nil
	}
	for _, t := range changed {
		trials[t.ID] = t.Clone()
	}
	return changed, r.save(ctx, trials)
}

func newerTrials(local map[string]*models.Trial, incoming []*models.Trial) []*models.Trial {
	var changed []*models.Trial
	seen := map[string]int{}
	for _, in := range incoming {
		if in == nil || in.ID == "" {
			continue
		}
		cur, ok := local[in.ID]
		if i, dup := seen[in.ID]; dup {
			cur, ok = changed[i], true
		}
		if ok && !in.UpdatedAt.After(cur.UpdatedAt) {
			continue
		}
		// A concluded trial never reopens.
		if ok && cur.Status == models.TrialConcluded && in.Status != models.TrialConcluded {
			continue
		}
		if i, dup := seen[in.ID]; dup {
			changed[i] = in.Clone()
			continue
		}
		seen[in.ID] = len(changed)
		changed = append(changed, in.Clone())
	}
	return changed
}

func sortedTrials(trials map[string]*models.Trial) []*models.Trial {
	out := make([]*models.Trial, 0, len(trials))
	for _, t := range trials {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
