package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"mission-mischief/metrics"
	"mission-mischief/models"

	"go.uber.org/zap"
)

// TrialRemote is the optional shared trial/honor store. Calls may fail or time
// out; local state stays the record of truth either way.
type TrialRemote interface {
	PushTrial(ctx context.Context, t *models.Trial) error
	PullTrials(ctx context.Context, since time.Time) ([]*models.Trial, error)
	PushHonor(ctx context.Context, rec models.HonorRecord) error
	FetchHonor(ctx context.Context, user string) (models.HonorRecord, error)
}

// PlayerService is the single writer for the local profile and trials:
// load, apply one pure transition, save.
type PlayerService struct {
	Catalog     *Catalog
	Profiles    *ProfileRepository
	Trials      *TrialRepository
	Progression *ProgressionService
	Submissions *SubmissionService
	Justice     *JusticeService
	Remote      TrialRemote // nil when running offline
	Now         func() time.Time

	mu sync.Mutex
}

func NewPlayerService(catalog *Catalog, profiles *ProfileRepository, trials *TrialRepository, remote TrialRemote) *PlayerService {
	return &PlayerService{
		Catalog:     catalog,
		Profiles:    profiles,
		Trials:      trials,
		Progression: NewProgressionService(catalog),
		Submissions: NewSubmissionService(catalog),
		Justice:     NewJusticeService(),
		Remote:      remote,
		Now:         time.Now,
	}
}

// mutate runs fn under the writer lock and persists its result. A failed fn
// saves nothing.
func (s *PlayerService) mutate(ctx context.Context, fn func(p *models.PlayerProfile) (*models.PlayerProfile, error)) (*models.PlayerProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mutateLocked(ctx, fn)
}

func (s *PlayerService) mutateLocked(ctx context.Context, fn func(p *models.PlayerProfile) (*models.PlayerProfile, error)) (*models.PlayerProfile, error) {
	p, err := s.Profiles.Load(ctx)
	if err != nil {
		return nil, err
	}
	next, err := fn(p)
	if err != nil {
		return nil, err
	}
	if err := s.Profiles.Save(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *PlayerService) Profile(ctx context.Context) (*models.PlayerProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Profiles.Load(ctx)
}

func (s *PlayerService) Snapshot(ctx context.Context) (Snapshot, error) {
	p, err := s.Profile(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return s.Progression.Snapshot(p), nil
}

// SetIdentity records the display name and the handle used in trials.
func (s *PlayerService) SetIdentity(ctx context.Context, name, handle string) (*models.PlayerProfile, error) {
	return s.mutate(ctx, func(p *models.PlayerProfile) (*models.PlayerProfile, error) {
		out := p.Clone()
		out.UserName = strings.TrimSpace(name)
		out.UserHandle = CanonicalIdentity(handle)
		return out, nil
	})
}

func (s *PlayerService) CompleteFAFO(ctx context.Context) (*models.PlayerProfile, error) {
	return s.mutate(ctx, func(p *models.PlayerProfile) (*models.PlayerProfile, error) {
		wasLatched := p.FAFOCompleted
		out := s.Submissions.CompleteFAFO(p, s.Now())
		if !wasLatched {
			zap.S().Infof("📜 [PROGRESS] FAFO signed, missions unlocked for setup")
		}
		return out, nil
	})
}

func (s *PlayerService) Submit(ctx context.Context, req SubmitRequest) (*models.PlayerProfile, error) {
	return s.mutate(ctx, func(p *models.PlayerProfile) (*models.PlayerProfile, error) {
		out, err := s.Submissions.Submit(p, req, s.Now())
		if err != nil {
			zap.S().Infof("🚫 [PROGRESS] Submission of mission %d refused: %v", req.MissionID, err)
			return nil, err
		}
		zap.S().Infof("✅ [PROGRESS] Mission %d submitted for %d pts (total %d)", req.MissionID, req.Points, out.TotalPoints)
		metrics.MissionSubmitted("submit")
		return out, nil
	})
}

// DirectSubmit is the honor-gated submission flow; it earns +1 honor.
func (s *PlayerService) DirectSubmit(ctx context.Context, req SubmitRequest) (*models.PlayerProfile, error) {
	return s.mutate(ctx, func(p *models.PlayerProfile) (*models.PlayerProfile, error) {
		if !CanStartTrial(p) {
			return nil, newErrorf("direct submit", ErrInsufficientHonor, "honor %d below %d", p.HonorScore, models.MinHonorForTrial)
		}
		now := s.Now()
		out, err := s.Submissions.Submit(p, req, now)
		if err != nil {
			return nil, err
		}
		sub := out.Submissions[req.MissionID]
		sub.Status = models.SubmissionDirect
		out.Submissions[req.MissionID] = sub
		applyHonor(out, models.SubmissionHonorReward, ReasonMissionSubmission, now)
		zap.S().Infof("✅ [PROGRESS] Mission %d posted directly, honor now %d", req.MissionID, out.HonorScore)
		metrics.MissionSubmitted("direct")
		return out, nil
	})
}

func (s *PlayerService) SelectBuyIn(ctx context.Context, id string) (*models.PlayerProfile, error) {
	return s.mutate(ctx, func(p *models.PlayerProfile) (*models.PlayerProfile, error) {
		return s.Submissions.SelectBuyIn(p, id)
	})
}

func (s *PlayerService) CompleteBuyIn(ctx context.Context, id string) (*models.PlayerProfile, error) {
	return s.mutate(ctx, func(p *models.PlayerProfile) (*models.PlayerProfile, error) {
		out, err := s.Submissions.CompleteBuyIn(p, id)
		if err != nil {
			return nil, err
		}
		if s.Progression.HasCrownOfChaos(out) && !s.Progression.HasCrownOfChaos(p) {
			zap.S().Infof("👑 [PROGRESS] Crown of Chaos earned")
		}
		return out, nil
	})
}

func (s *PlayerService) AwardBadge(ctx context.Context, id string) (*models.PlayerProfile, error) {
	return s.mutate(ctx, func(p *models.PlayerProfile) (*models.PlayerProfile, error) {
		return s.Submissions.AwardBadge(p, id)
	})
}

func (s *PlayerService) MarkDebtPaid(ctx context.Context, debtID string) (*models.PlayerProfile, error) {
	return s.mutate(ctx, func(p *models.PlayerProfile) (*models.PlayerProfile, error) {
		return MarkDebtPaid(p, debtID, s.Now())
	})
}

// Reset wipes the local profile. Trials are shared history and are kept.
func (s *PlayerService) Reset(ctx context.Context) (*models.PlayerProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	zap.S().Warnf("🧹 [PROFILE] Resetting local profile")
	return s.Profiles.Reset(ctx)
}

// outbox collects best-effort pushes to the shared store. They are sent
// after s.mu is released.
type outbox struct {
	trials []*models.Trial
	honor  *models.PlayerProfile
}

func (s *PlayerService) send(ctx context.Context, o *outbox) {
	for _, t := range o.trials {
		s.pushTrial(ctx, t)
	}
	if o.honor != nil {
		s.pushHonor(ctx, o.honor)
	}
}

// Accuse opens a trial against another player.
func (s *PlayerService) Accuse(ctx context.Context, a Accusation) (*models.Trial, error) {
	t, err := s.accuse(ctx, a)
	if err != nil {
		return nil, err
	}
	s.pushTrial(ctx, t)
	return t, nil
}

func (s *PlayerService) accuse(ctx context.Context, a Accusation) (*models.Trial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.Profiles.Load(ctx)
	if err != nil {
		return nil, err
	}
	t, err := s.Justice.NewTrial(p, a, s.Now())
	if err != nil {
		return nil, err
	}
	if err := s.Trials.Save(ctx, t); err != nil {
		return nil, err
	}
	zap.S().Infof("⚖️ [JUSTICE] Trial %s opened: @%s accuses @%s", t.ID, t.Accuser, t.Accused)
	metrics.TrialOpened()
	return t, nil
}

// Vote casts a ballot; an empty voter means the local player.
func (s *PlayerService) Vote(ctx context.Context, trialID string, verdict models.Verdict, voter string) (*models.Trial, error) {
	t, err := s.vote(ctx, trialID, verdict, voter)
	if err != nil {
		return nil, err
	}
	s.pushTrial(ctx, t)
	return t, nil
}

func (s *PlayerService) vote(ctx context.Context, trialID string, verdict models.Verdict, voter string) (*models.Trial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if voter == "" {
		p, err := s.Profiles.Load(ctx)
		if err != nil {
			return nil, err
		}
		voter = p.UserHandle
	}
	t, err := s.Trials.Get(ctx, trialID)
	if err != nil {
		return nil, err
	}
	next, err := s.Justice.CastVote(t, verdict, voter, s.Now())
	if err != nil {
		return nil, err
	}
	if err := s.Trials.Save(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

// ConcludeTrial tallies a trial now and settles the local player's share.
func (s *PlayerService) ConcludeTrial(ctx context.Context, trialID string) (*models.Trial, models.TrialOutcome, error) {
	var o outbox
	concluded, outcome, err := func() (*models.Trial, models.TrialOutcome, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		t, err := s.Trials.Get(ctx, trialID)
		if err != nil {
			return nil, models.TrialOutcome{}, err
		}
		return s.concludeLocked(ctx, t, &o)
	}()
	if err != nil {
		return nil, models.TrialOutcome{}, err
	}
	s.send(ctx, &o)
	return concluded, outcome, nil
}

// concludeLocked settles the profile before saving the concluded trial, so a
// failed profile save leaves the trial active and the call can be retried.
// ApplyOutcome is idempotent, so a failed trial save is also safe to retry.
func (s *PlayerService) concludeLocked(ctx context.Context, t *models.Trial, o *outbox) (*models.Trial, models.TrialOutcome, error) {
	concluded, outcome, err := s.Justice.Conclude(t, s.Now())
	if err != nil {
		return nil, models.TrialOutcome{}, err
	}
	if err := s.settleLocked(ctx, outcome, o); err != nil {
		return nil, models.TrialOutcome{}, err
	}
	if err := s.Trials.Save(ctx, concluded); err != nil {
		return nil, models.TrialOutcome{}, err
	}
	zap.S().Infof("🔨 [JUSTICE] Trial %s concluded. %s", concluded.ID, VerdictHeadline(outcome))
	metrics.TrialConcluded(string(outcome.Verdict))
	o.trials = append(o.trials, concluded)
	return concluded, outcome, nil
}

func (s *PlayerService) settleLocked(ctx context.Context, outcome models.TrialOutcome, o *outbox) error {
	next, err := s.mutateLocked(ctx, func(p *models.PlayerProfile) (*models.PlayerProfile, error) {
		return s.Justice.ApplyOutcome(p, outcome, s.Now()), nil
	})
	if err != nil {
		return err
	}
	o.honor = next
	return nil
}

// ConcludeExpired closes every active trial past its deadline.
func (s *PlayerService) ConcludeExpired(ctx context.Context) (int, error) {
	var o outbox
	n, err := func() (int, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		trials, err := s.Trials.List(ctx)
		if err != nil {
			return 0, err
		}
		now := s.Now()
		concluded := 0
		for _, t := range trials {
			if t.Status != models.TrialActive || !t.Expired(now) {
				continue
			}
			if _, _, err := s.concludeLocked(ctx, t, &o); err != nil {
				zap.S().Errorf("❌ [JUSTICE] Failed to conclude expired trial %s: %v", t.ID, err)
				continue
			}
			concluded++
		}
		return concluded, nil
	}()
	s.send(ctx, &o)
	return n, err
}

// SyncTrials pulls remote changes since the given time and merges them
// last-write-wins. Concluded trials that arrive are settled locally before
// they are merged, so a failed settlement is retried on the next pull.
func (s *PlayerService) SyncTrials(ctx context.Context, since time.Time) (int, error) {
	if s.Remote == nil {
		return 0, nil
	}
	remote, err := s.Remote.PullTrials(ctx, since)
	if err != nil {
		return 0, err
	}

	var o outbox
	n, err := func() (int, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		changed, err := s.Trials.Changes(ctx, remote)
		if err != nil {
			return 0, err
		}
		for _, t := range changed {
			if t.Status != models.TrialConcluded || !t.Verdict.Valid() {
				continue
			}
			if err := s.settleLocked(ctx, OutcomeOf(t), &o); err != nil {
				return 0, err
			}
		}
		merged, err := s.Trials.Merge(ctx, changed)
		if err != nil {
			return 0, err
		}
		return len(merged), nil
	}()
	s.send(ctx, &o)
	return n, err
}

// ListTrials returns local trials, newest first.
func (s *PlayerService) ListTrials(ctx context.Context) ([]*models.Trial, error) {
	return s.Trials.List(ctx)
}

func (s *PlayerService) Trial(ctx context.Context, id string) (*models.Trial, error) {
	return s.Trials.Get(ctx, id)
}

// RemoteHonor fetches another player's honor from the shared store.
func (s *PlayerService) RemoteHonor(ctx context.Context, user string) (models.HonorRecord, error) {
	if s.Remote == nil {
		return models.HonorRecord{}, newError("remote honor", ErrRemoteUnavailable)
	}
	return s.Remote.FetchHonor(ctx, CanonicalIdentity(user))
}

func (s *PlayerService) pushTrial(ctx context.Context, t *models.Trial) {
	if s.Remote == nil {
		return
	}
	if err := s.Remote.PushTrial(ctx, t); err != nil {
		zap.S().Warnf("⚠️ [SYNC] Trial %s kept local only: %v", t.ID, err)
		metrics.RemoteFailure("push_trial")
	}
}

func (s *PlayerService) pushHonor(ctx context.Context, p *models.PlayerProfile) {
	if s.Remote == nil || p.UserHandle == "" {
		return
	}
	rec := models.HonorRecord{User: p.UserHandle, HonorScore: p.HonorScore, UpdatedAt: s.Now().UTC()}
	if err := s.Remote.PushHonor(ctx, rec); err != nil {
		zap.S().Warnf("⚠️ [SYNC] Honor for @%s kept local only: %v", p.UserHandle, err)
		metrics.RemoteFailure("push_honor")
	}
}
