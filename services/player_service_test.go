package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"mission-mischief/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRemote struct {
	mu      sync.Mutex
	pushed  []*models.Trial
	honor   []models.HonorRecord
	pull    []*models.Trial
	pushErr error
	since   time.Time
}

func (f *fakeRemote) PushTrial(_ context.Context, t *models.Trial) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pushErr != nil {
		return f.pushErr
	}
	f.pushed = append(f.pushed, t.Clone())
	return nil
}

func (f *fakeRemote) PullTrials(_ context.Context, since time.Time) ([]*models.Trial, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.since = since
	return f.pull, nil
}

func (f *fakeRemote) PushHonor(_ context.Context, rec models.HonorRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.honor = append(f.honor, rec)
	return nil
}

func (f *fakeRemote) FetchHonor(_ context.Context, user string) (models.HonorRecord, error) {
	return models.HonorRecord{User: user, HonorScore: 42}, nil
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestPlayerService(remote TrialRemote) (*PlayerService, *testClock) {
	clock := &testClock{now: testNow}
	store := newMemStore()
	profiles := NewProfileRepository(store)
	profiles.Now = clock.Now
	svc := NewPlayerService(DefaultCatalog(), profiles, NewTrialRepository(store), remote)
	svc.Now = clock.Now
	svc.Justice = newTestJustice()
	return svc, clock
}

func TestPlayerServiceProgressionFlow(t *testing.T) {
	svc, _ := newTestPlayerService(nil)
	ctx := context.Background()

	_, err := svc.Submit(ctx, SubmitRequest{MissionID: 2, Points: 1})
	require.ErrorIs(t, err, ErrMissionLocked)

	_, err = svc.CompleteFAFO(ctx)
	require.NoError(t, err)
	_, err = svc.Submit(ctx, SubmitRequest{MissionID: 2, Points: 1})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, SubmitRequest{MissionID: 3, Points: 3})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, SubmitRequest{MissionID: 4, Points: 2, BuyInID: models.BuyInNothing})
	require.NoError(t, err)

	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateUnlockedThrottled, snap.State)
	assert.Equal(t, 6, snap.TotalPoints)

	_, err = svc.Submit(ctx, SubmitRequest{MissionID: 5, Points: 7})
	require.ErrorIs(t, err, ErrPointsOutOfRange)

	p, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.False(t, p.HasCompleted(5), "a refused submission saves nothing")

	_, err = svc.SelectBuyIn(ctx, models.BuyInCleanup)
	require.NoError(t, err)
	p, err = svc.CompleteBuyIn(ctx, models.BuyInCleanup)
	require.NoError(t, err)
	assert.Equal(t, []string{models.BuyInCleanup}, p.CompletedBuyIns)

	snap, err = svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateUnlockedOpen, snap.State)
	assert.Len(t, snap.BuyIns, 3)

	p, err = svc.Reset(ctx)
	require.NoError(t, err)
	assert.Empty(t, p.CompletedMissionIDs)
}

func TestPlayerServiceDirectSubmit(t *testing.T) {
	svc, _ := newTestPlayerService(nil)
	ctx := context.Background()

	_, err := svc.CompleteFAFO(ctx)
	require.NoError(t, err)

	p, err := svc.DirectSubmit(ctx, SubmitRequest{MissionID: 2, Points: 1})
	require.NoError(t, err)
	assert.Equal(t, 101, p.HonorScore)
	assert.Equal(t, models.SubmissionDirect, p.Submissions[2].Status)

	low := p.Clone()
	low.HonorScore = 10
	require.NoError(t, svc.Profiles.Save(ctx, low))

	_, err = svc.DirectSubmit(ctx, SubmitRequest{MissionID: 3, Points: 1})
	assert.ErrorIs(t, err, ErrInsufficientHonor)

	p, err = svc.Submit(ctx, SubmitRequest{MissionID: 3, Points: 1})
	require.NoError(t, err, "the regular flow is not honor gated")
	assert.Equal(t, 10, p.HonorScore)
}

func TestPlayerServiceTrialLifecycle(t *testing.T) {
	remote := &fakeRemote{}
	svc, clock := newTestPlayerService(remote)
	ctx := context.Background()

	_, err := svc.SetIdentity(ctx, "  Alice  ", "@Alice")
	require.NoError(t, err)

	trial, err := svc.Accuse(ctx, Accusation{Accused: "@Bob", AccusationText: "fake receipt"})
	require.NoError(t, err)
	assert.Equal(t, "alice", trial.Accuser)

	_, err = svc.Vote(ctx, trial.ID, models.VerdictInnocent, "")
	require.NoError(t, err)
	_, err = svc.Vote(ctx, trial.ID, models.VerdictGuilty, "carol")
	require.NoError(t, err)
	_, err = svc.Vote(ctx, trial.ID, models.VerdictGuilty, "@Carol")
	require.ErrorIs(t, err, ErrAlreadyVoted)

	clock.Advance(models.TrialDuration + time.Minute)
	_, err = svc.Vote(ctx, trial.ID, models.VerdictGuilty, "dave")
	require.ErrorIs(t, err, ErrTrialExpired)

	n, err := svc.ConcludeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = svc.ConcludeExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	// 1-1 tie: the accuser pays for a false accusation and earns jury duty.
	p, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100-5+1, p.HonorScore)
	require.Len(t, p.BeerDebts, 1)
	assert.Equal(t, "bob", p.BeerDebts[0].Creditor)
	assert.Equal(t, 15, p.BeerDebts[0].AmountUSD)

	p, err = svc.MarkDebtPaid(ctx, p.BeerDebts[0].ID)
	require.NoError(t, err)
	assert.Empty(t, p.PendingDebts())

	got, err := svc.Trial(ctx, trial.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VerdictInnocent, got.Verdict)

	_, _, err = svc.ConcludeTrial(ctx, trial.ID)
	assert.ErrorIs(t, err, ErrTrialConcluded)

	assert.Len(t, remote.pushed, 4, "open, two ballots, verdict")
	require.Len(t, remote.honor, 1)
	assert.Equal(t, models.HonorRecord{User: "alice", HonorScore: 96, UpdatedAt: clock.Now()}, remote.honor[0])
}

func TestPlayerServiceRemoteFailureKeepsLocalState(t *testing.T) {
	remote := &fakeRemote{pushErr: errors.New("connection refused")}
	svc, _ := newTestPlayerService(remote)
	ctx := context.Background()

	_, err := svc.SetIdentity(ctx, "", "alice")
	require.NoError(t, err)
	trial, err := svc.Accuse(ctx, Accusation{Accused: "bob"})
	require.NoError(t, err)

	list, err := svc.ListTrials(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, trial.ID, list[0].ID)
}

func TestPlayerServiceSyncSettlesRemoteVerdicts(t *testing.T) {
	remote := &fakeRemote{}
	svc, _ := newTestPlayerService(remote)
	ctx := context.Background()

	_, err := svc.SetIdentity(ctx, "Bob", "bob")
	require.NoError(t, err)

	js := newTestJustice()
	trial := openTrial(t, js)
	trial, err = js.CastVote(trial, models.VerdictGuilty, "bob", testNow)
	require.NoError(t, err)
	trial, err = js.CastVote(trial, models.VerdictGuilty, "carol", testNow)
	require.NoError(t, err)
	concluded, _, err := js.Conclude(trial, testNow.Add(time.Hour))
	require.NoError(t, err)
	remote.pull = []*models.Trial{concluded}

	since := testNow.Add(-time.Hour)
	n, err := svc.SyncTrials(ctx, since)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, since, remote.since)

	p, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.True(t, p.IsCheater)
	assert.Equal(t, 100-10+1, p.HonorScore)
	require.Len(t, p.BeerDebts, 1)
	assert.Equal(t, "alice", p.BeerDebts[0].Creditor)

	n, err = svc.SyncTrials(ctx, since)
	require.NoError(t, err)
	assert.Zero(t, n, "an unchanged trial is not settled twice")

	p, err = svc.Profile(ctx)
	require.NoError(t, err)
	assert.Len(t, p.BeerDebts, 1)
}

func TestPlayerServiceConcludeRetriesAfterProfileSaveFails(t *testing.T) {
	svc, _ := newTestPlayerService(nil)
	store := svc.Profiles.Store.(*memStore)
	ctx := context.Background()

	_, err := svc.SetIdentity(ctx, "Alice", "alice")
	require.NoError(t, err)
	trial, err := svc.Accuse(ctx, Accusation{Accused: "bob"})
	require.NoError(t, err)

	store.failPuts(ProfileKey, errors.New("disk full"))
	_, _, err = svc.ConcludeTrial(ctx, trial.ID)
	require.ErrorContains(t, err, "disk full")

	stored, err := svc.Trial(ctx, trial.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TrialActive, stored.Status, "the trial stays open until its outcome is settled")

	store.failPuts("", nil)
	_, outcome, err := svc.ConcludeTrial(ctx, trial.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VerdictInnocent, outcome.Verdict)

	p, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 95, p.HonorScore)
	assert.Len(t, p.BeerDebts, 1)
}

func TestPlayerServiceConcludeRetriesAfterTrialSaveFails(t *testing.T) {
	svc, _ := newTestPlayerService(nil)
	store := svc.Profiles.Store.(*memStore)
	ctx := context.Background()

	_, err := svc.SetIdentity(ctx, "Alice", "alice")
	require.NoError(t, err)
	trial, err := svc.Accuse(ctx, Accusation{Accused: "bob"})
	require.NoError(t, err)

	store.failPuts(TrialsKey, errors.New("disk full"))
	_, _, err = svc.ConcludeTrial(ctx, trial.ID)
	require.Error(t, err)

	store.failPuts("", nil)
	concluded, _, err := svc.ConcludeTrial(ctx, trial.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TrialConcluded, concluded.Status)

	p, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 95, p.HonorScore, "the outcome is applied once")
	assert.Len(t, p.BeerDebts, 1)
	assert.Equal(t, []string{trial.ID}, p.SettledTrialIDs)
}

func TestPlayerServiceSyncRetriesFailedSettlement(t *testing.T) {
	remote := &fakeRemote{}
	svc, _ := newTestPlayerService(remote)
	store := svc.Profiles.Store.(*memStore)
	ctx := context.Background()

	_, err := svc.SetIdentity(ctx, "Bob", "bob")
	require.NoError(t, err)

	js := newTestJustice()
	trial, err := js.CastVote(openTrial(t, js), models.VerdictGuilty, "carol", testNow)
	require.NoError(t, err)
	concluded, _, err := js.Conclude(trial, testNow.Add(time.Hour))
	require.NoError(t, err)
	remote.pull = []*models.Trial{concluded}

	store.failPuts(ProfileKey, errors.New("disk full"))
	_, err = svc.SyncTrials(ctx, testNow)
	require.Error(t, err)
	_, err = svc.Trial(ctx, concluded.ID)
	assert.ErrorIs(t, err, ErrTrialNotFound, "nothing is merged before settlement succeeds")

	store.failPuts("", nil)
	n, err := svc.SyncTrials(ctx, testNow)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	p, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.True(t, p.IsCheater)
	assert.Equal(t, 90, p.HonorScore)
}

// slowRemote blocks trial pushes until released.
type slowRemote struct {
	fakeRemote
	entered chan struct{}
	release chan struct{}
}

func (r *slowRemote) PushTrial(ctx context.Context, t *models.Trial) error {
	r.entered <- struct{}{}
	<-r.release
	return r.fakeRemote.PushTrial(ctx, t)
}

func TestPlayerServicePushDoesNotHoldWriterLock(t *testing.T) {
	remote := &slowRemote{entered: make(chan struct{}, 1), release: make(chan struct{})}
	svc, _ := newTestPlayerService(remote)
	ctx := context.Background()

	_, err := svc.SetIdentity(ctx, "Alice", "alice")
	require.NoError(t, err)

	accused := make(chan error, 1)
	go func() {
		_, err := svc.Accuse(ctx, Accusation{Accused: "bob"})
		accused <- err
	}()
	<-remote.entered

	done := make(chan error, 1)
	go func() {
		_, err := svc.CompleteFAFO(ctx)
		done <- err
	}()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("profile write waited on the shared store")
	}

	close(remote.release)
	require.NoError(t, <-accused)
}

func TestPlayerServiceOffline(t *testing.T) {
	svc, _ := newTestPlayerService(nil)
	ctx := context.Background()

	n, err := svc.SyncTrials(ctx, testNow)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = svc.RemoteHonor(ctx, "bob")
	assert.ErrorIs(t, err, ErrRemoteUnavailable)

	_, err = svc.Vote(ctx, "missing", models.VerdictGuilty, "carol")
	assert.ErrorIs(t, err, ErrTrialNotFound)
}

func TestPlayerServiceRemoteHonor(t *testing.T) {
	svc, _ := newTestPlayerService(&fakeRemote{})

	rec, err := svc.RemoteHonor(context.Background(), "@Bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", rec.User)
	assert.Equal(t, 42, rec.HonorScore)
}
