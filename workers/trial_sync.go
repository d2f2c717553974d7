// workers/trial_sync.go
package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mission-mischief/metrics"
	"mission-mischief/models"
	"mission-mischief/services"
	"mission-mischief/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Requests per second (and burst) allowed against the shared store.
const (
	DefaultSyncRate  = 5
	DefaultSyncBurst = 10
)

// TrialSyncClient talks to the shared trial/honor store over HTTP JSON.
type TrialSyncClient struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
	Limiter    *rate.Limiter // nil means unlimited
}

func NewTrialSyncClient(baseURL, token string, timeout time.Duration) *TrialSyncClient {
	return &TrialSyncClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Token:      token,
		HTTPClient: utils.NewHTTPClient(timeout),
		Limiter:    rate.NewLimiter(rate.Limit(DefaultSyncRate), DefaultSyncBurst),
	}
}

var _ services.TrialRemote = (*TrialSyncClient)(nil)

func (c *TrialSyncClient) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return fmt.Errorf("trial store rate limit: %w", err)
		}
	}

	u, err := url.Parse(c.BaseURL + path)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Service-Token", c.Token)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call trial store: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("trial store returned status %d: %s", resp.StatusCode, string(msg))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode trial store response: %w", err)
	}
	return nil
}

func (c *TrialSyncClient) PushTrial(ctx context.Context, t *models.Trial) error {
	return c.do(ctx, http.MethodPost, "/trials", nil, t, nil)
}

func (c *TrialSyncClient) PullTrials(ctx context.Context, since time.Time) ([]*models.Trial, error) {
	q := url.Values{}
	q.Set("since", since.UTC().Format(time.RFC3339))

	var response struct {
		Trials []*models.Trial `json:"trials"`
	}
	if err := c.do(ctx, http.MethodGet, "/trials", q, nil, &response); err != nil {
		return nil, err
	}
	return response.Trials, nil
}

func (c *TrialSyncClient) PushHonor(ctx context.Context, rec models.HonorRecord) error {
	return c.do(ctx, http.MethodPost, "/honor", nil, rec, nil)
}

func (c *TrialSyncClient) FetchHonor(ctx context.Context, user string) (models.HonorRecord, error) {
	q := url.Values{}
	q.Set("user", user)

	var rec models.HonorRecord
	if err := c.do(ctx, http.MethodGet, "/honor", q, nil, &rec); err != nil {
		return models.HonorRecord{}, err
	}
	return rec, nil
}

// TrialSyncer is the part of PlayerService the poller needs.
type TrialSyncer interface {
	SyncTrials(ctx context.Context, since time.Time) (int, error)
}

// PollTrials pulls remote trial changes every interval until ctx is done.
// A failed pull keeps the same window for the next tick.
func PollTrials(ctx context.Context, syncer TrialSyncer, pollInterval time.Duration) {
	zap.S().Infof("Starting trial polling every %s...", pollInterval)
	lastSyncTime := time.Now().UTC().Add(-models.TrialDuration)

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.S().Infof("Trial polling stopped.")
			return
		case <-ticker.C:
			lastSyncTime = pollOnce(ctx, syncer, lastSyncTime)
		}
	}
}

func pollOnce(ctx context.Context, syncer TrialSyncer, since time.Time) time.Time {
	started := time.Now().UTC()
	n, err := syncer.SyncTrials(ctx, since)
	if err != nil {
		zap.S().Warnf("❌ [SYNC] Error polling trials, staying on local state: %v", err)
		metrics.RemoteFailure("pull_trials")
		return since
	}
	if n == 0 {
		zap.S().Debugf("➡️ [SYNC] No new trial changes.")
	} else {
		zap.S().Infof("📥 [SYNC] Merged %d trial change(s) from shared store.", n)
	}
	return started
}
