package services

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"mission-mischief/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TrialStreamInterval is how often the event stream polls local trials.
const TrialStreamInterval = 2 * time.Second

// TrialsUpdatedSince returns trials changed after since, oldest change first.
func (s *PlayerService) TrialsUpdatedSince(ctx context.Context, since time.Time) ([]*models.Trial, error) {
	trials, err := s.Trials.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*models.Trial
	for _, t := range trials {
		if t.UpdatedAt.After(since) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.Before(out[j].UpdatedAt) })
	return out, nil
}

// StreamTrialsSSE pushes trial changes (new accusations, ballots, verdicts)
// to the UI as server-sent events.
func (s *PlayerService) StreamTrialsSSE(c *fiber.Ctx) error {
	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("X-Accel-Buffering", "no") // nginx

	ctx := c.Context()
	cursor := s.Now().UTC()
	if since := c.Query("since"); since != "" {
		if t, err := time.Parse(time.RFC3339, since); err == nil {
			cursor = t
		}
	}

	ctx.SetBodyStreamWriter(func(w *bufio.Writer) {
		ticker := time.NewTicker(TrialStreamInterval)
		defer ticker.Stop()

		w.WriteString(":\n\n")
		if err := w.Flush(); err != nil {
			return
		}

		for {
			select {
			case <-ticker.C:
				changed, err := s.TrialsUpdatedSince(context.Background(), cursor)
				if err != nil {
					zap.S().Warnf("⚠️ [SSE] Trial poll failed: %v", err)
					continue
				}
				if len(changed) == 0 {
					// keepalive
					w.WriteString(":\n\n")
				}
				for _, t := range changed {
					if err := writeTrialEvent(w, t); err != nil {
						zap.S().Errorf("❌ [SSE] Failed to encode trial %s: %v", t.ID, err)
					}
					cursor = t.UpdatedAt
				}
				if err := w.Flush(); err != nil {
					// client went away
					return
				}
			case <-ctx.Done():
				return
			}
		}
	})
	return nil
}

func writeTrialEvent(w *bufio.Writer, t *models.Trial) error {
	payload, err := json.Marshal(t)
	if err != nil {
		return err
	}
	event := "trial"
	if t.Status == models.TrialConcluded {
		event = "verdict"
	}
	_, err = fmt.Fprintf(w, "event: %s\nid: %s\ndata: %s\n\n", event, t.ID, payload)
	return err
}
