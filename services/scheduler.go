// services/scheduler.go
package services

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// StartTrialScheduler concludes expired trials every interval.
// The caller shuts the returned scheduler down.
func (s *PlayerService) StartTrialScheduler(ctx context.Context, interval time.Duration) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			n, err := s.ConcludeExpired(ctx)
			if err != nil {
				zap.S().Errorf("[Scheduler] Expiry sweep failed: %v", err)
				return
			}
			if n > 0 {
				zap.S().Infof("✅ [Scheduler] Auto-concluded %d expired trial(s)", n)
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, err
	}

	sched.Start()
	return sched, nil
}
