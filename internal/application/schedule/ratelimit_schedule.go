package schedule

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"todo-api/internal/domain/usecase/ratelimit"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

type RateLimitScheduler struct {
	cron    *cron.Cron
	useCase ratelimit.UseCase
	once    sync.Once
}

func NewRateLimitScheduler(useCase ratelimit.UseCase) *RateLimitScheduler {
	return &RateLimitScheduler{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		useCase: useCase,
	}
}

// InitRateLimitScheduleTasks registers the sweep of expired rate limit entries and starts the scheduler.
// Only the first call has an effect.
func (scheduler *RateLimitScheduler) InitRateLimitScheduleTasks(spec string) error {
	var err error
	scheduler.once.Do(func() {
		if _, err = scheduler.cron.AddFunc(spec, scheduler.SweepExpiredEntries); err != nil {
			err = fmt.Errorf("invalid rate limit sweep schedule %q: %w", spec, err)
			return
		}
		scheduler.cron.Start()
	})
	return err
}

// Stop stops the scheduler and waits for a running sweep
func (scheduler *RateLimitScheduler) Stop() {
	<-scheduler.cron.Stop().Done()
}

func (scheduler *RateLimitScheduler) SweepExpiredEntries() {
	log.Debug(msg.GetMessage("rate-limit.sweep.start"))

	removed, err := scheduler.useCase.Sweep(context.Background())
	if err != nil {
		log.Error(msg.GetMessage("rate-limit.sweep.failed"), zap.Error(err))
		return
	}

	log.Info(msg.GetMessage("rate-limit.sweep.end", removed))
}
