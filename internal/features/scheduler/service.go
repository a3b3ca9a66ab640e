package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"push-console/internal/config"
	"push-console/internal/features/automation"
)

// SweepService periodically executes every enabled, due automation rule
type SweepService interface {
	Start(ctx context.Context) error
	Stop() error
	// Sweep runs one pass over the enabled rules. Exposed so a sweep can
	// be driven directly; Start schedules it on the configured period.
	Sweep(ctx context.Context)
}

type SweepServiceImpl struct {
	Repo       automation.AutomationRepository
	Dispatcher *automation.Dispatcher
	Config     *config.Config
	Logger     *zap.Logger

	scheduler *cron.Cron
	interval  time.Duration
	budget    time.Duration
}

func NewSweepService(repo automation.AutomationRepository, dispatcher *automation.Dispatcher, cfg *config.Config, logger *zap.Logger) SweepService {
	return &SweepServiceImpl{
		Repo:       repo,
		Dispatcher: dispatcher,
		Config:     cfg,
		Logger:     logger,
		interval:   time.Duration(cfg.SweepIntervalMinutes) * time.Minute,
		budget:     time.Duration(cfg.SweepBudgetSeconds) * time.Second,
	}
}

func (s *SweepServiceImpl) Start(ctx context.Context) error {
	s.scheduler = cron.New()

	spec := fmt.Sprintf("@every %dm", s.Config.SweepIntervalMinutes)
	if _, err := s.scheduler.AddFunc(spec, s.runScheduled); err != nil {
		return fmt.Errorf("failed to schedule automation sweep: %w", err)
	}

	s.scheduler.Start()
	s.Logger.Info("automation sweep scheduled", zap.String("interval", spec))
	return nil
}

func (s *SweepServiceImpl) Stop() error {
	if s.scheduler != nil {
		ctx := s.scheduler.Stop()
		<-ctx.Done()
	}
	return nil
}

func (s *SweepServiceImpl) runScheduled() {
	// Each sweep gets a fixed run budget; rules left unprocessed when it
	// expires wait for the next sweep.
	ctx, cancel := context.WithTimeout(context.Background(), s.budget)
	defer cancel()
	s.Sweep(ctx)
}

func (s *SweepServiceImpl) Sweep(ctx context.Context) {
	now := time.Now()

	rules, err := s.Repo.ListEnabled(ctx)
	if err != nil {
		s.Logger.Error("sweep: failed to load enabled rules", zap.Error(err))
		return
	}

	executed := 0
	for i := range rules {
		rule := &rules[i]

		if ctx.Err() != nil {
			s.Logger.Warn("sweep budget exhausted",
				zap.Int("executed", executed), zap.Int("total", len(rules)))
			return
		}
		if !s.eligible(rule, now) {
			continue
		}

		// One rule's failure never aborts the rest of the sweep; the
		// outcome is already recorded on the rule by the dispatcher.
		if _, err := s.Dispatcher.Execute(ctx, rule); err != nil {
			s.Logger.Error("sweep: rule execution failed",
				zap.String("ruleId", rule.ID.Hex()),
				zap.String("name", rule.Name),
				zap.Error(err))
		}
		executed++
	}

	s.Logger.Info("sweep finished",
		zap.Int("executed", executed), zap.Int("enabled", len(rules)))
}

// eligible decides whether a rule runs in this sweep. Event-triggered rules
// only fire through the trigger endpoint; audience rules without a schedule
// fire every sweep, scheduled ones when due within the sweep window.
func (s *SweepServiceImpl) eligible(rule *automation.AutomationRule, now time.Time) bool {
	if rule.Archived || rule.Mode() == automation.ModeEvent {
		return false
	}
	if rule.Schedule == nil {
		return true
	}
	return rule.Schedule.IsDue(now, s.interval)
}
