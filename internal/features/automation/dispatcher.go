package automation

import (
	"context"
	"time"

	"go.uber.org/zap"

	"push-console/internal/config"
	"push-console/internal/features/push"
	"push-console/pkg/utils"
)

// Dispatcher runs one rule execution: compose the notification, deliver it
// to the rule's resolved target, and write the outcome back into the rule's
// stats and history. Shared by the scheduler sweep and the event trigger.
type Dispatcher struct {
	Repo    AutomationRepository
	Gateway *push.Gateway
	Config  *config.Config
	Logger  *zap.Logger
}

func NewDispatcher(repo AutomationRepository, gateway *push.Gateway, cfg *config.Config, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		Repo:    repo,
		Gateway: gateway,
		Config:  cfg,
		Logger:  logger,
	}
}

// Execute performs a single delivery attempt for the rule. The outcome is
// recorded before any delivery error is returned to the caller; recording
// failures are logged, never surfaced.
func (d *Dispatcher) Execute(ctx context.Context, rule *AutomationRule) (*push.Result, error) {
	msg := push.Compose(push.Payload{
		Title:       rule.Notification.Title,
		Body:        rule.Notification.Body,
		ImageURL:    rule.Notification.ImageURL,
		ClickAction: rule.Notification.ClickAction,
		Data:        rule.Notification.Data,
	}, nil)

	result, err := d.Gateway.Deliver(ctx, msg, d.resolveTarget(rule))

	rec := ExecutionRecord{At: time.Now()}
	if err != nil {
		rec.Error = err.Error()
	} else {
		rec.Success = true
		rec.Recipients = result.Recipients()
	}

	if recErr := d.Repo.RecordResult(ctx, rule.ID.Hex(), rec); recErr != nil {
		d.Logger.Error("failed to record rule execution",
			zap.String("ruleId", rule.ID.Hex()), zap.Error(recErr))
	}

	return result, err
}

// resolveTarget picks the delivery address for a rule: audience rules go to
// their deterministic topic; otherwise the platform selection applies, with
// the admin token as the last-resort recipient for targetless event rules.
func (d *Dispatcher) resolveTarget(rule *AutomationRule) push.Target {
	if rule.Mode() == ModeAudience {
		return push.Target{Topic: utils.AudienceTopic(rule.AudienceName)}
	}
	if platform := rule.Target.Platform(); platform != "" {
		return push.Target{Platform: platform}
	}
	return push.Target{Token: d.Config.AdminFCMToken}
}
