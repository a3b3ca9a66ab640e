package automation

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"push-console/internal/common/apperr"
	"push-console/internal/config"
	"push-console/internal/features/push"
)

type AutomationService interface {
	Create(ctx context.Context, input *RuleInput, actor *Principal) (*AutomationRule, error)
	Get(ctx context.Context, id string) (*AutomationRule, error)
	List(ctx context.Context, filter ListFilter) ([]AutomationRule, ListStats, error)
	Update(ctx context.Context, id string, input *RuleInput) (*AutomationRule, error)
	Toggle(ctx context.Context, id string, enabled bool) (*AutomationRule, error)
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error

	// Trigger fires the rule registered for a named application event
	Trigger(ctx context.Context, eventName string) (*push.Result, error)
	// SendTest delivers a one-off notification to a single token,
	// without touching any rule's stats
	SendTest(ctx context.Context, notification NotificationPayload, token string) (*push.Result, error)
}

type AutomationServiceImpl struct {
	Repo       AutomationRepository
	Dispatcher *Dispatcher
	Gateway    *push.Gateway
	Config     *config.Config
	Logger     *zap.Logger
}

func NewAutomationService(repo AutomationRepository, dispatcher *Dispatcher, gateway *push.Gateway, cfg *config.Config, logger *zap.Logger) AutomationService {
	return &AutomationServiceImpl{
		Repo:       repo,
		Dispatcher: dispatcher,
		Gateway:    gateway,
		Config:     cfg,
		Logger:     logger,
	}
}

func (s *AutomationServiceImpl) Create(ctx context.Context, input *RuleInput, actor *Principal) (*AutomationRule, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	enabled := s.Config.DefaultEnabled
	if input.Enabled != nil {
		enabled = *input.Enabled
	}

	rule := &AutomationRule{
		Name:         input.Name,
		EventType:    input.EventType,
		AudienceName: input.AudienceName,
		Notification: input.Notification,
		Schedule:     input.Schedule,
		Target:       input.Target,
		Enabled:      enabled,
		CreatedBy:    actor,
	}

	if err := s.Repo.Create(ctx, rule); err != nil {
		return nil, err
	}

	s.Logger.Info("automation rule created",
		zap.String("ruleId", rule.ID.Hex()), zap.String("name", rule.Name))
	return rule, nil
}

func (s *AutomationServiceImpl) Get(ctx context.Context, id string) (*AutomationRule, error) {
	rule, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, apperr.ErrNotFound
	}
	return rule, nil
}

func (s *AutomationServiceImpl) List(ctx context.Context, filter ListFilter) ([]AutomationRule, ListStats, error) {
	rules, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, ListStats{}, err
	}

	// Free-text search runs over the already-filtered set; the store only
	// sees the status/platform equality predicates.
	if filter.Search != "" {
		q := strings.ToLower(filter.Search)
		matched := rules[:0]
		for _, rule := range rules {
			if strings.Contains(strings.ToLower(rule.Name), q) ||
				strings.Contains(strings.ToLower(rule.EventType), q) {
				matched = append(matched, rule)
			}
		}
		rules = matched
	}

	return rules, aggregate(rules), nil
}

func aggregate(rules []AutomationRule) ListStats {
	stats := ListStats{Total: len(rules)}
	totalSuccess := 0
	for _, rule := range rules {
		if rule.Enabled && !rule.Archived {
			stats.Active++
		}
		stats.TodaySent += rule.Stats.Sent
		totalSuccess += rule.Stats.Success
	}
	if stats.TodaySent > 0 {
		stats.SuccessRate = int(float64(totalSuccess)/float64(stats.TodaySent)*100 + 0.5)
	}
	return stats
}

func (s *AutomationServiceImpl) Update(ctx context.Context, id string, input *RuleInput) (*AutomationRule, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	rule, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	rule.Name = input.Name
	rule.EventType = input.EventType
	rule.AudienceName = input.AudienceName
	rule.Notification = input.Notification
	rule.Schedule = input.Schedule
	rule.Target = input.Target
	if input.Enabled != nil && !rule.Archived {
		rule.Enabled = *input.Enabled
	}

	if err := s.Repo.Update(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *AutomationServiceImpl) Toggle(ctx context.Context, id string, enabled bool) (*AutomationRule, error) {
	rule, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rule.Archived {
		return nil, apperr.Validationf("archived rules cannot be enabled or disabled")
	}

	if err := s.Repo.SetEnabled(ctx, id, enabled); err != nil {
		return nil, err
	}
	rule.Enabled = enabled
	return rule, nil
}

func (s *AutomationServiceImpl) Archive(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.Repo.Archive(ctx, id)
}

func (s *AutomationServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}

func (s *AutomationServiceImpl) Trigger(ctx context.Context, eventName string) (*push.Result, error) {
	if eventName == "" {
		return nil, apperr.Validationf("eventName is required")
	}

	rule, err := s.Repo.GetByEventType(ctx, eventName)
	if err != nil {
		return nil, err
	}
	// Disabled and archived rules don't fire; callers see the same
	// not-found outcome as an unregistered event.
	if rule == nil || !rule.Enabled || rule.Archived {
		return nil, apperr.ErrNotFound
	}

	result, err := s.Dispatcher.Execute(ctx, rule)
	if err != nil {
		s.Logger.Error("event-triggered delivery failed",
			zap.String("ruleId", rule.ID.Hex()),
			zap.String("eventName", eventName),
			zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (s *AutomationServiceImpl) SendTest(ctx context.Context, notification NotificationPayload, token string) (*push.Result, error) {
	if notification.Title == "" || notification.Body == "" {
		return nil, apperr.Validationf("notification title and body are required")
	}
	if token == "" {
		return nil, apperr.Validationf("token is required")
	}

	msg := push.Compose(push.Payload{
		Title:       notification.Title,
		Body:        notification.Body,
		ImageURL:    notification.ImageURL,
		ClickAction: notification.ClickAction,
		Data:        notification.Data,
	}, &push.Override{TitlePrefix: "[TEST] "})

	return s.Gateway.Deliver(ctx, msg, push.Target{Token: token})
}
