package push

import (
	"context"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"

	"push-console/internal/common/apperr"
	"push-console/internal/fcm"
)

// FCM registration tokens are long opaque strings; anything at or below
// this length is rejected before reaching the provider.
const minTokenLength = 20

// IsValidToken runs the minimal validity check applied before every send
func IsValidToken(token string) bool {
	return len(token) > minTokenLength
}

// Gateway sends exactly one composed message per call and classifies the
// provider response. Stateless between calls; no retries.
type Gateway struct {
	sender fcm.Sender
	logger *zap.Logger
}

func NewGateway(sender fcm.Sender, logger *zap.Logger) *Gateway {
	return &Gateway{
		sender: sender,
		logger: logger,
	}
}

// Deliver sends msg to the target. Exactly one of Token, Tokens, Platform,
// Topic must be set; the target is validated before any provider call.
func (g *Gateway) Deliver(ctx context.Context, msg Message, target Target) (*Result, error) {
	modes := 0
	if target.Token != "" {
		modes++
	}
	if len(target.Tokens) > 0 {
		modes++
	}
	if target.Platform != "" {
		modes++
	}
	if target.Topic != "" {
		modes++
	}
	if modes == 0 {
		return nil, apperr.ErrMissingTarget
	}
	if modes > 1 {
		return nil, apperr.Validationf("exactly one of token, tokens or platform must be set")
	}

	switch {
	case target.Token != "":
		return g.sendSingle(ctx, msg, &messaging.Message{Token: target.Token})
	case len(target.Tokens) > 0:
		return g.sendMulticast(ctx, msg, target.Tokens)
	case target.Topic != "":
		return g.sendTopic(ctx, msg, target.Topic)
	default:
		return g.sendPlatform(ctx, msg, target.Platform)
	}
}

func (g *Gateway) sendSingle(ctx context.Context, msg Message, out *messaging.Message) (*Result, error) {
	if !IsValidToken(out.Token) {
		return nil, apperr.ErrInvalidTarget
	}

	out.Notification = msg.Notification
	out.Data = msg.Data

	id, err := g.sender.Send(ctx, out)
	if err != nil {
		return nil, err
	}

	g.logger.Debug("single token send succeeded", zap.String("messageId", id))
	return &Result{MessageID: id, SuccessCount: 1}, nil
}

func (g *Gateway) sendMulticast(ctx context.Context, msg Message, tokens []string) (*Result, error) {
	valid := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if IsValidToken(t) {
			valid = append(valid, t)
		}
	}
	if len(valid) == 0 {
		return nil, apperr.ErrNoValidTargets
	}

	resp, err := g.sender.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens:       valid,
		Notification: msg.Notification,
		Data:         msg.Data,
	})
	if err != nil {
		return nil, err
	}

	g.logger.Debug("multicast send finished",
		zap.Int("success", resp.SuccessCount),
		zap.Int("failure", resp.FailureCount))

	return &Result{
		SuccessCount: resp.SuccessCount,
		FailureCount: resp.FailureCount,
		TotalTokens:  len(tokens),
		ValidTokens:  len(valid),
	}, nil
}

func (g *Gateway) sendTopic(ctx context.Context, msg Message, topic string) (*Result, error) {
	id, err := g.sender.Send(ctx, &messaging.Message{
		Topic:        topic,
		Notification: msg.Notification,
		Data:         msg.Data,
	})
	if err != nil {
		return nil, err
	}

	g.logger.Debug("topic send succeeded", zap.String("topic", topic), zap.String("messageId", id))
	return &Result{MessageID: id, SuccessCount: 1}, nil
}

func (g *Gateway) sendPlatform(ctx context.Context, msg Message, platform string) (*Result, error) {
	condition, err := PlatformCondition(platform)
	if err != nil {
		return nil, err
	}

	id, err := g.sender.Send(ctx, &messaging.Message{
		Condition:    condition,
		Notification: msg.Notification,
		Data:         msg.Data,
	})
	if err != nil {
		return nil, err
	}

	g.logger.Debug("platform send succeeded", zap.String("condition", condition), zap.String("messageId", id))
	return &Result{MessageID: id, SuccessCount: 1}, nil
}

// PlatformCondition translates a platform selector into the FCM
// topic-membership condition addressing that platform's subscribers
func PlatformCondition(platform string) (string, error) {
	switch platform {
	case "ios":
		return "'ios' in topics", nil
	case "android":
		return "'android' in topics", nil
	case "all":
		return "'all' in topics", nil
	default:
		return "", apperr.ErrInvalidPlatform
	}
}
