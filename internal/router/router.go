package router

import (
	"context"
	"errors"
	"fmt"

	"github.com/jeffleon2/draftea-webhook-pipeline/internal/alerting"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/metrics"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/models"
	"github.com/sirupsen/logrus"
)

type RuleSource interface {
	Rules() *RuleSet
}

type AlertChannel interface {
	Send(ctx context.Context, alert models.Alert) error
}

// Router delivers each bus event to the target of every matching rule.
type Router struct {
	Rules  RuleSource
	Alerts AlertChannel
	Log    logrus.FieldLogger
}

func NewRouter(rules RuleSource, alerts AlertChannel) *Router {
	return &Router{Rules: rules, Alerts: alerts, Log: logrus.StandardLogger()}
}

// Route evaluates the active rule table against event. Events matching no rule are
// dropped with a debug entry.
func (r *Router) Route(ctx context.Context, event models.DomainEvent) error {
	matched := r.Rules.Rules().Match(event)
	if len(matched) == 0 {
		r.Log.WithField("payment_id", event.Detail.PaymentID).Debugf("no rule matched %s event", event.DetailType)
		return nil
	}

	var errs []error
	for _, rule := range matched {
		if err := r.deliver(ctx, rule, event); err != nil {
			errs = append(errs, fmt.Errorf("rule %s: %w", rule.Name, err))
			continue
		}
		metrics.RoutedEventsTotal.WithLabelValues(rule.Name, rule.Target).Inc()
	}
	return errors.Join(errs...)
}

func (r *Router) deliver(ctx context.Context, rule Rule, event models.DomainEvent) error {
	switch rule.Target {
	case TargetAlert:
		return r.Alerts.Send(ctx, alerting.Compose(event.Detail))
	case TargetLog:
		r.Log.WithFields(logrus.Fields{
			"rule":       rule.Name,
			"event_id":   event.ID,
			"payment_id": event.Detail.PaymentID,
			"provider":   event.Detail.Provider,
			"amount":     event.Detail.Amount.String(),
			"currency":   event.Detail.Currency,
			"status":     event.Detail.Status,
		}).Info(event.DetailType)
		return nil
	default:
		return fmt.Errorf("unknown target %q", rule.Target)
	}
}
