// Package router evaluates a declarative predicate-and-target table over
// domain events read from the event bus.
package router

import (
	"fmt"
	"strings"

	"github.com/jeffleon2/draftea-webhook-pipeline/internal/models"
	"github.com/shopspring/decimal"
)

const (
	TargetAlert = "alert"
	TargetLog   = "log"

	OpGT  = "gt"
	OpGTE = "gte"
	OpLT  = "lt"
	OpLTE = "lte"
	OpEQ  = "eq"
	OpNE  = "ne"
	OpIn  = "in"
)

// RuleSet is the YAML document.
type RuleSet struct {
	Version string `yaml:"version"`
	Rules   []Rule `yaml:"rules"`
}

type Rule struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Enabled     *bool       `yaml:"enabled"`
	DetailType  string      `yaml:"detail_type"`
	Conditions  []Condition `yaml:"conditions"`
	Target      string      `yaml:"target"`
}

// Condition compares one event field against Value (or Values for "in").
type Condition struct {
	Field  string   `yaml:"field"`
	Op     string   `yaml:"op"`
	Value  string   `yaml:"value"`
	Values []string `yaml:"values"`
}

// DefaultRuleSet partitions amounts at 10000: above goes to the alert channel,
// everything else to the log sink.
func DefaultRuleSet() *RuleSet {
	return &RuleSet{
		Version: "1",
		Rules: []Rule{
			{
				Name:        "high-value-payments",
				Description: "Processed payments above 10000 alert operators",
				DetailType:  models.PaymentProcessedDetailType,
				Conditions:  []Condition{{Field: "amount", Op: OpGT, Value: "10000"}},
				Target:      TargetAlert,
			},
			{
				Name:        "standard-payments",
				Description: "Processed payments up to 10000 are logged",
				DetailType:  models.PaymentProcessedDetailType,
				Conditions:  []Condition{{Field: "amount", Op: OpLTE, Value: "10000"}},
				Target:      TargetLog,
			},
		},
	}
}

func (r Rule) IsEnabled() bool {
	return r.Enabled == nil || *r.Enabled
}

// Matches reports whether every condition holds for event.
func (r Rule) Matches(event models.DomainEvent) bool {
	if !r.IsEnabled() {
		return false
	}
	if r.DetailType != "" && r.DetailType != event.DetailType {
		return false
	}
	for _, c := range r.Conditions {
		if !c.holds(event.Detail) {
			return false
		}
	}
	return true
}

// Match returns the enabled rules that match event, in table order.
func (s *RuleSet) Match(event models.DomainEvent) []Rule {
	var matched []Rule
	for _, r := range s.Rules {
		if r.Matches(event) {
			matched = append(matched, r)
		}
	}
	return matched
}

var numericFields = map[string]bool{"amount": true, "timestamp": true, "processedAt": true}

var stringFields = map[string]bool{"paymentId": true, "provider": true, "currency": true, "status": true, "providerStatus": true}

func (c Condition) holds(p models.PaymentEvent) bool {
	if numericFields[c.Field] {
		actual, ok := numericField(p, c.Field)
		if !ok {
			return false
		}
		return compareNumeric(actual, c)
	}

	actual := stringField(p, c.Field)
	switch c.Op {
	case OpEQ:
		return strings.EqualFold(actual, c.Value)
	case OpNE:
		return !strings.EqualFold(actual, c.Value)
	case OpIn:
		for _, v := range c.Values {
			if strings.EqualFold(actual, v) {
				return true
			}
		}
	}
	return false
}

func compareNumeric(actual decimal.Decimal, c Condition) bool {
	if c.Op == OpIn {
		for _, v := range c.Values {
			if want, err := decimal.NewFromString(v); err == nil && actual.Equal(want) {
				return true
			}
		}
		return false
	}

	want, err := decimal.NewFromString(c.Value)
	if err != nil {
		return false
	}
	switch c.Op {
	case OpGT:
		return actual.GreaterThan(want)
	case OpGTE:
		return actual.GreaterThanOrEqual(want)
	case OpLT:
		return actual.LessThan(want)
	case OpLTE:
		return actual.LessThanOrEqual(want)
	case OpEQ:
		return actual.Equal(want)
	case OpNE:
		return !actual.Equal(want)
	}
	return false
}

func numericField(p models.PaymentEvent, field string) (decimal.Decimal, bool) {
	switch field {
	case "amount":
		return p.Amount, true
	case "timestamp":
		return decimal.NewFromInt(p.Timestamp), true
	case "processedAt":
		if p.ProcessedAt == nil {
			return decimal.Zero, false
		}
		return decimal.NewFromInt(*p.ProcessedAt), true
	}
	return decimal.Zero, false
}

func stringField(p models.PaymentEvent, field string) string {
	switch field {
	case "paymentId":
		return p.PaymentID
	case "provider":
		return p.Provider
	case "currency":
		return p.Currency
	case "status":
		return string(p.Status)
	case "providerStatus":
		return p.ProviderStatus
	}
	return ""
}

// Validate checks required fields, duplicate names, operators, targets and numeric values.
func Validate(set *RuleSet) error {
	if set == nil {
		return fmt.Errorf("rules: empty rule set")
	}
	if set.Version == "" {
		return fmt.Errorf("rules: version is required")
	}

	var errs []string
	names := make(map[string]bool)
	for i, r := range set.Rules {
		loc := fmt.Sprintf("rules[%d]", i)
		if r.Name == "" {
			errs = append(errs, loc+": name is required")
		} else if names[r.Name] {
			errs = append(errs, fmt.Sprintf("%s: duplicate name %q", loc, r.Name))
		}
		names[r.Name] = true

		if r.Target != TargetAlert && r.Target != TargetLog {
			errs = append(errs, fmt.Sprintf("%s: unknown target %q", loc, r.Target))
		}
		if len(r.Conditions) == 0 {
			errs = append(errs, loc+": at least one condition is required")
		}
		for j, c := range r.Conditions {
			if msg := validateCondition(c); msg != "" {
				errs = append(errs, fmt.Sprintf("%s.conditions[%d]: %s", loc, j, msg))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("rules validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func validateCondition(c Condition) string {
	switch {
	case numericFields[c.Field]:
		switch c.Op {
		case OpGT, OpGTE, OpLT, OpLTE, OpEQ, OpNE:
			if _, err := decimal.NewFromString(c.Value); err != nil {
				return fmt.Sprintf("value %q is not a number", c.Value)
			}
		case OpIn:
			if len(c.Values) == 0 {
				return "in requires values"
			}
			for _, v := range c.Values {
				if _, err := decimal.NewFromString(v); err != nil {
					return fmt.Sprintf("value %q is not a number", v)
				}
			}
		default:
			return fmt.Sprintf("unknown operator %q", c.Op)
		}
	case stringFields[c.Field]:
		switch c.Op {
		case OpEQ, OpNE:
		case OpIn:
			if len(c.Values) == 0 {
				return "in requires values"
			}
		default:
			return fmt.Sprintf("operator %q is not supported on %s", c.Op, c.Field)
		}
	default:
		return fmt.Sprintf("unknown field %q", c.Field)
	}
	return ""
}
