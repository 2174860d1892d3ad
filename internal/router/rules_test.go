package router_test

import (
	"math/rand/v2"
	"testing"

	"github.com/jeffleon2/draftea-webhook-pipeline/internal/models"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/router"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func processedEvent(amount string) models.DomainEvent {
	return models.DomainEvent{
		DetailType: models.PaymentProcessedDetailType,
		Detail: models.PaymentEvent{
			PaymentID: "pay_1",
			Provider:  "stripe",
			Amount:    decimal.RequireFromString(amount),
			Currency:  "USD",
			Status:    models.StatusProcessed,
		},
	}
}

func matchedNames(set *router.RuleSet, event models.DomainEvent) []string {
	var names []string
	for _, r := range set.Match(event) {
		names = append(names, r.Name)
	}
	return names
}

func TestDefaultRuleSet_Boundaries(t *testing.T) {
	set := router.DefaultRuleSet()
	require.NoError(t, router.Validate(set))

	assert.Equal(t, []string{"standard-payments"}, matchedNames(set, processedEvent("10000")))
	assert.Equal(t, []string{"high-value-payments"}, matchedNames(set, processedEvent("10000.01")))
	assert.Equal(t, []string{"standard-payments"}, matchedNames(set, processedEvent("0")))
}

func TestDefaultRuleSet_PartitionsNonNegativeAmounts(t *testing.T) {
	set := router.DefaultRuleSet()
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 1000; i++ {
		cents := rng.Int64N(5_000_000)
		event := processedEvent(decimal.New(cents, -2).String())
		assert.Len(t, set.Match(event), 1, "amount %s", event.Detail.Amount)
	}
}

func TestRule_IgnoresOtherDetailTypes(t *testing.T) {
	event := processedEvent("50000")
	event.DetailType = "Payment Refunded"

	assert.Empty(t, router.DefaultRuleSet().Match(event))
}

func TestRule_DisabledNeverMatches(t *testing.T) {
	disabled := false
	set := &router.RuleSet{Version: "1", Rules: []router.Rule{{
		Name:       "off",
		Enabled:    &disabled,
		Conditions: []router.Condition{{Field: "amount", Op: router.OpGTE, Value: "0"}},
		Target:     router.TargetLog,
	}}}

	assert.Empty(t, set.Match(processedEvent("1")))
}

func TestRule_StringConditions(t *testing.T) {
	set := &router.RuleSet{Version: "1", Rules: []router.Rule{
		{
			Name: "failed-stripe",
			Conditions: []router.Condition{
				{Field: "providerStatus", Op: router.OpEQ, Value: "failed"},
				{Field: "provider", Op: router.OpIn, Values: []string{"stripe", "adyen"}},
			},
			Target: router.TargetAlert,
		},
		{
			Name:       "non-usd",
			Conditions: []router.Condition{{Field: "currency", Op: router.OpNE, Value: "usd"}},
			Target:     router.TargetLog,
		},
	}}
	require.NoError(t, router.Validate(set))

	failed := processedEvent("5")
	failed.Detail.ProviderStatus = "FAILED"
	assert.Equal(t, []string{"failed-stripe"}, matchedNames(set, failed))

	eur := processedEvent("5")
	eur.Detail.Currency = "EUR"
	assert.Equal(t, []string{"non-usd"}, matchedNames(set, eur))
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	set := &router.RuleSet{Version: "1", Rules: []router.Rule{
		{Name: "a", Conditions: []router.Condition{{Field: "amount", Op: router.OpGT, Value: "ten"}}, Target: router.TargetAlert},
		{Name: "a", Conditions: []router.Condition{{Field: "amount", Op: "between", Value: "1"}}, Target: "sns"},
		{Name: "", Target: router.TargetLog},
		{Name: "b", Conditions: []router.Condition{{Field: "provider", Op: router.OpGT, Value: "x"}}, Target: router.TargetLog},
		{Name: "c", Conditions: []router.Condition{{Field: "colour", Op: router.OpEQ, Value: "x"}}, Target: router.TargetLog},
	}}

	err := router.Validate(set)

	require.Error(t, err)
	for _, want := range []string{
		`value "ten" is not a number`,
		`duplicate name "a"`,
		`unknown operator "between"`,
		`unknown target "sns"`,
		"rules[2]: name is required",
		"at least one condition is required",
		`operator "gt" is not supported on provider`,
		`unknown field "colour"`,
	} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestValidate_RequiresVersion(t *testing.T) {
	assert.ErrorContains(t, router.Validate(&router.RuleSet{}), "version is required")
	assert.Error(t, router.Validate(nil))
}
