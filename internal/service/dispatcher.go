package service

import (
	"strings"

	"go.uber.org/zap"

	"multimodel/internal/model"
)

// Predicate is a boolean test over normalized (lower-cased) query text,
// used to select a fixture. Predicates built by the helpers below are
// case-insensitive because both the tokens and the input are case-folded.
type Predicate func(text string) bool

// Contains matches when the query text contains the token.
func Contains(token string) Predicate {
	token = strings.ToLower(token)
	return func(text string) bool {
		return strings.Contains(text, token)
	}
}

// ContainsAll matches when the query text contains every token.
func ContainsAll(tokens ...string) Predicate {
	lowered := make([]string, len(tokens))
	for i, t := range tokens {
		lowered[i] = strings.ToLower(t)
	}
	return func(text string) bool {
		for _, t := range lowered {
			if !strings.Contains(text, t) {
				return false
			}
		}
		return true
	}
}

// HasPrefix matches when the query text starts with the prefix, ignoring
// leading whitespace.
func HasPrefix(prefix string) Predicate {
	prefix = strings.ToLower(prefix)
	return func(text string) bool {
		return strings.HasPrefix(strings.TrimSpace(text), prefix)
	}
}

// All combines predicates conjunctively.
func All(preds ...Predicate) Predicate {
	return func(text string) bool {
		for _, p := range preds {
			if !p(text) {
				return false
			}
		}
		return true
	}
}

// FixtureRule pairs a predicate with the canned result set it selects.
type FixtureRule struct {
	Name   string
	When   Predicate
	Result []model.Record
}

// Registry is an ordered, immutable sequence of fixture rules evaluated
// first-match-wins. Order is significant: a rule with more simultaneous
// keyword conditions must be registered before a broader rule that the same
// query text would also satisfy, otherwise the broad rule shadows it. The
// dispatcher has no scoring mechanism, only ordered short-circuit
// evaluation.
type Registry struct {
	rules []FixtureRule
}

// NewRegistry builds a registry from rules in registration order.
func NewRegistry(rules ...FixtureRule) *Registry {
	return &Registry{rules: append([]FixtureRule(nil), rules...)}
}

// Rules returns the registered rules in order.
func (r *Registry) Rules() []FixtureRule {
	return r.rules
}

// Dispatcher classifies raw query text against an injected registry and
// returns the first matching fixture. It holds no mutable state and is safe
// for concurrent use.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Dispatch evaluates the registry against the query text and returns the
// result of the first rule whose predicate holds. When nothing matches it
// returns a success envelope with an empty data set; there is no failure
// path. The empty string is a valid query and falls through to that
// fallback.
func (d *Dispatcher) Dispatch(rawText string) *model.ResultEnvelope {
	req := model.QueryRequest{RawText: rawText}
	text := strings.ToLower(req.RawText)

	for _, rule := range d.registry.Rules() {
		if rule.When(text) {
			zap.L().Debug("fixture rule matched",
				zap.String("rule", rule.Name),
				zap.Int("records", len(rule.Result)))
			return model.NewEnvelope(rule.Result)
		}
	}

	zap.L().Debug("no fixture rule matched, returning empty result set")
	return model.EmptyEnvelope()
}
