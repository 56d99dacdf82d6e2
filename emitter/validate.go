package emitter

import (
	"sort"

	"github.com/dshills/pulse/emitter/suggest"
)

// ValidatedEmitter wraps an Emitter with a declared allow-list of event
// types. Emissions of undeclared types are rejected with an
// UnknownEventTypeError instead of silently reaching no one. Registration
// and removal pass through unchanged.
type ValidatedEmitter struct {
	inner    Emitter
	declared map[EventType]struct{}

	// names holds the declared types sorted for deterministic suggestions.
	names []string

	suggestions bool
}

// ValidatorOption configures a ValidatedEmitter.
type ValidatorOption func(*ValidatedEmitter)

// WithSuggestions enables nearest-match "did you mean" hints on rejected
// emissions. Intended for development builds; the lookup costs an edit
// distance computation per declared type.
func WithSuggestions(enabled bool) ValidatorOption {
	return func(v *ValidatedEmitter) {
		v.suggestions = enabled
	}
}

// NewValidatedEmitter wraps inner, allowing only the given event types
// through Emit and EmitAndHold.
func NewValidatedEmitter(inner Emitter, types []EventType, opts ...ValidatorOption) *ValidatedEmitter {
	v := &ValidatedEmitter{
		inner:    inner,
		declared: make(map[EventType]struct{}, len(types)),
		names:    make([]string, 0, len(types)),
	}
	for _, typ := range types {
		if _, ok := v.declared[typ]; ok {
			continue
		}
		v.declared[typ] = struct{}{}
		v.names = append(v.names, string(typ))
	}
	sort.Strings(v.names)

	for _, opt := range opts {
		opt(v)
	}
	return v
}

// AddListener registers fn for typ on the wrapped emitter.
func (v *ValidatedEmitter) AddListener(typ EventType, fn Listener, opts ...SubscriptionOption) *Subscription {
	return v.inner.AddListener(typ, fn, opts...)
}

// Once registers fn for typ on the wrapped emitter, delivered at most once.
func (v *ValidatedEmitter) Once(typ EventType, fn Listener, opts ...SubscriptionOption) *Subscription {
	return v.inner.Once(typ, fn, opts...)
}

// RemoveAllListeners clears the given types, or every type if none given.
func (v *ValidatedEmitter) RemoveAllListeners(types ...EventType) {
	v.inner.RemoveAllListeners(types...)
}

// Listeners returns the active listeners for typ in registration order.
func (v *ValidatedEmitter) Listeners(typ EventType) []Listener {
	return v.inner.Listeners(typ)
}

// Emit delivers the event through the wrapped emitter. Returns an
// UnknownEventTypeError when typ is not declared.
func (v *ValidatedEmitter) Emit(typ EventType, args ...any) error {
	if err := v.check(typ); err != nil {
		return err
	}
	v.inner.Emit(typ, args...)
	return nil
}

// EmitAndHold delivers and retains the event through the wrapped emitter.
// Returns an UnknownEventTypeError when typ is not declared, or
// ErrHoldingNotSupported when the wrapped emitter cannot hold events.
func (v *ValidatedEmitter) EmitAndHold(typ EventType, args ...any) error {
	if err := v.check(typ); err != nil {
		return err
	}
	h, ok := v.inner.(interface{ EmitAndHold(EventType, ...any) })
	if !ok {
		return ErrHoldingNotSupported
	}
	h.EmitAndHold(typ, args...)
	return nil
}

// check returns the rejection error for an undeclared type, nil otherwise.
func (v *ValidatedEmitter) check(typ EventType) error {
	if _, ok := v.declared[typ]; ok {
		return nil
	}
	err := &UnknownEventTypeError{Type: typ}
	if v.suggestions {
		if match, ok := suggest.Closest(string(typ), v.names); ok {
			err.Suggestion = EventType(match)
		}
	}
	return err
}
