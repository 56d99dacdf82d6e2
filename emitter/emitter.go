package emitter

// EventType identifies a class of events by name.
// Examples: "buffer.changed", "cursor.moved", "session.opened"
type EventType string

// String returns the event type as a string.
func (t EventType) String() string {
	return string(t)
}

// Listener receives an event. The first argument is the registration's
// context (nil when none was supplied via WithContext); the rest are the
// arguments passed to Emit.
type Listener func(context any, args ...any)

// Emitter is the behavioral surface shared by emitter implementations.
// Callers that only register listeners and emit events can be polymorphic
// over anything that behaves like an emitter.
type Emitter interface {
	// AddListener registers fn for typ and returns its removal handle.
	AddListener(typ EventType, fn Listener, opts ...SubscriptionOption) *Subscription

	// Once registers fn for typ, delivered at most once ever.
	Once(typ EventType, fn Listener, opts ...SubscriptionOption) *Subscription

	// RemoveAllListeners clears the given types, or every type if none given.
	RemoveAllListeners(types ...EventType)

	// Listeners returns the active listeners for typ in registration order.
	Listeners(typ EventType) []Listener

	// Emit synchronously invokes every active listener for typ.
	Emit(typ EventType, args ...any)
}

// registration pairs a listener with its optional invocation context.
type registration struct {
	fn  Listener
	ctx any
}

// cursor identifies the listener slot an emission pass is invoking.
type cursor struct {
	typ EventType
	key int
}

// BaseEmitter owns the mapping from event type to registered listeners and
// performs synchronous fan-out on Emit. Not safe for concurrent use; see
// the package documentation for the reentrancy model.
type BaseEmitter struct {
	listeners map[EventType]*slotList[registration]

	// current is the slot being invoked by the innermost emission pass,
	// nil outside of Emit.
	current *cursor
}

var _ Emitter = (*BaseEmitter)(nil)

// NewBaseEmitter creates an emitter with no registered listeners.
func NewBaseEmitter() *BaseEmitter {
	return &BaseEmitter{
		listeners: make(map[EventType]*slotList[registration]),
	}
}

// AddListener registers fn for typ. The returned Subscription removes
// precisely this registration; registering the same function twice yields
// two independently removable slots.
func (e *BaseEmitter) AddListener(typ EventType, fn Listener, opts ...SubscriptionOption) *Subscription {
	var cfg SubscriptionConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	list := e.listeners[typ]
	if list == nil {
		list = &slotList[registration]{}
		e.listeners[typ] = list
	}

	key := list.add(&registration{fn: fn, ctx: cfg.Context})
	return &Subscription{owner: e, typ: typ, key: key}
}

// Once registers fn for typ, delivered at most once regardless of how many
// times typ is emitted afterward. The wrapper removes its own registration
// before delegating, so a reentrant emission from inside fn cannot deliver
// a second time.
func (e *BaseEmitter) Once(typ EventType, fn Listener, opts ...SubscriptionOption) *Subscription {
	wrapper := func(ctx any, args ...any) {
		// Cannot fail: the wrapper only runs inside an emission pass.
		_ = e.RemoveCurrentListener()
		fn(ctx, args...)
	}
	return e.AddListener(typ, wrapper, opts...)
}

// RemoveAllListeners clears every registration for the given types, or for
// all types when none are given. Listeners not yet reached by an in-progress
// emission of a cleared type are skipped.
func (e *BaseEmitter) RemoveAllListeners(types ...EventType) {
	if len(types) == 0 {
		for typ := range e.listeners {
			e.clearType(typ)
		}
		return
	}
	for _, typ := range types {
		e.clearType(typ)
	}
}

func (e *BaseEmitter) clearType(typ EventType) {
	if list := e.listeners[typ]; list != nil {
		list.clear()
		delete(e.listeners, typ)
	}
}

// RemoveCurrentListener removes the listener currently being invoked by
// Emit. Returns ErrNoCurrentListener when no emission pass is active; that
// is a programmer error, not a recoverable condition.
func (e *BaseEmitter) RemoveCurrentListener() error {
	if e.current == nil {
		return ErrNoCurrentListener
	}
	e.removeSlot(e.current.typ, e.current.key)
	return nil
}

// RemoveSubscription tombstones the slot the subscription points at. Safe
// to call on an already-removed subscription or one owned elsewhere.
func (e *BaseEmitter) RemoveSubscription(s *Subscription) {
	if s == nil || s.owner != e {
		return
	}
	s.Remove()
}

// removeSlot tombstones one registration slot. Sibling keys stay valid for
// any emission pass in progress.
func (e *BaseEmitter) removeSlot(typ EventType, key int) {
	if list := e.listeners[typ]; list != nil {
		list.remove(key)
	}
}

// Listeners returns the active listeners for typ in registration order.
func (e *BaseEmitter) Listeners(typ EventType) []Listener {
	list := e.listeners[typ]
	if list == nil {
		return nil
	}

	out := make([]Listener, 0, list.size())
	for key := 0; key < list.size(); key++ {
		if reg := list.get(key); reg != nil {
			out = append(out, reg.fn)
		}
	}
	return out
}

// Emit synchronously invokes every listener registered for typ, in
// registration order, with the registration's context and the given
// arguments. The slot keys are snapshotted at call time: listeners added
// during the pass take effect starting with the next emission, and
// listeners removed before being reached are skipped. No-op when typ has no
// listeners.
func (e *BaseEmitter) Emit(typ EventType, args ...any) {
	list := e.listeners[typ]
	if list == nil {
		return
	}

	// Save the enclosing pass's cursor so a listener that reentrantly emits
	// can still remove itself once the inner pass returns.
	prev := e.current
	defer func() { e.current = prev }()

	n := list.size()
	for key := 0; key < n; key++ {
		reg := list.get(key)
		if reg == nil {
			continue
		}
		e.current = &cursor{typ: typ, key: key}
		reg.fn(reg.ctx, args...)
	}
}
