package emitter

// retroFrame tracks one in-progress AddRetroactiveListener call: the live
// subscription it created and whether a removal was requested during its
// replay.
type retroFrame struct {
	sub    *Subscription
	remove bool
}

// HoldingEmitter composes a BaseEmitter and a Holder: live registration and
// emission are forwarded to the base emitter, while EmitAndHold additionally
// retains the event for future retroactive listeners. Not safe for
// concurrent use; see the package documentation for the reentrancy model.
type HoldingEmitter struct {
	base   *BaseEmitter
	holder *Holder

	// holding is the token of the EmitAndHold call in progress, nil
	// otherwise.
	holding *Token

	// frames has one entry per nested AddRetroactiveListener call,
	// innermost last.
	frames []retroFrame
}

var _ Emitter = (*HoldingEmitter)(nil)

// NewHoldingEmitter composes the supplied base emitter and holder. The
// caller controls their lifetimes and may share one holder across several
// emitters.
func NewHoldingEmitter(base *BaseEmitter, holder *Holder) *HoldingEmitter {
	return &HoldingEmitter{base: base, holder: holder}
}

// NewHolding is the common one-to-one wiring: a fresh BaseEmitter paired
// with a fresh Holder.
func NewHolding() *HoldingEmitter {
	return NewHoldingEmitter(NewBaseEmitter(), NewHolder())
}

// AddListener registers fn for live emissions of typ.
func (e *HoldingEmitter) AddListener(typ EventType, fn Listener, opts ...SubscriptionOption) *Subscription {
	return e.base.AddListener(typ, fn, opts...)
}

// Once registers fn for typ, delivered at most once ever.
func (e *HoldingEmitter) Once(typ EventType, fn Listener, opts ...SubscriptionOption) *Subscription {
	return e.base.Once(typ, fn, opts...)
}

// RemoveAllListeners clears the given types, or every type if none given.
func (e *HoldingEmitter) RemoveAllListeners(types ...EventType) {
	e.base.RemoveAllListeners(types...)
}

// RemoveSubscription tombstones the slot the subscription points at.
func (e *HoldingEmitter) RemoveSubscription(s *Subscription) {
	e.base.RemoveSubscription(s)
}

// Listeners returns the active listeners for typ in registration order.
func (e *HoldingEmitter) Listeners(typ EventType) []Listener {
	return e.base.Listeners(typ)
}

// Emit invokes the live listeners for typ without retaining the event.
func (e *HoldingEmitter) Emit(typ EventType, args ...any) {
	e.base.Emit(typ, args...)
}

// EmitAndHold invokes the live listeners for typ and additionally retains
// the event for future retroactive listeners. While the live pass runs, a
// listener calling ReleaseCurrentEvent releases exactly this event's record.
func (e *HoldingEmitter) EmitAndHold(typ EventType, args ...any) {
	tok := e.holder.HoldEvent(typ, args...)

	prev := e.holding
	e.holding = &tok
	defer func() { e.holding = prev }()

	e.base.Emit(typ, args...)
}

// AddRetroactiveListener registers fn for all future emissions of typ, then
// immediately replays the currently-retained records of typ to it, in that
// order. If fn calls RemoveCurrentListener during the replay, removal of
// the live registration is deferred until the replay completes. Returns the
// live subscription.
func (e *HoldingEmitter) AddRetroactiveListener(typ EventType, fn Listener, opts ...SubscriptionOption) *Subscription {
	sub := e.base.AddListener(typ, fn, opts...)

	e.frames = append(e.frames, retroFrame{sub: sub})
	e.holder.EmitToListener(typ, fn, opts...)

	frame := e.frames[len(e.frames)-1]
	e.frames = e.frames[:len(e.frames)-1]
	if frame.remove {
		sub.Remove()
	}
	return sub
}

// RemoveCurrentListener removes the listener currently executing. During a
// held-event replay there is no base-emitter cursor to target, so the live
// subscription created by the enclosing AddRetroactiveListener call is
// marked for removal once that replay finishes; otherwise the call is
// forwarded to the base emitter. Returns ErrNoCurrentListener when neither
// an emission nor a replay is active.
func (e *HoldingEmitter) RemoveCurrentListener() error {
	if n := len(e.frames); n > 0 {
		e.frames[n-1].remove = true
		return nil
	}
	return e.base.RemoveCurrentListener()
}

// ReleaseCurrentEvent releases the event currently being delivered: the one
// just retained by an in-progress EmitAndHold, or the record at the top of
// the holder's replay stack. No-op when neither is in progress.
func (e *HoldingEmitter) ReleaseCurrentEvent() {
	switch {
	case e.holding != nil:
		e.holder.ReleaseEvent(*e.holding)
	case len(e.frames) > 0:
		e.holder.releaseTop()
	}
}

// ReleaseHeldEventType discards every retained record of typ.
func (e *HoldingEmitter) ReleaseHeldEventType(typ EventType) {
	e.holder.ReleaseEventType(typ)
}
