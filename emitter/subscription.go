package emitter

// SubscriptionConfig contains configuration for a listener registration.
type SubscriptionConfig struct {
	// Context is an optional value delivered to the listener ahead of the
	// event arguments. Nil when the registration supplied none.
	Context any
}

// SubscriptionOption is a function that configures a registration.
type SubscriptionOption func(*SubscriptionConfig)

// WithContext sets the invocation context delivered to the listener.
func WithContext(ctx any) SubscriptionOption {
	return func(c *SubscriptionConfig) {
		c.Context = ctx
	}
}

// Subscription is the ownership handle for one listener registration. It
// removes exactly the slot it was created for, independent of later
// additions or removals of other listeners for the same type.
type Subscription struct {
	owner *BaseEmitter
	typ   EventType
	key   int
}

// Type returns the event type the subscription was registered for.
func (s *Subscription) Type() EventType {
	return s.typ
}

// Remove releases the registration. Safe to call more than once; calls
// after the first are no-ops.
func (s *Subscription) Remove() {
	if s == nil || s.owner == nil {
		return
	}
	s.owner.removeSlot(s.typ, s.key)
	s.owner = nil
}
