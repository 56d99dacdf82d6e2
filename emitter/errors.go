package emitter

import "errors"

// Sentinel errors for the emitter.
var (
	// ErrNoCurrentListener is returned when RemoveCurrentListener is called
	// outside an active emission pass.
	ErrNoCurrentListener = errors.New("no listener is currently being invoked")

	// ErrNoCurrentEvent is returned when ReleaseCurrentEvent is called while
	// no held-event replay is in progress.
	ErrNoCurrentEvent = errors.New("no held event is currently being emitted")

	// ErrUnknownEventType matches any UnknownEventTypeError via errors.Is.
	ErrUnknownEventType = errors.New("unknown event type")

	// ErrHoldingNotSupported is returned when EmitAndHold is called on a
	// validated emitter whose wrapped emitter cannot hold events.
	ErrHoldingNotSupported = errors.New("wrapped emitter does not support holding")
)

// UnknownEventTypeError reports an emission of an event type outside a
// validated emitter's declared set.
type UnknownEventTypeError struct {
	// Type is the undeclared event type that was emitted.
	Type EventType

	// Suggestion is the closest declared type. It is only populated when
	// suggestions are enabled and a plausible match exists.
	Suggestion EventType
}

// Error implements the error interface.
func (e *UnknownEventTypeError) Error() string {
	msg := "unknown event type: " + string(e.Type)
	if e.Suggestion != "" {
		msg += " (did you mean " + string(e.Suggestion) + "?)"
	}
	return msg
}

// Is allows errors.Is to match UnknownEventTypeError with ErrUnknownEventType.
func (e *UnknownEventTypeError) Is(target error) bool {
	return target == ErrUnknownEventType
}
