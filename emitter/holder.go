package emitter

// heldEvent is one retained emission record.
type heldEvent struct {
	args []any
}

// Token is an opaque handle identifying one retained event record. It stays
// valid for targeted release even as other records of the same or different
// types are added or released.
type Token struct {
	typ EventType
	key int
}

// Type returns the event type the token's record was held under.
func (t Token) Type() EventType {
	return t.typ
}

// Holder retains emitted events so they can be replayed to listeners that
// were not yet registered at emission time. Not safe for concurrent use;
// see the package documentation for the reentrancy model.
type Holder struct {
	held map[EventType]*slotList[heldEvent]

	// replays is the stack of records currently being replayed, innermost
	// last. A stack rather than a single slot: replaying a held event may
	// register a retroactive listener that triggers a nested replay.
	replays []cursor
}

// NewHolder creates a holder with no retained records.
func NewHolder() *Holder {
	return &Holder{
		held: make(map[EventType]*slotList[heldEvent]),
	}
}

// HoldEvent retains the event's arguments for later replay and returns the
// token identifying this exact record.
func (h *Holder) HoldEvent(typ EventType, args ...any) Token {
	list := h.held[typ]
	if list == nil {
		list = &slotList[heldEvent]{}
		h.held[typ] = list
	}
	key := list.add(&heldEvent{args: args})
	return Token{typ: typ, key: key}
}

// EmitToListener replays every retained record of typ to fn in insertion
// order. Records released during the pass before being reached are skipped;
// records held during the pass wait for the next replay. No-op when typ has
// no retained records.
func (h *Holder) EmitToListener(typ EventType, fn Listener, opts ...SubscriptionOption) {
	var cfg SubscriptionConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	list := h.held[typ]
	if list == nil {
		return
	}

	n := list.size()
	for key := 0; key < n; key++ {
		rec := list.get(key)
		if rec == nil {
			continue
		}
		h.replays = append(h.replays, cursor{typ: typ, key: key})
		fn(cfg.Context, rec.args...)
		h.replays = h.replays[:len(h.replays)-1]
	}
}

// ReleaseCurrentEvent releases the record the innermost replay is currently
// delivering. Returns ErrNoCurrentEvent when no replay is in progress; that
// is a programmer error, not a recoverable condition.
func (h *Holder) ReleaseCurrentEvent() error {
	if !h.releaseTop() {
		return ErrNoCurrentEvent
	}
	return nil
}

// releaseTop releases the record at the top of the replay stack, reporting
// whether a replay was in progress.
func (h *Holder) releaseTop() bool {
	if len(h.replays) == 0 {
		return false
	}
	top := h.replays[len(h.replays)-1]
	h.release(top.typ, top.key)
	return true
}

// ReleaseEvent releases the record identified by the token, whether or not
// a replay is in progress. Releasing an already-released record is a no-op.
func (h *Holder) ReleaseEvent(tok Token) {
	h.release(tok.typ, tok.key)
}

// ReleaseEventType discards every retained record of typ at once.
func (h *Holder) ReleaseEventType(typ EventType) {
	if list := h.held[typ]; list != nil {
		list.clear()
		delete(h.held, typ)
	}
}

func (h *Holder) release(typ EventType, key int) {
	if list := h.held[typ]; list != nil {
		list.remove(key)
	}
}
