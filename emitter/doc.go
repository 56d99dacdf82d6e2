// Package emitter provides a synchronous in-process event multicast
// primitive with optional held-event replay.
//
// Components register interest in named event types and are invoked on the
// caller's stack when such events are emitted. On top of the base emitter, a
// holder retains designated events so that listeners registered later can
// receive the backlog as well as all future emissions ("retroactive"
// listeners).
//
// # Architecture
//
//	┌──────────────────────────────────────────────┐
//	│              HoldingEmitter                   │
//	│  - EmitAndHold: live fan-out + retention      │
//	│  - AddRetroactiveListener: backlog + future   │
//	│  - routes "release current" to the owner      │
//	└──────────────────────────────────────────────┘
//	          │                        │
//	          ▼                        ▼
//	┌─────────────────┐      ┌─────────────────┐
//	│   BaseEmitter    │      │     Holder       │
//	│  - listener      │      │  - retained      │
//	│    registry      │      │    records       │
//	│  - sync fan-out  │      │  - replay stack  │
//	└─────────────────┘      └─────────────────┘
//
// # Basic Usage
//
//	em := emitter.NewBaseEmitter()
//
//	sub := em.AddListener("buffer.changed", func(ctx any, args ...any) {
//	    fmt.Println("changed:", args[0])
//	})
//
//	em.Emit("buffer.changed", "line 12")
//	sub.Remove()
//
// # Held Events
//
// A HoldingEmitter additionally retains events emitted through EmitAndHold.
// A retroactive listener first receives every retained record of its type,
// then all future live emissions:
//
//	he := emitter.NewHolding()
//	he.EmitAndHold("session.opened", "id-1")
//
//	// Fires immediately with the retained "id-1", then on future emissions.
//	he.AddRetroactiveListener("session.opened", func(ctx any, args ...any) {
//	    fmt.Println("opened:", args[0])
//	})
//
// # Reentrancy
//
// All delivery is synchronous, so listeners routinely call back into the
// emitter that is invoking them. Every mutating operation tolerates being
// called mid-iteration: removal tombstones the slot instead of shifting
// siblings, so an in-progress pass sees a stable key sequence. A listener
// may remove itself (RemoveCurrentListener), release the held record being
// replayed to it (ReleaseCurrentEvent), add listeners (which take effect on
// the next emission of that type), or register further retroactive
// listeners, triggering nested replays.
//
// Two operations are only meaningful while something is executing and
// return an error otherwise: RemoveCurrentListener outside an emission pass
// (ErrNoCurrentListener) and ReleaseCurrentEvent with no replay in progress
// (ErrNoCurrentEvent). Both indicate programmer error. Every other
// operation is total: removing a removed subscription, releasing a released
// token, or emitting a type with no listeners are defined no-ops.
//
// # Validation
//
// ValidatedEmitter wraps any Emitter with a declared allow-list of event
// types, rejecting emissions of unknown types. With suggestions enabled
// (development builds), the error names the closest declared type. The
// allow-list is typically loaded from a YAML Manifest.
//
// # Thread Safety
//
// The types in this package are NOT safe for concurrent use. Delivery is
// single-threaded and reentrant; a listener mutating the emitter that is
// invoking it is the supported form of "concurrency". Guard access
// externally if multiple goroutines share an emitter.
package emitter
