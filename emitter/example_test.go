package emitter_test

import (
	"fmt"

	"github.com/dshills/pulse/emitter"
)

// Example_basicUsage demonstrates listener registration and emission.
func Example_basicUsage() {
	em := emitter.NewBaseEmitter()

	sub := em.AddListener("buffer.changed", func(ctx any, args ...any) {
		fmt.Println("changed:", args[0])
	})

	em.Emit("buffer.changed", "line 12")

	sub.Remove()
	em.Emit("buffer.changed", "line 13") // no listeners left

	// Output: changed: line 12
}

// Example_once demonstrates at-most-once delivery.
func Example_once() {
	em := emitter.NewBaseEmitter()

	em.Once("session.opened", func(ctx any, args ...any) {
		fmt.Println("opened:", args[0])
	})

	em.Emit("session.opened", "id-1")
	em.Emit("session.opened", "id-2")

	// Output: opened: id-1
}

// Example_heldEvents demonstrates retroactive delivery of a held backlog.
func Example_heldEvents() {
	he := emitter.NewHolding()

	// Nobody is listening yet; the events are retained.
	he.EmitAndHold("download.finished", "a.tar.gz")
	he.EmitAndHold("download.finished", "b.tar.gz")

	// The backlog arrives first, then future live emissions.
	he.AddRetroactiveListener("download.finished", func(ctx any, args ...any) {
		fmt.Println("finished:", args[0])
	})

	he.EmitAndHold("download.finished", "c.tar.gz")

	// Output:
	// finished: a.tar.gz
	// finished: b.tar.gz
	// finished: c.tar.gz
}

// Example_composition shows a type owning an emitter and forwarding to it,
// rather than inheriting emitter behavior.
func Example_composition() {
	type Downloader struct {
		events *emitter.HoldingEmitter
	}

	d := &Downloader{events: emitter.NewHolding()}

	d.events.AddListener("progress", func(ctx any, args ...any) {
		fmt.Printf("%s: %d%%\n", args[0], args[1])
	})

	d.events.Emit("progress", "a.tar.gz", 50)
	d.events.Emit("progress", "a.tar.gz", 100)

	// Output:
	// a.tar.gz: 50%
	// a.tar.gz: 100%
}

// Example_validation demonstrates the declared-type wrapper with
// development-mode suggestions.
func Example_validation() {
	manifest, err := emitter.ParseManifest([]byte(`
events:
  - name: buffer.changed
  - name: buffer.saved
`))
	if err != nil {
		fmt.Println(err)
		return
	}

	ve := emitter.NewValidatedEmitter(
		emitter.NewBaseEmitter(),
		manifest.Types(),
		emitter.WithSuggestions(true),
	)

	if err := ve.Emit("buffer.changd"); err != nil {
		fmt.Println(err)
	}

	// Output: unknown event type: buffer.changd (did you mean buffer.changed?)
}
