package events

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
)

// Bus fans events out to registered observers.
type Bus struct {
	observers []Observer
	logger    *log.Logger
}

// NewBus creates a bus that logs observer failures to logger.
// A nil logger discards them.
func NewBus(logger *log.Logger) *Bus {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Bus{logger: logger}
}

// AddObserver registers o. Adding an observer twice has no effect.
func (b *Bus) AddObserver(o Observer) {
	if o == nil || slices.Contains(b.observers, o) {
		return
	}
	b.observers = append(b.observers, o)
}

// RemoveObserver unregisters o. Removing an unknown observer is a no-op.
func (b *Bus) RemoveObserver(o Observer) {
	idx := slices.Index(b.observers, o)
	if idx < 0 {
		return
	}
	b.observers = slices.Delete(slices.Clone(b.observers), idx, idx+1)
}

// Len returns the number of registered observers.
func (b *Bus) Len() int {
	return len(b.observers)
}

// Notify delivers an event of the given kind to every observer.
func (b *Bus) Notify(kind Kind, message string) {
	b.Publish(Event{Kind: kind, Message: message})
}

// Notifyf is Notify with a formatted message.
func (b *Bus) Notifyf(kind Kind, format string, args ...any) {
	b.Publish(Event{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

// Publish delivers e to every observer registered at the time of the call.
// A panicking observer is logged and skipped; later observers still run.
func (b *Bus) Publish(e Event) {
	// Iterate over the current slice header; Add/Remove during delivery
	// install a new slice and do not disturb this loop.
	for _, o := range b.observers {
		b.deliver(o, e)
	}
}

func (b *Bus) deliver(o Observer, e Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("observer failed", "event", e.Kind, "panic", r)
		}
	}()
	o.OnEvent(e)
}
