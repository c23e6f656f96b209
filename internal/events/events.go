// Package events provides a synchronous publish/subscribe bus for game events.
// Observers run on the caller's goroutine, in registration order, before
// Notify returns.
package events

// Kind identifies what happened.
type Kind int

const (
	PlayerMoved Kind = iota
	CacheSpawned
	CoinCollected
	CoinDeposited
	StateSaved
	StateLoaded
	GameReset
	NotFound     // A collect or deposit referenced a coin that was not there
	EmptyHistory // An undo was requested with nothing saved
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case PlayerMoved:
		return "player moved"
	case CacheSpawned:
		return "cache spawned"
	case CoinCollected:
		return "coin collected"
	case CoinDeposited:
		return "coin deposited"
	case StateSaved:
		return "state saved"
	case StateLoaded:
		return "state loaded"
	case GameReset:
		return "game reset"
	case NotFound:
		return "not found"
	case EmptyHistory:
		return "empty history"
	default:
		return "unknown"
	}
}

// Event is a single notification delivered to observers.
type Event struct {
	Kind    Kind
	Message string
}

// Observer receives events from a Bus.
// Observers are compared by identity, so implementations should be pointers.
type Observer interface {
	OnEvent(Event)
}

// FuncObserver adapts a function to Observer. Always use it through the
// pointer returned by ObserverFunc so it can be removed again.
type FuncObserver struct {
	fn func(Event)
}

// ObserverFunc wraps fn in a removable observer handle.
func ObserverFunc(fn func(Event)) *FuncObserver {
	return &FuncObserver{fn: fn}
}

// OnEvent implements Observer.
func (o *FuncObserver) OnEvent(e Event) {
	o.fn(e)
}
