// internal/event/event.go
package event

// EventType names a simulation notification. The set is fixed in types.go.
type EventType string

// Event carries one notification; the payload type for each EventType is
// listed next to its constant.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener is implemented by systems that react to another system's
// changes, e.g. UnitSystem replanning when the structure layout changes.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc lets hosts and tests count or log events without a type.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher is owned by one game session and rebuilt on restart, so a
// listener never outlives the world it was subscribed for. Dispatch runs
// listeners inline, in subscription order, before returning; a listener may
// dispatch further events (a lost life can end the game) and those are
// delivered depth first.
type Dispatcher struct {
	subscribers map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{subscribers: make(map[EventType][]Listener)}
}

func (d *Dispatcher) Subscribe(t EventType, l Listener) {
	d.subscribers[t] = append(d.subscribers[t], l)
}

// Unsubscribe drops the first subscription of l to t. Listeners are
// compared with ==, so passing a ListenerFunc panics if another ListenerFunc
// is subscribed to the same type.
func (d *Dispatcher) Unsubscribe(t EventType, l Listener) {
	subs := d.subscribers[t]
	for i := range subs {
		if subs[i] == l {
			d.subscribers[t] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

func (d *Dispatcher) Dispatch(e Event) {
	for _, l := range d.subscribers[e.Type] {
		l.OnEvent(e)
	}
}
