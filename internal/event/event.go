// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — событие кадра. Data используется редко: события спавна и выхода без данных.
type Event struct {
	Type EventType
	Data any
}

// Listener — подписчик на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет использовать функцию как Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

type subscription struct {
	id       uint64
	listener Listener
}

// Dispatcher раздаёт события подписчикам в порядке подписки.
// Вызывается только из цикла кадра, блокировок нет.
type Dispatcher struct {
	listeners map[EventType][]subscription
	nextID    uint64
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscription),
	}
}

// Subscribe подписывает listener на eventType и возвращает функцию отписки.
// Отписка по токену, а не сравнением интерфейсов: ListenerFunc несравним.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) (unsubscribe func()) {
	d.nextID++
	id := d.nextID
	d.listeners[eventType] = append(d.listeners[eventType], subscription{id: id, listener: listener})
	return func() { d.remove(eventType, id) }
}

func (d *Dispatcher) remove(eventType EventType, id uint64) {
	subs := d.listeners[eventType]
	for i, s := range subs {
		if s.id == id {
			d.listeners[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Dispatch отправляет событие всем подписчикам его типа.
func (d *Dispatcher) Dispatch(event Event) {
	for _, s := range d.listeners[event.Type] {
		s.listener.OnEvent(event)
	}
}

// DispatchAll отправляет события по порядку.
func (d *Dispatcher) DispatchAll(events []Event) {
	for _, e := range events {
		d.Dispatch(e)
	}
}
