// internal/event/event.go
package event

// EventType — тип уведомления ядра
type EventType string

// Event — уведомление, которое ядро отдаёт хосту, HUD и звуку
type Event struct {
	Type EventType
	Data interface{} // полезная нагрузка, см. types.go
}

// Listener получает уведомления, на которые подписан
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher рассылает уведомления одного шага игры подписчикам.
// Подписчики одного типа вызываются в порядке подписки.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[EventType][]Listener)}
}

// Subscribe добавляет подписчика на один тип уведомлений
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll подписывает одного слушателя сразу на несколько типов
func (d *Dispatcher) SubscribeAll(listener Listener, eventTypes ...EventType) {
	for _, t := range eventTypes {
		d.Subscribe(t, listener)
	}
}

// Unsubscribe снимает слушателя с перечисленных типов.
// Без типов снимает его со всех.
func (d *Dispatcher) Unsubscribe(listener Listener, eventTypes ...EventType) {
	if len(eventTypes) == 0 {
		for t := range d.listeners {
			eventTypes = append(eventTypes, t)
		}
	}
	for _, t := range eventTypes {
		kept := d.listeners[t][:0]
		for _, l := range d.listeners[t] {
			if !sameListener(l, listener) {
				kept = append(kept, l)
			}
		}
		if len(kept) == 0 {
			delete(d.listeners, t)
			continue
		}
		d.listeners[t] = kept
	}
}

// ListenerFunc несравнима, такого подписчика снять нельзя
func sameListener(a, b Listener) bool {
	if _, ok := a.(ListenerFunc); ok {
		return false
	}
	return a == b
}

// Dispatch вызывает подписчиков типа события. Отписка внутри
// обработчика вступает в силу со следующего события.
func (d *Dispatcher) Dispatch(event Event) {
	listeners := append([]Listener(nil), d.listeners[event.Type]...)
	for _, listener := range listeners {
		listener.OnEvent(event)
	}
}
