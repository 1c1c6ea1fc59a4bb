// internal/event/event.go
package event

// EventType - тип события
type EventType string

// Event - структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener - интерфейс для подписчиков на события.
// Реализации должны быть сравнимыми (указатели), иначе Unsubscribe их не найдёт.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher - синхронный диспетчер событий. Все вызовы идут из одного потока кадров.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher - создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe - подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe - отписка от события. Слайс копируется, поэтому отписка
// внутри OnEvent не ломает текущую рассылку.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners, exists := d.listeners[eventType]
	if !exists {
		return
	}
	for i, l := range listeners {
		if l == listener {
			next := make([]Listener, 0, len(listeners)-1)
			next = append(next, listeners[:i]...)
			next = append(next, listeners[i+1:]...)
			if len(next) == 0 {
				delete(d.listeners, eventType)
			} else {
				d.listeners[eventType] = next
			}
			return
		}
	}
}

// UnsubscribeAll снимает подписчика со всех типов событий.
func (d *Dispatcher) UnsubscribeAll(listener Listener) {
	for eventType := range d.listeners {
		d.Unsubscribe(eventType, listener)
	}
}

// Dispatch - отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}

// ListenerCount возвращает число подписчиков на тип события.
func (d *Dispatcher) ListenerCount(eventType EventType) int {
	return len(d.listeners[eventType])
}
