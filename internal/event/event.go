// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет использовать обычную функцию как Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher — диспетчер событий.
// Системы публикуют события через Publish во время кадра, а Flush
// доставляет их подписчикам после того, как все системы отработали.
type Dispatcher struct {
	listeners map[EventType][]Listener
	queue     []Event
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Dispatch — немедленная отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// Publish ставит событие в очередь до следующего Flush.
func (d *Dispatcher) Publish(event Event) {
	d.queue = append(d.queue, event)
}

// Flush доставляет накопленные события в порядке публикации.
// События, опубликованные подписчиками во время Flush, доставляются в этом же вызове.
func (d *Dispatcher) Flush() int {
	delivered := 0
	for len(d.queue) > 0 {
		pending := d.queue
		d.queue = nil
		for _, e := range pending {
			d.Dispatch(e)
			delivered++
		}
	}
	return delivered
}

// Pending возвращает число событий в очереди.
func (d *Dispatcher) Pending() int {
	return len(d.queue)
}
