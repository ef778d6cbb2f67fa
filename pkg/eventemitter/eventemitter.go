package eventemitter

import "sync"

// EventEmitter dispatches messages of a single type to every subscriber.
// Each subscriber consumes its own queue on a dedicated goroutine, so a
// slow callback does not stall the emitter or the other subscribers.
type EventEmitter[T any] struct {
	mutex       sync.Mutex
	subscribers []*Subscriber[T]
}

func (eventEmitter *EventEmitter[T]) Emit(message T) {
	eventEmitter.mutex.Lock()
	subscribers := eventEmitter.subscribers
	eventEmitter.mutex.Unlock()
	for _, subscriber := range subscribers {
		subscriber.enqueue(message)
	}
}

func (eventEmitter *EventEmitter[T]) Subscribe(callback func(T)) {
	subscriber := newSubscriber(callback)
	eventEmitter.mutex.Lock()
	eventEmitter.subscribers = append(eventEmitter.subscribers, subscriber)
	eventEmitter.mutex.Unlock()
}

type Subscriber[T any] struct {
	inputQueue chan T
	callback   func(T)
}

func newSubscriber[T any](callback func(T)) *Subscriber[T] {
	instance := &Subscriber[T]{
		inputQueue: make(chan T, 1),
		callback:   callback,
	}
	go func() {
		for message := range instance.inputQueue {
			instance.callback(message)
		}
	}()
	return instance
}

func (subscriber *Subscriber[T]) enqueue(message T) {
	subscriber.inputQueue <- message
}
