package event

import (
	"go.uber.org/zap"
)

// Listeners receive marketplace actions after a mutating operation commits.
// Dispatch is asynchronous: emission never blocks settlement, and callbacks
// run outside the marketplace lock.
var listeners = make(map[Type][]chan interface{})

func AddEventListener(eventType Type, callback func(msg interface{})) {
	channel := make(chan interface{})
	listeners[eventType] = append(listeners[eventType], channel)

	zap.L().With(zap.String("type", string(eventType))).Debug("EventManager: Listener registered")

	go func() {
		for msg := range channel {
			callback(msg)
		}
	}()
}

func EmitEvent(eventType Type, msg interface{}) {
	subscribed := listeners[eventType]
	if len(subscribed) == 0 {
		return
	}

	zap.L().With(zap.String("type", string(eventType))).Debug("EventManager: Emit")

	for _, channel := range subscribed {
		go func(channel chan interface{}) {
			channel <- msg
		}(channel)
	}
}
