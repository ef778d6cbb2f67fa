package eventemitter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"pbxscope.dev/analyzer/pkg/eventemitter"
)

func TestEmitWithoutSubscribers(t *testing.T) {
	emitter := eventemitter.EventEmitter[bool]{}
	emitter.Emit(true)
}

func TestEmitReachesEverySubscriber(t *testing.T) {
	emitter := eventemitter.EventEmitter[int]{}
	waitGroup := sync.WaitGroup{}
	waitGroup.Add(2)
	var first, second int
	emitter.Subscribe(func(message int) {
		first = message
		waitGroup.Done()
	})
	emitter.Subscribe(func(message int) {
		second = message
		waitGroup.Done()
	})
	emitter.Emit(42)
	waitGroup.Wait()
	assert.Equal(t, 42, first)
	assert.Equal(t, 42, second)
}

func TestEmitPreservesOrderPerSubscriber(t *testing.T) {
	emitter := eventemitter.EventEmitter[int]{}
	waitGroup := sync.WaitGroup{}
	waitGroup.Add(3)
	received := []int{}
	emitter.Subscribe(func(message int) {
		received = append(received, message)
		waitGroup.Done()
	})
	emitter.Emit(1)
	emitter.Emit(2)
	emitter.Emit(3)
	waitGroup.Wait()
	assert.Equal(t, []int{1, 2, 3}, received)
}
