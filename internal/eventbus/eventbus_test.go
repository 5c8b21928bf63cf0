package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, ch <-chan string, want int) []string {
	t.Helper()
	var got []string
	for i := 0; i < want; i++ {
		select {
		case v := <-ch:
			got = append(got, v)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for delivery %d of %d", i+1, want)
		}
	}
	// dispatch is async, give stragglers a moment to prove absence
	select {
	case v := <-ch:
		t.Fatalf("unexpected extra delivery to %q", v)
	case <-time.After(50 * time.Millisecond):
	}
	return got
}

func TestPublishReachesSubscribers(t *testing.T) {
	bus := New()
	got := make(chan string, 10)

	bus.Subscribe(EventError, func(e DomainEvent) {
		got <- e.(ErrorEvent).Message
	})
	bus.Publish(ErrorEvent{Message: "boom"})

	assert.Equal(t, []string{"boom"}, collect(t, got, 1))
}

func TestSubscribersOnlySeeTheirEventType(t *testing.T) {
	bus := New()
	got := make(chan string, 10)

	bus.Subscribe(EventWeatherFailed, func(e DomainEvent) {
		got <- "weather"
	})
	bus.Publish(ErrorEvent{Message: "boom"})
	bus.Publish(WeatherFailedEvent{Query: "x", Message: "nope"})

	assert.Equal(t, []string{"weather"}, collect(t, got, 1))
}

func TestUnsubscribeRemovesOnlyItsOwnHandler(t *testing.T) {
	bus := New()
	got := make(chan string, 10)

	unsubA := bus.Subscribe(EventError, func(e DomainEvent) { got <- "a" })
	unsubB := bus.Subscribe(EventError, func(e DomainEvent) { got <- "b" })
	bus.Subscribe(EventError, func(e DomainEvent) { got <- "c" })

	// removing an earlier handler must not shift which handler a later
	// unsubscribe removes
	unsubA()
	unsubB()
	bus.Publish(ErrorEvent{Message: "boom"})

	assert.Equal(t, []string{"c"}, collect(t, got, 1))
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	bus := New()
	got := make(chan string, 10)

	unsubA := bus.Subscribe(EventError, func(e DomainEvent) { got <- "a" })
	bus.Subscribe(EventError, func(e DomainEvent) { got <- "b" })

	unsubA()
	unsubA()
	bus.Publish(ErrorEvent{Message: "boom"})

	require.Equal(t, []string{"b"}, collect(t, got, 1))
}

func TestPanickingHandlerDoesNotStopDispatch(t *testing.T) {
	bus := New()
	got := make(chan string, 10)

	bus.Subscribe(EventError, func(e DomainEvent) { panic("handler bug") })
	bus.Subscribe(EventError, func(e DomainEvent) { got <- "survivor" })
	bus.Publish(ErrorEvent{Message: "boom"})

	assert.Equal(t, []string{"survivor"}, collect(t, got, 1))
}
