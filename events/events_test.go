package events

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublishSubscribe(t *testing.T) {
	b := NewBus[string]()
	var got []string
	b.Subscribe("inserted", func(v string) { got = append(got, "a:"+v) })
	b.Subscribe("inserted", func(v string) { got = append(got, "b:"+v) })
	b.Subscribe("deleted", func(v string) { got = append(got, "c:"+v) })

	n := b.Publish("inserted", "10")
	require.Equal(t, 2, n)
	// Handlers run synchronously in subscription order.
	require.Equal(t, []string{"a:10", "b:10"}, got)

	n = b.Publish("deleted", "10")
	require.Equal(t, 1, n)
	require.Equal(t, []string{"a:10", "b:10", "c:10"}, got)
}

func TestPublishNoSubscribers(t *testing.T) {
	b := NewBus[int]()
	require.Zero(t, b.Publish("inserted", 1))
}

func TestUnsubscribe(t *testing.T) {
	b := NewBus[int]()
	var aCount, bCount int
	tokA := b.Subscribe("reset", func(int) { aCount++ })
	tokB := b.Subscribe("reset", func(int) { bCount++ })
	require.NotEqual(t, tokA, tokB)

	b.Publish("reset", 0)
	require.True(t, b.Unsubscribe("reset", tokA))
	b.Publish("reset", 0)

	require.Equal(t, 1, aCount)
	require.Equal(t, 2, bCount)

	// Tokens are one-shot and topic-scoped.
	require.False(t, b.Unsubscribe("reset", tokA))
	require.False(t, b.Unsubscribe("searched", tokB))
}

func TestIndependentTopics(t *testing.T) {
	b := NewBus[int]()
	var sum int
	b.Subscribe("inserted", func(v int) { sum += v })
	b.Publish("deleted", 100)
	b.Publish("inserted", 7)
	require.Equal(t, 7, sum)
}
