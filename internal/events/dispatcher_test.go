package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var claimed []Event
	dispatcher.Subscribe(EventEnquiryClaimed, func(_ context.Context, event Event) error {
		claimed = append(claimed, event)
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventEnquiryClaimed, EnquiryID: 7})
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	assert.Equal(t, int64(7), claimed[0].EnquiryID)

	// unrelated event types are not delivered
	err = dispatcher.Publish(context.Background(), Event{Type: EventEnquirySubmitted, EnquiryID: 8})
	require.NoError(t, err)
	assert.Len(t, claimed, 1)
}

func TestDispatcherContinuesPastHandlerErrors(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var secondCalled bool
	dispatcher.Subscribe(EventEnquirySubmitted, func(context.Context, Event) error {
		return errors.New("first handler failed")
	})
	dispatcher.Subscribe(EventEnquirySubmitted, func(context.Context, Event) error {
		secondCalled = true
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventEnquirySubmitted})
	require.NoError(t, err)
	assert.True(t, secondCalled)
}
