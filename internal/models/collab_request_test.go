package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollabStatusTransitions(t *testing.T) {
	cases := []struct {
		from    CollabStatus
		to      CollabStatus
		allowed bool
	}{
		{CollabStatusPending, CollabStatusAccepted, true},
		{CollabStatusPending, CollabStatusDeclined, true},
		{CollabStatusPending, CollabStatusCancelled, true},
		{CollabStatusPending, CollabStatusCompleted, false},
		{CollabStatusPending, CollabStatusPending, false},
		{CollabStatusAccepted, CollabStatusCancelled, true},
		{CollabStatusAccepted, CollabStatusCompleted, true},
		{CollabStatusAccepted, CollabStatusAccepted, false},
		{CollabStatusAccepted, CollabStatusDeclined, false},
		{CollabStatusAccepted, CollabStatusPending, false},
		{CollabStatusDeclined, CollabStatusPending, false},
		{CollabStatusDeclined, CollabStatusAccepted, false},
		{CollabStatusCancelled, CollabStatusCompleted, false},
		{CollabStatusCompleted, CollabStatusCancelled, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestCollabStatusTerminal(t *testing.T) {
	assert.False(t, CollabStatusPending.Terminal())
	assert.False(t, CollabStatusAccepted.Terminal())
	assert.True(t, CollabStatusDeclined.Terminal())
	assert.True(t, CollabStatusCancelled.Terminal())
	assert.True(t, CollabStatusCompleted.Terminal())
}

func TestCollabStatusValid(t *testing.T) {
	for _, s := range []CollabStatus{
		CollabStatusPending, CollabStatusAccepted, CollabStatusDeclined,
		CollabStatusCancelled, CollabStatusCompleted,
	} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, CollabStatus("REJECTED").Valid())
	assert.False(t, CollabStatus("pending").Valid())
	assert.False(t, CollabStatus("").Valid())
}

func TestCollabRequestIsParty(t *testing.T) {
	req := &CollabRequest{RequesterID: 1, ReceiverID: 2}
	assert.True(t, req.IsParty(1))
	assert.True(t, req.IsParty(2))
	assert.False(t, req.IsParty(3))
}
