package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmation_ConfirmFiresOnce(t *testing.T) {
	center := newTestCenter(t, Options{})

	confirmed, canceled := 0, 0
	cf := center.Confirm("Delete this entry?",
		func() { confirmed++ },
		func() { canceled++ },
	)

	cf.Confirm()
	cf.Confirm()
	cf.Cancel()

	assert.Equal(t, 1, confirmed, "confirm callback should fire exactly once")
	assert.Equal(t, 0, canceled, "cancel must not fire after resolution")
}

func TestConfirmation_CancelFiresOnce(t *testing.T) {
	center := newTestCenter(t, Options{})

	confirmed, canceled := 0, 0
	cf := center.Confirm("Clear everything?",
		func() { confirmed++ },
		func() { canceled++ },
	)

	cf.Cancel()
	cf.Cancel()
	cf.Confirm()

	assert.Equal(t, 0, confirmed)
	assert.Equal(t, 1, canceled)
}

func TestConfirmation_NilCallbacksResolve(t *testing.T) {
	center := newTestCenter(t, Options{})

	cf := center.Confirm("Proceed?", nil, nil)
	cf.Confirm()

	require.True(t, waitFor(t, time.Second, func() bool {
		return center.PendingConfirm() == nil
	}), "resolved confirmation should not stay pending")
}

func TestCenter_PendingConfirm(t *testing.T) {
	center := newTestCenter(t, Options{})

	assert.Nil(t, center.PendingConfirm())

	first := center.Confirm("first?", nil, nil)
	second := center.Confirm("second?", nil, nil)

	got := center.PendingConfirm()
	require.NotNil(t, got)
	assert.Equal(t, second.ID(), got.ID(), "most recent request wins")

	second.Cancel()

	require.True(t, waitFor(t, time.Second, func() bool {
		pending := center.PendingConfirm()
		return pending != nil && pending.ID() == first.ID()
	}), "earlier request should surface once the newer one resolves")
}

func TestConfirmation_Message(t *testing.T) {
	center := newTestCenter(t, Options{})
	cf := center.Confirm("Remove all entries in this category?", nil, nil)
	assert.Equal(t, "Remove all entries in this category?", cf.Message())
}
