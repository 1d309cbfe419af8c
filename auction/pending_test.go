package auction

import (
	"testing"
	"time"

	"github.com/dan13ram/auction-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingRegistry(t *testing.T) {
	t.Run("Begin And End", func(t *testing.T) {
		r := NewPendingRegistry(nil)

		action, err := r.Begin(identityA, models.ActionBid)
		require.NoError(t, err)
		assert.NotEmpty(t, action.ID)
		assert.Equal(t, identityA, action.Identity)
		assert.Equal(t, models.ActionStateSubmitting, r.State(identityA, models.ActionBid))

		r.End(action)
		assert.Equal(t, models.ActionStateIdle, r.State(identityA, models.ActionBid))
		assert.Empty(t, r.List())
	})

	t.Run("Same Kind Same Identity", func(t *testing.T) {
		r := NewPendingRegistry(nil)
		_, err := r.Begin(identityA, models.ActionBid)
		require.NoError(t, err)

		_, err = r.Begin(identityA, models.ActionBid)
		assert.ErrorIs(t, err, models.ErrActionInProgress)
		assert.Len(t, r.List(), 1)
	})

	t.Run("Different Kind Or Identity", func(t *testing.T) {
		r := NewPendingRegistry(nil)
		_, err := r.Begin(identityA, models.ActionBid)
		require.NoError(t, err)

		_, err = r.Begin(identityA, models.ActionWithdraw)
		assert.NoError(t, err)
		_, err = r.Begin(identityB, models.ActionBid)
		assert.NoError(t, err)
		assert.Len(t, r.List(), 3)
	})

	t.Run("End Of Replaced Action", func(t *testing.T) {
		r := NewPendingRegistry(nil)
		first, err := r.Begin(identityA, models.ActionBid)
		require.NoError(t, err)
		r.End(first)
		second, err := r.Begin(identityA, models.ActionBid)
		require.NoError(t, err)

		r.End(first)

		assert.Equal(t, models.ActionStateSubmitting, r.State(identityA, models.ActionBid))
		r.End(second)
		assert.Equal(t, models.ActionStateIdle, r.State(identityA, models.ActionBid))
	})

	t.Run("List Oldest First", func(t *testing.T) {
		r := NewPendingRegistry(nil)
		first, _ := r.Begin(identityA, models.ActionBid)
		time.Sleep(time.Millisecond)
		second, _ := r.Begin(identityB, models.ActionWithdraw)

		list := r.List()
		require.Len(t, list, 2)
		assert.Equal(t, first.ID, list[0].ID)
		assert.Equal(t, second.ID, list[1].ID)
	})
}
