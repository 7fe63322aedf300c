package commands_test

import (
	"testing"

	"neushop/internal/core/application/usecases/commands"
	"neushop/internal/core/domain/model/cart"
	"neushop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddCartItemCommand(t *testing.T) {
	t.Run("should return error with invalid session id", func(t *testing.T) {
		_, err := commands.NewAddCartItemCommand(
			kernel.UUID{}, "prod-1", "Linen Shirt", mustMoney(t, "24.50"), 1, cart.Variant{}, "",
		)
		require.Error(t, err)
	})

	t.Run("should return error with empty product id", func(t *testing.T) {
		_, err := commands.NewAddCartItemCommand(
			kernel.NewUUID(), "", "Linen Shirt", mustMoney(t, "24.50"), 1, cart.Variant{}, "",
		)
		require.Error(t, err)
	})

	t.Run("should clamp quantity to one", func(t *testing.T) {
		cmd, err := commands.NewAddCartItemCommand(
			kernel.NewUUID(), "prod-1", "Linen Shirt", mustMoney(t, "24.50"), 0, cart.Variant{}, "",
		)
		require.NoError(t, err)
		assert.Equal(t, 1, cmd.Line().Quantity)
	})
}

func TestAddCartItemCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("should add a line to a fresh session", func(t *testing.T) {
		store := newFakeSessionStore()
		sessionID := kernel.NewUUID()
		h := commands.NewAddCartItemCommandHandler(store)

		err := h.Handle(ctx, mustAddCartItemCommand(t, sessionID, "prod-1", 2))

		require.NoError(t, err)
		s := sessionState(t, store, sessionID)
		assert.Equal(t, 1, s.Cart().Size())
		assert.True(t, s.Cart().TotalAmount().IsEqual(mustMoney(t, "49.00")))
	})

	t.Run("should merge lines with the same identity", func(t *testing.T) {
		store := newFakeSessionStore()
		sessionID := kernel.NewUUID()
		h := commands.NewAddCartItemCommandHandler(store)

		require.NoError(t, h.Handle(ctx, mustAddCartItemCommand(t, sessionID, "prod-1", 2)))
		require.NoError(t, h.Handle(ctx, mustAddCartItemCommand(t, sessionID, "prod-1", 3)))

		s := sessionState(t, store, sessionID)
		assert.Equal(t, 1, s.Cart().Size())
		assert.Equal(t, 5, s.Cart().Lines()[0].Quantity)
	})

	t.Run("should keep different variants on separate lines", func(t *testing.T) {
		store := newFakeSessionStore()
		sessionID := kernel.NewUUID()
		h := commands.NewAddCartItemCommandHandler(store)

		cmdA, err := commands.NewAddCartItemCommand(
			sessionID, "prod-1", "Linen Shirt", mustMoney(t, "24.50"), 1, cart.NewVariant("white", "M"), "",
		)
		require.NoError(t, err)
		cmdB, err := commands.NewAddCartItemCommand(
			sessionID, "prod-1", "Linen Shirt", mustMoney(t, "24.50"), 1, cart.NewVariant("white", "L"), "",
		)
		require.NoError(t, err)

		require.NoError(t, h.Handle(ctx, cmdA))
		require.NoError(t, h.Handle(ctx, cmdB))

		assert.Equal(t, 2, sessionState(t, store, sessionID).Cart().Size())
	})

	t.Run("should reject an unconstructed command", func(t *testing.T) {
		store := newFakeSessionStore()
		h := commands.NewAddCartItemCommandHandler(store)

		err := h.Handle(ctx, commands.AddCartItemCommand{})

		assert.ErrorIs(t, err, commands.ErrAddCartItemCommandIsNotConstructed)
	})
}
