package order_test

import (
	"testing"
	"time"

	"neushop/internal/core/domain/model/cart"
	"neushop/internal/core/domain/model/checkout"
	"neushop/internal/core/domain/model/kernel"
	"neushop/internal/core/domain/model/order"
	"neushop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, value string) kernel.Money {
	t.Helper()
	money, err := kernel.NewMoneyFromString(value)
	require.NoError(t, err)
	return money
}

func testLines(t *testing.T) []cart.Line {
	t.Helper()

	shirt, err := cart.NewLine("prod-1", "Linen Shirt", mustMoney(t, "24.50"), 2, cart.NewVariant("white", "M"), "")
	require.NoError(t, err)
	mug, err := cart.NewLine("prod-2", "Stoneware Mug", mustMoney(t, "11.00"), 1, cart.Variant{}, "")
	require.NoError(t, err)

	return []cart.Line{shirt, mug}
}

func testShipping() checkout.ShippingInfo {
	return checkout.ShippingInfo{
		AddressLine1: "12 Harbor Lane",
		City:         "Portsmouth",
		PostalCode:   "PO1 2AB",
		Country:      "GB",
	}
}

func testPayment() checkout.PaymentDetails {
	return checkout.PaymentDetails{
		Method:     checkout.MethodCard,
		CardHolder: "Sam Carter",
		CardNumber: "4111 1111 1111 1111",
		ExpMonth:   9,
		ExpYear:    2028,
		CVV:        "123",
	}
}

func testPayload(t *testing.T) order.SubmissionPayload {
	t.Helper()

	payload, err := order.NewSubmissionPayload(
		testLines(t),
		testShipping(),
		testPayment(),
		mustMoney(t, "60.00"),
		mustMoney(t, "6.00"),
		mustMoney(t, "66.00"),
	)
	require.NoError(t, err)
	return payload
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), testPayload(t), time.Now().UTC())
	require.NoError(t, err)
	return o
}

// orderAt walks a fresh order to the given status through table transitions.
func orderAt(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	o := newTestOrder(t)
	path := map[order.Status][]order.Status{
		order.Pending:    {},
		order.Processing: {order.Processing},
		order.Shipped:    {order.Processing, order.Shipped},
		order.Delivered:  {order.Processing, order.Shipped, order.Delivered},
	}

	steps, ok := path[status]
	require.True(t, ok, "no transition path to %s", status)
	for _, step := range steps {
		require.NoError(t, o.ChangeStatus(step, order.ActorStaff, "", time.Now().UTC()))
	}
	require.Equal(t, status, o.Status())
	return o
}

func TestNewSubmissionPayload(t *testing.T) {
	t.Run("should create payload with valid params", func(t *testing.T) {
		payload := testPayload(t)

		require.NoError(t, payload.Validate())
		assert.Len(t, payload.Items(), 2)
		assert.Equal(t, testShipping(), payload.ShippingInfo())
		assert.Equal(t, testPayment(), payload.PaymentDetails())
		assert.True(t, payload.Total().IsEqual(payload.Subtotal().Add(payload.Tax())))
	})

	t.Run("should return error with empty items", func(t *testing.T) {
		_, err := order.NewSubmissionPayload(
			nil,
			testShipping(),
			testPayment(),
			mustMoney(t, "0"),
			mustMoney(t, "0"),
			mustMoney(t, "0"),
		)

		assert.ErrorIs(t, err, order.ErrPayloadHasNoItems)
	})

	t.Run("should return error when total does not equal subtotal plus tax", func(t *testing.T) {
		_, err := order.NewSubmissionPayload(
			testLines(t),
			testShipping(),
			testPayment(),
			mustMoney(t, "60.00"),
			mustMoney(t, "6.00"),
			mustMoney(t, "70.00"),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should not share the items slice with the caller", func(t *testing.T) {
		lines := testLines(t)
		payload, err := order.NewSubmissionPayload(
			lines,
			testShipping(),
			testPayment(),
			mustMoney(t, "60.00"),
			mustMoney(t, "6.00"),
			mustMoney(t, "66.00"),
		)
		require.NoError(t, err)

		lines[0].Quantity = 99

		assert.Equal(t, 2, payload.Items()[0].Quantity)
	})

	t.Run("should return error for zero-value payload", func(t *testing.T) {
		var payload order.SubmissionPayload

		assert.ErrorIs(t, payload.Validate(), order.ErrPayloadIsNotConstructed)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending unpaid order from payload", func(t *testing.T) {
		now := time.Now().UTC()
		o, err := order.NewOrder(kernel.NewUUID(), testPayload(t), now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.PaymentUnpaid, o.PaymentStatus())
		assert.Equal(t, now, o.CreatedAt())
		assert.Equal(t, now, o.UpdatedAt())
		assert.Len(t, o.Lines(), 2)
	})

	t.Run("should store the payment descriptor redacted", func(t *testing.T) {
		o := newTestOrder(t)

		stored := o.PaymentDetails()
		assert.Empty(t, stored.CVV)
		assert.Equal(t, "****1111", stored.CardNumber)
		assert.Equal(t, "Sam Carter", stored.CardHolder)
	})

	t.Run("should return error with invalid id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, testPayload(t), time.Now().UTC())

		assert.Error(t, err)
	})

	t.Run("should return error with unconstructed payload", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), order.SubmissionPayload{}, time.Now().UTC())

		assert.ErrorIs(t, err, order.ErrPayloadIsNotConstructed)
	})

	t.Run("should return error for zero-value order", func(t *testing.T) {
		var o order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should reconstruct order as stored", func(t *testing.T) {
		id := kernel.NewUUID()
		created := time.Now().UTC().Add(-time.Hour)
		updated := time.Now().UTC()

		o, err := order.RestoreOrder(
			id,
			testLines(t),
			testShipping(),
			testPayment().Redacted(),
			mustMoney(t, "60.00"),
			mustMoney(t, "6.00"),
			mustMoney(t, "66.00"),
			order.Shipped,
			order.PaymentPaid,
			created, updated,
		)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Shipped, o.Status())
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
		assert.Equal(t, created, o.CreatedAt())
		assert.Equal(t, updated, o.UpdatedAt())
	})

	t.Run("should return error with invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(),
			testLines(t),
			testShipping(),
			testPayment().Redacted(),
			mustMoney(t, "60.00"),
			mustMoney(t, "6.00"),
			mustMoney(t, "66.00"),
			order.Unknown,
			order.PaymentUnpaid,
			time.Now().UTC(), time.Now().UTC(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should return error with no lines", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(),
			nil,
			testShipping(),
			testPayment().Redacted(),
			mustMoney(t, "0"),
			mustMoney(t, "0"),
			mustMoney(t, "0"),
			order.Pending,
			order.PaymentUnpaid,
			time.Now().UTC(), time.Now().UTC(),
		)

		assert.ErrorIs(t, err, order.ErrPayloadHasNoItems)
	})
}

func TestOrder_MarkPaid(t *testing.T) {
	t.Run("should mark unpaid order as paid", func(t *testing.T) {
		o := newTestOrder(t)
		now := time.Now().UTC()

		require.NoError(t, o.MarkPaid(now))

		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
		assert.Equal(t, now, o.UpdatedAt())
	})

	t.Run("should return error when already paid", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.MarkPaid(time.Now().UTC()))

		err := o.MarkPaid(time.Now().UTC())

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should accept pending to processing", func(t *testing.T) {
		o := newTestOrder(t)
		now := time.Now().UTC()

		err := o.ChangeStatus(order.Processing, order.ActorStaff, "", now)

		require.NoError(t, err)
		assert.Equal(t, order.Processing, o.Status())
		assert.Equal(t, now, o.UpdatedAt())
	})

	t.Run("should reject pending to shipped", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ChangeStatus(order.Shipped, order.ActorStaff, "", time.Now().UTC())

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should accept delivered to returned with reason", func(t *testing.T) {
		o := orderAt(t, order.Delivered)

		err := o.ChangeStatus(order.Returned, order.ActorShopper, "wrong size", time.Now().UTC())

		require.NoError(t, err)
		assert.Equal(t, order.Returned, o.Status())
	})

	t.Run("should reject cancelled to processing", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Cancelled, order.ActorStaff, "out of stock", time.Now().UTC()))

		err := o.ChangeStatus(order.Processing, order.ActorStaff, "", time.Now().UTC())

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should require reason for cancellation", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ChangeStatus(order.Cancelled, order.ActorStaff, "", time.Now().UTC())

		require.Error(t, err)
		var validationErr *errs.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Fields, "reason")
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should require reason for return", func(t *testing.T) {
		o := orderAt(t, order.Delivered)

		err := o.ChangeStatus(order.Returned, order.ActorShopper, "", time.Now().UTC())

		require.Error(t, err)
		var validationErr *errs.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Fields, "reason")
	})

	t.Run("should reject shopper requesting fulfilment transitions", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ChangeStatus(order.Processing, order.ActorShopper, "", time.Now().UTC())

		require.Error(t, err)
		var validationErr *errs.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Fields, "actor")
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should allow shopper to cancel a pending order", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ChangeStatus(order.Cancelled, order.ActorShopper, "changed my mind", time.Now().UTC())

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should reject unknown actor", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ChangeStatus(order.Processing, order.ActorUnknown, "", time.Now().UTC())

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should refund a paid order on cancellation", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.MarkPaid(time.Now().UTC()))

		err := o.ChangeStatus(order.Cancelled, order.ActorStaff, "out of stock", time.Now().UTC())

		require.NoError(t, err)
		assert.Equal(t, order.PaymentRefunded, o.PaymentStatus())
	})

	t.Run("should keep unpaid order unpaid on cancellation", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ChangeStatus(order.Cancelled, order.ActorStaff, "out of stock", time.Now().UTC())

		require.NoError(t, err)
		assert.Equal(t, order.PaymentUnpaid, o.PaymentStatus())
	})
}

func TestOrder_BeginStatusChange(t *testing.T) {
	t.Run("should apply transition tentatively and commit", func(t *testing.T) {
		o := newTestOrder(t)
		now := time.Now().UTC()

		change, err := o.BeginStatusChange(order.Processing, order.ActorStaff, "", now)

		require.NoError(t, err)
		assert.Equal(t, order.Processing, o.Status())

		change.Commit()
		change.Rollback()

		assert.Equal(t, order.Processing, o.Status())
		assert.Equal(t, now, o.UpdatedAt())
	})

	t.Run("should restore prior state on rollback", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.MarkPaid(time.Now().UTC()))
		prevUpdatedAt := o.UpdatedAt()

		change, err := o.BeginStatusChange(order.Cancelled, order.ActorStaff, "payment flagged", time.Now().UTC())
		require.NoError(t, err)
		require.Equal(t, order.Cancelled, o.Status())
		require.Equal(t, order.PaymentRefunded, o.PaymentStatus())

		change.Rollback()

		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
		assert.Equal(t, prevUpdatedAt, o.UpdatedAt())
	})

	t.Run("should not roll back twice", func(t *testing.T) {
		o := newTestOrder(t)

		change, err := o.BeginStatusChange(order.Processing, order.ActorStaff, "", time.Now().UTC())
		require.NoError(t, err)

		change.Rollback()
		require.NoError(t, o.ChangeStatus(order.Processing, order.ActorStaff, "", time.Now().UTC()))
		change.Rollback()

		assert.Equal(t, order.Processing, o.Status())
	})

	t.Run("should return error without state change on invalid transition", func(t *testing.T) {
		o := newTestOrder(t)

		change, err := o.BeginStatusChange(order.Delivered, order.ActorStaff, "", time.Now().UTC())

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Nil(t, change)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestActor(t *testing.T) {
	t.Run("should validate shopper and staff", func(t *testing.T) {
		assert.NoError(t, order.ActorShopper.Validate())
		assert.NoError(t, order.ActorStaff.Validate())
		assert.Error(t, order.ActorUnknown.Validate())
	})

	t.Run("should stringify actors", func(t *testing.T) {
		assert.Equal(t, "shopper", order.ActorShopper.String())
		assert.Equal(t, "staff", order.ActorStaff.String())
		assert.Equal(t, "unknown", order.ActorUnknown.String())
	})
}
