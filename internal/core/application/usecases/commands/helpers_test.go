package commands_test

import (
	"context"
	"testing"

	"neushop/internal/core/application/usecases/commands"
	"neushop/internal/core/domain/model/cart"
	"neushop/internal/core/domain/model/checkout"
	"neushop/internal/core/domain/model/kernel"
	"neushop/internal/core/domain/model/session"

	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, value string) kernel.Money {
	t.Helper()
	money, err := kernel.NewMoneyFromString(value)
	require.NoError(t, err)
	return money
}

func validCustomer() checkout.CustomerInfo {
	return checkout.CustomerInfo{FullName: "Sam Carter", Email: "sam@example.com"}
}

func validShipping() checkout.ShippingInfo {
	return checkout.ShippingInfo{
		AddressLine1: "12 Harbor Lane",
		City:         "Portsmouth",
		PostalCode:   "PO1 2AB",
		Country:      "GB",
	}
}

func validPayment() checkout.PaymentDetails {
	return checkout.PaymentDetails{Method: checkout.MethodCashOnDelivery}
}

// seedCart puts one line into the session's cart through the store.
func seedCart(t *testing.T, store *fakeSessionStore, sessionID kernel.UUID) {
	t.Helper()

	line, err := cart.NewLine("prod-1", "Linen Shirt", mustMoney(t, "24.50"), 2, cart.Variant{}, "")
	require.NoError(t, err)
	require.NoError(t, store.Do(context.Background(), sessionID, func(s *session.Session) error {
		s.Cart().AddItem(line)
		return nil
	}))
}

// seedCheckoutAtPayment walks the session's checkout to the payment step
// with valid data at every step.
func seedCheckoutAtPayment(t *testing.T, store *fakeSessionStore, sessionID kernel.UUID) {
	t.Helper()

	require.NoError(t, store.Do(context.Background(), sessionID, func(s *session.Session) error {
		ck, err := s.BeginCheckout()
		require.NoError(t, err)
		ck.SetCustomerInfo(validCustomer())
		require.NoError(t, ck.Advance())
		ck.SetShippingInfo(validShipping())
		require.NoError(t, ck.Advance())
		ck.SetPaymentDetails(validPayment())
		return nil
	}))
}

func sessionState(t *testing.T, store *fakeSessionStore, sessionID kernel.UUID) *session.Session {
	t.Helper()

	var captured *session.Session
	require.NoError(t, store.Do(context.Background(), sessionID, func(s *session.Session) error {
		captured = s
		return nil
	}))
	return captured
}

func mustAddCartItemCommand(t *testing.T, sessionID kernel.UUID, productID string, quantity int) commands.AddCartItemCommand {
	t.Helper()

	cmd, err := commands.NewAddCartItemCommand(
		sessionID, productID, "Linen Shirt", mustMoney(t, "24.50"), quantity, cart.Variant{}, "",
	)
	require.NoError(t, err)
	return cmd
}
