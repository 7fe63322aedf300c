package order

import (
	"fmt"
	"strings"

	"neushop/internal/pkg/errs"
)

// PaymentStatus tracks the money side of an order independently of its
// fulfilment status.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentUnpaid is the initial payment status at placement.
	PaymentUnpaid

	// PaymentPaid indicates the gateway captured the charge.
	PaymentPaid

	// PaymentRefunded indicates a paid order settled to cancelled or
	// returned and the charge was given back.
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:  "unknown",
		PaymentUnpaid:   "unpaid",
		PaymentPaid:     "paid",
		PaymentRefunded: "refunded",
	}
}

// PaymentStatusFromString parses a payment status name case-insensitively.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for status, name := range getPaymentStatusStrings() {
		if status != PaymentUnknown && name == normalized {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus is invalid",
		fmt.Errorf("%q is not a valid payment status", s),
	)
}

// Validate checks if the PaymentStatus value is valid.
func (s PaymentStatus) Validate() error {
	if s != PaymentUnpaid && s != PaymentPaid && s != PaymentRefunded {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentStatus is invalid",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

// String returns the canonical lower-case name. Implements fmt.Stringer.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
