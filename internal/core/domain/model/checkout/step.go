package checkout

import (
	"fmt"

	"neushop/internal/pkg/errs"
)

// Step represents a stage in the checkout flow. It is a value object; the
// Checkout machine owns the transitions between steps.
type Step int

const (
	// UnknownStep represents an invalid or undefined step.
	// This value (0) helps catch uninitialized Step values.
	UnknownStep Step = iota

	// StepCustomer collects the shopper's contact information.
	// This is the initial step when checkout begins.
	StepCustomer

	// StepShipping collects the delivery address.
	StepShipping

	// StepPayment collects the payment descriptor. Order submission is only
	// legal from this step.
	StepPayment

	// StepSubmitted is the terminal step reached after a successful order
	// placement. No further advancement or retreat is possible.
	StepSubmitted
)

// getStepStrings returns a map of Step values to their string representations.
func getStepStrings() map[Step]string {
	return map[Step]string{
		UnknownStep:   "unknown",
		StepCustomer:  "customer",
		StepShipping:  "shipping",
		StepPayment:   "payment",
		StepSubmitted: "submitted",
	}
}

// getValidStepStrings returns a map of only valid Step values.
func getValidStepStrings() map[Step]string {
	//nolint:exhaustive // UnknownStep is intentionally excluded as it's invalid
	return map[Step]string{
		StepCustomer:  "customer",
		StepShipping:  "shipping",
		StepPayment:   "payment",
		StepSubmitted: "submitted",
	}
}

// Validate checks if the Step value is one of the four checkout stages.
func (s Step) Validate() error {
	if _, ok := getValidStepStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("step is invalid", fmt.Errorf("%d is not a valid step", s))
	}
	return nil
}

// String returns the lower-case name of the step. Implements fmt.Stringer
// and is safe to call on any Step value, including invalid ones.
func (s Step) String() string {
	if str, ok := getStepStrings()[s]; ok {
		return str
	}
	return "unknown"
}
