package checkout

import (
	"errors"

	"neushop/internal/core/domain/model/cart"
	"neushop/internal/pkg/errs"
)

var (
	// ErrCheckoutIsNotConstructed is returned when a Checkout instance was
	// not created through the NewCheckout factory method.
	ErrCheckoutIsNotConstructed = errors.New("Checkout must be created via NewCheckout constructor")

	// ErrCartIsEmpty is returned when checkout is entered with an empty cart.
	ErrCartIsEmpty = errors.New("checkout requires a non-empty cart")

	// ErrAlreadySubmitted is returned for any movement attempted after the
	// checkout reached its terminal submitted step.
	ErrAlreadySubmitted = errors.New("checkout is already submitted")

	// ErrSubmitRequired is returned when Advance is called from the payment
	// step; leaving payment happens through order submission only.
	ErrSubmitRequired = errors.New("payment step is completed by submitting the order")

	// ErrNotAtPaymentStep is returned when submission is attempted before
	// the payment step has been reached.
	ErrNotAtPaymentStep = errors.New("order submission is only legal from the payment step")
)

// Checkout is the step machine collecting the data required to submit an
// order. It advances strictly customer -> shipping -> payment and reaches
// its terminal submitted step only through the order submission flow.
//
// Entered data survives both retreats and failed advances; a step's data is
// validated when the shopper tries to move past it, not when it is stored.
type Checkout struct {
	step     Step
	customer *CustomerInfo
	shipping *ShippingInfo
	payment  *PaymentDetails

	// isConstructed ensures the checkout was created via NewCheckout
	isConstructed bool
}

// NewCheckout begins a checkout for the given cart. Checkout may only begin
// from a non-empty cart; an empty cart is rejected with ErrCartIsEmpty.
func NewCheckout(c *cart.Cart) (*Checkout, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, ErrCartIsEmpty
	}

	return &Checkout{
		step:          StepCustomer,
		isConstructed: true,
	}, nil
}

// Validate ensures the Checkout instance was properly constructed.
func (ck *Checkout) Validate() error {
	if ck == nil || !ck.isConstructed {
		return ErrCheckoutIsNotConstructed
	}
	return nil
}

// Step returns the current checkout step.
func (ck *Checkout) Step() Step {
	return ck.step
}

// SetCustomerInfo stores the customer step's data. Storing never validates;
// validation happens on Advance so partially filled forms survive.
func (ck *Checkout) SetCustomerInfo(info CustomerInfo) {
	ck.customer = &info
}

// SetShippingInfo stores the shipping step's data.
func (ck *Checkout) SetShippingInfo(info ShippingInfo) {
	ck.shipping = &info
}

// SetPaymentDetails stores the payment step's descriptor.
func (ck *Checkout) SetPaymentDetails(details PaymentDetails) {
	ck.payment = &details
}

// CustomerInfo returns the stored customer data and whether it was entered.
func (ck *Checkout) CustomerInfo() (CustomerInfo, bool) {
	if ck.customer == nil {
		return CustomerInfo{}, false
	}
	return *ck.customer, true
}

// ShippingInfo returns the stored shipping data and whether it was entered.
func (ck *Checkout) ShippingInfo() (ShippingInfo, bool) {
	if ck.shipping == nil {
		return ShippingInfo{}, false
	}
	return *ck.shipping, true
}

// PaymentDetails returns the stored payment descriptor and whether it was
// entered.
func (ck *Checkout) PaymentDetails() (PaymentDetails, bool) {
	if ck.payment == nil {
		return PaymentDetails{}, false
	}
	return *ck.payment, true
}

// Advance validates the current step's data and, on success, moves to the
// next step. On failure it returns a field-keyed ValidationError and the
// step does not change. Advance is legal from the customer and shipping
// steps; the payment step is left through order submission.
func (ck *Checkout) Advance() error {
	switch ck.step {
	case StepCustomer:
		if err := ck.validateCustomerStep(); err != nil {
			return err
		}
		ck.step = StepShipping
		return nil
	case StepShipping:
		if err := ck.validateShippingStep(); err != nil {
			return err
		}
		ck.step = StepPayment
		return nil
	case StepPayment:
		return ErrSubmitRequired
	case StepSubmitted:
		return ErrAlreadySubmitted
	default:
		return ck.step.Validate()
	}
}

// Retreat moves to the previous step without clearing entered data. It is
// always legal except from the terminal submitted step; retreating from the
// first step stays put.
func (ck *Checkout) Retreat() error {
	switch ck.step {
	case StepShipping:
		ck.step = StepCustomer
	case StepPayment:
		ck.step = StepShipping
	case StepSubmitted:
		return ErrAlreadySubmitted
	case StepCustomer:
		// Already at the first step.
	default:
		return ck.step.Validate()
	}
	return nil
}

// ValidateForSubmission checks the submission preconditions: the checkout
// must be at the payment step and every step's data must be valid. Field
// problems from all steps are merged into a single ValidationError.
func (ck *Checkout) ValidateForSubmission() error {
	if ck.step == StepSubmitted {
		return ErrAlreadySubmitted
	}
	if ck.step != StepPayment {
		return ErrNotAtPaymentStep
	}

	problems := map[string]string{}
	collect := func(err error) {
		var validationErr *errs.ValidationError
		if errors.As(err, &validationErr) {
			for field, message := range validationErr.Fields {
				problems[field] = message
			}
		}
	}

	collect(ck.validateCustomerStep())
	collect(ck.validateShippingStep())
	collect(ck.validatePaymentStep())

	if len(problems) > 0 {
		return errs.NewValidationError(problems)
	}
	return nil
}

// MarkSubmitted transitions the checkout to its terminal step. Only the
// order submission flow calls this, after a successful placement.
func (ck *Checkout) MarkSubmitted() error {
	if err := ck.ValidateForSubmission(); err != nil {
		return err
	}

	ck.step = StepSubmitted
	return nil
}

func (ck *Checkout) validateCustomerStep() error {
	if ck.customer == nil {
		return errs.NewFieldValidationError("customer", "is required")
	}
	if problems := ck.customer.fieldErrors(); len(problems) > 0 {
		return errs.NewValidationError(problems)
	}
	return nil
}

func (ck *Checkout) validateShippingStep() error {
	if ck.shipping == nil {
		return errs.NewFieldValidationError("shipping", "is required")
	}
	if problems := ck.shipping.fieldErrors(); len(problems) > 0 {
		return errs.NewValidationError(problems)
	}
	return nil
}

func (ck *Checkout) validatePaymentStep() error {
	if ck.payment == nil {
		return errs.NewFieldValidationError("payment", "is required")
	}
	if problems := ck.payment.fieldErrors(); len(problems) > 0 {
		return errs.NewValidationError(problems)
	}
	return nil
}
