package checkout

import (
	"regexp"
	"strings"
)

// Payment methods accepted by the storefront. The descriptor stays opaque to
// the payment gateway; only its structure is validated here.
const (
	MethodCard           = "card"
	MethodCashOnDelivery = "cod"
)

var (
	emailPattern      = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	digitsOnlyPattern = regexp.MustCompile(`^[0-9]+$`)
)

// CustomerInfo holds the shopper's contact details collected at the customer
// step. The zero value means "not yet entered".
type CustomerInfo struct {
	FullName string
	Email    string
	Phone    string
}

// fieldErrors returns the structural problems keyed by field name, or an
// empty map when the data is valid.
func (i CustomerInfo) fieldErrors() map[string]string {
	problems := map[string]string{}

	if strings.TrimSpace(i.FullName) == "" {
		problems["fullName"] = "is required"
	}
	if strings.TrimSpace(i.Email) == "" {
		problems["email"] = "is required"
	} else if !emailPattern.MatchString(i.Email) {
		problems["email"] = "must be a valid email address"
	}

	return problems
}

// ShippingInfo holds the delivery address collected at the shipping step.
// The zero value means "not yet entered".
type ShippingInfo struct {
	AddressLine1 string
	AddressLine2 string
	City         string
	Region       string
	PostalCode   string
	Country      string
}

func (i ShippingInfo) fieldErrors() map[string]string {
	problems := map[string]string{}

	if strings.TrimSpace(i.AddressLine1) == "" {
		problems["addressLine1"] = "is required"
	}
	if strings.TrimSpace(i.City) == "" {
		problems["city"] = "is required"
	}
	if strings.TrimSpace(i.PostalCode) == "" {
		problems["postalCode"] = "is required"
	}
	if strings.TrimSpace(i.Country) == "" {
		problems["country"] = "is required"
	}

	return problems
}

// PaymentDetails is the payment descriptor collected at the payment step.
// Only structural validity is checked; authorization is the gateway's
// concern. The zero value means "not yet entered".
type PaymentDetails struct {
	Method     string
	CardHolder string
	CardNumber string
	ExpMonth   int
	ExpYear    int
	CVV        string
}

func (d PaymentDetails) fieldErrors() map[string]string {
	problems := map[string]string{}

	switch d.Method {
	case MethodCashOnDelivery:
		// No card data required.
	case MethodCard:
		if strings.TrimSpace(d.CardHolder) == "" {
			problems["cardHolder"] = "is required"
		}
		number := strings.ReplaceAll(d.CardNumber, " ", "")
		if number == "" {
			problems["cardNumber"] = "is required"
		} else if !digitsOnlyPattern.MatchString(number) || len(number) < 13 || len(number) > 19 {
			problems["cardNumber"] = "must be 13 to 19 digits"
		}
		if d.ExpMonth < 1 || d.ExpMonth > 12 {
			problems["expMonth"] = "must be between 1 and 12"
		}
		if d.ExpYear < 2000 {
			problems["expYear"] = "must be a four-digit year"
		}
		if !digitsOnlyPattern.MatchString(d.CVV) || len(d.CVV) < 3 || len(d.CVV) > 4 {
			problems["cvv"] = "must be 3 or 4 digits"
		}
	case "":
		problems["method"] = "is required"
	default:
		problems["method"] = "must be one of: card, cod"
	}

	return problems
}

// Redacted returns a copy safe to persist on an order: the CVV is dropped
// and the card number is reduced to its last four digits.
func (d PaymentDetails) Redacted() PaymentDetails {
	redacted := d
	redacted.CVV = ""

	number := strings.ReplaceAll(d.CardNumber, " ", "")
	if len(number) > 4 {
		redacted.CardNumber = "****" + number[len(number)-4:]
	}

	return redacted
}
