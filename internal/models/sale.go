package models

import "time"

// PaymentMethod is the closed set of payment methods accepted for sales.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentPix    PaymentMethod = "pix"
	PaymentCard   PaymentMethod = "card"
	PaymentOnSale PaymentMethod = "onSale"
)

// PaymentMethods lists every accepted payment method.
var PaymentMethods = []PaymentMethod{PaymentCash, PaymentPix, PaymentCard, PaymentOnSale}

// Valid reports whether the payment method is one of the accepted values.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentPix, PaymentCard, PaymentOnSale:
		return true
	}
	return false
}

// DisplayName returns the user-facing label for the payment method.
func (m PaymentMethod) DisplayName() string {
	switch m {
	case PaymentCash:
		return "Dinheiro"
	case PaymentPix:
		return "PIX"
	case PaymentCard:
		return "Cartão"
	case PaymentOnSale:
		return "Fiado"
	}
	return string(m)
}

// Sale is a single unit sale to a client. A batch submission with quantity N
// expands into N Sale records sharing client, flavor, and day; each record
// keeps its own payment status so a batch can be settled one unit at a time.
type Sale struct {
	ID            string        `json:"id"`
	Date          time.Time     `json:"date"`
	ClientName    string        `json:"client_name"`
	Flavor        string        `json:"flavor"`
	Value         int64         `json:"value"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Paid          bool          `json:"paid"`
	Notes         string        `json:"notes,omitempty"`
}

// When returns the record's calendar date.
func (s Sale) When() time.Time { return s.Date }
