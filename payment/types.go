package payment

import "github.com/viklundst/go-swish/consts"

// CreateRequest holds the caller-supplied fields for a new payment request.
// Optional fields are included in the request body only when set.
type CreateRequest struct {
	// PhoneNumber is the payer's mobile number in local or international
	// form; it is normalized before it is sent.
	PhoneNumber string
	// Amount in SEK, e.g. "200" or "200.50".
	Amount string
	// Message shown to the payer, up to 50 characters. Optional.
	Message string
	// PayeePaymentReference is the merchant's own order reference. Optional.
	PayeePaymentReference string
	// PersonNummer restricts the request to a payer with this Swedish
	// personnummer. Optional; sent as payerSSN.
	PersonNummer string
	// AgeLimit restricts the request to payers of at least this age (1-99).
	// Optional; zero means no limit.
	AgeLimit int
}

// CreateResult is returned once Swish has accepted a payment request.
type CreateResult struct {
	ID string `json:"id"`
}

// RetrieveRequest identifies a previously created payment request.
type RetrieveRequest struct {
	ID string
}

// Payment mirrors the payment request record returned by Swish.
type Payment struct {
	ID                    string               `json:"id"`
	PayeePaymentReference string               `json:"payeePaymentReference"`
	PaymentReference      string               `json:"paymentReference"`
	CallbackURL           string               `json:"callbackUrl"`
	PayerAlias            string               `json:"payerAlias"`
	PayeeAlias            string               `json:"payeeAlias"`
	Amount                float64              `json:"amount"`
	Currency              string               `json:"currency"`
	Message               string               `json:"message"`
	Status                consts.PaymentStatus `json:"status"`
	DateCreated           string               `json:"dateCreated"`
	DatePaid              *string              `json:"datePaid"`
	ErrorCode             *string              `json:"errorCode"`
	ErrorMessage          *string              `json:"errorMessage"`
}
