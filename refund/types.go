package refund

import "github.com/viklundst/go-swish/consts"

// CreateRequest holds the caller-supplied fields for a new refund.
type CreateRequest struct {
	// Amount in SEK to refund; must not exceed the original payment minus
	// any previous refunds.
	Amount string
	// OriginalPaymentReference is the 32-hex instruction id of the payment
	// being refunded.
	OriginalPaymentReference string
	// Message shown to the payer, up to 50 characters. Optional.
	Message string
	// PayerPaymentReference is the merchant's own reference. Optional.
	PayerPaymentReference string
}

// CreateResult is returned once Swish has accepted a refund.
type CreateResult struct {
	ID string `json:"id"`
}

// RetrieveRequest identifies a previously created refund.
type RetrieveRequest struct {
	ID string
}

// Refund mirrors the refund record returned by Swish.
type Refund struct {
	ID                       string              `json:"id"`
	PaymentReference         *string             `json:"paymentReference"`
	PayerPaymentReference    string              `json:"payerPaymentReference"`
	OriginalPaymentReference string              `json:"originalPaymentReference"`
	CallbackURL              string              `json:"callbackUrl"`
	PayerAlias               string              `json:"payerAlias"`
	PayeeAlias               *string             `json:"payeeAlias"`
	Amount                   float64             `json:"amount"`
	Currency                 string              `json:"currency"`
	Message                  string              `json:"message"`
	Status                   consts.RefundStatus `json:"status"`
	DateCreated              string              `json:"dateCreated"`
	DatePaid                 *string             `json:"datePaid"`
	ErrorMessage             *string             `json:"errorMessage"`
	AdditionalInformation    *string             `json:"additionalInformation"`
	ErrorCode                *string             `json:"errorCode"`
}
