package consts

// PaymentStatus is the status of a payment request.
//
// Values are taken from the Swish Commerce API documentation.
type PaymentStatus string

const (
	PaymentStatusCreated   PaymentStatus = "CREATED"
	PaymentStatusPaid      PaymentStatus = "PAID"
	PaymentStatusDeclined  PaymentStatus = "DECLINED"
	PaymentStatusError     PaymentStatus = "ERROR"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
)

// RefundStatus is the status of a refund.
type RefundStatus string

const (
	RefundStatusValidated RefundStatus = "VALIDATED"
	RefundStatusDebited   RefundStatus = "DEBITED"
	RefundStatusPaid      RefundStatus = "PAID"
	RefundStatusError     RefundStatus = "ERROR"
)
