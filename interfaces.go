package go_swish

import "github.com/viklundst/go-swish/log"

// Swish is the main SDK interface.
type Swish interface {
	Payments() *PaymentService
	Refunds() *RefundService

	SetLogLevel(level log.Level)
}

var _ Swish = (*Client)(nil)
