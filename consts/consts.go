package consts

const (
	HeaderAccept      = "Accept"
	HeaderContentType = "Content-Type"

	ContentTypeJSON = "application/json"
)

// Base URLs.
const (
	// Production Swish Commerce API.
	ProductionBaseURL = "https://cpc.getswish.net/swish-cpcapi"
	// Merchant Swish Simulator, for integration testing.
	TestBaseURL = "https://mss.cpc.getswish.net/swish-cpcapi"

	// DefaultCallbackURL is used when no callback URL is configured.
	// Swish requires a callback URL in every request even when the merchant
	// polls for status instead of consuming callbacks.
	DefaultCallbackURL = "https://swish-callback.com/"
)

// Endpoint paths. Create operations use v2 (caller-supplied instruction id),
// retrieve operations use v1.
const (
	CreatePaymentRequestPath   = "/api/v2/paymentrequests/"
	RetrievePaymentRequestPath = "/api/v1/paymentrequests/"
	CreateRefundPath           = "/api/v2/refunds/"
	RetrieveRefundPath         = "/api/v1/refunds/"
)

// Currency is the only currency Swish supports.
const Currency = "SEK"
