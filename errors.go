package go_swish

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode identifies a single failure reason. Local validation codes share
// a namespace with the machine-readable codes Swish returns, mirroring the
// Swish documentation; X1 and X2 are synthesized by the SDK itself.
type ErrorCode string

// Local validation codes. These are raised before any network I/O.
const (
	CodeMissingAlias                    ErrorCode = "RP01"
	CodeInvalidMerchantAlias            ErrorCode = "VL02"
	CodeInvalidCallbackURL              ErrorCode = "RP03"
	CodeInvalidCertificate              ErrorCode = "VL03"
	CodeInvalidKey                      ErrorCode = "VL04"
	CodeInvalidCA                       ErrorCode = "VL05"
	CodeInvalidPhoneNumber              ErrorCode = "VL10"
	CodeInvalidAmount                   ErrorCode = "PA02"
	CodeInvalidMessage                  ErrorCode = "VL11"
	CodeInvalidAgeLimit                 ErrorCode = "VL12"
	CodeInvalidPaymentReference         ErrorCode = "VL13"
	CodeInvalidPersonNummer             ErrorCode = "VL14"
	CodeMissingID                       ErrorCode = "VL15"
	CodeInvalidOriginalPaymentReference ErrorCode = "FF08"
)

// Synthetic codes for failures with no Swish response to translate.
const (
	CodeUnexpected       ErrorCode = "X1"
	CodeConnectionFailed ErrorCode = "X2"
)

const unexpectedErrorMessage = "Unexpected Error"

// errorMessages maps every known code to its user-facing message. The map is
// built once and never mutated.
var errorMessages = map[ErrorCode]string{
	// Swish business-rule rejections.
	"FF08":   "Payment Reference is invalid",
	"RP03":   "Callback URL is missing or does not use HTTPS",
	"PA02":   "Amount value is missing or not a valid number.",
	"BE18":   "Payer alias is invalid",
	"AM02":   "Amount value is too large.",
	"AM03":   "Invalid or missing Currency.",
	"AM04":   "Insufficient funds in account.",
	"AM06":   "Specified transaction amount is less than agreed minimum.",
	"RF02":   "Unexpected Error",
	"RF03":   "Payer alias in the refund does not match the payee alias in the original payment.",
	"RF04":   "Payer organization number do not match original payment payee organization number.",
	"RF06":   "The Payer SSN in the original payment is not the same as the SSN for the current Payee.",
	"RF07":   "Transaction declined.",
	"RF08":   "Amount value is too large, or amount exceeds the amount of the original payment minus any previous refunds.",
	"RF09":   "Refund already in progress.",
	"RP01":   "Missing Merchant Swish Number.",
	"RP02":   "Wrong formatted message.",
	"RP04":   "No payment request found related to a token",
	"RP06":   "A payment request already exists for that payer.",
	"RP09":   "InstructionUUID not available.",
	"ACMT01": "Counterpart is not activated.",
	"ACMT03": "Payer not Enrolled.",
	"ACMT07": "Payee not Enrolled.",
	"VR01":   "Payer does not meet age limit.",
	"VR02":   "The payer alias in the request is not enroled in swish with the supplied ssn",

	// Local validation failures.
	"VL02": "Invalid Merchant Alias. Alias must be only numbers, 10 digits long and start with 123.",
	"VL03": "Invalid Certificate.",
	"VL04": "Invalid Key.",
	"VL05": "Invalid CA.",
	"VL10": "Invalid Phone Number. Must be a valid Swedish phone number between 8 and 15 numerals (including country code and no leading zeros.",
	"VL11": "Invalid Message. Must be less than 50 characters and only use a-ö, A-Ö, the numbers 0-9 and the special characters :;.,?!()”.",
	"VL12": "Invalid Age Limit. Must be an integer between 1 and 99.",
	"VL13": "Invalid Payee/Payer Payment Reference. Must be between 1 and 36 characters and only use a-ö, A-Ö and the numbers 0-9.",
	"VL14": "Invalid Person Nummer. Must be 10 or 12 digits and a valid Swedish Personnummer or Sammordningsnummer.",
	"VL15": "ID must be supplied to receive payment/refund request.",

	"X2": "Could not connect to Swish Server, check certificates.",
	"X1": unexpectedErrorMessage,
}

// LookupMessage resolves the user-facing message for code. Unknown codes get
// a generic message; the result is never empty.
func LookupMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return unexpectedErrorMessage
}

// ErrorDetail is one failure reason inside an Error.
type ErrorDetail struct {
	ErrorCode             string  `json:"errorCode"`
	ErrorMessage          string  `json:"errorMessage"`
	AdditionalInformation *string `json:"additionalInformation"`
}

// Error is the uniform failure shape for local validation failures, Swish
// rejections and transport failures alike. Errors is never empty.
type Error struct {
	Name   string        `json:"name"`
	Errors []ErrorDetail `json:"errors"`
}

// NewError builds an Error from one or more codes, resolving each message at
// construction time. AdditionalInformation is always nil for locally
// synthesized errors.
func NewError(codes ...ErrorCode) *Error {
	if len(codes) == 0 {
		codes = []ErrorCode{CodeUnexpected}
	}
	e := &Error{Name: "SwishError", Errors: make([]ErrorDetail, 0, len(codes))}
	for _, code := range codes {
		e.Errors = append(e.Errors, ErrorDetail{
			ErrorCode:    string(code),
			ErrorMessage: LookupMessage(code),
		})
	}
	return e
}

func (e *Error) Error() string {
	if e == nil || len(e.Errors) == 0 {
		return "swish error"
	}
	first := e.Errors[0]
	if len(e.Errors) == 1 {
		return fmt.Sprintf("swish error %s: %s", first.ErrorCode, first.ErrorMessage)
	}
	return fmt.Sprintf("swish error %s: %s (and %d more)", first.ErrorCode, first.ErrorMessage, len(e.Errors)-1)
}

// Code returns the first error code, or "" for a nil error.
func (e *Error) Code() ErrorCode {
	if e == nil || len(e.Errors) == 0 {
		return ""
	}
	return ErrorCode(e.Errors[0].ErrorCode)
}

// IsSwishError checks whether err is (or wraps) an *Error.
func IsSwishError(err error) bool {
	var se *Error
	return errors.As(err, &se)
}

// remoteError is one entry of the JSON array Swish returns with a non-2xx
// status. The errorMessage Swish sends is ignored; messages are always
// resolved through the local table so callers see consistent wording.
type remoteError struct {
	ErrorCode             string  `json:"errorCode"`
	AdditionalInformation *string `json:"additionalInformation"`
}

// errorFromRemote translates a Swish rejection body into an Error,
// preserving the order of the reported reasons and the additional
// information verbatim. An unparseable or empty body maps to X1.
func errorFromRemote(body []byte) *Error {
	var entries []remoteError
	if err := json.Unmarshal(body, &entries); err != nil || len(entries) == 0 {
		return NewError(CodeUnexpected)
	}
	e := &Error{Name: "SwishError", Errors: make([]ErrorDetail, 0, len(entries))}
	for _, entry := range entries {
		e.Errors = append(e.Errors, ErrorDetail{
			ErrorCode:             entry.ErrorCode,
			ErrorMessage:          LookupMessage(ErrorCode(entry.ErrorCode)),
			AdditionalInformation: entry.AdditionalInformation,
		})
	}
	return e
}
