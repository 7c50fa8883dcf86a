// Package validate implements the Swish field grammars.
//
// Every validator is a pure function taking an untyped value. A value of the
// wrong dynamic type is an ordinary invalid result, never a panic. On success
// the validator returns the normalized form Swish expects on the wire.
package validate

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// Kind identifies a Swish field grammar for dispatch via Field.
type Kind int

const (
	KindUnknown Kind = iota
	KindMerchantAlias
	KindPayerAlias
	KindCallbackURL
	KindAmount
	KindMessage
	KindPaymentReference
	KindPersonNummer
	KindUUID
	KindAgeLimit
)

var (
	merchantAliasRe = regexp.MustCompile(`^123[0-9]{7}$`)
	payerAliasRe    = regexp.MustCompile(`^46[1-9][0-9]{5,12}$`)
	amountRe        = regexp.MustCompile(`^[0-9]*\.?[0-9]*$`)
	messageRe       = regexp.MustCompile(`^[0-9a-zA-ZåäöÅÄÖ :;.,?!()"]*$`)
	referenceRe     = regexp.MustCompile(`^[0-9A-Za-z]{1,36}$`)
	uuidRe          = regexp.MustCompile(`^[0-9A-Fa-f]{32}$`)
	integerRe       = regexp.MustCompile(`^[0-9]+$`)
	nonDigitRe      = regexp.MustCompile(`[^0-9]`)
)

// Field validates value against the grammar for kind. An unknown kind is
// invalid regardless of the value.
func Field(kind Kind, value any) (any, bool) {
	switch kind {
	case KindMerchantAlias:
		if v, ok := MerchantAlias(value); ok {
			return v, true
		}
	case KindPayerAlias:
		if v, ok := PayerAlias(value); ok {
			return v, true
		}
	case KindCallbackURL:
		if v, ok := CallbackURL(value); ok {
			return v, true
		}
	case KindAmount:
		if v, ok := Amount(value); ok {
			return v, true
		}
	case KindMessage:
		if v, ok := Message(value); ok {
			return v, true
		}
	case KindPaymentReference:
		if v, ok := PaymentReference(value); ok {
			return v, true
		}
	case KindPersonNummer:
		if v, ok := PersonNummer(value); ok {
			return v, true
		}
	case KindUUID:
		if v, ok := UUID(value); ok {
			return v, true
		}
	case KindAgeLimit:
		if v, ok := AgeLimit(value); ok {
			return v, true
		}
	}
	return nil, false
}

// MerchantAlias validates a merchant Swish number: 10 digits starting with
// 123. Embedded spaces are stripped before matching.
func MerchantAlias(value any) (string, bool) {
	s, ok := value.(string)
	if !ok {
		return "", false
	}
	s = strings.ReplaceAll(s, " ", "")
	if !merchantAliasRe.MatchString(s) {
		return "", false
	}
	return s, true
}

// PayerAlias validates a payer mobile number and normalizes it to the
// international form Swish requires: country code 46 followed by the
// national number without leading zeros, 8-15 digits in total.
//
// Normalization is idempotent: feeding the output back in yields the same
// value.
func PayerAlias(value any) (string, bool) {
	s, ok := value.(string)
	if !ok {
		return "", false
	}
	digits := nonDigitRe.ReplaceAllString(s, "")
	digits = strings.TrimLeft(digits, "0")
	if strings.HasPrefix(digits, "46") {
		digits = strings.TrimLeft(digits[2:], "0")
	}
	digits = "46" + digits
	if !payerAliasRe.MatchString(digits) {
		return "", false
	}
	return digits, true
}

// CallbackURL validates an absolute https URL and returns its canonical
// string form.
func CallbackURL(value any) (string, bool) {
	s, ok := value.(string)
	if !ok {
		return "", false
	}
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() || u.Scheme != "https" {
		return "", false
	}
	// Host-only URLs stringify with an explicit root path.
	if u.Host != "" && u.Path == "" {
		u.Path = "/"
	}
	return u.String(), true
}

// Amount validates a monetary amount between 1 and 999999999999.99 SEK,
// given as a decimal string or a number, and formats it with exactly two
// fraction digits.
func Amount(value any) (string, bool) {
	var v float64
	switch t := value.(type) {
	case string:
		if !amountRe.MatchString(t) {
			return "", false
		}
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return "", false
		}
		v = f
	case float64:
		v = t
	case float32:
		v = float64(t)
	case int:
		v = float64(t)
	case int32:
		v = float64(t)
	case int64:
		v = float64(t)
	default:
		return "", false
	}
	if math.IsNaN(v) || v < 1 || v > 999999999999.99 {
		return "", false
	}
	return strconv.FormatFloat(v, 'f', 2, 64), true
}

// Message validates a payment message: up to 50 characters drawn from
// letters a-ö in both cases, digits, space and :;.,?!()". The empty string
// is valid.
func Message(value any) (string, bool) {
	s, ok := value.(string)
	if !ok {
		return "", false
	}
	if len([]rune(s)) > 50 {
		return "", false
	}
	if !messageRe.MatchString(s) {
		return "", false
	}
	return s, true
}

// PaymentReference validates a payee or payer payment reference: 1-36
// alphanumeric ASCII characters.
func PaymentReference(value any) (string, bool) {
	s, ok := value.(string)
	if !ok {
		return "", false
	}
	if !referenceRe.MatchString(s) {
		return "", false
	}
	return s, true
}

// UUID validates a Swish instruction id: exactly 32 hexadecimal characters,
// case preserved.
func UUID(value any) (string, bool) {
	s, ok := value.(string)
	if !ok {
		return "", false
	}
	if !uuidRe.MatchString(s) {
		return "", false
	}
	return s, true
}

// AgeLimit validates an age limit between 1 and 99, given as a digit string
// or an integer number.
func AgeLimit(value any) (int, bool) {
	var n int
	switch t := value.(type) {
	case string:
		if !integerRe.MatchString(t) {
			return 0, false
		}
		v, err := strconv.Atoi(t)
		if err != nil {
			return 0, false
		}
		n = v
	case int:
		n = t
	case int32:
		n = int(t)
	case int64:
		n = int(t)
	case float64:
		if t != math.Trunc(t) {
			return 0, false
		}
		n = int(t)
	case float32:
		if float64(t) != math.Trunc(float64(t)) {
			return 0, false
		}
		n = int(t)
	default:
		return 0, false
	}
	if n < 1 || n > 99 {
		return 0, false
	}
	return n, true
}
