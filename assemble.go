package go_swish

import "github.com/viklundst/go-swish/validate"

// fieldRule declares one body field for an endpoint: the raw value, the
// grammar it must satisfy, the body key the normalized value lands under and
// the error code a failure maps to.
//
// Optional rules are skipped when the value is unset. Required rules are
// always validated, so an empty required value fails with the rule's code.
type fieldRule struct {
	target   string
	kind     validate.Kind
	required bool
	code     ErrorCode
	value    any
}

// assemble runs rules in order against body. The first invalid field aborts
// assembly and nothing is sent; on success every declared field holds its
// normalized value.
func assemble(body map[string]any, rules []fieldRule) *Error {
	for _, rule := range rules {
		if !rule.required && isUnset(rule.value) {
			continue
		}
		normalized, ok := validate.Field(rule.kind, rule.value)
		if !ok {
			return NewError(rule.code)
		}
		body[rule.target] = normalized
	}
	return nil
}

func isUnset(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case int:
		return v == 0
	}
	return false
}
