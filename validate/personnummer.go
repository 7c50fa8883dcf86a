package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	personNummerCharsRe = regexp.MustCompile(`^[0-9-]+$`)
	// Century 19 or 20-29, month 01-12, day 01-31. The day is deliberately
	// not cross-checked against the month length.
	personNummerShapeRe = regexp.MustCompile(`^(19|2[0-9])[0-9]{2}(0[1-9]|1[0-2])(0[1-9]|[12][0-9]|3[01])[0-9]{4}$`)
)

// PersonNummer validates a Swedish personnummer of 10 or 12 digits, with an
// optional hyphen before the last four, and returns the canonical 12-digit
// form.
//
// A 10-digit number gets its century derived from the current date: the
// two-digit year is placed in the 2000s and moved back a century at a time
// until it is not in the future. Numbers recording a person older than 120
// years are rejected, as are numbers whose mod-10 control digit does not
// match.
func PersonNummer(value any) (string, bool) {
	return personNummerAt(value, time.Now())
}

func personNummerAt(value any, now time.Time) (string, bool) {
	s, ok := value.(string)
	if !ok {
		return "", false
	}
	if !personNummerCharsRe.MatchString(s) {
		return "", false
	}
	// Only the first hyphen is stripped; a second one fails the digit check.
	s = strings.Replace(s, "-", "", 1)
	if !integerRe.MatchString(s) {
		return "", false
	}

	currentYear := now.Year()
	switch len(s) {
	case 12:
	case 10:
		year := 2000 + digit(s, 0)*10 + digit(s, 1)
		for year > currentYear {
			year -= 100
		}
		s = fmt.Sprintf("%04d%s", year, s[2:])
	default:
		return "", false
	}

	year := digit(s, 0)*1000 + digit(s, 1)*100 + digit(s, 2)*10 + digit(s, 3)
	if year+120 <= currentYear {
		return "", false
	}
	if !controlDigitValid(s) {
		return "", false
	}
	if !personNummerShapeRe.MatchString(s) {
		return "", false
	}
	return s, true
}

// controlDigitValid runs the mod-10 checksum over digits 3-11 of the
// canonical 12-digit number. Digits at even offsets of that slice are
// doubled, products of two digits are digit-summed, and the control digit
// must equal (10 - sum mod 10) mod 10.
func controlDigitValid(s string) bool {
	sum := 0
	for i := 2; i < 11; i++ {
		d := digit(s, i)
		if (i-2)%2 == 0 {
			d *= 2
		}
		if d > 9 {
			d -= 9
		}
		sum += d
	}
	return (10-sum%10)%10 == digit(s, 11)
}

func digit(s string, i int) int {
	return int(s[i] - '0')
}
