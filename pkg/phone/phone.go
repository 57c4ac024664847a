package phone

import (
	"errors"
	"strings"
)

var ErrInvalidKenyanNumber = errors.New("invalid kenyan phone number")

// NormalizeKenyan canonicalizes a Kenyan mobile number to 254XXXXXXXXX.
//
// Accepted inputs: 07XXXXXXXX, 01XXXXXXXX, 7XXXXXXXX, 1XXXXXXXX,
// 254XXXXXXXXX and +254XXXXXXXXX, with spaces/dashes tolerated.
func NormalizeKenyan(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	s = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(s)
	s = strings.TrimPrefix(s, "+")

	if s == "" || !digitsOnly(s) {
		return "", ErrInvalidKenyanNumber
	}

	switch {
	case len(s) == 12 && strings.HasPrefix(s, "254"):
		// already canonical
	case len(s) == 10 && (strings.HasPrefix(s, "07") || strings.HasPrefix(s, "01")):
		s = "254" + s[1:]
	case len(s) == 9 && (strings.HasPrefix(s, "7") || strings.HasPrefix(s, "1")):
		s = "254" + s
	default:
		return "", ErrInvalidKenyanNumber
	}

	return s, nil
}

func digitsOnly(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
