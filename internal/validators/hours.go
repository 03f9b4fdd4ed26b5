package validators

import "regexp"

var hhmmRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// IsHHMM reports whether the value is a zero-padded 24h "HH:MM" string.
// Only the shape of each endpoint is checked; opening < closing is not
// enforced anywhere.
func IsHHMM(v string) bool {
	return hhmmRe.MatchString(v)
}
