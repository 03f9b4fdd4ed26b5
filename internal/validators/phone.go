package validators

import "unicode"

// IsPhoneValid accepts any string carrying at least ten digits; punctuation
// and spacing are ignored.
func IsPhoneValid(phone string) bool {
	digits := 0
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits >= 10
}
