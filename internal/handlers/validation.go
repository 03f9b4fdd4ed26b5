package handlers

import (
	"errors"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindingDetails flattens gin's binding error into per-field problems so a
// 400 names every offending field, not just the first.
func bindingDetails(err error) map[string]string {
	details := map[string]string{}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			details[snakeCase(fe.Field())] = fe.Tag()
		}
		return details
	}

	details["body"] = err.Error()
	return details
}

// snakeCase turns a struct field name into its json form ("TableID" ->
// "table_id").
func snakeCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			// break before an upper rune that starts a new word
			if i > 0 && (!unicode.IsUpper(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func writeValidationError(c *gin.Context, details map[string]string) {
	c.JSON(400, gin.H{
		"error_code": "validation_error",
		"message":    "Invalid request data.",
		"details":    details,
	})
}
