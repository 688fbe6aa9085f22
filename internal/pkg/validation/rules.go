package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// SlugPattern accepts URL-safe keys such as "software-engineer" or "data_science_2"
	SlugPattern = `^[A-Za-z0-9][A-Za-z0-9_-]*$`

	// RiasecLetters are the six Holland codes
	RiasecLetters = "RIASEC"
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Slug *regexp.Regexp
}{
	Slug: regexp.MustCompile(SlugPattern),
}

// IsValidSlug reports whether s can be used as a career page slug
func IsValidSlug(s string) bool {
	return CompiledPatterns.Slug.MatchString(s)
}

// IsRiasecCode reports whether code consists only of RIASEC letters (case-insensitive).
// Tags are free text in storage; this is used for log hints, never to reject input.
func IsRiasecCode(code string) bool {
	code = strings.TrimSpace(code)
	if code == "" {
		return false
	}
	for _, r := range strings.ToUpper(code) {
		if !strings.ContainsRune(RiasecLetters, r) {
			return false
		}
	}
	return true
}

// RegisterCustomValidations adds the project's validator tags ("slug") to v.
func RegisterCustomValidations(v *validator.Validate) error {
	return v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return IsValidSlug(fl.Field().String())
	})
}
