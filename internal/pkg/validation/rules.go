package validation

import (
	"regexp"
	"strconv"
)

// Validation rule patterns
var (
	EmailPattern = `^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`

	// TermCodePattern matches "YYYY-T", e.g. "2022-0". Term codes sort in time order.
	TermCodePattern = `^\d{4}-\d$`

	// FiscalYearPattern matches "YYYY-YYYY", e.g. "2024-2025"
	FiscalYearPattern = `^(\d{4})-(\d{4})$`

	// CodePattern matches program, course and campus codes
	CodePattern = `^[A-Za-z0-9][A-Za-z0-9_\-]*$`

	NameMaxLength = 255
	CodeMaxLength = 32
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email      *regexp.Regexp
	TermCode   *regexp.Regexp
	FiscalYear *regexp.Regexp
	Code       *regexp.Regexp
}{
	Email:      regexp.MustCompile(EmailPattern),
	TermCode:   regexp.MustCompile(TermCodePattern),
	FiscalYear: regexp.MustCompile(FiscalYearPattern),
	Code:       regexp.MustCompile(CodePattern),
}

// IsTermCode reports whether s is a "YYYY-T" term code
func IsTermCode(s string) bool {
	return CompiledPatterns.TermCode.MatchString(s)
}

// IsFiscalYear reports whether s is "YYYY-YYYY" with consecutive years
func IsFiscalYear(s string) bool {
	m := CompiledPatterns.FiscalYear.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	first, _ := strconv.Atoi(m[1])
	second, _ := strconv.Atoi(m[2])
	return second == first+1
}

// IsEmail reports whether s looks like an email address
func IsEmail(s string) bool {
	return CompiledPatterns.Email.MatchString(s)
}

// IsCode reports whether s is a valid short code
func IsCode(s string) bool {
	return len(s) <= CodeMaxLength && CompiledPatterns.Code.MatchString(s)
}
