// Package dates converts between the persistence layer's DD.MM.YYYY date
// format and the YYYY-MM-DD form used by date inputs, and validates dates
// against birthdate/future/past rules. A Converter carries an injectable
// clock so callers can pin "now" in tests.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Backend dates travel as DD.MM.YYYY, form inputs as YYYY-MM-DD.
const (
	BackendLayout  = "02.01.2006"
	FrontendLayout = "2006-01-02"
)

// MaxAgeYears bounds how far in the past a plausible birthdate may lie.
const MaxAgeYears = 150

var backendPattern = regexp.MustCompile(`^(\d{2})\.(\d{2})\.(\d{4})$`)

// Kind selects which temporal rule Validate applies on top of the syntax
// checks.
type Kind string

const (
	// Birthdate rejects future dates and dates implying an implausible age.
	Birthdate Kind = "birthdate"
	// Future requires a date strictly after today.
	Future Kind = "future"
	// Past requires a date strictly before today.
	Past Kind = "past"
	// Any checks syntax only.
	Any Kind = "any"
)

// Result reports a validation outcome. Error is empty when IsValid is true.
type Result struct {
	IsValid bool
	Error   string
}

// Converter performs the conversions. The zero value uses time.Now.
type Converter struct {
	Now func() time.Time
}

func (c Converter) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// ToBackend converts a YYYY-MM-DD form value into DD.MM.YYYY. Empty or
// unparseable input reports ok=false; callers map that to a null payload
// field rather than an error.
func (c Converter) ToBackend(isoDate string) (string, bool) {
	trimmed := strings.TrimSpace(isoDate)
	if trimmed == "" {
		return "", false
	}
	parsed, err := time.Parse(FrontendLayout, trimmed)
	if err != nil {
		return "", false
	}
	return parsed.Format(BackendLayout), true
}

// ToFrontend converts a dash-segmented DD-MM-YYYY value into YYYY-MM-DD,
// returning "" on any parse failure. Only the dash separator is accepted:
// dot-separated backend dates yield "", and the form input starts blank.
func (c Converter) ToFrontend(backendDate string) string {
	if backendDate == "" {
		return ""
	}
	parts := strings.Split(backendDate, "-")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return ""
	}
	day, errDay := strconv.Atoi(parts[0])
	month, errMonth := strconv.Atoi(parts[1])
	year, errYear := strconv.Atoi(parts[2])
	if errDay != nil || errMonth != nil || errYear != nil {
		return ""
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return ""
	}
	return date.Format(FrontendLayout)
}

// Validate checks a DD.MM.YYYY value against the rules for kind. Messages
// omit the field name; callers prefix the field they are validating.
func (c Converter) Validate(value string, kind Kind) Result {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return invalid("is required")
	}

	match := backendPattern.FindStringSubmatch(trimmed)
	if match == nil {
		return invalid("must be in format DD.MM.YYYY")
	}

	day, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])
	year, _ := strconv.Atoi(match[3])

	if month < 1 || month > 12 {
		return invalid("contains invalid month")
	}
	if day < 1 || day > 31 {
		return invalid("contains invalid day")
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return invalid("is not a valid date")
	}

	today := c.today()
	switch kind {
	case Birthdate:
		if !date.Before(today) {
			return invalid("must be in the past")
		}
		if date.Year() < today.Year()-MaxAgeYears {
			return invalid("is implausibly far in the past")
		}
	case Future:
		if !date.After(today) {
			return invalid("must be in the future")
		}
	case Past:
		if !date.Before(today) {
			return invalid("must be in the past")
		}
	}

	return Result{IsValid: true}
}

// today truncates the injected now to midnight UTC so comparisons work on
// whole days.
func (c Converter) today() time.Time {
	now := c.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func invalid(msg string) Result {
	return Result{Error: msg}
}
