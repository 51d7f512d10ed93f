// Package validate is the shared validation engine for the contact forms.
// The simple single-field form and the multi-step wizard both run through
// Validate with different Options, so the two entry points cannot drift
// apart. The engine is pure: it never mutates the draft, and every pass
// recomputes the full error map.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/dates"
)

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]{10,}$`)
)

// Options selects which rules apply for a given form variant.
type Options struct {
	// LastNameRequired turns the optional last name into a required field.
	LastNameRequired bool
	// CategoriesRequired demands at least one selected category.
	CategoriesRequired bool
	// SingleFieldMode applies the simple form's email/phone rules against
	// the first entry of each list instead of the per-entry title rules.
	SingleFieldMode bool
	// IncludeLinks adds the link list to the per-entry checks. Forms without
	// a link section leave it off.
	IncludeLinks bool
	// Dates supplies the clock used for birthdate checks.
	Dates dates.Converter
}

// Errors maps a field key (scalar name or "{list}_{index}") to a message.
// Absence of a key means the field is valid.
type Errors map[string]string

// Valid reports whether the map carries no errors.
func (e Errors) Valid() bool { return len(e) == 0 }

// Validate checks a draft against the rules selected by opts and returns the
// complete error map for this pass.
func Validate(d *contact.Draft, opts Options) Errors {
	errs := make(Errors)

	first := strings.TrimSpace(d.FirstName)
	switch {
	case first == "":
		errs["firstName"] = "First name is required"
	case len([]rune(first)) < 2:
		errs["firstName"] = "First name must be at least 2 characters"
	}

	last := strings.TrimSpace(d.LastName)
	switch {
	case opts.LastNameRequired && last == "":
		errs["lastName"] = "Last name is required"
	case last != "" && len([]rune(last)) < 2:
		errs["lastName"] = "Last name must be at least 2 characters"
	}

	if opts.CategoriesRequired && len(d.Categories) == 0 {
		errs["categories"] = "At least one category is required"
	}

	if strings.TrimSpace(d.Birthdate) != "" {
		if res := opts.Dates.Validate(d.Birthdate, dates.Birthdate); !res.IsValid {
			errs["birthdate"] = "Birthdate " + res.Error
		}
	}

	if opts.SingleFieldMode {
		validateSingleField(d, errs)
	} else {
		validateEntries(d, opts, errs)
	}

	return errs
}

// validateSingleField applies the simple form's rules to the first email and
// phone entries.
func validateSingleField(d *contact.Draft, errs Errors) {
	email := ""
	if len(d.Emails) > 0 {
		email = d.Emails[0].Email
	}
	switch {
	case strings.TrimSpace(email) == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(strings.TrimSpace(email)):
		errs["email"] = "Email is invalid"
	}

	phone := ""
	if len(d.Phones) > 0 {
		phone = d.Phones[0].Phone
	}
	if trimmed := strings.TrimSpace(phone); trimmed != "" && !phonePattern.MatchString(trimmed) {
		errs["phone"] = "Please enter a valid phone number"
	}
}

// validateEntries applies the per-entry rules: a non-blank primary value with
// a blank title fails, and email values must additionally look like
// addresses.
func validateEntries(d *contact.Draft, opts Options, errs Errors) {
	for i, e := range d.Emails {
		hasEmail := strings.TrimSpace(e.Email) != ""
		hasTitle := strings.TrimSpace(e.Title) != ""
		key := fmt.Sprintf("email_%d", i)
		if hasEmail && !hasTitle {
			errs[key] = "Title for email required"
		}
		if hasEmail && !emailPattern.MatchString(strings.TrimSpace(e.Email)) {
			errs[key] = "Invalid email format"
		}
	}

	for i, p := range d.Phones {
		if strings.TrimSpace(p.Phone) != "" && strings.TrimSpace(p.Title) == "" {
			errs[fmt.Sprintf("phone_%d", i)] = "Title for phone required"
		}
	}

	for i, a := range d.Addresses {
		hasValue := strings.TrimSpace(a.StreetAndNr) != "" ||
			strings.TrimSpace(a.City) != "" ||
			strings.TrimSpace(a.Country) != "" ||
			strings.TrimSpace(a.Postalcode) != ""
		if hasValue && strings.TrimSpace(a.Title) == "" {
			errs[fmt.Sprintf("address_%d", i)] = "Title for address required"
		}
	}

	if !opts.IncludeLinks {
		return
	}
	for i, l := range d.Links {
		if strings.TrimSpace(l.URL) != "" && strings.TrimSpace(l.Title) == "" {
			errs[fmt.Sprintf("link_%d", i)] = "Title for URL required"
		}
	}
}
