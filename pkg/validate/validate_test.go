package validate

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contactform/pkg/category"
	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/dates"
)

func wizardOptions() Options {
	return Options{
		CategoriesRequired: true,
		IncludeLinks:       true,
		Dates: dates.Converter{Now: func() time.Time {
			return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
		}},
	}
}

func TestValidate_ShortFirstNameAndMissingCategories(t *testing.T) {
	d := contact.NewDraft()
	d.FirstName = "M"

	errs := Validate(d, wizardOptions())

	if errs["firstName"] != "First name must be at least 2 characters" {
		t.Fatalf("unexpected firstName error: %q", errs["firstName"])
	}
	if errs["categories"] != "At least one category is required" {
		t.Fatalf("unexpected categories error: %q", errs["categories"])
	}
	if len(errs) != 2 {
		t.Fatalf("expected exactly two errors, got %#v", errs)
	}
}

func TestValidate_CleanDraftPasses(t *testing.T) {
	d := contact.NewDraft()
	d.FirstName = "Mara"
	d.Categories = []category.Ref{{ID: 1, Name: "Family"}}

	errs := Validate(d, wizardOptions())

	if !errs.Valid() {
		t.Fatalf("expected no errors, got %#v", errs)
	}
}

func TestValidate_DoesNotMutateDraft(t *testing.T) {
	d := contact.NewDraft()
	d.FirstName = "M"
	d.Birthdate = "bogus"
	d.Emails = []contact.EmailEntry{{Title: "", Email: "not-an-email"}}
	before := d.Clone()

	Validate(d, wizardOptions())

	if diff := cmp.Diff(before, d); diff != "" {
		t.Fatalf("validate mutated its input (-want +got):\n%s", diff)
	}
}

func TestValidate_LastNameRules(t *testing.T) {
	opts := wizardOptions()
	d := contact.NewDraft()
	d.FirstName = "Mara"
	d.Categories = []category.Ref{{ID: 1}}

	d.LastName = "L"
	errs := Validate(d, opts)
	if errs["lastName"] != "Last name must be at least 2 characters" {
		t.Fatalf("unexpected lastName error: %q", errs["lastName"])
	}

	d.LastName = ""
	if errs := Validate(d, opts); errs["lastName"] != "" {
		t.Fatalf("blank optional last name should pass, got %q", errs["lastName"])
	}

	opts.LastNameRequired = true
	if errs := Validate(d, opts); errs["lastName"] != "Last name is required" {
		t.Fatalf("expected required error, got %q", errs["lastName"])
	}
}

func TestValidate_BirthdateTomorrowFails(t *testing.T) {
	d := contact.NewDraft()
	d.FirstName = "Mara"
	d.Categories = []category.Ref{{ID: 1}}
	d.Birthdate = "16.06.2025"

	errs := Validate(d, wizardOptions())

	if errs["birthdate"] != "Birthdate must be in the past" {
		t.Fatalf("unexpected birthdate error: %q", errs["birthdate"])
	}
}

func TestValidate_EntryTitleRules(t *testing.T) {
	d := contact.NewDraft()
	d.FirstName = "Mara"
	d.Categories = []category.Ref{{ID: 1}}
	d.Emails = []contact.EmailEntry{
		{Title: "private", Email: "a@b.de"},
		{Title: "", Email: "c@d.de"},
		{Title: "work", Email: "broken"},
	}
	d.Phones = []contact.PhoneEntry{{Title: "", Phone: "+49 170 1234567"}}
	d.Addresses = []contact.AddressEntry{{Title: "", City: "Berlin"}}
	d.Links = []contact.LinkEntry{{Title: "", URL: "https://example.com"}}

	errs := Validate(d, wizardOptions())

	want := Errors{
		"email_1":   "Title for email required",
		"email_2":   "Invalid email format",
		"phone_0":   "Title for phone required",
		"address_0": "Title for address required",
		"link_0":    "Title for URL required",
	}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Fatalf("unexpected errors (-want +got):\n%s", diff)
	}
}

func TestValidate_LinksSkippedUnlessIncluded(t *testing.T) {
	opts := wizardOptions()
	opts.IncludeLinks = false

	d := contact.NewDraft()
	d.FirstName = "Mara"
	d.Categories = []category.Ref{{ID: 1}}
	d.Links = []contact.LinkEntry{{Title: "", URL: "https://example.com"}}

	if errs := Validate(d, opts); !errs.Valid() {
		t.Fatalf("hidden links should not validate, got %#v", errs)
	}
}

func TestValidate_SingleFieldMode(t *testing.T) {
	opts := Options{SingleFieldMode: true}

	d := contact.NewDraft()
	d.FirstName = "Mara"
	errs := Validate(d, opts)
	if errs["email"] != "Email is required" {
		t.Fatalf("unexpected email error: %q", errs["email"])
	}

	d.Emails = []contact.EmailEntry{{Title: "private", Email: "nope"}}
	errs = Validate(d, opts)
	if errs["email"] != "Email is invalid" {
		t.Fatalf("unexpected email error: %q", errs["email"])
	}

	d.Emails = []contact.EmailEntry{{Title: "private", Email: "a@b.de"}}
	d.Phones = []contact.PhoneEntry{{Title: "mobile", Phone: "12-34"}}
	errs = Validate(d, opts)
	if errs["phone"] != "Please enter a valid phone number" {
		t.Fatalf("unexpected phone error: %q", errs["phone"])
	}

	d.Phones = []contact.PhoneEntry{{Title: "mobile", Phone: "+49 (170) 123-4567"}}
	if errs := Validate(d, opts); !errs.Valid() {
		t.Fatalf("expected clean single-field draft, got %#v", errs)
	}
}
