package wire

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contactform/pkg/category"
	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/dates"
)

func ptr(s string) *string { return &s }

func testTransformer() Transformer {
	return Transformer{Dates: dates.Converter{Now: func() time.Time {
		return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	}}}
}

func wellFormedRecord() Contact {
	return Contact{
		ID:               9,
		FirstName:        "Mara",
		LastName:         ptr("Lind"),
		IsFavorite:       true,
		BirthDate:        ptr("07.03.1990"),
		Notes:            ptr("met at the festival"),
		LastContactDate:  ptr("01.05.2025"),
		LastContactPlace: ptr("Berlin"),
		NextContactDate:  ptr("01.07.2025"),
		NextContactPlace: ptr("Hamburg"),
		IsContacted:      true,
		IsToContact:      false,
		Categories:       []int{1},
		Emails:           []Email{{Email: "mara@example.com", Title: "private"}},
		Phones:           []Phone{{Phone: "+49 170 1234567", Title: "mobile"}},
		Addresses: []Address{{
			StreetAndNr: "Main St 1",
			PostalCode:  "10115",
			City:        "Berlin",
			Country:     "Germany",
			Title:       "private",
		}},
		Links: []Link{{URL: "https://example.com", Title: "website"}},
	}
}

func TestToWireToDraft_RoundTripsWellFormedRecord(t *testing.T) {
	tr := testTransformer()
	catalog := []category.Ref{{ID: 1, Name: "Family"}}
	rec := wellFormedRecord()

	got := tr.ToWire(tr.ToDraft(rec, catalog), catalog)

	if diff := cmp.Diff(rec, got); diff != "" {
		t.Fatalf("round-trip changed the record (-want +got):\n%s", diff)
	}
}

func TestToDraft_EmptyListsGetDefaultEntry(t *testing.T) {
	tr := testTransformer()

	d := tr.ToDraft(Contact{FirstName: "Mara"}, nil)

	if len(d.Emails) != 1 || d.Emails[0].Title != "private" {
		t.Fatalf("emails not seeded: %#v", d.Emails)
	}
	if len(d.Phones) != 1 || d.Phones[0].Title != "mobile" {
		t.Fatalf("phones not seeded: %#v", d.Phones)
	}
	if len(d.Addresses) != 1 {
		t.Fatalf("addresses not seeded: %#v", d.Addresses)
	}
	if len(d.Links) != 1 {
		t.Fatalf("links not seeded: %#v", d.Links)
	}
}

func TestToDraft_NullScalarsBecomeZeroValues(t *testing.T) {
	tr := testTransformer()

	d := tr.ToDraft(Contact{FirstName: "Mara"}, nil)

	if d.LastName != "" || d.Notes != "" || d.Birthdate != "" {
		t.Fatalf("nil scalars should hydrate empty: %#v", d)
	}
	if d.IsFavorite || d.IsContacted || d.IsToContact {
		t.Fatalf("booleans should hydrate false: %#v", d)
	}
}

func TestToDraft_ResolvesCategoriesAgainstCatalog(t *testing.T) {
	tr := testTransformer()
	catalog := []category.Ref{{ID: 1, Name: "Family"}}

	d := tr.ToDraft(Contact{FirstName: "Mara", Categories: []int{1, 99}}, catalog)

	if len(d.Categories) != 2 {
		t.Fatalf("unexpected categories: %#v", d.Categories)
	}
	if d.Categories[0].Name != "Family" {
		t.Fatalf("known id should resolve to its name: %#v", d.Categories[0])
	}
	if d.Categories[1].ID != 99 || d.Categories[1].Name != "" {
		t.Fatalf("unknown id keeps the bare id: %#v", d.Categories[1])
	}
}

func TestToWire_FiltersEntriesMissingValueOrTitle(t *testing.T) {
	tr := testTransformer()
	d := contact.NewDraft()
	d.FirstName = "Mara"
	d.Emails = []contact.EmailEntry{
		{Title: "private", Email: ""},              // no value, dropped
		{Title: "", Email: "mara@example.com"},     // no title, dropped
		{Title: "work", Email: "work@example.com"}, // kept
	}
	d.Phones = []contact.PhoneEntry{{Title: "mobile"}}
	d.Links = []contact.LinkEntry{{Title: "website", URL: "  example.com  "}}

	rec := tr.ToWire(d, nil)

	if len(rec.Emails) != 1 || rec.Emails[0].Email != "work@example.com" {
		t.Fatalf("unexpected emails: %#v", rec.Emails)
	}
	if len(rec.Phones) != 0 {
		t.Fatalf("value-less phone should be dropped: %#v", rec.Phones)
	}
	if len(rec.Links) != 1 || rec.Links[0].URL != "https://example.com" {
		t.Fatalf("link should be trimmed and schemed: %#v", rec.Links)
	}
}

func TestToWire_TrimsAndNullsOptionalScalars(t *testing.T) {
	tr := testTransformer()
	d := contact.NewDraft()
	d.FirstName = "  Mara  "
	d.LastName = "   "
	d.Notes = "  keep this  "

	rec := tr.ToWire(d, nil)

	if rec.FirstName != "Mara" {
		t.Fatalf("first name not trimmed: %q", rec.FirstName)
	}
	if rec.LastName != nil {
		t.Fatalf("blank last name should be null, got %q", *rec.LastName)
	}
	if rec.Notes == nil || *rec.Notes != "keep this" {
		t.Fatalf("notes mishandled: %#v", rec.Notes)
	}
}

func TestToWire_NormalizesDates(t *testing.T) {
	tr := testTransformer()
	d := contact.NewDraft()
	d.FirstName = "Mara"
	d.Birthdate = "1990-03-07"      // form format, converted
	d.LastContactDate = "01.05.2025" // backend format, kept
	d.NextContactDate = "not a date" // degrades to null

	rec := tr.ToWire(d, nil)

	if rec.BirthDate == nil || *rec.BirthDate != "07.03.1990" {
		t.Fatalf("form date not converted: %#v", rec.BirthDate)
	}
	if rec.LastContactDate == nil || *rec.LastContactDate != "01.05.2025" {
		t.Fatalf("backend date mangled: %#v", rec.LastContactDate)
	}
	if rec.NextContactDate != nil {
		t.Fatalf("malformed date should degrade to null, got %q", *rec.NextContactDate)
	}
}

func TestToWire_SanitizesFreeText(t *testing.T) {
	tr := testTransformer()
	d := contact.NewDraft()
	d.FirstName = "Mara"
	d.Notes = "met <b>at</b> the <i>festival</i>"

	rec := tr.ToWire(d, nil)

	if rec.Notes == nil || *rec.Notes != "met at the festival" {
		t.Fatalf("notes not sanitised: %#v", rec.Notes)
	}
}

func TestToWire_OmitsUnresolvableCategories(t *testing.T) {
	tr := testTransformer()
	catalog := []category.Ref{{ID: 5, Name: "Work"}}
	d := contact.NewDraft()
	d.FirstName = "Mara"
	d.Categories = []category.Ref{
		{ID: 5, Name: "Work"},
		{Name: "Ghost", Pending: true, LocalKey: "k"},
	}

	rec := tr.ToWire(d, catalog)

	if len(rec.Categories) != 1 || rec.Categories[0] != 5 {
		t.Fatalf("unexpected categories: %#v", rec.Categories)
	}
}

func TestPayload_OverridesApplyLast(t *testing.T) {
	rec := wellFormedRecord()

	payload, err := Payload(rec, map[string]any{
		"is_favorite": false,
		"extra_flag":  true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if payload["is_favorite"] != false {
		t.Fatalf("override not applied: %#v", payload["is_favorite"])
	}
	if payload["extra_flag"] != true {
		t.Fatalf("new override key missing: %#v", payload)
	}
	if payload["first_name"] != "Mara" {
		t.Fatalf("record fields lost: %#v", payload["first_name"])
	}
}
