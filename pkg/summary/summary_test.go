package summary

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-contactform/pkg/category"
	"github.com/goliatone/go-contactform/pkg/contact"
)

func TestRender(t *testing.T) {
	d := contact.NewDraft()
	d.FirstName = "Mara"
	d.LastName = "Lind"
	d.IsFavorite = true
	d.Birthdate = "07.03.1990"
	d.Categories = []category.Ref{{ID: 1, Name: "Family"}, {ID: 2, Name: "Work"}}
	d.Emails = []contact.EmailEntry{{Title: "private", Email: "mara@example.com"}}
	d.Phones = []contact.PhoneEntry{{Title: "mobile", Phone: "+49 170 1234567"}}
	d.Links = []contact.LinkEntry{{Title: "website", URL: "https://example.com"}}
	d.Notes = "met at the festival"

	out, err := Render(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Mara Lind *",
		"categories: Family, Work",
		"birthdate: 07.03.1990",
		"email (private): mara@example.com",
		"phone (mobile): +49 170 1234567",
		"link (website): https://example.com",
		"notes: met at the festival",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRender_SkipsValuelessEntries(t *testing.T) {
	d := contact.NewDraft() // seeded entries carry titles but no values
	d.FirstName = "Mara"

	out, err := Render(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, unwanted := range []string{"email (", "phone (", "address (", "link (", "categories:", "notes:"} {
		if strings.Contains(out, unwanted) {
			t.Fatalf("summary should omit %q:\n%s", unwanted, out)
		}
	}
	if !strings.Contains(out, "Mara") {
		t.Fatalf("summary missing the name:\n%s", out)
	}
}

func TestContext(t *testing.T) {
	d := contact.NewDraft()
	d.FirstName = "Mara"
	d.Addresses = []contact.AddressEntry{
		{Title: "private", StreetAndNr: "Main St 1", Postalcode: "10115", City: "Berlin"},
		{Title: "empty"},
	}
	d.Categories = []category.Ref{{Name: "Friends", Pending: true}}

	data := Context(d)

	addresses, ok := data["addresses"].([]map[string]any)
	if !ok || len(addresses) != 1 {
		t.Fatalf("expected one populated address, got %#v", data["addresses"])
	}
	if addresses[0]["city"] != "Berlin" {
		t.Fatalf("unexpected address: %#v", addresses[0])
	}

	names, ok := data["categories"].([]string)
	if !ok || len(names) != 1 || names[0] != "Friends" {
		t.Fatalf("pending categories should be listed by name, got %#v", data["categories"])
	}
}

func TestNew_OptionSurface(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("expected an error without a template fs")
	}

	files := fstest.MapFS{
		"greet.txt": {Data: []byte("hello {{ name }}")},
	}
	engine, err := New(
		nil, // nil options are skipped
		WithFS(files),
		WithExtension("txt"),
		WithGlobalData(map[string]any{"name": "Mara"}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := engine.Render("greet", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hello Mara" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestEngine_RenderString(t *testing.T) {
	engine, err := New(WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := engine.RenderString("{{ name }} has {{ count }} entries", map[string]any{
		"name":  "Mara",
		"count": 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Mara has 2 entries" {
		t.Fatalf("unexpected output: %q", out)
	}
}
