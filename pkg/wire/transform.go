package wire

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-contactform/pkg/category"
	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/dates"
)

// Transformer converts between wire records and drafts. The zero value is
// usable; Dates carries the clock used when normalising date scalars.
type Transformer struct {
	Dates dates.Converter
}

// ToDraft hydrates a draft from a wire record. Missing scalars become empty
// strings or false, category ids resolve against the catalog (unknown ids
// keep the bare id, name left blank), and empty repeatable arrays are
// replaced with a single default entry so the list-length invariant already
// holds when editing starts.
func (t Transformer) ToDraft(rec Contact, catalog []category.Ref) *contact.Draft {
	d := &contact.Draft{
		ID:               rec.ID,
		FirstName:        rec.FirstName,
		LastName:         deref(rec.LastName),
		IsFavorite:       rec.IsFavorite,
		Birthdate:        deref(rec.BirthDate),
		Notes:            deref(rec.Notes),
		LastContactDate:  deref(rec.LastContactDate),
		LastContactPlace: deref(rec.LastContactPlace),
		NextContactDate:  deref(rec.NextContactDate),
		NextContactPlace: deref(rec.NextContactPlace),
		IsContacted:      rec.IsContacted,
		IsToContact:      rec.IsToContact,
	}

	for _, id := range rec.Categories {
		d.Categories = append(d.Categories, resolveRef(id, catalog))
	}

	for _, e := range rec.Emails {
		d.Emails = append(d.Emails, contact.EmailEntry{Title: e.Title, Email: e.Email})
	}
	if len(d.Emails) == 0 {
		d.Emails = []contact.EmailEntry{contact.DefaultEmail()}
	}

	for _, p := range rec.Phones {
		d.Phones = append(d.Phones, contact.PhoneEntry{Title: p.Title, Phone: p.Phone})
	}
	if len(d.Phones) == 0 {
		d.Phones = []contact.PhoneEntry{contact.DefaultPhone()}
	}

	for _, a := range rec.Addresses {
		d.Addresses = append(d.Addresses, contact.AddressEntry{
			Title:          a.Title,
			StreetAndNr:    a.StreetAndNr,
			AdditionalInfo: deref(a.AdditionalInfo),
			Postalcode:     a.PostalCode,
			City:           a.City,
			Country:        a.Country,
		})
	}
	if len(d.Addresses) == 0 {
		d.Addresses = []contact.AddressEntry{contact.DefaultAddress()}
	}

	for _, l := range rec.Links {
		d.Links = append(d.Links, contact.LinkEntry{Title: l.Title, URL: l.URL})
	}
	if len(d.Links) == 0 {
		d.Links = []contact.LinkEntry{contact.DefaultLink()}
	}

	return d
}

// ToWire shapes a draft into the persistence payload. Scalars are trimmed
// (blank optional ones become null), free-text scalars are sanitised, date
// scalars are normalised to DD.MM.YYYY, category entries resolve to ids
// (unresolvable ones are omitted), and repeatable entries missing their
// primary value or title are dropped. Malformed dates degrade to null rather
// than raising.
func (t Transformer) ToWire(d *contact.Draft, catalog []category.Ref) Contact {
	rec := Contact{
		ID:               d.ID,
		FirstName:        strings.TrimSpace(d.FirstName),
		LastName:         optional(d.LastName),
		IsFavorite:       d.IsFavorite,
		BirthDate:        t.normalizeDate(d.Birthdate),
		Notes:            optional(SanitizeText(d.Notes)),
		LastContactDate:  t.normalizeDate(d.LastContactDate),
		LastContactPlace: optional(SanitizeText(d.LastContactPlace)),
		NextContactDate:  t.normalizeDate(d.NextContactDate),
		NextContactPlace: optional(SanitizeText(d.NextContactPlace)),
		IsContacted:      d.IsContacted,
		IsToContact:      d.IsToContact,
		Categories:       []int{},
		Emails:           []Email{},
		Phones:           []Phone{},
		Addresses:        []Address{},
		Links:            []Link{},
	}

	for _, ref := range d.Categories {
		if id, ok := category.ResolveID(ref, catalog); ok {
			rec.Categories = append(rec.Categories, id)
		}
	}

	for _, e := range d.Emails {
		if strings.TrimSpace(e.Email) == "" || strings.TrimSpace(e.Title) == "" {
			continue
		}
		rec.Emails = append(rec.Emails, Email{
			Email: strings.TrimSpace(e.Email),
			Title: strings.TrimSpace(e.Title),
		})
	}

	for _, p := range d.Phones {
		if strings.TrimSpace(p.Phone) == "" || strings.TrimSpace(p.Title) == "" {
			continue
		}
		rec.Phones = append(rec.Phones, Phone{
			Phone: strings.TrimSpace(p.Phone),
			Title: strings.TrimSpace(p.Title),
		})
	}

	for _, a := range d.Addresses {
		hasValue := strings.TrimSpace(a.StreetAndNr) != "" ||
			strings.TrimSpace(a.City) != "" ||
			strings.TrimSpace(a.Country) != "" ||
			strings.TrimSpace(a.Postalcode) != ""
		if !hasValue || strings.TrimSpace(a.Title) == "" {
			continue
		}
		rec.Addresses = append(rec.Addresses, Address{
			StreetAndNr:    strings.TrimSpace(a.StreetAndNr),
			AdditionalInfo: optional(a.AdditionalInfo),
			PostalCode:     strings.TrimSpace(a.Postalcode),
			City:           strings.TrimSpace(a.City),
			Country:        strings.TrimSpace(a.Country),
			Title:          strings.TrimSpace(a.Title),
		})
	}

	for _, l := range d.Links {
		if strings.TrimSpace(l.URL) == "" || strings.TrimSpace(l.Title) == "" {
			continue
		}
		rec.Links = append(rec.Links, Link{
			URL:   contact.NormalizeURL(l.Title, strings.TrimSpace(l.URL)),
			Title: strings.TrimSpace(l.Title),
		})
	}

	return rec
}

// Payload flattens a wire record into a map and applies caller overrides
// last, unconditionally. The map form is what UpdateContact-style partial
// endpoints accept.
func Payload(rec Contact, overrides map[string]any) (map[string]any, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("wire: marshal record: %w", err)
	}
	out := make(map[string]any)
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("wire: flatten record: %w", err)
	}
	for key, value := range overrides {
		out[key] = value
	}
	return out, nil
}

// normalizeDate accepts either backend (DD.MM.YYYY) or form (YYYY-MM-DD)
// input and yields the backend form, or nil when the value is blank or does
// not parse.
func (t Transformer) normalizeDate(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	if res := t.Dates.Validate(trimmed, dates.Any); res.IsValid {
		return &trimmed
	}
	if converted, ok := t.Dates.ToBackend(trimmed); ok {
		return &converted
	}
	return nil
}

func resolveRef(id int, catalog []category.Ref) category.Ref {
	for _, ref := range catalog {
		if ref.ID == id {
			return ref
		}
	}
	return category.Ref{ID: id}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// ToDraft hydrates a draft using a zero-valued Transformer.
func ToDraft(rec Contact, catalog []category.Ref) *contact.Draft {
	return Transformer{}.ToDraft(rec, catalog)
}

// ToWire shapes a draft using a zero-valued Transformer.
func ToWire(d *contact.Draft, catalog []category.Ref) Contact {
	return Transformer{}.ToWire(d, catalog)
}
