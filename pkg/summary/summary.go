package summary

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/goliatone/go-contactform/pkg/contact"
)

//go:embed templates
var templateAssets embed.FS

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
	defaultErr    error
)

// Render produces the plain-text summary of a draft using the embedded
// contact template.
func Render(d *contact.Draft) (string, error) {
	defaultOnce.Do(func() {
		files, err := fs.Sub(templateAssets, "templates")
		if err != nil {
			defaultErr = fmt.Errorf("summary: embedded templates: %w", err)
			return
		}
		defaultEngine, defaultErr = New(WithFS(files))
	})
	if defaultErr != nil {
		return "", defaultErr
	}
	return defaultEngine.Render("contact", Context(d))
}

// Context flattens a draft into the template data the contact template
// consumes. Only entries carrying a primary value are listed.
func Context(d *contact.Draft) map[string]any {
	names := make([]string, 0, len(d.Categories))
	for _, ref := range d.Categories {
		if ref.Name != "" {
			names = append(names, ref.Name)
		}
	}

	emails := make([]map[string]any, 0, len(d.Emails))
	for _, e := range d.Emails {
		if e.Email == "" {
			continue
		}
		emails = append(emails, map[string]any{"title": e.Title, "email": e.Email})
	}

	phones := make([]map[string]any, 0, len(d.Phones))
	for _, p := range d.Phones {
		if p.Phone == "" {
			continue
		}
		phones = append(phones, map[string]any{"title": p.Title, "phone": p.Phone})
	}

	addresses := make([]map[string]any, 0, len(d.Addresses))
	for _, a := range d.Addresses {
		if a.StreetAndNr == "" && a.City == "" && a.Country == "" && a.Postalcode == "" {
			continue
		}
		addresses = append(addresses, map[string]any{
			"title":         a.Title,
			"street_and_nr": a.StreetAndNr,
			"postal_code":   a.Postalcode,
			"city":          a.City,
			"country":       a.Country,
		})
	}

	links := make([]map[string]any, 0, len(d.Links))
	for _, l := range d.Links {
		if l.URL == "" {
			continue
		}
		links = append(links, map[string]any{"title": l.Title, "url": l.URL})
	}

	return map[string]any{
		"first_name":  d.FirstName,
		"last_name":   d.LastName,
		"is_favorite": d.IsFavorite,
		"birthdate":   d.Birthdate,
		"notes":       d.Notes,
		"categories":  names,
		"emails":      emails,
		"phones":      phones,
		"addresses":   addresses,
		"links":       links,
	}
}
