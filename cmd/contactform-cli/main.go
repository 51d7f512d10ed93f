// Command contactform-cli walks the two-step contact wizard on the terminal
// and emits the resulting wire payload as JSON. It runs against an in-process
// persistence stub, so it exercises the full engine without a backend.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-contactform/pkg/category"
	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/contract"
	"github.com/goliatone/go-contactform/pkg/labels"
	"github.com/goliatone/go-contactform/pkg/prompt"
	"github.com/goliatone/go-contactform/pkg/summary"
	"github.com/goliatone/go-contactform/pkg/wire"
	"github.com/goliatone/go-contactform/pkg/wizard"
)

func main() {
	output := flag.String("output", "", "output file (stdout if empty)")
	token := flag.String("token", "local", "bearer credential forwarded to the persistence API")
	check := flag.Bool("check", true, "validate the payload against the embedded API contract")
	flag.Parse()

	ctx := context.Background()
	api := newLocalAPI()
	session := wizard.New(api, wizard.Credential(*token))

	if _, err := session.LoadCatalog(ctx); err != nil {
		log.Fatalf("categories: %v", err)
	}

	drv := prompt.NewSurvey()
	saved, err := runWizard(ctx, drv, session)
	if err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			fmt.Fprintln(os.Stderr, "cancelled")
			os.Exit(1)
		}
		log.Fatalf("wizard: %v", err)
	}

	payload, err := json.MarshalIndent(saved, "", "  ")
	if err != nil {
		log.Fatalf("encode payload: %v", err)
	}

	if *check {
		if err := contract.ValidateContact(ctx, payload); err != nil {
			log.Fatalf("contract check: %v", err)
		}
	}

	if *output != "" {
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Contact written to %s\n", *output)
	} else {
		fmt.Println(string(payload))
	}
}

// runWizard drives the two steps until validation lets each transition pass,
// then confirms and submits.
func runWizard(ctx context.Context, drv prompt.Driver, session *wizard.Session) (wire.Contact, error) {
	for {
		if err := stepBasics(ctx, drv, session); err != nil {
			return wire.Contact{}, err
		}
		if session.Next() {
			break
		}
		if err := reportErrors(ctx, drv, session); err != nil {
			return wire.Contact{}, err
		}
	}

	for {
		if err := stepAdditional(ctx, drv, session); err != nil {
			return wire.Contact{}, err
		}

		text, err := summary.Render(session.Draft())
		if err != nil {
			return wire.Contact{}, err
		}
		if err := drv.Info(ctx, "\n"+text); err != nil {
			return wire.Contact{}, err
		}

		ok, err := drv.Confirm(ctx, prompt.ConfirmConfig{Message: "Save this contact?", Default: true})
		if err != nil {
			return wire.Contact{}, err
		}
		if !ok {
			return wire.Contact{}, prompt.ErrAborted
		}

		saved, err := session.Submit(ctx)
		if err == nil {
			return saved, nil
		}
		if !errors.Is(err, wizard.ErrValidation) {
			return wire.Contact{}, err
		}
		if err := reportErrors(ctx, drv, session); err != nil {
			return wire.Contact{}, err
		}
	}
}

func stepBasics(ctx context.Context, drv prompt.Driver, session *wizard.Session) error {
	d := session.Draft()

	first, err := drv.Input(ctx, prompt.InputConfig{Message: "First name", Default: d.FirstName})
	if err != nil {
		return err
	}
	d.FirstName = first
	session.FieldEdited("firstName")

	last, err := drv.Input(ctx, prompt.InputConfig{Message: "Last name (optional)", Default: d.LastName})
	if err != nil {
		return err
	}
	d.LastName = last
	session.FieldEdited("lastName")

	if err := pickCategories(ctx, drv, session); err != nil {
		return err
	}

	email, err := drv.Input(ctx, prompt.InputConfig{Message: "Email (optional)", Default: d.Emails[0].Email})
	if err != nil {
		return err
	}
	d.Emails = contact.SetEmailField(d.Emails, 0, "email", email)
	if email != "" {
		if err := pickTitle(ctx, drv, labels.VocabContact, "Email label", func(title string) {
			d.Emails = contact.SetEmailField(d.Emails, 0, "title", title)
		}); err != nil {
			return err
		}
	}
	session.FieldEdited("email_0")

	phone, err := drv.Input(ctx, prompt.InputConfig{Message: "Phone (optional)", Default: d.Phones[0].Phone})
	if err != nil {
		return err
	}
	d.Phones = contact.SetPhoneField(d.Phones, 0, "phone", phone)
	session.FieldEdited("phone_0")

	return nil
}

func stepAdditional(ctx context.Context, drv prompt.Driver, session *wizard.Session) error {
	d := session.Draft()

	birthdate, err := drv.Input(ctx, prompt.InputConfig{
		Message: "Birthdate (DD.MM.YYYY, optional)",
		Default: d.Birthdate,
	})
	if err != nil {
		return err
	}
	d.Birthdate = birthdate
	session.FieldEdited("birthdate")

	addLink, err := drv.Confirm(ctx, prompt.ConfirmConfig{Message: "Add a link?"})
	if err != nil {
		return err
	}
	if addLink {
		if err := pickTitle(ctx, drv, labels.VocabWeb, "Link label", func(title string) {
			d.Links = contact.SetLinkTitle(d.Links, 0, title)
		}); err != nil {
			return err
		}
		url, err := drv.Input(ctx, prompt.InputConfig{
			Message:     "URL",
			Placeholder: labels.Placeholder(d.Links[0].Title),
		})
		if err != nil {
			return err
		}
		d.Links = contact.SetLinkField(d.Links, 0, "url", url)
		session.FieldEdited("link_0")
	}

	notes, err := drv.TextArea(ctx, prompt.TextAreaConfig{Message: "Notes (optional)", Default: d.Notes})
	if err != nil {
		return err
	}
	d.Notes = notes

	return nil
}

func pickCategories(ctx context.Context, drv prompt.Driver, session *wizard.Session) error {
	catalog := session.Catalog()
	options := make([]string, 0, len(catalog)+1)
	for _, ref := range catalog {
		options = append(options, ref.Name)
	}
	options = append(options, "+ new category")

	picks, err := drv.MultiSelect(ctx, prompt.SelectConfig{
		Message: fmt.Sprintf("Categories (max %d)", category.MaxSelected),
		Options: options,
	})
	if err != nil {
		return err
	}

	for _, idx := range picks {
		if idx < 0 || idx >= len(options) {
			continue
		}
		if idx == len(options)-1 {
			name, err := drv.Input(ctx, prompt.InputConfig{Message: "New category name"})
			if err != nil {
				return err
			}
			if strings.TrimSpace(name) == "" {
				continue
			}
			if _, err := session.CreateCategory(name); err != nil {
				if reportErr := drv.Info(ctx, err.Error()); reportErr != nil {
					return reportErr
				}
			}
			continue
		}
		if err := session.SelectCategory(catalog[idx]); err != nil {
			if reportErr := drv.Info(ctx, err.Error()); reportErr != nil {
				return reportErr
			}
		}
	}
	return nil
}

func pickTitle(ctx context.Context, drv prompt.Driver, vocab, message string, setTitle func(string)) error {
	options := labels.Vocabulary(vocab)
	options = append(options, "own label")

	idx, err := drv.Select(ctx, prompt.SelectConfig{Message: message, Options: options})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(options) {
		return nil
	}
	if idx == len(options)-1 {
		custom, err := drv.Input(ctx, prompt.InputConfig{Message: "Label"})
		if err != nil {
			return err
		}
		if trimmed := strings.TrimSpace(custom); trimmed != "" {
			setTitle(trimmed)
		}
		return nil
	}
	setTitle(options[idx])
	return nil
}

func reportErrors(ctx context.Context, drv prompt.Driver, session *wizard.Session) error {
	for field, msg := range session.Errors() {
		if err := drv.Info(ctx, fmt.Sprintf("%s: %s", field, msg)); err != nil {
			return err
		}
	}
	if session.SubmitError() != "" {
		return drv.Info(ctx, session.SubmitError())
	}
	return nil
}
