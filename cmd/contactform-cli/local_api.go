package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/goliatone/go-contactform/pkg/category"
	"github.com/goliatone/go-contactform/pkg/wire"
	"github.com/goliatone/go-contactform/pkg/wizard"
)

// localAPI is an in-process persistence stub: it hands out a starter catalog,
// assigns ids, and echoes payloads back as saved records.
type localAPI struct {
	mu         sync.Mutex
	categories []category.Ref
	contacts   map[int]wire.Contact
	nextID     int
}

var _ wizard.Persistence = (*localAPI)(nil)

func newLocalAPI() *localAPI {
	return &localAPI{
		categories: []category.Ref{
			{ID: 1, Name: "Family"},
			{ID: 2, Name: "Work"},
			{ID: 3, Name: "Friends"},
		},
		contacts: make(map[int]wire.Contact),
		nextID:   1,
	}
}

func (a *localAPI) GetCategories(ctx context.Context, _ wizard.Credential) ([]category.Ref, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]category.Ref(nil), a.categories...), nil
}

func (a *localAPI) CreateCategory(ctx context.Context, _ wizard.Credential, name string) (category.Ref, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	maxID := 0
	for _, ref := range a.categories {
		if ref.ID > maxID {
			maxID = ref.ID
		}
	}
	created := category.Ref{ID: maxID + 1, Name: name}
	a.categories = append(a.categories, created)
	return created, nil
}

func (a *localAPI) GetContactByID(ctx context.Context, _ wizard.Credential, id int) (wire.Contact, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	rec, ok := a.contacts[id]
	if !ok {
		return wire.Contact{}, fmt.Errorf("contact %d not found", id)
	}
	return rec, nil
}

func (a *localAPI) CreateContact(ctx context.Context, _ wizard.Credential, payload map[string]any) (wire.Contact, error) {
	rec, err := decodeContact(payload)
	if err != nil {
		return wire.Contact{}, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	rec.ID = a.nextID
	a.nextID++
	a.contacts[rec.ID] = rec
	return rec, nil
}

func (a *localAPI) UpdateContact(ctx context.Context, _ wizard.Credential, id int, payload map[string]any) (wire.Contact, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	existing, ok := a.contacts[id]
	if !ok {
		return wire.Contact{}, fmt.Errorf("contact %d not found", id)
	}

	// Merge the partial payload over the stored record.
	raw, err := json.Marshal(existing)
	if err != nil {
		return wire.Contact{}, err
	}
	merged := make(map[string]any)
	if err := json.Unmarshal(raw, &merged); err != nil {
		return wire.Contact{}, err
	}
	for key, value := range payload {
		merged[key] = value
	}
	rec, err := decodeContact(merged)
	if err != nil {
		return wire.Contact{}, err
	}
	rec.ID = id
	a.contacts[id] = rec
	return rec, nil
}

func (a *localAPI) DeleteContact(ctx context.Context, _ wizard.Credential, id int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.contacts[id]; !ok {
		return fmt.Errorf("contact %d not found", id)
	}
	delete(a.contacts, id)
	return nil
}

func decodeContact(payload map[string]any) (wire.Contact, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return wire.Contact{}, err
	}
	var rec wire.Contact
	if err := json.Unmarshal(raw, &rec); err != nil {
		return wire.Contact{}, err
	}
	return rec, nil
}
