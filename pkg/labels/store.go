package labels

import "strings"

// Selection is the transient picker state for one list entry. It exists only
// while the entry exists and is never persisted.
type Selection struct {
	Open         bool
	AddingCustom bool
	CustomDraft  string
}

type slot struct {
	list  string
	index int
}

// Store tracks picker state keyed by (list name, entry index). Removing
// entry k leaves the states of later entries keyed at their old positions,
// re-associating them with whichever entries shift into those indices;
// Forget only drops the removed slot.
type Store struct {
	states map[slot]Selection
}

// NewStore returns an empty picker state store.
func NewStore() *Store {
	return &Store{states: make(map[slot]Selection)}
}

// Get returns the state for an entry, zero-valued when untouched.
func (s *Store) Get(list string, index int) Selection {
	return s.states[slot{list, index}]
}

// Toggle flips the dropdown open/closed for one entry.
func (s *Store) Toggle(list string, index int) {
	key := slot{list, index}
	state := s.states[key]
	state.Open = !state.Open
	s.states[key] = state
}

// SelectPredefined applies a vocabulary title through setTitle, closes the
// dropdown, and clears any in-progress custom label.
func (s *Store) SelectPredefined(list string, index int, title string, setTitle func(string)) {
	if setTitle != nil {
		setTitle(title)
	}
	s.states[slot{list, index}] = Selection{}
}

// BeginCustom opens the custom label input for one entry.
func (s *Store) BeginCustom(list string, index int) {
	key := slot{list, index}
	state := s.states[key]
	state.AddingCustom = true
	state.CustomDraft = ""
	s.states[key] = state
}

// UpdateCustomDraft records the text typed into the custom label input.
func (s *Store) UpdateCustomDraft(list string, index int, text string) {
	key := slot{list, index}
	state := s.states[key]
	state.CustomDraft = text
	s.states[key] = state
}

// CommitCustom applies the trimmed custom label through setTitle and closes
// the picker. A blank draft commits nothing and reports false, leaving the
// picker open.
func (s *Store) CommitCustom(list string, index int, setTitle func(string)) bool {
	key := slot{list, index}
	trimmed := strings.TrimSpace(s.states[key].CustomDraft)
	if trimmed == "" {
		return false
	}
	if setTitle != nil {
		setTitle(trimmed)
	}
	s.states[key] = Selection{}
	return true
}

// Close dismisses the dropdown and discards custom input, as when the user
// clicks outside the picker.
func (s *Store) Close(list string, index int) {
	s.states[slot{list, index}] = Selection{}
}

// Forget drops the state slot of a removed entry. States of entries past the
// removed index keep their positions.
func (s *Store) Forget(list string, index int) {
	delete(s.states, slot{list, index})
}
