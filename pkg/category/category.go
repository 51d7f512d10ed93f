package category

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxSelected bounds how many categories a single contact may carry.
const MaxSelected = 3

var (
	// ErrLimitReached is returned when a selection already holds MaxSelected
	// categories. The selection is left untouched; callers surface the
	// message as a user-facing notice.
	ErrLimitReached = errors.New("category: maximum of 3 categories allowed")

	// ErrEmptyName is returned by CreateLocal when the raw name is blank
	// after trimming.
	ErrEmptyName = errors.New("category: name is empty")
)

// Ref identifies a category. Locally created categories carry Pending=true
// plus an opaque LocalKey; their numeric ID is a provisional guess
// (max existing + 1) and must not be treated as authoritative until
// Reconcile replaces the entry with the server-assigned record.
type Ref struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Pending  bool   `json:"pending,omitempty"`
	LocalKey string `json:"-"`
}

// Select appends ref to the selection. Selecting an already-present ID is a
// no-op, and a full selection (MaxSelected entries) rejects the addition with
// ErrLimitReached. Insertion order is preserved.
func Select(selected []Ref, ref Ref) ([]Ref, error) {
	for _, existing := range selected {
		if existing.ID == ref.ID {
			return selected, nil
		}
	}
	if len(selected) >= MaxSelected {
		return selected, ErrLimitReached
	}
	out := make([]Ref, 0, len(selected)+1)
	out = append(out, selected...)
	out = append(out, ref)
	return out, nil
}

// Deselect removes the category with the given id, preserving the order of
// the remaining entries.
func Deselect(selected []Ref, id int) []Ref {
	out := make([]Ref, 0, len(selected))
	for _, ref := range selected {
		if ref.ID == id {
			continue
		}
		out = append(out, ref)
	}
	return out
}

// CreateLocal builds a pending category from rawName and appends it to both
// the global catalog and the current selection in one step. The name is
// normalised (first rune upper-cased, remainder trimmed) and the provisional
// id is max(existing ids)+1, or 1 for an empty catalog.
func CreateLocal(catalog, selected []Ref, rawName string) (newCatalog, newSelected []Ref, created Ref, err error) {
	name := NormalizeName(rawName)
	if name == "" {
		return catalog, selected, Ref{}, ErrEmptyName
	}

	created = Ref{
		ID:       nextID(catalog),
		Name:     name,
		Pending:  true,
		LocalKey: uuid.NewString(),
	}

	newCatalog = append(append([]Ref(nil), catalog...), created)
	newSelected = append(append([]Ref(nil), selected...), created)
	return newCatalog, newSelected, created, nil
}

// Reconcile swaps the pending entry identified by localKey for the
// authoritative server record, in both the catalog and the selection. The
// pending entry is replaced, never merged; a localKey with no match leaves
// both slices unchanged.
func Reconcile(catalog, selected []Ref, localKey string, authoritative Ref) (newCatalog, newSelected []Ref) {
	authoritative.Pending = false
	authoritative.LocalKey = ""
	return replaceByKey(catalog, localKey, authoritative), replaceByKey(selected, localKey, authoritative)
}

// ResolveID maps a selection entry to the id the persistence layer expects.
// Pending entries resolve through the catalog by exact name match; an entry
// that cannot be resolved reports ok=false and is omitted from payloads
// rather than raising.
func ResolveID(ref Ref, catalog []Ref) (int, bool) {
	if !ref.Pending && ref.ID != 0 {
		return ref.ID, true
	}
	for _, candidate := range catalog {
		if candidate.Name == ref.Name && !candidate.Pending {
			return candidate.ID, true
		}
	}
	if ref.ID != 0 {
		return ref.ID, true
	}
	return 0, false
}

// NormalizeName upper-cases the first rune and trims the remainder, matching
// how user-entered category names are canonicalised before creation.
func NormalizeName(raw string) string {
	if raw == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(raw)
	rest := strings.TrimSpace(raw[size:])
	head := string(unicode.ToUpper(first))
	if strings.TrimSpace(head) == "" {
		return rest
	}
	return head + rest
}

func nextID(catalog []Ref) int {
	max := 0
	for _, ref := range catalog {
		if ref.ID > max {
			max = ref.ID
		}
	}
	return max + 1
}

func replaceByKey(refs []Ref, localKey string, replacement Ref) []Ref {
	out := make([]Ref, len(refs))
	for i, ref := range refs {
		if ref.LocalKey != "" && ref.LocalKey == localKey {
			out[i] = replacement
			continue
		}
		out[i] = ref
	}
	return out
}
