package contact

import "github.com/goliatone/go-contactform/pkg/category"

// EmailEntry is one row of the repeatable email list.
type EmailEntry struct {
	Title string `json:"title"`
	Email string `json:"email"`
}

// PhoneEntry is one row of the repeatable phone list.
type PhoneEntry struct {
	Title string `json:"title"`
	Phone string `json:"phone"`
}

// AddressEntry is one row of the repeatable address list.
type AddressEntry struct {
	Title          string `json:"title"`
	StreetAndNr    string `json:"streetAndNr"`
	AdditionalInfo string `json:"additionalInfo"`
	Postalcode     string `json:"postalcode"`
	City           string `json:"city"`
	Country        string `json:"country"`
}

// LinkEntry is one row of the repeatable link list.
type LinkEntry struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Draft is the in-memory representation of a contact (or user profile) under
// edit. It is created empty via NewDraft or hydrated from a wire record, is
// mutated only through the list manager, label, and category subsystems, and
// is discarded on cancel or after a successful submit.
//
// Every repeatable list holds at least one entry at all times; Remove
// enforces the floor and the wire hydration path seeds empty lists with a
// default entry.
type Draft struct {
	ID int

	FirstName  string
	LastName   string
	Notes      string
	IsFavorite bool
	Birthdate  string

	IsContacted      bool
	IsToContact      bool
	LastContactDate  string
	LastContactPlace string
	NextContactDate  string
	NextContactPlace string

	Categories []category.Ref

	Emails    []EmailEntry
	Phones    []PhoneEntry
	Addresses []AddressEntry
	Links     []LinkEntry
}

// NewDraft returns an empty draft with each repeatable list seeded with its
// default entry, so the minimum-length invariant holds from the start.
func NewDraft() *Draft {
	return &Draft{
		Emails:    []EmailEntry{DefaultEmail()},
		Phones:    []PhoneEntry{DefaultPhone()},
		Addresses: []AddressEntry{DefaultAddress()},
		Links:     []LinkEntry{DefaultLink()},
	}
}

// DefaultEmail is the entry new email rows start from.
func DefaultEmail() EmailEntry { return EmailEntry{Title: "private"} }

// DefaultPhone is the entry new phone rows start from.
func DefaultPhone() PhoneEntry { return PhoneEntry{Title: "mobile"} }

// DefaultAddress is the entry new address rows start from.
func DefaultAddress() AddressEntry { return AddressEntry{Title: "private"} }

// DefaultLink is the entry new link rows start from. Link titles start blank
// so the title picker shows its placeholder.
func DefaultLink() LinkEntry { return LinkEntry{} }

// Clone returns a deep copy of the draft. Subsystems that must not alias the
// caller's slices (validation fixtures, submit snapshots) work on clones.
func (d *Draft) Clone() *Draft {
	if d == nil {
		return nil
	}
	out := *d
	out.Categories = append([]category.Ref(nil), d.Categories...)
	out.Emails = append([]EmailEntry(nil), d.Emails...)
	out.Phones = append([]PhoneEntry(nil), d.Phones...)
	out.Addresses = append([]AddressEntry(nil), d.Addresses...)
	out.Links = append([]LinkEntry(nil), d.Links...)
	return &out
}
