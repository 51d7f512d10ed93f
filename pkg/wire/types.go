// Package wire defines the snake_case record shapes exchanged with the
// persistence API and the bidirectional transformation between wire records
// and editable drafts.
package wire

// Email is the wire shape of one email entry.
type Email struct {
	Email string `json:"email"`
	Title string `json:"title"`
}

// Phone is the wire shape of one phone entry.
type Phone struct {
	Phone string `json:"phone"`
	Title string `json:"title"`
}

// Address is the wire shape of one address entry.
type Address struct {
	StreetAndNr    string  `json:"street_and_nr"`
	AdditionalInfo *string `json:"additional_info"`
	PostalCode     string  `json:"postal_code"`
	City           string  `json:"city"`
	Country        string  `json:"country"`
	Title          string  `json:"title"`
}

// Link is the wire shape of one link entry.
type Link struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Contact is the persistence-layer record. Optional scalars are pointers so
// blank values serialise as null rather than empty strings; dates travel as
// DD.MM.YYYY.
type Contact struct {
	ID int `json:"id,omitempty"`

	FirstName  string  `json:"first_name"`
	LastName   *string `json:"last_name"`
	IsFavorite bool    `json:"is_favorite"`
	BirthDate  *string `json:"birth_date"`
	Notes      *string `json:"notes"`

	LastContactDate  *string `json:"last_contact_date"`
	LastContactPlace *string `json:"last_contact_place"`
	NextContactDate  *string `json:"next_contact_date"`
	NextContactPlace *string `json:"next_contact_place"`
	IsContacted      bool    `json:"is_contacted"`
	IsToContact      bool    `json:"is_to_contact"`

	Categories []int     `json:"categories"`
	Emails     []Email   `json:"emails"`
	Phones     []Phone   `json:"phones"`
	Addresses  []Address `json:"addresses"`
	Links      []Link    `json:"links"`
}
