package contact

import "strings"

// SetEmailField updates one field of the email entry at index i. Unknown
// field names leave the entry untouched.
func SetEmailField(list []EmailEntry, i int, field, value string) []EmailEntry {
	return UpdateAt(list, i, func(e EmailEntry) EmailEntry {
		switch field {
		case "title":
			e.Title = value
		case "email":
			e.Email = value
		}
		return e
	})
}

// SetPhoneField updates one field of the phone entry at index i.
func SetPhoneField(list []PhoneEntry, i int, field, value string) []PhoneEntry {
	return UpdateAt(list, i, func(p PhoneEntry) PhoneEntry {
		switch field {
		case "title":
			p.Title = value
		case "phone":
			p.Phone = value
		}
		return p
	})
}

// SetAddressField updates one field of the address entry at index i.
func SetAddressField(list []AddressEntry, i int, field, value string) []AddressEntry {
	return UpdateAt(list, i, func(a AddressEntry) AddressEntry {
		switch field {
		case "title":
			a.Title = value
		case "streetAndNr":
			a.StreetAndNr = value
		case "additionalInfo":
			a.AdditionalInfo = value
		case "postalcode":
			a.Postalcode = value
		case "city":
			a.City = value
		case "country":
			a.Country = value
		}
		return a
	})
}

// SetLinkField updates one field of the link entry at index i. URL values are
// normalised on every change against the entry's current title: instagram
// entries are reformatted as @handles, anything that looks like a bare domain
// gains an https:// prefix.
func SetLinkField(list []LinkEntry, i int, field, value string) []LinkEntry {
	return UpdateAt(list, i, func(l LinkEntry) LinkEntry {
		switch field {
		case "title":
			l.Title = value
		case "url":
			l.URL = NormalizeURL(l.Title, value)
		}
		return l
	})
}

// SetLinkTitle switches the title of the link entry at index i. Switching to
// instagram clears a URL that is not already an @handle, so a previously
// entered website address is not silently treated as a handle.
func SetLinkTitle(list []LinkEntry, i int, newTitle string) []LinkEntry {
	return UpdateAt(list, i, func(l LinkEntry) LinkEntry {
		if strings.EqualFold(newTitle, "instagram") && l.URL != "" && !strings.HasPrefix(l.URL, "@") {
			l.URL = ""
		}
		l.Title = newTitle
		return l
	})
}

// NormalizeURL applies the per-title URL formatting rules. For instagram
// titles all leading @ runes are stripped and a single @ re-prefixed when
// content remains. Otherwise a value that carries a dot but no scheme gets
// https:// prepended.
func NormalizeURL(title, value string) string {
	if strings.EqualFold(title, "instagram") {
		clean := strings.TrimLeft(value, "@")
		if clean == "" {
			return clean
		}
		return "@" + clean
	}
	if value == "" {
		return value
	}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return value
	}
	if strings.Contains(value, ".") {
		return "https://" + value
	}
	return value
}
