package wizard

import (
	"context"

	"github.com/goliatone/go-contactform/pkg/category"
	"github.com/goliatone/go-contactform/pkg/wire"
)

// Credential is the bearer token the session context supplies. It is passed
// through to every persistence call and never interpreted here.
type Credential string

// Persistence is the external collaborator that stores contacts and
// categories. Calls are single-shot: no retry, no timeout beyond what the
// context carries. Payloads are flattened maps so UpdateContact can accept
// partial records (a single boolean flag) without the full contact.
type Persistence interface {
	GetCategories(ctx context.Context, cred Credential) ([]category.Ref, error)
	CreateCategory(ctx context.Context, cred Credential, name string) (category.Ref, error)
	GetContactByID(ctx context.Context, cred Credential, id int) (wire.Contact, error)
	CreateContact(ctx context.Context, cred Credential, payload map[string]any) (wire.Contact, error)
	UpdateContact(ctx context.Context, cred Credential, id int, payload map[string]any) (wire.Contact, error)
	DeleteContact(ctx context.Context, cred Credential, id int) error
}
