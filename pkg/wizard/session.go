// Package wizard drives the multi-step contact form: step navigation gated by
// validation, submit orchestration against the persistence collaborator, and
// the post-submit reconciliation of optimistically created categories.
package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-contactform/pkg/category"
	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/validate"
	"github.com/goliatone/go-contactform/pkg/wire"
)

var (
	// ErrNotFinalStep is returned when Submit is invoked before the last step.
	ErrNotFinalStep = errors.New("wizard: submit is only reachable from the final step")
	// ErrValidation is returned when a submit or step transition fails
	// validation; the field errors are published on the session.
	ErrValidation = errors.New("wizard: draft failed validation")
	// ErrSubmitInFlight guards against duplicate submissions while a request
	// is outstanding.
	ErrSubmitInFlight = errors.New("wizard: a submission is already in flight")
	// ErrNotPersisted is returned when Delete is called on a draft that was
	// never saved.
	ErrNotPersisted = errors.New("wizard: draft has no persisted contact")
	// ErrDeleteCancelled is returned when the confirmation callback declines
	// the delete.
	ErrDeleteCancelled = errors.New("wizard: delete not confirmed")
)

// DefaultTotalSteps matches the two-step contact wizard: identity/contact
// methods first, then birthdate/notes/links.
const DefaultTotalSteps = 2

// Option configures a Session at construction time.
type Option func(*Session)

// WithDraft seeds the session with an existing draft (editing flow).
func WithDraft(d *contact.Draft) Option {
	return func(s *Session) {
		if d != nil {
			s.draft = d
		}
	}
}

// WithTotalSteps overrides the number of wizard steps.
func WithTotalSteps(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.totalSteps = n
		}
	}
}

// WithValidation overrides the rule set the session validates with.
func WithValidation(opts validate.Options) Option {
	return func(s *Session) { s.valOpts = opts }
}

// WithTransformer overrides the wire transformer (clock injection).
func WithTransformer(t wire.Transformer) Option {
	return func(s *Session) { s.transformer = t }
}

// WithOverrides supplies payload field replacements applied last on submit.
func WithOverrides(overrides map[string]any) Option {
	return func(s *Session) { s.overrides = overrides }
}

// Session owns one form session: the draft under edit, the category catalog,
// the current step, and the two independent error channels (field errors and
// the submit-level error). Sessions are single-owner and not safe for
// concurrent use, matching the event-driven form they back.
type Session struct {
	api  Persistence
	cred Credential

	draft       *contact.Draft
	catalog     []category.Ref
	loader      *category.Loader
	transformer wire.Transformer
	valOpts     validate.Options
	overrides   map[string]any

	step       int
	totalSteps int

	errs         validate.Errors
	submitErr    string
	hasSubmitted bool
	inFlight     bool
	syncErrs     []error
}

// New builds a session for a fresh draft. The default rule set matches the
// wizard variant: categories required, links included, last name optional.
func New(api Persistence, cred Credential, opts ...Option) *Session {
	s := &Session{
		api:        api,
		cred:       cred,
		draft:      contact.NewDraft(),
		step:       1,
		totalSteps: DefaultTotalSteps,
		valOpts: validate.Options{
			CategoriesRequired: true,
			IncludeLinks:       true,
		},
		errs: make(validate.Errors),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.loader = category.NewLoader(func(ctx context.Context) ([]category.Ref, error) {
		return s.api.GetCategories(ctx, s.cred)
	})
	return s
}

// Draft exposes the draft for the mutating subsystems.
func (s *Session) Draft() *contact.Draft { return s.draft }

// Catalog returns the categories known to this session.
func (s *Session) Catalog() []category.Ref { return s.catalog }

// Step returns the current wizard step, 1-based.
func (s *Session) Step() int { return s.step }

// TotalSteps returns the number of steps in this wizard.
func (s *Session) TotalSteps() int { return s.totalSteps }

// Errors returns the field errors published by the last validation pass.
func (s *Session) Errors() validate.Errors { return s.errs }

// SubmitError returns the submit-level error message, empty when none.
func (s *Session) SubmitError() string { return s.submitErr }

// HasSubmitted reports whether the user attempted a gated transition; error
// display is throttled on it by the caller.
func (s *Session) HasSubmitted() bool { return s.hasSubmitted }

// InFlight reports whether a submission is outstanding; callers disable the
// submit control while true.
func (s *Session) InFlight() bool { return s.inFlight }

// CategorySyncErrors lists post-submit category creations that failed. They
// are surfaced, never retried, and never rolled back.
func (s *Session) CategorySyncErrors() []error {
	return append([]error(nil), s.syncErrs...)
}

// LoadCatalog fetches the category catalog, at most once per session.
// Duplicate calls return the first result.
func (s *Session) LoadCatalog(ctx context.Context) ([]category.Ref, error) {
	catalog, err := s.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("wizard: load categories: %w", err)
	}
	s.catalog = catalog
	return catalog, nil
}

// Hydrate replaces the session draft with the persisted contact id, loading
// the catalog first so category ids resolve to named refs.
func (s *Session) Hydrate(ctx context.Context, id int) error {
	if _, err := s.LoadCatalog(ctx); err != nil {
		return err
	}
	rec, err := s.api.GetContactByID(ctx, s.cred, id)
	if err != nil {
		return fmt.Errorf("wizard: load contact %d: %w", id, err)
	}
	s.draft = s.transformer.ToDraft(rec, s.catalog)
	return nil
}

// SelectCategory adds a catalog category to the draft, enforcing the
// selection bound. ErrLimitReached is surfaced to the user; the draft is
// unchanged.
func (s *Session) SelectCategory(ref category.Ref) error {
	selected, err := category.Select(s.draft.Categories, ref)
	if err != nil {
		return err
	}
	s.draft.Categories = selected
	s.FieldEdited("categories")
	return nil
}

// DeselectCategory removes a category from the draft.
func (s *Session) DeselectCategory(id int) {
	s.draft.Categories = category.Deselect(s.draft.Categories, id)
}

// CreateCategory optimistically creates a category locally. No network call
// happens here; pending entries are reconciled after the contact itself is
// persisted.
func (s *Session) CreateCategory(rawName string) (category.Ref, error) {
	catalog, selected, created, err := category.CreateLocal(s.catalog, s.draft.Categories, rawName)
	if err != nil {
		return category.Ref{}, err
	}
	s.catalog = catalog
	s.draft.Categories = selected
	s.FieldEdited("categories")
	return created, nil
}

// Next validates the draft and advances one step when clean. On failure the
// step does not change and the errors are published.
func (s *Session) Next() bool {
	s.hasSubmitted = true
	s.errs = validate.Validate(s.draft, s.valOpts)
	if !s.errs.Valid() {
		return false
	}
	if s.step < s.totalSteps {
		s.step++
	}
	s.hasSubmitted = false
	return true
}

// Prev steps back without validating.
func (s *Session) Prev() {
	if s.step > 1 {
		s.step--
	}
}

// GoToStep jumps directly to step n, clamped to the valid range. Intervening
// steps are not re-validated.
func (s *Session) GoToStep(n int) {
	if n < 1 {
		n = 1
	}
	if n > s.totalSteps {
		n = s.totalSteps
	}
	s.step = n
}

// FieldEdited clears the published error for one field and the submit-level
// error; the two channels reset independently of validation passes.
func (s *Session) FieldEdited(key string) {
	if s.hasSubmitted {
		delete(s.errs, key)
	}
	s.submitErr = ""
}

// Submit runs the full validation, transforms the draft, and persists it.
// New drafts create, hydrated drafts update. While the request is in flight
// further submits fail with ErrSubmitInFlight. On success, pending categories
// are created and reconciled; failures there are recorded but neither retried
// nor rolled back. The draft is retained on every failure path so the user
// can correct and resubmit.
func (s *Session) Submit(ctx context.Context) (wire.Contact, error) {
	if s.step != s.totalSteps {
		return wire.Contact{}, ErrNotFinalStep
	}
	if s.inFlight {
		return wire.Contact{}, ErrSubmitInFlight
	}

	s.hasSubmitted = true
	s.errs = validate.Validate(s.draft, s.valOpts)
	if !s.errs.Valid() {
		return wire.Contact{}, ErrValidation
	}

	s.inFlight = true
	defer func() { s.inFlight = false }()

	rec := s.transformer.ToWire(s.draft, s.catalog)
	payload, err := wire.Payload(rec, s.overrides)
	if err != nil {
		s.submitErr = err.Error()
		return wire.Contact{}, err
	}

	var saved wire.Contact
	if s.draft.ID == 0 {
		saved, err = s.api.CreateContact(ctx, s.cred, payload)
	} else {
		saved, err = s.api.UpdateContact(ctx, s.cred, s.draft.ID, payload)
	}
	if err != nil {
		s.submitErr = err.Error()
		return wire.Contact{}, fmt.Errorf("wizard: persist contact: %w", err)
	}

	s.submitErr = ""
	s.syncPendingCategories(ctx)
	return saved, nil
}

// Delete removes the persisted contact after an explicit confirmation.
func (s *Session) Delete(ctx context.Context, confirm func() bool) error {
	if s.draft.ID == 0 {
		return ErrNotPersisted
	}
	if confirm == nil || !confirm() {
		return ErrDeleteCancelled
	}
	if err := s.api.DeleteContact(ctx, s.cred, s.draft.ID); err != nil {
		return fmt.Errorf("wizard: delete contact %d: %w", s.draft.ID, err)
	}
	return nil
}

// syncPendingCategories creates each locally added category on the server and
// replaces the pending entry with the authoritative record.
func (s *Session) syncPendingCategories(ctx context.Context) {
	pending := make([]category.Ref, 0, len(s.draft.Categories))
	for _, ref := range s.draft.Categories {
		if ref.Pending {
			pending = append(pending, ref)
		}
	}
	for _, ref := range pending {
		authoritative, err := s.api.CreateCategory(ctx, s.cred, ref.Name)
		if err != nil {
			s.syncErrs = append(s.syncErrs, fmt.Errorf("wizard: sync category %q: %w", ref.Name, err))
			continue
		}
		s.catalog, s.draft.Categories = category.Reconcile(s.catalog, s.draft.Categories, ref.LocalKey, authoritative)
	}
}
