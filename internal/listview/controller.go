package listview

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Controller owns the state of one list page. It is safe for concurrent use;
// Store calls run without holding the lock.
type Controller[T, D any] struct {
	schema   Schema[T, D]
	store    Store[T]
	notifier Notifier
	logger   *slog.Logger

	mu       sync.Mutex
	all      []T
	filtered []T
	loaded   bool
	search   string
	page     int

	draft    D
	editing  bool
	editOpen bool
	errors   FieldErrors
	// draftGen changes whenever a new draft is opened.
	draftGen uint64

	detail     T
	detailOpen bool

	// loadSeq is the token of the most recently issued Load.
	loadSeq uint64
}

// New builds a controller. It panics if the schema is incomplete.
func New[T, D any](schema Schema[T, D], store Store[T], notifier Notifier, logger *slog.Logger) *Controller[T, D] {
	if err := schema.check(); err != nil {
		panic(err)
	}
	if notifier == nil {
		notifier = Discard
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller[T, D]{
		schema:   schema,
		store:    store,
		notifier: notifier,
		logger:   logger.With(slog.String("resource", schema.Resource)),
		page:     1,
		draft:    schema.Blank(),
		errors:   FieldErrors{},
	}
}

// Schema returns the page configuration.
func (c *Controller[T, D]) Schema() Schema[T, D] { return c.schema }

// Load replaces the cached collection with a fresh List. A response that
// arrives after a newer Load was issued is discarded. On failure the cached
// data is kept and the page's load error is shown.
func (c *Controller[T, D]) Load(ctx context.Context) error {
	c.mu.Lock()
	c.loadSeq++
	token := c.loadSeq
	c.mu.Unlock()

	items, err := c.store.List(ctx)

	c.mu.Lock()
	stale := token != c.loadSeq
	if err == nil && !stale {
		c.all = items
		c.filtered = Filter(c.all, c.search, c.schema.Name)
		c.loaded = true
	}
	c.mu.Unlock()

	if stale {
		c.logger.Debug("discarding stale list response", slog.Uint64("token", token), slog.Any("error", err))
		return nil
	}
	if err != nil {
		c.logger.Error("load list failed", slog.Any("error", err))
		c.notifier.Error(ctx, c.schema.Messages.LoadFailed)
		return fmt.Errorf("listview: load %s: %w", c.schema.Resource, err)
	}
	return nil
}

// SetSearch updates the search text and recomputes the filtered list. The
// current page is left as is.
func (c *Controller[T, D]) SetSearch(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search = text
	c.filtered = Filter(c.all, c.search, c.schema.Name)
}

// Search returns the current search text.
func (c *Controller[T, D]) Search() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.search
}

// GoTo selects a 1-based page. Pages past the last one are accepted and show
// an empty slice.
func (c *Controller[T, D]) GoTo(page int) error {
	if page < 1 {
		return ErrInvalidPage
	}
	c.mu.Lock()
	c.page = page
	c.mu.Unlock()
	return nil
}

// CurrentPage returns the selected page number.
func (c *Controller[T, D]) CurrentPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// All returns a copy of the last fetched collection.
func (c *Controller[T, D]) All() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.all...)
}

// Filtered returns a copy of the items matching the search.
func (c *Controller[T, D]) Filtered() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T{}, c.filtered...)
}

// Page returns the visible slice of the filtered list.
func (c *Controller[T, D]) Page() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T{}, Paginate(c.filtered, c.page, c.schema.PageSize)...)
}

// PageCount returns ceil(len(filtered) / PageSize).
func (c *Controller[T, D]) PageCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return NewPagination(c.page, c.schema.PageSize, len(c.filtered)).TotalPages
}

// Find looks a record up by id in the last fetched collection.
func (c *Controller[T, D]) Find(id int64) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.all {
		if c.schema.ID(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// OpenCreate opens the edit dialog on a blank draft.
func (c *Controller[T, D]) OpenCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = c.schema.Blank()
	c.editing = false
	c.errors = FieldErrors{}
	c.editOpen = true
	c.draftGen++
}

// OpenEdit opens the edit dialog on a copy of item.
func (c *Controller[T, D]) OpenEdit(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = c.schema.Draft(item)
	c.editing = true
	c.errors = FieldErrors{}
	c.editOpen = true
	c.draftGen++
}

// CloseEdit closes the edit dialog and drops its errors.
func (c *Controller[T, D]) CloseEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editOpen = false
	c.errors = FieldErrors{}
}

// OpenDetails opens the read-only dialog on item.
func (c *Controller[T, D]) OpenDetails(item T) {
	if c.schema.Detail != nil {
		item = c.schema.Detail(item)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.detail = item
	c.detailOpen = true
}

// CloseDetails closes the read-only dialog.
func (c *Controller[T, D]) CloseDetails() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.detailOpen = false
}

// Draft returns a copy of the draft and whether the edit dialog is open.
func (c *Controller[T, D]) Draft() (D, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cloneDraft(), c.editOpen
}

// Errors returns a copy of the current field errors.
func (c *Controller[T, D]) Errors() FieldErrors {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyErrors(c.errors)
}

// SetField updates one draft field through the schema.
func (c *Controller[T, D]) SetField(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editOpen {
		return ErrDialogClosed
	}
	return c.schema.SetField(&c.draft, name, value)
}

// Mutate applies fn to the draft under the controller lock. fn must not call
// back into the controller.
func (c *Controller[T, D]) Mutate(fn func(*D) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editOpen {
		return ErrDialogClosed
	}
	return fn(&c.draft)
}

// Submit validates the draft and, when valid, creates or updates the record.
// On success the dialog closes, the list reloads and a toast is shown. A
// failed save leaves the dialog open.
func (c *Controller[T, D]) Submit(ctx context.Context) error {
	c.mu.Lock()
	if !c.editOpen {
		c.mu.Unlock()
		return ErrDialogClosed
	}
	draft := c.cloneDraft()
	editing := c.editing
	gen := c.draftGen
	c.mu.Unlock()

	if errs := c.schema.Validate(draft); len(errs) > 0 {
		c.mu.Lock()
		if c.draftGen == gen {
			c.errors = copyErrors(errs)
		}
		c.mu.Unlock()
		if msg := c.schema.Messages.Invalid; msg != "" {
			c.notifier.Error(ctx, msg)
		}
		return &ValidationError{Fields: copyErrors(errs)}
	}

	c.mu.Lock()
	if c.draftGen == gen {
		c.errors = FieldErrors{}
	}
	c.mu.Unlock()

	payload, err := c.schema.Payload(draft)
	if err == nil {
		if editing {
			_, err = c.store.Update(ctx, c.schema.DraftID(draft), payload)
		} else {
			_, err = c.store.Create(ctx, payload)
		}
	}
	if err != nil {
		c.logger.Error("save failed", slog.Bool("editing", editing), slog.Any("error", err))
		c.notifier.Error(ctx, c.schema.Messages.SaveFailed)
		return fmt.Errorf("listview: save %s: %w", c.schema.Resource, err)
	}

	// a dialog opened while the request was in flight stays open
	c.mu.Lock()
	if c.draftGen == gen {
		c.editOpen = false
	}
	c.mu.Unlock()

	// a reload failure is reported by Load itself; the save already succeeded
	_ = c.Load(ctx)

	if editing {
		c.notifier.Success(ctx, c.schema.Messages.Updated)
	} else {
		c.notifier.Success(ctx, c.schema.Messages.Created)
	}
	return nil
}

// Remove asks for confirmation and deletes item. It reports whether the
// record was deleted; a declined confirmation is not an error. A failed
// delete leaves the cached list untouched.
func (c *Controller[T, D]) Remove(ctx context.Context, item T) (bool, error) {
	msgs := c.schema.Messages
	text := ""
	if msgs.ConfirmText != nil {
		text = msgs.ConfirmText(c.schema.Name(item))
	}
	ok, err := c.notifier.Confirm(ctx, msgs.ConfirmTitle, text)
	if err != nil {
		return false, fmt.Errorf("listview: confirm delete: %w", err)
	}
	if !ok {
		return false, nil
	}

	id := c.schema.ID(item)
	if err := c.store.Delete(ctx, id); err != nil {
		c.logger.Error("delete failed", slog.Int64("id", id), slog.Any("error", err))
		c.notifier.Error(ctx, msgs.DeleteFailed)
		return false, fmt.Errorf("listview: delete %s %d: %w", c.schema.Resource, id, err)
	}

	_ = c.Load(ctx)
	c.notifier.Success(ctx, msgs.Deleted)
	return true, nil
}

// View is a consistent copy of everything a front-end renders.
type View[T, D any] struct {
	Items      []T
	Pagination Pagination
	Search     string
	Loaded     bool

	Draft    D
	Editing  bool
	EditOpen bool
	Errors   FieldErrors

	Detail     T
	DetailOpen bool
}

// Snapshot captures the current state in one lock acquisition.
func (c *Controller[T, D]) Snapshot() View[T, D] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return View[T, D]{
		Items:      append([]T{}, Paginate(c.filtered, c.page, c.schema.PageSize)...),
		Pagination: NewPagination(c.page, c.schema.PageSize, len(c.filtered)),
		Search:     c.search,
		Loaded:     c.loaded,
		Draft:      c.cloneDraft(),
		Editing:    c.editing,
		EditOpen:   c.editOpen,
		Errors:     copyErrors(c.errors),
		Detail:     c.detail,
		DetailOpen: c.detailOpen,
	}
}

// cloneDraft must be called with mu held.
func (c *Controller[T, D]) cloneDraft() D {
	if c.schema.Clone != nil {
		return c.schema.Clone(c.draft)
	}
	return c.draft
}

func copyErrors(in FieldErrors) FieldErrors {
	out := make(FieldErrors, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
