package screens

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"eventdesk-console-go/internal/listview"
	"eventdesk-console-go/internal/upstream"
)

// Notifier receives the outcome of every dispatched action. Backed by the
// notification center in production and by a recorder in tests.
type Notifier interface {
	Success(message string)
	Error(message string)
	Warning(message string)
}

// Reconcile picks how a confirmed status change lands in local state: patch
// the one item in place, or refetch the whole collection.
type Reconcile int

const (
	ReconcileRefetch Reconcile = iota
	ReconcilePatch
)

// Form is a submitted create/update form, field name to raw value.
type Form map[string]string

// ValidationError is a client-local form failure. It short-circuits before
// any network call and is shown inline, never sent upstream.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

// Config wires one resource screen: how to fetch and mutate its collection,
// which fields free-text search looks at, and which categorical dimensions it
// filters on. Every screen in the console is an instance of this one
// controller rather than a copy of its logic.
type Config[T any] struct {
	Name         string
	PageSize     int
	ID           func(T) int
	SearchFields func(T) []string
	Dimensions   []listview.Dimension[T]

	// Statuses lists the values SetStatus accepts. Empty means the screen
	// has no status action.
	Statuses []string

	Reconcile   Reconcile
	ApplyStatus func(T, string) T

	List      func(ctx context.Context) ([]T, error)
	SetStatus func(ctx context.Context, id int, status string) error
	Delete    func(ctx context.Context, id int) error
	Create    func(ctx context.Context, form Form) error
	Update    func(ctx context.Context, id int, form Form) error

	Required []string
	Numeric  []string
}

// View is what a list endpoint renders: one page of the filtered collection.
type View[T any] struct {
	Items      []T  `json:"items"`
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	TotalPages int  `json:"totalPages"`
	PageSize   int  `json:"pageSize"`
	Loading    bool `json:"loading"`
}

// Controller owns the mirrored collection for one resource screen and
// dispatches its actions. Failed mutations leave the collection exactly as it
// was; state only advances on confirmed success.
type Controller[T any] struct {
	cfg    Config[T]
	state  listview.Container[T]
	notify Notifier
}

func NewController[T any](cfg Config[T], notifier Notifier) *Controller[T] {
	if cfg.PageSize < 1 {
		cfg.PageSize = 10
	}
	return &Controller[T]{cfg: cfg, notify: notifier}
}

func (c *Controller[T]) Name() string { return c.cfg.Name }

// Load refetches the collection, replacing local state wholesale on success.
// Results of superseded fetches are discarded.
func (c *Controller[T]) Load(ctx context.Context) error {
	generation := c.state.Begin()
	items, err := c.cfg.List(ctx)
	if !c.state.Complete(generation, items, err) {
		return nil
	}
	return err
}

// Ensure loads the collection on first use only.
func (c *Controller[T]) Ensure(ctx context.Context) error {
	if c.state.Loaded() {
		return nil
	}
	return c.Load(ctx)
}

// View filters and paginates the mirrored collection. The fetch error, when
// present, replaces the page content.
func (c *Controller[T]) View(q listview.Query, page int) (View[T], error) {
	items, loading, err := c.state.Snapshot()
	if err != nil {
		return View[T]{}, err
	}
	filtered := listview.Filter(items, q, c.cfg.SearchFields, c.cfg.Dimensions)
	paged := listview.Paginate(filtered, page, c.cfg.PageSize)
	return View[T]{
		Items:      paged.Items,
		Total:      paged.Total,
		Page:       paged.Number,
		TotalPages: paged.TotalPages,
		PageSize:   c.cfg.PageSize,
		Loading:    loading,
	}, nil
}

// Dimensions exposes the configured filter dimension names so the HTTP layer
// knows which query parameters to read.
func (c *Controller[T]) Dimensions() []string {
	names := make([]string, 0, len(c.cfg.Dimensions))
	for _, dim := range c.cfg.Dimensions {
		names = append(names, dim.Name)
	}
	return names
}

// ChangeStatus dispatches an approve/reject-style mutation and reconciles
// local state per the screen's strategy.
func (c *Controller[T]) ChangeStatus(ctx context.Context, id int, status string) error {
	if c.cfg.SetStatus == nil {
		return fmt.Errorf("%s: status changes not supported", c.cfg.Name)
	}
	if id <= 0 {
		c.notify.Warning(fmt.Sprintf("Cannot update %s: missing identifier", c.cfg.Name))
		return fmt.Errorf("%s: invalid id %d", c.cfg.Name, id)
	}
	if len(c.cfg.Statuses) > 0 && !contains(c.cfg.Statuses, status) {
		c.notify.Warning(fmt.Sprintf("Cannot update %s: unknown status %q", c.cfg.Name, status))
		return fmt.Errorf("%s: invalid status %q", c.cfg.Name, status)
	}
	if err := c.cfg.SetStatus(ctx, id, status); err != nil {
		c.notify.Error(c.failureMessage("update", err))
		return err
	}
	if c.cfg.Reconcile == ReconcilePatch && c.cfg.ApplyStatus != nil {
		c.state.Patch(func(items []T) []T {
			for i, item := range items {
				if c.cfg.ID(item) == id {
					items[i] = c.cfg.ApplyStatus(item, status)
				}
			}
			return items
		})
	} else if err := c.Load(ctx); err != nil {
		return err
	}
	c.notify.Success(fmt.Sprintf("%s %s", title(c.cfg.Name), strings.ToLower(status)))
	return nil
}

// Remove deletes one item after guarding against an obviously invalid id,
// then refetches.
func (c *Controller[T]) Remove(ctx context.Context, id int) error {
	if c.cfg.Delete == nil {
		return fmt.Errorf("%s: delete not supported", c.cfg.Name)
	}
	if id <= 0 {
		c.notify.Warning(fmt.Sprintf("Cannot delete %s: missing identifier", c.cfg.Name))
		return fmt.Errorf("%s: invalid id %d", c.cfg.Name, id)
	}
	if err := c.cfg.Delete(ctx, id); err != nil {
		c.notify.Error(c.failureMessage("delete", err))
		return err
	}
	if err := c.Load(ctx); err != nil {
		return err
	}
	c.notify.Success(fmt.Sprintf("%s deleted", title(c.cfg.Name)))
	return nil
}

// Submit creates a new item from a form. Local validation runs before any
// network call; validation failures are returned for inline display and do
// not raise a toast.
func (c *Controller[T]) Submit(ctx context.Context, form Form) error {
	if c.cfg.Create == nil {
		return fmt.Errorf("%s: create not supported", c.cfg.Name)
	}
	if err := c.validate(form); err != nil {
		return err
	}
	if err := c.cfg.Create(ctx, form); err != nil {
		c.notify.Error(c.failureMessage("create", err))
		return err
	}
	if err := c.Load(ctx); err != nil {
		return err
	}
	c.notify.Success(fmt.Sprintf("%s created", title(c.cfg.Name)))
	return nil
}

// Revise updates an existing item from a form, with the same local
// validation as Submit.
func (c *Controller[T]) Revise(ctx context.Context, id int, form Form) error {
	if c.cfg.Update == nil {
		return fmt.Errorf("%s: update not supported", c.cfg.Name)
	}
	if id <= 0 {
		c.notify.Warning(fmt.Sprintf("Cannot update %s: missing identifier", c.cfg.Name))
		return fmt.Errorf("%s: invalid id %d", c.cfg.Name, id)
	}
	if err := c.validate(form); err != nil {
		return err
	}
	if err := c.cfg.Update(ctx, id, form); err != nil {
		c.notify.Error(c.failureMessage("update", err))
		return err
	}
	if err := c.Load(ctx); err != nil {
		return err
	}
	c.notify.Success(fmt.Sprintf("%s updated", title(c.cfg.Name)))
	return nil
}

func (c *Controller[T]) validate(form Form) error {
	for _, field := range c.cfg.Required {
		if strings.TrimSpace(form[field]) == "" {
			return ValidationError{Field: field, Reason: "is required"}
		}
	}
	for _, field := range c.cfg.Numeric {
		value := strings.TrimSpace(form[field])
		if value == "" {
			continue
		}
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return ValidationError{Field: field, Reason: "must be a number"}
		}
	}
	return nil
}

func (c *Controller[T]) failureMessage(verb string, err error) string {
	if msg := upstream.ServerMessage(err); msg != "" {
		return msg
	}
	return fmt.Sprintf("Failed to %s %s", verb, c.cfg.Name)
}

func title(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
