// Package launch holds the selection and launch state machine shared by every
// frontend: it records the activated plugin, tracks the host variant and
// starts the host process.
package launch

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lvim-tech/lv2launch/pkg/catalog"
	"github.com/lvim-tech/lv2launch/pkg/host"
	"github.com/lvim-tech/lv2launch/pkg/view"
)

// Observer is told about selection changes, e.g. to update a subtitle.
type Observer interface {
	SelectionChanged(entry catalog.Entry)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(entry catalog.Entry)

// SelectionChanged implements Observer
func (f ObserverFunc) SelectionChanged(entry catalog.Entry) {
	f(entry)
}

// Handler consumes frontend events.
type Handler interface {
	Handle(ctx context.Context, ev Event) error
}

// Status is a snapshot of the controller for renderers.
type Status struct {
	Selection    catalog.Entry
	HasSelection bool
	Variant      host.Variant
	Host         string
	HostLabel    string
}

// Controller owns the selection, the host variant and the view it filters.
// It is not safe for concurrent use; frontends drive it from one goroutine.
type Controller struct {
	view      *view.View
	hosts     host.Hosts
	variant   host.Variant
	selection *catalog.Entry
	spawner   Spawner
	observers []Observer
	logger    zerolog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithVariant sets the initial host variant.
func WithVariant(v host.Variant) Option {
	return func(c *Controller) { c.variant = v }
}

// WithSpawner replaces the DetachedSpawner.
func WithSpawner(s Spawner) Option {
	return func(c *Controller) { c.spawner = s }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithObserver registers an observer.
func WithObserver(o Observer) Option {
	return func(c *Controller) { c.observers = append(c.observers, o) }
}

// NewController builds a controller over v launching with hosts.
func NewController(v *view.View, hosts host.Hosts, opts ...Option) *Controller {
	c := &Controller{
		view:    v,
		hosts:   hosts,
		variant: host.VariantA,
		spawner: DetachedSpawner{},
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Observe registers an observer after construction.
func (c *Controller) Observe(o Observer) {
	c.observers = append(c.observers, o)
}

// View returns the filtered view the controller drives.
func (c *Controller) View() *view.View {
	return c.view
}

// Handle implements Handler. Only LaunchRequested can fail.
func (c *Controller) Handle(ctx context.Context, ev Event) error {
	switch e := ev.(type) {
	case QueryChanged:
		c.view.SetQuery(e.Query)
		return nil
	case EntryActivated:
		c.Select(e.Entry)
		return nil
	case VariantToggled:
		c.Toggle()
		return nil
	case LaunchRequested:
		_, err := c.Launch(ctx)
		return err
	default:
		return fmt.Errorf("unknown event %T", ev)
	}
}

// Select records entry as the current selection and notifies observers.
func (c *Controller) Select(entry catalog.Entry) {
	e := entry
	c.selection = &e
	c.logger.Debug().
		Str("name", entry.Name).
		Str("identifier", entry.Identifier).
		Msg("plugin selected")
	for _, o := range c.observers {
		o.SelectionChanged(entry)
	}
}

// Selection returns the current selection, if any.
func (c *Controller) Selection() (catalog.Entry, bool) {
	if c.selection == nil {
		return catalog.Entry{}, false
	}
	return *c.selection, true
}

// CanLaunch reports whether a selection exists.
func (c *Controller) CanLaunch() bool {
	return c.selection != nil
}

// Toggle flips the host variant and returns the new one.
func (c *Controller) Toggle() host.Variant {
	c.variant = c.variant.Toggle()
	c.logger.Debug().
		Str("variant", c.variant.String()).
		Str("host", c.hosts.ExecutableFor(c.variant)).
		Msg("host toggled")
	return c.variant
}

// Variant returns the active host variant.
func (c *Controller) Variant() host.Variant {
	return c.variant
}

// Status returns a snapshot for renderers.
func (c *Controller) Status() Status {
	s := Status{
		Variant:   c.variant,
		Host:      c.hosts.ExecutableFor(c.variant),
		HostLabel: c.hosts.Label(c.variant),
	}
	if c.selection != nil {
		s.Selection = *c.selection
		s.HasSelection = true
	}
	return s
}

// Command returns the argv Launch would run, without running it.
func (c *Controller) Command() ([]string, error) {
	if c.selection == nil {
		return nil, NoSelectionError{}
	}
	return []string{c.hosts.ExecutableFor(c.variant), c.selection.Identifier}, nil
}

// Launch starts the active host with the selected identifier. It returns as
// soon as the process is running.
func (c *Controller) Launch(ctx context.Context) (*Launched, error) {
	argv, err := c.Command()
	if err != nil {
		c.logger.Warn().Msg("launch requested without a selection")
		return nil, err
	}

	id := uuid.NewString()
	log := c.logger.With().
		Str("launch_id", id).
		Strs("command", argv).
		Logger()

	if err := ctx.Err(); err != nil {
		return nil, &LaunchError{Command: argv, Err: err}
	}

	launched, err := c.spawner.Spawn(argv)
	if err != nil {
		log.Error().Err(err).Msg("failed to start plugin host")
		return nil, &LaunchError{Command: argv, Err: err}
	}
	if launched == nil {
		launched = &Launched{Command: argv}
	}
	launched.ID = id

	log.Info().
		Int("pid", launched.PID).
		Str("plugin", c.selection.Name).
		Msg("plugin host started")
	return launched, nil
}
