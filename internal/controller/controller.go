package controller

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Store is the persistence capability the controller needs.
type Store interface {
	Get(tag string) string
	Put(tag, query string) error
	Remove(tag string) error
	Keys() []string
}

// Controller owns the application State and keeps the Store in step with it.
type Controller struct {
	store    Store
	settings Settings
	logger   *zap.Logger
	state    State
}

// Params holds parameters for creating a new Controller.
type Params struct {
	Store    Store
	Settings Settings
	Logger   *zap.Logger // optional, uses a no-op logger if nil
}

// New creates a Controller, loading every entry of the store.
func New(params Params) *Controller {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	searches := make(map[string]string)
	for _, tag := range params.Store.Keys() {
		searches[tag] = params.Store.Get(tag)
	}

	logger.Debug("Loaded saved searches", zap.Int("count", len(searches)))

	return &Controller{
		store:    params.Store,
		settings: params.Settings,
		logger:   logger,
		state:    NewState(searches),
	}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Settings returns the settings the rules run with.
func (c *Controller) Settings() Settings {
	return c.settings
}

// Dispatch feeds ev through Reduce, writes persistence effects through to the
// store and returns the effects left for the caller.
// A failed store write is reported, but the in-memory change is kept.
func (c *Controller) Dispatch(ev Event) ([]Effect, error) {
	next, effects := c.settings.Reduce(c.state, ev)
	c.state = next

	var errs []error
	var rest []Effect

	for _, eff := range effects {
		switch eff := eff.(type) {
		case PutSearch:
			c.logger.Debug("Saving search", zap.String("tag", eff.Tag))
			if err := c.store.Put(eff.Tag, eff.Query); err != nil {
				c.logger.Error("Saving search failed", zap.String("tag", eff.Tag), zap.Error(err))
				errs = append(errs, fmt.Errorf("saving %q: %w", eff.Tag, err))
			}
		case RemoveSearch:
			c.logger.Debug("Removing search", zap.String("tag", eff.Tag))
			if err := c.store.Remove(eff.Tag); err != nil {
				c.logger.Error("Removing search failed", zap.String("tag", eff.Tag), zap.Error(err))
				errs = append(errs, fmt.Errorf("removing %q: %w", eff.Tag, err))
			}
		default:
			rest = append(rest, eff)
		}
	}

	return rest, errors.Join(errs...)
}
