// Package plugin defines the lifecycle of components mounted on the gateway's router.
package plugin

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/rackhd/redfish-gateway/config"
	"github.com/rackhd/redfish-gateway/pkg/db"
	"github.com/rackhd/redfish-gateway/pkg/logger"
)

// Context carries the shared infrastructure handed to every plugin.
type Context struct {
	Config   *config.Config
	Logger   logger.Interface
	Database *db.SQL
	Router   *gin.Engine
}

// Plugin is a component with its own routes and resources.
type Plugin interface {
	Name() string
	Version() string

	// Initialize builds the plugin's dependencies. It is called once, before RegisterRoutes.
	Initialize(ctx *Context) error
	RegisterRoutes(ctx *Context) error
	// Shutdown releases resources held since Initialize.
	Shutdown(ctx *Context) error
}

// Manager runs the lifecycle of the registered plugins in registration order.
type Manager struct {
	plugins     []Plugin
	initialized []Plugin
	ctx         *Context
}

// NewManager -.
func NewManager(ctx *Context) *Manager {
	return &Manager{ctx: ctx}
}

// Register -.
func (m *Manager) Register(p Plugin) {
	m.plugins = append(m.plugins, p)
}

// Start initializes every plugin and then registers its routes. Plugins already
// initialized are shut down when a later one fails.
func (m *Manager) Start() error {
	for _, p := range m.plugins {
		m.ctx.Logger.Debug("initializing plugin", "name", p.Name(), "version", p.Version())

		if err := p.Initialize(m.ctx); err != nil {
			return errors.Join(fmt.Errorf("plugin %s - Initialize: %w", p.Name(), err), m.Shutdown())
		}

		m.initialized = append(m.initialized, p)
	}

	for _, p := range m.initialized {
		if err := p.RegisterRoutes(m.ctx); err != nil {
			return errors.Join(fmt.Errorf("plugin %s - RegisterRoutes: %w", p.Name(), err), m.Shutdown())
		}
	}

	return nil
}

// Shutdown stops initialized plugins in reverse order and joins their errors.
func (m *Manager) Shutdown() error {
	var errs []error

	for i := len(m.initialized) - 1; i >= 0; i-- {
		p := m.initialized[i]

		if err := p.Shutdown(m.ctx); err != nil {
			m.ctx.Logger.Error(err, "plugin", p.Name())
			errs = append(errs, fmt.Errorf("plugin %s - Shutdown: %w", p.Name(), err))
		}
	}

	m.initialized = nil

	return errors.Join(errs...)
}
