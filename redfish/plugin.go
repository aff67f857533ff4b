// Package redfish mounts the Redfish service on the gateway router.
package redfish

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rackhd/redfish-gateway/pkg/plugin"
	v1 "github.com/rackhd/redfish-gateway/redfish/internal/controller/http/v1/handler"
)

const (
	PluginName    = "redfish"
	PluginVersion = "1.0.0"
)

// ErrNotInitialized is returned when routes are registered before Initialize.
var ErrNotInitialized = errors.New("redfish plugin is not initialized")

// Plugin -.
type Plugin struct {
	component *component
}

// NewPlugin -.
func NewPlugin() *Plugin {
	return &Plugin{}
}

// Name -.
func (p *Plugin) Name() string {
	return PluginName
}

// Version -.
func (p *Plugin) Version() string {
	return PluginVersion
}

// Initialize wires repositories, usecases and handlers from ctx.
func (p *Plugin) Initialize(ctx *plugin.Context) error {
	c, err := newComponent(ctx)
	if err != nil {
		return err
	}

	p.component = c

	if ctx.Config.Auth.Disabled {
		ctx.Logger.Warn("redfish authentication is disabled")
	}

	ctx.Logger.Info("redfish plugin initialized", "base_path", ctx.Config.Redfish.BasePath)

	return nil
}

// RegisterRoutes mounts the Redfish tree, /health and /metrics.
func (p *Plugin) RegisterRoutes(ctx *plugin.Context) error {
	if p.component == nil {
		return ErrNotInitialized
	}

	v1.RegisterRoutes(ctx.Router, p.component.handlers, v1.RouteOptions{
		BasePath: ctx.Config.Redfish.BasePath,
		Auth:     p.component.auth,
	})

	ctx.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return nil
}

// Shutdown closes the workflow broker connection.
func (p *Plugin) Shutdown(ctx *plugin.Context) error {
	if p.component == nil || p.component.publisher == nil {
		return nil
	}

	ctx.Logger.Info("closing workflow broker connection")

	return p.component.publisher.Close()
}
