// Package redfish exposes the Redfish plugin to the application.
package redfish

import (
	"github.com/rackhd/redfish-gateway/pkg/plugin"
	redfishplugin "github.com/rackhd/redfish-gateway/redfish"
)

// NewPlugin returns the Redfish plugin as a plugin.Plugin.
func NewPlugin() plugin.Plugin {
	return redfishplugin.NewPlugin()
}
