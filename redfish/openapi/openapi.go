// Package openapi embeds the OpenAPI document describing the gateway's Redfish surface.
package openapi

import _ "embed"

// Spec is the raw OpenAPI 3 document.
//
//go:embed openapi.yaml
var Spec []byte
