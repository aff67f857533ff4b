// Package usecase defines the collaborators the Redfish usecases depend on
// and the error taxonomy they report through.
package usecase

import (
	"context"

	"github.com/rackhd/redfish-gateway/internal/entity"
)

//go:generate mockgen -source=ports.go -destination=../mocks/mock_ports.go -package=mocks

// Inventory reads nodes and their OBM settings.
type Inventory interface {
	FindNodes(ctx context.Context, filter entity.NodeFilter) ([]entity.Node, error)
	GetNodeByID(ctx context.Context, id string) (*entity.Node, error)
	NeedByIdentifier(ctx context.Context, identifier string) (*entity.Node, error)
}

// Catalogs reads discovery catalogs.
type Catalogs interface {
	FindLatestCatalogOfSource(ctx context.Context, nodeID, source string) (*entity.Catalog, error)
	Find(ctx context.Context, query entity.CatalogQuery) ([]entity.Catalog, error)
}

// Pollers reads pollers and their cached results.
type Pollers interface {
	FindPollers(ctx context.Context, filter entity.PollerFilter) ([]entity.Poller, error)
	RequestPollerCache(ctx context.Context, pollerID string, latestOnly bool) ([]entity.PollerResult, error)
}

// Workflows starts graphs against a node.
type Workflows interface {
	Run(ctx context.Context, nodeID string, graph entity.GraphRequest) (*entity.WorkflowInstance, error)
}

// WsmanLogs reads the Dell iDRAC logs.
type WsmanLogs interface {
	SelLog(ctx context.Context, creds entity.BMCCredentials) ([]entity.WsmanSelEntry, error)
	LcLog(ctx context.Context, creds entity.BMCCredentials) ([]entity.WsmanLcEntry, error)
}

// Racadm runs a RACADM command against a BMC and returns its output.
type Racadm interface {
	RunCommand(ctx context.Context, host, user, password, command string) (string, error)
}

// Lookup resolves DHCP leases.
type Lookup interface {
	MacAddressToIP(ctx context.Context, mac string) (string, error)
}

// SSDP toggles the SSDP advertiser.
type SSDP interface {
	Enabled() bool
	SetEnabled(enabled bool)
}

// HostInterface is a local network interface of the gateway host.
type HostInterface struct {
	Name string
	MAC  string
	IPv4 []HostAddress
}

// HostAddress -.
type HostAddress struct {
	Address string
	Netmask string
}

// Host describes the machine the gateway runs on.
type Host interface {
	Hostname() (string, error)
	FQDN() (string, error)
	Interfaces() ([]HostInterface, error)
}

// Decrypter reverses OBM secret encryption.
type Decrypter interface {
	Decrypt(cipherText string) (string, error)
}

// SchemaValidator checks a request payload against a named schema.
type SchemaValidator interface {
	ValidateSchema(payload interface{}, ref string) error
}
