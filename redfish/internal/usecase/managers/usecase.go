// Package managers implements the Manager resources: the gateway itself,
// addressed by a reserved id, and the BMC of every node with OBM settings.
package managers

import (
	"context"
	"fmt"

	"github.com/rackhd/redfish-gateway/internal/entity"
	"github.com/rackhd/redfish-gateway/pkg/logger"
	redfish "github.com/rackhd/redfish-gateway/redfish/internal/entity/v1"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/fetcher"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/vendor"
)

const ssdpPort = 1900

const (
	odataManagers        = "ManagerCollection.ManagerCollection"
	odataManager         = "Manager.v1_3_0.Manager"
	odataNetworkProtocol = "ManagerNetworkProtocol.v1_1_0.ManagerNetworkProtocol"
	odataEthernets       = "EthernetInterfaceCollection.EthernetInterfaceCollection"
	odataEthernet        = "EthernetInterface.v1_2_0.EthernetInterface"
	odataSerials         = "SerialInterfaceCollection.SerialInterfaceCollection"
	odataSerial          = "SerialInterface.v1_0_3.SerialInterface"
)

// Endpoint is a northbound listener advertised in the network protocol.
type Endpoint struct {
	Port  int
	HTTPS bool
}

// Options -.
type Options struct {
	ReservedID string
	BasePath   string
	Northbound []Endpoint
}

// UseCase -.
type UseCase struct {
	inventory usecase.Inventory
	fetcher   *fetcher.Fetcher
	ssdp      usecase.SSDP
	host      usecase.Host
	log       logger.Interface
	opts      Options
}

// New -.
func New(inventory usecase.Inventory, f *fetcher.Fetcher, ssdp usecase.SSDP, host usecase.Host, log logger.Interface, opts Options) *UseCase {
	return &UseCase{
		inventory: inventory,
		fetcher:   f,
		ssdp:      ssdp,
		host:      host,
		log:       log,
		opts:      opts,
	}
}

func (uc *UseCase) reserved(id string) bool {
	return id == uc.opts.ReservedID
}

func (uc *UseCase) managerPath(id string) string {
	return uc.opts.BasePath + "/Managers/" + id
}

func (uc *UseCase) resource(odataType, path, id, name string) redfish.Resource {
	return redfish.Resource{
		ODataContext: uc.opts.BasePath + "/$metadata#" + odataType,
		ODataID:      path,
		ODataType:    "#" + odataType,
		ID:           id,
		Name:         name,
	}
}

// managedNode loads identifier and asserts it carries OBM settings.
func (uc *UseCase) managedNode(ctx context.Context, identifier string) (*entity.Node, error) {
	node, err := uc.inventory.NeedByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}

	if len(node.Obms) == 0 {
		return nil, usecase.InvalidResource("invalid obmSetting")
	}

	return node, nil
}

func (uc *UseCase) computeNodes(ctx context.Context) ([]entity.Node, error) {
	nodes, err := uc.inventory.FindNodes(ctx, entity.NodeFilter{Type: entity.NodeTypeCompute})
	if err != nil {
		return nil, fmt.Errorf("managers - find compute nodes: %w", err)
	}

	return nodes, nil
}

// List returns the BMC of every compute node with OBM settings, then the gateway.
func (uc *UseCase) List(ctx context.Context) (*redfish.Collection, error) {
	nodes, err := uc.computeNodes(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(nodes)+1)

	for i := range nodes {
		if len(nodes[i].Obms) > 0 {
			ids = append(ids, nodes[i].ID)
		}
	}

	ids = append(ids, uc.opts.ReservedID)

	return redfish.NewCollection(uc.opts.BasePath+"/Managers", odataManagers, "Manager Collection", ids), nil
}

// Get -.
func (uc *UseCase) Get(ctx context.Context, identifier string) (*redfish.Manager, error) {
	if uc.reserved(identifier) {
		return uc.gateway(ctx)
	}

	node, err := uc.inventory.GetNodeByID(ctx, identifier)
	if err != nil {
		return nil, err
	}

	path := uc.managerPath(node.ID)
	m := &redfish.Manager{
		Resource:           uc.resource(odataManager, path, node.ID, "Manager"),
		ManagerType:        redfish.ManagerTypeBMC,
		Status:             &redfish.Status{State: redfish.StateEnabled, Health: redfish.HealthOK},
		EthernetInterfaces: redfish.NewRef(path + "/EthernetInterfaces"),
		Links: redfish.ManagerLinks{
			ManagerForServers: redfish.Refs(uc.opts.BasePath+"/Systems", []string{node.ID}),
			ManagerForChassis: redfish.Refs(uc.opts.BasePath+"/Chassis", node.EnclosedBy()),
		},
	}

	dell := vendor.HasServiceTag(node)

	source := fetcher.SourceIpmiMcInfo
	if dell {
		source = fetcher.SourceDmi
	}

	cat, err := uc.fetcher.Catalog(ctx, node.ID, source)
	if err != nil {
		return nil, err
	}

	info := cat.Object()
	if dell {
		info, _ = info["System Information"].(map[string]interface{})
	}

	m.Manufacturer = firstString(info, "Manufacturer Name", "Manufacturer")
	m.Model = firstString(info, "Product Name")
	m.FirmwareVersion = firstString(info, "Firmware Revision")
	m.UUID = firstString(info, "UUID")

	if !dell {
		m.SerialNumber = firstString(info, "Serial Number")
		ref := redfish.NewRef(path + "/SerialInterfaces")
		m.SerialInterfaces = &ref
	}

	return m, nil
}

// gateway renders the reserved manager that manages every compute node.
func (uc *UseCase) gateway(ctx context.Context) (*redfish.Manager, error) {
	nodes, err := uc.computeNodes(ctx)
	if err != nil {
		return nil, err
	}

	systems := make([]string, 0, len(nodes))
	seen := make(map[string]struct{})

	var chassis []string

	for i := range nodes {
		systems = append(systems, nodes[i].ID)

		for _, c := range nodes[i].EnclosedBy() {
			if _, ok := seen[c]; !ok {
				seen[c] = struct{}{}
				chassis = append(chassis, c)
			}
		}
	}

	np, err := uc.networkProtocol()
	if err != nil {
		return nil, err
	}

	id := uc.opts.ReservedID
	path := uc.managerPath(id)

	return &redfish.Manager{
		Resource:           uc.resource(odataManager, path, id, "Manager"),
		ManagerType:        redfish.ManagerTypeManagementController,
		Status:             &redfish.Status{State: redfish.StateEnabled, Health: redfish.HealthOK},
		NetworkProtocol:    np,
		EthernetInterfaces: redfish.NewRef(path + "/EthernetInterfaces"),
		Links: redfish.ManagerLinks{
			ManagerForServers: redfish.Refs(uc.opts.BasePath+"/Systems", systems),
			ManagerForChassis: redfish.Refs(uc.opts.BasePath+"/Chassis", chassis),
		},
	}, nil
}

func (uc *UseCase) networkProtocol() (*redfish.ManagerNetworkProtocol, error) {
	id := uc.opts.ReservedID

	np := &redfish.ManagerNetworkProtocol{
		Resource: uc.resource(odataNetworkProtocol, uc.managerPath(id)+"/NetworkProtocol", "NetworkProtocol", "Manager Network Protocol"),
		SSDP:     &redfish.ProtocolSettings{ProtocolEnabled: uc.ssdp.Enabled(), Port: ssdpPort},
		Status:   &redfish.Status{State: redfish.StateEnabled, Health: redfish.HealthOK},
	}

	for _, ep := range uc.opts.Northbound {
		switch {
		case ep.HTTPS && np.HTTPS == nil:
			np.HTTPS = &redfish.ProtocolSettings{ProtocolEnabled: true, Port: ep.Port}
		case !ep.HTTPS && np.HTTP == nil:
			np.HTTP = &redfish.ProtocolSettings{ProtocolEnabled: true, Port: ep.Port}
		}
	}

	hostname, err := uc.host.Hostname()
	if err != nil {
		return nil, fmt.Errorf("managers - hostname: %w", err)
	}

	np.HostName = hostname

	fqdn, err := uc.host.FQDN()
	if err != nil {
		uc.log.Debug("fqdn lookup failed, using hostname", "error", err)

		fqdn = hostname
	}

	np.FQDN = fqdn

	return np, nil
}

// NetworkProtocol -.
func (uc *UseCase) NetworkProtocol(ctx context.Context, identifier string) (*redfish.ManagerNetworkProtocol, error) {
	if uc.reserved(identifier) {
		return uc.networkProtocol()
	}

	node, err := uc.managedNode(ctx, identifier)
	if err != nil {
		return nil, err
	}

	return &redfish.ManagerNetworkProtocol{
		Resource: uc.resource(odataNetworkProtocol, uc.managerPath(node.ID)+"/NetworkProtocol", "NetworkProtocol", "Manager Network Protocol"),
	}, nil
}

// Patch toggles the SSDP advertiser of the gateway.
func (uc *UseCase) Patch(ctx context.Context, identifier string, patch *redfish.ManagerPatch) error {
	if !uc.reserved(identifier) {
		return usecase.MethodNotAllowed("method not allowed")
	}

	nodes, err := uc.computeNodes(ctx)
	if err != nil {
		return err
	}

	if len(nodes) == 0 {
		return usecase.InvalidResource("")
	}

	if enabled, ok := patch.SSDPEnabled(); ok {
		uc.ssdp.SetEnabled(enabled)
		uc.log.Info("ssdp advertisement updated", "enabled", enabled)
	}

	return nil
}

func firstString(m map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}

	return ""
}
