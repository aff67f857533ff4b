package managers

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/mitchellh/mapstructure"

	redfish "github.com/rackhd/redfish-gateway/redfish/internal/entity/v1"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/fetcher"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/vendor"
)

// bmcInterface is the single BMC network port behind an OBM setting.
const bmcInterface = "0"

var serialPort = regexp.MustCompile(`(?i)Serial`)

// bmcLan is the bmc catalog, as reported by ipmitool lan print.
type bmcLan struct {
	IPAddressSource  string `mapstructure:"IP Address Source"`
	IPAddress        string `mapstructure:"IP Address"`
	SubnetMask       string `mapstructure:"Subnet Mask"`
	MACAddress       string `mapstructure:"MAC Address"`
	DefaultGatewayIP string `mapstructure:"Default Gateway IP"`
	VLANID           string `mapstructure:"802_1q VLAN ID"`
}

// portConnector is one dmi Port Connector Information record.
type portConnector struct {
	ExternalDesignator string `mapstructure:"External Reference Designator"`
	ExternalConnector  string `mapstructure:"External Connector Type"`
	PortType           string `mapstructure:"Port Type"`
}

func (p *portConnector) id() string {
	return strings.ReplaceAll(p.ExternalDesignator, " ", "")
}

// EthernetInterfaces lists the gateway's own interfaces for the reserved id,
// otherwise the BMC port.
func (uc *UseCase) EthernetInterfaces(ctx context.Context, identifier string) (*redfish.Collection, error) {
	if uc.reserved(identifier) {
		ifaces, err := uc.host.Interfaces()
		if err != nil {
			return nil, fmt.Errorf("managers - host interfaces: %w", err)
		}

		names := make([]string, 0, len(ifaces))

		for _, iface := range ifaces {
			if len(iface.IPv4) > 0 {
				names = append(names, iface.Name)
			}
		}

		return redfish.NewCollection(uc.managerPath(identifier)+"/EthernetInterfaces", odataEthernets, "Manager Ethernet Interface Collection", names), nil
	}

	node, err := uc.managedNode(ctx, identifier)
	if err != nil {
		return nil, err
	}

	return redfish.NewCollection(uc.managerPath(node.ID)+"/EthernetInterfaces", odataEthernets, "Manager Ethernet Interface Collection", []string{bmcInterface}), nil
}

// EthernetInterface -.
func (uc *UseCase) EthernetInterface(ctx context.Context, identifier, index string) (*redfish.EthernetInterface, error) {
	if uc.reserved(identifier) {
		return uc.localInterface(identifier, index)
	}

	node, err := uc.managedNode(ctx, identifier)
	if err != nil {
		return nil, err
	}

	if index != bmcInterface {
		return nil, usecase.NotFound("ethernet interface %s was not found", index)
	}

	cat, err := uc.fetcher.Catalog(ctx, node.ID, fetcher.SourceBmc)
	if err != nil {
		return nil, err
	}

	var lan bmcLan
	if err := mapstructure.WeakDecode(cat.Object(), &lan); err != nil {
		return nil, fmt.Errorf("managers - decode bmc catalog: %w", err)
	}

	origin := "Static"
	if strings.Contains(lan.IPAddressSource, "DHCP") {
		origin = "DHCP"
	}

	eth := &redfish.EthernetInterface{
		Resource:            uc.resource(odataEthernet, uc.managerPath(node.ID)+"/EthernetInterfaces/"+index, index, "Manager Ethernet Interface"),
		PermanentMACAddress: lan.MACAddress,
		MACAddress:          lan.MACAddress,
		IPv4Addresses: []redfish.IPv4Address{{
			Address:       lan.IPAddress,
			SubnetMask:    lan.SubnetMask,
			Gateway:       lan.DefaultGatewayIP,
			AddressOrigin: origin,
		}},
		Status: &redfish.Status{State: redfish.StateEnabled, Health: redfish.HealthOK},
	}

	if lan.VLANID != "" && lan.VLANID != "Disabled" {
		eth.VLAN = &redfish.VLAN{VLANEnable: true, VLANID: lan.VLANID}
	}

	return eth, nil
}

func (uc *UseCase) localInterface(identifier, index string) (*redfish.EthernetInterface, error) {
	ifaces, err := uc.host.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("managers - host interfaces: %w", err)
	}

	for _, iface := range ifaces {
		if iface.Name != index {
			continue
		}

		eth := &redfish.EthernetInterface{
			Resource:      uc.resource(odataEthernet, uc.managerPath(identifier)+"/EthernetInterfaces/"+index, index, "Manager Ethernet Interface"),
			IPv4Addresses: make([]redfish.IPv4Address, 0, len(iface.IPv4)),
			Status:        &redfish.Status{State: redfish.StateEnabled, Health: redfish.HealthOK},
		}

		for _, addr := range iface.IPv4 {
			eth.IPv4Addresses = append(eth.IPv4Addresses, redfish.IPv4Address{Address: addr.Address, SubnetMask: addr.Netmask})
		}

		if iface.MAC != "" {
			eth.PermanentMACAddress = iface.MAC
			eth.MACAddress = iface.MAC
		}

		return eth, nil
	}

	return nil, usecase.InvalidResource("")
}

// serialPorts returns the serial connectors of a non-Dell node.
func (uc *UseCase) serialPorts(ctx context.Context, identifier string) (string, []portConnector, error) {
	if uc.reserved(identifier) {
		return "", nil, usecase.NotFound("manager %s has no serial interfaces", identifier)
	}

	node, err := uc.inventory.GetNodeByID(ctx, identifier)
	if err != nil {
		return "", nil, err
	}

	if vendor.HasServiceTag(node) {
		return "", nil, usecase.NotFound("manager %s has no serial interfaces", identifier)
	}

	cat, err := uc.fetcher.Catalog(ctx, node.ID, fetcher.SourceDmi)
	if err != nil {
		return "", nil, err
	}

	var ports []portConnector
	if err := mapstructure.WeakDecode(cat.Object()["Port Connector Information"], &ports); err != nil {
		return "", nil, fmt.Errorf("managers - decode port connectors: %w", err)
	}

	serial := ports[:0]

	for _, p := range ports {
		if serialPort.MatchString(p.PortType) {
			serial = append(serial, p)
		}
	}

	return node.ID, serial, nil
}

// SerialInterfaces -.
func (uc *UseCase) SerialInterfaces(ctx context.Context, identifier string) (*redfish.Collection, error) {
	nodeID, ports, err := uc.serialPorts(ctx, identifier)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(ports))
	for i := range ports {
		ids = append(ids, ports[i].id())
	}

	return redfish.NewCollection(uc.managerPath(nodeID)+"/SerialInterfaces", odataSerials, "Manager Serial Interface Collection", ids), nil
}

// SerialInterface -.
func (uc *UseCase) SerialInterface(ctx context.Context, identifier, index string) (*redfish.SerialInterface, error) {
	nodeID, ports, err := uc.serialPorts(ctx, identifier)
	if err != nil {
		return nil, err
	}

	for i := range ports {
		p := &ports[i]
		if p.id() != index {
			continue
		}

		si := &redfish.SerialInterface{
			Resource:         uc.resource(odataSerial, uc.managerPath(nodeID)+"/SerialInterfaces/"+index, index, "Managed Serial Interface"),
			InterfaceEnabled: true,
		}
		si.Description = p.PortType

		if p.ExternalConnector == "DB-9 male" {
			si.ConnectorType = "DB9 Male."
		}

		return si, nil
	}

	return nil, usecase.NotFound("serial interface %s was not found", index)
}
