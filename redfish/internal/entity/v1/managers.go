package redfish

// Manager types.
const (
	ManagerTypeManagementController = "ManagementController"
	ManagerTypeBMC                  = "BMC"
)

// Manager -.
type Manager struct {
	Resource
	ManagerType        string                  `json:"ManagerType"`
	Manufacturer       string                  `json:"Manufacturer,omitempty"`
	Model              string                  `json:"Model,omitempty"`
	SerialNumber       string                  `json:"SerialNumber,omitempty"`
	UUID               string                  `json:"UUID,omitempty"`
	FirmwareVersion    string                  `json:"FirmwareVersion,omitempty"`
	Status             *Status                 `json:"Status,omitempty"`
	NetworkProtocol    *ManagerNetworkProtocol `json:"NetworkProtocol,omitempty"`
	EthernetInterfaces Ref                     `json:"EthernetInterfaces"`
	SerialInterfaces   *Ref                    `json:"SerialInterfaces,omitempty"`
	Links              ManagerLinks            `json:"Links"`
}

// ManagerLinks -.
type ManagerLinks struct {
	ManagerForServers []Ref `json:"ManagerForServers"`
	ManagerForChassis []Ref `json:"ManagerForChassis"`
}

// ManagerNetworkProtocol -.
type ManagerNetworkProtocol struct {
	Resource
	HostName string            `json:"HostName,omitempty"`
	FQDN     string            `json:"FQDN,omitempty"`
	HTTP     *ProtocolSettings `json:"HTTP,omitempty"`
	HTTPS    *ProtocolSettings `json:"HTTPS,omitempty"`
	SSDP     *ProtocolSettings `json:"SSDP,omitempty"`
	Status   *Status           `json:"Status,omitempty"`
}

// ProtocolSettings -.
type ProtocolSettings struct {
	ProtocolEnabled bool `json:"ProtocolEnabled"`
	Port            int  `json:"Port"`
}

// ManagerPatch is the accepted PATCH /Managers/{id} body.
type ManagerPatch struct {
	NetworkProtocol *struct {
		SSDP *struct {
			ProtocolEnabled *bool `json:"ProtocolEnabled"`
		} `json:"SSDP"`
	} `json:"NetworkProtocol"`
}

// SSDPEnabled reports the requested SSDP state, if any.
func (p *ManagerPatch) SSDPEnabled() (bool, bool) {
	if p == nil || p.NetworkProtocol == nil || p.NetworkProtocol.SSDP == nil || p.NetworkProtocol.SSDP.ProtocolEnabled == nil {
		return false, false
	}

	return *p.NetworkProtocol.SSDP.ProtocolEnabled, true
}

// SerialInterface -.
type SerialInterface struct {
	Resource
	InterfaceEnabled bool   `json:"InterfaceEnabled"`
	SignalType       string `json:"SignalType,omitempty"`
	ConnectorType    string `json:"ConnectorType,omitempty"`
}
