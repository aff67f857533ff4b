// Package redfish provides the Redfish v1 resource representations served by the gateway.
package redfish

// Ref is a navigation link to another resource.
type Ref struct {
	ODataID string `json:"@odata.id"`
}

// NewRef -.
func NewRef(path string) Ref {
	return Ref{ODataID: path}
}

// Refs builds one Ref per id under base.
func Refs(base string, ids []string) []Ref {
	refs := make([]Ref, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, Ref{ODataID: base + "/" + id})
	}

	return refs
}

// Resource carries the OData annotations common to every resource.
type Resource struct {
	ODataContext string `json:"@odata.context,omitempty"`
	ODataID      string `json:"@odata.id"`
	ODataType    string `json:"@odata.type"`
	ID           string `json:"Id,omitempty"`
	Name         string `json:"Name"`
	Description  string `json:"Description,omitempty"`
}

// Collection is a Redfish resource collection.
type Collection struct {
	ODataContext string `json:"@odata.context,omitempty"`
	ODataID      string `json:"@odata.id"`
	ODataType    string `json:"@odata.type"`
	Name         string `json:"Name"`
	Description  string `json:"Description,omitempty"`
	MembersCount int    `json:"Members@odata.count"`
	Members      []Ref  `json:"Members"`
}

// NewCollection builds a collection whose members live under path.
// odataType is the unversioned type, e.g. ComputerSystemCollection.ComputerSystemCollection.
func NewCollection(path, odataType, name string, ids []string) *Collection {
	members := Refs(path, ids)

	return &Collection{
		ODataContext: "/redfish/v1/$metadata#" + odataType,
		ODataID:      path,
		ODataType:    "#" + odataType,
		Name:         name,
		MembersCount: len(members),
		Members:      members,
	}
}

// Status represents the status and health of a resource.
type Status struct {
	State        string `json:"State,omitempty"`
	Health       string `json:"Health,omitempty"`
	HealthRollup string `json:"HealthRollup,omitempty"`
}

// Common Status values.
const (
	StateEnabled  = "Enabled"
	StateAbsent   = "Absent"
	HealthOK      = "OK"
	HealthWarning = "Warning"
)

// TaskRef is the body returned by actions that start a workflow.
type TaskRef struct {
	ODataID string `json:"@odata.id"`
}

// IPv4Address -.
type IPv4Address struct {
	Address       string `json:"Address,omitempty"`
	SubnetMask    string `json:"SubnetMask,omitempty"`
	AddressOrigin string `json:"AddressOrigin,omitempty"`
	Gateway       string `json:"Gateway,omitempty"`
}

// IPv6Address -.
type IPv6Address struct {
	Address      string `json:"Address,omitempty"`
	PrefixLength int    `json:"PrefixLength,omitempty"`
}

// VLAN -.
type VLAN struct {
	VLANEnable bool   `json:"VLANEnable"`
	VLANID     string `json:"VLANId,omitempty"`
}

// EthernetInterface is shared by systems and managers.
type EthernetInterface struct {
	Resource
	PermanentMACAddress string        `json:"PermanentMACAddress,omitempty"`
	MACAddress          string        `json:"MACAddress,omitempty"`
	SpeedMbps           *int          `json:"SpeedMbps,omitempty"`
	AutoNeg             *bool         `json:"AutoNeg,omitempty"`
	FullDuplex          *bool         `json:"FullDuplex,omitempty"`
	MTUSize             *int          `json:"MTUSize,omitempty"`
	LinkStatus          string        `json:"LinkStatus,omitempty"`
	VLAN                *VLAN         `json:"VLAN,omitempty"`
	IPv4Addresses       []IPv4Address `json:"IPv4Addresses,omitempty"`
	IPv6Addresses       []IPv6Address `json:"IPv6Addresses,omitempty"`
	Status              *Status       `json:"Status,omitempty"`
}

// SessionService -.
type SessionService struct {
	Resource
	Status         *Status `json:"Status,omitempty"`
	ServiceEnabled bool    `json:"ServiceEnabled"`
	SessionTimeout int     `json:"SessionTimeout"`
	Sessions       Ref     `json:"Sessions"`
}

// Session -.
type Session struct {
	Resource
	UserName string `json:"UserName"`
}
