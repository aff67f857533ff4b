package managers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rackhd/redfish-gateway/internal/entity"
	"github.com/rackhd/redfish-gateway/pkg/logger"
	redfish "github.com/rackhd/redfish-gateway/redfish/internal/entity/v1"
	"github.com/rackhd/redfish-gateway/redfish/internal/mocks"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/fetcher"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/managers"
)

const (
	basePath = "/redfish/v1"
	nodeID   = "1234abcd1234abcd1234abcd"
	dellID   = "DELLabcd1234abcd1234abcd"
)

type deps struct {
	inventory *mocks.MockInventory
	catalogs  *mocks.MockCatalogs
	ssdp      *mocks.MockSSDP
	host      *mocks.MockHost
}

func setup(t *testing.T) (*managers.UseCase, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := deps{
		inventory: mocks.NewMockInventory(ctrl),
		catalogs:  mocks.NewMockCatalogs(ctrl),
		ssdp:      mocks.NewMockSSDP(ctrl),
		host:      mocks.NewMockHost(ctrl),
	}

	log := logger.New("error")
	f := fetcher.New(d.inventory, d.catalogs, mocks.NewMockPollers(ctrl), nil, log)

	uc := managers.New(d.inventory, f, d.ssdp, d.host, log, managers.Options{
		ReservedID: "RackHD",
		BasePath:   basePath,
		Northbound: []managers.Endpoint{{Port: 8080}, {Port: 8443, HTTPS: true}, {Port: 9090}},
	})

	return uc, d
}

func ipmiNode() *entity.Node {
	return &entity.Node{
		ID:          nodeID,
		Type:        entity.NodeTypeCompute,
		Identifiers: []string{"2c:60:0c:83:f5:d1"},
		Relations:   []entity.Relation{{RelationType: entity.RelationEnclosedBy, Targets: []string{"4567efgh4567efgh4567efgh"}}},
		Obms: []entity.Obm{{
			Service: entity.ObmServiceIPMI,
			Config:  map[string]interface{}{"host": "1.2.3.4", "user": "myuser", "password": "mypass"},
		}},
	}
}

func dellNode() *entity.Node {
	n := ipmiNode()
	n.ID = dellID
	n.Identifiers = []string{"ABCDEFG"}

	return n
}

func bmcCatalog() map[string]interface{} {
	return map[string]interface{}{
		"IP Address Source":  "DHCP Address",
		"IP Address":         "127.0.0.1",
		"Subnet Mask":        "255.255.252.0",
		"MAC Address":        "00:01:02:03:04:05",
		"Default Gateway IP": "0.0.0.0",
		"802_1q VLAN ID":     "Disabled",
		"Firmware Revision":  "9.08",
		"Manufacturer Name":  "Unknown (0x1291)",
		"Product Name":       "Unknown (0xF02) ",
	}
}

func dmiCatalog() map[string]interface{} {
	return map[string]interface{}{
		"System Information": map[string]interface{}{
			"Manufacturer":  "Dell Inc.",
			"Product Name":  "PowerEdge R630",
			"Serial Number": "ABCDEFG",
		},
		"Port Connector Information": []interface{}{
			map[string]interface{}{
				"External Reference Designator": "Not Specified",
				"External Connector Type":       "None",
				"Port Type":                     "Other",
			},
			map[string]interface{}{
				"External Reference Designator": "J21-COMA",
				"External Connector Type":       "DB-9 male",
				"Port Type":                     "Serial Port 16550A Compatible",
			},
			map[string]interface{}{
				"External Reference Designator": "J6-BMC MANAGEMENT PORT",
				"External Connector Type":       "RJ-45",
				"Port Type":                     "Network Port",
			},
		},
	}
}

func (d deps) catalog(id string, source fetcher.Source, data map[string]interface{}) {
	d.catalogs.EXPECT().
		FindLatestCatalogOfSource(gomock.Any(), id, string(source)).
		Return(&entity.Catalog{NodeID: id, Source: string(source), Data: data}, nil).
		AnyTimes()
}

func (d deps) computeNodes(nodes ...entity.Node) {
	d.inventory.EXPECT().
		FindNodes(gomock.Any(), entity.NodeFilter{Type: entity.NodeTypeCompute}).
		Return(nodes, nil)
}

func TestList(t *testing.T) {
	t.Parallel()

	uc, d := setup(t)

	bare := entity.Node{ID: "no-obm", Type: entity.NodeTypeCompute}
	d.computeNodes(*ipmiNode(), bare)

	got, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []redfish.Ref{
		{ODataID: "/redfish/v1/Managers/" + nodeID},
		{ODataID: "/redfish/v1/Managers/RackHD"},
	}, got.Members)
}

func TestGet_Reserved(t *testing.T) {
	t.Parallel()

	uc, d := setup(t)

	other := *ipmiNode()
	other.ID = "other"

	d.computeNodes(*ipmiNode(), other)
	d.ssdp.EXPECT().Enabled().Return(true)
	d.host.EXPECT().Hostname().Return("rackhd", nil)
	d.host.EXPECT().FQDN().Return("", errors.New("no reverse lookup"))

	m, err := uc.Get(context.Background(), "RackHD")
	require.NoError(t, err)

	assert.Equal(t, redfish.ManagerTypeManagementController, m.ManagerType)
	assert.Nil(t, m.SerialInterfaces)
	assert.Len(t, m.Links.ManagerForServers, 2)
	assert.Equal(t, []redfish.Ref{{ODataID: "/redfish/v1/Chassis/4567efgh4567efgh4567efgh"}}, m.Links.ManagerForChassis)

	np := m.NetworkProtocol
	require.NotNil(t, np)
	assert.Equal(t, "rackhd", np.HostName)
	assert.Equal(t, "rackhd", np.FQDN)
	assert.Equal(t, &redfish.ProtocolSettings{ProtocolEnabled: true, Port: 8080}, np.HTTP)
	assert.Equal(t, &redfish.ProtocolSettings{ProtocolEnabled: true, Port: 8443}, np.HTTPS)
	assert.Equal(t, &redfish.ProtocolSettings{ProtocolEnabled: true, Port: 1900}, np.SSDP)
}

func TestGet_BMC(t *testing.T) {
	t.Parallel()

	uc, d := setup(t)

	d.inventory.EXPECT().GetNodeByID(gomock.Any(), nodeID).Return(ipmiNode(), nil)
	d.catalog(nodeID, fetcher.SourceIpmiMcInfo, bmcCatalog())

	m, err := uc.Get(context.Background(), nodeID)
	require.NoError(t, err)

	assert.Equal(t, redfish.ManagerTypeBMC, m.ManagerType)
	assert.Equal(t, "9.08", m.FirmwareVersion)
	assert.Equal(t, "Unknown (0x1291)", m.Manufacturer)
	require.NotNil(t, m.SerialInterfaces)
	assert.Equal(t, "/redfish/v1/Managers/"+nodeID+"/SerialInterfaces", m.SerialInterfaces.ODataID)
	assert.Equal(t, []redfish.Ref{{ODataID: "/redfish/v1/Systems/" + nodeID}}, m.Links.ManagerForServers)
}

func TestGet_Dell(t *testing.T) {
	t.Parallel()

	uc, d := setup(t)

	d.inventory.EXPECT().GetNodeByID(gomock.Any(), dellID).Return(dellNode(), nil)
	d.catalog(dellID, fetcher.SourceDmi, dmiCatalog())

	m, err := uc.Get(context.Background(), dellID)
	require.NoError(t, err)

	assert.Equal(t, "Dell Inc.", m.Manufacturer)
	assert.Equal(t, "PowerEdge R630", m.Model)
	assert.Empty(t, m.SerialNumber)
	assert.Nil(t, m.SerialInterfaces)
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	uc, d := setup(t)

	d.inventory.EXPECT().GetNodeByID(gomock.Any(), "invalid").Return(nil, entity.ErrNodeNotFound)

	_, err := uc.Get(context.Background(), "invalid")
	require.Error(t, err)
	assert.Equal(t, usecase.KindNotFound, usecase.KindOf(err))
}

func TestNetworkProtocol(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node *entity.Node
		kind usecase.Kind
	}{
		{name: "bmc renders an empty protocol", node: ipmiNode()},
		{name: "node without obm", node: &entity.Node{ID: nodeID}, kind: usecase.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc, d := setup(t)
			d.inventory.EXPECT().NeedByIdentifier(gomock.Any(), nodeID).Return(tt.node, nil)

			np, err := uc.NetworkProtocol(context.Background(), nodeID)
			if tt.kind != usecase.KindInternal {
				require.Error(t, err)
				assert.Equal(t, tt.kind, usecase.KindOf(err))
				assert.Contains(t, usecase.MessageOf(err), "invalid resource")

				return
			}

			require.NoError(t, err)
			assert.Nil(t, np.HTTP)
			assert.Nil(t, np.SSDP)
			assert.Equal(t, "/redfish/v1/Managers/"+nodeID+"/NetworkProtocol", np.ODataID)
		})
	}
}

func TestPatch(t *testing.T) {
	t.Parallel()

	patch := &redfish.ManagerPatch{}
	require.NoError(t, json.Unmarshal([]byte(`{"NetworkProtocol":{"SSDP":{"ProtocolEnabled":false}}}`), patch))

	t.Run("toggles ssdp", func(t *testing.T) {
		t.Parallel()

		uc, d := setup(t)
		d.computeNodes(*ipmiNode())
		d.ssdp.EXPECT().SetEnabled(false)

		require.NoError(t, uc.Patch(context.Background(), "RackHD", patch))
	})

	t.Run("no compute nodes", func(t *testing.T) {
		t.Parallel()

		uc, d := setup(t)
		d.computeNodes()

		err := uc.Patch(context.Background(), "RackHD", patch)
		assert.Equal(t, usecase.KindNotFound, usecase.KindOf(err))
		assert.Equal(t, "invalid resource", usecase.MessageOf(err))
	})

	t.Run("bmc is read only", func(t *testing.T) {
		t.Parallel()

		uc, _ := setup(t)

		err := uc.Patch(context.Background(), nodeID, patch)
		assert.Equal(t, usecase.KindMethodNotAllowed, usecase.KindOf(err))
	})

	t.Run("empty body leaves ssdp alone", func(t *testing.T) {
		t.Parallel()

		uc, d := setup(t)
		d.computeNodes(*ipmiNode())

		require.NoError(t, uc.Patch(context.Background(), "RackHD", &redfish.ManagerPatch{}))
	})
}

func TestEthernetInterfaces_Reserved(t *testing.T) {
	t.Parallel()

	uc, d := setup(t)

	ifaces := []usecase.HostInterface{
		{Name: "eth0", MAC: "52:54:00:12:34:56", IPv4: []usecase.HostAddress{{Address: "172.31.128.1", Netmask: "255.255.252.0"}}},
		{Name: "eth1"},
	}
	d.host.EXPECT().Interfaces().Return(ifaces, nil).Times(3)

	got, err := uc.EthernetInterfaces(context.Background(), "RackHD")
	require.NoError(t, err)
	assert.Equal(t, []redfish.Ref{{ODataID: "/redfish/v1/Managers/RackHD/EthernetInterfaces/eth0"}}, got.Members)

	eth, err := uc.EthernetInterface(context.Background(), "RackHD", "eth0")
	require.NoError(t, err)
	assert.Equal(t, "52:54:00:12:34:56", eth.MACAddress)
	assert.Equal(t, []redfish.IPv4Address{{Address: "172.31.128.1", SubnetMask: "255.255.252.0"}}, eth.IPv4Addresses)

	_, err = uc.EthernetInterface(context.Background(), "RackHD", "eth9")
	assert.Equal(t, usecase.KindNotFound, usecase.KindOf(err))
}

func TestEthernetInterface_BMC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		change map[string]interface{}
		origin string
		vlan   *redfish.VLAN
	}{
		{name: "dhcp without vlan", origin: "DHCP"},
		{
			name:   "static with vlan",
			change: map[string]interface{}{"IP Address Source": "Static Address", "802_1q VLAN ID": "100"},
			origin: "Static",
			vlan:   &redfish.VLAN{VLANEnable: true, VLANID: "100"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc, d := setup(t)

			data := bmcCatalog()
			for k, v := range tt.change {
				data[k] = v
			}

			d.inventory.EXPECT().NeedByIdentifier(gomock.Any(), nodeID).Return(ipmiNode(), nil)
			d.catalog(nodeID, fetcher.SourceBmc, data)

			eth, err := uc.EthernetInterface(context.Background(), nodeID, "0")
			require.NoError(t, err)
			assert.Equal(t, "00:01:02:03:04:05", eth.PermanentMACAddress)
			assert.Equal(t, tt.vlan, eth.VLAN)
			require.Len(t, eth.IPv4Addresses, 1)
			assert.Equal(t, tt.origin, eth.IPv4Addresses[0].AddressOrigin)
			assert.Equal(t, "0.0.0.0", eth.IPv4Addresses[0].Gateway)
		})
	}
}

func TestSerialInterfaces(t *testing.T) {
	t.Parallel()

	uc, d := setup(t)

	d.inventory.EXPECT().GetNodeByID(gomock.Any(), nodeID).Return(ipmiNode(), nil).Times(3)
	d.catalog(nodeID, fetcher.SourceDmi, dmiCatalog())

	list, err := uc.SerialInterfaces(context.Background(), nodeID)
	require.NoError(t, err)
	assert.Equal(t, []redfish.Ref{{ODataID: "/redfish/v1/Managers/" + nodeID + "/SerialInterfaces/J21-COMA"}}, list.Members)

	si, err := uc.SerialInterface(context.Background(), nodeID, "J21-COMA")
	require.NoError(t, err)
	assert.Equal(t, "DB9 Male.", si.ConnectorType)
	assert.Equal(t, "Serial Port 16550A Compatible", si.Description)
	assert.True(t, si.InterfaceEnabled)

	_, err = uc.SerialInterface(context.Background(), nodeID, "J6-BMCMANAGEMENTPORT")
	assert.Equal(t, usecase.KindNotFound, usecase.KindOf(err))
}

func TestSerialInterfaces_Unavailable(t *testing.T) {
	t.Parallel()

	uc, d := setup(t)

	_, err := uc.SerialInterfaces(context.Background(), "RackHD")
	assert.Equal(t, usecase.KindNotFound, usecase.KindOf(err))

	d.inventory.EXPECT().GetNodeByID(gomock.Any(), dellID).Return(dellNode(), nil)

	_, err = uc.SerialInterfaces(context.Background(), dellID)
	assert.Equal(t, usecase.KindNotFound, usecase.KindOf(err))
}
