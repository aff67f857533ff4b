package systems_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rackhd/redfish-gateway/internal/entity"
	"github.com/rackhd/redfish-gateway/pkg/logger"
	"github.com/rackhd/redfish-gateway/redfish/internal/mocks"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/fetcher"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/sel"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/systems"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/vendor"
)

const (
	basePath = "/redfish/v1"
	nodeID   = "5a5f6f5a1d8d2e0f0c6b1a11"
)

type deps struct {
	inventory *mocks.MockInventory
	catalogs  *mocks.MockCatalogs
	pollers   *mocks.MockPollers
	workflows *mocks.MockWorkflows
	validator *mocks.MockSchemaValidator
}

func setup(t *testing.T) (*systems.UseCase, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := deps{
		inventory: mocks.NewMockInventory(ctrl),
		catalogs:  mocks.NewMockCatalogs(ctrl),
		pollers:   mocks.NewMockPollers(ctrl),
		workflows: mocks.NewMockWorkflows(ctrl),
		validator: mocks.NewMockSchemaValidator(ctrl),
	}

	log := logger.New("error")
	f := fetcher.New(d.inventory, d.catalogs, d.pollers, nil, log)

	registry := vendor.NewRegistry(vendor.Deps{
		Fetcher:      f,
		Translator:   sel.New(f, basePath),
		Log:          log,
		BasePath:     basePath,
		ManagerID:    "RackHD",
		ShareName:    "/nfs",
		ShareAddress: "172.31.128.1",
		NFSDirectory: t.TempDir(),
	})

	return systems.New(d.inventory, registry, d.workflows, d.validator, log, basePath), d
}

func genericNode() *entity.Node {
	return &entity.Node{ID: nodeID, Name: "compute", Type: entity.NodeTypeCompute}
}

func dellNode() *entity.Node {
	return &entity.Node{ID: nodeID, Name: "r630", Type: entity.NodeTypeCompute, Identifiers: []string{"ABCD123"}}
}

func (d deps) need(node *entity.Node) {
	d.inventory.EXPECT().NeedByIdentifier(gomock.Any(), nodeID).Return(node, nil).AnyTimes()
}

func (d deps) started(graph, instance string) {
	d.workflows.EXPECT().
		Run(gomock.Any(), nodeID, gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, req entity.GraphRequest) (*entity.WorkflowInstance, error) {
			if req.Name != graph {
				return nil, errors.New("unexpected graph " + req.Name)
			}

			return &entity.WorkflowInstance{InstanceID: instance, NodeID: id, Name: req.Name, Options: req.Options, CreatedAt: time.Now()}, nil
		})
}

func TestList(t *testing.T) {
	t.Parallel()

	uc, d := setup(t)

	d.inventory.EXPECT().
		FindNodes(gomock.Any(), entity.NodeFilter{Type: entity.NodeTypeCompute}).
		Return([]entity.Node{{ID: "a"}, {ID: "b"}}, nil)

	got, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, got.MembersCount)
	assert.Equal(t, "/redfish/v1/Systems/b", got.Members[1].ODataID)
}

func TestGet_NodeNotFound(t *testing.T) {
	t.Parallel()

	uc, d := setup(t)

	d.inventory.EXPECT().
		NeedByIdentifier(gomock.Any(), "missing").
		Return(nil, entity.ErrNodeNotFound)

	_, err := uc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, usecase.KindNotFound, usecase.KindOf(err))
}

func TestReset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		resetType string
		graph     string
		kind      usecase.Kind
	}{
		{name: "on", resetType: "On", graph: entity.GraphPowerOn},
		{name: "force on", resetType: "ForceOn", graph: entity.GraphPowerOn},
		{name: "force off", resetType: "ForceOff", graph: entity.GraphPowerOff},
		{name: "graceful restart", resetType: "GracefulRestart", graph: entity.GraphResetSoft},
		{name: "push power button", resetType: "PushPowerButton", graph: entity.GraphResetSoft},
		{name: "force restart", resetType: "ForceRestart", graph: entity.GraphReboot},
		{name: "unknown", resetType: "Nmi", kind: usecase.KindBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc, d := setup(t)
			req := systems.ResetRequest{ResetType: tt.resetType}

			d.need(genericNode())
			d.validator.EXPECT().ValidateSchema(req, systems.SchemaResetAction).Return(nil)

			if tt.graph == "" {
				_, err := uc.Reset(context.Background(), nodeID, req)
				require.Error(t, err)
				assert.Equal(t, tt.kind, usecase.KindOf(err))

				return
			}

			d.started(tt.graph, "wf-1")

			task, err := uc.Reset(context.Background(), nodeID, req)
			require.NoError(t, err)
			assert.Equal(t, "/redfish/v1/TaskService/Tasks/wf-1", task.ODataID)
		})
	}
}

func TestReset_InvalidPayload(t *testing.T) {
	t.Parallel()

	uc, d := setup(t)
	d.need(genericNode())

	d.validator.EXPECT().
		ValidateSchema(gomock.Any(), systems.SchemaResetAction).
		Return(errors.New("reset_type is required"))

	_, err := uc.Reset(context.Background(), nodeID, systems.ResetRequest{})
	require.Error(t, err)
	assert.Equal(t, usecase.KindBadRequest, usecase.KindOf(err))
	assert.Contains(t, usecase.MessageOf(err), "reset_type")
}

func TestReset_UnknownNodeBeforeValidation(t *testing.T) {
	t.Parallel()

	uc, d := setup(t)

	d.inventory.EXPECT().
		NeedByIdentifier(gomock.Any(), "nosuch").
		Return(nil, fmt.Errorf("%w: %s", entity.ErrNodeNotFound, "nosuch"))

	_, err := uc.Reset(context.Background(), "nosuch", systems.ResetRequest{})
	require.Error(t, err)
	assert.Equal(t, usecase.KindNotFound, usecase.KindOf(err))
	assert.Equal(t, "node not found: nosuch", usecase.MessageOf(err))
}

func TestClassifyFailure_HidesWrapping(t *testing.T) {
	t.Parallel()

	uc, d := setup(t)

	d.inventory.EXPECT().
		NeedByIdentifier(gomock.Any(), "nosuch").
		Return(nil, fmt.Errorf("%w: %s", entity.ErrNodeNotFound, "nosuch"))

	_, err := uc.Processors(context.Background(), "nosuch")
	require.Error(t, err)
	assert.Equal(t, usecase.KindNotFound, usecase.KindOf(err))
	assert.Equal(t, "node not found: nosuch", usecase.MessageOf(err))
}

func TestResetActionInfo(t *testing.T) {
	t.Parallel()

	uc, d := setup(t)
	d.need(genericNode())

	info, err := uc.ResetActionInfo(context.Background(), nodeID)
	require.NoError(t, err)
	require.Len(t, info.Parameters, 1)
	assert.Equal(t, "ResetType", info.Parameters[0].Name)
	assert.Equal(t, vendor.ResetTypes(), info.Parameters[0].AllowableValues)
}

func TestBootImage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		osName string
		graph  string
		os     string
		kvm    bool
	}{
		{name: "centos", osName: "CentOS", graph: entity.GraphInstallCentOS, os: "CentOS"},
		{name: "centos kvm", osName: "CentOS+KVM", graph: entity.GraphInstallCentOS, os: "CentOS", kvm: true},
		{name: "esxi", osName: "ESXi", graph: entity.GraphInstallESXi, os: "ESXi"},
		{name: "rhel kvm", osName: "RHEL+KVM", graph: entity.GraphInstallRHEL, os: "RHEL", kvm: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc, d := setup(t)
			payload := map[string]interface{}{"osName": tt.osName, "repo": "http://mirror/centos", "version": "7"}

			d.validator.EXPECT().ValidateSchema(gomock.Any(), systems.SchemaBootImage).Return(nil)
			d.need(genericNode())

			var options map[string]interface{}

			d.workflows.EXPECT().
				Run(gomock.Any(), nodeID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, req entity.GraphRequest) (*entity.WorkflowInstance, error) {
					assert.Equal(t, tt.graph, req.Name)
					options = req.Options

					return &entity.WorkflowInstance{InstanceID: "wf-2"}, nil
				})

			task, err := uc.BootImage(context.Background(), nodeID, payload)
			require.NoError(t, err)
			assert.Equal(t, "/redfish/v1/TaskService/Tasks/wf-2", task.ODataID)

			defaults, ok := options["defaults"].(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, tt.os, defaults["osName"])
			assert.Equal(t, "7", defaults["version"])

			if tt.kvm {
				assert.Equal(t, true, defaults["kvm"])
			} else {
				assert.NotContains(t, defaults, "kvm")
			}

			assert.Equal(t, tt.osName, payload["osName"])
		})
	}
}

func TestBootImage_InvalidOS(t *testing.T) {
	t.Parallel()

	uc, d := setup(t)

	d.validator.EXPECT().ValidateSchema(gomock.Any(), systems.SchemaBootImage).Return(nil)

	_, err := uc.BootImage(context.Background(), nodeID, map[string]interface{}{"osName": "Ubuntu"})
	require.Error(t, err)
	assert.Equal(t, usecase.KindBadRequest, usecase.KindOf(err))
	assert.Equal(t, "invalid osName", usecase.MessageOf(err))
}

func TestResetBios_Dell(t *testing.T) {
	t.Parallel()

	uc, d := setup(t)
	d.need(dellNode())

	d.catalogs.EXPECT().
		FindLatestCatalogOfSource(gomock.Any(), nodeID, string(fetcher.SourceDeviceSummary)).
		Return(&entity.Catalog{NodeID: nodeID, Source: string(fetcher.SourceDeviceSummary), Data: map[string]interface{}{"id": "10.1.1.3"}}, nil)
	d.started(entity.GraphResetComponents, "wf-3")

	task, err := uc.ResetBios(context.Background(), nodeID)
	require.NoError(t, err)
	assert.Equal(t, "/redfish/v1/TaskService/Tasks/wf-3", task.ODataID)
}

func TestBios_NonDell(t *testing.T) {
	t.Parallel()

	uc, d := setup(t)
	d.need(genericNode())

	_, err := uc.Bios(context.Background(), nodeID)
	require.Error(t, err)
	assert.Equal(t, usecase.KindNotFound, usecase.KindOf(err))
	assert.Equal(t, "No BIOS found for node "+nodeID, usecase.MessageOf(err))

	_, err = uc.PatchBiosSettings(context.Background(), nodeID, systems.BiosPatch{Attributes: map[string]interface{}{"a": 1}})
	require.Error(t, err)
	assert.Equal(t, usecase.KindNotFound, usecase.KindOf(err))
}

func TestPatchBiosSettings_DellRequiresAttributes(t *testing.T) {
	t.Parallel()

	uc, d := setup(t)
	d.need(dellNode())

	_, err := uc.PatchBiosSettings(context.Background(), nodeID, systems.BiosPatch{})
	require.Error(t, err)
	assert.Equal(t, usecase.KindBadRequest, usecase.KindOf(err))
}

func TestVolumeActions_NonDell(t *testing.T) {
	t.Parallel()

	uc, d := setup(t)
	d.need(genericNode())

	_, err := uc.AddVolume(context.Background(), nodeID, vendor.VolumeRequest{})
	assert.Equal(t, usecase.KindNotImplemented, usecase.KindOf(err))

	_, err = uc.DeleteVolume(context.Background(), nodeID, "0", nil)
	assert.Equal(t, usecase.KindNotImplemented, usecase.KindOf(err))

	_, err = uc.AddHotspare(context.Background(), nodeID, "0", nil)
	assert.Equal(t, usecase.KindNotImplemented, usecase.KindOf(err))

	_, err = uc.Volumes(context.Background(), nodeID, "0")
	assert.Equal(t, usecase.KindNotFound, usecase.KindOf(err))
}

func TestLogs_NonDell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		service string
		kind    usecase.Kind
	}{
		{name: "lc is dell only", service: "lc", kind: usecase.KindNotImplemented},
		{name: "unknown service", service: "audit", kind: usecase.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc, d := setup(t)
			d.need(genericNode())

			_, err := uc.LogService(context.Background(), nodeID, tt.service)
			assert.Equal(t, tt.kind, usecase.KindOf(err))

			_, err = uc.LogEntries(context.Background(), nodeID, tt.service)
			assert.Equal(t, tt.kind, usecase.KindOf(err))

			_, err = uc.LogEntry(context.Background(), nodeID, tt.service, "1")
			assert.Equal(t, tt.kind, usecase.KindOf(err))
		})
	}
}

func TestSecureBoot_NonDell(t *testing.T) {
	t.Parallel()

	uc, d := setup(t)
	d.need(genericNode())

	_, err := uc.SecureBoot(context.Background(), nodeID)
	assert.Equal(t, usecase.KindNotImplemented, usecase.KindOf(err))

	err = uc.SetSecureBoot(context.Background(), nodeID, true)
	assert.Equal(t, usecase.KindNotImplemented, usecase.KindOf(err))
}

func TestLogServices_Generic(t *testing.T) {
	t.Parallel()

	uc, d := setup(t)
	d.need(genericNode())

	got, err := uc.LogServices(context.Background(), nodeID)
	require.NoError(t, err)
	require.Len(t, got.Members, 1)
	assert.Equal(t, "/redfish/v1/Systems/"+nodeID+"/LogServices/SEL", got.Members[0].ODataID)
}
