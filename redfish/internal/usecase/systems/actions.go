package systems

import (
	"context"
	"strings"

	"github.com/rackhd/redfish-gateway/internal/entity"
	redfish "github.com/rackhd/redfish-gateway/redfish/internal/entity/v1"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/vendor"
)

// Schema references checked before an action starts a workflow.
const (
	SchemaResetAction = "RackHD.ResetAction.json#/definitions/ResetAction"
	SchemaBootImage   = "RackHD.BootImage.json#/definitions/BootImage"
)

var resetGraphs = map[string]string{
	vendor.ResetOn:              entity.GraphPowerOn,
	vendor.ResetForceOn:         entity.GraphPowerOn,
	vendor.ResetForceOff:        entity.GraphPowerOff,
	vendor.ResetGracefulRestart: entity.GraphResetSoft,
	vendor.ResetPushPowerButton: entity.GraphResetSoft,
	vendor.ResetForceRestart:    entity.GraphReboot,
}

// Operating systems RackHD.BootImage can install, matched by substring.
var bootImages = []struct {
	os    string
	graph string
}{
	{os: "CentOS", graph: entity.GraphInstallCentOS},
	{os: "ESXi", graph: entity.GraphInstallESXi},
	{os: "RHEL", graph: entity.GraphInstallRHEL},
}

// ResetRequest is the ComputerSystem.Reset action body.
type ResetRequest struct {
	ResetType string `json:"reset_type"`
}

func (uc *UseCase) actionInfo(path, name string, params []redfish.ActionParameter) *redfish.ActionInfo {
	return &redfish.ActionInfo{
		Resource: redfish.Resource{
			ODataContext: uc.basePath + "/$metadata#" + odataActionInfo,
			ODataID:      path,
			ODataType:    "#" + odataActionInfo,
			ID:           name,
			Name:         name,
		},
		Parameters: params,
	}
}

// ResetActionInfo lists the reset types a system accepts.
func (uc *UseCase) ResetActionInfo(ctx context.Context, identifier string) (*redfish.ActionInfo, error) {
	node, err := uc.inventory.NeedByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}

	return uc.actionInfo(uc.systemPath(node.ID)+"/Actions/ComputerSystem.Reset", "ResetActionInfo", []redfish.ActionParameter{
		{Name: "ResetType", Required: true, DataType: "String", AllowableValues: vendor.ResetTypes()},
	}), nil
}

// Reset starts the power graph matching req.ResetType.
func (uc *UseCase) Reset(ctx context.Context, identifier string, req ResetRequest) (*redfish.TaskRef, error) {
	node, err := uc.inventory.NeedByIdentifier(ctx, identifier)
	if err != nil {
		return nil, usecase.Lookup(err)
	}

	if err := uc.validate(req, SchemaResetAction); err != nil {
		return nil, err
	}

	graph, ok := resetGraphs[req.ResetType]
	if !ok {
		return nil, usecase.BadRequest("invalid reset_type %q", req.ResetType)
	}

	return uc.startGraph(ctx, node.ID, entity.GraphRequest{Name: graph})
}

// BootImageActionInfo lists the parameters of RackHD.BootImage.
func (uc *UseCase) BootImageActionInfo(ctx context.Context, identifier string) (*redfish.ActionInfo, error) {
	node, err := uc.inventory.NeedByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}

	oses := make([]string, 0, 2*len(bootImages))
	for _, b := range bootImages {
		oses = append(oses, b.os, b.os+"+KVM")
	}

	return uc.actionInfo(uc.systemPath(node.ID)+"/Actions/RackHD.BootImage", "BootImageActionInfo", []redfish.ActionParameter{
		{Name: "osName", Required: true, DataType: "String", AllowableValues: oses},
		{Name: "repo", Required: true, DataType: "String"},
		{Name: "version", Required: true, DataType: "String"},
		{Name: "rootPassword", Required: true, DataType: "String"},
		{Name: "hostname", DataType: "String"},
		{Name: "domain", DataType: "String"},
		{Name: "dnsServers", DataType: "StringArray"},
		{Name: "installDisk", DataType: "String"},
	}), nil
}

// BootImage installs the operating system named by payload["osName"]. The
// payload becomes the graph defaults.
func (uc *UseCase) BootImage(ctx context.Context, identifier string, payload map[string]interface{}) (*redfish.TaskRef, error) {
	if err := uc.validate(payload, SchemaBootImage); err != nil {
		return nil, err
	}

	osName, _ := payload["osName"].(string)

	defaults := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		defaults[k] = v
	}

	if strings.Contains(osName, "+KVM") {
		defaults["kvm"] = true
	}

	graph := ""

	for _, b := range bootImages {
		if strings.Contains(osName, b.os) {
			graph = b.graph
			defaults["osName"] = b.os

			break
		}
	}

	if graph == "" {
		return nil, usecase.BadRequest("invalid osName")
	}

	node, err := uc.inventory.NeedByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}

	return uc.startGraph(ctx, node.ID, entity.GraphRequest{
		Name:    graph,
		Options: map[string]interface{}{"defaults": defaults},
	})
}
