// Package systems implements the ComputerSystem resources. Every request is
// classified by vendor and served by the matching vendor.Adapter.
package systems

import (
	"context"
	"fmt"

	"github.com/rackhd/redfish-gateway/internal/entity"
	"github.com/rackhd/redfish-gateway/pkg/logger"
	redfish "github.com/rackhd/redfish-gateway/redfish/internal/entity/v1"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/vendor"
)

// Collection types.
const (
	odataSystems        = "ComputerSystemCollection.ComputerSystemCollection"
	odataProcessors     = "ProcessorCollection.ProcessorCollection"
	odataSimpleStorages = "SimpleStorageCollection.SimpleStorageCollection"
	odataStorages       = "StorageCollection.StorageCollection"
	odataVolumes        = "VolumeCollection.VolumeCollection"
	odataLogServices    = "LogServiceCollection.LogServiceCollection"
	odataLogEntries     = "LogEntryCollection.LogEntryCollection"
	odataEthernets      = "EthernetInterfaceCollection.EthernetInterfaceCollection"
	odataActionInfo     = "ActionInfo.v1_0_0.ActionInfo"
)

// UseCase -.
type UseCase struct {
	inventory  usecase.Inventory
	classifier *vendor.Classifier
	registry   *vendor.Registry
	workflows  usecase.Workflows
	validator  usecase.SchemaValidator
	log        logger.Interface
	basePath   string
}

// New -.
func New(inventory usecase.Inventory, registry *vendor.Registry, workflows usecase.Workflows, validator usecase.SchemaValidator, log logger.Interface, basePath string) *UseCase {
	return &UseCase{
		inventory:  inventory,
		classifier: vendor.NewClassifier(inventory),
		registry:   registry,
		workflows:  workflows,
		validator:  validator,
		log:        log,
		basePath:   basePath,
	}
}

func (uc *UseCase) systemPath(id string) string {
	return uc.basePath + "/Systems/" + id
}

// adapter loads the node behind identifier and picks its vendor adapter.
func (uc *UseCase) adapter(ctx context.Context, identifier string) (vendor.Adapter, *entity.Node, error) {
	v, node, err := uc.classifier.Classify(ctx, identifier)
	if err != nil {
		return nil, nil, err
	}

	return uc.registry.For(v), node, nil
}

// startGraph runs graph against nodeID and returns the task the client polls.
func (uc *UseCase) startGraph(ctx context.Context, nodeID string, graph entity.GraphRequest) (*redfish.TaskRef, error) {
	inst, err := uc.workflows.Run(ctx, nodeID, graph)
	if err != nil {
		return nil, fmt.Errorf("systems - run %s: %w", graph.Name, err)
	}

	recordWorkflow(graph.Name)
	uc.log.Info("workflow started", "graph", graph.Name, "node", nodeID, "instance", inst.InstanceID)

	return &redfish.TaskRef{ODataID: uc.basePath + "/TaskService/Tasks/" + inst.InstanceID}, nil
}

// List returns every compute node.
func (uc *UseCase) List(ctx context.Context) (*redfish.Collection, error) {
	nodes, err := uc.inventory.FindNodes(ctx, entity.NodeFilter{Type: entity.NodeTypeCompute})
	if err != nil {
		return nil, fmt.Errorf("systems - List: %w", err)
	}

	ids := make([]string, 0, len(nodes))
	for i := range nodes {
		ids = append(ids, nodes[i].ID)
	}

	return redfish.NewCollection(uc.basePath+"/Systems", odataSystems, "Computer System Collection", ids), nil
}

// Get -.
func (uc *UseCase) Get(ctx context.Context, identifier string) (*redfish.ComputerSystem, error) {
	a, node, err := uc.adapter(ctx, identifier)
	if err != nil {
		return nil, err
	}

	return a.System(ctx, node)
}

// Processors -.
func (uc *UseCase) Processors(ctx context.Context, identifier string) (*redfish.Collection, error) {
	a, node, err := uc.adapter(ctx, identifier)
	if err != nil {
		return nil, err
	}

	ids, err := a.Processors(ctx, node)
	if err != nil {
		return nil, err
	}

	return redfish.NewCollection(uc.systemPath(node.ID)+"/Processors", odataProcessors, "Processors Collection", ids), nil
}

// Processor -.
func (uc *UseCase) Processor(ctx context.Context, identifier string, socket int) (*redfish.Processor, error) {
	a, node, err := uc.adapter(ctx, identifier)
	if err != nil {
		return nil, err
	}

	return a.Processor(ctx, node, socket)
}

// EthernetInterfaces -.
func (uc *UseCase) EthernetInterfaces(ctx context.Context, identifier string) (*redfish.Collection, error) {
	a, node, err := uc.adapter(ctx, identifier)
	if err != nil {
		return nil, err
	}

	ids, err := a.EthernetInterfaces(ctx, node)
	if err != nil {
		return nil, err
	}

	return redfish.NewCollection(uc.systemPath(node.ID)+"/EthernetInterfaces", odataEthernets, "Ethernet Network Interface Collection", ids), nil
}

// EthernetInterface -.
func (uc *UseCase) EthernetInterface(ctx context.Context, identifier, index string) (*redfish.EthernetInterface, error) {
	a, node, err := uc.adapter(ctx, identifier)
	if err != nil {
		return nil, err
	}

	return a.EthernetInterface(ctx, node, index)
}

// SecureBoot -.
func (uc *UseCase) SecureBoot(ctx context.Context, identifier string) (*redfish.SecureBoot, error) {
	a, node, err := uc.adapter(ctx, identifier)
	if err != nil {
		return nil, err
	}

	return a.SecureBoot(ctx, node)
}

// SetSecureBoot switches UEFI secure boot through RACADM.
func (uc *UseCase) SetSecureBoot(ctx context.Context, identifier string, enable bool) error {
	a, node, err := uc.adapter(ctx, identifier)
	if err != nil {
		return err
	}

	if err := a.SetSecureBoot(ctx, node, enable); err != nil {
		return err
	}

	uc.log.Info("secure boot updated", "node", node.ID, "enabled", enable)

	return nil
}

func (uc *UseCase) validate(payload interface{}, ref string) error {
	if uc.validator == nil {
		return nil
	}

	if err := uc.validator.ValidateSchema(payload, ref); err != nil {
		return usecase.BadRequest("%s", err.Error())
	}

	return nil
}
