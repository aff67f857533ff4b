package systems

import (
	"context"

	redfish "github.com/rackhd/redfish-gateway/redfish/internal/entity/v1"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/vendor"
)

// SimpleStorage -.
func (uc *UseCase) SimpleStorage(ctx context.Context, identifier string) (*redfish.Collection, error) {
	a, node, err := uc.adapter(ctx, identifier)
	if err != nil {
		return nil, err
	}

	ids, err := a.SimpleStorage(ctx, node)
	if err != nil {
		return nil, err
	}

	return redfish.NewCollection(uc.systemPath(node.ID)+"/SimpleStorage", odataSimpleStorages, "Simple Storage Collection", ids), nil
}

// SimpleStorageDevice -.
func (uc *UseCase) SimpleStorageDevice(ctx context.Context, identifier, index string) (*redfish.SimpleStorage, error) {
	a, node, err := uc.adapter(ctx, identifier)
	if err != nil {
		return nil, err
	}

	return a.SimpleStorageDevice(ctx, node, index)
}

// Storage -.
func (uc *UseCase) Storage(ctx context.Context, identifier string) (*redfish.Collection, error) {
	a, node, err := uc.adapter(ctx, identifier)
	if err != nil {
		return nil, err
	}

	ids, err := a.Storage(ctx, node)
	if err != nil {
		return nil, err
	}

	return redfish.NewCollection(uc.systemPath(node.ID)+"/Storage", odataStorages, "Storage Collection", ids), nil
}

// StorageController -.
func (uc *UseCase) StorageController(ctx context.Context, identifier, index string) (*redfish.Storage, error) {
	a, node, err := uc.adapter(ctx, identifier)
	if err != nil {
		return nil, err
	}

	return a.StorageController(ctx, node, index)
}

// Drive -.
func (uc *UseCase) Drive(ctx context.Context, identifier, index, driveIndex string) (*redfish.Drive, error) {
	a, node, err := uc.adapter(ctx, identifier)
	if err != nil {
		return nil, err
	}

	return a.Drive(ctx, node, index, driveIndex)
}

// Volumes -.
func (uc *UseCase) Volumes(ctx context.Context, identifier, index string) (*redfish.Collection, error) {
	a, node, err := uc.adapter(ctx, identifier)
	if err != nil {
		return nil, err
	}

	ids, err := a.Volumes(ctx, node, index)
	if err != nil {
		return nil, err
	}

	return redfish.NewCollection(uc.systemPath(node.ID)+"/Storage/"+index+"/Volumes", odataVolumes, "Volume Collection", ids), nil
}

// Volume -.
func (uc *UseCase) Volume(ctx context.Context, identifier, index, volumeIndex string) (*redfish.Volume, error) {
	a, node, err := uc.adapter(ctx, identifier)
	if err != nil {
		return nil, err
	}

	return a.Volume(ctx, node, index, volumeIndex)
}

// AddVolume creates a virtual disk on the controller.
func (uc *UseCase) AddVolume(ctx context.Context, identifier string, req vendor.VolumeRequest) (*redfish.TaskRef, error) {
	a, node, err := uc.adapter(ctx, identifier)
	if err != nil {
		return nil, err
	}

	graph, err := a.AddVolume(ctx, node, req)
	if err != nil {
		return nil, err
	}

	return uc.startGraph(ctx, node.ID, *graph)
}

// DeleteVolume removes a virtual disk. options are the request body.
func (uc *UseCase) DeleteVolume(ctx context.Context, identifier, volumeIndex string, options map[string]interface{}) (*redfish.TaskRef, error) {
	a, node, err := uc.adapter(ctx, identifier)
	if err != nil {
		return nil, err
	}

	graph, err := a.DeleteVolume(ctx, node, volumeIndex, options)
	if err != nil {
		return nil, err
	}

	return uc.startGraph(ctx, node.ID, *graph)
}

// AddHotspare assigns a drive as hot spare.
func (uc *UseCase) AddHotspare(ctx context.Context, identifier, driveIndex string, options map[string]interface{}) (*redfish.TaskRef, error) {
	a, node, err := uc.adapter(ctx, identifier)
	if err != nil {
		return nil, err
	}

	graph, err := a.AddHotspare(ctx, node, driveIndex, options)
	if err != nil {
		return nil, err
	}

	return uc.startGraph(ctx, node.ID, *graph)
}
