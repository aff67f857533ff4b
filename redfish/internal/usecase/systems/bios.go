package systems

import (
	"context"

	redfish "github.com/rackhd/redfish-gateway/redfish/internal/entity/v1"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/vendor"
)

// BiosPatch is the PATCH body of Bios/Settings.
type BiosPatch struct {
	Attributes map[string]interface{} `json:"Attributes"`
}

// Bios -.
func (uc *UseCase) Bios(ctx context.Context, identifier string) (*redfish.Bios, error) {
	a, node, err := uc.adapter(ctx, identifier)
	if err != nil {
		return nil, err
	}

	return a.Bios(ctx, node)
}

// BiosSettings returns the writable BIOS attributes.
func (uc *UseCase) BiosSettings(ctx context.Context, identifier string) (*redfish.Bios, error) {
	a, node, err := uc.adapter(ctx, identifier)
	if err != nil {
		return nil, err
	}

	return a.BiosSettings(ctx, node)
}

// PatchBiosSettings applies the attributes through a system components update.
func (uc *UseCase) PatchBiosSettings(ctx context.Context, identifier string, patch BiosPatch) (*redfish.TaskRef, error) {
	a, node, err := uc.adapter(ctx, identifier)
	if err != nil {
		return nil, err
	}

	if a.Vendor() == vendor.Dell && len(patch.Attributes) == 0 {
		return nil, usecase.BadRequest("Attributes is required")
	}

	graph, err := a.UpdateBios(ctx, node, patch.Attributes)
	if err != nil {
		return nil, err
	}

	return uc.startGraph(ctx, node.ID, *graph)
}

// ChangeBiosPassword -.
func (uc *UseCase) ChangeBiosPassword(ctx context.Context, identifier string, req vendor.BiosPasswordRequest) (*redfish.TaskRef, error) {
	a, node, err := uc.adapter(ctx, identifier)
	if err != nil {
		return nil, err
	}

	graph, err := a.ChangeBiosPassword(ctx, node, req)
	if err != nil {
		return nil, err
	}

	return uc.startGraph(ctx, node.ID, *graph)
}

// ResetBios restores the BIOS defaults.
func (uc *UseCase) ResetBios(ctx context.Context, identifier string) (*redfish.TaskRef, error) {
	a, node, err := uc.adapter(ctx, identifier)
	if err != nil {
		return nil, err
	}

	graph, err := a.ResetBios(ctx, node)
	if err != nil {
		return nil, err
	}

	return uc.startGraph(ctx, node.ID, *graph)
}
