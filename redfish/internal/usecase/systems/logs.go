package systems

import (
	"context"
	"strings"

	redfish "github.com/rackhd/redfish-gateway/redfish/internal/entity/v1"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/vendor"
)

// LogServices -.
func (uc *UseCase) LogServices(ctx context.Context, identifier string) (*redfish.Collection, error) {
	a, node, err := uc.adapter(ctx, identifier)
	if err != nil {
		return nil, err
	}

	ids, err := a.LogServices(ctx, node)
	if err != nil {
		return nil, err
	}

	return redfish.NewCollection(uc.systemPath(node.ID)+"/LogServices", odataLogServices, "Log Service Collection", ids), nil
}

// LogService returns the SEL or LC log service named by service.
func (uc *UseCase) LogService(ctx context.Context, identifier, service string) (*redfish.LogService, error) {
	a, node, err := uc.adapter(ctx, identifier)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.EqualFold(service, vendor.LogServiceSEL):
		return a.SelLogService(ctx, node)
	case strings.EqualFold(service, vendor.LogServiceLC):
		return a.LcLogService(ctx, node)
	default:
		return nil, usecase.NotFound("log service %s was not found", service)
	}
}

// LogEntries embeds every entry of the SEL or LC log.
func (uc *UseCase) LogEntries(ctx context.Context, identifier, service string) (*redfish.LogEntryCollection, error) {
	a, node, err := uc.adapter(ctx, identifier)
	if err != nil {
		return nil, err
	}

	var (
		entries []redfish.LogEntry
		name    string
		id      string
	)

	switch {
	case strings.EqualFold(service, vendor.LogServiceSEL):
		id, name = vendor.LogServiceSEL, "System Event Log Entries"
		entries, err = a.SelEntries(ctx, node)
	case strings.EqualFold(service, vendor.LogServiceLC):
		id, name = vendor.LogServiceLC, "Lifecycle Controller Log Entries"
		entries, err = a.LcEntries(ctx, node)
	default:
		return nil, usecase.NotFound("log service %s was not found", service)
	}

	if err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []redfish.LogEntry{}
	}

	return &redfish.LogEntryCollection{
		ODataContext: uc.basePath + "/$metadata#" + odataLogEntries,
		ODataID:      uc.systemPath(node.ID) + "/LogServices/" + id + "/Entries",
		ODataType:    "#" + odataLogEntries,
		Name:         name,
		MembersCount: len(entries),
		Members:      entries,
	}, nil
}

// LogEntry -.
func (uc *UseCase) LogEntry(ctx context.Context, identifier, service, entryID string) (*redfish.LogEntry, error) {
	a, node, err := uc.adapter(ctx, identifier)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.EqualFold(service, vendor.LogServiceSEL):
		return a.SelEntry(ctx, node, entryID)
	case strings.EqualFold(service, vendor.LogServiceLC):
		return a.LcEntry(ctx, node, entryID)
	default:
		return nil, usecase.NotFound("log service %s was not found", service)
	}
}
