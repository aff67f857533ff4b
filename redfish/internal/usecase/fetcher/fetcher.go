// Package fetcher resolves per-node vendor data from catalogs, relations and poller caches.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"golang.org/x/sync/errgroup"

	"github.com/rackhd/redfish-gateway/internal/cache"
	"github.com/rackhd/redfish-gateway/internal/entity"
	"github.com/rackhd/redfish-gateway/pkg/logger"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase"
)

// Source names a data source for a node.
type Source string

// Catalog sources.
const (
	SourceOhai           Source = "ohai"
	SourceDmi            Source = "dmi"
	SourceSmart          Source = "smart"
	SourceHardware       Source = "hardware"
	SourceBoot           Source = "boot"
	SourceBios           Source = "bios"
	SourceNics           Source = "nics"
	SourceDeviceSummary  Source = "DeviceSummary"
	SourceUCS            Source = "UCS"
	SourceUCSLocatorLED  Source = "UCS:locator-led"
	SourceUCSBios        Source = "UCS:bios"
	SourceUCSBoard       Source = "UCS:board"
	SourceBmc            Source = "bmc"
	SourceIpmiMcInfo     Source = "ipmi-mc-info"
	SourceRedfishCatalog Source = "Redfish"
)

// Derived sources.
const (
	SourceCatData     Source = "catData"
	SourceChassis     Source = "chassis"
	SourceChassisData Source = "chassisData"
	SourceSelInfo     Source = "selInfoData"
	SourceSel         Source = "selData"
)

// Poller commands.
const (
	commandChassis = "chassis"
	commandSelInfo = "selInformation"
	commandSel     = "sel"
)

// Chassis power and identify LED states.
const (
	PowerOn      = "On"
	PowerOff     = "Off"
	StateUnknown = "Unknown"
)

// ErrUnsupportedSource is returned for a source outside the closed set.
var ErrUnsupportedSource = errors.New("unsupported data source")

var catalogSources = map[Source]struct{}{
	SourceOhai:          {},
	SourceDmi:           {},
	SourceSmart:         {},
	SourceHardware:      {},
	SourceBoot:          {},
	SourceBios:          {},
	SourceNics:          {},
	SourceDeviceSummary: {},
	SourceUCS:           {},
	SourceUCSLocatorLED: {},
	SourceUCSBios:       {},
	SourceUCSBoard:      {},
	SourceBmc:           {},
	SourceIpmiMcInfo:    {},
}

// uidStates maps the IPMI chassis identify states onto Redfish IndicatorLED values.
var uidStates = map[string]string{
	"Off":          "Off",
	"Temporary On": "Blinking",
	"On":           "Lit",
	"Reserved":     "Unknown",
}

// ChassisData is the latest chassis poller result.
type ChassisData struct {
	Power string
	UID   string
	Raw   map[string]interface{}
}

// Fetcher resolves data sources for nodes.
type Fetcher struct {
	inventory usecase.Inventory
	catalogs  usecase.Catalogs
	pollers   usecase.Pollers
	cache     *cache.Cache
	log       logger.Interface
}

// New creates a Fetcher. A nil cache disables caching.
func New(inventory usecase.Inventory, catalogs usecase.Catalogs, pollers usecase.Pollers, c *cache.Cache, log logger.Interface) *Fetcher {
	if c == nil {
		c = cache.New(0, 0)
	}

	return &Fetcher{
		inventory: inventory,
		catalogs:  catalogs,
		pollers:   pollers,
		cache:     c,
		log:       log,
	}
}

// Fetch resolves source for nodeID. The dynamic type of the result depends on the source.
func (f *Fetcher) Fetch(ctx context.Context, nodeID string, source Source) (interface{}, error) {
	switch source {
	case SourceCatData:
		return f.CatData(ctx, nodeID)
	case SourceChassis:
		return f.Chassis(ctx, nodeID)
	case SourceRedfishCatalog:
		return f.RedfishCatalogs(ctx, nodeID)
	case SourceChassisData:
		return f.ChassisData(ctx, nodeID), nil
	case SourceSelInfo:
		return f.SelInfo(ctx, nodeID)
	case SourceSel:
		return f.Sel(ctx, nodeID)
	}

	if _, ok := catalogSources[source]; ok {
		return f.Catalog(ctx, nodeID, source)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, source)
}

// Catalog returns the latest catalog of source for nodeID.
func (f *Fetcher) Catalog(ctx context.Context, nodeID string, source Source) (*entity.Catalog, error) {
	defer recordFetch(source, time.Now())

	key := cache.MakeCatalogKey(nodeID, string(source))
	if cached, ok := f.cache.Get(key); ok {
		if c, ok := cached.(*entity.Catalog); ok {
			return c, nil
		}
	}

	c, err := f.catalogs.FindLatestCatalogOfSource(ctx, nodeID, string(source))
	if err != nil {
		return nil, err
	}

	f.cache.Set(key, c, 0)

	return c, nil
}

// CatData merges the ohai and dmi catalogs. dmi wins on conflicting keys.
func (f *Fetcher) CatData(ctx context.Context, nodeID string) (map[string]interface{}, error) {
	defer recordFetch(SourceCatData, time.Now())

	var ohai, dmi *entity.Catalog

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ohai, err = f.Catalog(gctx, nodeID, SourceOhai)

		return err
	})
	g.Go(func() error {
		var err error
		dmi, err = f.Catalog(gctx, nodeID, SourceDmi)

		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return mergeMaps(ohai.Object(), dmi.Object()), nil
}

// Chassis returns the ids of the enclosures holding nodeID, in relation order.
func (f *Fetcher) Chassis(ctx context.Context, nodeID string) ([]string, error) {
	defer recordFetch(SourceChassis, time.Now())

	node, err := f.inventory.GetNodeByID(ctx, nodeID)
	if err != nil {
		return nil, err
	}

	return node.EnclosedBy(), nil
}

// RedfishCatalogs returns every Redfish catalog recorded for nodeID.
func (f *Fetcher) RedfishCatalogs(ctx context.Context, nodeID string) ([]entity.Catalog, error) {
	defer recordFetch(SourceRedfishCatalog, time.Now())

	return f.catalogs.Find(ctx, entity.CatalogQuery{NodeID: nodeID, Source: string(SourceRedfishCatalog)})
}

// ChassisData returns the chassis power and identify state. Any failure yields
// Unknown for both.
func (f *Fetcher) ChassisData(ctx context.Context, nodeID string) *ChassisData {
	defer recordFetch(SourceChassisData, time.Now())

	data, err := f.chassisData(ctx, nodeID)
	if err != nil {
		f.log.Debug("chassis data unavailable", "node", nodeID, "error", err)
		recordFallback(SourceChassisData)

		return &ChassisData{Power: StateUnknown, UID: StateUnknown}
	}

	return data
}

var errMissingMember = errors.New("poller result has no member")

func (f *Fetcher) chassisData(ctx context.Context, nodeID string) (*ChassisData, error) {
	result, err := f.latestPollerResult(ctx, nodeID, commandChassis)
	if err != nil {
		return nil, err
	}

	raw, ok := result[commandChassis].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: %s", errMissingMember, commandChassis)
	}

	data := &ChassisData{Power: PowerOff, Raw: raw}
	if truthy(raw["power"]) {
		data.Power = PowerOn
	}

	if uid, ok := raw["uid"].(string); ok {
		data.UID = uidStates[uid]
	}

	return data, nil
}

// SelInfo returns the latest selInformation poller result.
func (f *Fetcher) SelInfo(ctx context.Context, nodeID string) (*entity.SelInformation, error) {
	defer recordFetch(SourceSelInfo, time.Now())

	result, err := f.latestPollerResult(ctx, nodeID, commandSelInfo)
	if err != nil {
		return nil, err
	}

	info := &entity.SelInformation{}

	member, ok := result[commandSelInfo]
	if !ok || member == nil {
		return info, nil
	}

	if err := weakDecode(member, info); err != nil {
		return nil, fmt.Errorf("fetcher - SelInfo: %w", err)
	}

	return info, nil
}

// Sel returns the latest sel poller result. A poller without cached entries yields an empty list.
func (f *Fetcher) Sel(ctx context.Context, nodeID string) ([]entity.NativeSelEntry, error) {
	defer recordFetch(SourceSel, time.Now())

	result, err := f.latestPollerResult(ctx, nodeID, commandSel)
	if err != nil {
		return nil, err
	}

	entries := []entity.NativeSelEntry{}

	member, ok := result[commandSel]
	if !ok || member == nil {
		return entries, nil
	}

	if err := weakDecode(member, &entries); err != nil {
		return nil, fmt.Errorf("fetcher - Sel: %w", err)
	}

	return entries, nil
}

// latestPollerResult returns the newest cached result of the node's poller for command.
// A poller with no cached results yields an empty result.
func (f *Fetcher) latestPollerResult(ctx context.Context, nodeID, command string) (entity.PollerResult, error) {
	key := cache.MakePollerKey(nodeID, command)
	if cached, ok := f.cache.Get(key); ok {
		if r, ok := cached.(entity.PollerResult); ok {
			return r, nil
		}
	}

	pollers, err := f.pollers.FindPollers(ctx, entity.PollerFilter{NodeID: nodeID, Command: command})
	if err != nil {
		return nil, err
	}

	if len(pollers) == 0 {
		return nil, fmt.Errorf("%w: %s for node %s", entity.ErrPollerNotFound, command, nodeID)
	}

	results, err := f.pollers.RequestPollerCache(ctx, pollers[0].ID, true)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return entity.PollerResult{}, nil
	}

	f.cache.Set(key, results[0], f.cache.GetPollerTTL())

	return results[0], nil
}

func weakDecode(input, output interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           output,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}

func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	}

	return true
}
