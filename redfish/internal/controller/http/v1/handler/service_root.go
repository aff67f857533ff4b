package v1

import (
	_ "embed"
	"encoding/xml"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gopkg.in/yaml.v2"

	"github.com/rackhd/redfish-gateway/pkg/logger"
	redfish "github.com/rackhd/redfish-gateway/redfish/internal/entity/v1"
)

const (
	odataTypeServiceRoot = "#ServiceRoot.v1_5_0.ServiceRoot"
	serviceRootID        = "RootService"
	serviceRootName      = "Root Service"
	redfishVersion       = "1.5.0"

	uuidFileName = "service_uuid"
)

//go:embed metadata.xml
var metadataXML []byte

// ODataService is an entry of the OData service document.
type ODataService struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	URL  string `json:"url"`
}

// ServiceRoot -.
type ServiceRoot struct {
	redfish.Resource
	RedfishVersion string           `json:"RedfishVersion"`
	UUID           string           `json:"UUID"`
	Product        string           `json:"Product"`
	Vendor         string           `json:"Vendor"`
	Systems        redfish.Ref      `json:"Systems"`
	Managers       redfish.Ref      `json:"Managers"`
	SessionService redfish.Ref      `json:"SessionService"`
	Links          ServiceRootLinks `json:"Links"`
}

// ServiceRootLinks -.
type ServiceRootLinks struct {
	Sessions redfish.Ref `json:"Sessions"`
}

// ServiceRootOptions -.
type ServiceRootOptions struct {
	BasePath string
	// UUID pins the service UUID. Empty loads or creates one under StateDir.
	UUID     string
	StateDir string
	OpenAPI  []byte
}

// ServiceRootHandler serves the unauthenticated service root, $metadata and odata documents.
type ServiceRootHandler struct {
	basePath string
	uuid     string
	services []ODataService
	logger   logger.Interface
}

// CreateServiceRootHandler resolves the service UUID and the odata service list.
func CreateServiceRootHandler(opts ServiceRootOptions, log logger.Interface) *ServiceRootHandler {
	if err := validateMetadataXML(metadataXML); err != nil {
		log.Warn("embedded metadata.xml is not well-formed", "error", err)
	}

	return &ServiceRootHandler{
		basePath: opts.BasePath,
		uuid:     resolveServiceUUID(opts.UUID, opts.StateDir, log),
		services: ExtractServicesFromOpenAPIData(opts.OpenAPI, opts.BasePath, log),
		logger:   log,
	}
}

func validateMetadataXML(data []byte) error {
	var doc struct {
		XMLName xml.Name
	}

	if err := xml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("XML parsing failed: %w", err)
	}

	return nil
}

func resolveServiceUUID(configured, stateDir string, log logger.Interface) string {
	if configured != "" {
		if _, err := uuid.Parse(configured); err == nil {
			return configured
		}

		log.Warn("invalid configured service uuid, using persisted one", "uuid", configured)
	}

	id, err := loadOrCreateUUID(stateDir)
	if err != nil {
		log.Warn("service uuid not persisted, using a temporary one", "error", err)

		return uuid.New().String()
	}

	return id
}

// loadOrCreateUUID keeps the service UUID stable across restarts.
func loadOrCreateUUID(dir string) (string, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user config directory: %w", err)
		}

		dir = filepath.Join(base, "rackhd-redfish")
	}

	const (
		dirPermissions  = 0o755
		filePermissions = 0o600
	)

	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return "", fmt.Errorf("failed to create state directory: %w", err)
	}

	file := filepath.Join(dir, uuidFileName)

	if data, err := os.ReadFile(file); err == nil {
		stored := strings.TrimSpace(string(data))
		if _, err := uuid.Parse(stored); err == nil {
			return stored, nil
		}
	}

	id := uuid.New().String()
	if err := os.WriteFile(file, []byte(id), filePermissions); err != nil {
		return "", fmt.Errorf("failed to save service uuid: %w", err)
	}

	return id, nil
}

// ExtractServicesFromOpenAPIData lists the top-level services under basePath
// declared by an OpenAPI document, sorted by name.
func ExtractServicesFromOpenAPIData(data []byte, basePath string, log logger.Interface) []ODataService {
	var spec struct {
		Paths map[string]interface{} `yaml:"paths"`
	}

	if err := yaml.Unmarshal(data, &spec); err != nil || len(spec.Paths) == 0 {
		log.Warn("could not read services from openapi document, using defaults", "error", err)

		return GetDefaultServices(basePath)
	}

	prefix := basePath + "/"
	seen := make(map[string]struct{})

	var services []ODataService

	for path := range spec.Paths {
		if !strings.HasPrefix(path, prefix) || strings.Contains(path, "{") {
			continue
		}

		name := strings.TrimPrefix(path, prefix)
		if name == "" || name == "odata" || name == "$metadata" || strings.Contains(name, "/") {
			continue
		}

		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}
		services = append(services, ODataService{Name: name, Kind: "Singleton", URL: path})
	}

	if len(services) == 0 {
		return GetDefaultServices(basePath)
	}

	sort.Slice(services, func(i, j int) bool { return services[i].Name < services[j].Name })

	return services
}

// GetDefaultServices -.
func GetDefaultServices(basePath string) []ODataService {
	return []ODataService{
		{Name: "Managers", Kind: "Singleton", URL: basePath + "/Managers"},
		{Name: "SessionService", Kind: "Singleton", URL: basePath + "/SessionService"},
		{Name: "Systems", Kind: "Singleton", URL: basePath + "/Systems"},
	}
}

// GetServiceRoot handles GET /redfish/v1.
func (h *ServiceRootHandler) GetServiceRoot(c *gin.Context) {
	SetRedfishHeaders(c)

	c.JSON(http.StatusOK, ServiceRoot{
		Resource: redfish.Resource{
			ODataContext: h.basePath + "/$metadata#ServiceRoot.ServiceRoot",
			ODataID:      h.basePath,
			ODataType:    odataTypeServiceRoot,
			ID:           serviceRootID,
			Name:         serviceRootName,
		},
		RedfishVersion: redfishVersion,
		UUID:           h.uuid,
		Product:        "RackHD Redfish Service",
		Vendor:         "RackHD",
		Systems:        redfish.NewRef(h.basePath + "/Systems"),
		Managers:       redfish.NewRef(h.basePath + "/Managers"),
		SessionService: redfish.NewRef(h.basePath + "/SessionService"),
		Links:          ServiceRootLinks{Sessions: redfish.NewRef(h.basePath + "/SessionService/Sessions")},
	})
}

// GetMetadata handles GET /redfish/v1/$metadata.
func (h *ServiceRootHandler) GetMetadata(c *gin.Context) {
	c.Header(headerODataVersion, odataVersion)
	c.Data(http.StatusOK, contentTypeXML, metadataXML)
}

// GetOData handles GET /redfish/v1/odata.
func (h *ServiceRootHandler) GetOData(c *gin.Context) {
	SetRedfishHeaders(c)

	c.JSON(http.StatusOK, gin.H{
		"@odata.context": h.basePath + "/$metadata",
		"value":          h.services,
	})
}
