package v1

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Handlers are the route targets of the Redfish API.
type Handlers struct {
	ServiceRoot *ServiceRootHandler
	Health      *HealthHandler
	Systems     *SystemsHandler
	Managers    *ManagersHandler
	Sessions    *SessionsHandler
}

// RouteOptions -.
type RouteOptions struct {
	BasePath string
	// Auth guards every route except the service root, $metadata, odata and login. Nil disables it.
	Auth gin.HandlerFunc
}

// RegisterRoutes mounts the API on engine and answers unknown Redfish paths
// and methods with Redfish errors.
func RegisterRoutes(engine *gin.Engine, h Handlers, opts RouteOptions) {
	engine.GET("/health", h.Health.GetHealth)

	api := engine.Group(opts.BasePath, Metrics())
	api.GET("", h.ServiceRoot.GetServiceRoot)
	api.GET("/", h.ServiceRoot.GetServiceRoot)
	api.GET("/$metadata", h.ServiceRoot.GetMetadata)
	api.GET("/odata", h.ServiceRoot.GetOData)
	api.POST("/SessionService/Sessions", h.Sessions.CreateSession)

	protected := api.Group("")
	if opts.Auth != nil {
		protected.Use(opts.Auth)
	}

	protected.GET("/SessionService", h.Sessions.GetSessionService)
	protected.GET("/SessionService/Sessions", h.Sessions.ListSessions)
	protected.GET("/SessionService/Sessions/:sessionId", h.Sessions.GetSession)
	protected.DELETE("/SessionService/Sessions/:sessionId", h.Sessions.DeleteSession)

	registerSystems(protected.Group("/Systems"), h.Systems)
	registerManagers(protected.Group("/Managers"), h.Managers)

	engine.HandleMethodNotAllowed = true
	engine.NoMethod(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, opts.BasePath) {
			MethodNotAllowedError(c)
		}
	})
	engine.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, opts.BasePath) {
			NotFoundError(c)
		}
	})
}

func registerSystems(g *gin.RouterGroup, h *SystemsHandler) {
	g.GET("", h.ListSystems)
	g.GET("/:identifier", h.GetSystem)

	g.GET("/:identifier/Actions/ComputerSystem.Reset", h.GetResetActionInfo)
	g.POST("/:identifier/Actions/ComputerSystem.Reset", h.Reset)
	g.GET("/:identifier/Actions/RackHD.BootImage", h.GetBootImageActionInfo)
	g.POST("/:identifier/Actions/RackHD.BootImage", h.BootImage)

	g.GET("/:identifier/Bios", h.GetBios)
	g.GET("/:identifier/Bios/Settings", h.GetBiosSettings)
	g.PATCH("/:identifier/Bios/Settings", h.PatchBiosSettings)
	g.POST("/:identifier/Bios/Actions/Bios.ChangePassword", h.ChangeBiosPassword)
	g.POST("/:identifier/Bios/Actions/Bios.ResetBios", h.ResetBios)

	g.GET("/:identifier/Processors", h.ListProcessors)
	g.GET("/:identifier/Processors/:socket", h.GetProcessor)

	g.GET("/:identifier/EthernetInterfaces", h.ListEthernetInterfaces)
	g.GET("/:identifier/EthernetInterfaces/:index", h.GetEthernetInterface)

	g.GET("/:identifier/SimpleStorage", h.ListSimpleStorage)
	g.GET("/:identifier/SimpleStorage/:index", h.GetSimpleStorage)
	g.GET("/:identifier/Storage", h.ListStorage)
	g.GET("/:identifier/Storage/:index", h.GetStorage)
	g.GET("/:identifier/Storage/:index/Drives/:driveIndex", h.GetDrive)
	g.POST("/:identifier/Storage/:index/Drives/:driveIndex/Actions/Drive.AddHotspare", h.AddHotspare)
	g.GET("/:identifier/Storage/:index/Volumes", h.ListVolumes)
	g.POST("/:identifier/Storage/:index/Volumes", h.AddVolume)
	g.GET("/:identifier/Storage/:index/Volumes/:volumeIndex", h.GetVolume)
	g.DELETE("/:identifier/Storage/:index/Volumes/:volumeIndex", h.DeleteVolume)

	g.GET("/:identifier/LogServices", h.ListLogServices)
	g.GET("/:identifier/LogServices/:service", h.GetLogService)
	g.GET("/:identifier/LogServices/:service/Entries", h.ListLogEntries)
	g.GET("/:identifier/LogServices/:service/Entries/:entryId", h.GetLogEntry)

	g.GET("/:identifier/SecureBoot", h.GetSecureBoot)
	g.POST("/:identifier/SecureBoot", h.SetSecureBoot)
}

func registerManagers(g *gin.RouterGroup, h *ManagersHandler) {
	g.GET("", h.ListManagers)
	g.GET("/:identifier", h.GetManager)
	g.PATCH("/:identifier", h.PatchManager)
	g.GET("/:identifier/NetworkProtocol", h.GetNetworkProtocol)
	g.GET("/:identifier/EthernetInterfaces", h.ListEthernetInterfaces)
	g.GET("/:identifier/EthernetInterfaces/:index", h.GetEthernetInterface)
	g.GET("/:identifier/SerialInterfaces", h.ListSerialInterfaces)
	g.GET("/:identifier/SerialInterfaces/:index", h.GetSerialInterface)
}
