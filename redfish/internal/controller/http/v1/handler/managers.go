package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rackhd/redfish-gateway/pkg/logger"
	redfish "github.com/rackhd/redfish-gateway/redfish/internal/entity/v1"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/managers"
)

// ManagersHandler serves /Managers.
type ManagersHandler struct {
	usecase *managers.UseCase
	logger  logger.Interface
}

// CreateManagersHandler -.
func CreateManagersHandler(uc *managers.UseCase, log logger.Interface) *ManagersHandler {
	return &ManagersHandler{usecase: uc, logger: log}
}

// ListManagers handles GET /Managers.
func (h *ManagersHandler) ListManagers(c *gin.Context) {
	res, err := h.usecase.List(c.Request.Context())
	if err != nil {
		HandleError(c, h.logger, err)

		return
	}

	respondOK(c, res)
}

// GetManager handles GET /Managers/{identifier}.
func (h *ManagersHandler) GetManager(c *gin.Context) {
	res, err := h.usecase.Get(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		HandleError(c, h.logger, err)

		return
	}

	respondOK(c, res)
}

// PatchManager handles PATCH /Managers/{identifier}.
func (h *ManagersHandler) PatchManager(c *gin.Context) {
	var patch redfish.ManagerPatch
	if !bindJSON(c, &patch) {
		return
	}

	if err := h.usecase.Patch(c.Request.Context(), c.Param("identifier"), &patch); err != nil {
		HandleError(c, h.logger, err)

		return
	}

	c.Header(headerODataVersion, odataVersion)
	c.Status(http.StatusNoContent)
}

// GetNetworkProtocol handles GET /Managers/{identifier}/NetworkProtocol.
func (h *ManagersHandler) GetNetworkProtocol(c *gin.Context) {
	res, err := h.usecase.NetworkProtocol(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		HandleError(c, h.logger, err)

		return
	}

	respondOK(c, res)
}

// ListEthernetInterfaces handles GET /Managers/{identifier}/EthernetInterfaces.
func (h *ManagersHandler) ListEthernetInterfaces(c *gin.Context) {
	res, err := h.usecase.EthernetInterfaces(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		HandleError(c, h.logger, err)

		return
	}

	respondOK(c, res)
}

// GetEthernetInterface handles GET /Managers/{identifier}/EthernetInterfaces/{index}.
func (h *ManagersHandler) GetEthernetInterface(c *gin.Context) {
	res, err := h.usecase.EthernetInterface(c.Request.Context(), c.Param("identifier"), c.Param("index"))
	if err != nil {
		HandleError(c, h.logger, err)

		return
	}

	respondOK(c, res)
}

// ListSerialInterfaces handles GET /Managers/{identifier}/SerialInterfaces.
func (h *ManagersHandler) ListSerialInterfaces(c *gin.Context) {
	res, err := h.usecase.SerialInterfaces(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		HandleError(c, h.logger, err)

		return
	}

	respondOK(c, res)
}

// GetSerialInterface handles GET /Managers/{identifier}/SerialInterfaces/{index}.
func (h *ManagersHandler) GetSerialInterface(c *gin.Context) {
	res, err := h.usecase.SerialInterface(c.Request.Context(), c.Param("identifier"), c.Param("index"))
	if err != nil {
		HandleError(c, h.logger, err)

		return
	}

	respondOK(c, res)
}
