package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rackhd/redfish-gateway/pkg/logger"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/systems"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/vendor"
)

const msgCompleted = "Successfully Completed Request"

// SystemsHandler serves /Systems and everything beneath it.
type SystemsHandler struct {
	usecase *systems.UseCase
	logger  logger.Interface
}

// CreateSystemsHandler -.
func CreateSystemsHandler(uc *systems.UseCase, log logger.Interface) *SystemsHandler {
	return &SystemsHandler{usecase: uc, logger: log}
}

type secureBootRequest struct {
	SecureBootEnable *bool `json:"SecureBootEnable" binding:"required"`
}

func (h *SystemsHandler) fail(c *gin.Context, err error) {
	HandleError(c, h.logger, err)
}

// ListSystems handles GET /Systems.
func (h *SystemsHandler) ListSystems(c *gin.Context) {
	res, err := h.usecase.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)

		return
	}

	respondOK(c, res)
}

// GetSystem handles GET /Systems/{identifier}.
func (h *SystemsHandler) GetSystem(c *gin.Context) {
	res, err := h.usecase.Get(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		h.fail(c, err)

		return
	}

	respondOK(c, res)
}

// ListProcessors handles GET /Systems/{identifier}/Processors.
func (h *SystemsHandler) ListProcessors(c *gin.Context) {
	res, err := h.usecase.Processors(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		h.fail(c, err)

		return
	}

	respondOK(c, res)
}

// GetProcessor handles GET /Systems/{identifier}/Processors/{socket}.
func (h *SystemsHandler) GetProcessor(c *gin.Context) {
	socket, valid := pathInt(c, "socket")
	if !valid {
		return
	}

	res, err := h.usecase.Processor(c.Request.Context(), c.Param("identifier"), socket)
	if err != nil {
		h.fail(c, err)

		return
	}

	respondOK(c, res)
}

// ListEthernetInterfaces handles GET /Systems/{identifier}/EthernetInterfaces.
func (h *SystemsHandler) ListEthernetInterfaces(c *gin.Context) {
	res, err := h.usecase.EthernetInterfaces(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		h.fail(c, err)

		return
	}

	respondOK(c, res)
}

// GetEthernetInterface handles GET /Systems/{identifier}/EthernetInterfaces/{index}.
func (h *SystemsHandler) GetEthernetInterface(c *gin.Context) {
	res, err := h.usecase.EthernetInterface(c.Request.Context(), c.Param("identifier"), c.Param("index"))
	if err != nil {
		h.fail(c, err)

		return
	}

	respondOK(c, res)
}

// GetSecureBoot handles GET /Systems/{identifier}/SecureBoot.
func (h *SystemsHandler) GetSecureBoot(c *gin.Context) {
	res, err := h.usecase.SecureBoot(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		h.fail(c, err)

		return
	}

	respondOK(c, res)
}

// SetSecureBoot handles POST /Systems/{identifier}/SecureBoot.
func (h *SystemsHandler) SetSecureBoot(c *gin.Context) {
	var req secureBootRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.usecase.SetSecureBoot(c.Request.Context(), c.Param("identifier"), *req.SecureBootEnable); err != nil {
		h.fail(c, err)

		return
	}

	SetRedfishHeaders(c)
	c.JSON(http.StatusAccepted, gin.H{"Message": msgCompleted})
}

// GetResetActionInfo handles GET /Systems/{identifier}/Actions/ComputerSystem.Reset.
func (h *SystemsHandler) GetResetActionInfo(c *gin.Context) {
	res, err := h.usecase.ResetActionInfo(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		h.fail(c, err)

		return
	}

	respondOK(c, res)
}

// Reset handles POST /Systems/{identifier}/Actions/ComputerSystem.Reset.
func (h *SystemsHandler) Reset(c *gin.Context) {
	var req systems.ResetRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.usecase.Reset(c.Request.Context(), c.Param("identifier"), req)
	if err != nil {
		h.fail(c, err)

		return
	}

	accepted(c, task)
}

// GetBootImageActionInfo handles GET /Systems/{identifier}/Actions/RackHD.BootImage.
func (h *SystemsHandler) GetBootImageActionInfo(c *gin.Context) {
	res, err := h.usecase.BootImageActionInfo(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		h.fail(c, err)

		return
	}

	respondOK(c, res)
}

// BootImage handles POST /Systems/{identifier}/Actions/RackHD.BootImage.
func (h *SystemsHandler) BootImage(c *gin.Context) {
	var payload map[string]interface{}
	if !bindJSON(c, &payload) {
		return
	}

	task, err := h.usecase.BootImage(c.Request.Context(), c.Param("identifier"), payload)
	if err != nil {
		h.fail(c, err)

		return
	}

	accepted(c, task)
}

// GetBios handles GET /Systems/{identifier}/Bios.
func (h *SystemsHandler) GetBios(c *gin.Context) {
	res, err := h.usecase.Bios(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		h.fail(c, err)

		return
	}

	respondOK(c, res)
}

// GetBiosSettings handles GET /Systems/{identifier}/Bios/Settings.
func (h *SystemsHandler) GetBiosSettings(c *gin.Context) {
	res, err := h.usecase.BiosSettings(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		h.fail(c, err)

		return
	}

	respondOK(c, res)
}

// PatchBiosSettings handles PATCH /Systems/{identifier}/Bios/Settings.
func (h *SystemsHandler) PatchBiosSettings(c *gin.Context) {
	var patch systems.BiosPatch
	if !bindJSON(c, &patch) {
		return
	}

	task, err := h.usecase.PatchBiosSettings(c.Request.Context(), c.Param("identifier"), patch)
	if err != nil {
		h.fail(c, err)

		return
	}

	accepted(c, task)
}

// ChangeBiosPassword handles POST /Systems/{identifier}/Bios/Actions/Bios.ChangePassword.
func (h *SystemsHandler) ChangeBiosPassword(c *gin.Context) {
	var req vendor.BiosPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.usecase.ChangeBiosPassword(c.Request.Context(), c.Param("identifier"), req)
	if err != nil {
		h.fail(c, err)

		return
	}

	accepted(c, task)
}

// ResetBios handles POST /Systems/{identifier}/Bios/Actions/Bios.ResetBios.
func (h *SystemsHandler) ResetBios(c *gin.Context) {
	task, err := h.usecase.ResetBios(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		h.fail(c, err)

		return
	}

	accepted(c, task)
}
