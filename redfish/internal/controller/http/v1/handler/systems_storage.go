package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/vendor"
)

// ListSimpleStorage handles GET /Systems/{identifier}/SimpleStorage.
func (h *SystemsHandler) ListSimpleStorage(c *gin.Context) {
	res, err := h.usecase.SimpleStorage(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		h.fail(c, err)

		return
	}

	respondOK(c, res)
}

// GetSimpleStorage handles GET /Systems/{identifier}/SimpleStorage/{index}.
func (h *SystemsHandler) GetSimpleStorage(c *gin.Context) {
	res, err := h.usecase.SimpleStorageDevice(c.Request.Context(), c.Param("identifier"), c.Param("index"))
	if err != nil {
		h.fail(c, err)

		return
	}

	respondOK(c, res)
}

// ListStorage handles GET /Systems/{identifier}/Storage.
func (h *SystemsHandler) ListStorage(c *gin.Context) {
	res, err := h.usecase.Storage(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		h.fail(c, err)

		return
	}

	respondOK(c, res)
}

// GetStorage handles GET /Systems/{identifier}/Storage/{index}.
func (h *SystemsHandler) GetStorage(c *gin.Context) {
	res, err := h.usecase.StorageController(c.Request.Context(), c.Param("identifier"), c.Param("index"))
	if err != nil {
		h.fail(c, err)

		return
	}

	respondOK(c, res)
}

// GetDrive handles GET /Systems/{identifier}/Storage/{index}/Drives/{driveIndex}.
func (h *SystemsHandler) GetDrive(c *gin.Context) {
	res, err := h.usecase.Drive(c.Request.Context(), c.Param("identifier"), c.Param("index"), c.Param("driveIndex"))
	if err != nil {
		h.fail(c, err)

		return
	}

	respondOK(c, res)
}

// AddHotspare handles POST .../Drives/{driveIndex}/Actions/Drive.AddHotspare.
func (h *SystemsHandler) AddHotspare(c *gin.Context) {
	var options map[string]interface{}
	if !bindOptionalJSON(c, &options) {
		return
	}

	task, err := h.usecase.AddHotspare(c.Request.Context(), c.Param("identifier"), c.Param("driveIndex"), options)
	if err != nil {
		h.fail(c, err)

		return
	}

	accepted(c, task)
}

// ListVolumes handles GET /Systems/{identifier}/Storage/{index}/Volumes.
func (h *SystemsHandler) ListVolumes(c *gin.Context) {
	res, err := h.usecase.Volumes(c.Request.Context(), c.Param("identifier"), c.Param("index"))
	if err != nil {
		h.fail(c, err)

		return
	}

	respondOK(c, res)
}

// GetVolume handles GET /Systems/{identifier}/Storage/{index}/Volumes/{volumeIndex}.
func (h *SystemsHandler) GetVolume(c *gin.Context) {
	res, err := h.usecase.Volume(c.Request.Context(), c.Param("identifier"), c.Param("index"), c.Param("volumeIndex"))
	if err != nil {
		h.fail(c, err)

		return
	}

	respondOK(c, res)
}

// AddVolume handles POST /Systems/{identifier}/Storage/{index}/Volumes.
func (h *SystemsHandler) AddVolume(c *gin.Context) {
	var req vendor.VolumeRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.usecase.AddVolume(c.Request.Context(), c.Param("identifier"), req)
	if err != nil {
		h.fail(c, err)

		return
	}

	accepted(c, task)
}

// DeleteVolume handles DELETE /Systems/{identifier}/Storage/{index}/Volumes/{volumeIndex}.
func (h *SystemsHandler) DeleteVolume(c *gin.Context) {
	var options map[string]interface{}
	if !bindOptionalJSON(c, &options) {
		return
	}

	task, err := h.usecase.DeleteVolume(c.Request.Context(), c.Param("identifier"), c.Param("volumeIndex"), options)
	if err != nil {
		h.fail(c, err)

		return
	}

	accepted(c, task)
}
