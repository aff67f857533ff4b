package v1

import "github.com/gin-gonic/gin"

// ListLogServices handles GET /Systems/{identifier}/LogServices.
func (h *SystemsHandler) ListLogServices(c *gin.Context) {
	res, err := h.usecase.LogServices(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		h.fail(c, err)

		return
	}

	respondOK(c, res)
}

// GetLogService handles GET /Systems/{identifier}/LogServices/{service}.
func (h *SystemsHandler) GetLogService(c *gin.Context) {
	res, err := h.usecase.LogService(c.Request.Context(), c.Param("identifier"), c.Param("service"))
	if err != nil {
		h.fail(c, err)

		return
	}

	respondOK(c, res)
}

// ListLogEntries handles GET /Systems/{identifier}/LogServices/{service}/Entries.
func (h *SystemsHandler) ListLogEntries(c *gin.Context) {
	res, err := h.usecase.LogEntries(c.Request.Context(), c.Param("identifier"), c.Param("service"))
	if err != nil {
		h.fail(c, err)

		return
	}

	respondOK(c, res)
}

// GetLogEntry handles GET /Systems/{identifier}/LogServices/{service}/Entries/{entryId}.
func (h *SystemsHandler) GetLogEntry(c *gin.Context) {
	res, err := h.usecase.LogEntry(c.Request.Context(), c.Param("identifier"), c.Param("service"), c.Param("entryId"))
	if err != nil {
		h.fail(c, err)

		return
	}

	respondOK(c, res)
}
