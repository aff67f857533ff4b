package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rackhd/redfish-gateway/pkg/logger"
	redfish "github.com/rackhd/redfish-gateway/redfish/internal/entity/v1"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/sessions"
)

// SessionsHandler serves the SessionService.
type SessionsHandler struct {
	usecase  *sessions.UseCase
	basePath string
	logger   logger.Interface
}

// CreateSessionsHandler -.
func CreateSessionsHandler(uc *sessions.UseCase, basePath string, log logger.Interface) *SessionsHandler {
	return &SessionsHandler{usecase: uc, basePath: basePath, logger: log}
}

type loginRequest struct {
	UserName string `json:"UserName" binding:"required"`
	Password string `json:"Password" binding:"required"`
}

func (h *SessionsHandler) sessionsPath() string {
	return h.basePath + "/SessionService/Sessions"
}

func (h *SessionsHandler) session(id, user string) *redfish.Session {
	return &redfish.Session{
		Resource: redfish.Resource{
			ODataContext: h.basePath + "/$metadata#Session.Session",
			ODataID:      h.sessionsPath() + "/" + id,
			ODataType:    "#Session.v1_1_0.Session",
			ID:           id,
			Name:         "User Session",
		},
		UserName: user,
	}
}

// GetSessionService handles GET /SessionService.
func (h *SessionsHandler) GetSessionService(c *gin.Context) {
	respondOK(c, &redfish.SessionService{
		Resource: redfish.Resource{
			ODataContext: h.basePath + "/$metadata#SessionService.SessionService",
			ODataID:      h.basePath + "/SessionService",
			ODataType:    "#SessionService.v1_1_3.SessionService",
			ID:           "SessionService",
			Name:         "Session Service",
		},
		Status:         &redfish.Status{State: redfish.StateEnabled, Health: redfish.HealthOK},
		ServiceEnabled: true,
		SessionTimeout: int(h.usecase.Timeout().Seconds()),
		Sessions:       redfish.NewRef(h.sessionsPath()),
	})
}

// ListSessions handles GET /SessionService/Sessions.
func (h *SessionsHandler) ListSessions(c *gin.Context) {
	list := h.usecase.List()

	ids := make([]string, 0, len(list))
	for _, s := range list {
		ids = append(ids, s.ID)
	}

	respondOK(c, redfish.NewCollection(h.sessionsPath(), "SessionCollection.SessionCollection", "Session Collection", ids))
}

// CreateSession handles POST /SessionService/Sessions. It is reachable without credentials.
func (h *SessionsHandler) CreateSession(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.usecase.Create(req.UserName, req.Password, c.ClientIP(), c.GetHeader("User-Agent"))
	if err != nil {
		if errors.Is(err, sessions.ErrInvalidCredentials) {
			UnauthorizedError(c)

			return
		}

		HandleError(c, h.logger, err)

		return
	}

	body := h.session(s.ID, s.Username)

	SetRedfishHeaders(c)
	c.Header(headerAuthToken, s.Token)
	c.Header(headerLocation, body.ODataID)
	c.JSON(http.StatusCreated, body)
}

// GetSession handles GET /SessionService/Sessions/{sessionId}.
func (h *SessionsHandler) GetSession(c *gin.Context) {
	s, err := h.usecase.Get(c.Param("sessionId"))
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			NotFoundError(c)

			return
		}

		HandleError(c, h.logger, err)

		return
	}

	respondOK(c, h.session(s.ID, s.Username))
}

// DeleteSession handles DELETE /SessionService/Sessions/{sessionId}.
func (h *SessionsHandler) DeleteSession(c *gin.Context) {
	if err := h.usecase.Delete(c.Param("sessionId")); err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			NotFoundError(c)

			return
		}

		HandleError(c, h.logger, err)

		return
	}

	c.Status(http.StatusNoContent)
}
