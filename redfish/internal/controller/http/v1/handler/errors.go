// Package v1 serves the Redfish v1 API over gin.
package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/rackhd/redfish-gateway/pkg/logger"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase"
)

const (
	headerODataVersion = "OData-Version"
	headerContentType  = "Content-Type"
	headerLocation     = "Location"
	headerRetryAfter   = "Retry-After"

	contentTypeJSON = "application/json; charset=utf-8"
	contentTypeXML  = "application/xml"
	odataVersion    = "4.0"

	msgInternalServerError = "An internal server error occurred."
	odataTypeMessage       = "#Message.v1_1_1.Message"
)

// RedfishError is the Redfish error envelope.
type RedfishError struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody -.
type ErrorBody struct {
	Code         string        `json:"code"`
	Message      string        `json:"message"`
	ExtendedInfo []MessageInfo `json:"@Message.ExtendedInfo"`
}

// MessageInfo is one @Message.ExtendedInfo entry.
type MessageInfo struct {
	ODataType   string   `json:"@odata.type"`
	MessageID   string   `json:"MessageId"`
	Message     string   `json:"Message"`
	MessageArgs []string `json:"MessageArgs,omitempty"`
	Severity    string   `json:"Severity"`
	Resolution  string   `json:"Resolution,omitempty"`
}

// ErrorConfig ties an error type to its registry message and status.
type ErrorConfig struct {
	RegistryKey string
	StatusCode  int
}

var errorConfigMap = map[string]ErrorConfig{
	"NotFound":           {RegistryKey: "ResourceMissingAtURI", StatusCode: http.StatusNotFound},
	"BadRequest":         {RegistryKey: "GeneralError", StatusCode: http.StatusBadRequest},
	"MalformedJSON":      {RegistryKey: "MalformedJSON", StatusCode: http.StatusBadRequest},
	"PropertyMissing":    {RegistryKey: "PropertyMissing", StatusCode: http.StatusBadRequest},
	"MethodNotAllowed":   {RegistryKey: "OperationNotAllowed", StatusCode: http.StatusMethodNotAllowed},
	"NotImplemented":     {RegistryKey: "ActionNotSupported", StatusCode: http.StatusNotImplemented},
	"Unauthorized":       {RegistryKey: "NoValidSession", StatusCode: http.StatusUnauthorized},
	"ServiceUnavailable": {RegistryKey: "ServiceTemporarilyUnavailable", StatusCode: http.StatusServiceUnavailable},
	"Internal":           {RegistryKey: "InternalError", StatusCode: http.StatusInternalServerError},
}

var kindErrorType = map[usecase.Kind]string{
	usecase.KindNotFound:         "NotFound",
	usecase.KindBadRequest:       "BadRequest",
	usecase.KindMethodNotAllowed: "MethodNotAllowed",
	usecase.KindNotImplemented:   "NotImplemented",
	usecase.KindInternal:         "Internal",
}

// SetRedfishHeaders sets the headers every Redfish response carries.
func SetRedfishHeaders(c *gin.Context) {
	c.Header(headerContentType, contentTypeJSON)
	c.Header(headerODataVersion, odataVersion)
	c.Header("Cache-Control", "no-cache")
}

// newRedfishError builds the envelope for errorType. An empty message keeps the registry text.
func newRedfishError(errorType, message string, args ...string) (int, *RedfishError) {
	cfg, ok := errorConfigMap[errorType]
	if !ok {
		cfg = errorConfigMap["Internal"]
	}

	info := MessageInfo{ODataType: odataTypeMessage, Severity: "Critical"}
	code := "Base.1.22.0.GeneralError"

	if rm, err := GetRegistryManager(); err == nil {
		if msg, err := rm.LookupMessage("Base", cfg.RegistryKey); err == nil {
			info.MessageID = msg.MessageID
			info.Message = msg.FormatMessage(args...)
			info.Severity = msg.Severity
			info.Resolution = msg.Resolution
			code = msg.CodePrefix + ".GeneralError"
		}
	}

	if info.MessageID == "" {
		info.MessageID = "Base.1.22.0." + cfg.RegistryKey
	}

	if len(args) > 0 {
		info.MessageArgs = args
	}

	if message == "" {
		message = info.Message
	}

	return cfg.StatusCode, &RedfishError{Error: ErrorBody{
		Code:         code,
		Message:      message,
		ExtendedInfo: []MessageInfo{info},
	}}
}

func sendRedfishError(c *gin.Context, errorType, message string, args ...string) {
	SetRedfishHeaders(c)

	status, body := newRedfishError(errorType, message, args...)
	c.AbortWithStatusJSON(status, body)
}

// HandleError writes err as a Redfish error. Unclassified errors are logged and
// reported as 500 without their detail.
func HandleError(c *gin.Context, log logger.Interface, err error) {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		BadRequestError(c, verr.Error())

		return
	}

	kind := usecase.KindOf(err)
	if kind == usecase.KindInternal {
		log.Error(err, "method", c.Request.Method, "path", c.Request.URL.Path)
		InternalServerError(c)

		return
	}

	var args []string
	if kind == usecase.KindNotFound {
		args = []string{c.Request.URL.Path}
	}

	if kind == usecase.KindNotImplemented {
		args = []string{c.Request.Method + " " + c.Request.URL.Path}
	}

	sendRedfishError(c, kindErrorType[kind], usecase.MessageOf(err), args...)
}

// MethodNotAllowedError returns a Redfish-compliant 405 error.
func MethodNotAllowedError(c *gin.Context) {
	sendRedfishError(c, "MethodNotAllowed", "")
}

// UnauthorizedError returns a Redfish-compliant 401 error.
func UnauthorizedError(c *gin.Context) {
	sendRedfishError(c, "Unauthorized", "")
}

// BadRequestError returns a Redfish-compliant 400 error.
func BadRequestError(c *gin.Context, message string) {
	sendRedfishError(c, "BadRequest", message)
}

// NotFoundError returns a Redfish-compliant 404 error for the request path.
func NotFoundError(c *gin.Context) {
	sendRedfishError(c, "NotFound", "", c.Request.URL.Path)
}

// MalformedJSONError returns a Redfish-compliant 400 error for an unparsable body.
func MalformedJSONError(c *gin.Context) {
	sendRedfishError(c, "MalformedJSON", "")
}

// PropertyMissingError returns a Redfish-compliant 400 error for a missing property.
func PropertyMissingError(c *gin.Context, property string) {
	sendRedfishError(c, "PropertyMissing", "", property)
}

// ServiceUnavailableError returns a Redfish-compliant 503 error.
func ServiceUnavailableError(c *gin.Context, retryAfterSeconds int) {
	c.Header(headerRetryAfter, strconv.Itoa(retryAfterSeconds))
	sendRedfishError(c, "ServiceUnavailable", "", strconv.Itoa(retryAfterSeconds))
}

// InternalServerError returns a Redfish-compliant 500 error.
func InternalServerError(c *gin.Context) {
	sendRedfishError(c, "Internal", msgInternalServerError)
}
