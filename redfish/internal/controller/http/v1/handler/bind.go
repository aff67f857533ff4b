package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/oapi-codegen/runtime"

	redfish "github.com/rackhd/redfish-gateway/redfish/internal/entity/v1"
)

// bindJSON decodes the request body into dst and writes the 400 response on failure.
func bindJSON(c *gin.Context, dst interface{}) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var verr validator.ValidationErrors

	switch {
	case errors.As(err, &verr):
		if fe := verr[0]; fe.Tag() == "required" {
			PropertyMissingError(c, fe.Field())
		} else {
			BadRequestError(c, verr.Error())
		}
	case errors.Is(err, io.EOF):
		BadRequestError(c, "request body is required")
	default:
		MalformedJSONError(c)
	}

	return false
}

// bindOptionalJSON is bindJSON for bodies that may be omitted.
func bindOptionalJSON(c *gin.Context, dst interface{}) bool {
	if c.Request.Body == nil || c.Request.Body == http.NoBody || c.Request.ContentLength == 0 {
		return true
	}

	return bindJSON(c, dst)
}

// pathInt binds an integer path parameter.
func pathInt(c *gin.Context, name string) (int, bool) {
	var v int

	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &v, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		BadRequestError(c, "invalid "+name+": "+c.Param(name))

		return 0, false
	}

	return v, true
}

// accepted answers an action that started a workflow.
func accepted(c *gin.Context, task *redfish.TaskRef) {
	SetRedfishHeaders(c)
	c.Header(headerLocation, task.ODataID)
	c.JSON(http.StatusAccepted, task)
}

func respondOK(c *gin.Context, body interface{}) {
	SetRedfishHeaders(c)
	c.JSON(http.StatusOK, body)
}
