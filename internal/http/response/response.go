package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/agroregistry-backend/internal/platform/apierr"
)

type APIError struct {
	Message string         `json:"message"`
	Code    string         `json:"code,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// RespondError renders err with the status of its registry code.
func RespondError(c *gin.Context, err error) {
	apiErr := apierr.From(err)
	if apiErr == nil {
		apiErr = apierr.New(http.StatusInternalServerError, "internal", nil)
	}
	msg := "unknown error"
	if apiErr.Err != nil {
		msg = apiErr.Err.Error()
	}
	c.AbortWithStatusJSON(apiErr.Status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    apiErr.Code,
			Details: apiErr.Details,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
