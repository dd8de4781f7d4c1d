package middleware

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/kbukum/restkit/errors"
)

// AbortWithError stops the handler chain and writes err as an ErrorResponse.
// Errors that are not AppErrors are reported as internal errors.
func AbortWithError(c *gin.Context, err error) {
	appErr := apperrors.Wrap(err)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
}
