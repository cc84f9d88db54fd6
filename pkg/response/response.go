package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "fridge-inventory/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error renders err. HTTPErrors keep their status, code and message; anything
// else is reported as a generic 500 so internal details never leak.
func Error(c *gin.Context, err error) {
	httpErr, ok := pkgErrors.AsHTTPError(err)
	if !ok {
		InternalError(c)
		return
	}

	c.JSON(httpErr.Status(), Resp{
		ErrorCode: httpErr.Code,
		Message:   httpErr.Message,
	})
}

// ValidationError sends a 400 with the binding failure attached.
func ValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: ValidationErrorCode,
		Message:   "Invalid request",
		Errors:    err.Error(),
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Resp{
		ErrorCode: 401,
		Message:   "Unauthorized",
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: 429,
		Message:   "Too many requests",
	})
}
