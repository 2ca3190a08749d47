package response

import (
	"net/http"

	"mango-alerts-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultErrorMessage masks internal failures from clients.
	DefaultErrorMessage = "Something went wrong"
	MessageSuccess      = "success"

	ValidationErrorCode = 400
	InternalErrorCode   = 500
)

// Resp is the uniform JSON envelope for every endpoint.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

// ErrorMapping maps domain sentinel errors to HTTP errors.
type ErrorMapping map[error]*errors.HTTPError

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

// parseError maps an error to a status code and response body. Unknown
// errors are masked: the original service reported every handler failure
// as 400 with a generic message, and that contract is kept.
func parseError(err error) (int, Resp) {
	switch parsedErr := err.(type) {
	case *errors.ValidationError:
		return http.StatusBadRequest, Resp{
			ErrorCode: ValidationErrorCode,
			Message:   parsedErr.Error(),
		}
	case *errors.HTTPError:
		statusCode := parsedErr.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusBadRequest
		}
		return statusCode, Resp{
			ErrorCode: parsedErr.Code,
			Message:   parsedErr.Message,
		}
	default:
		return http.StatusBadRequest, Resp{
			ErrorCode: InternalErrorCode,
			Message:   DefaultErrorMessage,
		}
	}
}

// Error sends the error response for err.
func Error(c *gin.Context, err error) {
	statusCode, resp := parseError(err)
	c.JSON(statusCode, resp)
}

// HttpError sends the response for an *errors.HTTPError.
func HttpError(c *gin.Context, err *errors.HTTPError) {
	statusCode, resp := parseError(err)
	c.JSON(statusCode, resp)
}

// ErrorWithMap looks up err in eMap and sends the corresponding
// HTTPError, falling back to Error.
func ErrorWithMap(c *gin.Context, err error, eMap ErrorMapping) {
	if httpErr, ok := eMap[err]; ok {
		Error(c, httpErr)
		return
	}
	Error(c, err)
}

// PanicError handles panic recovery and sends an error response.
func PanicError(c *gin.Context, rec any) {
	if errVal, ok := rec.(error); ok {
		statusCode, resp := parseError(errVal)
		c.JSON(statusCode, resp)
		return
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalErrorCode,
		Message:   DefaultErrorMessage,
	})
}
