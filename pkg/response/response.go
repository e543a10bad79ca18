package response

import (
	"errors"
	"fmt"
	"net/http"

	pkgErrors "search-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

const (
	msgInternalServerError = "Internal server error"
	msgUnauthorized        = "Unauthorized"
)

// OK writes body with status 200.
func OK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// Error writes the failure envelope for err. An *HTTPError keeps its status and message;
// anything else becomes a 500. Details of 5xx errors are only exposed in debug mode.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = pkgErrors.NewHTTPError(http.StatusInternalServerError, msgInternalServerError).WithDetails(err.Error())
	}

	details := httpErr.Details
	if httpErr.StatusCode >= http.StatusInternalServerError && !gin.IsDebugging() {
		details = nil
	}

	c.JSON(httpErr.StatusCode, Resp{
		Success: false,
		Error:   httpErr.Message,
		Details: details,
	})
}

// Unauthorized writes a 401 envelope.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{Success: false, Error: msgUnauthorized})
}

// PanicError writes the 500 envelope for a recovered panic value.
func PanicError(c *gin.Context, recovered any) {
	var details any
	if gin.IsDebugging() {
		details = fmt.Sprint(recovered)
	}
	c.JSON(http.StatusInternalServerError, Resp{
		Success: false,
		Error:   msgInternalServerError,
		Details: details,
	})
}
