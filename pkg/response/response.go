package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"report-srv/pkg/discord"
	pkgErrors "report-srv/pkg/errors"
)

// Resp is the envelope every handler returns.
type Resp struct {
	ErrorCode int         `json:"error_code"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
}

// OK writes a 200 response with the given data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Error writes the response for err. Known HTTPErrors map to a 400 with
// their code and message. Anything else is treated as an unexpected server
// error: it is reported to Discord and returned as a 500.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	if d != nil {
		go d.ReportBug(c.Copy(), fmt.Sprintf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err))
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}

// ErrorWithStatus writes err with an explicit HTTP status. Handlers use it
// when a domain error maps to something other than 400.
func ErrorWithStatus(c *gin.Context, status int, err error) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		c.JSON(status, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	c.JSON(status, Resp{
		ErrorCode: status,
		Message:   http.StatusText(status),
	})
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// PanicError reports a recovered panic to Discord and writes a 500.
func PanicError(c *gin.Context, recovered interface{}, d discord.IDiscord) {
	if d != nil {
		go d.ReportBug(c.Copy(), fmt.Sprintf("panic at %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered))
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}
