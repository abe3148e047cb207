package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the standard API response envelope. Error is a plain string for
// most failures and a field-keyed message map for validation failures.
type Body struct {
	OK    bool        `json:"ok"`
	Data  interface{} `json:"data,omitempty"`
	Error interface{} `json:"error,omitempty"`
}

// OK sends a 200 JSON response. data may be nil for bare acknowledgements.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Body{OK: true, Data: data})
}

// BadRequest sends 400. err is either a message or a field error map.
func BadRequest(c *gin.Context, err interface{}) {
	c.JSON(http.StatusBadRequest, Body{OK: false, Error: err})
}

// Unauthorized sends 401.
func Unauthorized(c *gin.Context, err string) {
	c.JSON(http.StatusUnauthorized, Body{OK: false, Error: err})
}

// NotFound sends 404.
func NotFound(c *gin.Context, err string) {
	c.JSON(http.StatusNotFound, Body{OK: false, Error: err})
}

// Internal sends 500. Callers pass a generic message; the underlying error
// belongs in the server log, not in the response.
func Internal(c *gin.Context, err string) {
	c.JSON(http.StatusInternalServerError, Body{OK: false, Error: err})
}
