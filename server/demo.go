package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/kbukum/restkit/auth/authctx"
	apperrors "github.com/kbukum/restkit/errors"
	"github.com/kbukum/restkit/server/middleware"
)

const (
	contentTypeJSON  = "application/json; charset=utf-8"
	echoCacheControl = "max-age=60"
)

// Demo serves the echo routes the REST client is exercised against.
type Demo struct {
	auth gin.HandlerFunc
}

// NewDemo creates the demo handlers. authMW guards /private routes.
func NewDemo(authMW gin.HandlerFunc) *Demo {
	return &Demo{auth: authMW}
}

// Register mounts the demo routes on r.
func (d *Demo) Register(r gin.IRouter) {
	r.GET("/echo", d.Hello)
	r.HEAD("/echo", d.Hello)
	r.POST("/echo", d.Echo)
	r.PUT("/echo", d.Echo)
	r.PATCH("/echo", d.Echo)
	r.DELETE("/echo", d.Remove)
	r.POST("/items", d.Create)
	r.GET("/gone", d.Gone)
	r.DELETE("/gone", d.Gone)
	r.GET("/status/:code", d.Status)

	private := r.Group("/private")
	if d.auth != nil {
		private.Use(d.auth)
	}
	private.GET("/whoami", d.WhoAmI)
}

// Hello answers GET and HEAD with a cacheable greeting. Gin drops the body for HEAD.
func (d *Demo) Hello(c *gin.Context) {
	c.Header("Cache-Control", echoCacheControl)
	c.JSON(http.StatusOK, gin.H{"hello": "world"})
}

// Echo returns the JSON request body unchanged.
func (d *Demo) Echo(c *gin.Context) {
	body, ok := readJSON(c)
	if !ok {
		return
	}
	c.Data(http.StatusOK, contentTypeJSON, body)
}

// Create echoes the body with 201 and the Location of a new item.
func (d *Demo) Create(c *gin.Context) {
	body, ok := readJSON(c)
	if !ok {
		return
	}
	c.Header("Location", "/items/"+uuid.NewString())
	c.Data(http.StatusCreated, contentTypeJSON, body)
}

// Remove always answers 204.
func (d *Demo) Remove(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Gone always answers 404.
func (d *Demo) Gone(c *gin.Context) {
	middleware.AbortWithError(c, apperrors.NotFound("resource", c.Request.URL.Path))
}

// Status answers with the status code in the path, 200 through 599.
func (d *Demo) Status(c *gin.Context) {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil || code < 200 || code > 599 {
		middleware.AbortWithError(c, apperrors.InvalidInput("code", "must be an integer between 200 and 599"))
		return
	}
	switch code {
	case http.StatusNoContent, http.StatusNotModified:
		c.Status(code)
	case http.StatusForbidden:
		middleware.AbortWithError(c, apperrors.Forbidden(""))
	default:
		c.JSON(code, gin.H{"code": code, "text": http.StatusText(code)})
	}
}

// WhoAmI returns the authenticated principal.
func (d *Demo) WhoAmI(c *gin.Context) {
	p, ok := authctx.PrincipalFrom(c.Request.Context())
	if !ok {
		middleware.AbortWithError(c, apperrors.Unauthorized(""))
		return
	}
	c.JSON(http.StatusOK, p)
}

// readJSON reads the request body and rejects anything that is not JSON.
func readJSON(c *gin.Context) ([]byte, bool) {
	body, err := c.GetRawData()
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			middleware.AbortWithError(c, apperrors.InvalidInput("body", fmt.Sprintf("exceeds %d bytes", maxErr.Limit)))
			return nil, false
		}
		middleware.AbortWithError(c, apperrors.InvalidInput("body", "unreadable"))
		return nil, false
	}
	if !jsoniter.Valid(body) {
		middleware.AbortWithError(c, apperrors.InvalidInput("body", "must be valid JSON"))
		return nil, false
	}
	return body, true
}
