package gin

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HandlerFunc = gin.HandlerFunc
type Engine = gin.Engine

func New(middlewares ...HandlerFunc) *Engine {
	e := gin.New()
	e.Use(middlewares...)
	return e
}

func Logger() HandlerFunc {
	return gin.Logger()
}

func Recovery() HandlerFunc {
	return gin.Recovery()
}

// RequestID propagates the X-Request-Id header from the request to
// the response, minting a fresh UUID when the caller sent none.
func RequestID() HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-Id")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-Id", rid)
		c.Next()
	}
}
