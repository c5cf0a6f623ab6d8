package http

import (
	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
)

const jsonContentType = "application/json; charset=utf-8"

// respondJSON writes v as JSON using sonic, falling back to the stdlib
// encoder when marshaling fails.
func respondJSON(c *gin.Context, status int, v interface{}) {
	data, err := sonic.Marshal(v)
	if err != nil {
		c.JSON(status, v)
		return
	}
	c.Data(status, jsonContentType, data)
}
