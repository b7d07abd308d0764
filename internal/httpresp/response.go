package httpresp

import (
	"time"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, body gin.H) {
	write(c, 200, body)
}

func Created(c *gin.Context, body gin.H) {
	write(c, 201, body)
}

// List writes a collection under its own key, the shape the frontend
// stores expect: {success, <key>: [...], count, timestamp}.
func List[T any](c *gin.Context, key string, items []T) {
	write(c, 200, gin.H{
		key:         items,
		"count":     len(items),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func write(c *gin.Context, status int, body gin.H) {
	out := gin.H{"success": true}
	for k, v := range body {
		out[k] = v
	}
	c.JSON(status, out)
}
