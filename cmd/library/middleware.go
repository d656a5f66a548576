package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestID tags every response with an X-Request-Id, minting one when the
// client didn't send it.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		c.Header("X-Request-Id", id)
		c.Next()
	}
}
