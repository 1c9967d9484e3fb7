package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// InternalErrorMessage is the sanitized catch-all body. Internal detail is
// logged server-side and never reaches the client.
const InternalErrorMessage = "Something went wrong, try again later."

// ErrorHandler converts panics into the generic 500 payload
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("Error: %v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"status":  "fail",
					"message": InternalErrorMessage,
				})
			}
		}()

		c.Next()
	}
}

// InternalError writes the generic 500 payload for an unanticipated error,
// logging the real cause first
func InternalError(c *gin.Context, err error) {
	log.Printf("Error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "fail",
		"message": InternalErrorMessage,
	})
}
