package response

import "github.com/gin-gonic/gin"

// Success writes the uniform {success, message, data} envelope.
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// Error writes the failure envelope. Data is omitted on purpose: error
// payloads never carry entity fields.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
		"details": details,
	})
}
