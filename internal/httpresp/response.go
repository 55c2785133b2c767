package httpresp

import "github.com/gin-gonic/gin"

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

// Detail responde uma mensagem simples, usada nas confirmações de delete.
func Detail(c *gin.Context, message string) {
	c.JSON(200, gin.H{"detail": message})
}
