package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ShowHome responde el mensaje de vida del servicio.
func ShowHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "API E-commerce Mayorista funcionando correctamente"})
}
