package routes

import (
	"agenda_tecnica/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathActividades = "/actividades"
	PathReportes    = "/reportes"
	PathApp         = "/app"
)

func addActividadRoutes(rg *gin.RouterGroup, h *handlers.ActividadHandler) {
	actividades := rg.Group(PathActividades)
	{
		actividades.GET("", h.List)
		actividades.POST("", h.Create)
		actividades.GET("/resumen", h.Resumen)
		actividades.GET("/:id", h.GetByID)
		actividades.PUT("/:id", h.Update)
		actividades.PATCH("/:id/estado", h.UpdateEstado)
		actividades.DELETE("/:id", h.Delete)
	}
}

func addReportRoutes(rg *gin.RouterGroup, h *handlers.ReportHandler) {
	reportes := rg.Group(PathReportes)
	{
		reportes.GET("/ruta", h.Download)
		reportes.POST("/ruta/compartir", h.Share)
	}
}

// addViewRoutes mounts the HTML pages. Forms only speak GET and POST, so
// edits and deletes are POST sub-resources here.
func addViewRoutes(rg *gin.RouterGroup, h *handlers.ViewHandler) {
	rg.GET("", h.Dashboard)
	rg.GET("/agenda", h.Agenda)
	rg.GET("/soporte", h.Soporte)
	rg.GET("/actividades/nueva", h.NewForm)
	rg.POST("/actividades", h.Create)
	rg.GET("/actividades/:id/editar", h.EditForm)
	rg.POST("/actividades/:id", h.Update)
	rg.POST("/actividades/:id/estado", h.UpdateEstado)
	rg.POST("/actividades/:id/eliminar", h.Delete)
}
