package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "agenda_tecnica/internal/adapter/http/dto/request"
	response "agenda_tecnica/internal/adapter/http/dto/response"
	"agenda_tecnica/internal/infrastructure/report"
	"agenda_tecnica/internal/usecase"
	"agenda_tecnica/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidReportFormat = pkg.NewDomainErrorSimple("INVALID_REPORT_FORMAT", "formato must be one of pdf, png, jpeg, webp", http.StatusBadRequest)

// ReportHandler exports the route sheet and support log.
type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// DownloadRuta godoc
// @Summary      Download the route sheet
// @Description  Renders the filtered activities as a PDF or image attachment.
// @Tags         reportes
// @Produce      application/pdf,image/png,image/jpeg,image/webp
// @Param        fecha        query  string  false  "YYYY-MM-DD, hoy or all"
// @Param        assigned_to  query  string  false  "technician name"
// @Param        created_by   query  string  false  "office agent"
// @Param        formato      query  string  false  "pdf (default), png, jpeg or webp"
// @Success      200  {file}    file
// @Failure      400  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /reportes/ruta [get]
func (h *ReportHandler) Download(c *gin.Context) {
	filter, format, ok := bindReportQuery(c)
	if !ok {
		return
	}

	rendered, err := h.usecase.Render(c.Request.Context(), filter.ToFilter(), format)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rendered.Filename))
	c.Data(http.StatusOK, rendered.ContentType, rendered.Body)
}

// ShareRuta godoc
// @Summary      Share the route sheet
// @Description  Uploads the rendered report and returns a time-limited download link.
// @Tags         reportes
// @Produce      json
// @Param        fecha        query  string  false  "YYYY-MM-DD, hoy or all"
// @Param        assigned_to  query  string  false  "technician name"
// @Param        created_by   query  string  false  "office agent"
// @Param        formato      query  string  false  "pdf (default), png, jpeg or webp"
// @Success      201  {object}  response.SharedReportResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /reportes/ruta/compartir [post]
func (h *ReportHandler) Share(c *gin.Context) {
	filter, format, ok := bindReportQuery(c)
	if !ok {
		return
	}

	shared, err := h.usecase.Share(c.Request.Context(), filter.ToFilter(), format)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSharedReport(shared))
}

func bindReportQuery(c *gin.Context) (request.ListActividadesQuery, report.Format, bool) {
	var q request.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return request.ListActividadesQuery{}, "", false
	}
	format, err := report.ParseFormat(q.Formato)
	if err != nil {
		c.JSON(errInvalidReportFormat.HTTPStatus, errInvalidReportFormat.ToHTTPError())
		return request.ListActividadesQuery{}, "", false
	}
	return q.ListActividadesQuery, format, true
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReportFormat):
		return errInvalidReportFormat
	case errors.Is(err, usecase.ErrReportSharingDisabled):
		return pkg.NewDomainErrorSimple("REPORT_SHARING_DISABLED", "Report sharing is not configured", http.StatusServiceUnavailable)
	default:
		return mapActividadError(err)
	}
}
