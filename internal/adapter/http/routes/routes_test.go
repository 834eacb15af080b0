package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"agenda_tecnica/internal/adapter/http/handlers"
	"agenda_tecnica/internal/adapter/http/handlers/mocks"
	"agenda_tecnica/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPingRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	addPingRoutes(r.Group("/v1"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	if w.Code != http.StatusOK || w.Body.String() != `{"message":"pong"}` {
		t.Fatalf("unexpected ping response %d %s", w.Code, w.Body.String())
	}
}

func TestActividadRoutes_ResumenIsNotAnID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIActividadUseCase(ctrl)

	r := gin.New()
	addActividadRoutes(r.Group("/v1"), handlers.NewActividadHandler(uc))

	uc.EXPECT().Resumen(gomock.Any(), "all").Return(entities.Resumen{Fecha: "all"}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/actividades/resumen?fecha=all", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestReportRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReportUseCase(ctrl)

	r := gin.New()
	addReportRoutes(r.Group("/v1"), handlers.NewReportHandler(uc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/reportes/ruta?formato=gif", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
