package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"agenda_tecnica/internal/domain/entities"
	mock_interfaces "agenda_tecnica/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// 2026-10-15 03:00 UTC is still 2026-10-14 in Mexico City.
var fixedNow = time.Date(2026, 10, 15, 3, 0, 0, 0, time.UTC)

var mexico = time.FixedZone("CST", -6*3600)

func newTestUseCase(repo *mock_interfaces.MockIActividadRepository, cache *mock_interfaces.MockIActividadListCache) *ActividadUseCase {
	var uc *ActividadUseCase
	if cache == nil {
		uc = NewActividadUseCase(repo, nil, mexico, nil)
	} else {
		uc = NewActividadUseCase(repo, cache, mexico, nil)
	}
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestActividadUseCase_Create(t *testing.T) {
	t.Run("defaults are filled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActividadRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Actividad{})).DoAndReturn(
			func(_ context.Context, a entities.Actividad) (entities.Actividad, error) {
				if a.ID != "" {
					t.Fatalf("id must be assigned by the store, got %q", a.ID)
				}
				a.ID = "act-1"
				return a, nil
			},
		)

		got, err := uc.Create(context.Background(), NewActividad{Cliente: "Acme", Direccion: "1 Main St", Costo: "500"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "act-1" || got.Tipo != entities.TipoSoporte || got.Estado != entities.EstadoPendiente {
			t.Fatalf("unexpected actividad: %+v", got)
		}
		if got.AssignedTo != entities.PorAsignar || got.CreatedBy != entities.CreadoPorOficina {
			t.Fatalf("unexpected assignment defaults: %+v", got)
		}
		if got.Fecha != "2026-10-14" {
			t.Fatalf("expected today in the configured timezone, got %s", got.Fecha)
		}
		if !got.CreatedAt.Equal(fixedNow) || !got.UpdatedAt.Equal(fixedNow) {
			t.Fatalf("expected timestamps")
		}
	})

	t.Run("provided fecha is preserved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActividadRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Actividad) (entities.Actividad, error) {
				a.ID = "act-2"
				return a, nil
			},
		)

		got, err := uc.Create(context.Background(), NewActividad{Cliente: "Acme", Fecha: "2026-12-01", Tipo: "fibra", Estado: "terminado", AssignedTo: "Jairo"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Fecha != "2026-12-01" || got.Tipo != entities.TipoFibra || got.Estado != entities.EstadoFinalizado || got.AssignedTo != "Jairo" {
			t.Fatalf("unexpected actividad: %+v", got)
		}
	})

	t.Run("legacy fecha is normalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActividadRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Actividad) (entities.Actividad, error) { return a, nil },
		)

		got, err := uc.Create(context.Background(), NewActividad{Cliente: "Acme", Fecha: "3/2/2026"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Fecha != "2026-02-03" {
			t.Fatalf("expected 2026-02-03, got %s", got.Fecha)
		}
	})

	invalid := map[string]NewActividad{
		"missing cliente":  {Cliente: "   "},
		"unknown tipo":     {Cliente: "Acme", Tipo: "REPARTO"},
		"unknown estado":   {Cliente: "Acme", Estado: "PERDIDO"},
		"bad fecha":        {Cliente: "Acme", Fecha: "mañana"},
		"costo not number": {Cliente: "Acme", Costo: "quinientos"},
		"negative costo":   {Cliente: "Acme", Costo: "-10"},
		"unknown tecnico":  {Cliente: "Acme", AssignedTo: "Pedro"},
	}
	for name, in := range invalid {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIActividadRepository(ctrl)
			uc := newTestUseCase(repo, nil)

			_, err := uc.Create(context.Background(), in)
			if !errors.Is(err, ErrInvalidActividad) {
				t.Fatalf("expected ErrInvalidActividad, got %v", err)
			}
		})
	}

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActividadRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Actividad{}, errors.New("connection refused"))

		_, err := uc.Create(context.Background(), NewActividad{Cliente: "Acme"})
		if !errors.Is(err, ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
	})

	t.Run("invalidates the list cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActividadRepository(ctrl)
		cache := mock_interfaces.NewMockIActividadListCache(ctrl)
		uc := newTestUseCase(repo, cache)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Actividad{ID: "act-1"}, nil)
		cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		if _, err := uc.Create(context.Background(), NewActividad{Cliente: "Acme"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestActividadUseCase_List(t *testing.T) {
	t.Run("empty fecha means today", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActividadRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().List(gomock.Any(), entities.ListFilter{Fecha: "2026-10-14"}).Return(nil, nil)

		got, err := uc.List(context.Background(), entities.ListFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", got)
		}
	})

	t.Run("all removes the date restriction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActividadRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().List(gomock.Any(), entities.ListFilter{Fecha: entities.FechaTodas, AssignedTo: "Jairo"}).Return([]entities.Actividad{
			{ID: "a", Fecha: "2026-10-01", AssignedTo: "Jairo"},
			{ID: "b", Fecha: "2026-10-14", AssignedTo: "Jairo"},
		}, nil)

		got, err := uc.List(context.Background(), entities.ListFilter{Fecha: "all", AssignedTo: " Jairo "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 actividades, got %d", len(got))
		}
	})

	t.Run("specific fecha with creator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActividadRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().List(gomock.Any(), entities.ListFilter{Fecha: "2026-10-01", CreatedBy: "Dina"}).Return([]entities.Actividad{}, nil)

		if _, err := uc.List(context.Background(), entities.ListFilter{Fecha: "2026-10-01", CreatedBy: "Dina"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid fecha", func(t *testing.T) {
		uc := newTestUseCase(nil, nil)
		_, err := uc.List(context.Background(), entities.ListFilter{Fecha: "2026-13-40"})
		if !errors.Is(err, ErrInvalidActividad) {
			t.Fatalf("expected ErrInvalidActividad, got %v", err)
		}
	})

	t.Run("newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActividadRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		t0 := fixedNow.Add(-time.Hour)
		repo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entities.Actividad{
			{ID: "old", CreatedAt: t0},
			{ID: "new", CreatedAt: t0.Add(30 * time.Minute)},
			{ID: "tie-a", CreatedAt: t0.Add(10 * time.Minute)},
			{ID: "tie-b", CreatedAt: t0.Add(10 * time.Minute)},
		}, nil)

		got, err := uc.List(context.Background(), entities.ListFilter{Fecha: "all"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"new", "tie-b", "tie-a", "old"}
		for i, id := range want {
			if got[i].ID != id {
				t.Fatalf("position %d: expected %s, got %s", i, id, got[i].ID)
			}
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActividadRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := uc.List(context.Background(), entities.ListFilter{})
		if !errors.Is(err, ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
	})
}

func TestActividadUseCase_ListCache(t *testing.T) {
	filter := entities.ListFilter{Fecha: "2026-10-14", AssignedTo: "Jairo"}

	t.Run("hit skips the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActividadRepository(ctrl)
		cache := mock_interfaces.NewMockIActividadListCache(ctrl)
		uc := newTestUseCase(repo, cache)

		cache.EXPECT().Lookup(gomock.Any(), filter).Return([]entities.Actividad{{ID: "cached"}}, true, "tok", nil)

		got, err := uc.List(context.Background(), entities.ListFilter{AssignedTo: "Jairo"})
		if err != nil || len(got) != 1 || got[0].ID != "cached" {
			t.Fatalf("unexpected result %v %v", got, err)
		}
	})

	t.Run("miss stores under the lookup token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActividadRepository(ctrl)
		cache := mock_interfaces.NewMockIActividadListCache(ctrl)
		uc := newTestUseCase(repo, cache)

		items := []entities.Actividad{{ID: "a"}}
		cache.EXPECT().Lookup(gomock.Any(), filter).Return(nil, false, "g3:key", nil)
		repo.EXPECT().List(gomock.Any(), filter).Return(items, nil)
		cache.EXPECT().Store(gomock.Any(), "g3:key", items).Return(nil)

		if _, err := uc.List(context.Background(), filter); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cache errors never fail the request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActividadRepository(ctrl)
		cache := mock_interfaces.NewMockIActividadListCache(ctrl)
		uc := newTestUseCase(repo, cache)

		cache.EXPECT().Lookup(gomock.Any(), filter).Return(nil, false, "", errors.New("redis down"))
		repo.EXPECT().List(gomock.Any(), filter).Return([]entities.Actividad{{ID: "a"}}, nil)

		got, err := uc.List(context.Background(), filter)
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result %v %v", got, err)
		}
	})
}

func TestActividadUseCase_Update(t *testing.T) {
	stored := entities.Actividad{
		ID:         "act-1",
		Tipo:       entities.TipoInstalacion,
		Cliente:    "Acme",
		Direccion:  "1 Main St",
		Costo:      "500",
		Estado:     entities.EstadoPendiente,
		AssignedTo: "Jairo",
		CreatedBy:  "OFICINA",
		Fecha:      "2026-10-14",
		CreatedAt:  fixedNow.Add(-time.Hour),
		UpdatedAt:  fixedNow.Add(-time.Hour),
	}

	t.Run("estado only leaves other fields unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActividadRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "act-1").Return(stored, nil)
		repo.EXPECT().Replace(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Actividad) (entities.Actividad, error) { return a, nil },
		)

		got, err := uc.UpdateEstado(context.Background(), "act-1", "FINALIZADO")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := stored
		want.Estado = entities.EstadoFinalizado
		want.UpdatedAt = fixedNow
		if got != want {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("partial fields are merged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActividadRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		horario, notas := "16:00", "Tocar timbre"
		repo.EXPECT().GetByID(gomock.Any(), "act-1").Return(stored, nil)
		repo.EXPECT().Replace(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Actividad) (entities.Actividad, error) { return a, nil },
		)

		got, err := uc.Update(context.Background(), "act-1", entities.ActividadPatch{Horario: &horario, Notas: &notas})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Horario != "16:00" || got.Notas != "Tocar timbre" || got.Cliente != "Acme" || got.Estado != entities.EstadoPendiente {
			t.Fatalf("unexpected merge: %+v", got)
		}
	})

	t.Run("empty patch does not write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActividadRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "act-1").Return(stored, nil)

		got, err := uc.Update(context.Background(), "act-1", entities.ActividadPatch{})
		if err != nil || got != stored {
			t.Fatalf("unexpected result %+v %v", got, err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActividadRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Actividad{}, nil)

		_, err := uc.UpdateEstado(context.Background(), "missing", "EN_RUTA")
		if !errors.Is(err, ErrActividadNotFound) {
			t.Fatalf("expected ErrActividadNotFound, got %v", err)
		}
	})

	t.Run("deleted between read and write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActividadRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "act-1").Return(stored, nil)
		repo.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(entities.Actividad{}, nil)

		_, err := uc.UpdateEstado(context.Background(), "act-1", "EN_RUTA")
		if !errors.Is(err, ErrActividadNotFound) {
			t.Fatalf("expected ErrActividadNotFound, got %v", err)
		}
	})

	t.Run("merged record is validated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActividadRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		blank := " "
		repo.EXPECT().GetByID(gomock.Any(), "act-1").Return(stored, nil)

		_, err := uc.Update(context.Background(), "act-1", entities.ActividadPatch{Cliente: &blank})
		if !errors.Is(err, ErrInvalidActividad) {
			t.Fatalf("expected ErrInvalidActividad, got %v", err)
		}
	})

	t.Run("empty estado", func(t *testing.T) {
		uc := newTestUseCase(nil, nil)
		_, err := uc.UpdateEstado(context.Background(), "act-1", "")
		if !errors.Is(err, ErrInvalidActividad) {
			t.Fatalf("expected ErrInvalidActividad, got %v", err)
		}
	})

	t.Run("former technician stays editable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActividadRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		legacy := stored
		legacy.AssignedTo = "Ernesto"
		repo.EXPECT().GetByID(gomock.Any(), "act-1").Return(legacy, nil)
		repo.EXPECT().Replace(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Actividad) (entities.Actividad, error) { return a, nil },
		)

		if _, err := uc.UpdateEstado(context.Background(), "act-1", "EN_RUTA"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestActividadUseCase_Remove(t *testing.T) {
	t.Run("removed record is not listed again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActividadRepository(ctrl)
		cache := mock_interfaces.NewMockIActividadListCache(ctrl)
		uc := newTestUseCase(repo, cache)

		gomock.InOrder(
			repo.EXPECT().Delete(gomock.Any(), "act-1").Return(true, nil),
			cache.EXPECT().Invalidate(gomock.Any()).Return(nil),
			cache.EXPECT().Lookup(gomock.Any(), entities.ListFilter{Fecha: "all"}).Return(nil, false, "g2", nil),
			repo.EXPECT().List(gomock.Any(), entities.ListFilter{Fecha: "all"}).Return([]entities.Actividad{{ID: "act-2"}}, nil),
			cache.EXPECT().Store(gomock.Any(), "g2", gomock.Any()).Return(nil),
		)

		if err := uc.Remove(context.Background(), "act-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := uc.List(context.Background(), entities.ListFilter{Fecha: "all"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, a := range got {
			if a.ID == "act-1" {
				t.Fatalf("removed actividad listed again")
			}
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActividadRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().Delete(gomock.Any(), "missing").Return(false, nil)

		if err := uc.Remove(context.Background(), "missing"); !errors.Is(err, ErrActividadNotFound) {
			t.Fatalf("expected ErrActividadNotFound, got %v", err)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		uc := newTestUseCase(nil, nil)
		if err := uc.Remove(context.Background(), "  "); !errors.Is(err, ErrInvalidActividadID) {
			t.Fatalf("expected ErrInvalidActividadID, got %v", err)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActividadRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().Delete(gomock.Any(), "act-1").Return(false, errors.New("db"))

		if err := uc.Remove(context.Background(), "act-1"); !errors.Is(err, ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
	})
}

func TestActividadUseCase_Resumen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIActividadRepository(ctrl)
	uc := newTestUseCase(repo, nil)

	repo.EXPECT().List(gomock.Any(), entities.ListFilter{Fecha: "2026-10-14"}).Return([]entities.Actividad{
		{ID: "1", Estado: entities.EstadoFinalizado, AssignedTo: "Jairo"},
		{ID: "2", Estado: "TERMINADO", AssignedTo: "Jairo"},
		{ID: "3", Estado: entities.EstadoPendiente, AssignedTo: "Armando"},
	}, nil)

	got, err := uc.Resumen(context.Background(), "hoy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Fecha != "2026-10-14" || got.Total != 3 || got.Finalizados != 2 || got.Pendientes != 1 || got.Eficiencia != 67 {
		t.Fatalf("unexpected resumen: %+v", got)
	}
	if got.PorTecnico["Jairo"] != 2 || got.PorEstado[entities.EstadoFinalizado] != 2 {
		t.Fatalf("unexpected breakdown: %+v", got)
	}
}

func TestSummarize_Empty(t *testing.T) {
	got := Summarize("all", nil)
	if got.Total != 0 || got.Eficiencia != 0 {
		t.Fatalf("unexpected resumen: %+v", got)
	}
}

func TestParseCosto(t *testing.T) {
	for _, ok := range []string{"0", "500", "$1,250.50", " 99.9 "} {
		if _, err := ParseCosto(ok); err != nil {
			t.Fatalf("ParseCosto(%q): %v", ok, err)
		}
	}
	for _, bad := range []string{"", "abc", "-1"} {
		if _, err := ParseCosto(bad); err == nil {
			t.Fatalf("ParseCosto(%q): expected error", bad)
		}
	}
}
