package repository

import (
	"strings"

	"agenda_tecnica/internal/domain/entities"
)

// Documents written before the enums were fixed may carry lower-case or
// legacy values; both backends read them through these helpers.

var accentFolder = strings.NewReplacer("Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U")

func normalizeTipo(s string) entities.Tipo {
	t := entities.Tipo(accentFolder.Replace(strings.ToUpper(strings.TrimSpace(s))))
	if t == "" {
		return entities.TipoSoporte
	}
	return t
}

func normalizeEstado(s string) entities.Estado {
	e := entities.NormalizeEstado(s)
	if e == "" {
		return entities.EstadoPendiente
	}
	return e
}

func defaultString(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
