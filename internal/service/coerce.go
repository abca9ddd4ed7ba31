package service

import (
	"strconv"
	"strings"
)

// Los clientes mandan números como number o como string según la versión del
// frontend. Estas coerciones son deliberadamente tolerantes: un campo
// opcional malformado cae a su default en vez de rechazar el request entero.

func intOr(v any, fallback int) int {
	switch x := v.(type) {
	case nil:
		return fallback
	case float64:
		return int(x)
	case int:
		return x
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(x)); err == nil {
			return n
		}
	}
	return fallback
}

func floatOr(v any, fallback float64) float64 {
	if f := floatPtr(v); f != nil {
		return *f
	}
	return fallback
}

// floatPtr devuelve nil cuando el valor está ausente o no es parseable;
// se usa para los bounds de capacidad 2, cuya presencia es opcional.
func floatPtr(v any) *float64 {
	switch x := v.(type) {
	case float64:
		return &x
	case int:
		f := float64(x)
		return &f
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(x), 64); err == nil {
			return &f
		}
	}
	return nil
}

// stringOr rinde el valor como texto para la celda; números sin decimales
// sobrantes. Vacío o no representable cae al fallback.
func stringOr(v any, fallback string) string {
	switch x := v.(type) {
	case string:
		if x != "" {
			return x
		}
	case float64:
		if x != 0 {
			return strconv.FormatFloat(x, 'f', -1, 64)
		}
	case int:
		if x != 0 {
			return strconv.Itoa(x)
		}
	}
	return fallback
}
