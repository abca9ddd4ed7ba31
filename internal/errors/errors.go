package errors

import (
	"fmt"
	"net/http"
)

// AppError representa un error de aplicación con código HTTP y contexto
type AppError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	Internal   error  `json:"-"` // No se expone al cliente
	StatusCode int    `json:"-"` // HTTP status code
}

func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Internal)
	}
	return e.Message
}

// NewAppError crea un nuevo error de aplicación
func NewAppError(statusCode int, code int, message string, internal error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Internal:   internal,
		StatusCode: statusCode,
	}
}

// WithDetails agrega detalles adicionales al error
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// Errores predefinidos
var (
	// Errores de regla de negocio (4xx): el mensaje se devuelve al caller
	ErrBusinessRule = func(message string, err error) *AppError {
		return NewAppError(http.StatusBadRequest, 40000, message, err)
	}

	// Errores inesperados (5xx): el detalle nunca se expone al caller
	ErrInternalServer = func(details string, err error) *AppError {
		return NewAppError(http.StatusInternalServerError, 50000, "Internal Server Error", err).
			WithDetails(details)
	}
)

// IsBusinessRule verifica si un error es una violación de regla de negocio
func IsBusinessRule(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.StatusCode >= 400 && appErr.StatusCode < 500
	}
	return false
}

// GetStatusCode obtiene el código HTTP de un error
func GetStatusCode(err error) int {
	if appErr, ok := err.(*AppError); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
