package validator

import (
	"strings"

	apperrors "github.com/plannerpro/generator-service/internal/errors"
	"github.com/plannerpro/generator-service/internal/models"
)

// ValidateOrderRequest aplica las reglas de negocio del request de órdenes.
// El código de origen es el único campo obligatorio; todo lo demás tiene
// defaults tolerantes.
func ValidateOrderRequest(req *models.OrderRequest) error {
	if strings.TrimSpace(req.CTOrigen) == "" {
		return apperrors.ErrBusinessRule("CT Origen is mandatory.", nil)
	}
	return nil
}

// ValidateVehiclePayload exige al menos un grupo de vehículos.
func ValidateVehiclePayload(payload *models.VehiclePayload) error {
	if len(payload.Groups) == 0 {
		return apperrors.ErrBusinessRule("No vehicle groups provided", nil)
	}
	return nil
}
