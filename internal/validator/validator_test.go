package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/plannerpro/generator-service/internal/errors"
	"github.com/plannerpro/generator-service/internal/models"
)

func TestFormatDeliveryDate(t *testing.T) {
	assert.Equal(t, "09/03/2025", FormatDeliveryDate("2025-03-09"))
	// lo no parseable pasa sin cambios
	assert.Equal(t, "pronto", FormatDeliveryDate("pronto"))
}

func TestValidateOrderRequest(t *testing.T) {
	err := ValidateOrderRequest(&models.OrderRequest{CTOrigen: "  "})
	require.Error(t, err)
	assert.True(t, apperrors.IsBusinessRule(err))

	assert.NoError(t, ValidateOrderRequest(&models.OrderRequest{CTOrigen: "CD Norte"}))
}

func TestValidateVehiclePayload(t *testing.T) {
	err := ValidateVehiclePayload(&models.VehiclePayload{})
	require.Error(t, err)

	assert.NoError(t, ValidateVehiclePayload(&models.VehiclePayload{
		Groups: []models.VehicleGroup{{Type: "Moto", Count: 1}},
	}))
}
