package service

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/plannerpro/generator-service/internal/errors"
	"github.com/plannerpro/generator-service/internal/models"
)

func TestGenerateVehiclesPlates(t *testing.T) {
	g := newTestGenerator()
	payload := &models.VehiclePayload{
		Groups: []models.VehicleGroup{
			{Type: "Camion", Count: 2, Origin: "CD Sur"},
		},
	}

	result, err := g.GenerateVehicles(payload, seededRand())
	require.NoError(t, err)
	assert.Equal(t, "flota_vehiculos.xlsx", result.Filename)

	rows := readSheet(t, result.File, "Flota Generada")
	require.Len(t, rows, 3)

	idxPlate := headerIndex(t, rows[0], "PLACA")
	assert.Equal(t, "CAMI01", cell(rows[1], idxPlate))
	assert.Equal(t, "CAMI02", cell(rows[2], idxPlate))
}

func TestGenerateVehiclesSequenceContiguousAcrossGroups(t *testing.T) {
	g := newTestGenerator()
	payload := &models.VehiclePayload{
		Groups: []models.VehicleGroup{
			{Type: "Camion", Count: 2},
			{Type: "Moto", Count: 1},
			{Type: "Camion", Count: 2},
		},
	}

	result, err := g.GenerateVehicles(payload, seededRand())
	require.NoError(t, err)

	rows := readSheet(t, result.File, "Flota Generada")
	idxPlate := headerIndex(t, rows[0], "PLACA")

	var plates []string
	for _, row := range rows[1:] {
		plates = append(plates, cell(row, idxPlate))
	}
	// la secuencia por prefijo es contigua a través de los grupos
	assert.Equal(t, []string{"CAMI01", "CAMI02", "MOTO01", "CAMI03", "CAMI04"}, plates)
}

func TestGenerateVehiclesUnknownTypeFallback(t *testing.T) {
	g := newTestGenerator()
	payload := &models.VehiclePayload{
		Groups: []models.VehicleGroup{
			{Type: "Furgoneta", Count: 1},
			{Type: "Van", Count: 1},
		},
	}

	result, err := g.GenerateVehicles(payload, seededRand())
	require.NoError(t, err)

	rows := readSheet(t, result.File, "Flota Generada")
	idxPlate := headerIndex(t, rows[0], "PLACA")
	assert.Equal(t, "FURG01", cell(rows[1], idxPlate))
	assert.Equal(t, "VAN01", cell(rows[2], idxPlate))
}

func TestGenerateVehiclesMultibyteTypePrefix(t *testing.T) {
	g := newTestGenerator()
	payload := &models.VehiclePayload{
		Groups: []models.VehicleGroup{
			{Type: "Ñandú Cargo", Count: 1},
		},
	}

	result, err := g.GenerateVehicles(payload, seededRand())
	require.NoError(t, err)

	rows := readSheet(t, result.File, "Flota Generada")
	idxPlate := headerIndex(t, rows[0], "PLACA")

	// el truncado del prefijo es por runas, no por bytes
	plate := cell(rows[1], idxPlate)
	assert.Equal(t, "ÑAND01", plate)
	assert.True(t, utf8.ValidString(plate))
}

func TestGenerateVehiclesGroupValuesAndDefaults(t *testing.T) {
	g := newTestGenerator()
	payload := &models.VehiclePayload{
		Groups: []models.VehicleGroup{
			{Type: "Camion", Count: 1, Capacity1: 1000.5, Capacity2: 500.25,
				Origin: "CD Test", StartTime: "08:00", EndTime: "18:00"},
		},
	}

	result, err := g.GenerateVehicles(payload, seededRand())
	require.NoError(t, err)

	rows := readSheet(t, result.File, "Flota Generada")
	headers := rows[0]
	row := rows[1]

	assert.Equal(t, "1000.5", cell(row, headerIndex(t, headers, "CAPACIDAD UNO")))
	assert.Equal(t, "500.25", cell(row, headerIndex(t, headers, "CAPACIDAD DOS")))
	assert.Equal(t, "CD Test", cell(row, headerIndex(t, headers, "ORIGEN")))
	assert.Equal(t, "08:00", cell(row, headerIndex(t, headers, "HORA INICIO JORNADA")))
	assert.Empty(t, cell(row, headerIndex(t, headers, "DESTINO")))

	// constantes operacionales, no configurables por el caller
	assert.Equal(t, "0.25", cell(row, headerIndex(t, headers, "PERIODO DE RECARGA [HORAS]")))
	assert.Equal(t, "Normal", cell(row, headerIndex(t, headers, "VELOCIDAD VEHICULO")))
	assert.Equal(t, "5500000", cell(row, headerIndex(t, headers, "MAXIMO DE DINERO")))
	assert.Equal(t, "1", cell(row, headerIndex(t, headers, "NO CONSIDERAR RETORNO AL CD")))
	assert.Equal(t, "1000", cell(row, headerIndex(t, headers, "COSTO POR SALIDA")))
}

func TestGenerateVehiclesTagValues(t *testing.T) {
	g := newTestGenerator()
	payload := &models.VehiclePayload{
		Groups: []models.VehicleGroup{{Type: "Bici", Count: 4}},
		Tags:   []models.Tag{{Header: "FLOTA", Values: []string{"Propia", "Externa"}}},
	}

	result, err := g.GenerateVehicles(payload, seededRand())
	require.NoError(t, err)

	rows := readSheet(t, result.File, "Flota Generada")
	idxFlota := headerIndex(t, rows[0], "FLOTA")
	for _, row := range rows[1:] {
		assert.Contains(t, []string{"Propia", "Externa"}, cell(row, idxFlota))
	}
}

func TestGenerateVehiclesEmptyGroups(t *testing.T) {
	g := newTestGenerator()

	_, err := g.GenerateVehicles(&models.VehiclePayload{}, seededRand())
	require.Error(t, err)
	assert.True(t, apperrors.IsBusinessRule(err))
	assert.Equal(t, "No vehicle groups provided", err.(*apperrors.AppError).Message)
}
