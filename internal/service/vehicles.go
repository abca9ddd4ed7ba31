package service

import (
	"fmt"
	"math/rand"
	"strings"

	"go.uber.org/zap"

	"github.com/plannerpro/generator-service/internal/excel"
	"github.com/plannerpro/generator-service/internal/metrics"
	"github.com/plannerpro/generator-service/internal/models"
	"github.com/plannerpro/generator-service/internal/schema"
	"github.com/plannerpro/generator-service/internal/validator"
)

// Registro explícito de categorías de vehículo → prefijo de placa. Un tipo
// no registrado usa las primeras 4 letras en mayúscula, con contador propio.
var platePrefixes = map[string]string{
	"Moto":   "MOTO",
	"Auto":   "AUTO",
	"Camion": "CAMI",
	"Bici":   "BICI",
	"Otro":   "OTRO",
}

// Constantes operacionales del documento de flota: defaults de dominio que
// el motor de ruteo espera, no configurables por el caller.
var vehicleDefaults = map[string]string{
	"COSTO POR SALIDA":    "1000",
	"COSTO POR KILOMETRO": "333",
	"COSTO POR HORA":      "11",
	"COSTO FIJO":          "666",
	"MAXIMA CANTIDAD DE ENTREGAS POR RECORRIDO":   "111",
	"MAXIMO TIEMPO DE MANEJO [HORAS]":             "20",
	"MAXIMA CANTIDAD DE RECORRIDOS":               "4",
	"DISTANCIA MAXIMA POR RECORRIDO [KILOMETROS]": "500",
	"VELOCIDAD VEHICULO":                          "Normal",
	"PERIODO DE RECARGA [HORAS]":                  "0.25",
	"MAXIMO DE DINERO":                            "5500000",
	"NO CONSIDERAR RETORNO AL CD":                 "1",
}

// GenerateVehicles expande los grupos en una fila por unidad. Las placas
// son PREFIJO + secuencia zero-padded a 2 dígitos; la secuencia es contigua
// por prefijo a lo largo de todos los grupos de una misma llamada.
func (g *Generator) GenerateVehicles(payload *models.VehiclePayload, rnd *rand.Rand) (*Result, error) {
	if err := validator.ValidateVehiclePayload(payload); err != nil {
		return nil, err
	}

	headers, err := schema.Build(schema.VehicleHeaders, payload.Tags)
	if err != nil {
		return nil, err
	}

	counters := make(map[string]int, len(platePrefixes))
	var rows []map[string]string

	for _, group := range payload.Groups {
		prefix := resolvePrefix(group.Type)
		count := intOr(group.Count, 0)

		cap1 := stringOr(group.Capacity1, "")
		cap2 := stringOr(group.Capacity2, "")

		for i := 0; i < count; i++ {
			counters[prefix]++
			plate := fmt.Sprintf("%s%02d", prefix, counters[prefix])

			row := map[string]string{
				"PLACA":                plate,
				"ORIGEN":               group.Origin,
				"DESTINO":              "",
				"CAPACIDAD UNO":        cap1,
				"CAPACIDAD DOS":        cap2,
				"HORA INICIO JORNADA":  group.StartTime,
				"HORA FIN JORNADA":     group.EndTime,
				"INICIO HORA DESCANSO": "",
				"FIN HORA DESCANSO":    "",
			}
			for header, value := range vehicleDefaults {
				row[header] = value
			}

			applyTags(row, payload.Tags, rnd)
			rows = append(rows, row)
		}
	}

	buf, err := excel.Write(vehicleSheetName, headers, rows)
	if err != nil {
		return nil, fmt.Errorf("error writing vehicles workbook: %w", err)
	}

	metrics.RowsGenerated.WithLabelValues("vehicles").Observe(float64(len(rows)))
	zap.L().Info("vehicles dataset generated",
		zap.Int("groups", len(payload.Groups)),
		zap.Int("rows", len(rows)),
	)

	return &Result{
		File:     buf.Bytes(),
		Filename: vehicleDocumentName,
	}, nil
}

// resolvePrefix aplica el registro de prefijos con fallback determinístico:
// primeras 4 letras del tipo, en mayúscula.
func resolvePrefix(vehicleType string) string {
	if vehicleType == "" {
		return platePrefixes["Otro"]
	}
	if prefix, ok := platePrefixes[vehicleType]; ok {
		return prefix
	}
	prefix := []rune(strings.ToUpper(vehicleType))
	if len(prefix) > 4 {
		prefix = prefix[:4]
	}
	return string(prefix)
}
