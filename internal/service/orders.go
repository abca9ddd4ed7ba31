package service

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/plannerpro/generator-service/internal/directory"
	"github.com/plannerpro/generator-service/internal/excel"
	"github.com/plannerpro/generator-service/internal/metrics"
	"github.com/plannerpro/generator-service/internal/models"
	"github.com/plannerpro/generator-service/internal/names"
	"github.com/plannerpro/generator-service/internal/schema"
	"github.com/plannerpro/generator-service/internal/validator"
)

// Defaults de generación de órdenes
const (
	defaultOrderCount   = 40
	defaultCapacityMin  = 1.0
	defaultCapacityMax  = 10.0
	defaultWindow1Start = "09:00"
	defaultWindow1End   = "18:00"
	defaultServiceTime  = "5"
	defaultItemCost     = "1500"
	defaultItemQuantity = "1"
	defaultImportance   = "1"
	orderSheetName      = "Ordenes Generadas"
	vehicleSheetName    = "Flota Generada"
	vehicleDocumentName = "flota_vehiculos.xlsx"
)

// DirectorySource entrega el pool de direcciones de referencia.
type DirectorySource interface {
	Load(ctx context.Context) []models.Customer
}

// Generator implementa la generación de datasets de órdenes y flota.
type Generator struct {
	directory DirectorySource
}

func NewGenerator(dir DirectorySource) *Generator {
	return &Generator{directory: dir}
}

// Result es el documento generado en memoria más su nombre de descarga.
type Result struct {
	File     []byte
	Filename string
}

// GenerateOrders expande un request en count × items_por_orden filas del
// esquema de órdenes y las serializa a xlsx. rnd se inyecta por llamada:
// producción usa una fuente del sistema, los tests una sembrada.
func (g *Generator) GenerateOrders(ctx context.Context, req *models.OrderRequest, rnd *rand.Rand) (*Result, error) {
	if err := validator.ValidateOrderRequest(req); err != nil {
		return nil, err
	}

	count := intOr(req.CantidadOrdenes, defaultOrderCount)
	itemsPerOrder := intOr(req.ItemsPorOrden, 1)
	if itemsPerOrder < 1 {
		itemsPerOrder = 1
	}

	capMin := floatOr(req.CapacidadMin, defaultCapacityMin)
	capMax := floatOr(req.CapacidadMax, defaultCapacityMax)
	if capMin > capMax {
		capMin, capMax = capMax, capMin
	}
	cap2Min := floatPtr(req.Capacidad2Min)
	cap2Max := floatPtr(req.Capacidad2Max)
	if cap2Min != nil && cap2Max != nil && *cap2Min > *cap2Max {
		cap2Min, cap2Max = cap2Max, cap2Min
	}

	win1Start := req.VentanaInicio
	if win1Start == "" {
		win1Start = defaultWindow1Start
	}
	win1End := req.VentanaFin
	if win1End == "" {
		win1End = defaultWindow1End
	}

	serviceTime := stringOr(req.ServiceTime, defaultServiceTime)

	deliveryDate := req.FechaEntrega
	if deliveryDate == "" {
		deliveryDate = time.Now().Format("2006-01-02")
	}
	formattedDate := validator.FormatDeliveryDate(deliveryDate)

	headers, err := schema.Build(schema.OrderHeaders, req.Tags)
	if err != nil {
		return nil, err
	}

	pool := g.directory.Load(ctx)
	sampler, err := directory.Select(pool, req.Pais, req.Ciudad, rnd)
	if err != nil {
		return nil, err
	}

	// count negativo no es error: el loop no itera y sale un documento
	// vacío, pero la capacidad del slice no puede ser negativa
	rowCap := count * itemsPerOrder
	if rowCap < 0 {
		rowCap = 0
	}
	rows := make([]map[string]string, 0, rowCap)
	itemCounter := 1

	for i := 0; i < count; i++ {
		customer := sampler.Next()

		customerCountry := customer.Country
		if customerCountry == "" {
			customerCountry = req.Pais
		}
		contactName := names.Synthesize(customerCountry, rnd)

		orderID := fmt.Sprintf("ORD-%06d", i+1)

		// La capacidad se sortea una vez por orden y se comparte entre
		// todos sus items
		capStr := strconv.FormatFloat(capMin+rnd.Float64()*(capMax-capMin), 'f', 4, 64)
		cap2Str := ""
		if cap2Min != nil && cap2Max != nil {
			cap2Str = strconv.FormatFloat(*cap2Min+rnd.Float64()*(*cap2Max-*cap2Min), 'f', 4, 64)
		}

		email := fmt.Sprintf("contacto%d@example.com", i)

		for j := 0; j < itemsPerOrder; j++ {
			// El teléfono se sortea por fila, no por orden
			phone := fmt.Sprintf("569%d", 11111111+rnd.Intn(99999999-11111111+1))
			row := map[string]string{
				"N° DOCUMENTO":           orderID,
				"LATITUD":                customer.Lat,
				"LONGITUD":               customer.Long,
				"DIRECCION":              customer.Address,
				"NOMBRE ITEM":            fmt.Sprintf("Item %d", itemCounter),
				"CANTIDAD":               defaultItemQuantity,
				"CODIGO ITEM":            fmt.Sprintf("SKU-%d", itemCounter),
				"FECHA MIN ENTREGA":      formattedDate,
				"FECHA MAX ENTREGA":      formattedDate,
				"MIN VENTANA HORARIA 1":  win1Start,
				"MAX VENTANA HORARIA 1":  win1End,
				"MIN VENTANA HORARIA 2":  req.Ventana2Inicio,
				"MAX VENTANA HORARIA 2":  req.Ventana2Fin,
				"COSTO ITEM":             defaultItemCost,
				"CAPACIDAD UNO":          capStr,
				"CAPACIDAD DOS":          cap2Str,
				"SERVICE TIME":           serviceTime,
				"IMPORTANCIA":            defaultImportance,
				"IDENTIFICADOR CONTACTO": customer.ID,
				"NOMBRE CONTACTO":        contactName,
				"TELEFONO":               phone,
				"EMAIL CONTACTO":         email,
				"CT ORIGEN":              req.CTOrigen,
			}
			itemCounter++

			applyTags(row, req.Tags, rnd)
			rows = append(rows, row)
		}
	}

	buf, err := excel.Write(orderSheetName, headers, rows)
	if err != nil {
		return nil, fmt.Errorf("error writing orders workbook: %w", err)
	}

	metrics.RowsGenerated.WithLabelValues("orders").Observe(float64(len(rows)))
	zap.L().Info("orders dataset generated",
		zap.Int("orders", count),
		zap.Int("rows", len(rows)),
		zap.String("country_filter", req.Pais),
		zap.String("city_filter", req.Ciudad),
	)

	return &Result{
		File:     buf.Bytes(),
		Filename: fmt.Sprintf("ordenes_%d.xlsx", count),
	}, nil
}

// applyTags sortea un valor por fila para cada tag; lista vacía → celda vacía.
func applyTags(row map[string]string, tags []models.Tag, rnd *rand.Rand) {
	for _, t := range tags {
		if len(t.Values) > 0 {
			row[t.Header] = t.Values[rnd.Intn(len(t.Values))]
		} else {
			row[t.Header] = ""
		}
	}
	row[""] = ""
}
