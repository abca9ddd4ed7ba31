package models

import (
	"bytes"
	"encoding/json"
)

// Customer representa una dirección candidata del directorio de referencia.
// id y name pueden ser placeholders sintéticos cuando la fuente no los trae.
type Customer struct {
	Address string `json:"address"`
	Country string `json:"country"`
	City    string `json:"city"`
	Lat     string `json:"lat"`
	Long    string `json:"long"`
	Name    string `json:"name"`
	ID      string `json:"id"`
}

// Tag es una columna dinámica definida por el caller: un header más la lista
// de valores candidatos. Una lista vacía produce celdas vacías.
type Tag struct {
	Header string   `json:"header"`
	Values []string `json:"values"`
}

// OrderRequest representa el request para generar órdenes.
// Los campos numéricos pueden llegar como number o como string según el
// cliente, por eso se reciben como any y se coercionan con defaults.
type OrderRequest struct {
	CantidadOrdenes any    `json:"cantidad_ordenes"`
	ItemsPorOrden   any    `json:"items_por_orden"`
	CapacidadMin    any    `json:"capacidad_min"`
	CapacidadMax    any    `json:"capacidad_max"`
	Capacidad2Min   any    `json:"capacidad2_min"`
	Capacidad2Max   any    `json:"capacidad2_max"`
	VentanaInicio   string `json:"ventana_inicio"`
	VentanaFin      string `json:"ventana_fin"`
	Ventana2Inicio  string `json:"ventana2_inicio"`
	Ventana2Fin     string `json:"ventana2_fin"`
	CTOrigen        string `json:"ct_origen"`
	ServiceTime     any    `json:"service_time"`
	Pais            string `json:"pais"`
	Ciudad          string `json:"ciudad"`
	FechaEntrega    string `json:"fecha_entrega"`
	Tags            []Tag  `json:"tags"`
}

// VehicleGroup define un grupo de vehículos que comparten atributos.
type VehicleGroup struct {
	Type      string `json:"type"`
	Count     any    `json:"count"`
	Capacity1 any    `json:"capacity1"`
	Capacity2 any    `json:"capacity2"`
	Origin    string `json:"origin"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// VehiclePayload representa el request para generar flota. Por compatibilidad
// hacia atrás acepta tanto un objeto {groups, tags} como una lista simple
// de grupos.
type VehiclePayload struct {
	Groups []VehicleGroup `json:"groups"`
	Tags   []Tag          `json:"tags"`
}

func (p *VehiclePayload) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		// Formato legacy: lista simple de grupos, sin tags
		return json.Unmarshal(trimmed, &p.Groups)
	}

	type alias VehiclePayload
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*p = VehiclePayload(a)
	return nil
}
