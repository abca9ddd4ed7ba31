// Package schema arma las listas de headers de los documentos generados.
// Los headers fijos son un contrato byte a byte con el motor de ruteo que
// consume los archivos: no son configuración y no deben tocarse.
package schema

import (
	"fmt"

	apperrors "github.com/plannerpro/generator-service/internal/errors"
	"github.com/plannerpro/generator-service/internal/models"
)

// OrderHeaders son las columnas fijas del documento de órdenes, en orden.
var OrderHeaders = []string{
	"N° DOCUMENTO", "LATITUD", "LONGITUD", "DIRECCION", "NOMBRE ITEM", "CANTIDAD", "CODIGO ITEM",
	"FECHA MIN ENTREGA", "FECHA MAX ENTREGA", "MIN VENTANA HORARIA 1", "MAX VENTANA HORARIA 1",
	"MIN VENTANA HORARIA 2", "MAX VENTANA HORARIA 2", "COSTO ITEM", "CAPACIDAD UNO", "CAPACIDAD DOS",
	"SERVICE TIME", "IMPORTANCIA", "IDENTIFICADOR CONTACTO", "NOMBRE CONTACTO", "TELEFONO", "EMAIL CONTACTO",
	"CT ORIGEN",
}

// VehicleHeaders son las columnas fijas del documento de flota, en orden.
var VehicleHeaders = []string{
	"PLACA", "ORIGEN", "DESTINO", "CAPACIDAD UNO", "CAPACIDAD DOS",
	"HORA INICIO JORNADA", "HORA FIN JORNADA", "INICIO HORA DESCANSO",
	"FIN HORA DESCANSO", "COSTO POR SALIDA", "COSTO POR KILOMETRO",
	"COSTO POR HORA", "COSTO FIJO", "MAXIMA CANTIDAD DE ENTREGAS POR RECORRIDO",
	"MAXIMO TIEMPO DE MANEJO [HORAS]", "MAXIMA CANTIDAD DE RECORRIDOS",
	"DISTANCIA MAXIMA POR RECORRIDO [KILOMETROS]", "VELOCIDAD VEHICULO",
	"PERIODO DE RECARGA [HORAS]", "MAXIMO DE DINERO", "NO CONSIDERAR RETORNO AL CD",
}

// Build arma la lista final de headers: columnas fijas, luego los headers de
// tags en el orden recibido (sin deduplicar), y al final una columna vacía
// que el formato downstream espera como pass-through.
//
// Un tag cuyo header colisiona con una columna fija se rechaza: las filas se
// arman como mapas indexados por header y la colisión pisaría la columna
// fija en silencio.
func Build(fixed []string, tags []models.Tag) ([]string, error) {
	fixedSet := make(map[string]struct{}, len(fixed))
	for _, h := range fixed {
		fixedSet[h] = struct{}{}
	}

	headers := make([]string, 0, len(fixed)+len(tags)+1)
	headers = append(headers, fixed...)

	for _, t := range tags {
		if _, ok := fixedSet[t.Header]; ok {
			return nil, apperrors.ErrBusinessRule(
				fmt.Sprintf("Tag header collides with a fixed column: %s", t.Header), nil)
		}
		headers = append(headers, t.Header)
	}

	headers = append(headers, "")
	return headers, nil
}
