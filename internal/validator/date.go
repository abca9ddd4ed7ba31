package validator

import "time"

// FormatDeliveryDate reformatea una fecha YYYY-MM-DD a DD/MM/YYYY para el
// documento. Si el parseo falla, el string crudo pasa sin cambios: este es
// un generador de datos de prueba y una fecha malformada no debe tumbar
// todo el request.
func FormatDeliveryDate(date string) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return parsed.Format("02/01/2006")
}
