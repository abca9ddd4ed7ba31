package directory

import (
	"math/rand"
	"strings"

	apperrors "github.com/plannerpro/generator-service/internal/errors"
	"github.com/plannerpro/generator-service/internal/models"
)

// WildcardToken desactiva el filtro de esa dimensión sin importar el resto
// del valor. Se compara case-insensitive por substring, así "Otro" y
// "otros" también cuentan.
const WildcardToken = "otro"

// Sampler entrega clientes en una secuencia cíclica pre-barajada: con N
// filas pedidas mayor al pool, las entradas se repiten en el mismo orden
// barajado, dando la vuelta.
type Sampler struct {
	pool []models.Customer
	next int
}

// Select filtra el pool por país/ciudad y arma el sampler. El match es por
// substring case-insensitive sobre valores trimmeados. Si el filtrado queda
// vacío se vuelve al pool completo; sólo un pool totalmente vacío es error
// de negocio.
func Select(pool []models.Customer, countryFilter, cityFilter string, rnd *rand.Rand) (*Sampler, error) {
	targetCountry := strings.ToLower(strings.TrimSpace(countryFilter))
	targetCity := strings.ToLower(strings.TrimSpace(cityFilter))

	countryActive := targetCountry != "" && !strings.Contains(targetCountry, WildcardToken)
	cityActive := targetCity != "" && !strings.Contains(targetCity, WildcardToken)

	var filtered []models.Customer
	for _, c := range pool {
		country := strings.ToLower(strings.TrimSpace(c.Country))
		city := strings.ToLower(strings.TrimSpace(c.City))

		if countryActive && !strings.Contains(country, targetCountry) {
			continue
		}
		if cityActive && !strings.Contains(city, targetCity) {
			continue
		}
		filtered = append(filtered, c)
	}

	// El filtrado nunca deja cero candidatos: se degrada al pool completo
	if len(filtered) == 0 {
		filtered = pool
	}
	if len(filtered) == 0 {
		return nil, apperrors.ErrBusinessRule("No customer data available.", nil)
	}

	shuffled := make([]models.Customer, len(filtered))
	copy(shuffled, filtered)
	rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return &Sampler{pool: shuffled}, nil
}

// Next devuelve el siguiente cliente de la secuencia cíclica.
func (s *Sampler) Next() models.Customer {
	c := s.pool[s.next]
	s.next = (s.next + 1) % len(s.pool)
	return c
}
