// Package names sintetiza nombres de contacto plausibles según la región
// del país de la dirección.
package names

import (
	"math/rand"
	"strings"
)

type corpus struct {
	names    []string
	surnames []string
}

var corpora = map[string]corpus{
	"LATAM": {
		names:    []string{"Juan", "Maria", "Carlos", "Ana", "Jose", "Luis", "Sofia", "Camila", "Pedro", "Diego"},
		surnames: []string{"Gonzalez", "Rodriguez", "Perez", "Fernandez", "Lopez", "Diaz", "Martinez", "Silva", "Rojas", "Soto"},
	},
	"OTHER": {
		names:    []string{"John", "Mary", "Michael", "Jennifer", "James", "Linda", "Robert", "Patricia", "David", "Elizabeth"},
		surnames: []string{"Smith", "Johnson", "Williams", "Jones", "Brown", "Davis", "Miller", "Wilson", "Moore", "Taylor"},
	},
}

var latamCountries = []string{
	"chile", "argentina", "colombia", "mexico", "peru",
	"bolivia", "uruguay", "ecuador", "venezuela", "paraguay",
}

// Region clasifica un país por substring case-insensitive contra la lista
// fija de países latinoamericanos. Todo lo no reconocido cae en OTHER.
func Region(country string) string {
	c := strings.ToLower(country)
	for _, x := range latamCountries {
		if strings.Contains(c, x) {
			return "LATAM"
		}
	}
	return "OTHER"
}

// Synthesize devuelve un nombre completo aleatorio (nombre + apellido,
// sorteados de forma independiente) del corpus regional correspondiente.
func Synthesize(country string, rnd *rand.Rand) string {
	data := corpora[Region(country)]
	return data.names[rnd.Intn(len(data.names))] + " " + data.surnames[rnd.Intn(len(data.surnames))]
}
