package directory

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/plannerpro/generator-service/internal/errors"
	"github.com/plannerpro/generator-service/internal/models"
)

func testPool() []models.Customer {
	return []models.Customer{
		{Address: "SCL1", Country: "Chile", City: "Santiago"},
		{Address: "VAL1", Country: "Chile", City: "Valparaiso"},
		{Address: "ARG1", Country: "Argentina", City: "Mendoza"},
	}
}

func TestSelectCountryAndCity(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	s, err := Select(testPool(), "Chile", "Santiago", rnd)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		assert.Equal(t, "SCL1", s.Next().Address)
	}
}

func TestSelectWildcardCity(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	s, err := Select(testPool(), "Chile", "Otro", rnd)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		c := s.Next()
		assert.Equal(t, "Chile", c.Country)
		assert.NotEqual(t, "ARG1", c.Address)
	}
}

func TestSelectMatchIsSubstringCaseInsensitive(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	s, err := Select(testPool(), " chi ", "SANTI", rnd)
	require.NoError(t, err)
	assert.Equal(t, "SCL1", s.Next().Address)
}

func TestSelectFallsBackToFullPool(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	s, err := Select(testPool(), "Peru", "", rnd)
	require.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < 9; i++ {
		seen[s.Next().Address] = true
	}
	// sin matches, el sampler degrada al pool completo
	assert.Len(t, seen, 3)
}

func TestSelectEmptyPool(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	_, err := Select(nil, "", "", rnd)
	require.Error(t, err)
	assert.True(t, apperrors.IsBusinessRule(err))
	assert.Equal(t, "No customer data available.", err.(*apperrors.AppError).Message)
}

func TestNextCyclesInShuffledOrder(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	s, err := Select(testPool(), "", "", rnd)
	require.NoError(t, err)

	var draws []string
	for i := 0; i < 6; i++ {
		draws = append(draws, s.Next().Address)
	}
	// la secuencia barajada se repite al dar la vuelta
	assert.Equal(t, draws[:3], draws[3:])
	assert.ElementsMatch(t, []string{"SCL1", "VAL1", "ARG1"}, draws[:3])
}
