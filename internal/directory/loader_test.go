package directory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plannerpro/generator-service/internal/config"
)

const sheetCSV = `Direccion,Pais,Ciudad
"Av. Providencia 2250",Chile,Santiago
Calle Prat 845,Chile,Valparaiso
fila-corta
,Chile,Santiago
Av. Corrientes 348,Argentina,Buenos Aires
`

func writeLocalDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clientes.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromSheet(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(sheetCSV))
	}))
	defer srv.Close()

	l := NewLoader(&config.Config{
		AddressesSheetURL: srv.URL,
		CustomersFile:     "does-not-exist.json",
		SheetFetchTimeout: time.Second,
	})

	customers := l.Load(context.Background())
	require.Len(t, customers, 3) // header, fila corta y dirección vacía descartadas

	assert.Equal(t, "Av. Providencia 2250", customers[0].Address)
	assert.Equal(t, "Chile", customers[0].Country)
	assert.Equal(t, "Santiago", customers[0].City)
	assert.Equal(t, "Cliente Sheet", customers[0].Name)
	assert.Contains(t, customers[0].ID, "S-")
	assert.Empty(t, customers[0].Lat)

	// segunda llamada sale del cache, sin nuevo fetch
	l.Load(context.Background())
	assert.Equal(t, 1, hits)
}

func TestLoadFallsBackToLocalFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	local := writeLocalDataset(t, `[{"address":"SCL1","country":"Chile","city":"Santiago","id":"C-1"}]`)

	l := NewLoader(&config.Config{
		AddressesSheetURL: srv.URL,
		CustomersFile:     local,
		SheetFetchTimeout: time.Second,
	})

	customers := l.Load(context.Background())
	require.Len(t, customers, 1)
	assert.Equal(t, "SCL1", customers[0].Address)
}

func TestLoadSkipsRemoteWhenURLEmpty(t *testing.T) {
	local := writeLocalDataset(t, `[{"address":"SCL1","country":"Chile","city":"Santiago"}]`)

	l := NewLoader(&config.Config{
		CustomersFile:     local,
		SheetFetchTimeout: time.Second,
	})

	assert.Len(t, l.Load(context.Background()), 1)
}

func TestLoadDegradesToEmptyPool(t *testing.T) {
	l := NewLoader(&config.Config{
		CustomersFile:     "no-such-file.json",
		SheetFetchTimeout: time.Second,
	})

	// ambas fuentes fallan: pool vacío, nunca panic ni error
	assert.Empty(t, l.Load(context.Background()))
}

func TestParseSheetCSVMalformed(t *testing.T) {
	_, err := parseSheetCSV([]byte("\"sin cerrar"))
	assert.Error(t, err)
}
