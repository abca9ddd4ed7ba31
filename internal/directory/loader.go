// Package directory carga y muestrea el directorio de direcciones de
// referencia usado para poblar los datasets generados.
package directory

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/plannerpro/generator-service/internal/config"
	"github.com/plannerpro/generator-service/internal/metrics"
	"github.com/plannerpro/generator-service/internal/models"
	"github.com/plannerpro/generator-service/internal/retry"
)

// Loader obtiene el pool de direcciones candidatas: primero la planilla
// remota, con fallback al dataset local y, en último caso, un pool vacío.
// Load nunca devuelve error; la degradación se loguea y se sigue.
type Loader struct {
	mu    sync.Mutex
	cache []models.Customer

	http      *http.Client
	breaker   *gobreaker.CircuitBreaker
	sheetURL  string
	localFile string
}

func NewLoader(cfg *config.Config) *Loader {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "addresses-sheet",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		OnStateChange: func(name string, from, to gobreaker.State) {
			zap.L().Warn("circuit breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &Loader{
		http:      &http.Client{Timeout: cfg.SheetFetchTimeout},
		breaker:   cb,
		sheetURL:  cfg.AddressesSheetURL,
		localFile: cfg.CustomersFile,
	}
}

// Load devuelve el directorio cacheado, cargándolo en el primer acceso.
// El mutex serializa la carga perezosa: llamadas concurrentes al primer
// request se suman a una única carga en vuelo en vez de competir.
func (l *Loader) Load(ctx context.Context) []models.Customer {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.cache) > 0 {
		return l.cache
	}

	// 1. Planilla remota
	if customers := l.loadFromSheet(ctx); len(customers) > 0 {
		zap.L().Info("Loaded addresses from remote sheet", zap.Int("customers", len(customers)))
		metrics.DirectoryLoads.WithLabelValues("sheet").Inc()
		l.cache = customers
		return l.cache
	}

	// 2. Fallback al JSON local
	customers, err := l.loadFromFile()
	if err != nil {
		zap.L().Error("Error loading customers from local JSON", zap.Error(err))
		metrics.DirectoryLoads.WithLabelValues("empty").Inc()
		return nil
	}

	zap.L().Info("Loaded addresses from local JSON", zap.Int("customers", len(customers)))
	metrics.DirectoryLoads.WithLabelValues("local").Inc()
	l.cache = customers
	return l.cache
}

func (l *Loader) loadFromSheet(ctx context.Context) []models.Customer {
	if l.sheetURL == "" {
		return nil
	}

	var body []byte
	_, err := l.breaker.Execute(func() (any, error) {
		return nil, retry.WithRetry(ctx, 3, 500*time.Millisecond, func() error {
			var ferr error
			body, ferr = l.fetchSheet(ctx)
			return ferr
		})
	})
	if err != nil {
		zap.L().Error("Error fetching addresses sheet", zap.Error(err))
		return nil
	}

	customers, err := parseSheetCSV(body)
	if err != nil {
		zap.L().Error("Error parsing addresses sheet", zap.Error(err))
		return nil
	}
	return customers
}

func (l *Loader) fetchSheet(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.sheetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error building request: %w", err)
	}

	resp, err := l.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("sheet fetch error: status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// parseSheetCSV asume orden posicional de columnas: dirección, país, ciudad.
// La fila de header se detecta con una heurística por tokens; las filas con
// menos de 3 columnas o sin dirección/país se descartan en silencio.
func parseSheetCSV(body []byte) ([]models.Customer, error) {
	r := csv.NewReader(strings.NewReader(string(body)))
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV: %w", err)
	}

	var customers []models.Customer
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}

		addr := strings.TrimSpace(row[0])
		country := strings.TrimSpace(row[1])
		city := strings.TrimSpace(row[2])

		// Heurística simple para saltar el header
		if strings.Contains(strings.ToLower(addr), "direccion") &&
			strings.Contains(strings.ToLower(country), "pais") {
			continue
		}

		if addr == "" || country == "" {
			continue
		}

		customers = append(customers, models.Customer{
			Address: addr,
			Country: country,
			City:    city,
			Lat:     "", // la planilla no trae coordenadas
			Long:    "",
			Name:    "Cliente Sheet",
			ID:      "S-" + uuid.NewString()[:8],
		})
	}
	return customers, nil
}

func (l *Loader) loadFromFile() ([]models.Customer, error) {
	data, err := os.ReadFile(l.localFile)
	if err != nil {
		return nil, err
	}

	var customers []models.Customer
	if err := json.Unmarshal(data, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}
