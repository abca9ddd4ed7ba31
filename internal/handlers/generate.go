package handlers

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/plannerpro/generator-service/internal/errors"
	"github.com/plannerpro/generator-service/internal/logging"
	"github.com/plannerpro/generator-service/internal/metrics"
	"github.com/plannerpro/generator-service/internal/models"
	"github.com/plannerpro/generator-service/internal/service"
)

const xlsxMIMEType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type GenerateHandler struct {
	svc *service.Generator
}

func NewGenerateHandler(svc *service.Generator) *GenerateHandler {
	return &GenerateHandler{svc: svc}
}

// GenerateOrders maneja POST /api/generate
func (h *GenerateHandler) GenerateOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		zap.L().Error("Invalid JSON", zap.Error(err))
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON")
		metrics.Generations.WithLabelValues("orders", "invalid").Inc()
		return
	}

	zap.L().Info("Generate Orders Request",
		append(logging.FieldsFromContext(r.Context()),
			zap.Any("cantidad_ordenes", req.CantidadOrdenes),
			zap.String("pais", req.Pais),
			zap.String("ciudad", req.Ciudad),
			zap.Int("tags", len(req.Tags)),
		)...,
	)

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	result, err := h.svc.GenerateOrders(r.Context(), &req, rnd)
	if err != nil {
		h.writeError(w, r, "orders", err)
		return
	}

	metrics.Generations.WithLabelValues("orders", "success").Inc()
	writeAttachment(w, result)
}

// GenerateVehicles maneja POST /api/generate-vehicles
func (h *GenerateHandler) GenerateVehicles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var payload models.VehiclePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		zap.L().Error("Invalid JSON", zap.Error(err))
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON")
		metrics.Generations.WithLabelValues("vehicles", "invalid").Inc()
		return
	}

	zap.L().Info("Generate Vehicles Request",
		append(logging.FieldsFromContext(r.Context()),
			zap.Int("groups", len(payload.Groups)),
			zap.Int("tags", len(payload.Tags)),
		)...,
	)

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	result, err := h.svc.GenerateVehicles(&payload, rnd)
	if err != nil {
		h.writeError(w, r, "vehicles", err)
		return
	}

	metrics.Generations.WithLabelValues("vehicles", "success").Inc()
	writeAttachment(w, result)
}

// writeError separa reglas de negocio de fallas inesperadas: las primeras
// devuelven su mensaje con 400, el resto se loguea con contexto completo y
// sale como 500 opaco.
func (h *GenerateHandler) writeError(w http.ResponseWriter, r *http.Request, document string, err error) {
	if apperrors.IsBusinessRule(err) {
		zap.L().Warn("Business Logic Error",
			append(logging.FieldsFromContext(r.Context()), zap.Error(err))...,
		)
		metrics.Generations.WithLabelValues(document, "rejected").Inc()
		writeJSONError(w, apperrors.GetStatusCode(err), err.Error())
		return
	}

	zap.L().Error("Server Error",
		append(logging.FieldsFromContext(r.Context()),
			zap.String("document", document),
			zap.Error(err),
		)...,
	)
	metrics.Generations.WithLabelValues(document, "error").Inc()
	writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
}

func writeAttachment(w http.ResponseWriter, result *service.Result) {
	w.Header().Set("Content-Type", xlsxMIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.File)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
