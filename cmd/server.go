package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/plannerpro/generator-service/internal/config"
	"github.com/plannerpro/generator-service/internal/directory"
	"github.com/plannerpro/generator-service/internal/handlers"
	"github.com/plannerpro/generator-service/internal/logging"
	"github.com/plannerpro/generator-service/internal/metrics"
	"github.com/plannerpro/generator-service/internal/service"
)

const serviceVersion = "3.0.0"

// Convertir niveles de Zap a severidad de GCP Cloud Logging
func zapLevelToGCPSeverity(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	switch level {
	case zapcore.DebugLevel:
		enc.AppendString("DEBUG")
	case zapcore.InfoLevel:
		enc.AppendString("INFO")
	case zapcore.WarnLevel:
		enc.AppendString("WARNING")
	case zapcore.ErrorLevel:
		enc.AppendString("ERROR")
	case zapcore.DPanicLevel, zapcore.PanicLevel:
		enc.AppendString("CRITICAL")
	case zapcore.FatalLevel:
		enc.AppendString("EMERGENCY")
	default:
		enc.AppendString("DEFAULT")
	}
}

// MAIN: inicializa servidor y dependencias
func main() {
	// .env opcional para desarrollo local; en Cloud Run las vars vienen del entorno
	_ = godotenv.Load()

	// Inicializar Zap Logger con formato compatible con GCP Cloud Logging
	logConfig := zap.NewProductionConfig()
	logConfig.EncoderConfig.MessageKey = "message"
	logConfig.EncoderConfig.LevelKey = "severity"
	logConfig.EncoderConfig.TimeKey = "timestamp"
	logConfig.EncoderConfig.EncodeLevel = zapLevelToGCPSeverity
	logConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := logConfig.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Reemplazar logger global
	zap.ReplaceGlobals(logger)

	cfg := config.Load()

	// Inicializar dependencias
	loader := directory.NewLoader(cfg)
	generator := service.NewGenerator(loader)
	generateHandler := handlers.NewGenerateHandler(generator)

	metrics.RegisterDefault()

	// Precalentar el directorio fuera del request path; el primer request
	// no paga el fetch remoto si esto llega a tiempo
	go loader.Load(context.Background())

	// HTTP ROUTES
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", healthHandler)
	mux.HandleFunc("/readyz", healthHandler)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/api/generate", withLogging(generateHandler.GenerateOrders))
	mux.HandleFunc("/api/generate-vehicles", withLogging(generateHandler.GenerateVehicles))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// GRACEFUL SHUTDOWN
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

		<-sigChan

		zap.L().Info("Shutting down gracefully...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			zap.L().Error("Graceful shutdown failed", zap.Error(err))
		}

		zap.L().Info("Server exited")
		os.Exit(0)
	}()

	zap.L().Info("Server started", zap.String("port", cfg.Port), zap.String("version", serviceVersion))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zap.L().Error("Server stopped unexpectedly", zap.Error(err))
	}
}

// MIDDLEWARE: Logging con Trace ID compatible con GCP
func withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Extraer Trace ID de Cloud Run; formato TRACE_ID/SPAN_ID;o=TRACE_TRUE
		traceID := r.Header.Get("X-Cloud-Trace-Context")
		if slashIdx := strings.IndexByte(traceID, '/'); slashIdx != -1 {
			traceID = traceID[:slashIdx]
		}
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := logging.WithTraceID(r.Context(), traceID)

		zap.L().Info("Request started",
			zap.String("httpRequest.requestMethod", r.Method),
			zap.String("httpRequest.requestUrl", r.URL.Path),
			zap.String("httpRequest.remoteIp", r.RemoteAddr),
			zap.String("httpRequest.userAgent", r.UserAgent()),
			zap.String("trace_id", traceID),
		)

		next(w, r.WithContext(ctx))

		duration := time.Since(start)

		zap.L().Info("Request completed",
			zap.String("httpRequest.requestMethod", r.Method),
			zap.String("httpRequest.requestUrl", r.URL.Path),
			zap.Int64("httpRequest.latency.milliseconds", duration.Milliseconds()),
			zap.String("trace_id", traceID),
		)
	}
}

// HEALTH CHECK
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:  "ok",
		Service: "planner-dataset-generator",
		Version: serviceVersion,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
