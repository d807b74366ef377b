package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/comexflow/import-dashboard-api/pkg/log"
)

// Limite acima do qual uma requisição é registrada como lenta
const slowRequestThreshold = 500 * time.Millisecond

// LoggingMiddleware registra informações sobre cada requisição HTTP
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Gera um ID de correlação para esta requisição e o devolve
			// no cabeçalho da resposta para facilitar o suporte
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)
			w.Header().Set("X-Correlation-ID", correlationID)

			// Writer personalizado para capturar o status code
			sw := newStatusWriter(w)

			startTime := time.Now()
			isDev := log.IsDevelopment()

			if isDev {
				log.L.WithFields(log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				}).Info("→ Iniciando requisição")
			} else {
				log.L.WithFields(log.Fields{
					"correlation_id": correlationID,
					"remote_addr":    r.RemoteAddr,
					"method":         r.Method,
					"path":           r.URL.Path,
					"query":          r.URL.RawQuery,
					"user_agent":     r.UserAgent(),
					"content_length": r.ContentLength,
				}).Info("Requisição iniciada")
			}

			next.ServeHTTP(sw, r)

			responseTime := time.Since(startTime)

			if isDev {
				logCompletionDev(r, sw.statusCode, responseTime)
			} else {
				logCompletion(r, correlationID, sw.statusCode, responseTime)
			}
		})
	}
}

// logCompletionDev usa um formato conciso, pensado para o console local
func logCompletionDev(r *http.Request, statusCode int, responseTime time.Duration) {
	statusSymbol := "✓"
	if statusCode >= 400 {
		statusSymbol = "✗"
	}

	msg := fmt.Sprintf("%s Completada em %s", statusSymbol, formatDuration(responseTime))

	logger := log.L.WithFields(log.Fields{
		"method":      r.Method,
		"path":        r.URL.Path,
		"status_code": statusCode,
	})

	switch {
	case statusCode >= 500:
		logger.Error(msg)
	case statusCode >= 400:
		logger.Warn(msg)
	default:
		logger.Info(msg)
	}

	if responseTime > slowRequestThreshold {
		log.L.Warnf("⚠ Requisição lenta: %s %s (%dms)", r.Method, r.URL.Path, responseTime.Milliseconds())
	}
}

// logCompletion usa o formato estruturado completo de produção
func logCompletion(r *http.Request, correlationID string, statusCode int, responseTime time.Duration) {
	logger := log.L.WithFields(log.Fields{
		"correlation_id": correlationID,
		"method":         r.Method,
		"path":           r.URL.Path,
		"duration_ms":    responseTime.Milliseconds(),
		"status_code":    statusCode,
	})

	switch {
	case statusCode >= 500:
		logger.Error("Requisição finalizada com erro")
	case statusCode >= 400:
		logger.Warn("Requisição finalizada com aviso")
	default:
		logger.Info("Requisição finalizada com sucesso")
	}

	if responseTime > slowRequestThreshold {
		logger.Warnf("Requisição lenta: %s", responseTime)
	}
}

// formatDuration formata a duração de forma humana
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%d µs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%d ms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2f s", d.Seconds())
}

// statusWriter é um wrapper para http.ResponseWriter que captura o status code
type statusWriter struct {
	http.ResponseWriter
	statusCode int
}

func newStatusWriter(w http.ResponseWriter) *statusWriter {
	return &statusWriter{w, http.StatusOK}
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.statusCode = code
	sw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware captura panics não tratados e devolve 500 ao cliente
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stackSize := runtime.Stack(stack, false)
					stackTrace := string(stack[:stackSize])

					if log.IsDevelopment() {
						log.L.WithFields(log.Fields{
							"error": err,
							"path":  r.URL.Path,
						}).Error("❌ PANIC na aplicação")

						fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stackTrace)
					} else {
						correlationID := log.GetCorrelationID(r.Context())

						logger := log.L.WithFields(log.Fields{
							"correlation_id": correlationID,
							"panic_error":    err,
							"method":         r.Method,
							"path":           r.URL.Path,
						})

						logger.Error("Erro não tratado na aplicação")
						logger.WithField("stack_trace", stackTrace).Error("Stack trace do erro")
					}

					http.Error(w, "Erro interno no servidor", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
