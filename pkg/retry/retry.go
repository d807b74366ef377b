// Package retry concentra a política de repetição usada nas chamadas à
// ComexAPI: tentativas com espera progressiva, classificação de erros
// repetíveis e interrupção imediata por cancelamento de contexto.
package retry

import (
	"context"
	"time"

	"github.com/comexflow/import-dashboard-api/pkg/log"
)

// Options parametriza uma execução com repetição.
type Options struct {
	// Nome do recurso, apenas para os logs
	Resource string
	// Total de tentativas (a primeira chamada conta como tentativa 1)
	MaxAttempts int
	// Espera antes da tentativa seguinte, em função da tentativa que falhou
	Delay func(attempt int) time.Duration
	// Decide se vale repetir após um erro; nula repete qualquer falha
	Retryable func(err error) bool
}

// Linear espera base × tentativa (1s, 2s, 3s...).
func Linear(base time.Duration) func(int) time.Duration {
	return func(attempt int) time.Duration {
		return base * time.Duration(attempt)
	}
}

// Exponential espera 2^tentativa × base (2s, 4s, 8s...).
func Exponential(base time.Duration) func(int) time.Duration {
	return func(attempt int) time.Duration {
		return base * time.Duration(1<<attempt)
	}
}

// Do executa fn até obter sucesso ou esgotar as tentativas.
//
// Cancelamento de contexto não é falha repetível: a chamada foi
// substituída por outra mais nova (ou o chamador desistiu) e o laço
// termina imediatamente devolvendo ctx.Err().
func Do[T any](ctx context.Context, opts Options, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return zero, ctx.Err()
		}

		if opts.Retryable != nil && !opts.Retryable(err) {
			log.L.WithFields(log.Fields{
				"resource": opts.Resource,
				"attempt":  attempt,
			}).Warnf("Falha não repetível: %v", err)
			return zero, err
		}

		if attempt == opts.MaxAttempts {
			break
		}

		wait := opts.Delay(attempt)
		log.L.WithFields(log.Fields{
			"resource": opts.Resource,
			"attempt":  attempt,
		}).Warnf("Falha na chamada, nova tentativa em %s: %v", wait, err)

		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}

	return zero, lastErr
}
