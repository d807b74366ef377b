package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comexflow/import-dashboard-api/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

func immediateOptions(maxAttempts int) Options {
	return Options{
		Resource:    "teste",
		MaxAttempts: maxAttempts,
		Delay:       func(int) time.Duration { return 0 },
	}
}

func TestDo(t *testing.T) {
	ctx := context.Background()

	t.Run("Deve devolver o valor na primeira tentativa bem sucedida", func(t *testing.T) {
		calls := 0
		result, err := Do(ctx, immediateOptions(3), func(context.Context) (string, error) {
			calls++
			return "ok", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "ok", result)
		assert.Equal(t, 1, calls)
	})

	t.Run("Deve executar exatamente N tentativas quando as N-1 primeiras falham", func(t *testing.T) {
		calls := 0
		result, err := Do(ctx, immediateOptions(3), func(context.Context) (string, error) {
			calls++
			if calls < 3 {
				return "", assert.AnError
			}
			return "ok", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "ok", result)
		assert.Equal(t, 3, calls)
	})

	t.Run("Deve esgotar as tentativas e devolver o último erro", func(t *testing.T) {
		calls := 0
		_, err := Do(ctx, immediateOptions(3), func(context.Context) (string, error) {
			calls++
			return "", assert.AnError
		})

		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, 3, calls)
	})

	t.Run("Erro classificado como não repetível interrompe na primeira falha", func(t *testing.T) {
		permanent := errors.New("payload inválido")

		options := immediateOptions(3)
		options.Retryable = func(err error) bool {
			return !errors.Is(err, permanent)
		}

		calls := 0
		_, err := Do(ctx, options, func(context.Context) (string, error) {
			calls++
			return "", permanent
		})

		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("Cancelamento não é falha repetível", func(t *testing.T) {
		cancelCtx, cancel := context.WithCancel(context.Background())

		calls := 0
		_, err := Do(cancelCtx, immediateOptions(3), func(context.Context) (string, error) {
			calls++
			cancel()
			return "", context.Canceled
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})

	t.Run("Cancelamento durante a espera interrompe o laço", func(t *testing.T) {
		cancelCtx, cancel := context.WithCancel(context.Background())

		options := immediateOptions(3)
		options.Delay = func(int) time.Duration { return time.Minute }

		calls := 0
		go func() {
			time.Sleep(20 * time.Millisecond)
			cancel()
		}()

		start := time.Now()
		_, err := Do(cancelCtx, options, func(context.Context) (string, error) {
			calls++
			return "", assert.AnError
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
		assert.Less(t, time.Since(start), 10*time.Second)
	})
}

func TestDelaySchedules(t *testing.T) {
	linear := Linear(time.Second)
	assert.Equal(t, 1*time.Second, linear(1))
	assert.Equal(t, 2*time.Second, linear(2))
	assert.Equal(t, 3*time.Second, linear(3))

	exponential := Exponential(time.Second)
	assert.Equal(t, 2*time.Second, exponential(1))
	assert.Equal(t, 4*time.Second, exponential(2))
	assert.Equal(t, 8*time.Second, exponential(3))
}
