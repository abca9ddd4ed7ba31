package retry

import (
	"context"
	"math/rand"
	"time"
)

// WithRetry ejecuta fn hasta attempts veces con backoff exponencial y jitter.
// Respeta la cancelación del contexto tanto antes de cada intento como
// durante el sleep entre intentos.
func WithRetry(
	ctx context.Context,
	attempts int,
	baseDelay time.Duration,
	fn func() error,
) error {
	var err error

	for i := 1; i <= attempts; i++ {
		// Verificar si el context expiró
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err = fn()
		if err == nil {
			return nil
		}

		// No hacer sleep en el último intento
		if i == attempts {
			break
		}

		// Backoff exponencial con jitter
		sleep := baseDelay * time.Duration(1<<uint(i-1))
		jitter := time.Duration(rand.Int63n(int64(baseDelay)))

		select {
		case <-time.After(sleep + jitter):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return err
}
