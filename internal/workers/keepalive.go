package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/echosell-api/internal/logger"
)

// PingFunc probes a single backend connection.
type PingFunc func(ctx context.Context) error

const pingTimeout = 5 * time.Second

// keepalive periodically probes a storage backend and logs failures so that
// broken connections surface in the logs before a request hits them.
type keepalive struct {
	name     string
	ping     PingFunc
	interval time.Duration
	logger   *logger.Logger
}

// NewKeepalive builds a worker that pings the named backend on the given
// interval. Run spawns a goroutine and returns immediately.
func NewKeepalive(name string, ping PingFunc, interval time.Duration, logger *logger.Logger) Worker {
	return &keepalive{name: name, ping: ping, interval: interval, logger: logger}
}

func (k *keepalive) Run() {
	go func() {
		ticker := time.NewTicker(k.interval)
		defer ticker.Stop()

		for range ticker.C {
			k.probe()
		}
	}()
}

func (k *keepalive) probe() {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := k.ping(ctx); err != nil {
		k.logger.Error().Err(err).Str("backend", k.name).Msg("storage keepalive probe failed")
		return
	}

	k.logger.Debug().Str("backend", k.name).Msg("storage keepalive probe ok")
}
