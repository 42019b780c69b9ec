package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/han-ian/tidis/internal/domain"
)

const namespace = "tidis"

type Recorder struct {
	registry    *prometheus.Registry
	commands    *prometheus.CounterVec
	subCommands *prometheus.CounterVec
	errors      *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	recorder := &Recorder{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "command",
			Name:      "total",
			Help:      "Commands dispatched, by command name.",
		}, []string{"command"}),
		subCommands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "command",
			Name:      "store_calls_total",
			Help:      "Store calls issued after multi-key decomposition, by command name.",
		}, []string{"command"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "command",
			Name:      "errors_total",
			Help:      "Failed commands, by error kind.",
		}, []string{"kind"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "command",
			Name:      "duration_seconds",
			Help:      "Command latency.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"command"}),
	}

	recorder.registry.MustRegister(
		recorder.commands,
		recorder.subCommands,
		recorder.errors,
		recorder.duration,
	)

	return recorder
}

func (recorder *Recorder) Command(name string, subCommands int, err error, elapsed time.Duration) {
	recorder.commands.WithLabelValues(name).Inc()
	recorder.subCommands.WithLabelValues(name).Add(float64(subCommands))
	recorder.duration.WithLabelValues(name).Observe(elapsed.Seconds())

	if err != nil {
		recorder.errors.WithLabelValues(errorKind(err)).Inc()
	}
}

func (recorder *Recorder) Registry() *prometheus.Registry {
	return recorder.registry
}

func (recorder *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(recorder.registry, promhttp.HandlerOpts{})
}

var errorKinds = []struct {
	err  error
	kind string
}{
	{domain.ErrCommandNotFound, "command_not_found"},
	{domain.ErrMalformedArguments, "malformed_arguments"},
	{domain.ErrUnsupportedCommand, "unsupported_command"},
	{domain.ErrMultipleKeys, "multiple_keys"},
	{domain.ErrEncoding, "encoding"},
	{domain.ErrCanceled, "canceled"},
}

func errorKind(err error) string {
	for _, candidate := range errorKinds {
		if errors.Is(err, candidate.err) {
			return candidate.kind
		}
	}

	return "store"
}

// Nop discards every observation.
type Nop struct{}

func (Nop) Command(string, int, error, time.Duration) {}
