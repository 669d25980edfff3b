// orrery-bench runs a scene headless for a fixed number of ticks and
// exposes integrator health as Prometheus metrics while it does.
package main

import (
	"flag"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gonum.org/v1/gonum/spatial/r2"

	"orrery/internal/app"
	"orrery/internal/physics"
)

type benchMetrics struct {
	substepsTotal prometheus.Counter
	tickDuration  prometheus.Histogram
	energyDrift   prometheus.Gauge
	momentum      prometheus.Gauge
}

func newBenchMetrics() *benchMetrics {
	m := &benchMetrics{
		substepsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orrery_substeps_total",
			Help: "Integrator substeps executed",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "orrery_tick_duration_seconds",
			Help:    "Wall time per external tick (one substep batch)",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
		energyDrift: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orrery_energy_drift_ratio",
			Help: "Total energy change relative to the initial energy",
		}),
		momentum: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orrery_momentum_magnitude",
			Help: "Magnitude of the total linear momentum",
		}),
	}
	prometheus.MustRegister(m.substepsTotal, m.tickDuration, m.energyDrift, m.momentum)
	return m
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	ticks := flag.Int("ticks", 100000, "external ticks to run (0 = run until killed)")
	listen := flag.String("listen", ":9173", "metrics listen address (empty disables the server)")
	flag.Parse()

	reg, params, err := cfg.Load()
	if err != nil {
		log.Fatalf("load scene: %v", err)
	}

	metrics := newBenchMetrics()
	if *listen != "" {
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			if err := http.ListenAndServe(*listen, nil); err != nil {
				log.Fatalf("metrics server: %v", err)
			}
		}()
	}

	integ := physics.NewIntegrator(params)
	bodies := reg.Bodies()
	initialEnergy := integ.Energy(bodies)

	log.Printf("scene %s: %d bodies, dt=%g, substeps=%d",
		cfg.SceneName(), reg.Len(), params.Dt, params.SubstepsPerTick)

	drift := func() float64 {
		if initialEnergy == 0 {
			return 0
		}
		return (integ.Energy(bodies) - initialEnergy) / math.Abs(initialEnergy)
	}

	start := time.Now()
	steps := 0
	for i := 0; *ticks == 0 || i < *ticks; i++ {
		t0 := time.Now()
		integ.Run(bodies, params.Dt, params.SubstepsPerTick)
		metrics.tickDuration.Observe(time.Since(t0).Seconds())
		metrics.substepsTotal.Add(float64(params.SubstepsPerTick))
		steps += params.SubstepsPerTick

		if i%1024 == 0 {
			metrics.energyDrift.Set(drift())
			metrics.momentum.Set(r2.Norm(integ.Momentum(bodies)))
		}
	}
	elapsed := time.Since(start)

	log.Printf("ran %d substeps in %v (%.0f substeps/s), energy drift %+.3e, |p| %.3g",
		steps, elapsed.Round(time.Millisecond),
		float64(steps)/elapsed.Seconds(),
		drift(), r2.Norm(integ.Momentum(bodies)))
}
