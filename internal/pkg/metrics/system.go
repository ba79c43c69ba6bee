package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"laundry/pkg/logger"
)

const DefaultCollectInterval = 5 * time.Second

var (
	SystemCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "laundry_system_cpu_usage_percent",
			Help: "Host CPU usage percentage",
		},
	)

	SystemMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "laundry_system_memory_usage_bytes",
			Help: "Host memory in use, bytes",
		},
	)

	ApplicationMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "laundry_application_heap_alloc_bytes",
			Help: "Go heap allocation of the order service, bytes",
		},
	)

	ApplicationGoroutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "laundry_application_goroutines",
			Help: "Number of goroutines in the order service",
		},
	)
)

type collectorLogger interface {
	With(fields ...logger.Field) logger.Logger
}

// StartSystemMetricsCollector снимает метрики хоста раз в interval до отмены ctx.
func StartSystemMetricsCollector(ctx context.Context, log collectorLogger, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultCollectInterval
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				collectSystemMetrics(ctx, log)
			}
		}
	}()
}

func collectSystemMetrics(ctx context.Context, log collectorLogger) {
	// interval 0: загрузка считается относительно предыдущего вызова
	cpuPercent, err := cpu.PercentWithContext(ctx, 0, false)
	switch {
	case err != nil:
		log.With(logger.NewField("error", err)).Warn("failed to read cpu usage")
	case len(cpuPercent) > 0:
		SystemCPUUsage.Set(cpuPercent[0])
	}

	vmStat, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		log.With(logger.NewField("error", err)).Warn("failed to read memory usage")
	} else {
		SystemMemoryUsage.Set(float64(vmStat.Used))
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	ApplicationMemoryUsage.Set(float64(m.Alloc))
	ApplicationGoroutines.Set(float64(runtime.NumGoroutine()))
}
