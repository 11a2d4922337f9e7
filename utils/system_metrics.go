package utils

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

var (
	systemCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_cpu_usage_percent",
			Help: "Host CPU usage percentage",
		},
	)

	systemMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_memory_used_percent",
			Help: "Host memory usage percentage",
		},
	)
)

// CollectSystemMetrics periodically samples host CPU and memory usage into
// the Prometheus gauges. Intended to run in its own goroutine for the
// lifetime of the process.
func CollectSystemMetrics(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if percentages, err := cpu.Percent(0, false); err == nil && len(percentages) > 0 {
			systemCPUUsage.Set(percentages[0])
		}
		if vm, err := mem.VirtualMemory(); err == nil {
			systemMemoryUsage.Set(vm.UsedPercent)
		}
	}
}
