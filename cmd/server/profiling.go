package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"runtime"
	"sync"
	"time"
)

// ProfilingConfig holds configuration for profiling
type ProfilingConfig struct {
	Enabled bool
	Port    string
}

// StartProfiling starts the pprof server on its own port
func StartProfiling(config ProfilingConfig) {
	if !config.Enabled {
		return
	}

	runtime.SetBlockProfileRate(1)
	runtime.SetMutexProfileFraction(1)

	if config.Port != "" {
		go func() {
			log.Printf("Starting pprof server on :%s", config.Port)
			if err := http.ListenAndServe(":"+config.Port, nil); err != nil {
				log.Printf("pprof server failed: %v", err)
			}
		}()
	}

	log.Printf("Profiling enabled. Access profiles at:")
	log.Printf("  - CPU: curl http://localhost:%s/debug/pprof/profile?seconds=30 > cpu.prof", config.Port)
	log.Printf("  - Memory: curl http://localhost:%s/debug/pprof/heap > mem.prof", config.Port)
}

// GetProfilingConfigFromEnv creates profiling config from environment variables
func GetProfilingConfigFromEnv(getenv func(string) string) ProfilingConfig {
	port := getenv("PPROF_PORT")
	if port == "" {
		port = "42069"
	}
	return ProfilingConfig{
		Enabled: getenv("ENABLE_PROFILING") == "true",
		Port:    port,
	}
}

// BuildMetrics holds build performance tracking data
type BuildMetrics struct {
	mu              sync.Mutex
	Builds          int64
	Failures        int64
	AvgBuildTime    time.Duration
	MaxBuildTime    time.Duration
	PeakGoroutines  int
	PeakMemoryUsage uint64
	StartTime       time.Time
}

func NewBuildMetrics() *BuildMetrics {
	return &BuildMetrics{StartTime: time.Now()}
}

// TrackBuild records one build
func (m *BuildMetrics) TrackBuild(duration time.Duration, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Builds++
	if !ok {
		m.Failures++
	}
	m.AvgBuildTime = (m.AvgBuildTime*time.Duration(m.Builds-1) + duration) / time.Duration(m.Builds)
	if duration > m.MaxBuildTime {
		m.MaxBuildTime = duration
	}
}

// UpdateSystemMetrics updates system-level metrics
func (m *BuildMetrics) UpdateSystemMetrics() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	goroutines := runtime.NumGoroutine()

	m.mu.Lock()
	defer m.mu.Unlock()
	if goroutines > m.PeakGoroutines {
		m.PeakGoroutines = goroutines
	}
	if ms.Alloc > m.PeakMemoryUsage {
		m.PeakMemoryUsage = ms.Alloc
	}
}

// LogMetrics logs current build metrics
func (m *BuildMetrics) LogMetrics(logger Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	logger.Printf("=== Build Metrics ===")
	logger.Printf("Uptime: %v", time.Since(m.StartTime))
	logger.Printf("Builds: %d (%d failed)", m.Builds, m.Failures)
	logger.Printf("Average build time: %v", m.AvgBuildTime)
	logger.Printf("Slowest build: %v", m.MaxBuildTime)
	logger.Printf("Peak goroutines: %d", m.PeakGoroutines)
	logger.Printf("Peak memory usage: %d bytes", m.PeakMemoryUsage)
}

// StartMetricsReporting starts periodic metrics reporting
func StartMetricsReporting(metrics *BuildMetrics, interval time.Duration, logger Logger) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			metrics.LogMetrics(logger)
		}
	}()
}
