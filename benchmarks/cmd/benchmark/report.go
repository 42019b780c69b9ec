package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"time"
)

type CommandResult struct {
	Command      string        `json:"command"`
	TotalOps     int           `json:"total_ops"`
	Duration     time.Duration `json:"duration"`
	OpsPerSecond float64       `json:"ops_per_second"`
	AvgLatency   time.Duration `json:"avg_latency"`
	P95Latency   time.Duration `json:"p95_latency"`
	P99Latency   time.Duration `json:"p99_latency"`
	MinLatency   time.Duration `json:"min_latency"`
	MaxLatency   time.Duration `json:"max_latency"`
	ErrorCount   int           `json:"error_count"`
	SuccessRate  float64       `json:"success_rate"`
}

type SystemMetrics struct {
	MemoryUsageMB float64   `json:"memory_usage_mb"`
	Goroutines    int       `json:"goroutines"`
	Timestamp     time.Time `json:"timestamp"`
}

type BenchmarkResult struct {
	Config        BenchmarkConfig `json:"config"`
	Commands      []CommandResult `json:"commands"`
	SystemMetrics SystemMetrics   `json:"system_metrics"`
	StartTime     time.Time       `json:"start_time"`
	EndTime       time.Time       `json:"end_time"`
	TotalDuration time.Duration   `json:"total_duration"`
}

func summarize(command string, latencies []time.Duration, duration time.Duration, errorCount, totalOps int) CommandResult {
	result := CommandResult{
		Command:    command,
		TotalOps:   totalOps,
		Duration:   duration,
		ErrorCount: errorCount,
	}

	if len(latencies) == 0 || totalOps == 0 {
		return result
	}

	sorted := slices.Clone(latencies)
	slices.Sort(sorted)

	var total time.Duration
	for _, latency := range sorted {
		total += latency
	}

	successOps := totalOps - errorCount
	result.AvgLatency = total / time.Duration(len(sorted))
	result.MinLatency = sorted[0]
	result.MaxLatency = sorted[len(sorted)-1]
	result.P95Latency = percentile(sorted, 0.95)
	result.P99Latency = percentile(sorted, 0.99)
	result.OpsPerSecond = float64(successOps) / duration.Seconds()
	result.SuccessRate = float64(successOps) / float64(totalOps) * 100

	return result
}

func percentile(sorted []time.Duration, rank float64) time.Duration {
	index := min(int(float64(len(sorted))*rank), len(sorted)-1)
	return sorted[index]
}

func systemMetrics() SystemMetrics {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return SystemMetrics{
		MemoryUsageMB: float64(m.Alloc) / 1024 / 1024,
		Goroutines:    runtime.NumGoroutine(),
		Timestamp:     time.Now(),
	}
}

func saveResult(result BenchmarkResult, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", err
	}

	filename := filepath.Join(outputDir, fmt.Sprintf("benchmark_%s.json", result.StartTime.Format("15-04-05")))

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}

	return filename, os.WriteFile(filename, data, 0644)
}

func loadResult(path string) (*BenchmarkResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var result BenchmarkResult
	if err = json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return &result, nil
}
