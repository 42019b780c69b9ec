package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

type BenchmarkConfig struct {
	ServerType    string `json:"server_type"`
	Address       string `json:"address"`
	NumOperations int    `json:"num_operations"`
	NumClients    int    `json:"num_clients"`
	BatchSize     int    `json:"batch_size"`
	ValueSize     int    `json:"value_size"`
}

var defaultCommands = []string{"SET", "GET", "INCR", "MSET", "MGET", "DEL"}

func runFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "server", Value: "tidis", Usage: "label stored with the results"},
		&cli.StringFlag{Name: "addr", Value: "localhost:6379", Usage: "server address"},
		&cli.IntFlag{Name: "ops", Value: 10000, Usage: "operations per command"},
		&cli.IntFlag{Name: "clients", Value: 10, Usage: "concurrent clients"},
		&cli.IntFlag{Name: "batch", Value: 8, Usage: "keys per multi-key command"},
		&cli.IntFlag{Name: "valuesize", Value: 64, Usage: "value size in bytes"},
		&cli.StringSliceFlag{Name: "commands", Usage: "commands to run (default: all)"},
		&cli.StringFlag{Name: "output", Usage: "output directory for results"},
	}
}

func runAction(c *cli.Context) error {
	config := BenchmarkConfig{
		ServerType:    c.String("server"),
		Address:       c.String("addr"),
		NumOperations: c.Int("ops"),
		NumClients:    max(c.Int("clients"), 1),
		BatchSize:     max(c.Int("batch"), 1),
		ValueSize:     c.Int("valuesize"),
	}

	outputDir := c.String("output")

	if outputDir == "" {
		outputDir = filepath.Join("benchmarks", "results", time.Now().Format("2006-01-02"), config.ServerType)
	}

	commands := c.StringSlice("commands")

	if len(commands) == 0 {
		commands = defaultCommands
	}

	client := redis.NewClient(&redis.Options{Addr: config.Address, PoolSize: config.NumClients})
	defer client.Close()

	ctx := c.Context

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("connect to %s: %w", config.Address, err)
	}

	fmt.Printf("benchmarking %s at %s: %d ops, %d clients, batch %d\n",
		config.ServerType, config.Address, config.NumOperations, config.NumClients, config.BatchSize)

	result := BenchmarkResult{Config: config, StartTime: time.Now()}

	for _, command := range commands {
		command = strings.ToUpper(command)
		cmdResult := runCommand(ctx, client, command, config)
		result.Commands = append(result.Commands, cmdResult)

		fmt.Printf("%-6s %10.2f ops/sec  avg %v  p99 %v  errors %d\n",
			command, cmdResult.OpsPerSecond, cmdResult.AvgLatency, cmdResult.P99Latency, cmdResult.ErrorCount)
	}

	result.EndTime = time.Now()
	result.TotalDuration = result.EndTime.Sub(result.StartTime)
	result.SystemMetrics = systemMetrics()

	path, err := saveResult(result, outputDir)

	if err != nil {
		return fmt.Errorf("save results: %w", err)
	}

	fmt.Printf("results saved to %s\n", path)
	return nil
}

func runCommand(ctx context.Context, client *redis.Client, command string, config BenchmarkConfig) CommandResult {
	var (
		mu         sync.Mutex
		latencies  = make([]time.Duration, 0, config.NumOperations)
		errorCount int
	)

	opsPerClient := config.NumOperations / config.NumClients
	value := generateValue(config.ValueSize)
	group, groupCtx := errgroup.WithContext(ctx)
	started := time.Now()

	for clientID := range config.NumClients {
		group.Go(func() error {
			for op := range opsPerClient {
				keys := benchKeys(clientID, op, config.BatchSize)

				opStart := time.Now()
				err := execute(groupCtx, client, command, keys, value)
				latency := time.Since(opStart)

				mu.Lock()
				latencies = append(latencies, latency)
				if err != nil && err != redis.Nil {
					errorCount++
				}
				mu.Unlock()
			}

			return nil
		})
	}

	_ = group.Wait()

	return summarize(command, latencies, time.Since(started), errorCount, opsPerClient*config.NumClients)
}

func execute(ctx context.Context, client *redis.Client, command string, keys []string, value string) error {
	switch command {
	case "SET":
		return client.Set(ctx, keys[0], value, 0).Err()
	case "GET":
		return client.Get(ctx, keys[0]).Err()
	case "INCR":
		return client.Incr(ctx, "bench:counter:"+keys[0]).Err()
	case "MSET":
		pairs := make([]any, 0, len(keys)*2)
		for _, key := range keys {
			pairs = append(pairs, key, value)
		}
		return client.MSet(ctx, pairs...).Err()
	case "MGET":
		return client.MGet(ctx, keys...).Err()
	case "DEL":
		return client.Del(ctx, keys...).Err()
	}

	return fmt.Errorf("unknown benchmark command %q", command)
}

func benchKeys(clientID, op, batch int) []string {
	keys := make([]string, batch)

	for index := range keys {
		keys[index] = "bench:" + strconv.Itoa(clientID) + ":" + strconv.Itoa(op) + ":" + strconv.Itoa(index)
	}

	return keys
}

func generateValue(size int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, size)
	for i := range b {
		b[i] = charset[i%len(charset)]
	}
	return string(b)
}
