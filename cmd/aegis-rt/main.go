package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	aegisrt "github.com/ghalamif/AegisRT"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	var err error

	switch cmd {
	case "run":
		err = runCommand(os.Args[2:])
	case "validate":
		err = validateCommand(os.Args[2:])
	case "stats":
		err = statsCommand(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		printUsage()
		err = fmt.Errorf("unknown command %q", cmd)
	}

	if err != nil {
		log.Fatalf("aegis-rt %s: %v", cmd, err)
	}
}

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to pipeline configuration file (built-in defaults when empty)")
	metricsAddr := fs.String("metrics", "", "Override metrics listen address, e.g. :9100")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := aegisrt.DefaultConfig()
	if *cfgPath != "" {
		loaded, err := aegisrt.LoadConfig(*cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if *metricsAddr != "" {
		cfg.Metrics.Addr = *metricsAddr
	}

	flow, err := aegisrt.ConfFromConfig(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return flow.Run(ctx)
}

func validateCommand(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	cfgPath := fs.String("config", "./data/config.yaml", "Path to configuration file to validate")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := aegisrt.LoadConfig(*cfgPath); err != nil {
		return err
	}
	fmt.Printf("config %s looks good\n", *cfgPath)
	return nil
}

func statsCommand(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	url := fs.String("url", "http://localhost:9100/metrics", "Prometheus metrics endpoint")
	interval := fs.Duration("interval", 2*time.Second, "Refresh interval")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	fmt.Printf("Streaming metrics from %s (Ctrl+C to stop)\n", *url)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := printMetricsSnapshot(*url); err != nil {
				fmt.Fprintf(os.Stderr, "stats error: %v\n", err)
			}
		}
	}
}

func printMetricsSnapshot(url string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	targets := map[string]float64{
		"aegis_samples_produced_total": 0,
		"aegis_alerts_raised_total":    0,
		"aegis_sensor_queue_length":    0,
		"aegis_tick":                   0,
	}

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		for key := range targets {
			if strings.HasPrefix(line, key+" ") {
				var value float64
				if _, err := fmt.Sscanf(line, key+" %g", &value); err == nil {
					targets[key] = value
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	fmt.Printf("[%s] tick=%.0f samples=%.0f alerts=%.0f sensor_queue=%.0f\n",
		time.Now().Format(time.RFC3339),
		targets["aegis_tick"],
		targets["aegis_samples_produced_total"],
		targets["aegis_alerts_raised_total"],
		targets["aegis_sensor_queue_length"],
	)
	return nil
}

func printUsage() {
	fmt.Printf(`AegisRT CLI

Usage:
  aegis-rt <command> [flags]

Commands:
  run        Start the telemetry pipeline (built-in defaults unless -config is given)
  validate   Load and validate a config file without starting the pipeline
  stats      Poll the Prometheus metrics endpoint and print live counters

Examples:
  aegis-rt run
  aegis-rt run -config ./data/config.yaml -metrics :9100
  aegis-rt validate -config ./data/config.yaml
  aegis-rt stats -url http://localhost:9100/metrics -interval 1s
`)
}
