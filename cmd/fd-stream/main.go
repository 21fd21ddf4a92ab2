package main

import (
	"Go2FlowDigest/internal/config"
	"Go2FlowDigest/internal/digest"
	"Go2FlowDigest/internal/engine/stream"
	"Go2FlowDigest/internal/metrics"
	"Go2FlowDigest/internal/model"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	log.Println("Starting fd-stream...")

	// 1. Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Println("Configuration loaded successfully.")

	interval, err := time.ParseDuration(cfg.Stream.DigestInterval)
	if err != nil {
		log.Fatalf("Invalid digest interval: %v", err)
	}
	if interval <= 0 {
		log.Fatalf("Digest interval must be a positive duration")
	}

	// 2. Assemble the digest sinks
	writers := []model.Writer{digest.NewFileWriter(cfg.Engine.OutputDir, cfg.Engine.FilePrefix)}
	writers = append(writers, digest.BuildWriters(cfg)...)

	// 3. Expose Prometheus metrics
	m := metrics.New(prometheus.DefaultRegisterer)
	if cfg.Stream.MetricsAddr != "" {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			log.Printf("Metrics endpoint listening on %s", cfg.Stream.MetricsAddr)
			if err := http.ListenAndServe(cfg.Stream.MetricsAddr, nil); err != nil {
				log.Printf("Metrics server error: %v", err)
			}
		}()
	}

	// 4. Start the windowed aggregator
	agg := stream.New(cfg.Relay, interval, writers, m)
	agg.Start()

	// 5. Wait for a shutdown signal for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	log.Println("Shutdown signal received, stopping aggregator...")
	agg.Stop()
	log.Println("Shutdown complete.")
}
