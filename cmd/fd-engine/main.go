package main

import (
	"Go2FlowDigest/internal/config"
	"Go2FlowDigest/internal/digest"
	"Go2FlowDigest/internal/engine/scan"
	"fmt"
	"log"
	"time"
)

func main() {
	log.Println("Starting fd-engine...")

	// 1. Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Println("Configuration loaded successfully.")

	// 2. Run the batch aggregation over the input directory
	run := scan.NewRun(cfg.Engine.InputDir)
	doc := run.Execute()
	log.Printf("Aggregated %d connections into %d flows.", doc.Metadata.TotalConnections, doc.Metadata.Flows)

	// 3. Write the digest document
	timestamp := time.Now().Format(digest.TimestampLayout)
	writer := digest.NewFileWriter(cfg.Engine.OutputDir, cfg.Engine.FilePrefix)
	if err := writer.Write(doc, timestamp); err != nil {
		log.Fatalf("Failed to write digest: %v", err)
	}

	// 4. Fan out to the supplemental sinks
	for _, w := range digest.BuildWriters(cfg) {
		if err := w.Write(doc, timestamp); err != nil {
			log.Printf("Warning: supplemental writer failed: %v", err)
		}
	}

	fmt.Printf("Digest written to %s with %d flows.\n", writer.Path(timestamp), doc.Metadata.Flows)
}
