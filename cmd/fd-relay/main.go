package main

import (
	"Go2FlowDigest/internal/config"
	"Go2FlowDigest/internal/relay"
	"Go2FlowDigest/pkg/logfile"
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// --- Command-Line Flag Parsing ---
	mode := flag.String("mode", "pub", "Operating mode: 'pub' to relay log files, 'sub' to subscribe and print.")
	dir := flag.String("dir", "", "Directory of log files to relay (defaults to the configured input_dir).")
	stdin := flag.Bool("stdin", false, "Relay lines from standard input instead of a directory.")
	flag.Parse()

	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// --- Mode Dispatch ---
	switch *mode {
	case "pub":
		runPublisher(cfg, *dir, *stdin)
	case "sub":
		runSubscriber(cfg)
	default:
		fmt.Fprintf(os.Stderr, "Invalid mode: %s\n", *mode)
		flag.Usage()
		os.Exit(1)
	}
}

// runPublisher relays log lines to NATS, either from a directory of log
// files or from standard input.
func runPublisher(cfg *config.Config, dir string, fromStdin bool) {
	log.Println("Starting fd-relay in PUBLISHER mode...")

	pub, err := relay.NewPublisher(cfg.Relay)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer pub.Close()
	log.Printf("Relay session %s started.", pub.SessionID())

	if fromStdin {
		relayStdin(pub)
		return
	}

	if dir == "" {
		dir = cfg.Engine.InputDir
	}
	relayDirectory(pub, dir)
}

func relayDirectory(pub *relay.Publisher, dir string) {
	files, err := logfile.ListFiles(dir)
	if err != nil {
		log.Fatalf("Failed to list directory '%s': %v", dir, err)
	}

	linesPublished := 0
	for _, path := range files {
		reader, err := logfile.NewReader(path)
		if err != nil {
			log.Printf("Warning: skipping unreadable file '%s': %v", path, err)
			continue
		}
		err = reader.ReadLines(func(line string) {
			if err := pub.Publish(path, line); err != nil {
				log.Printf("Failed to publish line: %v", err)
				return
			}
			linesPublished++
			if linesPublished%1000 == 0 {
				log.Printf("%d lines published...", linesPublished)
			}
		})
		reader.Close()
		if err != nil {
			log.Printf("Warning: read error in '%s': %v", path, err)
		}
	}
	log.Printf("Finished relaying %d lines from %d files.", linesPublished, len(files))
}

func relayStdin(pub *relay.Publisher) {
	scanner := bufio.NewScanner(os.Stdin)
	linesPublished := 0
	for scanner.Scan() {
		if err := pub.Publish("stdin", scanner.Text()); err != nil {
			log.Printf("Failed to publish line: %v", err)
			continue
		}
		linesPublished++
		if linesPublished%1000 == 0 {
			log.Printf("%d lines published...", linesPublished)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Printf("Warning: stdin read error: %v", err)
	}
	log.Printf("Finished relaying %d lines from stdin.", linesPublished)
}

// runSubscriber prints relayed lines, mainly for checking a deployment
// end to end.
func runSubscriber(cfg *config.Config) {
	log.Println("Starting fd-relay in SUBSCRIBER mode...")

	sub, err := relay.NewSubscriber(cfg.Relay)
	if err != nil {
		log.Fatalf("Failed to create subscriber: %v", err)
	}
	defer sub.Close()

	err = sub.Start(func(envelope relay.Envelope) {
		log.Printf("Received line from %s: %s", envelope.Path, envelope.Line)
	})
	if err != nil {
		log.Fatalf("Subscriber failed to start: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Println("Shutdown signal received, cleaning up...")
}
