package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"
)

var protocols = []string{"tcp", "udp", "icmp"}
var ports = []string{"22", "53", "80", "443", "8080"}

func main() {
	outputDir := flag.String("o", "syslog", "Output directory for generated log files")
	fileCount := flag.Int("f", 3, "Number of log files to generate")
	lineCount := flag.Int("c", 1000, "Number of lines per file")
	dirtyRatio := flag.Float64("dirty", 0.05, "Fraction of lines generated malformed")
	flag.Parse()

	rand.Seed(time.Now().UnixNano())

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	// Small address pools so flows actually repeat across lines.
	firewalls := randomIPs(2)
	sources := randomIPs(8)
	destinations := randomIPs(4)

	log.Printf("Generating %d files with %d lines each into %s...", *fileCount, *lineCount, *outputDir)

	for i := 0; i < *fileCount; i++ {
		path := filepath.Join(*outputDir, fmt.Sprintf("fw_%02d.log", i))
		f, err := os.Create(path)
		if err != nil {
			log.Fatalf("Failed to create log file: %v", err)
		}
		for j := 0; j < *lineCount; j++ {
			if rand.Float64() < *dirtyRatio {
				fmt.Fprintln(f, dirtyLine())
				continue
			}
			fmt.Fprintln(f, cleanLine(firewalls, sources, destinations))
		}
		f.Close()
	}

	log.Printf("Successfully generated %d files into %s.", *fileCount, *outputDir)
}

func randomIPs(n int) []string {
	ips := make([]string, n)
	for i := range ips {
		ips[i] = fmt.Sprintf("10.%d.%d.%d", rand.Intn(256), rand.Intn(256), rand.Intn(256))
	}
	return ips
}

func pick(pool []string) string {
	return pool[rand.Intn(len(pool))]
}

// cleanLine renders one well-formed log line: timestamp, firewall, session,
// source, destination, port, protocol, action, rule, then the four traffic
// counters.
func cleanLine(firewalls, sources, destinations []string) string {
	packetsIn := rand.Intn(100) + 1
	packetsOut := rand.Intn(100) + 1
	return fmt.Sprintf("%d,%s,%d,%s,%s,%s,%s,allow,%d,%d,%d,%d,%d",
		time.Now().Unix(),
		pick(firewalls),
		rand.Intn(100000),
		pick(sources),
		pick(destinations),
		pick(ports),
		pick(protocols),
		rand.Intn(64),
		packetsIn,
		packetsIn*(rand.Intn(1400)+50),
		packetsOut,
		packetsOut*(rand.Intn(1400)+50),
	)
}

// dirtyLine renders one of the rejection shapes the engine has to survive.
func dirtyLine() string {
	switch rand.Intn(3) {
	case 0:
		return "short,line"
	case 1:
		return fmt.Sprintf("%d,fw,1,src,dst,80,tcp,allow,1,,100,5,500", time.Now().Unix())
	default:
		return fmt.Sprintf("%d,fw,1,src,dst,80,tcp,allow,1,abc,100,5,500", time.Now().Unix())
	}
}
