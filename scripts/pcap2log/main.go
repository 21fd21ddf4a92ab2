package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

func main() {
	inputFile := flag.String("i", "", "Input pcap file path")
	outputFile := flag.String("o", "capture.log", "Output log file path")
	firewallIP := flag.String("fw", "192.168.0.1", "Firewall IP stamped on every line")
	flag.Parse()

	if *inputFile == "" {
		log.Println("Error: -i flag is required.")
		flag.Usage()
		os.Exit(1)
	}

	in, err := os.Open(*inputFile)
	if err != nil {
		log.Fatalf("Failed to open pcap file: %v", err)
	}
	defer in.Close()

	pcapReader, err := pcapgo.NewReader(in)
	if err != nil {
		log.Fatalf("Failed to read pcap header: %v", err)
	}

	out, err := os.Create(*outputFile)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer out.Close()

	log.Printf("Converting packets from '%s'...", *inputFile)

	written, skipped := 0, 0
	for {
		data, ci, err := pcapReader.ReadPacketData()
		if err != nil {
			break
		}
		line, err := packetToLine(data, ci, *firewallIP)
		if err != nil {
			// Non-IP or non-TCP/UDP packets have no place in the log format.
			skipped++
			continue
		}
		fmt.Fprintln(out, line)
		written++
		if written%100000 == 0 {
			log.Printf("Converted %d packets...", written)
		}
	}

	log.Printf("Converted %d packets into %s (%d skipped).", written, *outputFile, skipped)
}

// packetToLine renders one captured packet as a firewall log line. A
// capture sees individual packets, so each line carries the packet as one
// inbound unit with a zeroed reply direction.
func packetToLine(data []byte, ci gopacket.CaptureInfo, firewallIP string) (string, error) {
	packet := gopacket.NewPacket(data, layers.LayerTypeEthernet, gopacket.Default)

	var ipLayer *layers.IPv4
	if l := packet.Layer(layers.LayerTypeIPv4); l != nil {
		ipLayer = l.(*layers.IPv4)
	} else {
		return "", fmt.Errorf("not an IPv4 packet")
	}

	var dstPort, protocol string
	if l := packet.Layer(layers.LayerTypeTCP); l != nil {
		tcpLayer := l.(*layers.TCP)
		dstPort = strconv.Itoa(int(tcpLayer.DstPort))
		protocol = "tcp"
	} else if l := packet.Layer(layers.LayerTypeUDP); l != nil {
		udpLayer := l.(*layers.UDP)
		dstPort = strconv.Itoa(int(udpLayer.DstPort))
		protocol = "udp"
	} else {
		return "", fmt.Errorf("not a TCP or UDP packet")
	}

	return fmt.Sprintf("%d,%s,0,%s,%s,%s,%s,allow,0,1,%d,0,0",
		ci.Timestamp.Unix(),
		firewallIP,
		ipLayer.SrcIP,
		ipLayer.DstIP,
		dstPort,
		protocol,
		ci.Length,
	), nil
}
