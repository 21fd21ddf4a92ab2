package stream

import (
	"Go2FlowDigest/internal/config"
	"Go2FlowDigest/internal/digest"
	"Go2FlowDigest/internal/engine/aggregate"
	"Go2FlowDigest/internal/engine/parser"
	"Go2FlowDigest/internal/metrics"
	"Go2FlowDigest/internal/model"
	"Go2FlowDigest/internal/relay"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Aggregator consumes relayed log lines from NATS and cuts a digest
// document at a fixed interval. Each window is an independent run: its own
// flow table, line accounting and run ID.
type Aggregator struct {
	cfg      config.RelayConfig
	interval time.Duration
	writers  []model.Writer
	metrics  *metrics.Metrics

	mu          sync.Mutex
	table       *aggregate.Table
	stats       *model.RunStats
	seenFiles   map[string]bool
	windowStart time.Time

	sub  *relay.Subscriber
	done chan struct{}
	wg   sync.WaitGroup
	now  func() time.Time
}

// New creates an aggregator. It does not touch the network; Start does.
func New(cfg config.RelayConfig, interval time.Duration, writers []model.Writer, m *metrics.Metrics) *Aggregator {
	a := &Aggregator{
		cfg:       cfg,
		interval:  interval,
		writers:   writers,
		metrics:   m,
		table:     aggregate.NewTable(),
		stats:     model.NewRunStats(),
		seenFiles: make(map[string]bool),
		done:      make(chan struct{}),
		now:       time.Now,
	}
	a.windowStart = a.now()
	return a
}

// Start connects to NATS, subscribes to the relay subject and begins the
// window cutter.
func (a *Aggregator) Start() {
	log.Println("Aggregator starting for nats: ", a.cfg.NATSURL)
	sub, err := relay.NewSubscriber(a.cfg)
	if err != nil {
		log.Fatalf("Aggregator failed to connect to NATS: %v", err)
	}
	a.sub = sub

	err = a.sub.Start(func(envelope relay.Envelope) {
		a.HandleLine(envelope.Path, envelope.Line)
	})
	if err != nil {
		log.Fatalf("Aggregator failed to subscribe: %v", err)
	}

	a.wg.Add(1)
	go a.runCutter()
	log.Printf("Started window cutter with interval %s", a.interval)
}

// HandleLine feeds one log line into the current window. Invalid lines
// move the accounting but never stop the stream.
func (a *Aggregator) HandleLine(path, line string) {
	a.metrics.LinesTotal.Inc()
	conn, err := parser.ParseLine(line)

	a.mu.Lock()
	defer a.mu.Unlock()

	if path != "" && !a.seenFiles[path] {
		a.seenFiles[path] = true
		a.stats.RecordFile(path)
	}
	if err != nil {
		a.stats.RecordLine(false)
		a.metrics.LinesRejected.WithLabelValues(parser.RejectReason(err)).Inc()
		return
	}
	a.table.Upsert(aggregate.FlowKey(conn), conn)
	a.stats.RecordLine(true)
	a.metrics.LinesAccepted.Inc()
}

// runCutter cuts a window on every tick and once more on shutdown.
func (a *Aggregator) runCutter() {
	defer a.wg.Done()
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.cutWindow()
		case <-a.done:
			a.cutWindow()
			return
		}
	}
}

// cutWindow swaps the live window out under the lock, then summarizes and
// writes the finished one to every sink. Windows that saw no lines at all
// are dropped silently.
func (a *Aggregator) cutWindow() {
	end := a.now()

	a.mu.Lock()
	table, stats, start := a.table, a.stats, a.windowStart
	a.table = aggregate.NewTable()
	a.stats = model.NewRunStats()
	a.seenFiles = make(map[string]bool)
	a.windowStart = end
	a.mu.Unlock()

	if stats.TotalLines == 0 {
		return
	}

	doc := &model.Digest{
		Metadata: aggregate.Summarize(start, end, stats, table.Len()),
		Data:     table.Flows(),
		RunID:    uuid.NewString(),
	}

	timestamp := end.Format(digest.TimestampLayout)
	for _, writer := range a.writers {
		if err := writer.Write(doc, timestamp); err != nil {
			log.Printf("Error writing digest for window %s: %v", timestamp, err)
			a.metrics.WriteErrors.Inc()
			continue
		}
		a.metrics.DigestsWritten.Inc()
	}
	log.Printf("Window cut at %s: %d lines, %d flows.", timestamp, stats.TotalLines, table.Len())
}

// Stop gracefully shuts down the aggregator, cutting one final window.
func (a *Aggregator) Stop() {
	log.Println("Aggregator stopping...")
	if a.sub != nil {
		a.sub.Close()
	}
	close(a.done)
	a.wg.Wait()
	log.Println("Aggregator stopped.")
}
