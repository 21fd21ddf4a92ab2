package digest

import (
	"Go2FlowDigest/internal/config"
	"Go2FlowDigest/internal/model"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

const createTableStatement = `
CREATE TABLE IF NOT EXISTS flow_digests (
    RunID            String,
    GeneratedAt      DateTime,
    FlowKey          String,
    SourceIP         String,
    DestinationIP    String,
    PacketsIn        UInt64,
    BytesIn          UInt64,
    PacketsOut       UInt64,
    BytesOut         UInt64,
    ConnectionCount  UInt64,
    TotalConnections UInt64,
    TotalFlows       UInt64
) ENGINE = MergeTree()
PARTITION BY toYYYYMM(GeneratedAt)
ORDER BY (RunID, FlowKey);
`

// ClickHouseWriter mirrors each digest into the flow_digests table, one
// row per flow with the run identity and totals attached so runs can be
// joined across sinks. It implements the model.Writer interface.
type ClickHouseWriter struct {
	conn driver.Conn
}

// NewClickHouseWriter connects to ClickHouse and ensures the target table
// exists.
func NewClickHouseWriter(cfg config.ClickHouseConfig) (model.Writer, error) {
	conn, err := connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to clickhouse: %w", err)
	}

	if err := conn.Exec(context.Background(), createTableStatement); err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}
	log.Println("Successfully connected to ClickHouse and ensured table exists.")

	return &ClickHouseWriter{conn: conn}, nil
}

func connect(cfg config.ClickHouseConfig) (driver.Conn, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{addr},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
		Debug: false,
		Compression: &clickhouse.Compression{
			Method: clickhouse.CompressionLZ4,
		},
	})

	if err != nil {
		return nil, err
	}

	if err := conn.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping clickhouse: %w", err)
	}

	return conn, nil
}

// Write inserts every flow of the digest as one batch.
func (w *ClickHouseWriter) Write(d *model.Digest, timestamp string) error {
	batch, err := w.conn.PrepareBatch(context.Background(), "INSERT INTO flow_digests")
	if err != nil {
		return fmt.Errorf("failed to prepare batch: %w", err)
	}

	generatedAt, _ := time.Parse(TimestampLayout, timestamp)
	flowCount := 0

	for _, rec := range d.Data {
		flowCount++
		err = batch.Append(
			d.RunID,
			generatedAt,
			rec.Key,
			rec.SourceIP,
			rec.DestinationIP,
			rec.PacketsIn,
			rec.BytesIn,
			rec.PacketsOut,
			rec.BytesOut,
			rec.Count,
			d.Metadata.TotalConnections,
			uint64(d.Metadata.Flows),
		)
		if err != nil {
			return fmt.Errorf("failed to append flow to batch: %w", err)
		}
	}

	if flowCount == 0 {
		return nil // Nothing to write
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("failed to send batch: %w", err)
	}

	log.Printf("Wrote %d flows to ClickHouse for run %s", flowCount, d.RunID)
	return nil
}
