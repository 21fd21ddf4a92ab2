package digest

import (
	"Go2FlowDigest/internal/config"
	"Go2FlowDigest/internal/model"
	"log"
)

// BuildWriters constructs the enabled supplemental sinks from the config.
// A sink that cannot be created is skipped with a warning; the primary
// file writer is constructed separately and is never optional.
func BuildWriters(cfg *config.Config) []model.Writer {
	writers := make([]model.Writer, 0, len(cfg.Writers))
	for _, def := range cfg.Writers {
		if !def.Enabled {
			continue
		}

		switch def.Type {
		case "clickhouse":
			writer, err := NewClickHouseWriter(def.ClickHouse)
			if err != nil {
				log.Printf("Warning: failed to create writer type '%s': %v, skipping.", def.Type, err)
				continue
			}
			writers = append(writers, writer)
		default:
			log.Printf("Warning: unknown writer type '%s' in config, skipping.", def.Type)
		}
	}
	return writers
}
