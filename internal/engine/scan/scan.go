package scan

import (
	"Go2FlowDigest/internal/engine/aggregate"
	"Go2FlowDigest/internal/engine/parser"
	"Go2FlowDigest/internal/model"
	"Go2FlowDigest/pkg/logfile"
	"log"
	"time"

	"github.com/google/uuid"
)

// Run owns the state of one batch aggregation pass over the input
// directory: the flow table, the line/file accounting and the clock. A
// Run is single-use; Execute hands its table off to the digest document.
type Run struct {
	inputDir string
	runID    string
	table    *aggregate.Table
	stats    *model.RunStats
	now      func() time.Time
}

// NewRun prepares a run over the given input directory.
func NewRun(inputDir string) *Run {
	return &Run{
		inputDir: inputDir,
		runID:    uuid.NewString(),
		table:    aggregate.NewTable(),
		stats:    model.NewRunStats(),
		now:      time.Now,
	}
}

// Execute scans every file in the input directory, one file at a time and
// strictly in order, and returns the finished digest document.
//
// Nothing in the scan itself is fatal: a missing or unreadable input
// directory yields an empty run, an unreadable file is skipped, and a
// rejected line only moves the accounting.
func (r *Run) Execute() *model.Digest {
	start := r.now()

	files, err := logfile.ListFiles(r.inputDir)
	if err != nil {
		log.Printf("Warning: cannot list input directory '%s': %v", r.inputDir, err)
	}

	for _, path := range files {
		reader, err := logfile.NewReader(path)
		if err != nil {
			log.Printf("Warning: skipping unreadable file '%s': %v", path, err)
			continue
		}
		r.stats.RecordFile(path)

		err = reader.ReadLines(func(line string) {
			conn, err := parser.ParseLine(line)
			if err != nil {
				r.stats.RecordLine(false)
				return
			}
			r.table.Upsert(aggregate.FlowKey(conn), conn)
			r.stats.RecordLine(true)
		})
		reader.Close()
		if err != nil {
			// Lines consumed before the error stay counted; the rest of
			// the file is abandoned.
			log.Printf("Warning: read error in '%s': %v", path, err)
		}
	}

	end := r.now()
	return &model.Digest{
		Metadata: aggregate.Summarize(start, end, r.stats, r.table.Len()),
		Data:     r.table.Flows(),
		RunID:    r.runID,
	}
}
