package aggregate

import (
	"Go2FlowDigest/internal/model"
	"fmt"
	"time"
)

// Summarize derives the run-level metadata block from the accumulated
// stats once scanning has finished. Times are reduced to millisecond
// precision to match the document contract.
//
// Both divisions below can degenerate: acceptance percentage when no
// lines were read, throughput when the run took less than a millisecond.
// Each emits 0.00 instead of Inf/NaN so the document stays parseable.
func Summarize(start, end time.Time, stats *model.RunStats, flowCount int) model.Metadata {
	startMs := start.UnixMilli()
	endMs := end.UnixMilli()
	elapsed := float64(endMs-startMs) / 1000.0

	pct := 0.0
	if stats.TotalLines > 0 {
		pct = float64(stats.AcceptedLines) / float64(stats.TotalLines) * 100.0
	}

	cps := 0.0
	if elapsed > 0 {
		cps = float64(stats.TotalLines) / elapsed
	}

	return model.Metadata{
		StartTime:        startMs,
		EndTime:          endMs,
		ElapsedTime:      elapsed,
		TotalConnections: stats.TotalLines,
		SessionClose:     fmt.Sprintf("%d (%.2f%% of total connections)", stats.AcceptedLines, pct),
		Flows:            flowCount,
		FilesProcessed:   stats.Files,
		Performance: model.Performance{
			ConnectionsPerSecond: fmt.Sprintf("%.2f connections/second", cps),
		},
	}
}
