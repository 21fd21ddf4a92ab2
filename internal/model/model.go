package model

// Connection holds the fields consumed from one firewall log line after
// validation. Counters are direction-split: "in" is traffic toward the
// destination, "out" is the reply direction.
type Connection struct {
	FirewallIP      string
	SourceIP        string
	DestinationIP   string
	DestinationPort string
	Protocol        string
	PacketsIn       uint64
	BytesIn         uint64
	PacketsOut      uint64
	BytesOut        uint64
}

// FlowRecord is the aggregate of every connection sharing one flow key.
// The hyphenated JSON names are a wire contract with downstream consumers
// of the digest document and must not change.
type FlowRecord struct {
	Key           string `json:"key"`
	SourceIP      string `json:"source-ip"`
	DestinationIP string `json:"destination-ip"`
	PacketsIn     uint64 `json:"packets-in"`
	BytesIn       uint64 `json:"bytes-in"`
	PacketsOut    uint64 `json:"packets-out"`
	BytesOut      uint64 `json:"bytes-out"`
	Count         uint64 `json:"count"`
}

// RunStats tracks run-wide line and file accounting for a single scan.
// TotalLines counts every line read; AcceptedLines only those that passed
// validation and reached the aggregation table.
type RunStats struct {
	TotalLines    uint64
	AcceptedLines uint64
	Files         []string
}

// NewRunStats returns an empty accumulator. Files starts non-nil so an
// empty run still serializes filesProcessed as [].
func NewRunStats() *RunStats {
	return &RunStats{Files: make([]string, 0)}
}

// RecordLine counts one line, accepted or not.
func (s *RunStats) RecordLine(accepted bool) {
	s.TotalLines++
	if accepted {
		s.AcceptedLines++
	}
}

// RecordFile appends a file path to the ordered processed list.
func (s *RunStats) RecordFile(path string) {
	s.Files = append(s.Files, path)
}

// RejectedLines is the number of lines that failed validation.
func (s *RunStats) RejectedLines() uint64 {
	return s.TotalLines - s.AcceptedLines
}

// Performance carries the human-readable throughput figure.
type Performance struct {
	ConnectionsPerSecond string `json:"connectionsPerSecond"`
}

// Metadata is the run-level statistics block of a digest. Times are
// milliseconds since the Unix epoch; ElapsedTime is seconds.
type Metadata struct {
	StartTime        int64       `json:"startTime"`
	EndTime          int64       `json:"endTime"`
	ElapsedTime      float64     `json:"elapsedTime"`
	TotalConnections uint64      `json:"totalConnections"`
	SessionClose     string      `json:"sessionClose"`
	Flows            int         `json:"flows"`
	FilesProcessed   []string    `json:"filesProcessed"`
	Performance      Performance `json:"processingPerformance"`
}

// Digest is the complete output document for one run: the metadata block
// plus every aggregated flow keyed by its composite flow key.
type Digest struct {
	Metadata Metadata               `json:"metadata"`
	Data     map[string]*FlowRecord `json:"data"`

	// RunID tags the run across sinks and logs. It is deliberately not
	// part of the document wire format.
	RunID string `json:"-"`
}
