package relay

// Envelope is the wire format for a single forwarded log line.
type Envelope struct {
	SessionID string `json:"session_id"`
	Path      string `json:"path"`
	Line      string `json:"line"`
}
