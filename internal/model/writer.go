package model

// Writer defines a generic interface for persisting a finished digest.
// A writer is invoked once per run (batch engine) or once per window
// (stream engine); the timestamp is the digest's generation time formatted
// as YYYYMMDD_HHMMSS and is shared by every sink of the same run.
type Writer interface {
	Write(d *Digest, timestamp string) error
}
