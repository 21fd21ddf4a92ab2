package relay

import (
	"Go2FlowDigest/internal/config"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// Publisher is responsible for publishing log lines to a NATS subject.
type Publisher struct {
	nc        *nats.Conn
	subject   string
	sessionID string
}

// NewPublisher creates a new NATS publisher with a fresh session ID.
func NewPublisher(cfg config.RelayConfig) (*Publisher, error) {
	nc, err := nats.Connect(cfg.NATSURL)
	if err != nil {
		return nil, err
	}
	log.Printf("Connected to NATS server at %s", cfg.NATSURL)
	return &Publisher{nc: nc, subject: cfg.Subject, sessionID: uuid.NewString()}, nil
}

// SessionID returns the identifier stamped on every envelope from this publisher.
func (p *Publisher) SessionID() string {
	return p.sessionID
}

// Publish wraps a log line in an envelope and publishes it to the configured subject.
func (p *Publisher) Publish(path, line string) error {
	envelope := Envelope{
		SessionID: p.sessionID,
		Path:      path,
		Line:      line,
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	return p.nc.Publish(p.subject, data)
}

// Close drains and closes the NATS connection.
func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Drain()
		log.Println("NATS connection drained and closed.")
	}
}
