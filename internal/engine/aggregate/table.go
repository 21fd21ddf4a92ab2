package aggregate

import (
	"Go2FlowDigest/internal/model"
	"strings"
)

// FlowKey builds the composite aggregation key for a connection: firewall
// IP, source IP, destination IP, destination port and protocol joined with
// "_". The layout is shared with downstream consumers of the digest
// document and must stay stable.
func FlowKey(c model.Connection) string {
	return strings.Join([]string{
		c.FirewallIP,
		c.SourceIP,
		c.DestinationIP,
		c.DestinationPort,
		c.Protocol,
	}, "_")
}

// Table is the in-memory aggregation map for one run: composite flow key
// to accumulated record. A table is owned by a single goroutine; callers
// that share one must serialize access themselves.
type Table struct {
	flows map[string]*model.FlowRecord
}

// NewTable returns an empty table. The map is non-nil from birth so an
// empty run still serializes its data block as {}.
func NewTable() *Table {
	return &Table{flows: make(map[string]*model.FlowRecord)}
}

// Upsert merges one connection into the record for key, creating the
// record if this is the first connection seen for the key. Counters
// accumulate by summation; the source and destination IPs keep the values
// captured from the first contributing connection.
func (t *Table) Upsert(key string, c model.Connection) {
	if rec, ok := t.flows[key]; ok {
		rec.PacketsIn += c.PacketsIn
		rec.BytesIn += c.BytesIn
		rec.PacketsOut += c.PacketsOut
		rec.BytesOut += c.BytesOut
		rec.Count++
	} else {
		t.flows[key] = &model.FlowRecord{
			Key:           key,
			SourceIP:      c.SourceIP,
			DestinationIP: c.DestinationIP,
			PacketsIn:     c.PacketsIn,
			BytesIn:       c.BytesIn,
			PacketsOut:    c.PacketsOut,
			BytesOut:      c.BytesOut,
			Count:         1,
		}
	}
}

// Len returns the number of distinct flows in the table.
func (t *Table) Len() int {
	return len(t.flows)
}

// Flows hands off the underlying map for the output document. The table
// must not be mutated after the hand-off.
func (t *Table) Flows() map[string]*model.FlowRecord {
	return t.flows
}
