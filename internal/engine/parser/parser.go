package parser

import (
	"Go2FlowDigest/internal/model"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// The export schema carries at least 13 comma-separated fields per line;
// only the positions below are consumed.
const minFields = 13

const (
	fieldFirewallIP      = 1
	fieldSourceIP        = 3
	fieldDestinationIP   = 4
	fieldDestinationPort = 5
	fieldProtocol        = 6
	fieldPacketsIn       = 9
	fieldBytesIn         = 10
	fieldPacketsOut      = 11
	fieldBytesOut        = 12
)

// Rejection signals for a single line. Callers branch with errors.Is: the
// run accumulator only needs accepted-or-not, the metrics want the reason.
var (
	ErrMalformedLine  = errors.New("malformed line: too few fields")
	ErrMissingCounter = errors.New("missing counter field")
	ErrInvalidNumber  = errors.New("invalid numeric field")
)

// ParseLine splits one raw log line into a validated Connection. It is a
// pure function of the line text; a rejected line carries one of the
// sentinel errors above and contributes nothing downstream.
func ParseLine(line string) (model.Connection, error) {
	parts := strings.Split(strings.TrimSpace(line), ",")
	if len(parts) < minFields {
		return model.Connection{}, ErrMalformedLine
	}

	packetsIn := parts[fieldPacketsIn]
	bytesIn := parts[fieldBytesIn]
	packetsOut := parts[fieldPacketsOut]
	bytesOut := parts[fieldBytesOut]
	if packetsIn == "" || bytesIn == "" || packetsOut == "" || bytesOut == "" {
		return model.Connection{}, ErrMissingCounter
	}

	conn := model.Connection{
		FirewallIP:      parts[fieldFirewallIP],
		SourceIP:        parts[fieldSourceIP],
		DestinationIP:   parts[fieldDestinationIP],
		DestinationPort: parts[fieldDestinationPort],
		Protocol:        parts[fieldProtocol],
	}

	// All four counters parse or the whole line is rejected.
	var err error
	if conn.PacketsIn, err = strconv.ParseUint(packetsIn, 10, 64); err != nil {
		return model.Connection{}, fmt.Errorf("%w: %q", ErrInvalidNumber, packetsIn)
	}
	if conn.BytesIn, err = strconv.ParseUint(bytesIn, 10, 64); err != nil {
		return model.Connection{}, fmt.Errorf("%w: %q", ErrInvalidNumber, bytesIn)
	}
	if conn.PacketsOut, err = strconv.ParseUint(packetsOut, 10, 64); err != nil {
		return model.Connection{}, fmt.Errorf("%w: %q", ErrInvalidNumber, packetsOut)
	}
	if conn.BytesOut, err = strconv.ParseUint(bytesOut, 10, 64); err != nil {
		return model.Connection{}, fmt.Errorf("%w: %q", ErrInvalidNumber, bytesOut)
	}

	return conn, nil
}

// RejectReason names the rejection class of a ParseLine error, suitable
// as a metrics label.
func RejectReason(err error) string {
	switch {
	case errors.Is(err, ErrMalformedLine):
		return "malformed_line"
	case errors.Is(err, ErrMissingCounter):
		return "missing_counter"
	case errors.Is(err, ErrInvalidNumber):
		return "invalid_number"
	default:
		return "unknown"
	}
}
