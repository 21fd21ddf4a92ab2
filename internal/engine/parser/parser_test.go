package parser

import (
	"errors"
	"strings"
	"testing"
)

// validLine places every consumed field at its fixed position: firewall IP
// at 1, source/destination at 3/4, port at 5, protocol at 6, the four
// counters at 9-12. Unused positions hold placeholders.
const validLine = "_,fw1,_,src1,dst1,80,tcp,_,_,10,1000,5,500"

// spliced returns validLine with the field at index i replaced by value.
func spliced(i int, value string) string {
	parts := strings.Split(validLine, ",")
	parts[i] = value
	return strings.Join(parts, ",")
}

func TestParseLine(t *testing.T) {
	conn, err := ParseLine(validLine)
	if err != nil {
		t.Fatalf("ParseLine failed on a valid line: %v", err)
	}

	if conn.FirewallIP != "fw1" {
		t.Errorf("Expected firewall IP 'fw1', got %q", conn.FirewallIP)
	}
	if conn.SourceIP != "src1" || conn.DestinationIP != "dst1" {
		t.Errorf("Expected src1/dst1, got %q/%q", conn.SourceIP, conn.DestinationIP)
	}
	if conn.DestinationPort != "80" || conn.Protocol != "tcp" {
		t.Errorf("Expected 80/tcp, got %q/%q", conn.DestinationPort, conn.Protocol)
	}
	if conn.PacketsIn != 10 || conn.BytesIn != 1000 || conn.PacketsOut != 5 || conn.BytesOut != 500 {
		t.Errorf("Counters wrong: %+v", conn)
	}
}

func TestParseLine_TrimsLine(t *testing.T) {
	// Leading/trailing whitespace and a carriage return are trimmed from
	// the line as a whole; fields themselves are taken verbatim.
	conn, err := ParseLine("  " + validLine + "\r\n")
	if err != nil {
		t.Fatalf("ParseLine failed on a padded line: %v", err)
	}
	if conn.BytesOut != 500 {
		t.Errorf("Expected bytes-out 500, got %d", conn.BytesOut)
	}
}

func TestParseLine_TooFewFields(t *testing.T) {
	for _, line := range []string{"", "a,b,c", strings.Join(strings.Split(validLine, ",")[:12], ",")} {
		if _, err := ParseLine(line); !errors.Is(err, ErrMalformedLine) {
			t.Errorf("Line %q: expected ErrMalformedLine, got %v", line, err)
		}
	}
}

func TestParseLine_MissingCounter(t *testing.T) {
	for _, i := range []int{9, 10, 11, 12} {
		if _, err := ParseLine(spliced(i, "")); !errors.Is(err, ErrMissingCounter) {
			t.Errorf("Empty field %d: expected ErrMissingCounter, got %v", i, err)
		}
	}
}

func TestParseLine_InvalidNumber(t *testing.T) {
	for _, value := range []string{"abc", "-5", "1.5", "10x"} {
		if _, err := ParseLine(spliced(9, value)); !errors.Is(err, ErrInvalidNumber) {
			t.Errorf("Counter %q: expected ErrInvalidNumber, got %v", value, err)
		}
	}
}

func TestParseLine_MissingBeforeInvalid(t *testing.T) {
	// Emptiness of any counter is checked before any parsing happens.
	parts := strings.Split(validLine, ",")
	parts[9] = "abc"
	parts[10] = ""
	if _, err := ParseLine(strings.Join(parts, ",")); !errors.Is(err, ErrMissingCounter) {
		t.Errorf("Expected ErrMissingCounter to win over ErrInvalidNumber, got %v", err)
	}
}

func TestParseLine_ExtraFieldsAllowed(t *testing.T) {
	conn, err := ParseLine(validLine + ",extra,fields")
	if err != nil {
		t.Fatalf("ParseLine failed on a wider line: %v", err)
	}
	if conn.PacketsIn != 10 {
		t.Errorf("Positional fields shifted on a wider line: %+v", conn)
	}
}

func TestRejectReason(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{ErrMalformedLine, "malformed_line"},
		{ErrMissingCounter, "missing_counter"},
		{ErrInvalidNumber, "invalid_number"},
		{errors.New("something else"), "unknown"},
	}
	for _, c := range cases {
		if got := RejectReason(c.err); got != c.want {
			t.Errorf("RejectReason(%v): expected %q, got %q", c.err, c.want, got)
		}
	}

	// Wrapped sentinels classify the same as bare ones.
	_, err := ParseLine(spliced(10, "zz"))
	if got := RejectReason(err); got != "invalid_number" {
		t.Errorf("Wrapped error: expected %q, got %q", "invalid_number", got)
	}
}
