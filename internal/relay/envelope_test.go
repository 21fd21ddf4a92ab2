package relay

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestEnvelope_WireFormat(t *testing.T) {
	envelope := Envelope{
		SessionID: "a1b2c3",
		Path:      "syslog/fw1.log",
		Line:      "_,fw1,_,src1,dst1,80,tcp,_,_,10,1000,5,500",
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		t.Fatalf("Failed to marshal envelope: %v", err)
	}

	for _, key := range []string{`"session_id"`, `"path"`, `"line"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("Wire format missing key %s: %s", key, data)
		}
	}

	var decoded Envelope
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal envelope: %v", err)
	}
	if decoded != envelope {
		t.Errorf("Round trip mismatch: %+v vs %+v", decoded, envelope)
	}
}

func TestEnvelope_DecodesForeignPayload(t *testing.T) {
	payload := `{"session_id":"s1","path":"a.log","line":"raw"}`

	var envelope Envelope
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		t.Fatalf("Failed to unmarshal payload: %v", err)
	}
	if envelope.SessionID != "s1" || envelope.Path != "a.log" || envelope.Line != "raw" {
		t.Errorf("Decoded envelope wrong: %+v", envelope)
	}
}
