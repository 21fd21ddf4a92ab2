package model

import "testing"

func TestRunStats_Accounting(t *testing.T) {
	stats := NewRunStats()
	for _, accepted := range []bool{true, false, true, false, false} {
		stats.RecordLine(accepted)
	}

	if stats.TotalLines != 5 || stats.AcceptedLines != 2 {
		t.Errorf("Unexpected line counts: %+v", stats)
	}
	if stats.RejectedLines() != 3 {
		t.Errorf("Expected 3 rejected lines, got %d", stats.RejectedLines())
	}
	if stats.AcceptedLines+stats.RejectedLines() != stats.TotalLines {
		t.Errorf("Accounting does not balance: %+v", stats)
	}
}

func TestRunStats_RecordFile(t *testing.T) {
	stats := NewRunStats()
	if stats.Files == nil || len(stats.Files) != 0 {
		t.Fatalf("Expected an empty non-nil files list, got %v", stats.Files)
	}

	stats.RecordFile("syslog/a.log")
	stats.RecordFile("syslog/b.log")
	if len(stats.Files) != 2 || stats.Files[0] != "syslog/a.log" || stats.Files[1] != "syslog/b.log" {
		t.Errorf("Files not recorded in order: %v", stats.Files)
	}
}
