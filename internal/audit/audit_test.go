package audit

import (
	"testing"

	"github.com/docuvault/authgate-go/internal/types"
)

func TestLogRecordsNewestFirst(t *testing.T) {
	l := NewLog(8)
	sub := types.Subject{ID: 1}

	l.Record(sub, types.ActionRead, 101, true, "")
	l.Record(sub, types.ActionRead, 103, false, "not authorized to access this document")

	got := l.Recent(10)
	if len(got) != 2 {
		t.Fatalf("Recent = %d events, want 2", len(got))
	}
	if got[0].ResourceID != 103 || got[0].Allowed {
		t.Fatalf("newest event = %+v, want deny on 103", got[0])
	}
	if got[0].ID == got[1].ID {
		t.Fatalf("events share an id")
	}
}

func TestLogEvictsOldest(t *testing.T) {
	l := NewLog(3)
	for i := int64(1); i <= 5; i++ {
		l.Record(types.Subject{ID: i}, types.ActionRead, 100+i, true, "")
	}
	got := l.Recent(0)
	if len(got) != 3 {
		t.Fatalf("kept %d events, want 3", len(got))
	}
	if got[0].ResourceID != 105 || got[2].ResourceID != 103 {
		t.Fatalf("wrong window: %+v", got)
	}
}
