package logger

import "testing"

func TestInitReplacesGlobalLogger(t *testing.T) {
	orig := Log
	defer func() { Log = orig }()

	Init("debug")
	if Log == orig {
		t.Fatalf("expected Init to install a fresh logger")
	}

	// The structured helpers must work on the freshly installed logger.
	InfoWithFields("request handled", Fields{"request_id": "abc", "status": 200})
	ErrorWithFields("request failed", Fields{"request_id": "abc"})
}

func TestInitDefaultsEmptyLevelToInfo(t *testing.T) {
	orig := Log
	defer func() { Log = orig }()

	Init("")
	if Log == nil {
		t.Fatalf("expected a logger for the empty level")
	}
}
