package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTraceWritesSequencedEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "trace.log")
	Configure(path)
	SetTraceEnabled(true)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		Configure("")
	})

	Trace("first", map[string]interface{}{"n": 1})
	Trace("second", nil)

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open trace: %v", err)
	}
	defer f.Close()
	var seqs []uint64
	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry struct {
			Seq   uint64 `json:"seq"`
			Event string `json:"event"`
		}
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("decode entry: %v", err)
		}
		seqs = append(seqs, entry.Seq)
		names = append(names, entry.Event)
	}
	if len(seqs) != 2 || seqs[1] != seqs[0]+1 {
		t.Fatalf("expected consecutive sequence numbers, got %v", seqs)
	}
	if strings.Join(names, ",") != "first,second" {
		t.Fatalf("unexpected events %v", names)
	}
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")
	Configure(path)
	SetTraceEnabled(false)
	t.Cleanup(func() { Configure("") })

	Trace("ignored", nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file, stat err=%v", err)
	}
}

func TestErrorAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "error.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })

	Error(nil)
	Error(errors.New("boom"))
	Errorf("wrapped: %w", errors.New("inner"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "boom") || !strings.Contains(text, "wrapped: inner") {
		t.Fatalf("unexpected log contents %q", text)
	}
	if Path() != path {
		t.Fatalf("expected path %q, got %q", path, Path())
	}
}
