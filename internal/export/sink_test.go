package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/msarvaro/gastro-sub000/internal/models"
)

func TestJSONSinkWritesOneLinePerRecord(t *testing.T) {
	dir := t.TempDir()
	sink := NewJSONSink(dir, "out")

	if err := sink.WriteSnapshot(TopicOrderHistory, []byte(`{"id":"o1"}`)); err != nil {
		t.Fatal(err)
	}
	if err := sink.WriteSnapshot(TopicOrderHistory, []byte(`{"id":"o2"}`)); err != nil {
		t.Fatal(err)
	}
	if err := sink.WriteSnapshot(TopicRequestHistory, []byte(`{"id":"r1"}`)); err != nil {
		t.Fatal(err)
	}
	if err := sink.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "out", TopicOrderHistory+".json"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Errorf("got %d lines, want 2:\n%s", len(lines), data)
	}

	if _, err := os.Stat(filepath.Join(dir, "out", TopicRequestHistory+".json")); err != nil {
		t.Errorf("request topic file missing: %v", err)
	}
}

func TestCSVSinkHeaderAndRows(t *testing.T) {
	dir := t.TempDir()
	sink := NewCSVSink(dir, "out")

	if err := sink.WriteSnapshot(TopicOrderHistory, []byte(`{"id":"o1","total":6000,"status":"completed"}`)); err != nil {
		t.Fatal(err)
	}
	if err := sink.WriteSnapshot(TopicOrderHistory, []byte(`{"id":"o2","total":1200,"status":"cancelled"}`)); err != nil {
		t.Fatal(err)
	}
	if err := sink.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "out", TopicOrderHistory+".csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header plus 2 rows:\n%s", len(lines), data)
	}
	if lines[0] != "id,status,total" {
		t.Errorf("header = %q, want sorted keys", lines[0])
	}
	if !strings.HasPrefix(lines[1], "o1,completed,6000") {
		t.Errorf("row = %q", lines[1])
	}
}

func TestBuildSinkDefaultsToConsole(t *testing.T) {
	sink, err := BuildSink(models.ExportConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := sink.(*ConsoleSink); !ok {
		t.Errorf("got %T, want *ConsoleSink", sink)
	}
}

func TestBuildSinkRejectsUnknown(t *testing.T) {
	if _, err := BuildSink(models.ExportConfig{Sink: "carrier-pigeon"}); err == nil {
		t.Error("expected an error for an unknown sink")
	}
}
