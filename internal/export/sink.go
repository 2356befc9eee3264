package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/msarvaro/gastro-sub000/internal/models"
)

// SnapshotSink receives one serialized record per row of an exported history
// snapshot, keyed by topic (order_history, request_history).
type SnapshotSink interface {
	WriteSnapshot(topic string, msg []byte) error
	Close() error
}

// BuildSink picks the destination from config, console being the fallback.
func BuildSink(cfg models.ExportConfig) (SnapshotSink, error) {
	switch cfg.Sink {
	case "", "console":
		return &ConsoleSink{}, nil
	case "json":
		return NewJSONSink(cfg.OutputPath, cfg.OutputFolder), nil
	case "csv":
		return NewCSVSink(cfg.OutputPath, cfg.OutputFolder), nil
	case "kafka":
		return NewKafkaSink(cfg.Kafka)
	case "parquet":
		return NewParquetSink(cfg)
	case "postgres":
		return NewPostgresSink(cfg.Archive)
	default:
		return nil, fmt.Errorf("unknown export sink %q", cfg.Sink)
	}
}

type ConsoleSink struct{}

func (c *ConsoleSink) WriteSnapshot(topic string, msg []byte) error {
	_, err := fmt.Fprintf(os.Stdout, "[%s] %s\n", topic, msg)
	return err
}

func (c *ConsoleSink) Close() error { return nil }

// JSONSink appends one JSON document per line into a file per topic.
type JSONSink struct {
	basePath string
	folder   string
	files    map[string]*os.File
}

func NewJSONSink(basePath, folder string) *JSONSink {
	return &JSONSink{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*os.File),
	}
}

func (j *JSONSink) WriteSnapshot(topic string, msg []byte) error {
	file, ok := j.files[topic]
	if !ok {
		dir := filepath.Join(j.basePath, j.folder)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
		var err error
		file, err = os.Create(filepath.Join(dir, topic+".json"))
		if err != nil {
			return fmt.Errorf("failed to create file for topic %s: %w", topic, err)
		}
		j.files[topic] = file
	}

	if _, err := file.Write(msg); err != nil {
		return fmt.Errorf("failed to write snapshot to topic %s: %w", topic, err)
	}
	_, err := file.WriteString("\n")
	return err
}

func (j *JSONSink) Close() error {
	for _, file := range j.files {
		if err := file.Close(); err != nil {
			return err
		}
	}
	return nil
}

// CSVSink writes one CSV file per topic; the header comes from the first
// record's keys, sorted, and later records project onto it.
type CSVSink struct {
	basePath string
	folder   string
	files    map[string]*csv.Writer
	headers  map[string][]string
}

func NewCSVSink(basePath, folder string) *CSVSink {
	return &CSVSink{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*csv.Writer),
		headers:  make(map[string][]string),
	}
}

func (c *CSVSink) WriteSnapshot(topic string, msg []byte) error {
	var record map[string]interface{}
	if err := json.Unmarshal(msg, &record); err != nil {
		return err
	}

	w, ok := c.files[topic]
	if !ok {
		dir := filepath.Join(c.basePath, c.folder)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
		file, err := os.Create(filepath.Join(dir, topic+".csv"))
		if err != nil {
			return err
		}
		w = csv.NewWriter(file)
		c.files[topic] = w

		headers := sortedKeys(record)
		if err := w.Write(headers); err != nil {
			return err
		}
		c.headers[topic] = headers
	}

	row := make([]string, len(c.headers[topic]))
	for i, header := range c.headers[topic] {
		if value, ok := record[header]; ok && value != nil {
			row[i] = fmt.Sprintf("%v", value)
		}
	}
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func (c *CSVSink) Close() error {
	for _, w := range c.files {
		w.Flush()
		if err := w.Error(); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys(record map[string]interface{}) []string {
	var keys []string
	for key := range record {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
