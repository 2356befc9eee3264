package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/msarvaro/gastro-sub000/internal/cloudwriter"
	"github.com/msarvaro/gastro-sub000/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// historyRecord is the flat Parquet row for both order and request history.
type historyRecord struct {
	Topic    string  `parquet:"name=topic, type=BYTE_ARRAY, convertedtype=UTF8"`
	ID       string  `parquet:"name=id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Status   string  `parquet:"name=status, type=BYTE_ARRAY, convertedtype=UTF8"`
	Total    float64 `parquet:"name=total, type=DOUBLE"`
	Branch   string  `parquet:"name=branch, type=BYTE_ARRAY, convertedtype=UTF8"`
	ClosedAt int64   `parquet:"name=closed_at, type=INT64"`
}

// ParquetSink writes one Parquet file per topic, locally or into cloud
// storage through a CloudWriter.
type ParquetSink struct {
	basePath           string
	folder             string
	writers            map[string]*writer.ParquetWriter
	files              map[string]source.ParquetFile
	cloudWriterFactory cloudwriter.CloudWriterFactory
	cloudBucketName    string
}

func NewParquetSink(cfg models.ExportConfig) (*ParquetSink, error) {
	p := &ParquetSink{
		basePath: cfg.OutputPath,
		folder:   cfg.OutputFolder,
		writers:  make(map[string]*writer.ParquetWriter),
		files:    make(map[string]source.ParquetFile),
	}

	if cfg.Destination != "" && cfg.Destination != "local" {
		switch cfg.CloudStorage.Provider {
		case "s3":
			factory, err := cloudwriter.NewS3WriterFactory(cfg.CloudStorage.Region)
			if err != nil {
				return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
			}
			p.cloudWriterFactory = factory
			p.cloudBucketName = cfg.CloudStorage.BucketName
		default:
			return nil, fmt.Errorf("unsupported cloud storage provider: %s", cfg.CloudStorage.Provider)
		}
	}

	return p, nil
}

func (p *ParquetSink) WriteSnapshot(topic string, msg []byte) error {
	pw, ok := p.writers[topic]
	if !ok {
		var err error
		pw, err = p.createWriter(topic)
		if err != nil {
			return fmt.Errorf("failed to create parquet writer: %w", err)
		}
		p.writers[topic] = pw
	}

	record, err := toHistoryRecord(topic, msg)
	if err != nil {
		return err
	}
	if err := pw.Write(record); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

func (p *ParquetSink) createWriter(topic string) (*writer.ParquetWriter, error) {
	var fw source.ParquetFile
	objectPath := filepath.Join(p.folder, topic+".parquet")

	if p.cloudWriterFactory != nil {
		cw, err := p.cloudWriterFactory.NewWriter(p.cloudBucketName, objectPath)
		if err != nil {
			return nil, err
		}
		fw = NewCloudParquetFile(cw)
	} else {
		dir := filepath.Join(p.basePath, p.folder)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, err
		}
		var err error
		fw, err = local.NewLocalFileWriter(filepath.Join(p.basePath, objectPath))
		if err != nil {
			return nil, err
		}
	}

	p.files[topic] = fw
	return writer.NewParquetWriter(fw, new(historyRecord), 4)
}

func (p *ParquetSink) Close() error {
	for topic, pw := range p.writers {
		if err := pw.WriteStop(); err != nil {
			return fmt.Errorf("failed to finalize parquet file for %s: %w", topic, err)
		}
		if err := p.files[topic].Close(); err != nil {
			return err
		}
	}
	return nil
}

func toHistoryRecord(topic string, msg []byte) (historyRecord, error) {
	record := historyRecord{Topic: topic}
	switch topic {
	case TopicOrderHistory:
		var order models.Order
		if err := json.Unmarshal(msg, &order); err != nil {
			return record, err
		}
		record.ID = order.ID
		record.Status = order.Status
		record.Total = order.Total
		record.ClosedAt = order.ClosedAt().Unix()
	case TopicRequestHistory:
		var request models.SupplyRequest
		if err := json.Unmarshal(msg, &request); err != nil {
			return record, err
		}
		record.ID = request.ID
		record.Status = request.Status
		record.Branch = request.Branch
		record.ClosedAt = request.ClosedAt().Unix()
	default:
		return record, fmt.Errorf("unknown snapshot topic %q", topic)
	}
	return record, nil
}

// CloudParquetFile adapts a CloudWriter to the parquet file source. Cloud
// objects are write-once, so reads and seeks from the end are unsupported.
type CloudParquetFile struct {
	cloudWriter cloudwriter.CloudWriter
	offset      int64
}

func NewCloudParquetFile(cw cloudwriter.CloudWriter) *CloudParquetFile {
	return &CloudParquetFile{cloudWriter: cw}
}

func (c *CloudParquetFile) Open(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *CloudParquetFile) Create(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *CloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *CloudParquetFile) Read(p []byte) (n int, err error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *CloudParquetFile) Write(p []byte) (n int, err error) {
	return c.cloudWriter.Write(p)
}

func (c *CloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}
