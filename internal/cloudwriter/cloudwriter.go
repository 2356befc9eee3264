package cloudwriter

// CloudWriter buffers snapshot bytes and uploads them as a single object on
// Close. Parquet export writes through this when the destination is cloud
// storage rather than local disk.
type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

type CloudWriterFactory interface {
	NewWriter(bucket, objectPath string) (CloudWriter, error)
}
