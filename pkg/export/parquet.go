package export

import (
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"

	"github.com/ccollicutt/logtally/pkg/parser"
)

const parquetBatchSize = 10000

// parquetRecord is the Parquet schema struct.
type parquetRecord struct {
	Date    string `parquet:"date"`
	Time    string `parquet:"time"`
	Level   string `parquet:"level,dict"`
	Message string `parquet:"message"`
}

type parquetWriter struct {
	file   *os.File
	writer *parquet.GenericWriter[parquetRecord]
	batch  []parquetRecord
}

func newParquetWriter(path string) (*parquetWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := parquet.NewGenericWriter[parquetRecord](f,
		parquet.Compression(&zstd.Codec{}),
	)

	return &parquetWriter{
		file:   f,
		writer: w,
		batch:  make([]parquetRecord, 0, parquetBatchSize),
	}, nil
}

func (w *parquetWriter) Write(r parser.Record) error {
	w.batch = append(w.batch, parquetRecord(r))
	if len(w.batch) >= parquetBatchSize {
		return w.flush()
	}
	return nil
}

func (w *parquetWriter) flush() error {
	if len(w.batch) == 0 {
		return nil
	}
	_, err := w.writer.Write(w.batch)
	w.batch = w.batch[:0]
	return err
}

func (w *parquetWriter) Close() error {
	if err := w.flush(); err != nil {
		_ = w.writer.Close()
		_ = w.file.Close()
		return err
	}
	if err := w.writer.Close(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}
