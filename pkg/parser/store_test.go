package parser

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const sampleLog = `2024-01-01 10:00:00 INFO Service started
2024-01-01 10:00:05 ERROR Disk failure
not a valid line
`

func writeLog(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeLog(t, "app.log", []byte(sampleLog))

	coll, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if coll.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", coll.Len())
	}
	if coll.Source() != path {
		t.Errorf("Source() = %q, want %q", coll.Source(), path)
	}
	if coll.Lines() != 3 {
		t.Errorf("Lines() = %d, want 3", coll.Lines())
	}
	if coll.Skipped() != 1 {
		t.Errorf("Skipped() = %d, want 1", coll.Skipped())
	}

	records := coll.Records()
	want := []Record{
		{Date: "2024-01-01", Time: "10:00:00", Level: "INFO", Message: "Service started"},
		{Date: "2024-01-01", Time: "10:00:05", Level: "ERROR", Message: "Disk failure"},
	}
	for i := range want {
		if records[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, records[i], want[i])
		}
	}
}

func TestLoad_PreservesOrderAndDuplicates(t *testing.T) {
	content := `2024-01-02 00:00:00 INFO later
2024-01-01 00:00:00 INFO earlier
2024-01-02 00:00:00 INFO later
`
	path := writeLog(t, "dup.log", []byte(content))

	coll, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	records := coll.Records()
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[0].Message != "later" || records[1].Message != "earlier" || records[2].Message != "later" {
		t.Errorf("records not in file order: %+v", records)
	}
}

func TestLoad_RecordsReturnsCopy(t *testing.T) {
	path := writeLog(t, "app.log", []byte(sampleLog))
	coll, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	records := coll.Records()
	records[0].Level = "CHANGED"

	if coll.Records()[0].Level != "INFO" {
		t.Error("modifying Records() result changed the collection")
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeLog(t, "empty.log", nil)

	coll, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !coll.Empty() {
		t.Errorf("Empty() = false, want true (Len %d)", coll.Len())
	}
}

func TestLoad_AllRejected(t *testing.T) {
	path := writeLog(t, "junk.log", []byte("junk\n\n  \nstill junk\n"))

	coll, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !coll.Empty() {
		t.Errorf("Len() = %d, want 0", coll.Len())
	}
	if coll.Skipped() != 2 {
		t.Errorf("Skipped() = %d, want 2 (blank lines are not counted)", coll.Skipped())
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.log"))
	if err == nil {
		t.Fatal("Load() expected error for missing file")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("errors.Is(err, ErrNotFound) = false, err = %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("errors.Is(err, fs.ErrNotExist) = false, err = %v", err)
	}
	if errors.Is(err, ErrIO) || errors.Is(err, ErrDecode) {
		t.Errorf("not-found error matched another kind: %v", err)
	}
}

func TestLoad_DecodeError(t *testing.T) {
	content := []byte("2024-01-01 10:00:00 INFO ok\n2024-01-01 10:00:01 INFO bad \xff\xfe byte\n")
	path := writeLog(t, "latin.log", content)

	coll, err := Load(context.Background(), path)
	if err == nil {
		t.Fatal("Load() expected decode error")
	}
	if coll != nil {
		t.Error("Load() returned records alongside a decode error")
	}
	if !errors.Is(err, ErrDecode) {
		t.Errorf("errors.Is(err, ErrDecode) = false, err = %v", err)
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("error is %T, want *LoadError", err)
	}
	if loadErr.Line != 2 {
		t.Errorf("Line = %d, want 2", loadErr.Line)
	}
}

func TestLoad_DirectoryIsIOError(t *testing.T) {
	_, err := Load(context.Background(), t.TempDir())
	if err == nil {
		t.Fatal("Load() expected error for directory")
	}
	if !errors.Is(err, ErrIO) {
		t.Errorf("errors.Is(err, ErrIO) = false, err = %v", err)
	}
}

func TestLoad_Gzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(sampleLog)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	path := writeLog(t, "app.log.gz", buf.Bytes())

	coll, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if coll.Len() != 2 {
		t.Errorf("Len() = %d, want 2", coll.Len())
	}
}

func TestLoad_Zstd(t *testing.T) {
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := enc.Write([]byte(sampleLog)); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	path := writeLog(t, "app.log.zst", buf.Bytes())

	coll, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if coll.Len() != 2 {
		t.Errorf("Len() = %d, want 2", coll.Len())
	}
}

func TestLoad_CorruptGzipIsIOError(t *testing.T) {
	path := writeLog(t, "broken.log.gz", []byte("this is not gzip"))

	_, err := Load(context.Background(), path)
	if err == nil {
		t.Fatal("Load() expected error for corrupt gzip")
	}
	if !errors.Is(err, ErrIO) {
		t.Errorf("errors.Is(err, ErrIO) = false, err = %v", err)
	}
}

func TestLoadReader_LineEndings(t *testing.T) {
	content := "d1 t1 INFO crlf\r\nd2 t2 WARN cr\rd3 t3 ERROR lf\n"

	coll, err := LoadReader(context.Background(), strings.NewReader(content), "mem")
	if err != nil {
		t.Fatalf("LoadReader() error = %v", err)
	}
	if coll.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", coll.Len())
	}
	if got := coll.Records()[1].Message; got != "cr" {
		t.Errorf("second message = %q, want %q", got, "cr")
	}
}

func TestLoadReader_NoTrailingNewline(t *testing.T) {
	coll, err := LoadReader(context.Background(), strings.NewReader("d t INFO last line"), "mem")
	if err != nil {
		t.Fatalf("LoadReader() error = %v", err)
	}
	if coll.Len() != 1 || coll.Records()[0].Message != "last line" {
		t.Errorf("Records() = %+v, want one record with message %q", coll.Records(), "last line")
	}
}

func TestLoadReader_SkipHook(t *testing.T) {
	var skipped []int
	var lines []string
	hook := WithSkipHook(func(lineNum int, line string) {
		skipped = append(skipped, lineNum)
		lines = append(lines, line)
	})

	_, err := LoadReader(context.Background(), strings.NewReader(sampleLog+"\nbad\n"), "mem", hook)
	if err != nil {
		t.Fatalf("LoadReader() error = %v", err)
	}

	if len(skipped) != 2 || skipped[0] != 3 || skipped[1] != 5 {
		t.Errorf("skipped lines = %v, want [3 5]", skipped)
	}
	if lines[0] != "not a valid line" {
		t.Errorf("skipped text = %q, want %q", lines[0], "not a valid line")
	}
}

func TestLoadReader_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadReader(ctx, strings.NewReader(sampleLog), "mem")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("LoadReader() error = %v, want context.Canceled", err)
	}
}

func TestLoadError_Messages(t *testing.T) {
	tests := []struct {
		err  *LoadError
		want string
	}{
		{&LoadError{Kind: KindNotFound, Path: "a.log"}, "a.log: log file not found"},
		{&LoadError{Kind: KindDecode, Path: "a.log", Line: 4}, "a.log: line 4: log file is not valid utf-8"},
		{&LoadError{Kind: KindIO, Path: "a.log", Err: errors.New("boom")}, "a.log: boom"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
