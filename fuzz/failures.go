package fuzz

import (
	"bufio"
	"fmt"
	"os"
)

// FailureWriter appends mismatching inputs to a file, one record per line,
// so a failing run leaves a corpus behind.
type FailureWriter struct {
	file *os.File
	bw   *bufio.Writer
}

func NewFailureWriter(path string) (*FailureWriter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open failure corpus: %w", err)
	}
	return &FailureWriter{
		file: f,
		bw:   bufio.NewWriter(f),
	}, nil
}

func (w *FailureWriter) Write(input string, got, want string) error {
	_, err := fmt.Fprintf(w.bw, "%q\tgot=%s\twant=%s\n", input, got, want)
	if err != nil {
		return fmt.Errorf("write failure record: %w", err)
	}
	return nil
}

func (w *FailureWriter) Close() error {
	if err := w.bw.Flush(); err != nil {
		w.file.Close()
		return fmt.Errorf("flush failure corpus: %w", err)
	}
	return w.file.Close()
}
