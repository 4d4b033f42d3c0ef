package core

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
)

// Write creates or truncates path and writes t to it: the byte order mark if
// the input had one, the header, then every row padded to the header width,
// using the input's line endings. If writing fails the partial file is
// removed.
func Write(path string, t *Table) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		err = errors.Join(err, file.Close())
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	buf := bufio.NewWriter(file)
	if t.BOM {
		if _, err := buf.Write(utf8BOM); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	w := csv.NewWriter(buf)
	w.UseCRLF = t.CRLF

	if err := w.Write(t.Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	width := len(t.Header)
	for _, row := range t.Rows {
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			row = padded
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}
