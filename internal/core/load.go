package core

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"
)

// utf8BOM is the byte order mark some Windows programs prepend to UTF-8 files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Load reads the whole file at path and parses it. Errors are *Error values:
// KindFileMissing when the file does not exist, KindNoHeader when it has no
// records at all, and KindGeneric for everything else.
func Load(path string, maxSize int64) (*Table, error) {
	data, err := readFile(path, maxSize)
	if err != nil {
		return nil, err
	}
	return Parse(path, data)
}

func readFile(path string, maxSize int64) (data []byte, err error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fileMissing(path, err)
		}
		return nil, generic(path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = generic(path, cerr)
		}
	}()

	if maxSize > 0 {
		info, err := file.Stat()
		if err != nil {
			return nil, generic(path, err)
		}
		if info.Size() > maxSize {
			return nil, generic(path, fmt.Errorf(
				"file too large: %d bytes exceeds limit of %d bytes",
				info.Size(),
				maxSize,
			))
		}
	}

	if data, err = io.ReadAll(file); err != nil {
		return nil, generic(path, fmt.Errorf("reading input: %w", err))
	}
	return data, nil
}

// Parse decodes CSV data read from path. The first record is the header.
// Data rows may be shorter than the header but never wider.
func Parse(path string, data []byte) (*Table, error) {
	t := &Table{}

	if bytes.HasPrefix(data, utf8BOM) {
		t.BOM = true
		data = data[len(utf8BOM):]
	}

	if !utf8.Valid(data) {
		return nil, generic(path, errors.New("input is not valid UTF-8"))
	}

	if i := bytes.IndexByte(data, '\n'); i > 0 && data[i-1] == '\r' {
		t.CRLF = true
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, noHeader(path)
	}
	if err != nil {
		return nil, generic(path, fmt.Errorf("parsing header: %w", err))
	}
	t.Header = header

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, generic(path, err)
		}

		if len(record) > len(header) {
			line, _ := r.FieldPos(0)
			return nil, generic(path, fmt.Errorf(
				"line %d: row has %d fields, header has %d",
				line,
				len(record),
				len(header),
			))
		}

		t.Rows = append(t.Rows, record)
	}

	return t, nil
}
