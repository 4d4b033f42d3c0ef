package core

// Options configures a single cleaner run.
type Options struct {
	Input       string // Path to the source CSV
	Output      string // Path to the destination CSV (created or overwritten)
	Column      string // Target column whose values are whitespace-normalized
	Deduplicate bool   // Drop rows identical to an earlier row after cleaning

	// MaxFileSize rejects inputs larger than this many bytes. Zero disables
	// the check.
	MaxFileSize int64
}

// Table is a fully loaded CSV file.
type Table struct {
	Header []string   // Column names, in file order
	Rows   [][]string // Data rows; a row may be shorter than Header

	BOM  bool // Input started with a UTF-8 byte order mark
	CRLF bool // Input lines end in \r\n rather than \n
}

// ColumnIndexes returns every position in the header named name.
func (t *Table) ColumnIndexes(name string) []int {
	var idx []int
	for i, h := range t.Header {
		if h == name {
			idx = append(idx, i)
		}
	}
	return idx
}

// Outcome is how a successful run ended.
type Outcome int

const (
	// OutcomeCleaned means data rows were cleaned and written.
	OutcomeCleaned Outcome = iota

	// OutcomeHeaderOnly means the input had no data rows, so only the
	// header was written.
	OutcomeHeaderOnly
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCleaned:
		return "cleaned"
	case OutcomeHeaderOnly:
		return "header_only"
	default:
		return "unknown"
	}
}

// Result summarizes a successful run.
type Result struct {
	Outcome           Outcome
	RowsRead          int // Data rows in the input
	RowsWritten       int // Data rows in the output
	DuplicatesRemoved int // Rows dropped by deduplication
	CellsChanged      int // Target cells whose value changed when cleaned
}
