package core

import (
	"context"

	"github.com/JonMunkholm/csvclean/internal/logging"
)

// Run executes the cleaning pipeline described by opts:
//
//  1. Load the input and detect its header
//  2. Validate that the target column exists
//  3. Write only the header when there are no data rows
//  4. Collapse whitespace in the target column
//  5. Drop duplicate rows when opts.Deduplicate is set
//  6. Write the output in the original column order
//
// The output file is opened only after steps 1 and 2 succeed. Every
// returned error is an *Error.
func Run(ctx context.Context, opts Options) (Result, error) {
	logger := logging.WithFields(ctx,
		"input", opts.Input,
		"output", opts.Output,
		"column", opts.Column,
	)

	var res Result

	t, err := Load(opts.Input, opts.MaxFileSize)
	if err != nil {
		return res, err
	}
	logger.Debug("input loaded",
		"columns", len(t.Header),
		"rows", len(t.Rows),
		"bom", t.BOM,
		"crlf", t.CRLF,
	)

	columns := t.ColumnIndexes(opts.Column)
	if len(columns) == 0 {
		return res, columnNotFound(opts.Input, opts.Column)
	}
	if len(columns) > 1 {
		logger.Warn("target column appears more than once in header", "count", len(columns))
	}

	res.RowsRead = len(t.Rows)

	if len(t.Rows) == 0 {
		if err := Write(opts.Output, t); err != nil {
			return res, generic(opts.Input, err)
		}
		res.Outcome = OutcomeHeaderOnly
		logger.Info("input has no data rows, wrote header only")
		return res, nil
	}

	res.CellsChanged = t.Clean(columns)
	if opts.Deduplicate {
		res.DuplicatesRemoved = t.Dedupe()
	}

	if err := Write(opts.Output, t); err != nil {
		return res, generic(opts.Input, err)
	}

	res.Outcome = OutcomeCleaned
	res.RowsWritten = len(t.Rows)
	logger.Info("csv cleaned",
		"rows_read", res.RowsRead,
		"rows_written", res.RowsWritten,
		"duplicates_removed", res.DuplicatesRemoved,
		"cells_changed", res.CellsChanged,
	)
	return res, nil
}
