package core

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing input: %v", err)
	}
	return path
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	return string(data)
}

func runClean(t *testing.T, input, column string, dedupe bool) (string, Result) {
	t.Helper()
	in := writeInput(t, input)
	out := filepath.Join(filepath.Dir(in), "out.csv")

	res, err := Run(context.Background(), Options{
		Input:       in,
		Output:      out,
		Column:      column,
		Deduplicate: dedupe,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return readOutput(t, out), res
}

func TestRun(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		column string
		dedupe bool
		want   string
		result Result
	}{
		{
			name:   "cleans target column only",
			input:  "id,name,note\n1,\"  a   b\tc\n d \",  keep  me \n",
			column: "name",
			want:   "id,name,note\n1,a b c d,\"  keep  me \"\n",
			result: Result{Outcome: OutcomeCleaned, RowsRead: 1, RowsWritten: 1, CellsChanged: 1},
		},
		{
			name:   "duplicates kept without flag",
			input:  "id,name\n1,Alice\n1,Alice\n",
			column: "name",
			want:   "id,name\n1,Alice\n1,Alice\n",
			result: Result{Outcome: OutcomeCleaned, RowsRead: 2, RowsWritten: 2},
		},
		{
			name:   "duplicates after cleaning merged",
			input:  "id,name\n1,  Alice \n2,Bob\n1,Alice\n2,Bob\n",
			column: "name",
			dedupe: true,
			want:   "id,name\n1,Alice\n2,Bob\n",
			result: Result{Outcome: OutcomeCleaned, RowsRead: 4, RowsWritten: 2, DuplicatesRemoved: 2, CellsChanged: 1},
		},
		{
			name:   "dedup compares full row",
			input:  "id,name\n1,  Al  ice \n2,Alice\n",
			column: "name",
			dedupe: true,
			want:   "id,name\n1,Al ice\n2,Alice\n",
			result: Result{Outcome: OutcomeCleaned, RowsRead: 2, RowsWritten: 2, CellsChanged: 1},
		},
		{
			name:   "same target value different id kept",
			input:  "id,name\n1,Alice\n2,Alice\n",
			column: "name",
			dedupe: true,
			want:   "id,name\n1,Alice\n2,Alice\n",
			result: Result{Outcome: OutcomeCleaned, RowsRead: 2, RowsWritten: 2},
		},
		{
			name:   "first occurrence order kept",
			input:  "k\nb\na\nb\nc\na\n",
			column: "k",
			dedupe: true,
			want:   "k\nb\na\nc\n",
			result: Result{Outcome: OutcomeCleaned, RowsRead: 5, RowsWritten: 3, DuplicatesRemoved: 2},
		},
		{
			name:   "short row padded and not cleaned",
			input:  "id,note,name\n1,  x  \n2,y, z \n",
			column: "name",
			want:   "id,note,name\n1,\"  x  \",\n2,y,z\n",
			result: Result{Outcome: OutcomeCleaned, RowsRead: 2, RowsWritten: 2, CellsChanged: 1},
		},
		{
			name:   "header only",
			input:  "id,name\n",
			column: "name",
			want:   "id,name\n",
			result: Result{Outcome: OutcomeHeaderOnly},
		},
		{
			name:   "crlf preserved",
			input:  "id,name\r\n1,  a  b \r\n",
			column: "name",
			want:   "id,name\r\n1,a b\r\n",
			result: Result{Outcome: OutcomeCleaned, RowsRead: 1, RowsWritten: 1, CellsChanged: 1},
		},
		{
			name:   "bom preserved",
			input:  "\xEF\xBB\xBFname,id\n a ,1\n",
			column: "name",
			want:   "\xEF\xBB\xBFname,id\na,1\n",
			result: Result{Outcome: OutcomeCleaned, RowsRead: 1, RowsWritten: 1, CellsChanged: 1},
		},
		{
			name:   "bom preserved on header only",
			input:  "\xEF\xBB\xBFid,name\r\n",
			column: "name",
			want:   "\xEF\xBB\xBFid,name\r\n",
			result: Result{Outcome: OutcomeHeaderOnly},
		},
		{
			name:   "repeated target column cleaned everywhere",
			input:  "name,name\n a , b \n",
			column: "name",
			want:   "name,name\na,b\n",
			result: Result{Outcome: OutcomeCleaned, RowsRead: 1, RowsWritten: 1, CellsChanged: 2},
		},
		{
			name:   "values with commas stay quoted",
			input:  "id,name\n1,\"Smith,   John\"\n",
			column: "name",
			want:   "id,name\n1,\"Smith, John\"\n",
			result: Result{Outcome: OutcomeCleaned, RowsRead: 1, RowsWritten: 1, CellsChanged: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, res := runClean(t, tt.input, tt.column, tt.dedupe)
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
			if res != tt.result {
				t.Errorf("result = %+v, want %+v", res, tt.result)
			}
		})
	}
}

func TestRun_Idempotent(t *testing.T) {
	inputs := []string{
		"id,name,note\n1,\"  a   b\tc\n d \",x\n2, Bob ,\"q, r\"\n2,Bob,\"q, r\"\n",
		"id,name\r\n1,  Al  ice \r\n2,Alice\r\n",
		"\xEF\xBB\xBFid,name\n1,  x\n2\n",
	}

	for _, input := range inputs {
		for _, dedupe := range []bool{false, true} {
			first, _ := runClean(t, input, "name", dedupe)
			second, res := runClean(t, first, "name", dedupe)
			third, _ := runClean(t, second, "name", dedupe)

			if second != third {
				t.Errorf("second and third passes differ for %q (dedupe=%v):\n%q\n%q", input, dedupe, second, third)
			}
			if res.DuplicatesRemoved != 0 {
				t.Errorf("second pass removed %d rows for %q", res.DuplicatesRemoved, input)
			}
		}
	}
}

func TestRun_HeaderAndRowCounts(t *testing.T) {
	input := "b,a,c\n1, x ,3\n1,x,3\n2,y,4\n"

	plain, res := runClean(t, input, "a", false)
	if !strings.HasPrefix(plain, "b,a,c\n") {
		t.Errorf("header changed: %q", plain)
	}
	if res.RowsWritten != res.RowsRead {
		t.Errorf("without dedup rows written = %d, want %d", res.RowsWritten, res.RowsRead)
	}

	deduped, res := runClean(t, input, "a", true)
	if !strings.HasPrefix(deduped, "b,a,c\n") {
		t.Errorf("header changed: %q", deduped)
	}
	lines := strings.Split(strings.TrimSuffix(deduped, "\n"), "\n")
	seen := make(map[string]bool)
	for _, line := range lines[1:] {
		if seen[line] {
			t.Errorf("duplicate row %q in deduplicated output", line)
		}
		seen[line] = true
	}
	if res.RowsWritten != 2 {
		t.Errorf("rows written = %d, want 2", res.RowsWritten)
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.csv")

	tests := []struct {
		name     string
		input    *string
		column   string
		wantKind Kind
	}{
		{name: "missing input", column: "name", wantKind: KindFileMissing},
		{name: "no header", input: strPtr(""), column: "name", wantKind: KindNoHeader},
		{name: "column not found", input: strPtr("a,b\n1,2\n"), column: "c", wantKind: KindColumnNotFound},
		{name: "column not found on header only", input: strPtr("a,b\n"), column: "c", wantKind: KindColumnNotFound},
		{name: "row wider than header", input: strPtr("a,b\n1,2,3\n"), column: "a", wantKind: KindGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := filepath.Join(dir, "missing.csv")
			if tt.input != nil {
				in = writeInput(t, *tt.input)
			}

			_, err := Run(context.Background(), Options{Input: in, Output: out, Column: tt.column})
			if err == nil {
				t.Fatal("Run() expected error")
			}
			var cerr *Error
			if !errors.As(err, &cerr) {
				t.Fatalf("error %T is not *Error", err)
			}
			if cerr.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", cerr.Kind, tt.wantKind)
			}
			if _, statErr := os.Stat(out); !errors.Is(statErr, os.ErrNotExist) {
				t.Errorf("output should not be created on error")
			}
		})
	}
}

func TestRun_ColumnNotFoundMessage(t *testing.T) {
	in := writeInput(t, "a,b\n1,2\n")
	_, err := Run(context.Background(), Options{Input: in, Output: in + ".out", Column: "c"})
	if want := "Column 'c' not found in the CSV headers."; err == nil || err.Error() != want {
		t.Errorf("error = %v, want %q", err, want)
	}
}

func TestRun_UnwritableOutput(t *testing.T) {
	in := writeInput(t, "id,name\n1,x\n")
	out := filepath.Join(t.TempDir(), "no-such-dir", "out.csv")

	_, err := Run(context.Background(), Options{Input: in, Output: out, Column: "name"})
	if err == nil {
		t.Fatal("Run() expected error")
	}
	if KindOf(err) != KindGeneric {
		t.Errorf("KindOf() = %v, want generic", KindOf(err))
	}
	if !strings.Contains(err.Error(), "creating output") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRun_OutputOverwritesInput(t *testing.T) {
	in := writeInput(t, "id,name\n1,  x  \n")

	if _, err := Run(context.Background(), Options{Input: in, Output: in, Column: "name"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := readOutput(t, in); got != "id,name\n1,x\n" {
		t.Errorf("output = %q", got)
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		kind Kind
		name string
		code string
	}{
		{KindGeneric, "generic", "CSV004"},
		{KindFileMissing, "file_missing", "CSV001"},
		{KindNoHeader, "no_header", "CSV002"},
		{KindColumnNotFound, "column_not_found", "CSV003"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.name {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.name)
		}
		if got := tt.kind.Code(); got != tt.code {
			t.Errorf("Kind(%d).Code() = %q, want %q", tt.kind, got, tt.code)
		}
	}

	if KindOf(errors.New("plain")) != KindGeneric {
		t.Error("plain errors should be generic")
	}
	if KindOf(nil) != KindGeneric {
		t.Error("nil should classify as generic")
	}
}

func strPtr(s string) *string { return &s }
