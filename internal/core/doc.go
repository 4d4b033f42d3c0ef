// Package core implements the CSV cleaning pipeline.
//
// The package has no console or flag handling; it can be driven by the
// command in cmd/csvclean or directly from tests.
//
// # Pipeline
//
// [Run] performs a single linear pass with early exits:
//
//  1. [Load] reads the whole input into a [Table], remembering whether the
//     file began with a UTF-8 byte order mark and whether its lines end in
//     CRLF
//  2. The target column is looked up in the header
//  3. A header-only input is copied to the output and reported as
//     [OutcomeHeaderOnly]
//  4. [Table.Clean] applies [CollapseWhitespace] to the target column
//  5. [Table.Dedupe] drops rows whose [RowFingerprint] was already seen
//  6. [Write] emits the header and the kept rows using the input's
//     conventions
//
// # Error Handling
//
// Failures are returned as [*Error] with a [Kind] the caller switches on to
// pick a status message. [KindOf] classifies any error. Each kind has a
// support code (CSV001-CSV004) that is logged alongside the failure.
package core
