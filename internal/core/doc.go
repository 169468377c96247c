// Package core implements the customer import pipeline.
//
// A run reads a whitespace-delimited text file, flags every record with the
// result of the identifier checks and hands the records to a [Store], which
// replaces the contents of the clientes table:
//
//	rows, err := core.ParseFile(ctx, path, "utf-8")    // Record parser
//	kept, stats, err := core.Validate(ctx, rows)       // Record validator
//	n, err := store.Persist(ctx, kept)                 // Persistence gateway
//
// [Importer] sequences the three stages and stops at the first stage that
// fails or yields no rows. Failures are returned as [*StageError]; stages
// that produce nothing return [ErrEmptyInput] or [ErrNoValidRows].
//
// # Input format
//
// The first non-blank line is a header and is skipped. Fields are separated
// by two or more whitespace characters, in the column order of
// schema.Customers. Tokens such as NULL or NA are absent values. Ticket
// values may use ',' as the decimal separator.
package core
