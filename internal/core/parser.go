package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/JonMunkholm/clientes/internal/logging"
	"github.com/JonMunkholm/clientes/internal/schema"
	"github.com/JonMunkholm/clientes/internal/taxid"
)

// ContextCheckInterval is how many rows are processed between cancellation
// checks.
const ContextCheckInterval = 1000

var errMissingIdentifier = errors.New("missing identifier")

// ParseFile reads the customer file at path. See Parse.
func ParseFile(ctx context.Context, path, encoding string) ([]Customer, error) {
	logger := logging.WithFields(ctx, "stage", StageParse, "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read input failed", "error", err, "code", MapError(err).Code)
		return nil, stageErr(StageParse, err)
	}

	return parse(ctx, data, encoding, logger)
}

// Parse reads customer records from r. The first non-blank line is a header
// and is skipped, even when blank lines precede it; blank lines are ignored.
// Any malformed line fails the whole parse and no rows are returned. An empty
// or header-only source yields an empty slice and a nil error.
func Parse(ctx context.Context, r io.Reader, encoding string) ([]Customer, error) {
	logger := logging.WithFields(ctx, "stage", StageParse)

	data, err := io.ReadAll(r)
	if err != nil {
		logger.Error("read input failed", "error", err)
		return nil, stageErr(StageParse, err)
	}

	return parse(ctx, data, encoding, logger)
}

func parse(ctx context.Context, data []byte, encoding string, logger *slog.Logger) ([]Customer, error) {
	rows, err := parseRecords(ctx, data, encoding)
	if err != nil {
		logger.Error("parse failed", "error", err, "code", MapError(err).Code)
		return nil, stageErr(StageParse, err)
	}

	logger.Info("parse complete", "rows", len(rows), "bytes", len(data))
	return rows, nil
}

func parseRecords(ctx context.Context, data []byte, encoding string) ([]Customer, error) {
	text, err := normalizeEncoding(data, encoding)
	if err != nil {
		return nil, err
	}

	lines := bytes.Split(text, []byte("\n"))
	sourceFields := schema.Customers.SourceFields()

	var (
		rows       []Customer
		seenHeader bool
	)
	for i, raw := range lines {
		if i%ContextCheckInterval == 0 && ctx.Err() != nil {
			return nil, ctx.Err()
		}

		fields := SplitFields(string(raw))
		if fields == nil {
			continue
		}
		if !seenHeader {
			seenHeader = true
			continue
		}

		lineNum := i + 1
		c, err := parseRecord(fields, sourceFields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		c.Line = lineNum
		rows = append(rows, c)
	}

	if rows == nil {
		rows = []Customer{}
	}
	return rows, nil
}

// parseRecord assigns positional fields to the source columns. Missing
// trailing fields are absent values.
func parseRecord(fields []string, sourceFields []schema.FieldSpec) (Customer, error) {
	if len(fields) > len(sourceFields) {
		return Customer{}, fmt.Errorf("too many fields: got %d, want at most %d", len(fields), len(sourceFields))
	}

	var c Customer
	for i, spec := range sourceFields {
		var raw string
		if i < len(fields) {
			raw = fields[i]
		}
		if err := c.setField(spec.Name, raw); err != nil {
			return Customer{}, fmt.Errorf("%s: %w", spec.Name, err)
		}
	}
	return c, nil
}

func (c *Customer) setField(name, raw string) error {
	var err error
	switch name {
	case schema.ColCPF:
		c.CPF, err = parseIdentifier(raw)
	case schema.ColPrivate:
		c.Private, err = ParseInt4(raw)
	case schema.ColIncomplete:
		c.Incomplete, err = ParseInt4(raw)
	case schema.ColLastPurchaseDate:
		c.LastPurchaseDate, err = ParseDate(raw)
	case schema.ColAverageTicket:
		c.AverageTicket, err = ParseDecimal(raw)
	case schema.ColAverageTicketLastSale:
		c.AverageTicketLastSale, err = ParseDecimal(raw)
	case schema.ColMostFrequentStore:
		c.MostFrequentStore = ToPgText(raw)
	case schema.ColLastPurchaseStore:
		c.LastPurchaseStore = ToPgText(raw)
	default:
		err = fmt.Errorf("unknown column %q", name)
	}
	return err
}

// parseIdentifier masks a bare CPF and passes punctuated values through.
func parseIdentifier(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if IsNull(s) {
		return "", errMissingIdentifier
	}
	if taxid.HasPunctuation(s) {
		return s, nil
	}
	return taxid.MaskCPF(s), nil
}
