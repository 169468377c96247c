package core

// validation.go assigns the valido flag to parsed rows.
//
// Rows whose identifier is longer than the identifier column are dropped
// before any rule runs. The remaining rules run in order and each one
// replaces the flag set by the previous rule; the flag is not a conjunction.
// A row with an invalid CPF but valid (or absent) store identifiers ends up
// flagged s. Existing data depends on this, so it is kept as is.

import (
	"context"
	"unicode/utf8"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/JonMunkholm/clientes/internal/logging"
	"github.com/JonMunkholm/clientes/internal/schema"
	"github.com/JonMunkholm/clientes/internal/taxid"
)

// Rule computes the flag outcome for one column of a row.
type Rule struct {
	Column string
	Check  func(Customer) bool
}

// Rules are applied in order; the last one decides the flag.
var Rules = []Rule{
	{Column: schema.ColCPF, Check: func(c Customer) bool { return taxid.ValidateCPF(c.CPF) }},
	{Column: schema.ColMostFrequentStore, Check: storeCheck(func(c Customer) pgtype.Text { return c.MostFrequentStore })},
	{Column: schema.ColLastPurchaseStore, Check: storeCheck(func(c Customer) pgtype.Text { return c.LastPurchaseStore })},
}

// storeCheck treats an absent store identifier as valid.
func storeCheck(get func(Customer) pgtype.Text) func(Customer) bool {
	return func(c Customer) bool {
		v := get(c)
		if !v.Valid {
			return true
		}
		return taxid.ValidateCNPJ(v.String)
	}
}

// Oversized reports whether the identifier is too long to be a masked CPF
// or CNPJ. Such rows are dropped rather than flagged.
func Oversized(c Customer) bool {
	return utf8.RuneCountInString(c.CPF) > schema.IdentifierWidth
}

// ApplyRules returns the flag produced by running every rule in order.
func ApplyRules(c Customer) ValidFlag {
	flag := FlagUnset
	for _, r := range Rules {
		flag = flagFor(r.Check(c))
	}
	return flag
}

// Validate drops oversized rows and sets Valid on the rest. The input slice
// is not modified. It fails only when ctx is cancelled.
func Validate(ctx context.Context, rows []Customer) ([]Customer, ValidationStats, error) {
	logger := logging.WithFields(ctx, "stage", StageValidate)

	var stats ValidationStats
	kept := make([]Customer, 0, len(rows))

	for i, c := range rows {
		if i%ContextCheckInterval == 0 && ctx.Err() != nil {
			err := ctx.Err()
			logger.Error("validation aborted", "error", err, "code", MapError(err).Code, "checked", i)
			return nil, ValidationStats{}, stageErr(StageValidate, err)
		}

		if Oversized(c) {
			stats.Dropped++
			logger.Debug("row dropped", "line", c.Line, "cpf_length", utf8.RuneCountInString(c.CPF))
			continue
		}

		c.Valid = ApplyRules(c)
		if c.Valid == FlagValid {
			stats.Valid++
		} else {
			stats.Invalid++
		}
		kept = append(kept, c)
	}
	stats.Kept = len(kept)

	logger.Info("validation complete",
		"kept", stats.Kept,
		"dropped", stats.Dropped,
		"valid", stats.Valid,
		"invalid", stats.Invalid,
	)
	return kept, stats, nil
}
