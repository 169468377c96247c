package core

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// ValidFlag is the derived validity marker stored in the valido column.
type ValidFlag string

const (
	FlagUnset   ValidFlag = ""
	FlagValid   ValidFlag = "s"
	FlagInvalid ValidFlag = "n"
)

// flagFor maps a rule outcome to its flag.
func flagFor(ok bool) ValidFlag {
	if ok {
		return FlagValid
	}
	return FlagInvalid
}

// Customer is one record of the clientes table. Fields follow the column
// order of schema.Customers; absent source values have Valid=false.
type Customer struct {
	CPF                   string
	Private               pgtype.Int4
	Incomplete            pgtype.Int4
	LastPurchaseDate      pgtype.Date
	AverageTicket         pgtype.Numeric
	AverageTicketLastSale pgtype.Numeric
	MostFrequentStore     pgtype.Text
	LastPurchaseStore     pgtype.Text
	Valid                 ValidFlag

	// Line is the 1-indexed line of the source file. Not persisted.
	Line int
}

// CopyRow returns the record as a row for the COPY protocol, in the column
// order of schema.Customers.
func (c Customer) CopyRow() []any {
	return []any{
		c.CPF,
		c.Private,
		c.Incomplete,
		c.LastPurchaseDate,
		c.AverageTicket,
		c.AverageTicketLastSale,
		c.MostFrequentStore,
		c.LastPurchaseStore,
		string(c.Valid),
	}
}

// ImportPhase indicates the current stage of an import run.
type ImportPhase string

const (
	PhaseStarting  ImportPhase = "starting"
	PhaseParsed    ImportPhase = "parsed"
	PhaseValidated ImportPhase = "validated"
	PhasePersisted ImportPhase = "persisted"
	PhaseFailed    ImportPhase = "failed"
)

// PhaseCallback is called on every phase transition of an import run.
type PhaseCallback func(ImportPhase, Report)

// Report describes the outcome of one import run.
type Report struct {
	RunID    string
	FilePath string
	Phase    ImportPhase // Final phase: PhasePersisted on success, PhaseFailed otherwise

	Parsed    int // Rows produced by the parser
	Dropped   int // Rows removed by the identifier pre-filter
	Valid     int // Rows flagged s
	Invalid   int // Rows flagged n
	Persisted int // Rows written by the gateway

	Duration time.Duration
	Error    string // Non-empty if Phase is PhaseFailed
}

// ValidationStats summarizes one validator run.
type ValidationStats struct {
	Kept    int
	Dropped int
	Valid   int
	Invalid int
}
