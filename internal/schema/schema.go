// Package schema holds the explicit, versioned description of the tables the
// importer writes. The parser reads source columns in the order declared here
// and the database gateway derives its DDL and COPY column list from the same
// descriptor, so the two can never drift apart.
package schema

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// FieldType is the storage type of a column.
type FieldType int

const (
	FieldText FieldType = iota
	FieldInt
	FieldDate
	FieldNumeric
	FieldFlag // single character s/n
)

// FieldSpec describes one column.
type FieldSpec struct {
	Name       string    // Column name in the database
	Type       FieldType // Storage type
	Size       int       // VARCHAR length for FieldText
	Precision  int       // NUMERIC precision
	Scale      int       // NUMERIC scale
	PrimaryKey bool
	Derived    bool // Computed by the pipeline, not present in the source file
}

// SQLType returns the PostgreSQL column type.
func (f FieldSpec) SQLType() string {
	switch f.Type {
	case FieldInt:
		return "INTEGER"
	case FieldDate:
		return "DATE"
	case FieldNumeric:
		return fmt.Sprintf("NUMERIC(%d, %d)", f.Precision, f.Scale)
	case FieldFlag:
		return "VARCHAR(1)"
	default:
		if f.Size > 0 {
			return fmt.Sprintf("VARCHAR(%d)", f.Size)
		}
		return "TEXT"
	}
}

// Table is an ordered list of typed fields with a name and a version.
type Table struct {
	Name    string
	Version int
	Fields  []FieldSpec
}

// Columns returns every column name in declared order.
func (t Table) Columns() []string {
	cols := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		cols[i] = f.Name
	}
	return cols
}

// SourceFields returns the fields read from the input file, in file order.
func (t Table) SourceFields() []FieldSpec {
	fields := make([]FieldSpec, 0, len(t.Fields))
	for _, f := range t.Fields {
		if !f.Derived {
			fields = append(fields, f)
		}
	}
	return fields
}

// Field looks up a field by column name.
func (t Table) Field(name string) (FieldSpec, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Identifier returns the table name as a pgx identifier.
func (t Table) Identifier() pgx.Identifier {
	return pgx.Identifier{t.Name}
}

// DropSQL returns the statement that removes the table.
func (t Table) DropSQL() string {
	return "DROP TABLE IF EXISTS " + t.Identifier().Sanitize()
}

// CreateSQL returns the CREATE TABLE statement for the table.
func (t Table) CreateSQL() string {
	var b strings.Builder
	b.WriteString("CREATE TABLE ")
	b.WriteString(t.Identifier().Sanitize())
	b.WriteString(" (\n")

	var pk []string
	for i, f := range t.Fields {
		b.WriteString("\t")
		b.WriteString(pgx.Identifier{f.Name}.Sanitize())
		b.WriteString(" ")
		b.WriteString(f.SQLType())
		if f.PrimaryKey {
			b.WriteString(" NOT NULL")
			pk = append(pk, pgx.Identifier{f.Name}.Sanitize())
		}
		if i < len(t.Fields)-1 || len(pk) > 0 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	if len(pk) > 0 {
		b.WriteString("\tPRIMARY KEY (")
		b.WriteString(strings.Join(pk, ", "))
		b.WriteString(")\n")
	}
	b.WriteString(")")
	return b.String()
}
