package core

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

const (
	validCPF    = "529.982.247-25"
	invalidCPF  = "529.982.247-24"
	validCNPJ   = "11.222.333/0001-81"
	invalidCNPJ = "11.222.333/0001-82"
)

func store(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

func customer(cpf, mostFrequent, last string) Customer {
	return Customer{
		CPF:               cpf,
		MostFrequentStore: store(mostFrequent),
		LastPurchaseStore: store(last),
	}
}

// The flag reflects only the last rule that ran. These cases pin that
// behavior; a CPF failure is overwritten by the store rules.
func TestApplyRules_LastRuleWins(t *testing.T) {
	tests := []struct {
		name string
		c    Customer
		want ValidFlag
	}{
		{"all valid", customer(validCPF, validCNPJ, validCNPJ), FlagValid},
		{"valid cpf no stores", customer(validCPF, "", ""), FlagValid},
		{"invalid cpf no stores is still s", customer(invalidCPF, "", ""), FlagValid},
		{"invalid cpf valid stores is still s", customer(invalidCPF, validCNPJ, validCNPJ), FlagValid},
		{"invalid most frequent overwritten by absent last", customer(validCPF, invalidCNPJ, ""), FlagValid},
		{"invalid most frequent overwritten by valid last", customer(validCPF, invalidCNPJ, validCNPJ), FlagValid},
		{"invalid last store decides", customer(validCPF, validCNPJ, invalidCNPJ), FlagInvalid},
		{"everything invalid", customer(invalidCPF, invalidCNPJ, invalidCNPJ), FlagInvalid},
		{"unmasked cnpj accepted", customer(validCPF, "", "11222333000181"), FlagValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyRules(tt.c); got != tt.want {
				t.Errorf("ApplyRules() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRules_Order(t *testing.T) {
	want := []string{"cpf", "loja_mais_frequente", "loja_da_ultima_compra"}
	if len(Rules) != len(want) {
		t.Fatalf("len(Rules) = %d, want %d", len(Rules), len(want))
	}
	for i, r := range Rules {
		if r.Column != want[i] {
			t.Errorf("Rules[%d].Column = %q, want %q", i, r.Column, want[i])
		}
	}
}

func TestValidate(t *testing.T) {
	rows := []Customer{
		customer(validCPF, "", ""),
		customer(strings.Repeat("1", 19), "", ""),
		customer("123.456.789-012.3456", "", ""),
		customer(validCPF, "", invalidCNPJ),
		customer("1234567890123456.-", "", ""), // exactly 18, kept and flagged
	}

	kept, stats, err := Validate(context.Background(), rows)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if len(kept) != 3 {
		t.Fatalf("Validate() kept %d rows, want 3", len(kept))
	}
	want := ValidationStats{Kept: 3, Dropped: 2, Valid: 2, Invalid: 1}
	if stats != want {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}
	for _, c := range kept {
		if c.Valid == FlagUnset {
			t.Errorf("row %q has no flag", c.CPF)
		}
	}
	if rows[0].Valid != FlagUnset {
		t.Error("Validate() should not modify the input slice")
	}
}

func TestValidate_AllDropped(t *testing.T) {
	kept, stats, err := Validate(context.Background(), []Customer{customer(strings.Repeat("9", 19), "", "")})
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if len(kept) != 0 || stats.Dropped != 1 {
		t.Errorf("Validate() kept = %d, stats = %+v", len(kept), stats)
	}
}

func TestValidate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	kept, _, err := Validate(ctx, []Customer{customer(validCPF, "", "")})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Validate() error = %v, want context.Canceled", err)
	}
	if kept != nil {
		t.Error("Validate() should return no rows on failure")
	}
	if StageOf(err) != StageValidate {
		t.Errorf("StageOf() = %q, want %q", StageOf(err), StageValidate)
	}
}

func TestProperty_OversizedIdentifiersNeverKept(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("no kept row has an identifier longer than 18", prop.ForAll(
		func(ids []string) bool {
			rows := make([]Customer, len(ids))
			for i, id := range ids {
				rows[i] = Customer{CPF: id}
			}
			kept, stats, err := Validate(context.Background(), rows)
			if err != nil {
				return false
			}
			for _, c := range kept {
				if len([]rune(c.CPF)) > 18 || c.Valid == FlagUnset {
					return false
				}
			}
			return stats.Kept+stats.Dropped == len(rows)
		},
		gen.SliceOf(gen.AnyString()),
	))

	properties.TestingRun(t)
}
