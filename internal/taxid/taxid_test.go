package taxid

import (
	"strings"
	"testing"
)

func TestValidateCPF(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid unmasked", "52998224725", true},
		{"valid masked", "529.982.247-25", true},
		{"valid leading zero", "041.091.641-25", true},
		{"valid 111.444.777-35", "111.444.777-35", true},
		{"wrong first check digit", "529.982.247-35", false},
		{"wrong second check digit", "529.982.247-24", false},
		{"too short", "5299822472", false},
		{"too long", "529982247250", false},
		{"all identical digits", "111.111.111-11", false},
		{"all zeros", "00000000000", false},
		{"letters", "529.982.247-2a", false},
		{"cnpj separator not allowed", "529.982.247/25", false},
		{"whitespace not allowed", "529 982 247 25", false},
		{"empty", "", false},
		{"only punctuation", "...-", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateCPF(tt.input); got != tt.want {
				t.Errorf("ValidateCPF(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateCNPJ(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid unmasked", "11222333000181", true},
		{"valid masked", "11.222.333/0001-81", true},
		{"valid store", "79.379.491/0008-50", true},
		{"valid 11.444.777/0001-61", "11.444.777/0001-61", true},
		{"wrong check digit", "11.222.333/0001-82", false},
		{"too short", "1122233300018", false},
		{"cpf length", "52998224725", false},
		{"all identical digits", "00.000.000/0000-00", false},
		{"letters", "11.222.333/0001-8X", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateCNPJ(tt.input); got != tt.want {
				t.Errorf("ValidateCNPJ(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMaskCPF(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"52998224725", "529.982.247-25"},
		{"529.982.247-25", "529.982.247-25"},
		{"04109164125", "041.091.641-25"},
		// Wrong lengths are still formatted by position.
		{"123456", "123.456.-"},
		{"123456789", "123.456.789-"},
		{"1234567890123456", "123.456.789-0123456"},
		{"", "..-"},
	}

	for _, tt := range tests {
		if got := MaskCPF(tt.input); got != tt.want {
			t.Errorf("MaskCPF(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestMaskCPF_LongInputExceedsColumnWidth(t *testing.T) {
	// 16 digits mask to 19 characters, wider than the 18-character column.
	got := MaskCPF("1234567890123456")
	if len(got) <= 18 {
		t.Fatalf("len(MaskCPF) = %d, want > 18", len(got))
	}
}

func TestMaskCNPJ(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"11222333000181", "11.222.333/0001-81"},
		{"11.222.333/0001-81", "11.222.333/0001-81"},
	}

	for _, tt := range tests {
		if got := MaskCNPJ(tt.input); got != tt.want {
			t.Errorf("MaskCNPJ(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestMaskedValuesStillValidate(t *testing.T) {
	if !ValidateCPF(MaskCPF("52998224725")) {
		t.Error("masked CPF should validate")
	}
	if !ValidateCNPJ(MaskCNPJ("11444777000161")) {
		t.Error("masked CNPJ should validate")
	}
}

func TestDigits(t *testing.T) {
	if got := Digits("11.222.333/0001-81"); got != "11222333000181" {
		t.Errorf("Digits() = %q", got)
	}
	if got := Digits("abc"); got != "" {
		t.Errorf("Digits(abc) = %q, want empty", got)
	}
}

func TestHasPunctuation(t *testing.T) {
	for _, s := range []string{"529.982", "529-98", "11/0001"} {
		if !HasPunctuation(s) {
			t.Errorf("HasPunctuation(%q) = false", s)
		}
	}
	if HasPunctuation(strings.Repeat("9", 11)) {
		t.Error("digits only should have no punctuation")
	}
}
