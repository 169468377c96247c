package taxid

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func digitString(n int) gopter.Gen {
	return gen.SliceOfN(n, gen.NumChar()).Map(func(r []rune) string {
		return string(r)
	})
}

func TestProperty_MaskCPFIdempotent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("MaskCPF(MaskCPF(x)) == MaskCPF(x)", prop.ForAll(
		func(s string) bool {
			once := MaskCPF(s)
			return MaskCPF(once) == once
		},
		gen.NumString(),
	))

	properties.Property("masking 11 digits gives ddd.ddd.ddd-dd", prop.ForAll(
		func(s string) bool {
			m := MaskCPF(s)
			return len(m) == 14 && m[3] == '.' && m[7] == '.' && m[11] == '-' && Digits(m) == s
		},
		digitString(CPFLength),
	))

	properties.TestingRun(t)
}

func TestProperty_ValidateCPFRejections(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("digit strings of length != 11 are rejected", prop.ForAll(
		func(s string) bool {
			if len(s) == CPFLength {
				return true
			}
			return !ValidateCPF(s)
		},
		gen.NumString(),
	))

	properties.Property("11 identical digits are rejected", prop.ForAll(
		func(d int) bool {
			return !ValidateCPF(strings.Repeat(string(rune('0'+d)), CPFLength))
		},
		gen.IntRange(0, 9),
	))

	properties.Property("validation ignores the mask", prop.ForAll(
		func(s string) bool {
			return ValidateCPF(s) == ValidateCPF(MaskCPF(s))
		},
		digitString(CPFLength),
	))

	properties.TestingRun(t)
}

func TestProperty_ValidateCNPJIgnoresMask(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("validation ignores the mask", prop.ForAll(
		func(s string) bool {
			return ValidateCNPJ(s) == ValidateCNPJ(MaskCNPJ(s))
		},
		digitString(CNPJLength),
	))

	properties.TestingRun(t)
}
