package fundmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanSchemeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"strips plan, option and parenthetical",
			"ABC Fund - Direct Plan - Growth Option (Erstwhile XYZ)",
			"ABC Fund",
		},
		{
			"strips regular plan suffix",
			"HDFC Flexi Cap Fund - Regular Plan - Growth",
			"HDFC Flexi Cap Fund",
		},
		{
			"strips trailing option qualifier",
			"SBI Equity Fund - Growth Option",
			"SBI Equity Fund",
		},
		{
			"collapses repeated whitespace",
			"Axis  Bluechip   Fund",
			"Axis Bluechip Fund",
		},
		{
			"plain name unchanged",
			"Parag Parikh Flexi Cap Fund",
			"Parag Parikh Flexi Cap Fund",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanSchemeName(tt.in))
		})
	}
}

func TestCleanSchemeName_Idempotent(t *testing.T) {
	names := []string{
		"ABC Fund - Direct Plan - Growth Option (Erstwhile XYZ)",
		"HDFC Flexi Cap Fund - Regular Plan - Growth",
		"Parag Parikh Flexi Cap Fund",
	}
	for _, name := range names {
		once := CleanSchemeName(name)
		assert.Equal(t, once, CleanSchemeName(once), "cleaning %q twice", name)
	}
}
