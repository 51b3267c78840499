package phrase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordcalc/internal/engine/phrase"
)

func TestRender(t *testing.T) {
	tests := []struct {
		expr   string
		result string
		want   string
	}{
		{"12+3", "15", "Twelve plus Three equals Fifteen"},
		{"2-1", "1", "Two minus One equals One"},
		{"6*7", "42", "Six times Seven equals Forty-Two"},
		{"8/2", "4", "Eight divided by Two equals Four"},
		{
			"(2+3)*4", "20",
			"open bracket Two plus Three close bracket times Four equals Twenty",
		},
		{"1.5+1.5", "3", "One Point Five plus One Point Five equals Three"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			result, err := decimal.NewFromString(tt.result)
			require.NoError(t, err)
			got, err := phrase.Render(tt.expr, result)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_SanitisesLikeTheEvaluator(t *testing.T) {
	got, err := phrase.Render(" 12 + 3 ", decimal.NewFromInt(15))
	require.NoError(t, err)
	assert.Equal(t, "Twelve plus Three equals Fifteen", got)
}
