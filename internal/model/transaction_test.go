package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransactionType(t *testing.T) {
	tests := []struct {
		input   string
		want    TransactionType
		wantErr bool
	}{
		{input: "expense", want: TypeExpense},
		{input: " Income ", want: TypeIncome},
		{input: "SAVINGS", want: TypeSavings},
		{input: "transfer", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTransactionType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "12.50", want: "12.5"},
		{input: "12,50", want: "12.5"},
		{input: " 7 ", want: "7"},
		{input: "-3.2", want: "-3.2"},
		{input: "", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "1,000.50", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "05/03/2024", FormatDate(time.Date(2024, time.March, 5, 18, 0, 0, 0, time.UTC)))
}

func TestInvestmentEntry_Signed(t *testing.T) {
	deposit := InvestmentEntry{Type: InvestmentDeposit, Amount: decimal.NewFromInt(40)}
	withdraw := InvestmentEntry{Type: InvestmentWithdraw, Amount: decimal.NewFromInt(15)}

	assert.True(t, deposit.Signed().Equal(decimal.NewFromInt(40)))
	assert.True(t, withdraw.Signed().Equal(decimal.NewFromInt(-15)))
}

func TestParseInvestmentType(t *testing.T) {
	got, err := ParseInvestmentType("Deposit")
	require.NoError(t, err)
	assert.Equal(t, InvestmentDeposit, got)

	_, err = ParseInvestmentType("sell")
	assert.Error(t, err)
}
