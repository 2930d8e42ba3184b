package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{in: "OWED_TO", want: OwedTo},
		{in: "owed_by", want: OwedBy},
		{in: " Owed_To ", want: OwedTo},
		{in: "individual", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDirection)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCurrency(t *testing.T) {
	for _, c := range AllCurrencies {
		got, err := ParseCurrency(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	got, err := ParseCurrency("usd")
	require.NoError(t, err)
	assert.Equal(t, CurrencyUSD, got)

	_, err = ParseCurrency("GBP")
	assert.ErrorIs(t, err, ErrInvalidCurrency)
}

func TestDebt_Validate(t *testing.T) {
	valid := func() *Debt {
		return &Debt{Direction: OwedTo, Currency: CurrencyUZS, Amount: decimal.NewFromInt(100)}
	}

	tests := []struct {
		name    string
		mutate  func(*Debt)
		wantErr error
	}{
		{name: "valid", mutate: func(*Debt) {}},
		{name: "zero amount", mutate: func(d *Debt) { d.Amount = decimal.Zero }},
		{name: "negative amount", mutate: func(d *Debt) { d.Amount = decimal.NewFromInt(-1) }, wantErr: ErrNegativeAmount},
		{name: "two decimal places", mutate: func(d *Debt) { d.Amount = decimal.RequireFromString("10.55") }},
		{name: "trailing zeros", mutate: func(d *Debt) { d.Amount = decimal.RequireFromString("10.5000") }},
		{name: "three decimal places", mutate: func(d *Debt) { d.Amount = decimal.RequireFromString("10.555") }, wantErr: ErrAmountPrecision},
		{name: "largest storable", mutate: func(d *Debt) { d.Amount = decimal.RequireFromString("9999999999999999.99") }},
		{name: "integer part too wide", mutate: func(d *Debt) { d.Amount = decimal.RequireFromString("10000000000000000") }, wantErr: ErrAmountTooLarge},
		{name: "1e20", mutate: func(d *Debt) { d.Amount = decimal.RequireFromString("1e20") }, wantErr: ErrAmountTooLarge},
		{name: "bad direction", mutate: func(d *Debt) { d.Direction = "OWED" }, wantErr: ErrInvalidDirection},
		{name: "bad currency", mutate: func(d *Debt) { d.Currency = "GBP" }, wantErr: ErrInvalidCurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid()
			tt.mutate(d)
			err := d.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSetting_Validate(t *testing.T) {
	s := NewDefaultSetting()
	require.NoError(t, s.Validate())
	assert.Equal(t, CurrencyUZS, s.Currency)
	assert.Equal(t, 1, s.ReminderDays)

	s.ReminderDays = -1
	assert.ErrorIs(t, s.Validate(), ErrInvalidReminderDays)

	s.ReminderDays = MaxReminderDays
	assert.NoError(t, s.Validate())

	s.ReminderDays = MaxReminderDays + 1
	assert.ErrorIs(t, s.Validate(), ErrInvalidReminderDays)

	s.ReminderDays = 1 << 40
	assert.ErrorIs(t, s.Validate(), ErrInvalidReminderDays)

	s.ReminderDays = 0
	s.Currency = "JPY"
	assert.ErrorIs(t, s.Validate(), ErrInvalidCurrency)
}

func TestNormalizeDebtName(t *testing.T) {
	got, err := NormalizeDebtName("  Bob ")
	require.NoError(t, err)
	assert.Equal(t, "Bob", got)

	got, err = NormalizeDebtName("bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", got)

	_, err = NormalizeDebtName("   ")
	assert.ErrorIs(t, err, ErrEmptyDebtName)
}
