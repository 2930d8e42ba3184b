package service_test

import (
	"context"
	"testing"

	"github.com/dom/debt-ledger/internal/domain"
	"github.com/dom/debt-ledger/internal/repository/postgres"
	"github.com/dom/debt-ledger/internal/service"
	"github.com/dom/debt-ledger/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingService_Update(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	settingService := service.NewSettingService(repos.Setting)
	ctx := context.Background()

	usd := domain.CurrencyUSD
	bogus := domain.Currency("GBP")
	seven, zero, negative := 7, 0, -1

	tests := []struct {
		name         string
		input        service.UpdateSettingInput
		wantErr      error
		wantCurrency domain.Currency
		wantDays     int
	}{
		{
			name:         "empty update keeps defaults",
			input:        service.UpdateSettingInput{},
			wantCurrency: domain.CurrencyUZS,
			wantDays:     1,
		},
		{
			name:         "currency only",
			input:        service.UpdateSettingInput{Currency: &usd},
			wantCurrency: domain.CurrencyUSD,
			wantDays:     1,
		},
		{
			name:         "reminder days only",
			input:        service.UpdateSettingInput{ReminderDays: &seven},
			wantCurrency: domain.CurrencyUZS,
			wantDays:     7,
		},
		{
			name:         "zero reminder days",
			input:        service.UpdateSettingInput{ReminderDays: &zero},
			wantCurrency: domain.CurrencyUZS,
			wantDays:     0,
		},
		{
			name:    "negative reminder days",
			input:   service.UpdateSettingInput{ReminderDays: &negative},
			wantErr: domain.ErrInvalidReminderDays,
		},
		{
			name:    "unknown currency",
			input:   service.UpdateSettingInput{Currency: &bogus},
			wantErr: domain.ErrInvalidCurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

			setting, err := settingService.Update(ctx, user.ID, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				stored, err := settingService.Get(ctx, user.ID)
				require.NoError(t, err)
				assert.Equal(t, domain.CurrencyUZS, stored.Currency)
				assert.Equal(t, 1, stored.ReminderDays)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCurrency, setting.Currency)
			assert.Equal(t, tt.wantDays, setting.ReminderDays)

			stored, err := settingService.Get(ctx, user.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCurrency, stored.Currency)
			assert.Equal(t, tt.wantDays, stored.ReminderDays)
		})
	}
}

func TestSettingService_GetUnknownUser(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	settingService := service.NewSettingService(repos.Setting)

	_, err := settingService.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrSettingNotFound)
}
