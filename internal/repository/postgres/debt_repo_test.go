package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/dom/debt-ledger/internal/domain"
	"github.com/dom/debt-ledger/internal/repository/postgres"
	"github.com/dom/debt-ledger/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDebtRepository_CreateAndGet(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	name, err := repos.DebtName.GetOrCreate(ctx, user.ID, "Bob")
	require.NoError(t, err)

	returnTime := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)
	debt := &domain.Debt{
		UserID:             user.ID,
		NameID:             name.ID,
		Direction:          domain.OwedBy,
		Amount:             decimal.RequireFromString("12.34"),
		Currency:           domain.CurrencyEUR,
		Description:        "dinner",
		ReceivedAt:         time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		ReturnTime:         &returnTime,
		UseDefaultReminder: true,
	}
	require.NoError(t, repos.Debt.Create(ctx, debt))
	require.NotZero(t, debt.ID)

	got, err := repos.Debt.GetByID(ctx, user.ID, debt.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OwedBy, got.Direction)
	testutil.AssertDecimal(t, "12.34", got.Amount)
	assert.Equal(t, domain.CurrencyEUR, got.Currency)
	assert.Equal(t, "dinner", got.Description)
	require.NotNil(t, got.ReturnTime)
	assert.True(t, returnTime.Equal(*got.ReturnTime))
	assert.True(t, got.UseDefaultReminder)
	require.NotNil(t, got.Name)
	assert.Equal(t, "Bob", got.Name.Name)
}

func TestDebtRepository_ScopedToUser(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewDebtRepository(testDB.DB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	debt := testutil.NewDebtBuilder(owner).Build(t, testDB.DB)

	_, err := repo.GetByID(ctx, other.ID, debt.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repo.Delete(ctx, other.ID, debt.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.GetByID(ctx, owner.ID, debt.ID)
	assert.NoError(t, err)
}

func TestDebtRepository_CheckConstraints(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	name, err := repos.DebtName.GetOrCreate(ctx, user.ID, "Bob")
	require.NoError(t, err)

	base := func() *domain.Debt {
		return &domain.Debt{
			UserID:     user.ID,
			NameID:     name.ID,
			Direction:  domain.OwedTo,
			Amount:     decimal.NewFromInt(1),
			Currency:   domain.CurrencyUZS,
			ReceivedAt: time.Now().UTC(),
		}
	}

	tests := []struct {
		name   string
		mutate func(*domain.Debt)
	}{
		{name: "negative amount", mutate: func(d *domain.Debt) { d.Amount = decimal.NewFromInt(-1) }},
		{name: "unknown currency", mutate: func(d *domain.Debt) { d.Currency = "GBP" }},
		{name: "unknown direction", mutate: func(d *domain.Debt) { d.Direction = "LENT" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := base()
			tt.mutate(d)
			assert.Error(t, repos.Debt.Create(ctx, d))
		})
	}
}

func TestDebtRepository_Lists(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewDebtRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	bob1 := testutil.NewDebtBuilder(user).WithName("Bob").WithAmount("100").Build(t, testDB.DB)
	bob2 := testutil.NewDebtBuilder(user).WithName("Bob").WithDirection(domain.OwedBy).WithAmount("40").Build(t, testDB.DB)
	carol := testutil.NewDebtBuilder(user).WithName("Carol").WithAmount("5").Build(t, testDB.DB)
	testutil.NewDebtBuilder(other).WithName("Bob").Build(t, testDB.DB)

	ids := func(debts []domain.Debt) []uint {
		out := make([]uint, 0, len(debts))
		for _, d := range debts {
			out = append(out, d.ID)
		}
		return out
	}

	all, err := repo.ListByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{bob1.ID, bob2.ID, carol.ID}, ids(all))
	for _, d := range all {
		require.NotNil(t, d.Name)
	}

	owedTo, err := repo.ListByDirection(ctx, user.ID, domain.OwedTo)
	require.NoError(t, err)
	assert.Equal(t, []uint{bob1.ID, carol.ID}, ids(owedTo))

	owedBy, err := repo.ListByDirection(ctx, user.ID, domain.OwedBy)
	require.NoError(t, err)
	assert.Equal(t, []uint{bob2.ID}, ids(owedBy))

	byName, err := repo.ListByNameID(ctx, user.ID, bob1.NameID)
	require.NoError(t, err)
	assert.Equal(t, []uint{bob1.ID, bob2.ID}, ids(byName))

	fresh, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	empty, err := repo.ListByUserID(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
