package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dom/debt-ledger/internal/repository"
	"github.com/dom/debt-ledger/internal/repository/postgres"
	"github.com/dom/debt-ledger/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactor_WithinTransaction(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	errBoom := errors.New("boom")

	t.Run("error rolls back", func(t *testing.T) {
		err := repos.Tx.WithinTransaction(ctx, func(tx *repository.Repositories) error {
			if _, err := tx.DebtName.GetOrCreate(ctx, user.ID, "Rollback"); err != nil {
				return err
			}
			return errBoom
		})
		assert.ErrorIs(t, err, errBoom)

		names, err := repos.DebtName.ListByUserID(ctx, user.ID)
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("nil commits", func(t *testing.T) {
		err := repos.Tx.WithinTransaction(ctx, func(tx *repository.Repositories) error {
			_, err := tx.DebtName.GetOrCreate(ctx, user.ID, "Commit")
			return err
		})
		require.NoError(t, err)

		names, err := repos.DebtName.ListByUserID(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, names, 1)
		assert.Equal(t, "Commit", names[0].Name)
	})
}
