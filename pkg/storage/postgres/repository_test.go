package postgres_test

import (
	"context"
	"pkgadmin/pkg/domain"
	"pkgadmin/pkg/storage"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Repositories(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	beta := seedRepository(t, pgSQL, "beta")
	alpha := seedRepository(t, pgSQL, "alpha")

	t.Run("list ordered by name", func(t *testing.T) {
		repos, err := pgSQL.Repositories(ctx)
		require.NoError(t, err)
		require.Len(t, repos, 2)
		require.Equal(t, alpha.ID, repos[0].ID)
		require.Equal(t, beta.ID, repos[1].ID)
	})

	t.Run("by id", func(t *testing.T) {
		repo, err := pgSQL.RepositoryByID(ctx, beta.ID)
		require.NoError(t, err)
		require.NotNil(t, repo)
		require.Equal(t, "beta", repo.Name)
		require.Equal(t, "yum", repo.PluginID)
		require.Equal(t, beta.Configuration, repo.Configuration)
		require.False(t, repo.CreatedAt.IsZero())
	})

	t.Run("missing", func(t *testing.T) {
		repo, err := pgSQL.RepositoryByID(ctx, "missing")
		require.NoError(t, err)
		require.Nil(t, repo)
	})

	t.Run("duplicate name", func(t *testing.T) {
		_, err := pgSQL.StoreRepository(ctx, domain.PackageRepository{
			ID:       "another-id",
			Name:     "ALPHA",
			PluginID: "yum",
		})
		require.ErrorIs(t, err, storage.ErrDuplicate)
	})
}
