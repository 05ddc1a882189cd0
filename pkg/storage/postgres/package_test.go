package postgres_test

import (
	"context"
	"pkgadmin/pkg/domain"
	"pkgadmin/pkg/storage"
	"pkgadmin/pkg/storage/postgres"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestPackage(repo domain.PackageRepository, name string) domain.PackageDefinition {
	return domain.PackageDefinition{
		ID:         domain.PackageID(uuid.NewString()),
		Name:       name,
		AutoUpdate: true,
		Repository: repo.Ref(),
		Configuration: []domain.ConfigurationProperty{
			{Key: "PACKAGE_SPEC", Value: name + "-1.*"},
			{Key: "PASSWORD", EncryptedValue: "AES:abc"},
		},
	}
}

func TestPgSQL_StorePackage(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	repo := seedRepository(t, pgSQL, "store-repo")

	t.Run("store and read back", func(t *testing.T) {
		pkg := newTestPackage(repo, "nginx")

		stored, err := pgSQL.StorePackage(ctx, pkg)
		require.NoError(t, err)
		require.NotNil(t, stored)
		require.Equal(t, pkg.ID, stored.ID)
		require.Equal(t, "nginx", stored.Name)
		require.True(t, stored.AutoUpdate)
		require.Equal(t, repo.ID, stored.Repository.ID)
		require.Equal(t, repo.Name, stored.Repository.Name)
		require.Equal(t, pkg.Configuration, stored.Configuration)
		require.False(t, stored.CreatedAt.IsZero())
		require.True(t, stored.UpdatedAt.IsZero())
	})

	t.Run("name is unique case-insensitively per repository", func(t *testing.T) {
		_, err := pgSQL.StorePackage(ctx, newTestPackage(repo, "redis"))
		require.NoError(t, err)

		_, err = pgSQL.StorePackage(ctx, newTestPackage(repo, "REDIS"))
		require.ErrorIs(t, err, storage.ErrDuplicate)

		other := seedRepository(t, pgSQL, "other-repo")
		_, err = pgSQL.StorePackage(ctx, newTestPackage(other, "redis"))
		require.NoError(t, err)
	})

	t.Run("reusing an id is reported apart from a duplicate name", func(t *testing.T) {
		pkg := newTestPackage(repo, "postgres")
		_, err := pgSQL.StorePackage(ctx, pkg)
		require.NoError(t, err)

		again := newTestPackage(repo, "another-name")
		again.ID = pkg.ID
		_, err = pgSQL.StorePackage(ctx, again)
		require.ErrorIs(t, err, storage.ErrDuplicateID)
		require.NotErrorIs(t, err, storage.ErrDuplicate)
	})

	t.Run("nil configuration is stored as empty", func(t *testing.T) {
		pkg := newTestPackage(repo, "empty-config")
		pkg.Configuration = nil

		stored, err := pgSQL.StorePackage(ctx, pkg)
		require.NoError(t, err)
		require.Empty(t, stored.Configuration)
	})
}

func TestPgSQL_PackagesQueries(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	repoA := seedRepository(t, pgSQL, "repo-a")
	repoB := seedRepository(t, pgSQL, "repo-b")

	p1, err := pgSQL.StorePackage(ctx, newTestPackage(repoA, "first"))
	require.NoError(t, err)
	p2, err := pgSQL.StorePackage(ctx, newTestPackage(repoB, "second"))
	require.NoError(t, err)
	p3, err := pgSQL.StorePackage(ctx, newTestPackage(repoA, "third"))
	require.NoError(t, err)

	t.Run("all packages in creation order", func(t *testing.T) {
		all, err := pgSQL.Packages(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		require.Equal(t, []domain.PackageID{p1.ID, p2.ID, p3.ID},
			[]domain.PackageID{all[0].ID, all[1].ID, all[2].ID})
	})

	t.Run("packages by repository", func(t *testing.T) {
		byRepo, err := pgSQL.PackagesByRepository(ctx, repoA.ID)
		require.NoError(t, err)
		require.Len(t, byRepo, 2)
		for _, p := range byRepo {
			require.Equal(t, repoA.ID, p.Repository.ID)
		}
	})

	t.Run("package by id", func(t *testing.T) {
		got, err := pgSQL.PackageByID(ctx, p2.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, "second", got.Name)
		require.Equal(t, repoB.Name, got.Repository.Name)
	})

	t.Run("missing package", func(t *testing.T) {
		got, err := pgSQL.PackageByID(ctx, "does-not-exist")
		require.NoError(t, err)
		require.Nil(t, got)
	})
}

func TestPgSQL_LockPackageByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	repo := seedRepository(t, pgSQL, "lock-repo")
	pkg, err := pgSQL.StorePackage(ctx, newTestPackage(repo, "locked"))
	require.NoError(t, err)

	t.Run("outside tx", func(t *testing.T) {
		_, err := pgSQL.LockPackageByID(ctx, pkg.ID)
		require.ErrorIs(t, err, storage.ErrNotInTx)
	})

	t.Run("inside tx", func(t *testing.T) {
		err := pgSQL.WithTx(ctx, func(s storage.AllStorage) error {
			got, err := s.LockPackageByID(ctx, pkg.ID)
			require.NoError(t, err)
			require.NotNil(t, got)
			require.Equal(t, pkg.ID, got.ID)

			missing, err := s.LockPackageByID(ctx, "missing")
			require.NoError(t, err)
			require.Nil(t, missing)

			return nil
		})
		require.NoError(t, err)
	})
}

func TestPgSQL_UpdatePackage(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	repo := seedRepository(t, pgSQL, "update-repo")
	pkg, err := pgSQL.StorePackage(ctx, newTestPackage(repo, "before"))
	require.NoError(t, err)
	taken, err := pgSQL.StorePackage(ctx, newTestPackage(repo, "taken"))
	require.NoError(t, err)

	t.Run("update content", func(t *testing.T) {
		next := *pkg
		next.Name = "after"
		next.AutoUpdate = false
		next.Configuration = []domain.ConfigurationProperty{{Key: "PACKAGE_SPEC", Value: "after-2.*"}}

		updated, err := pgSQL.UpdatePackage(ctx, next)
		require.NoError(t, err)
		require.NotNil(t, updated)
		require.Equal(t, "after", updated.Name)
		require.False(t, updated.AutoUpdate)
		require.Equal(t, next.Configuration, updated.Configuration)
		require.Equal(t, pkg.CreatedAt, updated.CreatedAt)
		require.False(t, updated.UpdatedAt.IsZero())
	})

	t.Run("rename onto existing name", func(t *testing.T) {
		next := *pkg
		next.Name = taken.Name

		_, err := pgSQL.UpdatePackage(ctx, next)
		require.ErrorIs(t, err, storage.ErrDuplicate)
	})

	t.Run("missing package", func(t *testing.T) {
		missing := newTestPackage(repo, "missing")

		updated, err := pgSQL.UpdatePackage(ctx, missing)
		require.NoError(t, err)
		require.Nil(t, updated)
	})
}

func TestPgSQL_DeletePackage(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	repo := seedRepository(t, pgSQL, "delete-repo")
	pkg, err := pgSQL.StorePackage(ctx, newTestPackage(repo, "doomed"))
	require.NoError(t, err)

	deleted, err := pgSQL.DeletePackage(ctx, pkg.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	got, err := pgSQL.PackageByID(ctx, pkg.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	deleted, err = pgSQL.DeletePackage(ctx, pkg.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}

var _ storage.Storage = (*postgres.PgSQL)(nil)
