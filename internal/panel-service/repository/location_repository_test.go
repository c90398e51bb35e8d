package repository

import (
	apperrors "Panel_Sync_Service/internal/panel-service/errors"
	"Panel_Sync_Service/internal/panel-service/model"
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestLocationRepository_UpsertByExternalID(t *testing.T) {
	testErr := errors.New("test error")
	input := model.Location{
		ExternalID:  1,
		ShortCode:   "eu-west",
		Description: "Western Europe",
	}

	t.Run("Success Insert or update returns row", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewLocationRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "panel_locations"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
		mock.ExpectCommit()

		location, err := repo.UpsertByExternalID(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, int64(11), location.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure Database error wrapped", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewLocationRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "panel_locations"`).WillReturnError(testErr)
		mock.ExpectRollback()

		_, err := repo.UpsertByExternalID(context.Background(), input)
		require.Error(t, err)
		assert.ErrorIs(t, err, testErr)
	})
}

func TestLocationRepository_GetByExternalID(t *testing.T) {
	t.Run("Success Row found", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewLocationRepository(db)

		mock.ExpectQuery(`SELECT .* FROM "panel_locations"`).
			WithArgs(int64(1), 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "external_id", "short_code"}).
				AddRow(int64(11), int64(1), "eu-west"))

		location, err := repo.GetByExternalID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(11), location.ID)
		assert.Equal(t, "eu-west", location.ShortCode)
	})

	t.Run("Failure Missing row maps to not found", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewLocationRepository(db)

		mock.ExpectQuery(`SELECT .* FROM "panel_locations"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByExternalID(context.Background(), 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrLocationNotFound)
	})
}

func TestLocationRepository_DeleteByID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewLocationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "panel_locations"`).
		WithArgs(int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.DeleteByID(context.Background(), 11))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNodeRepository_GetDistinctLocationIDs(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewNodeRepository(db)

	mock.ExpectQuery(`SELECT DISTINCT .* FROM "panel_nodes"`).
		WillReturnRows(sqlmock.NewRows([]string{"panel_location_id"}).
			AddRow(int64(11)).
			AddRow(int64(12)))

	ids, err := repo.GetDistinctLocationIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{11, 12}, ids)
}
