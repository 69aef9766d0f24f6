package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/internal/api/adapters/postgres"
	"taskhub/internal/api/domain/entities"
)

const userColumnsQuery = "SELECT id, email, password_hash, created_at, updated_at"

func sampleUser() *entities.User {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &entities.User{
		ID:           "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
		Email:        "test@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUserRepository_Create(t *testing.T) {
	ctx := testContext(t)
	testUser := sampleUser()

	t.Run("Успешное создание пользователя", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows([]string{"id", "email", "password_hash", "created_at", "updated_at"}).
			AddRow(testUser.ID, testUser.Email, testUser.PasswordHash, testUser.CreatedAt, testUser.UpdatedAt)

		mock.ExpectQuery("INSERT INTO users").
			WithArgs(testUser.Email, testUser.PasswordHash).
			WillReturnRows(rows)

		repo := postgres.NewUserRepository(mock)

		created, err := repo.Create(ctx, &entities.User{
			Email:        testUser.Email,
			PasswordHash: testUser.PasswordHash,
		})

		require.NoError(t, err)
		assert.Equal(t, testUser.ID, created.ID)
		assert.Equal(t, testUser.Email, created.Email)
		assert.Equal(t, testUser.PasswordHash, created.PasswordHash)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Дубликат email возвращает ErrEmailAlreadyExists", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		pgErr := &pgconn.PgError{
			Code:           "23505",
			ConstraintName: "users_email_key",
		}

		mock.ExpectQuery("INSERT INTO users").
			WithArgs(testUser.Email, testUser.PasswordHash).
			WillReturnError(pgErr)

		repo := postgres.NewUserRepository(mock)

		created, err := repo.Create(ctx, &entities.User{
			Email:        testUser.Email,
			PasswordHash: testUser.PasswordHash,
		})

		assert.Nil(t, created)
		assert.ErrorIs(t, err, entities.ErrEmailAlreadyExists)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка базы данных при создании пользователя", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbError := errors.New("database connection failed")
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(testUser.Email, testUser.PasswordHash).
			WillReturnError(dbError)

		repo := postgres.NewUserRepository(mock)

		created, err := repo.Create(ctx, &entities.User{
			Email:        testUser.Email,
			PasswordHash: testUser.PasswordHash,
		})

		assert.Nil(t, created)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, entities.ErrEmailAlreadyExists)
		assert.Contains(t, err.Error(), "error creating user")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	ctx := testContext(t)
	testUser := sampleUser()

	t.Run("Успешное получение пользователя по email", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows([]string{"id", "email", "password_hash", "created_at", "updated_at"}).
			AddRow(testUser.ID, testUser.Email, testUser.PasswordHash, testUser.CreatedAt, testUser.UpdatedAt)

		mock.ExpectQuery(userColumnsQuery).
			WithArgs(testUser.Email).
			WillReturnRows(rows)

		repo := postgres.NewUserRepository(mock)

		user, err := repo.FindByEmail(ctx, testUser.Email)

		require.NoError(t, err)
		assert.Equal(t, testUser.ID, user.ID)
		assert.Equal(t, testUser.Email, user.Email)
		assert.Equal(t, testUser.PasswordHash, user.PasswordHash)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Пользователь не найден по email", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(userColumnsQuery).
			WithArgs("nonexistent@example.com").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewUserRepository(mock)

		user, err := repo.FindByEmail(ctx, "nonexistent@example.com")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка базы данных при поиске по email", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbError := errors.New("database connection failed")
		mock.ExpectQuery(userColumnsQuery).
			WithArgs(testUser.Email).
			WillReturnError(dbError)

		repo := postgres.NewUserRepository(mock)

		user, err := repo.FindByEmail(ctx, testUser.Email)

		assert.Nil(t, user)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "error querying user by email")

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Контекст передается в запрос", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows([]string{"id", "email", "password_hash", "created_at", "updated_at"}).
			AddRow(testUser.ID, testUser.Email, testUser.PasswordHash, testUser.CreatedAt, testUser.UpdatedAt)

		mock.ExpectQuery(userColumnsQuery).
			WithArgs(testUser.Email).
			WillReturnRows(rows)

		repo := postgres.NewUserRepository(mock)

		cancelCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		user, err := repo.FindByEmail(cancelCtx, testUser.Email)

		require.NoError(t, err)
		require.NotNil(t, user)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
