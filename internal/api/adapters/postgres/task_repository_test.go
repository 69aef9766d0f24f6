package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/internal/api/adapters/postgres"
	"taskhub/internal/api/domain/entities"
	"taskhub/pkg/logger"
)

const taskColumnsQuery = "SELECT id, title, description, done, created_at, updated_at"

func testContext(t *testing.T) context.Context {
	t.Helper()

	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)

	return logger.NewContext(context.Background(), testLogger)
}

func sampleTask() *entities.Task {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &entities.Task{
		ID:          "11111111-2222-3333-4444-555555555555",
		Title:       "Buy milk",
		Description: "Two liters",
		Done:        false,
		CreatedAt:   now.Add(-time.Hour),
		UpdatedAt:   now,
	}
}

func TestTaskRepository_List(t *testing.T) {
	ctx := testContext(t)

	t.Run("Успешное получение списка задач в порядке убывания updated_at", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		newest := sampleTask()
		oldest := sampleTask()
		oldest.ID = "99999999-8888-7777-6666-555555555555"
		oldest.Title = "Walk the dog"
		oldest.UpdatedAt = newest.UpdatedAt.Add(-time.Minute)

		rows := pgxmock.NewRows([]string{"id", "title", "description", "done", "created_at", "updated_at"}).
			AddRow(newest.ID, newest.Title, newest.Description, newest.Done, newest.CreatedAt, newest.UpdatedAt).
			AddRow(oldest.ID, oldest.Title, oldest.Description, oldest.Done, oldest.CreatedAt, oldest.UpdatedAt)

		mock.ExpectQuery(taskColumnsQuery).WillReturnRows(rows)

		repo := postgres.NewTaskRepository(mock)

		tasks, err := repo.List(ctx)

		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, newest.ID, tasks[0].ID)
		assert.Equal(t, oldest.ID, tasks[1].ID)
		assert.True(t, tasks[0].UpdatedAt.After(tasks[1].UpdatedAt))

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Пустая таблица возвращает пустой срез, а не nil", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows([]string{"id", "title", "description", "done", "created_at", "updated_at"})
		mock.ExpectQuery(taskColumnsQuery).WillReturnRows(rows)

		repo := postgres.NewTaskRepository(mock)

		tasks, err := repo.List(ctx)

		require.NoError(t, err)
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка базы данных при получении списка", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbError := errors.New("database connection failed")
		mock.ExpectQuery(taskColumnsQuery).WillReturnError(dbError)

		repo := postgres.NewTaskRepository(mock)

		tasks, err := repo.List(ctx)

		assert.Nil(t, tasks)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "error listing tasks")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTaskRepository_GetByID(t *testing.T) {
	ctx := testContext(t)
	testTask := sampleTask()

	t.Run("Успешное получение задачи по ID", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows([]string{"id", "title", "description", "done", "created_at", "updated_at"}).
			AddRow(testTask.ID, testTask.Title, testTask.Description, testTask.Done, testTask.CreatedAt, testTask.UpdatedAt)

		mock.ExpectQuery(taskColumnsQuery).
			WithArgs(testTask.ID).
			WillReturnRows(rows)

		repo := postgres.NewTaskRepository(mock)

		task, err := repo.GetByID(ctx, testTask.ID)

		require.NoError(t, err)
		assert.Equal(t, testTask.ID, task.ID)
		assert.Equal(t, testTask.Title, task.Title)
		assert.Equal(t, testTask.Description, task.Description)
		assert.Equal(t, testTask.Done, task.Done)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Задача не найдена", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(taskColumnsQuery).
			WithArgs("missing-id").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewTaskRepository(mock)

		task, err := repo.GetByID(ctx, "missing-id")

		assert.Nil(t, task)
		assert.ErrorIs(t, err, entities.ErrTaskNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка базы данных при поиске по ID", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbError := errors.New("database connection failed")
		mock.ExpectQuery(taskColumnsQuery).
			WithArgs(testTask.ID).
			WillReturnError(dbError)

		repo := postgres.NewTaskRepository(mock)

		task, err := repo.GetByID(ctx, testTask.ID)

		assert.Nil(t, task)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "error querying task by id")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTaskRepository_Create(t *testing.T) {
	ctx := testContext(t)
	testTask := sampleTask()

	t.Run("Успешное создание задачи", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows([]string{"id", "title", "description", "done", "created_at", "updated_at"}).
			AddRow(testTask.ID, testTask.Title, testTask.Description, testTask.Done, testTask.CreatedAt, testTask.UpdatedAt)

		mock.ExpectQuery("INSERT INTO tasks").
			WithArgs(testTask.Title, testTask.Description, testTask.Done).
			WillReturnRows(rows)

		repo := postgres.NewTaskRepository(mock)

		created, err := repo.Create(ctx, &entities.Task{
			Title:       testTask.Title,
			Description: testTask.Description,
			Done:        testTask.Done,
		})

		require.NoError(t, err)
		assert.Equal(t, testTask.ID, created.ID)
		assert.Equal(t, testTask.Title, created.Title)
		assert.False(t, created.CreatedAt.IsZero())
		assert.False(t, created.UpdatedAt.IsZero())

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка базы данных при создании", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbError := errors.New("database connection failed")
		mock.ExpectQuery("INSERT INTO tasks").
			WithArgs(testTask.Title, testTask.Description, testTask.Done).
			WillReturnError(dbError)

		repo := postgres.NewTaskRepository(mock)

		created, err := repo.Create(ctx, &entities.Task{
			Title:       testTask.Title,
			Description: testTask.Description,
			Done:        testTask.Done,
		})

		assert.Nil(t, created)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "error creating task")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTaskRepository_Update(t *testing.T) {
	ctx := testContext(t)
	testTask := sampleTask()

	t.Run("Успешное обновление задачи", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		updatedAt := testTask.UpdatedAt.Add(time.Minute)
		rows := pgxmock.NewRows([]string{"id", "title", "description", "done", "created_at", "updated_at"}).
			AddRow(testTask.ID, "New title", testTask.Description, true, testTask.CreatedAt, updatedAt)

		mock.ExpectQuery("UPDATE tasks").
			WithArgs(testTask.ID, "New title", testTask.Description, true).
			WillReturnRows(rows)

		repo := postgres.NewTaskRepository(mock)

		updated, err := repo.Update(ctx, &entities.Task{
			ID:          testTask.ID,
			Title:       "New title",
			Description: testTask.Description,
			Done:        true,
		})

		require.NoError(t, err)
		assert.Equal(t, "New title", updated.Title)
		assert.True(t, updated.Done)
		assert.True(t, updated.UpdatedAt.After(testTask.UpdatedAt))

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Обновление несуществующей задачи", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("UPDATE tasks").
			WithArgs("missing-id", testTask.Title, testTask.Description, testTask.Done).
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewTaskRepository(mock)

		updated, err := repo.Update(ctx, &entities.Task{
			ID:          "missing-id",
			Title:       testTask.Title,
			Description: testTask.Description,
			Done:        testTask.Done,
		})

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, entities.ErrTaskNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTaskRepository_Delete(t *testing.T) {
	ctx := testContext(t)
	testTask := sampleTask()

	t.Run("Успешное удаление задачи", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM tasks").
			WithArgs(testTask.ID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		repo := postgres.NewTaskRepository(mock)

		err = repo.Delete(ctx, testTask.ID)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Удаление несуществующей задачи", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM tasks").
			WithArgs("missing-id").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		repo := postgres.NewTaskRepository(mock)

		err = repo.Delete(ctx, "missing-id")

		assert.ErrorIs(t, err, entities.ErrTaskNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка базы данных при удалении", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbError := errors.New("database connection failed")
		mock.ExpectExec("DELETE FROM tasks").
			WithArgs(testTask.ID).
			WillReturnError(dbError)

		repo := postgres.NewTaskRepository(mock)

		err = repo.Delete(ctx, testTask.ID)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "error deleting task")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
