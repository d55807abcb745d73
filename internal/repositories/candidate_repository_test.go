package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentflow/internal/models/db_models"
)

var candidateColumns = []string{"id", "created_at", "updated_at", "name", "email", "phone", "stage", "job_id", "applied_at", "notes", "status_history"}

func TestCandidateRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCandidateRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "candidates" WHERE stage = \$1 AND job_id = \$2`).
		WithArgs("tech", "job-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(21))
	mock.ExpectQuery(`SELECT \* FROM "candidates" WHERE stage = \$1 AND job_id = \$2 ORDER BY applied_at DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows(candidateColumns).
			AddRow(uuid.NewString(), now, now, "Ada", "ada@example.com", nil, "tech", "job-1", now, []byte(`[]`),
				[]byte(`[{"stage":"applied","changedAt":"2025-01-01T00:00:00Z","changedBy":"System"}]`)))

	candidates, total, err := repo.List(context.Background(), CandidateFilter{Stage: "tech", JobID: "job-1", Page: 2, PageSize: 20})

	require.NoError(t, err)
	assert.EqualValues(t, 21, total)
	require.Len(t, candidates, 1)
	assert.Nil(t, candidates[0].Phone)
	require.Len(t, candidates[0].StatusHistory, 1)
	assert.Equal(t, "System", candidates[0].StatusHistory[0].ChangedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCandidateRepository_SearchMatchesNameOrEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCandidateRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "candidates" WHERE name ILIKE \$1 OR email ILIKE \$2`).
		WithArgs("%ada%", "%ada%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "candidates"`).
		WillReturnRows(sqlmock.NewRows(candidateColumns))

	_, total, err := repo.List(context.Background(), CandidateFilter{Search: "  ada ", Page: 1, PageSize: 20})

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCandidateRepository_CreateAndSave(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCandidateRepository(db)

	candidate := &db_models.Candidate{
		Name:          "Ada",
		Email:         "ada@example.com",
		Stage:         "applied",
		JobID:         "job-1",
		AppliedAt:     time.Now(),
		Notes:         db_models.NewNotes(),
		StatusHistory: db_models.NewHistory(db_models.StatusChange{Stage: "applied", ChangedAt: time.Now(), ChangedBy: "System"}),
	}

	mock.ExpectExec(`INSERT INTO "candidates"`).WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, repo.Create(context.Background(), candidate))

	candidate.Stage = "screen"
	mock.ExpectExec(`UPDATE "candidates" SET .*"stage"=\$\d+`).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Save(context.Background(), candidate))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCandidateRepository_GetByIDMalformed(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCandidateRepository(db)

	c, err := repo.GetByID(context.Background(), "nope")

	require.NoError(t, err)
	assert.Nil(t, c)
	assert.NoError(t, mock.ExpectationsWereMet())
}
