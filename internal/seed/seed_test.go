package seed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"talentflow/internal/assessment"
	"talentflow/internal/pipeline"
)

var seedNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestDefaultTemplate_Builds(t *testing.T) {
	tmpl, err := DefaultTemplate()
	require.NoError(t, err)

	a, err := tmpl.Build("job-1", "Go Engineer")

	require.NoError(t, err)
	assert.Equal(t, "Technical Assessment for Go Engineer", a.Title)
	assert.Equal(t, "job-1", a.JobID)
	require.Len(t, a.Sections, 4)
	assert.Empty(t, assessment.CheckConditionals(a))

	background := a.Sections[0].Questions
	require.NotNil(t, background[2].Conditional)
	assert.Equal(t, background[1].ID, background[2].Conditional.DependsOn)
	assert.Equal(t, assessment.TextValue("Yes"), background[2].Conditional.Value)

	solving := a.Sections[2].Questions
	assert.Equal(t, assessment.NumberValue(5), solving[2].Conditional.Value)
}

func TestDefaultTemplate_DrivesVisibility(t *testing.T) {
	tmpl, err := DefaultTemplate()
	require.NoError(t, err)
	a, err := tmpl.Build("job-1", "Go Engineer")
	require.NoError(t, err)

	relocate := a.Sections[0].Questions[1]
	city := a.Sections[0].Questions[2]

	assert.False(t, assessment.IsVisible(city, assessment.Answers{relocate.ID: assessment.Text("No")}))
	assert.True(t, assessment.IsVisible(city, assessment.Answers{relocate.ID: assessment.Text("Yes")}))
}

func TestParseTemplate_UnknownDependency(t *testing.T) {
	tmpl, err := ParseTemplate([]byte(`
title: "%s"
sections:
  - title: Only
    questions:
      - key: b
        type: short-text
        conditional: {depends_on: a, operator: equals, value: x}
`))
	require.NoError(t, err)

	_, err = tmpl.Build("job-1", "x")

	assert.ErrorContains(t, err, `unknown key "a"`)
}

func TestGenerator_IsDeterministic(t *testing.T) {
	a := NewGenerator(42, seedNow).Jobs(5)
	b := NewGenerator(42, seedNow).Jobs(5)

	require.Len(t, a, 5)
	for i := range a {
		assert.Equal(t, a[i].Title, b[i].Title)
		assert.Equal(t, a[i].Slug, b[i].Slug)
		assert.Equal(t, i, a[i].Order)
	}
}

func TestGenerator_Candidates(t *testing.T) {
	gen := NewGenerator(7, seedNow)
	jobs := gen.Jobs(3)
	jobIDs := map[string]bool{}
	for _, j := range jobs {
		jobIDs[j.ID.String()] = true
		assert.GreaterOrEqual(t, len(j.Tags), 2)
		assert.LessOrEqual(t, len(j.Tags), 5)
	}

	candidates := gen.Candidates(jobs, 50)

	require.Len(t, candidates, 50)
	for _, c := range candidates {
		assert.True(t, jobIDs[c.JobID])
		stage, err := pipeline.Parse(c.Stage)
		require.NoError(t, err)

		require.Len(t, c.StatusHistory, stage.Index()+1)
		assert.Equal(t, "applied", c.StatusHistory[0].Stage)
		assert.Equal(t, "System", c.StatusHistory[0].ChangedBy)
		assert.Equal(t, c.Stage, c.StatusHistory[len(c.StatusHistory)-1].Stage)
		for _, n := range c.Notes {
			assert.LessOrEqual(t, len(n.Mentions), 2)
			assert.False(t, n.CreatedAt.Before(c.AppliedAt))
		}
	}

	assert.Nil(t, gen.Candidates(nil, 10))
}

func TestGenerator_AssessmentsAreCappedByJobs(t *testing.T) {
	tmpl, err := DefaultTemplate()
	require.NoError(t, err)
	gen := NewGenerator(1, seedNow)
	jobs := gen.Jobs(2)

	records, err := gen.Assessments(tmpl, jobs, 3)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, jobs[0].ID.String(), records[0].JobID)
	assert.NotEqual(t, records[0].ID, records[1].ID)
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestSeeder_SkipsWhenJobsExist(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "jobs"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	seeded, err := NewSeeder(db, zap.NewNop(), nil).Run(context.Background(), Options{Jobs: 5})

	require.NoError(t, err)
	assert.False(t, seeded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeeder_CountFailure(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "jobs"`).WillReturnError(errors.New("connection refused"))

	_, err := NewSeeder(db, zap.NewNop(), nil).Run(context.Background(), Options{Jobs: 5})

	assert.ErrorContains(t, err, "count jobs")
}
