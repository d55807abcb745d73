package seed

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"talentflow/internal/models/db_models"
	"talentflow/internal/pipeline"
	"talentflow/internal/services"
)

var (
	jobTags = []string{
		"React", "TypeScript", "Node.js", "Python", "AWS", "Docker", "Kubernetes",
		"PostgreSQL", "MongoDB", "Redis", "GraphQL", "REST", "Microservices",
		"Frontend", "Backend", "Full Stack", "DevOps", "Machine Learning", "AI",
	}
	noteMentions = []string{"@hr", "@tech", "@manager"}
	reviewers    = []string{"HR Team", "Tech Lead", "Hiring Manager"}
)

// Generator produces fake jobs, candidates and assessments. The same seed
// and clock give the same data.
type Generator struct {
	fake *gofakeit.Faker
	now  time.Time
}

func NewGenerator(seed int64, now time.Time) *Generator {
	return &Generator{fake: gofakeit.New(seed), now: now.UTC()}
}

func (g *Generator) Jobs(n int) []db_models.Job {
	jobs := make([]db_models.Job, 0, n)
	for i := 0; i < n; i++ {
		title := g.fake.JobTitle()
		created := g.fake.DateRange(g.now.AddDate(-2, 0, 0), g.now)
		status := db_models.JobStatusActive
		if g.fake.Bool() {
			status = db_models.JobStatusArchived
		}
		jobs = append(jobs, db_models.Job{
			BaseModel:   db_models.BaseModel{ID: uuid.New(), CreatedAt: created},
			Title:       title,
			Company:     g.fake.Company(),
			Description: g.fake.Paragraph(3, 4, 12, "\n\n"),
			Status:      status,
			Tags:        g.pick(jobTags, 2, 5),
			Slug:        slug.Make(fmt.Sprintf("%s %d", title, i+1)),
			Order:       i,
		})
	}
	return jobs
}

// Candidates spreads n candidates over jobs. Each one walks the pipeline up
// to its current stage, so the history matches the stage.
func (g *Generator) Candidates(jobs []db_models.Job, n int) []db_models.Candidate {
	if len(jobs) == 0 {
		return nil
	}

	candidates := make([]db_models.Candidate, 0, n)
	for i := 0; i < n; i++ {
		stage := pipeline.Stages[g.fake.Number(0, len(pipeline.Stages)-1)]
		appliedAt := g.fake.DateRange(g.now.AddDate(-1, 0, 0), g.now)
		phone := g.fake.Phone()

		candidates = append(candidates, db_models.Candidate{
			BaseModel:     db_models.BaseModel{ID: uuid.New(), CreatedAt: appliedAt},
			Name:          g.fake.Name(),
			Email:         g.fake.Email(),
			Phone:         &phone,
			Stage:         string(stage),
			JobID:         jobs[g.fake.Number(0, len(jobs)-1)].ID.String(),
			AppliedAt:     appliedAt,
			Notes:         g.notes(appliedAt),
			StatusHistory: g.history(stage, appliedAt),
		})
	}
	return candidates
}

func (g *Generator) notes(appliedAt time.Time) []db_models.Note {
	count := g.fake.Number(0, 3)
	notes := make([]db_models.Note, 0, count)
	for i := 0; i < count; i++ {
		content := g.fake.Sentence(10)
		for _, m := range g.pick(noteMentions, 0, 2) {
			content += " " + m
		}
		notes = append(notes, db_models.Note{
			ID:        uuid.NewString(),
			Content:   content,
			Author:    g.fake.Name(),
			CreatedAt: g.fake.DateRange(appliedAt, g.now),
			Mentions:  services.ExtractMentions(content),
		})
	}
	return notes
}

func (g *Generator) history(stage pipeline.Stage, appliedAt time.Time) []db_models.StatusChange {
	changes := []db_models.StatusChange{{Stage: string(pipeline.Applied), ChangedAt: appliedAt, ChangedBy: services.SystemActor}}
	at := appliedAt
	for i := 1; i <= stage.Index(); i++ {
		at = g.fake.DateRange(at, g.now)
		changes = append(changes, db_models.StatusChange{
			Stage:     string(pipeline.Stages[i]),
			ChangedAt: at,
			ChangedBy: g.fake.RandomString(reviewers),
		})
	}
	return changes
}

// Assessments builds one assessment from tmpl for each of the first n jobs.
func (g *Generator) Assessments(tmpl *Template, jobs []db_models.Job, n int) ([]db_models.AssessmentRecord, error) {
	n = min(n, len(jobs))
	records := make([]db_models.AssessmentRecord, 0, n)
	for _, job := range jobs[:n] {
		a, err := tmpl.Build(job.ID.String(), job.Title)
		if err != nil {
			return nil, err
		}
		a.ID = uuid.NewString()
		a.CreatedAt = g.fake.DateRange(g.now.AddDate(0, -6, 0), g.now)
		a.UpdatedAt = a.CreatedAt
		records = append(records, db_models.NewAssessmentRecord(a))
	}
	return records, nil
}

// pick returns between lo and hi distinct elements of from.
func (g *Generator) pick(from []string, lo, hi int) []string {
	shuffled := append([]string(nil), from...)
	g.fake.ShuffleStrings(shuffled)
	return shuffled[:g.fake.Number(lo, min(hi, len(from)))]
}
