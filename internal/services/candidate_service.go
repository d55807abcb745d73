package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"talentflow/internal/models/db_models"
	"talentflow/internal/models/request_models"
	"talentflow/internal/models/response_models"
	"talentflow/internal/pipeline"
	"talentflow/internal/repositories"
	"talentflow/pkg/utils"
)

const (
	defaultCandidatePageSize = 20

	SystemActor  = "System"
	DefaultActor = "Current User"
)

var mentionPattern = regexp.MustCompile(`@(\w+)`)

type CandidateServiceInterface interface {
	ListCandidates(ctx context.Context, req request_models.ListCandidatesRequest) (*response_models.CandidateListResponse, error)
	CreateCandidate(ctx context.Context, req request_models.CreateCandidateRequest) (*response_models.CandidateResponse, error)
	UpdateCandidate(ctx context.Context, id string, req request_models.UpdateCandidateRequest, actor string) (*response_models.CandidateResponse, error)
	GetTimeline(ctx context.Context, id string) (*response_models.TimelineResponse, error)
	AddNote(ctx context.Context, id string, req request_models.AddNoteRequest, actor string) (*response_models.NoteResponse, error)
}

type CandidateService struct {
	candidateRepo repositories.CandidateRepositoryInterface
	jobRepo       repositories.JobRepositoryInterface
	now           func() time.Time
}

func NewCandidateService(candidateRepo repositories.CandidateRepositoryInterface, jobRepo repositories.JobRepositoryInterface) CandidateServiceInterface {
	return &CandidateService{
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (s *CandidateService) ListCandidates(ctx context.Context, req request_models.ListCandidatesRequest) (*response_models.CandidateListResponse, error) {
	page, pageSize := pageOrDefault(req.Page, req.PageSize, defaultCandidatePageSize)

	candidates, total, err := s.candidateRepo.List(ctx, repositories.CandidateFilter{
		Search:   req.Search,
		Stage:    req.Stage,
		JobID:    req.JobID,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, dbError("list candidates", err)
	}

	out := &response_models.CandidateListResponse{
		Candidates: make([]response_models.CandidateResponse, 0, len(candidates)),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}
	for _, c := range candidates {
		out.Candidates = append(out.Candidates, toCandidateResponse(c))
	}
	return out, nil
}

func (s *CandidateService) CreateCandidate(ctx context.Context, req request_models.CreateCandidateRequest) (*response_models.CandidateResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, dbError("load job", err)
	}
	if job == nil {
		return nil, utils.ErrJobNotFound
	}

	stage := pipeline.Applied
	if req.Stage != "" {
		if stage, err = pipeline.Parse(req.Stage); err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrInvalidStage, err)
		}
	}

	now := s.now()
	candidate := db_models.Candidate{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     req.Phone,
		Stage:     string(stage),
		JobID:     job.ID.String(),
		AppliedAt: now,
		Notes:     db_models.NewNotes(),
		StatusHistory: db_models.NewHistory(db_models.StatusChange{
			Stage:     string(stage),
			ChangedAt: now,
			ChangedBy: SystemActor,
		}),
	}
	if err := s.candidateRepo.Create(ctx, &candidate); err != nil {
		return nil, dbError("create candidate", err)
	}

	resp := toCandidateResponse(candidate)
	return &resp, nil
}

// UpdateCandidate applies a partial update. A stage change appends one entry
// to the status history, attributed to actor.
func (s *CandidateService) UpdateCandidate(ctx context.Context, id string, req request_models.UpdateCandidateRequest, actor string) (*response_models.CandidateResponse, error) {
	candidate, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		candidate.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		candidate.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		candidate.Phone = req.Phone
	}
	if req.JobID != nil {
		job, err := s.jobRepo.GetByID(ctx, *req.JobID)
		if err != nil {
			return nil, dbError("load job", err)
		}
		if job == nil {
			return nil, utils.ErrJobNotFound
		}
		candidate.JobID = job.ID.String()
	}
	if req.Stage != nil {
		next, err := pipeline.Parse(*req.Stage)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrInvalidStage, err)
		}
		current := pipeline.Stage(candidate.Stage)
		if next != current {
			if !pipeline.CanTransition(current, next) {
				return nil, fmt.Errorf("%w: %s -> %s", utils.ErrInvalidStage, current, next)
			}
			candidate.Stage = string(next)
			candidate.StatusHistory = append(candidate.StatusHistory, db_models.StatusChange{
				Stage:     string(next),
				ChangedAt: s.now(),
				ChangedBy: actorOrDefault(actor),
			})
		}
	}

	if err := s.candidateRepo.Save(ctx, candidate); err != nil {
		return nil, dbError("update candidate", err)
	}

	resp := toCandidateResponse(*candidate)
	return &resp, nil
}

func (s *CandidateService) GetTimeline(ctx context.Context, id string) (*response_models.TimelineResponse, error) {
	candidate, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return &response_models.TimelineResponse{
		CandidateID: candidate.ID.String(),
		Timeline:    toStatusChanges(candidate.StatusHistory),
	}, nil
}

func (s *CandidateService) AddNote(ctx context.Context, id string, req request_models.AddNoteRequest, actor string) (*response_models.NoteResponse, error) {
	candidate, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	author := strings.TrimSpace(req.Author)
	if author == "" {
		author = actorOrDefault(actor)
	}
	note := db_models.Note{
		ID:        uuid.NewString(),
		Content:   req.Content,
		Author:    author,
		CreatedAt: s.now(),
		Mentions:  ExtractMentions(req.Content),
	}
	candidate.Notes = append(candidate.Notes, note)

	if err := s.candidateRepo.Save(ctx, candidate); err != nil {
		return nil, dbError("add note", err)
	}

	resp := toNoteResponse(note)
	return &resp, nil
}

func (s *CandidateService) load(ctx context.Context, id string) (*db_models.Candidate, error) {
	candidate, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, dbError("load candidate", err)
	}
	if candidate == nil {
		return nil, utils.ErrCandidateNotFound
	}
	return candidate, nil
}

// ExtractMentions returns the @word handles in content, without the @,
// in order of appearance.
func ExtractMentions(content string) []string {
	mentions := []string{}
	for _, m := range mentionPattern.FindAllStringSubmatch(content, -1) {
		mentions = append(mentions, m[1])
	}
	return mentions
}

func actorOrDefault(actor string) string {
	if actor = strings.TrimSpace(actor); actor != "" {
		return actor
	}
	return DefaultActor
}

func toCandidateResponse(c db_models.Candidate) response_models.CandidateResponse {
	notes := make([]response_models.NoteResponse, 0, len(c.Notes))
	for _, n := range c.Notes {
		notes = append(notes, toNoteResponse(n))
	}
	return response_models.CandidateResponse{
		ID:            c.ID.String(),
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		Stage:         c.Stage,
		JobID:         c.JobID,
		AppliedAt:     c.AppliedAt,
		Notes:         notes,
		StatusHistory: toStatusChanges(c.StatusHistory),
	}
}

func toNoteResponse(n db_models.Note) response_models.NoteResponse {
	mentions := n.Mentions
	if mentions == nil {
		mentions = []string{}
	}
	return response_models.NoteResponse{
		ID:        n.ID,
		Content:   n.Content,
		Author:    n.Author,
		CreatedAt: n.CreatedAt,
		Mentions:  mentions,
	}
}

func toStatusChanges(history []db_models.StatusChange) []response_models.StatusChangeResponse {
	out := make([]response_models.StatusChangeResponse, 0, len(history))
	for _, h := range history {
		out = append(out, response_models.StatusChangeResponse{
			Stage:     h.Stage,
			ChangedAt: h.ChangedAt,
			ChangedBy: h.ChangedBy,
		})
	}
	return out
}
