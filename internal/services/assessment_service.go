package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"talentflow/internal/assessment"
	"talentflow/internal/cache"
	"talentflow/internal/models/db_models"
	"talentflow/internal/models/request_models"
	"talentflow/internal/models/response_models"
	"talentflow/internal/repositories"
	"talentflow/pkg/metrics"
	"talentflow/pkg/utils"
)

const defaultAssessmentTitle = "Assessment"

type AssessmentServiceInterface interface {
	GetAssessment(ctx context.Context, jobID string) (*assessment.Assessment, error)
	// UpsertAssessment reports whether the assessment was created.
	UpsertAssessment(ctx context.Context, jobID string, req request_models.UpsertAssessmentRequest) (*assessment.Assessment, bool, error)

	AddSection(ctx context.Context, jobID string) (*response_models.BuilderResponse, error)
	UpdateSection(ctx context.Context, jobID, sectionID string, patch assessment.SectionPatch) (*response_models.BuilderResponse, error)
	DeleteSection(ctx context.Context, jobID, sectionID string) (*response_models.BuilderResponse, error)
	AddQuestion(ctx context.Context, jobID, sectionID string) (*response_models.BuilderResponse, error)
	UpdateQuestion(ctx context.Context, jobID, sectionID, questionID string, patch assessment.QuestionPatch) (*response_models.BuilderResponse, error)
	DeleteQuestion(ctx context.Context, jobID, sectionID, questionID string) (*response_models.BuilderResponse, error)
	AddOption(ctx context.Context, jobID, sectionID, questionID string) (*response_models.BuilderResponse, error)
	UpdateOption(ctx context.Context, jobID, sectionID, questionID string, index int, value string) (*response_models.BuilderResponse, error)
	DeleteOption(ctx context.Context, jobID, sectionID, questionID string, index int) (*response_models.BuilderResponse, error)

	VisibleQuestions(ctx context.Context, jobID string, req request_models.VisibilityRequest) (*response_models.VisibilityResponse, error)
	// Submit returns validation errors without an error when the answers
	// are rejected.
	Submit(ctx context.Context, jobID string, req request_models.SubmitAssessmentRequest) (*assessment.Response, assessment.Errors, error)
	GetResponse(ctx context.Context, jobID, candidateID string) (*assessment.Response, error)
}

type AssessmentService struct {
	assessmentRepo repositories.AssessmentRepositoryInterface
	candidateRepo  repositories.CandidateRepositoryInterface
	cache          cache.AssessmentCache
	metrics        *metrics.Metrics
	log            *zap.Logger
	now            func() time.Time
}

func NewAssessmentService(
	assessmentRepo repositories.AssessmentRepositoryInterface,
	candidateRepo repositories.CandidateRepositoryInterface,
	assessmentCache cache.AssessmentCache,
	m *metrics.Metrics,
	log *zap.Logger,
) AssessmentServiceInterface {
	return &AssessmentService{
		assessmentRepo: assessmentRepo,
		candidateRepo:  candidateRepo,
		cache:          assessmentCache,
		metrics:        m,
		log:            log.Named("assessment"),
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (s *AssessmentService) GetAssessment(ctx context.Context, jobID string) (*assessment.Assessment, error) {
	cached, err := s.cache.Get(ctx, jobID)
	switch {
	case err != nil:
		s.metrics.CacheError()
		s.log.Warn("assessment cache read failed", zap.String("job_id", jobID), zap.Error(err))
	case cached != nil:
		s.metrics.CacheHit()
		return cached, nil
	default:
		s.metrics.CacheMiss()
	}

	record, err := s.assessmentRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, dbError("load assessment", err)
	}
	if record == nil {
		return nil, utils.ErrAssessmentNotFound
	}

	a := record.ToDomain()
	s.remember(ctx, a)
	return &a, nil
}

func (s *AssessmentService) UpsertAssessment(ctx context.Context, jobID string, req request_models.UpsertAssessmentRequest) (*assessment.Assessment, bool, error) {
	sections := req.Sections
	if sections == nil {
		sections = []assessment.Section{}
	}
	next := assessment.Assessment{JobID: jobID, Title: req.Title, Sections: sections}
	if err := checkDefinition(next, ""); err != nil {
		return nil, false, err
	}

	existing, err := s.assessmentRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, false, dbError("load assessment", err)
	}

	saved, err := s.save(ctx, next, existing)
	if err != nil {
		return nil, false, err
	}
	return &saved, existing == nil, nil
}

func (s *AssessmentService) AddSection(ctx context.Context, jobID string) (*response_models.BuilderResponse, error) {
	return s.edit(ctx, jobID, true, nil, func(a assessment.Assessment) (assessment.Assessment, assessment.Result) {
		return assessment.AddSection(a)
	})
}

func (s *AssessmentService) UpdateSection(ctx context.Context, jobID, sectionID string, patch assessment.SectionPatch) (*response_models.BuilderResponse, error) {
	return s.edit(ctx, jobID, false, nil, func(a assessment.Assessment) (assessment.Assessment, assessment.Result) {
		return assessment.UpdateSection(a, sectionID, patch)
	})
}

// DeleteSection refuses to remove questions that remaining questions still
// depend on.
func (s *AssessmentService) DeleteSection(ctx context.Context, jobID, sectionID string) (*response_models.BuilderResponse, error) {
	return s.edit(ctx, jobID, false, allRules, func(a assessment.Assessment) (assessment.Assessment, assessment.Result) {
		return assessment.DeleteSection(a, sectionID)
	})
}

func (s *AssessmentService) AddQuestion(ctx context.Context, jobID, sectionID string) (*response_models.BuilderResponse, error) {
	return s.edit(ctx, jobID, false, nil, func(a assessment.Assessment) (assessment.Assessment, assessment.Result) {
		return assessment.AddQuestion(a, sectionID)
	})
}

// UpdateQuestion refuses patches that leave the edited question with a
// broken type or conditional rule.
func (s *AssessmentService) UpdateQuestion(ctx context.Context, jobID, sectionID, questionID string, patch assessment.QuestionPatch) (*response_models.BuilderResponse, error) {
	return s.edit(ctx, jobID, false, questionRules(questionID), func(a assessment.Assessment) (assessment.Assessment, assessment.Result) {
		return assessment.UpdateQuestion(a, sectionID, questionID, patch)
	})
}

// DeleteQuestion refuses to remove a question other questions depend on.
func (s *AssessmentService) DeleteQuestion(ctx context.Context, jobID, sectionID, questionID string) (*response_models.BuilderResponse, error) {
	return s.edit(ctx, jobID, false, allRules, func(a assessment.Assessment) (assessment.Assessment, assessment.Result) {
		return assessment.DeleteQuestion(a, sectionID, questionID)
	})
}

func (s *AssessmentService) AddOption(ctx context.Context, jobID, sectionID, questionID string) (*response_models.BuilderResponse, error) {
	return s.edit(ctx, jobID, false, nil, func(a assessment.Assessment) (assessment.Assessment, assessment.Result) {
		return assessment.AddOption(a, sectionID, questionID)
	})
}

func (s *AssessmentService) UpdateOption(ctx context.Context, jobID, sectionID, questionID string, index int, value string) (*response_models.BuilderResponse, error) {
	return s.edit(ctx, jobID, false, nil, func(a assessment.Assessment) (assessment.Assessment, assessment.Result) {
		return assessment.UpdateOption(a, sectionID, questionID, index, value)
	})
}

func (s *AssessmentService) DeleteOption(ctx context.Context, jobID, sectionID, questionID string, index int) (*response_models.BuilderResponse, error) {
	return s.edit(ctx, jobID, false, nil, func(a assessment.Assessment) (assessment.Assessment, assessment.Result) {
		return assessment.DeleteOption(a, sectionID, questionID, index)
	})
}

// edit loads the job's assessment, applies a builder mutation and stores the
// result when it changed something. With create set, a job without an
// assessment starts from an empty one; otherwise it is a not-found error.
// A non-nil lint rejects the edit before anything is stored.
func (s *AssessmentService) edit(
	ctx context.Context,
	jobID string,
	create bool,
	lint func(assessment.Assessment) error,
	mutate func(assessment.Assessment) (assessment.Assessment, assessment.Result),
) (*response_models.BuilderResponse, error) {
	record, err := s.assessmentRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, dbError("load assessment", err)
	}

	var current assessment.Assessment
	switch {
	case record != nil:
		current = record.ToDomain()
	case create:
		current = assessment.New(jobID, defaultAssessmentTitle)
	default:
		return nil, utils.ErrAssessmentNotFound
	}

	next, res := mutate(current)
	if !res.Applied {
		return &response_models.BuilderResponse{Applied: false, Assessment: current}, nil
	}
	if lint != nil {
		if err := lint(next); err != nil {
			return nil, err
		}
	}

	saved, err := s.save(ctx, next, record)
	if err != nil {
		return nil, err
	}
	return &response_models.BuilderResponse{Applied: true, ID: res.ID, Assessment: saved}, nil
}

// save writes a on top of existing (nil for a new assessment), keeping the
// stored id and creation time, and refreshes the cache.
func (s *AssessmentService) save(ctx context.Context, a assessment.Assessment, existing *db_models.AssessmentRecord) (assessment.Assessment, error) {
	now := s.now()
	a.UpdatedAt = now

	if existing == nil {
		a.ID = ""
		a.CreatedAt = now
		record := db_models.NewAssessmentRecord(a)
		if err := s.assessmentRepo.Create(ctx, &record); err != nil {
			return assessment.Assessment{}, dbError("create assessment", err)
		}
		saved := record.ToDomain()
		s.remember(ctx, saved)
		return saved, nil
	}

	a.ID = existing.ID.String()
	a.CreatedAt = existing.CreatedAt
	record := db_models.NewAssessmentRecord(a)
	if err := s.assessmentRepo.Update(ctx, &record); err != nil {
		s.forget(ctx, a.JobID)
		return assessment.Assessment{}, dbError("update assessment", err)
	}
	saved := record.ToDomain()
	s.remember(ctx, saved)
	return saved, nil
}

func (s *AssessmentService) remember(ctx context.Context, a assessment.Assessment) {
	if err := s.cache.Set(ctx, a); err != nil {
		s.log.Warn("assessment cache write failed", zap.String("job_id", a.JobID), zap.Error(err))
		s.forget(ctx, a.JobID)
	}
}

func (s *AssessmentService) forget(ctx context.Context, jobID string) {
	if err := s.cache.Invalidate(ctx, jobID); err != nil {
		s.log.Warn("assessment cache invalidation failed", zap.String("job_id", jobID), zap.Error(err))
	}
}

func (s *AssessmentService) VisibleQuestions(ctx context.Context, jobID string, req request_models.VisibilityRequest) (*response_models.VisibilityResponse, error) {
	a, err := s.GetAssessment(ctx, jobID)
	if err != nil {
		return nil, err
	}
	answers, err := decodeAnswers(*a, req.Responses)
	if err != nil {
		return nil, err
	}

	ids := []string{}
	for _, q := range assessment.VisibleQuestions(*a, answers) {
		ids = append(ids, q.ID)
	}
	return &response_models.VisibilityResponse{VisibleQuestionIDs: ids}, nil
}

func (s *AssessmentService) Submit(ctx context.Context, jobID string, req request_models.SubmitAssessmentRequest) (*assessment.Response, assessment.Errors, error) {
	a, err := s.GetAssessment(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}
	if req.AssessmentID != "" && req.AssessmentID != a.ID {
		return nil, nil, fmt.Errorf("%w: assessment %s does not belong to job %s", utils.ErrInvalidAnswer, req.AssessmentID, jobID)
	}

	candidate, err := s.candidateRepo.GetByID(ctx, req.CandidateID)
	if err != nil {
		return nil, nil, dbError("load candidate", err)
	}
	if candidate == nil {
		return nil, nil, utils.ErrCandidateNotFound
	}
	if candidate.JobID != jobID {
		return nil, nil, fmt.Errorf("%w: candidate %s applied to another job", utils.ErrInvalidAnswer, req.CandidateID)
	}

	answers, err := decodeAnswers(*a, req.Responses)
	if err != nil {
		return nil, nil, err
	}

	resp, errs := assessment.Submit(*a, req.CandidateID, answers)
	if !errs.Valid() {
		s.metrics.SubmissionRejected()
		return nil, errs, nil
	}

	submittedAt := s.now()
	resp.SubmittedAt = &submittedAt
	record := db_models.NewResponseRecord(resp)
	if err := s.assessmentRepo.UpsertResponse(ctx, &record); err != nil {
		return nil, nil, dbError("store response", err)
	}
	s.metrics.SubmissionAccepted()
	s.log.Info("assessment submitted",
		zap.String("job_id", jobID),
		zap.String("candidate_id", req.CandidateID),
		zap.Int("answers", len(resp.Responses)),
	)
	return &resp, nil, nil
}

func (s *AssessmentService) GetResponse(ctx context.Context, jobID, candidateID string) (*assessment.Response, error) {
	a, err := s.GetAssessment(ctx, jobID)
	if err != nil {
		return nil, err
	}

	record, err := s.assessmentRepo.GetResponse(ctx, a.ID, candidateID)
	if err != nil {
		return nil, dbError("load response", err)
	}
	if record == nil {
		return nil, utils.ErrResponseNotFound
	}
	resp := record.ToDomain()
	return &resp, nil
}

func decodeAnswers(a assessment.Assessment, items []request_models.AnswerItem) (assessment.Answers, error) {
	answers, err := assessment.DecodeAnswers(a, request_models.RawAnswers(items))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidAnswer, err)
	}
	return answers, nil
}

func questionRules(questionID string) func(assessment.Assessment) error {
	return func(a assessment.Assessment) error { return checkDefinition(a, questionID) }
}

func allRules(a assessment.Assessment) error { return checkDefinition(a, "") }

// checkDefinition rejects blocking structural issues. With questionID set
// only issues on that question count.
func checkDefinition(a assessment.Assessment, questionID string) error {
	var blocking []string
	for _, issue := range assessment.CheckConditionals(a) {
		if !issue.Blocking() || (questionID != "" && issue.QuestionID != questionID) {
			continue
		}
		blocking = append(blocking, issue.Error())
	}
	if len(blocking) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", utils.ErrInvalidConditional, strings.Join(blocking, "; "))
}
