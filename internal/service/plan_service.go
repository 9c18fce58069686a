package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/nutrigenie/nutrigenie/internal/ai"
	"github.com/nutrigenie/nutrigenie/internal/domain"
	"github.com/nutrigenie/nutrigenie/internal/prompt"
	"github.com/nutrigenie/nutrigenie/internal/repository"
)

// --- Error Definitions ---
var (
	// ErrGenerationFailed wraps any provider-side failure of the completion
	// call. The submission workflow aborts before persistence when it occurs.
	ErrGenerationFailed = errors.New("report generation failed")
)

// PlanService owns the plan workflows: the submission pipeline
// (prompt -> completion -> persist) plus dashboard listing and deletion.
type PlanService interface {
	GeneratePlan(ctx context.Context, m prompt.Metrics) (*domain.Plan, error)
	ListPlans(ctx context.Context) ([]domain.Plan, error)
	DeletePlan(ctx context.Context, id string) error
}

type planService struct {
	planRepo  repository.PlanRepository
	generator ai.Generator
}

// NewPlanService creates a new instance of planService.
func NewPlanService(planRepo repository.PlanRepository, generator ai.Generator) PlanService {
	return &planService{
		planRepo:  planRepo,
		generator: generator,
	}
}

// GeneratePlan runs the submission workflow: build the prompt from the raw
// metrics, request one completion, and persist the result. A completion
// failure aborts before anything is written; a store failure after a
// successful completion is returned as-is (the report is lost, there is no
// compensating action).
func (s *planService) GeneratePlan(ctx context.Context, m prompt.Metrics) (*domain.Plan, error) {
	report, err := s.generator.Generate(ctx, prompt.Build(m))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	plan := &domain.Plan{
		Age:      m.Age,
		Weight:   m.Weight,
		Height:   m.Height,
		Gender:   m.Gender,
		Activity: m.Activity,
		Goal:     m.Goal,
		AIReport: report,
		// ID and CreatedAt are set by the repository layer
	}

	planID, err := s.planRepo.Insert(ctx, plan)
	if err != nil {
		return nil, err
	}
	plan.ID = planID
	return plan, nil
}

// ListPlans returns every saved plan for the dashboard.
func (s *planService) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	return s.planRepo.FindAll(ctx)
}

// DeletePlan removes the plan with the given identifier string. The
// repository reports repository.ErrInvalidID for malformed identifiers;
// deleting a nonexistent plan succeeds as a no-op.
func (s *planService) DeletePlan(ctx context.Context, id string) error {
	return s.planRepo.DeleteByID(ctx, id)
}
