package api

import (
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/nutrigenie/nutrigenie/internal/domain"
	"github.com/nutrigenie/nutrigenie/internal/prompt"
	"github.com/nutrigenie/nutrigenie/internal/repository"
	"github.com/nutrigenie/nutrigenie/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// genericAIFailureMessage is shown whenever the completion call fails,
// regardless of the underlying cause.
const genericAIFailureMessage = "Something went wrong with the AI. Please try again."

// PlanHandler holds the plan service dependency.
type PlanHandler struct {
	planService service.PlanService
	logger      zerolog.Logger
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService service.PlanService, logger zerolog.Logger) *PlanHandler {
	return &PlanHandler{planService: planService, logger: logger}
}

// --- Request/Response Structs ---

// SubmitRequest carries the six metrics from the plan form. All fields are
// required at the binding boundary; their contents are opaque past it.
type SubmitRequest struct {
	Age      string `form:"age" binding:"required"`
	Weight   string `form:"weight" binding:"required"`
	Height   string `form:"height" binding:"required"`
	Gender   string `form:"gender" binding:"required"`
	Activity string `form:"activity" binding:"required"`
	Goal     string `form:"goal" binding:"required"`
}

type deletePlanRequest struct {
	PlanID string `form:"planId" binding:"required"`
}

// planView is the dashboard row shape. The report is generated HTML and is
// rendered unescaped.
type planView struct {
	ID        string
	Age       string
	Weight    string
	Height    string
	Gender    string
	Activity  string
	Goal      string
	Report    template.HTML
	CreatedAt time.Time
}

func mapPlanToView(p domain.Plan) planView {
	return planView{
		ID:        p.ID.Hex(),
		Age:       p.Age,
		Weight:    p.Weight,
		Height:    p.Height,
		Gender:    p.Gender,
		Activity:  p.Activity,
		Goal:      p.Goal,
		Report:    template.HTML(p.AIReport),
		CreatedAt: p.CreatedAt,
	}
}

// --- Handler Methods ---

// Home renders the marketing page.
func (h *PlanHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", nil)
}

// NewPlan renders the plan-input form.
func (h *PlanHandler) NewPlan(c *gin.Context) {
	c.HTML(http.StatusOK, "new.html", nil)
}

// Submit runs the submission workflow and renders the generated report.
func (h *PlanHandler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "All plan fields are required.")
		return
	}

	plan, err := h.planService.GeneratePlan(c.Request.Context(), prompt.Metrics{
		Age:      req.Age,
		Weight:   req.Weight,
		Height:   req.Height,
		Gender:   req.Gender,
		Activity: req.Activity,
		Goal:     req.Goal,
	})
	if err != nil {
		if errors.Is(err, service.ErrGenerationFailed) {
			h.logger.Error().Err(err).Msg("completion request failed")
			c.String(http.StatusOK, genericAIFailureMessage)
			return
		}
		h.logger.Error().Err(err).Msg("failed to save plan")
		c.String(http.StatusInternalServerError, "Could not save your plan. Please try again.")
		return
	}

	c.HTML(http.StatusOK, "result.html", gin.H{
		"Report": template.HTML(plan.AIReport),
	})
}

// Dashboard lists every saved plan. Session-gated via RequireLogin.
func (h *PlanHandler) Dashboard(c *gin.Context) {
	plans, err := h.planService.ListPlans(c.Request.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list plans")
		c.String(http.StatusInternalServerError, "Could not load the dashboard. Please try again.")
		return
	}

	views := make([]planView, len(plans))
	for i, p := range plans {
		views[i] = mapPlanToView(p)
	}
	c.HTML(http.StatusOK, "dashboard.html", gin.H{"Plans": views})
}

// DeletePlan removes one plan by the identifier in the hidden form field and
// refreshes the dashboard.
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	var req deletePlanRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "planId is required.")
		return
	}

	if err := h.planService.DeletePlan(c.Request.Context(), req.PlanID); err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			c.String(http.StatusBadRequest, "Invalid plan identifier.")
			return
		}
		h.logger.Error().Err(err).Msg("failed to delete plan")
		c.String(http.StatusInternalServerError, "Could not delete the plan. Please try again.")
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}
