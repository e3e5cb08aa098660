package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"unicode"
	"unicode/utf8"

	"woodcraft/internal/domain/entities"
	"woodcraft/internal/usecase/interfaces"
)

const (
	msgGenerationStarted  = "Model generation started successfully"
	msgGenerationFailed   = "Failed to generate 3D model"
	msgStatusUnavailable  = "Failed to retrieve task status"
	msgStatusRetryLater   = "Task status temporarily unavailable, try again"
	msgTaskCompleted      = "Task completed successfully"
	msgTaskInProgress     = "Task is still in progress"
	msgTaskFailed         = "Task failed"
	msgMissingTaskID      = "task_id is required"
	designOutcomeAccepted = "accepted"
	designOutcomeFailed   = "failed"
)

// IDesignWorkflowUseCase is the customer-facing "request a design" flow.
//
// Neither operation returns an error: every collaborator failure is folded
// into the structured result so the HTTP layer can always answer 200 with
// {success:false, message}.
type IDesignWorkflowUseCase interface {
	RequestDesign(ctx context.Context, req entities.DesignRequest) entities.DesignQuote
	CheckStatus(ctx context.Context, taskID string) entities.TaskStatusReport
}

// DesignRequestRecorder receives request outcomes; *metrics.Metrics implements it.
type DesignRequestRecorder interface {
	DesignRequest(outcome string, estimatedPrice float64)
}

type DesignWorkflowUseCase struct {
	generator interfaces.IModelGenerator
	estimator interfaces.IPriceEstimator
	recorder  DesignRequestRecorder
}

var _ IDesignWorkflowUseCase = (*DesignWorkflowUseCase)(nil)

func NewDesignWorkflowUseCase(generator interfaces.IModelGenerator, estimator interfaces.IPriceEstimator, recorder DesignRequestRecorder) *DesignWorkflowUseCase {
	return &DesignWorkflowUseCase{generator: generator, estimator: estimator, recorder: recorder}
}

// RequestDesign submits a generation task and, only once a task id exists,
// prices the request. Pricing never depends on the generated model.
func (u *DesignWorkflowUseCase) RequestDesign(ctx context.Context, req entities.DesignRequest) entities.DesignQuote {
	prompt := GenerationPrompt(req.DecorationType, req.Description)
	log.Printf("[design][usecase] request start material=%s decoration_type=%q description_len=%d", req.Material, req.DecorationType, utf8.RuneCountInString(req.Description))

	dims := req.Dimensions
	taskID, err := u.generator.Submit(ctx, entities.GenerationRequest{
		Prompt:     prompt,
		Material:   req.Material,
		Dimensions: &dims,
		Mode:       entities.GenerationModeTextToModel,
	})
	if err != nil {
		log.Printf("[design][usecase] generation submit failed material=%s err=%v", req.Material, err)
		u.record(designOutcomeFailed, 0)
		return entities.DesignQuote{Success: false, Message: msgGenerationFailed}
	}

	pricing := u.estimator.Estimate(req.Description, req.Material, req.Dimensions)
	log.Printf("[design][usecase] request accepted task_id=%s price=%.2f complexity=%.2f production_time=%q", taskID, pricing.EstimatedPrice, pricing.ComplexityScore, pricing.ProductionTime)
	u.record(designOutcomeAccepted, pricing.EstimatedPrice)

	return entities.DesignQuote{
		Success: true,
		TaskID:  taskID,
		Pricing: &pricing,
		Message: msgGenerationStarted,
	}
}

// CheckStatus performs exactly one status check and never waits. A transient
// failure keeps the task in Generating so callers poll again.
func (u *DesignWorkflowUseCase) CheckStatus(ctx context.Context, taskID string) entities.TaskStatusReport {
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return entities.TaskStatusReport{Success: false, State: entities.TaskStateFailed, Message: msgMissingTaskID}
	}

	task, err := u.generator.Status(ctx, taskID)
	if err != nil {
		log.Printf("[design][usecase] status check failed task_id=%s err=%v", taskID, err)
		if errors.Is(err, entities.ErrStatusTemporarilyUnavailable) {
			return entities.TaskStatusReport{Success: false, TaskID: taskID, State: entities.TaskStateGenerating, Message: msgStatusRetryLater}
		}
		return entities.TaskStatusReport{Success: false, TaskID: taskID, State: entities.TaskStateFailed, Message: msgStatusUnavailable}
	}

	switch {
	case task.Status == entities.GenerationTaskSuccess:
		return entities.TaskStatusReport{Success: true, TaskID: taskID, State: entities.TaskStateSuccess, Message: msgTaskCompleted, Task: &task}
	case task.Status.IsPending():
		return entities.TaskStatusReport{Success: false, TaskID: taskID, State: entities.TaskStateGenerating, Message: msgTaskInProgress, Task: &task}
	default:
		log.Printf("[design][usecase] task ended without a model task_id=%s status=%s raw_status=%q", taskID, task.Status, task.RawStatus)
		return entities.TaskStatusReport{Success: false, TaskID: taskID, State: entities.TaskStateFailed, Message: msgTaskFailed, Task: &task}
	}
}

func (u *DesignWorkflowUseCase) record(outcome string, price float64) {
	if u.recorder != nil {
		u.recorder.DesignRequest(outcome, price)
	}
}

// GenerationPrompt joins the normalized decoration type with the description.
func GenerationPrompt(decorationType, description string) string {
	return strings.TrimSpace(NormalizeDecorationType(decorationType) + " " + description)
}

// NormalizeDecorationType turns "wall_art" into "Wall Art": underscores become
// spaces and every run of letters is capitalized on its first letter only.
func NormalizeDecorationType(decorationType string) string {
	var b strings.Builder
	b.Grow(len(decorationType))
	prevLetter := false
	for _, r := range strings.ReplaceAll(decorationType, "_", " ") {
		switch {
		case !unicode.IsLetter(r):
			b.WriteRune(r)
			prevLetter = false
		case prevLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToTitle(r))
			prevLetter = true
		}
	}
	return b.String()
}
