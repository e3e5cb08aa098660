package batch

import (
	"context"
	"fmt"
	"time"

	"woodcraft/internal/domain/entities"
	"woodcraft/internal/infrastructure/generation"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

const (
	// submitTimeout covers every busy retry of one submission.
	submitTimeout = 5 * time.Minute
	// WaitTimeout bounds one WaitForModel attempt. The worker refuses poll
	// settings whose worst case does not fit, see CheckWaitBudget.
	WaitTimeout          = 4 * time.Hour
	waitHeartbeatTimeout = 2 * time.Minute
	markTimeout          = 30 * time.Second
)

// WaitBudget is the longest a full poll can take: every backoff sleep plus
// one HTTP timeout per status check.
func WaitBudget(cfg generation.Config) time.Duration {
	return cfg.Poll.TotalWait() + time.Duration(cfg.Poll.MaxAttempts)*cfg.HTTPTimeout
}

// CheckWaitBudget rejects poll settings that WaitTimeout would cut short.
func CheckWaitBudget(cfg generation.Config) error {
	if budget := WaitBudget(cfg); budget > WaitTimeout {
		return fmt.Errorf("poll budget %s exceeds batch wait timeout %s", budget, WaitTimeout)
	}
	return nil
}

// GenerateDesignResult is what a finished batch generation reports.
type GenerateDesignResult struct {
	DesignID string
	TaskID   string
	ModelURL string
	Status   entities.DesignStatus
}

// GenerateDesignWorkflow generates the 3D model of a stored design and marks
// it generated.
func GenerateDesignWorkflow(ctx workflow.Context, designID string) (GenerateDesignResult, error) {
	logger := workflow.GetLogger(ctx)

	retryPolicy := &temporal.RetryPolicy{
		InitialInterval:        10 * time.Second,
		BackoffCoefficient:     2.0,
		MaximumInterval:        2 * time.Minute,
		MaximumAttempts:        3,
		NonRetryableErrorTypes: []string{ErrTypeGenerationFailed, ErrTypeInvalidDesign},
	}
	submitCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: submitTimeout,
		RetryPolicy:         retryPolicy,
	})
	waitCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: WaitTimeout,
		HeartbeatTimeout:    waitHeartbeatTimeout,
		RetryPolicy:         retryPolicy,
	})
	markCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: markTimeout,
		RetryPolicy:         retryPolicy,
	})

	var a *Activities

	var taskID string
	if err := workflow.ExecuteActivity(submitCtx, a.SubmitModel, designID).Get(ctx, &taskID); err != nil {
		logger.Error("Model submission failed", "designID", designID, "error", err)
		return GenerateDesignResult{}, err
	}

	var task entities.GenerationTask
	if err := workflow.ExecuteActivity(waitCtx, a.WaitForModel, taskID).Get(ctx, &task); err != nil {
		logger.Error("Model generation failed", "designID", designID, "taskID", taskID, "error", err)
		return GenerateDesignResult{}, err
	}

	var design entities.CustomerDesign
	if err := workflow.ExecuteActivity(markCtx, a.MarkGenerated, designID, task).Get(ctx, &design); err != nil {
		logger.Error("Storing generated model failed", "designID", designID, "taskID", task.ID, "error", err)
		return GenerateDesignResult{}, err
	}

	logger.Info("Workflow completed", "designID", designID, "taskID", task.ID)
	return GenerateDesignResult{
		DesignID: designID,
		TaskID:   task.ID,
		ModelURL: design.ModelURL,
		Status:   design.Status,
	}, nil
}

// WorkflowID is stable per design so a design is never generated twice at once.
func WorkflowID(designID string) string {
	return "design-generation-" + designID
}

// WorkflowStarter is the part of client.Client StartGeneration needs.
type WorkflowStarter interface {
	ExecuteWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (client.WorkflowRun, error)
}

// StartGeneration starts GenerateDesignWorkflow for one design. Starting a
// design that is already generating returns the running workflow.
func StartGeneration(ctx context.Context, c WorkflowStarter, taskQueue, designID string) (client.WorkflowRun, error) {
	return c.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:        WorkflowID(designID),
		TaskQueue: taskQueue,
	}, GenerateDesignWorkflow, designID)
}
