package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"woodcraft/internal/domain/entities"
	"woodcraft/internal/infrastructure/generation"
	"woodcraft/internal/usecase"
	"woodcraft/internal/usecase/interfaces"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"
)

// Application error types the workflow never retries.
const (
	ErrTypeGenerationFailed = "GenerationFailed"
	ErrTypeInvalidDesign    = "InvalidDesign"
)

// DesignStore is the slice of the design use case the activities need.
type DesignStore interface {
	GetByID(ctx context.Context, id string) (entities.CustomerDesign, error)
	MarkGenerated(ctx context.Context, id string, task entities.GenerationTask) (entities.CustomerDesign, error)
}

// Activities run the blocking generation path on behalf of the workflow.
type Activities struct {
	designs   DesignStore
	generator interfaces.IModelGenerator
}

func NewActivities(designs DesignStore, generator interfaces.IModelGenerator) *Activities {
	return &Activities{designs: designs, generator: generator}
}

// heartbeatInterval must stay well under the wait activity's HeartbeatTimeout.
var heartbeatInterval = 30 * time.Second

// SubmitModel starts the remote generation of a design and returns its task id.
// A design that already carries a task id is not submitted again.
func (a *Activities) SubmitModel(ctx context.Context, designID string) (string, error) {
	logger := activity.GetLogger(ctx)

	d, err := a.designs.GetByID(ctx, designID)
	if err != nil {
		if errors.Is(err, usecase.ErrDesignNotFound) || errors.Is(err, usecase.ErrInvalidDesignID) {
			return "", temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeInvalidDesign, err)
		}
		return "", err
	}
	if d.Status != entities.DesignStatusPending && d.Status != entities.DesignStatusGenerating {
		msg := fmt.Sprintf("design %s is %s", designID, d.Status)
		return "", temporal.NewNonRetryableApplicationError(msg, ErrTypeInvalidDesign, nil)
	}
	if d.TaskID != "" {
		logger.Info("Reusing generation task", "designID", designID, "taskID", d.TaskID)
		return d.TaskID, nil
	}

	dims := d.Dimensions
	req := entities.GenerationRequest{
		Prompt:     usecase.GenerationPrompt(d.DecorationType, d.Description),
		Material:   d.Material,
		Dimensions: &dims,
		Mode:       entities.GenerationModeTextToModel,
	}
	logger.Info("Submitting model", "designID", designID, "material", d.Material)

	taskID, err := a.generator.Submit(ctx, req)
	if err != nil {
		if isFinalGenerationError(err) {
			logger.Error("Submission failed", "designID", designID, "error", err)
			return "", temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeGenerationFailed, err)
		}
		logger.Warn("Submission attempt failed", "designID", designID, "error", err)
		return "", err
	}

	logger.Info("Model submitted", "designID", designID, "taskID", taskID)
	return taskID, nil
}

// WaitForModel blocks until the task is terminal, heartbeating while it polls.
// A retried attempt polls the same task, it never submits a new one.
func (a *Activities) WaitForModel(ctx context.Context, taskID string) (entities.GenerationTask, error) {
	logger := activity.GetLogger(ctx)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(heartbeatInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				activity.RecordHeartbeat(ctx, taskID)
			}
		}
	}()

	task, err := a.generator.Poll(ctx, taskID)
	close(done)
	wg.Wait()

	if err != nil {
		if isFinalGenerationError(err) {
			logger.Error("Generation failed", "taskID", taskID, "error", err)
			return entities.GenerationTask{}, temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeGenerationFailed, err)
		}
		logger.Warn("Waiting for model failed", "taskID", taskID, "error", err)
		return entities.GenerationTask{}, err
	}

	logger.Info("Model generated", "taskID", task.ID)
	return task, nil
}

// MarkGenerated stores the finished model on the design.
func (a *Activities) MarkGenerated(ctx context.Context, designID string, task entities.GenerationTask) (entities.CustomerDesign, error) {
	d, err := a.designs.MarkGenerated(ctx, designID, task)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidDesignTransition) || errors.Is(err, usecase.ErrDesignNotFound) || errors.Is(err, usecase.ErrInvalidDesignInput) {
			return entities.CustomerDesign{}, temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeInvalidDesign, err)
		}
		return entities.CustomerDesign{}, err
	}
	activity.GetLogger(ctx).Info("Design marked generated", "designID", designID, "modelURL", d.ModelURL)
	return d, nil
}

// isFinalGenerationError reports failures a new attempt cannot fix.
func isFinalGenerationError(err error) bool {
	for _, final := range []error{
		generation.ErrMissingAPIKey,
		generation.ErrUnsupportedMode,
		generation.ErrMissingPreviewTask,
		generation.ErrTaskFailed,
		generation.ErrTaskNotFound,
		generation.ErrUnexpectedStatus,
		generation.ErrPollTimeout,
	} {
		if errors.Is(err, final) {
			return true
		}
	}
	var httpErr *generation.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode < 500
	}
	return false
}
