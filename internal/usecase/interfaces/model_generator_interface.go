package interfaces

import (
	"context"
	"woodcraft/internal/domain/entities"
)

// IModelGenerator abstracts the remote asynchronous 3D generation service.
//
// Submit returns as soon as the service accepted the job. Status performs one
// non-blocking check. Generate submits and then blocks polling until the task
// reaches a terminal state, which ties up the caller for the full generation
// time and is meant for batch/offline use only.
type IModelGenerator interface {
	Submit(ctx context.Context, req entities.GenerationRequest) (taskID string, err error)
	Status(ctx context.Context, taskID string) (entities.GenerationTask, error)
	Poll(ctx context.Context, taskID string) (entities.GenerationTask, error)
	Generate(ctx context.Context, req entities.GenerationRequest) (entities.GenerationTask, error)
}
