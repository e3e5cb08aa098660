package entities

import "errors"

// ErrStatusTemporarilyUnavailable marks a status check that failed for a
// reason worth retrying later, such as a dropped connection or a 5xx answer.
var ErrStatusTemporarilyUnavailable = errors.New("generation task status temporarily unavailable")

// GenerationTaskStatus is the state reported by the remote 3D generation service.
type GenerationTaskStatus string

const (
	GenerationTaskQueued  GenerationTaskStatus = "queued"
	GenerationTaskRunning GenerationTaskStatus = "running"
	GenerationTaskSuccess GenerationTaskStatus = "success"
	GenerationTaskFailed  GenerationTaskStatus = "failed"
	GenerationTaskError   GenerationTaskStatus = "error"
	GenerationTaskUnknown GenerationTaskStatus = "unknown"
)

// ParseGenerationTaskStatus maps a raw remote status to the known set.
// Anything unrecognized becomes GenerationTaskUnknown.
func ParseGenerationTaskStatus(raw string) GenerationTaskStatus {
	switch s := GenerationTaskStatus(raw); s {
	case GenerationTaskQueued, GenerationTaskRunning, GenerationTaskSuccess, GenerationTaskFailed, GenerationTaskError:
		return s
	default:
		return GenerationTaskUnknown
	}
}

// IsPending reports a non-terminal status worth polling again.
func (s GenerationTaskStatus) IsPending() bool {
	return s == GenerationTaskQueued || s == GenerationTaskRunning
}

// IsFailure reports a terminal failure.
func (s GenerationTaskStatus) IsFailure() bool {
	return s == GenerationTaskFailed || s == GenerationTaskError
}

// GenerationMode selects how the remote service builds a model.
type GenerationMode string

const (
	GenerationModeTextToModel GenerationMode = "text_to_model"
	GenerationModeRefine      GenerationMode = "refine"
)

// GenerationTask is the orchestrator's transient view of a remote generation job.
// ModelURL and ThumbnailURL are only set once Status is success.
type GenerationTask struct {
	ID           string               `json:"task_id"`
	Status       GenerationTaskStatus `json:"status"`
	RawStatus    string               `json:"raw_status,omitempty"`
	ModelURL     string               `json:"model_url,omitempty"`
	ThumbnailURL string               `json:"thumbnail_url,omitempty"`
}

// GenerationRequest is what a caller hands to the model generator.
// Dimensions is optional; PreviewTaskID is required for refine mode.
type GenerationRequest struct {
	Prompt        string
	Material      Material
	Dimensions    *Dimensions
	Mode          GenerationMode
	PreviewTaskID string
}
