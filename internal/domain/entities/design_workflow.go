package entities

// TaskState is the caller-facing outcome of a single status check.
type TaskState string

const (
	TaskStateSuccess    TaskState = "Success"
	TaskStateGenerating TaskState = "Generating"
	TaskStateFailed     TaskState = "Failed"
)

// DesignQuote is the structured answer to a design request.
// Pricing is only present when Success is true.
type DesignQuote struct {
	Success bool
	TaskID  string
	Pricing *PricingResult
	Message string
}

// TaskStatusReport is the structured answer to a status check.
// Task is nil when the status could not be retrieved at all.
type TaskStatusReport struct {
	Success bool
	TaskID  string
	State   TaskState
	Message string
	Task    *GenerationTask
}
