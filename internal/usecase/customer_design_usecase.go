package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"woodcraft/internal/domain/entities"
	"woodcraft/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const maxDesignDescriptionLen = 500

var (
	ErrDesignNotFound          = errors.New("design not found")
	ErrInvalidDesignID         = errors.New("invalid design id")
	ErrInvalidDesignInput      = errors.New("invalid design input")
	ErrInvalidDesignTransition = errors.New("invalid design status transition")
	ErrInvalidFinalPrice       = errors.New("final price must be greater than zero")
	ErrMissingRejectionMessage = errors.New("rejection message is required")
	ErrMissingTaskID           = errors.New("design has no generation task")
	ErrGenerationFailed        = errors.New("model generation failed")
	ErrGenerationUnavailable   = errors.New("model generation status unavailable")
)

// CreateDesignInput is what a customer submits when saving a design.
// TaskID and ModelURL come from a previous design request, when there was one.
type CreateDesignInput struct {
	UserID         string
	Description    string
	DecorationType string
	Material       entities.Material
	Dimensions     entities.Dimensions
	TaskID         string
	ModelURL       string
	ModelImageURL  string
}

// ICustomerDesignUseCase exposes the design lifecycle.
//
//   - customers create and list their designs
//   - generation moves pending -> generating -> generated
//   - staff approve (with a final price) or reject (with a message), then
//     start and complete production
type ICustomerDesignUseCase interface {
	CreateDesign(ctx context.Context, in CreateDesignInput) (entities.CustomerDesign, error)
	GetByID(ctx context.Context, id string) (entities.CustomerDesign, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.CustomerDesign, error)
	ListAll(ctx context.Context) ([]entities.CustomerDesign, error)
	RefreshGeneration(ctx context.Context, id string) (entities.CustomerDesign, error)
	MarkGenerated(ctx context.Context, id string, task entities.GenerationTask) (entities.CustomerDesign, error)
	Approve(ctx context.Context, id string, finalPrice float64) (entities.CustomerDesign, error)
	Reject(ctx context.Context, id string, message string) (entities.CustomerDesign, error)
	StartProduction(ctx context.Context, id string) (entities.CustomerDesign, error)
	Complete(ctx context.Context, id string) (entities.CustomerDesign, error)
}

type CustomerDesignUseCase struct {
	repo      interfaces.ICustomerDesignRepository
	estimator interfaces.IPriceEstimator
	generator interfaces.IModelGenerator
}

var _ ICustomerDesignUseCase = (*CustomerDesignUseCase)(nil)

func NewCustomerDesignUseCase(repo interfaces.ICustomerDesignRepository, estimator interfaces.IPriceEstimator, generator interfaces.IModelGenerator) *CustomerDesignUseCase {
	return &CustomerDesignUseCase{repo: repo, estimator: estimator, generator: generator}
}

func (u *CustomerDesignUseCase) CreateDesign(ctx context.Context, in CreateDesignInput) (entities.CustomerDesign, error) {
	if err := validateDesignInput(&in); err != nil {
		log.Printf("[design][usecase] create rejected user_id=%q err=%v", in.UserID, err)
		return entities.CustomerDesign{}, err
	}

	// Pricing is always recomputed here; client-supplied prices are never trusted.
	pricing := u.estimator.Estimate(in.Description, in.Material, in.Dimensions)

	status := entities.DesignStatusPending
	switch {
	case in.ModelURL != "":
		status = entities.DesignStatusGenerated
	case in.TaskID != "":
		status = entities.DesignStatusGenerating
	}

	now := time.Now().UTC()
	d := entities.CustomerDesign{
		ID:              uuid.NewString(),
		UserID:          in.UserID,
		Description:     in.Description,
		DecorationType:  in.DecorationType,
		Material:        in.Material,
		Dimensions:      in.Dimensions,
		TaskID:          in.TaskID,
		ModelURL:        in.ModelURL,
		ModelImageURL:   in.ModelImageURL,
		EstimatedPrice:  pricing.EstimatedPrice,
		ComplexityScore: pricing.ComplexityScore,
		ProductionTime:  pricing.ProductionTime,
		Status:          status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		log.Printf("[design][usecase] create failed user_id=%s err=%v", in.UserID, err)
		return entities.CustomerDesign{}, err
	}
	log.Printf("[design][usecase] created design_id=%s user_id=%s status=%s price=%.2f", created.ID, created.UserID, created.Status, created.EstimatedPrice)
	return created, nil
}

func validateDesignInput(in *CreateDesignInput) error {
	in.UserID = strings.TrimSpace(in.UserID)
	in.Description = strings.TrimSpace(in.Description)
	in.DecorationType = strings.TrimSpace(in.DecorationType)
	in.TaskID = strings.TrimSpace(in.TaskID)
	in.ModelURL = strings.TrimSpace(in.ModelURL)
	in.ModelImageURL = strings.TrimSpace(in.ModelImageURL)
	in.Material = entities.Material(strings.TrimSpace(string(in.Material)))

	switch {
	case in.UserID == "":
		return fmt.Errorf("%w: user_id is required", ErrInvalidDesignInput)
	case in.Description == "":
		return fmt.Errorf("%w: description is required", ErrInvalidDesignInput)
	case utf8.RuneCountInString(in.Description) > maxDesignDescriptionLen:
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidDesignInput, maxDesignDescriptionLen)
	case in.Material == "":
		return fmt.Errorf("%w: material is required", ErrInvalidDesignInput)
	case in.Dimensions.Width < 0 || in.Dimensions.Height < 0 || in.Dimensions.Thickness < 0:
		return fmt.Errorf("%w: dimensions must not be negative", ErrInvalidDesignInput)
	}
	return nil
}

func (u *CustomerDesignUseCase) GetByID(ctx context.Context, id string) (entities.CustomerDesign, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CustomerDesign{}, ErrInvalidDesignID
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CustomerDesign{}, err
	}
	if d.ID == "" {
		return entities.CustomerDesign{}, ErrDesignNotFound
	}
	return d, nil
}

func (u *CustomerDesignUseCase) ListByUserID(ctx context.Context, userID string) ([]entities.CustomerDesign, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrInvalidDesignInput)
	}
	return u.repo.ListByUserID(ctx, userID)
}

func (u *CustomerDesignUseCase) ListAll(ctx context.Context) ([]entities.CustomerDesign, error) {
	return u.repo.ListAll(ctx)
}

// RefreshGeneration performs one status check for the design's task and
// records the model once it is ready. Designs past generation are returned as is.
func (u *CustomerDesignUseCase) RefreshGeneration(ctx context.Context, id string) (entities.CustomerDesign, error) {
	d, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.CustomerDesign{}, err
	}
	if d.Status != entities.DesignStatusPending && d.Status != entities.DesignStatusGenerating {
		return d, nil
	}
	if d.TaskID == "" {
		return entities.CustomerDesign{}, ErrMissingTaskID
	}
	if u.generator == nil {
		return entities.CustomerDesign{}, errors.New("model generator not configured")
	}

	task, err := u.generator.Status(ctx, d.TaskID)
	if err != nil {
		log.Printf("[design][usecase] refresh status failed design_id=%s task_id=%s err=%v", d.ID, d.TaskID, err)
		return entities.CustomerDesign{}, fmt.Errorf("%w: %w", ErrGenerationUnavailable, err)
	}

	switch {
	case task.Status == entities.GenerationTaskSuccess:
		return u.MarkGenerated(ctx, d.ID, task)
	case task.Status.IsPending():
		if d.Status == entities.DesignStatusGenerating {
			return d, nil
		}
		return u.transition(ctx, d, entities.DesignChange{Status: entities.DesignStatusGenerating})
	default:
		log.Printf("[design][usecase] generation ended without a model design_id=%s task_id=%s status=%s", d.ID, d.TaskID, task.Status)
		return entities.CustomerDesign{}, fmt.Errorf("%w: status=%s", ErrGenerationFailed, task.Status)
	}
}

// MarkGenerated stores a finished model on the design and moves it to generated.
func (u *CustomerDesignUseCase) MarkGenerated(ctx context.Context, id string, task entities.GenerationTask) (entities.CustomerDesign, error) {
	if task.Status != entities.GenerationTaskSuccess || strings.TrimSpace(task.ModelURL) == "" {
		return entities.CustomerDesign{}, fmt.Errorf("%w: task %s has no model", ErrInvalidDesignInput, task.ID)
	}
	d, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.CustomerDesign{}, err
	}

	modelURL := task.ModelURL
	imageURL := task.ThumbnailURL
	return u.transition(ctx, d, entities.DesignChange{
		Status:        entities.DesignStatusGenerated,
		ModelURL:      &modelURL,
		ModelImageURL: &imageURL,
	})
}

func (u *CustomerDesignUseCase) Approve(ctx context.Context, id string, finalPrice float64) (entities.CustomerDesign, error) {
	if finalPrice <= 0 {
		return entities.CustomerDesign{}, ErrInvalidFinalPrice
	}
	d, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.CustomerDesign{}, err
	}
	return u.transition(ctx, d, entities.DesignChange{Status: entities.DesignStatusApproved, FinalPrice: &finalPrice})
}

func (u *CustomerDesignUseCase) Reject(ctx context.Context, id string, message string) (entities.CustomerDesign, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return entities.CustomerDesign{}, ErrMissingRejectionMessage
	}
	d, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.CustomerDesign{}, err
	}
	return u.transition(ctx, d, entities.DesignChange{Status: entities.DesignStatusRejected, Notes: &message})
}

func (u *CustomerDesignUseCase) StartProduction(ctx context.Context, id string) (entities.CustomerDesign, error) {
	return u.moveTo(ctx, id, entities.DesignStatusInProgress)
}

func (u *CustomerDesignUseCase) Complete(ctx context.Context, id string) (entities.CustomerDesign, error) {
	return u.moveTo(ctx, id, entities.DesignStatusCompleted)
}

func (u *CustomerDesignUseCase) moveTo(ctx context.Context, id string, next entities.DesignStatus) (entities.CustomerDesign, error) {
	d, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.CustomerDesign{}, err
	}
	return u.transition(ctx, d, entities.DesignChange{Status: next})
}

// transition checks the status graph, then persists the change guarded by the
// status it was read with. A concurrent change in between is reported the same
// way as an illegal transition.
func (u *CustomerDesignUseCase) transition(ctx context.Context, d entities.CustomerDesign, change entities.DesignChange) (entities.CustomerDesign, error) {
	if !d.Status.CanTransitionTo(change.Status) {
		log.Printf("[design][usecase] transition refused design_id=%s from=%s to=%s", d.ID, d.Status, change.Status)
		return entities.CustomerDesign{}, fmt.Errorf("%w: %s -> %s", ErrInvalidDesignTransition, d.Status, change.Status)
	}

	updated, err := u.repo.Transition(ctx, d.ID, d.Status, change)
	if err != nil {
		log.Printf("[design][usecase] transition failed design_id=%s to=%s err=%v", d.ID, change.Status, err)
		return entities.CustomerDesign{}, err
	}
	if updated.ID == "" {
		log.Printf("[design][usecase] transition lost a race design_id=%s expected_from=%s", d.ID, d.Status)
		return entities.CustomerDesign{}, fmt.Errorf("%w: status changed concurrently", ErrInvalidDesignTransition)
	}
	log.Printf("[design][usecase] transition done design_id=%s from=%s to=%s", d.ID, d.Status, updated.Status)
	return updated, nil
}
