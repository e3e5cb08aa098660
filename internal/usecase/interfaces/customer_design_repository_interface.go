package interfaces

import (
	"context"
	"woodcraft/internal/domain/entities"
)

// ICustomerDesignRepository abstracts DynamoDB persistence for CustomerDesign.
//
// Lookups return a zero CustomerDesign (empty ID) when nothing matches.
// Transition applies change only while the stored status still equals from;
// otherwise it returns a zero CustomerDesign and no error.

type ICustomerDesignRepository interface {
	Create(ctx context.Context, d entities.CustomerDesign) (entities.CustomerDesign, error)
	GetByID(ctx context.Context, id string) (entities.CustomerDesign, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.CustomerDesign, error)
	ListAll(ctx context.Context) ([]entities.CustomerDesign, error)
	Transition(ctx context.Context, id string, from entities.DesignStatus, change entities.DesignChange) (entities.CustomerDesign, error)
}
