package repository

import (
	"context"
	"errors"
	"time"

	"woodcraft/internal/domain/entities"
	"woodcraft/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const designsUserIDIndex = "user_id-index"

type customerDesignItem struct {
	ID              string   `dynamodbav:"id"`
	UserID          string   `dynamodbav:"user_id"`
	Description     string   `dynamodbav:"description"`
	DecorationType  string   `dynamodbav:"decoration_type,omitempty"`
	Material        string   `dynamodbav:"material"`
	Width           float64  `dynamodbav:"width"`
	Height          float64  `dynamodbav:"height"`
	Thickness       float64  `dynamodbav:"thickness"`
	TaskID          string   `dynamodbav:"task_id,omitempty"`
	ModelURL        string   `dynamodbav:"model_url,omitempty"`
	ModelImageURL   string   `dynamodbav:"model_image_url,omitempty"`
	EstimatedPrice  float64  `dynamodbav:"estimated_price"`
	ComplexityScore float64  `dynamodbav:"complexity_score"`
	ProductionTime  string   `dynamodbav:"production_time"`
	FinalPrice      *float64 `dynamodbav:"final_price,omitempty"`
	Notes           string   `dynamodbav:"notes,omitempty"`
	Status          string   `dynamodbav:"status"`
	CreatedAt       string   `dynamodbav:"created_at"`
	UpdatedAt       string   `dynamodbav:"updated_at"`
}

// CustomerDesignDynamoRepository persists CustomerDesign entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// Status changes are conditional on the status the caller read, so two staff
// actions racing on the same design cannot both win.
type CustomerDesignDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICustomerDesignRepository = (*CustomerDesignDynamoRepository)(nil)

func NewCustomerDesignDynamoRepository(ddb DynamoAPI, tableName string) *CustomerDesignDynamoRepository {
	return &CustomerDesignDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CustomerDesignDynamoRepository) Create(ctx context.Context, d entities.CustomerDesign) (entities.CustomerDesign, error) {
	av, err := attributevalue.MarshalMap(toCustomerDesignItem(d))
	if err != nil {
		return entities.CustomerDesign{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.CustomerDesign{}, err
	}
	return d, nil
}

func (r *CustomerDesignDynamoRepository) GetByID(ctx context.Context, id string) (entities.CustomerDesign, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CustomerDesign{}, err
	}
	if len(out.Item) == 0 {
		return entities.CustomerDesign{}, nil
	}

	var it customerDesignItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CustomerDesign{}, err
	}
	return fromCustomerDesignItem(it), nil
}

func (r *CustomerDesignDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.CustomerDesign, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(designsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})

	items := make([]entities.CustomerDesign, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		if items, err = appendDesigns(items, page.Items); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// ListAll scans the whole table; it backs the staff dashboard only.
func (r *CustomerDesignDynamoRepository) ListAll(ctx context.Context) ([]entities.CustomerDesign, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	items := make([]entities.CustomerDesign, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		if items, err = appendDesigns(items, page.Items); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func appendDesigns(dst []entities.CustomerDesign, raw []map[string]types.AttributeValue) ([]entities.CustomerDesign, error) {
	for _, av := range raw {
		var it customerDesignItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		dst = append(dst, fromCustomerDesignItem(it))
	}
	return dst, nil
}

func (r *CustomerDesignDynamoRepository) Transition(ctx context.Context, id string, from entities.DesignStatus, change entities.DesignChange) (entities.CustomerDesign, error) {
	expr, values, names := buildTransitionUpdate(from, change, formatTime(time.Now()))

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.CustomerDesign{}, nil
		}
		return entities.CustomerDesign{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.CustomerDesign{}, nil
	}

	var it customerDesignItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.CustomerDesign{}, err
	}
	return fromCustomerDesignItem(it), nil
}

func buildTransitionUpdate(from entities.DesignStatus, change entities.DesignChange, now string) (string, map[string]types.AttributeValue, map[string]string) {
	expr := "SET #status = :status, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(change.Status)},
		":from":       &types.AttributeValueMemberS{Value: string(from)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}

	setString := func(attr string, v *string) {
		if v == nil {
			return
		}
		expr += ", #" + attr + " = :" + attr
		vals[":"+attr] = &types.AttributeValueMemberS{Value: *v}
		names["#"+attr] = attr
	}
	setString("model_url", change.ModelURL)
	setString("model_image_url", change.ModelImageURL)
	setString("notes", change.Notes)
	if change.FinalPrice != nil {
		expr += ", #final_price = :final_price"
		vals[":final_price"] = &types.AttributeValueMemberN{Value: floatToString(*change.FinalPrice)}
		names["#final_price"] = "final_price"
	}
	return expr, vals, names
}

func toCustomerDesignItem(d entities.CustomerDesign) customerDesignItem {
	return customerDesignItem{
		ID:              d.ID,
		UserID:          d.UserID,
		Description:     d.Description,
		DecorationType:  d.DecorationType,
		Material:        string(d.Material),
		Width:           d.Dimensions.Width,
		Height:          d.Dimensions.Height,
		Thickness:       d.Dimensions.Thickness,
		TaskID:          d.TaskID,
		ModelURL:        d.ModelURL,
		ModelImageURL:   d.ModelImageURL,
		EstimatedPrice:  d.EstimatedPrice,
		ComplexityScore: d.ComplexityScore,
		ProductionTime:  d.ProductionTime,
		FinalPrice:      d.FinalPrice,
		Notes:           d.Notes,
		Status:          string(d.Status),
		CreatedAt:       formatTime(d.CreatedAt),
		UpdatedAt:       formatTime(d.UpdatedAt),
	}
}

func fromCustomerDesignItem(it customerDesignItem) entities.CustomerDesign {
	return entities.CustomerDesign{
		ID:             it.ID,
		UserID:         it.UserID,
		Description:    it.Description,
		DecorationType: it.DecorationType,
		Material:       entities.Material(it.Material),
		Dimensions: entities.Dimensions{
			Width:     it.Width,
			Height:    it.Height,
			Thickness: it.Thickness,
		},
		TaskID:          it.TaskID,
		ModelURL:        it.ModelURL,
		ModelImageURL:   it.ModelImageURL,
		EstimatedPrice:  it.EstimatedPrice,
		ComplexityScore: it.ComplexityScore,
		ProductionTime:  it.ProductionTime,
		FinalPrice:      it.FinalPrice,
		Notes:           it.Notes,
		Status:          entities.DesignStatus(it.Status),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
