package repository

import (
	"context"

	"tour_billing/internal/domain/entities"
	"tour_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPaymentTermsTableName = "payment_terms"

type paymentTermItem struct {
	ID                 string    `dynamodbav:"id"`
	Name               string    `dynamodbav:"name"`
	Description        string    `dynamodbav:"description,omitempty"`
	PaymentType        string    `dynamodbav:"payment_type"`
	DaysRequired       int       `dynamodbav:"days_required"`
	MonthsRequired     int       `dynamodbav:"months_required"`
	MonthlyPercentages []float64 `dynamodbav:"monthly_percentages,omitempty"`
	IsActive           bool      `dynamodbav:"is_active"`
	SortOrder          int       `dynamodbav:"sort_order"`
	Color              string    `dynamodbav:"color,omitempty"`
	CreatedAt          string    `dynamodbav:"created_at"`
	UpdatedAt          string    `dynamodbav:"updated_at"`
}

// PaymentTermDynamoRepository persists PaymentTermConfiguration entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The table holds a handful of rows, so List and MaxSortOrder scan it.
type PaymentTermDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IPaymentTermRepository = (*PaymentTermDynamoRepository)(nil)

func NewPaymentTermDynamoRepository(ddb dynamoAPI) *PaymentTermDynamoRepository {
	return &PaymentTermDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_TERMS_TABLE", defaultPaymentTermsTableName),
	}
}

func (r *PaymentTermDynamoRepository) Create(ctx context.Context, cfg entities.PaymentTermConfiguration) (entities.PaymentTermConfiguration, error) {
	av, err := attributevalue.MarshalMap(toPaymentTermItem(cfg))
	if err != nil {
		return entities.PaymentTermConfiguration{}, err
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
		if isConditionFailed(err) {
			return entities.PaymentTermConfiguration{}, entities.ErrConflict
		}
		return entities.PaymentTermConfiguration{}, storageErr("create payment term", err)
	}
	return cfg, nil
}

// Update replaces the stored configuration. A missing id yields a zero value.
func (r *PaymentTermDynamoRepository) Update(ctx context.Context, cfg entities.PaymentTermConfiguration) (entities.PaymentTermConfiguration, error) {
	av, err := attributevalue.MarshalMap(toPaymentTermItem(cfg))
	if err != nil {
		return entities.PaymentTermConfiguration{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.PaymentTermConfiguration{}, nil
		}
		return entities.PaymentTermConfiguration{}, storageErr("update payment term", err)
	}
	return cfg, nil
}

func (r *PaymentTermDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentTermConfiguration, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentTermConfiguration{}, storageErr("get payment term", err)
	}
	if len(out.Item) == 0 {
		return entities.PaymentTermConfiguration{}, nil
	}

	var it paymentTermItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentTermConfiguration{}, err
	}
	return fromPaymentTermItem(it)
}

func (r *PaymentTermDynamoRepository) List(ctx context.Context, activeOnly bool) ([]entities.PaymentTermConfiguration, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if activeOnly {
		in.FilterExpression = aws.String("#is_active = :active")
		in.ExpressionAttributeNames = map[string]string{"#is_active": "is_active"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberBOOL{Value: true},
		}
	}

	var terms []entities.PaymentTermConfiguration
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, storageErr("list payment terms", err)
		}
		for _, raw := range page.Items {
			var it paymentTermItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			term, err := fromPaymentTermItem(it)
			if err != nil {
				return nil, err
			}
			terms = append(terms, term)
		}
	}
	return terms, nil
}

func (r *PaymentTermDynamoRepository) MaxSortOrder(ctx context.Context) (int, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		ProjectionExpression:     aws.String("#sort_order"),
		ExpressionAttributeNames: map[string]string{"#sort_order": "sort_order"},
	})

	maxOrder := 0
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, storageErr("scan payment term order", err)
		}
		for _, raw := range page.Items {
			var it struct {
				SortOrder int `dynamodbav:"sort_order"`
			}
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return 0, err
			}
			if it.SortOrder > maxOrder {
				maxOrder = it.SortOrder
			}
		}
	}
	return maxOrder, nil
}

func toPaymentTermItem(c entities.PaymentTermConfiguration) paymentTermItem {
	return paymentTermItem{
		ID:                 c.ID,
		Name:               c.Name,
		Description:        c.Description,
		PaymentType:        string(c.PaymentType),
		DaysRequired:       c.DaysRequired,
		MonthsRequired:     c.MonthsRequired,
		MonthlyPercentages: c.MonthlyPercentages,
		IsActive:           c.IsActive,
		SortOrder:          c.SortOrder,
		Color:              c.Color,
		CreatedAt:          formatTime(c.CreatedAt),
		UpdatedAt:          formatTime(c.UpdatedAt),
	}
}

func fromPaymentTermItem(it paymentTermItem) (entities.PaymentTermConfiguration, error) {
	dec := newItemDecoder("payment term", it.ID)
	c := entities.PaymentTermConfiguration{
		ID:                 it.ID,
		Name:               it.Name,
		Description:        it.Description,
		PaymentType:        entities.PaymentType(it.PaymentType),
		DaysRequired:       it.DaysRequired,
		MonthsRequired:     it.MonthsRequired,
		MonthlyPercentages: it.MonthlyPercentages,
		IsActive:           it.IsActive,
		SortOrder:          it.SortOrder,
		Color:              it.Color,
		CreatedAt:          dec.time("created_at", it.CreatedAt),
		UpdatedAt:          dec.time("updated_at", it.UpdatedAt),
	}
	if err := dec.err(); err != nil {
		return entities.PaymentTermConfiguration{}, err
	}
	return c, nil
}
