package repository

import (
	"context"

	"tour_billing/internal/domain/entities"
	"tour_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/shopspring/decimal"
)

const defaultTourPackagesTableName = "tour_packages"

// Costs are stored as numbers by the dashboard that owns this table.
type tourPackageItem struct {
	ID             string   `dynamodbav:"id"`
	Name           string   `dynamodbav:"name"`
	TourDates      []string `dynamodbav:"tour_dates"`
	DurationDays   int      `dynamodbav:"duration_days"`
	OriginalCost   float64  `dynamodbav:"original_cost"`
	DiscountedCost *float64 `dynamodbav:"discounted_cost,omitempty"`
	ReservationFee float64  `dynamodbav:"reservation_fee"`
	Currency       string   `dynamodbav:"currency"`
}

// TourPackageDynamoRepository reads TourPackage entities from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type TourPackageDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ITourPackageRepository = (*TourPackageDynamoRepository)(nil)

func NewTourPackageDynamoRepository(ddb dynamoAPI) *TourPackageDynamoRepository {
	return &TourPackageDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TOUR_PACKAGES_TABLE", defaultTourPackagesTableName),
	}
}

func (r *TourPackageDynamoRepository) GetByID(ctx context.Context, id string) (entities.TourPackage, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       stringKey("id", id),
	})
	if err != nil {
		return entities.TourPackage{}, storageErr("get tour package", err)
	}
	if len(out.Item) == 0 {
		return entities.TourPackage{}, nil
	}

	var it tourPackageItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TourPackage{}, err
	}
	return fromTourPackageItem(it)
}

func fromTourPackageItem(it tourPackageItem) (entities.TourPackage, error) {
	dec := newItemDecoder("tour package", it.ID)
	p := entities.TourPackage{
		ID:             it.ID,
		Name:           it.Name,
		DurationDays:   it.DurationDays,
		OriginalCost:   decimal.NewFromFloat(it.OriginalCost),
		ReservationFee: decimal.NewFromFloat(it.ReservationFee),
		Currency:       it.Currency,
	}
	if it.DiscountedCost != nil {
		d := decimal.NewFromFloat(*it.DiscountedCost)
		p.DiscountedCost = &d
	}
	for _, raw := range it.TourDates {
		if d := dec.date("tour_dates", raw); !d.IsZero() {
			p.TourDates = append(p.TourDates, d)
		}
	}
	if err := dec.err(); err != nil {
		return entities.TourPackage{}, err
	}
	return p, nil
}
