package repository

import (
	"context"
	"fmt"
	"time"

	"tour_billing/internal/domain/entities"
	"tour_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentEvidenceTableName = "payment_evidence"
	evidenceStatusIndex             = "status-index"
	evidenceBookingDocumentIDIndex  = "booking_document_id-index"
)

type paymentEvidenceItem struct {
	ID                string `dynamodbav:"id"`
	BookingDocumentID string `dynamodbav:"booking_document_id"`
	InstallmentTerm   string `dynamodbav:"installment_term"`
	Amount            string `dynamodbav:"amount"`
	Currency          string `dynamodbav:"currency"`
	ScreenshotRef     string `dynamodbav:"screenshot_ref"`
	Status            string `dynamodbav:"status"`
	RejectionReason   string `dynamodbav:"rejection_reason,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	DecidedAt         string `dynamodbav:"decided_at,omitempty"`
}

// PaymentEvidenceDynamoRepository persists PaymentEvidence entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI status-index (PK: status, SK: created_at)
//   - GSI booking_document_id-index (PK: booking_document_id)
type PaymentEvidenceDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IPaymentEvidenceRepository = (*PaymentEvidenceDynamoRepository)(nil)

func NewPaymentEvidenceDynamoRepository(ddb dynamoAPI) *PaymentEvidenceDynamoRepository {
	return &PaymentEvidenceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_EVIDENCE_TABLE", defaultPaymentEvidenceTableName),
	}
}

func (r *PaymentEvidenceDynamoRepository) Create(ctx context.Context, e entities.PaymentEvidence) (entities.PaymentEvidence, error) {
	av, err := attributevalue.MarshalMap(toPaymentEvidenceItem(e))
	if err != nil {
		return entities.PaymentEvidence{}, err
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
			return entities.PaymentEvidence{}, fmt.Errorf("%w: evidence %s already exists", entities.ErrConflict, e.ID)
		}
		return entities.PaymentEvidence{}, storageErr("create payment evidence", err)
	}
	return e, nil
}

func (r *PaymentEvidenceDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentEvidence, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentEvidence{}, storageErr("get payment evidence", err)
	}
	if len(out.Item) == 0 {
		return entities.PaymentEvidence{}, nil
	}

	var it paymentEvidenceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentEvidence{}, err
	}
	return fromPaymentEvidenceItem(it)
}

func (r *PaymentEvidenceDynamoRepository) ListByStatus(ctx context.Context, status entities.EvidenceStatus) ([]entities.PaymentEvidence, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(evidenceStatusIndex),
		KeyConditionExpression:   aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{"#status": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ScanIndexForward: aws.Bool(true),
	})
}

func (r *PaymentEvidenceDynamoRepository) ListByBookingDocumentID(ctx context.Context, bookingDocumentID string) ([]entities.PaymentEvidence, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(evidenceBookingDocumentIDIndex),
		KeyConditionExpression: aws.String("booking_document_id = :doc"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":doc": &types.AttributeValueMemberS{Value: bookingDocumentID},
		},
	})
}

func (r *PaymentEvidenceDynamoRepository) UpdateStatus(
	ctx context.Context,
	id string,
	from, to entities.EvidenceStatus,
	reason string,
	decidedAt time.Time,
) (entities.PaymentEvidence, error) {
	expr := "SET #status = :to, #decided_at = :decided_at"
	values := map[string]types.AttributeValue{
		":to":         &types.AttributeValueMemberS{Value: string(to)},
		":from":       &types.AttributeValueMemberS{Value: string(from)},
		":decided_at": &types.AttributeValueMemberS{Value: formatTime(decidedAt)},
	}
	names := map[string]string{
		"#status":     "status",
		"#decided_at": "decided_at",
	}
	if reason != "" {
		expr += ", #rejection_reason = :reason"
		values[":reason"] = &types.AttributeValueMemberS{Value: reason}
		names["#rejection_reason"] = "rejection_reason"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       stringKey("id", id),
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.PaymentEvidence{}, fmt.Errorf("%w: evidence %s is no longer %s", entities.ErrConflict, id, from)
		}
		return entities.PaymentEvidence{}, storageErr("update payment evidence status", err)
	}

	var it paymentEvidenceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentEvidence{}, err
	}
	return fromPaymentEvidenceItem(it)
}

func (r *PaymentEvidenceDynamoRepository) query(ctx context.Context, in *dynamodb.QueryInput) ([]entities.PaymentEvidence, error) {
	var list []entities.PaymentEvidence
	p := dynamodb.NewQueryPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, storageErr("query payment evidence", err)
		}
		for _, raw := range page.Items {
			var it paymentEvidenceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			e, err := fromPaymentEvidenceItem(it)
			if err != nil {
				return nil, err
			}
			list = append(list, e)
		}
	}
	return list, nil
}

func toPaymentEvidenceItem(e entities.PaymentEvidence) paymentEvidenceItem {
	return paymentEvidenceItem{
		ID:                e.ID,
		BookingDocumentID: e.BookingDocumentID,
		InstallmentTerm:   string(e.InstallmentTerm),
		Amount:            decimalToString(e.Amount),
		Currency:          e.Currency,
		ScreenshotRef:     e.ScreenshotRef,
		Status:            string(e.Status),
		RejectionReason:   e.RejectionReason,
		CreatedAt:         formatTime(e.CreatedAt),
		DecidedAt:         formatTimePtr(e.DecidedAt),
	}
}

func fromPaymentEvidenceItem(it paymentEvidenceItem) (entities.PaymentEvidence, error) {
	dec := newItemDecoder("payment evidence", it.ID)
	e := entities.PaymentEvidence{
		ID:                it.ID,
		BookingDocumentID: it.BookingDocumentID,
		InstallmentTerm:   entities.InstallmentTerm(it.InstallmentTerm),
		Amount:            dec.decimal("amount", it.Amount),
		Currency:          it.Currency,
		ScreenshotRef:     it.ScreenshotRef,
		Status:            entities.EvidenceStatus(it.Status),
		RejectionReason:   it.RejectionReason,
		CreatedAt:         dec.time("created_at", it.CreatedAt),
		DecidedAt:         dec.timePtr("decided_at", it.DecidedAt),
	}
	if err := dec.err(); err != nil {
		return entities.PaymentEvidence{}, err
	}
	return e, nil
}
