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

const defaultPaymentRecordsTableName = "payment_records"

type guestInvitationItem struct {
	Email          string `dynamodbav:"email"`
	Status         string `dynamodbav:"status"`
	AcceptedAt     string `dynamodbav:"accepted_at,omitempty"`
	GuestBookingID string `dynamodbav:"guest_booking_id,omitempty"`
}

type paymentRecordItem struct {
	ID                string                `dynamodbav:"id"`
	Provider          string                `dynamodbav:"provider"`
	ProviderPaymentID string                `dynamodbav:"provider_payment_id"`
	PayerEmail        string                `dynamodbav:"payer_email"`
	TourPackageID     string                `dynamodbav:"tour_package_id"`
	TourDate          string                `dynamodbav:"tour_date"`
	BookingType       string                `dynamodbav:"booking_type"`
	AmountPaid        string                `dynamodbav:"amount_paid"`
	Currency          string                `dynamodbav:"currency"`
	BookingDocumentID string                `dynamodbav:"booking_document_id,omitempty"`
	GroupID           string                `dynamodbav:"group_id,omitempty"`
	GuestInvitations  []guestInvitationItem `dynamodbav:"guest_invitations"`
	CreatedAt         string                `dynamodbav:"created_at"`
	UpdatedAt         string                `dynamodbav:"updated_at"`
}

// PaymentRecordDynamoRepository persists PaymentRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string), derived from provider and provider payment id
type PaymentRecordDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IPaymentRecordRepository = (*PaymentRecordDynamoRepository)(nil)

func NewPaymentRecordDynamoRepository(ddb dynamoAPI) *PaymentRecordDynamoRepository {
	return &PaymentRecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_RECORDS_TABLE", defaultPaymentRecordsTableName),
	}
}

func (r *PaymentRecordDynamoRepository) Create(ctx context.Context, rec entities.PaymentRecord) (entities.PaymentRecord, error) {
	av, err := attributevalue.MarshalMap(toPaymentRecordItem(rec))
	if err != nil {
		return entities.PaymentRecord{}, err
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
			return entities.PaymentRecord{}, fmt.Errorf("%w: payment record %s already exists", entities.ErrConflict, rec.ID)
		}
		return entities.PaymentRecord{}, storageErr("create payment record", err)
	}
	return rec, nil
}

func (r *PaymentRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRecord{}, storageErr("get payment record", err)
	}
	if len(out.Item) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentRecordItem(it)
}

// SetBookingDocumentID links the main booking. Re-linking the same booking is
// accepted; linking a different one returns entities.ErrConflict.
func (r *PaymentRecordDynamoRepository) SetBookingDocumentID(ctx context.Context, id, bookingDocumentID string, at time.Time) (entities.PaymentRecord, error) {
	return r.update(ctx, id,
		"SET #booking_document_id = :doc, #updated_at = :updated_at",
		"attribute_exists(#id) AND (attribute_not_exists(#booking_document_id) OR #booking_document_id = :doc)",
		map[string]types.AttributeValue{
			":doc":        &types.AttributeValueMemberS{Value: bookingDocumentID},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(at)},
		},
		map[string]string{
			"#booking_document_id": "booking_document_id",
			"#updated_at":          "updated_at",
		},
	)
}

func (r *PaymentRecordDynamoRepository) AcceptInvitation(ctx context.Context, id string, index int, email, guestBookingID string, at time.Time) (entities.PaymentRecord, error) {
	if index < 0 {
		return entities.PaymentRecord{}, fmt.Errorf("%w: invitation index %d", entities.ErrInvalidInput, index)
	}
	inv := fmt.Sprintf("#inv[%d]", index)

	return r.update(ctx, id,
		fmt.Sprintf("SET %[1]s.#status = :accepted, %[1]s.#accepted_at = :accepted_at, %[1]s.#guest_booking_id = :guest_booking_id, #updated_at = :accepted_at", inv),
		fmt.Sprintf("attribute_exists(#id) AND %[1]s.#status = :pending AND %[1]s.#email = :email", inv),
		map[string]types.AttributeValue{
			":accepted":         &types.AttributeValueMemberS{Value: string(entities.InvitationStatusAccepted)},
			":pending":          &types.AttributeValueMemberS{Value: string(entities.InvitationStatusPending)},
			":accepted_at":      &types.AttributeValueMemberS{Value: formatTime(at)},
			":guest_booking_id": &types.AttributeValueMemberS{Value: guestBookingID},
			":email":            &types.AttributeValueMemberS{Value: entities.NormalizeEmail(email)},
		},
		map[string]string{
			"#inv":              "guest_invitations",
			"#status":           "status",
			"#accepted_at":      "accepted_at",
			"#guest_booking_id": "guest_booking_id",
			"#email":            "email",
			"#updated_at":       "updated_at",
		},
	)
}

func (r *PaymentRecordDynamoRepository) update(
	ctx context.Context,
	id string,
	updateExpr string,
	conditionExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.PaymentRecord, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       stringKey("id", id),
		ConditionExpression:       aws.String(conditionExpr),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.PaymentRecord{}, fmt.Errorf("%w: payment record %s", entities.ErrConflict, id)
		}
		return entities.PaymentRecord{}, storageErr("update payment record", err)
	}

	var it paymentRecordItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentRecordItem(it)
}

func toPaymentRecordItem(rec entities.PaymentRecord) paymentRecordItem {
	invitations := make([]guestInvitationItem, 0, len(rec.GuestInvitations))
	for _, inv := range rec.GuestInvitations {
		invitations = append(invitations, guestInvitationItem{
			Email:          entities.NormalizeEmail(inv.Email),
			Status:         string(inv.Status),
			AcceptedAt:     formatTimePtr(inv.AcceptedAt),
			GuestBookingID: inv.GuestBookingID,
		})
	}
	return paymentRecordItem{
		ID:                rec.ID,
		Provider:          string(rec.Provider),
		ProviderPaymentID: rec.ProviderPaymentID,
		PayerEmail:        rec.PayerEmail,
		TourPackageID:     rec.TourPackageID,
		TourDate:          formatDate(rec.TourDate),
		BookingType:       string(rec.BookingType),
		AmountPaid:        decimalToString(rec.AmountPaid),
		Currency:          rec.Currency,
		BookingDocumentID: rec.BookingDocumentID,
		GroupID:           rec.GroupID,
		GuestInvitations:  invitations,
		CreatedAt:         formatTime(rec.CreatedAt),
		UpdatedAt:         formatTime(rec.UpdatedAt),
	}
}

func fromPaymentRecordItem(it paymentRecordItem) (entities.PaymentRecord, error) {
	dec := newItemDecoder("payment record", it.ID)
	var invitations []entities.GuestInvitation
	for _, inv := range it.GuestInvitations {
		invitations = append(invitations, entities.GuestInvitation{
			Email:          inv.Email,
			Status:         entities.InvitationStatus(inv.Status),
			AcceptedAt:     dec.timePtr("accepted_at", inv.AcceptedAt),
			GuestBookingID: inv.GuestBookingID,
		})
	}
	rec := entities.PaymentRecord{
		ID:                it.ID,
		Provider:          entities.PaymentProvider(it.Provider),
		ProviderPaymentID: it.ProviderPaymentID,
		PayerEmail:        it.PayerEmail,
		TourPackageID:     it.TourPackageID,
		TourDate:          dec.date("tour_date", it.TourDate),
		BookingType:       entities.BookingType(it.BookingType),
		AmountPaid:        dec.decimal("amount_paid", it.AmountPaid),
		Currency:          it.Currency,
		BookingDocumentID: it.BookingDocumentID,
		GroupID:           it.GroupID,
		GuestInvitations:  invitations,
		CreatedAt:         dec.time("created_at", it.CreatedAt),
		UpdatedAt:         dec.time("updated_at", it.UpdatedAt),
	}
	if err := dec.err(); err != nil {
		return entities.PaymentRecord{}, err
	}
	return rec, nil
}
