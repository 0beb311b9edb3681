package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tour_billing/internal/domain/entities"
	"tour_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBookingsTableName           = "bookings"
	defaultBookingConstraintsTableName = "booking_constraints"
	bookingsGroupIDIndex               = "group_id-index"
	bookingsTourPackageIDIndex         = "tour_package_id-index"
)

type bookingItem struct {
	DocumentID           string `dynamodbav:"document_id"`
	BookingID            string `dynamodbav:"booking_id"`
	GroupID              string `dynamodbav:"group_id,omitempty"`
	MemberCode           string `dynamodbav:"member_code,omitempty"`
	BookingType          string `dynamodbav:"booking_type"`
	IsMainBooker         bool   `dynamodbav:"is_main_booker"`
	Email                string `dynamodbav:"email"`
	FirstName            string `dynamodbav:"first_name"`
	LastName             string `dynamodbav:"last_name"`
	TourPackageID        string `dynamodbav:"tour_package_id"`
	TourName             string `dynamodbav:"tour_name"`
	TourDate             string `dynamodbav:"tour_date"`
	ReturnDate           string `dynamodbav:"return_date,omitempty"`
	OriginalTourCost     string `dynamodbav:"original_tour_cost"`
	DiscountedTourCost   string `dynamodbav:"discounted_tour_cost,omitempty"`
	Currency             string `dynamodbav:"currency"`
	ReservationFee       string `dynamodbav:"reservation_fee"`
	ReservationFeePaidAt string `dynamodbav:"reservation_fee_paid_at,omitempty"`
	PaymentPlan          string `dynamodbav:"payment_plan"`
	PaymentTermID        string `dynamodbav:"payment_term_id"`
	BookingStatus        string `dynamodbav:"booking_status"`
	PaymentProgress      int    `dynamodbav:"payment_progress"`
	SourcePaymentID      string `dynamodbav:"source_payment_id"`
	Version              int64  `dynamodbav:"version"`
	CreatedAt            string `dynamodbav:"created_at"`
	UpdatedAt            string `dynamodbav:"updated_at"`
}

type bookingConstraintItem struct {
	PK         string `dynamodbav:"pk"`
	DocumentID string `dynamodbav:"document_id"`
}

// Installments live in fixed attribute slots: p1_* .. p4_* and full_payment_*.
var installmentSlots = []entities.InstallmentTerm{
	entities.MonthlyInstallmentTerm(1),
	entities.MonthlyInstallmentTerm(2),
	entities.MonthlyInstallmentTerm(3),
	entities.MonthlyInstallmentTerm(4),
	entities.InstallmentTermFullPayment,
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - bookings PK: document_id (string)
//   - GSI group_id-index (PK: group_id, SK: email)
//   - GSI tour_package_id-index (PK: tour_package_id)
//   - booking_constraints PK: pk (string), one item per (group_id, email)
//
// Create writes the booking and its constraint item in one transaction, which
// is what makes (group_id, email) unique. GSI reads are eventually consistent.
type BookingDynamoRepository struct {
	ddb              dynamoAPI
	tableName        string
	constraintsTable string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb dynamoAPI) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:              ddb,
		tableName:        getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
		constraintsTable: getenvDefault("BOOKING_CONSTRAINTS_TABLE", defaultBookingConstraintsTableName),
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	av, err := marshalBooking(b)
	if err != nil {
		return entities.Booking{}, err
	}

	items := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#document_id)"),
			ExpressionAttributeNames: map[string]string{"#document_id": "document_id"},
		},
	}}
	if b.GroupID != "" {
		constraint, err := attributevalue.MarshalMap(bookingConstraintItem{
			PK:         groupEmailKey(b.GroupID, b.Email),
			DocumentID: b.DocumentID,
		})
		if err != nil {
			return entities.Booking{}, err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:                aws.String(r.constraintsTable),
				Item:                     constraint,
				ConditionExpression:      aws.String("attribute_not_exists(#pk)"),
				ExpressionAttributeNames: map[string]string{"#pk": "pk"},
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if isTransactionConditionFailed(err) {
			return entities.Booking{}, fmt.Errorf("%w: %s in group %s", entities.ErrDuplicateBooking, entities.NormalizeEmail(b.Email), b.GroupID)
		}
		return entities.Booking{}, storageErr("create booking", err)
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByDocumentID(ctx context.Context, documentID string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("document_id", documentID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, storageErr("get booking", err)
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}
	return unmarshalBooking(out.Item)
}

func (r *BookingDynamoRepository) GetByGroupAndEmail(ctx context.Context, groupID, email string) (entities.Booking, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bookingsGroupIDIndex),
		KeyConditionExpression: aws.String("group_id = :gid AND email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":gid":   &types.AttributeValueMemberS{Value: groupID},
			":email": &types.AttributeValueMemberS{Value: entities.NormalizeEmail(email)},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Booking{}, storageErr("query booking by group and email", err)
	}
	if len(out.Items) == 0 {
		return entities.Booking{}, nil
	}
	return unmarshalBooking(out.Items[0])
}

func (r *BookingDynamoRepository) ListByGroupID(ctx context.Context, groupID string) ([]entities.Booking, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bookingsGroupIDIndex),
		KeyConditionExpression: aws.String("group_id = :gid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":gid": &types.AttributeValueMemberS{Value: groupID},
		},
	})

	var bookings []entities.Booking
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, storageErr("list bookings by group", err)
		}
		for _, raw := range page.Items {
			b, err := unmarshalBooking(raw)
			if err != nil {
				return nil, err
			}
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

func (r *BookingDynamoRepository) CountByTourPackage(ctx context.Context, tourPackageID string) (int, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bookingsTourPackageIDIndex),
		KeyConditionExpression: aws.String("tour_package_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: tourPackageID},
		},
		Select: types.SelectCount,
	})

	total := 0
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, storageErr("count bookings by tour package", err)
		}
		total += int(page.Count)
	}
	return total, nil
}

// UpdateLedger writes the paid state of every installment plus the derived
// status and progress, only if the stored version is expectedVersion.
func (r *BookingDynamoRepository) UpdateLedger(ctx context.Context, b entities.Booking, expectedVersion int64) (entities.Booking, error) {
	updateExpr, values, names := ledgerUpdate(b, expectedVersion)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       stringKey("document_id", b.DocumentID),
		ConditionExpression:       aws.String("attribute_exists(#document_id) AND #version = :expected"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#document_id": "document_id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Booking{}, fmt.Errorf("%w: booking %s moved past version %d", entities.ErrConflict, b.DocumentID, expectedVersion)
		}
		return entities.Booking{}, storageErr("update booking ledger", err)
	}
	return unmarshalBooking(out.Attributes)
}

func ledgerUpdate(b entities.Booking, expectedVersion int64) (string, map[string]types.AttributeValue, map[string]string) {
	sets := []string{
		"#booking_status = :booking_status",
		"#payment_progress = :payment_progress",
		"#updated_at = :updated_at",
		"#version = :next",
	}
	var removes []string
	values := map[string]types.AttributeValue{
		":booking_status":   &types.AttributeValueMemberS{Value: string(b.BookingStatus)},
		":payment_progress": &types.AttributeValueMemberN{Value: strconv.Itoa(b.PaymentProgress)},
		":updated_at":       &types.AttributeValueMemberS{Value: formatTime(b.UpdatedAt)},
		":expected":         &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		":next":             &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion+1, 10)},
	}
	names := map[string]string{
		"#booking_status":   "booking_status",
		"#payment_progress": "payment_progress",
		"#updated_at":       "updated_at",
		"#version":          "version",
	}

	for _, inst := range b.Installments {
		prefix := slotPrefix(inst.Term)
		paidAttr, evidenceAttr := prefix+"_date_paid", prefix+"_evidence_id"
		names["#"+paidAttr] = paidAttr
		names["#"+evidenceAttr] = evidenceAttr

		if !inst.IsPaid() {
			removes = append(removes, "#"+paidAttr, "#"+evidenceAttr)
			continue
		}
		sets = append(sets, fmt.Sprintf("#%s = :%s", paidAttr, paidAttr))
		values[":"+paidAttr] = &types.AttributeValueMemberS{Value: formatTimePtr(inst.DatePaid)}
		if inst.PaidByEvidenceID == "" {
			removes = append(removes, "#"+evidenceAttr)
			continue
		}
		sets = append(sets, fmt.Sprintf("#%s = :%s", evidenceAttr, evidenceAttr))
		values[":"+evidenceAttr] = &types.AttributeValueMemberS{Value: inst.PaidByEvidenceID}
	}

	expr := "SET " + strings.Join(sets, ", ")
	if len(removes) > 0 {
		expr += " REMOVE " + strings.Join(removes, ", ")
	}
	return expr, values, names
}

func marshalBooking(b entities.Booking) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return nil, err
	}
	for _, inst := range b.Installments {
		prefix := slotPrefix(inst.Term)
		av[prefix+"_amount"] = &types.AttributeValueMemberS{Value: decimalToString(inst.Amount)}
		av[prefix+"_due_date"] = &types.AttributeValueMemberS{Value: formatDate(inst.DueDate)}
		if inst.IsPaid() {
			av[prefix+"_date_paid"] = &types.AttributeValueMemberS{Value: formatTimePtr(inst.DatePaid)}
		}
		if inst.PaidByEvidenceID != "" {
			av[prefix+"_evidence_id"] = &types.AttributeValueMemberS{Value: inst.PaidByEvidenceID}
		}
	}
	return av, nil
}

func unmarshalBooking(av map[string]types.AttributeValue) (entities.Booking, error) {
	var it bookingItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Booking{}, err
	}
	dec := newItemDecoder("booking", it.DocumentID)
	b := fromBookingItem(dec, it)

	for _, term := range installmentSlots {
		prefix := slotPrefix(term)
		amount, ok := stringAttr(av, prefix+"_amount")
		if !ok {
			continue
		}
		due, _ := stringAttr(av, prefix+"_due_date")
		paid, _ := stringAttr(av, prefix+"_date_paid")
		evidenceID, _ := stringAttr(av, prefix+"_evidence_id")
		b.Installments = append(b.Installments, entities.Installment{
			Term:             term,
			Amount:           dec.decimal(prefix+"_amount", amount),
			DueDate:          dec.date(prefix+"_due_date", due),
			DatePaid:         dec.timePtr(prefix+"_date_paid", paid),
			PaidByEvidenceID: evidenceID,
		})
	}
	if err := dec.err(); err != nil {
		return entities.Booking{}, err
	}
	return b, nil
}

func toBookingItem(b entities.Booking) bookingItem {
	return bookingItem{
		DocumentID:           b.DocumentID,
		BookingID:            b.BookingID,
		GroupID:              b.GroupID,
		MemberCode:           b.MemberCode,
		BookingType:          string(b.BookingType),
		IsMainBooker:         b.IsMainBooker,
		Email:                entities.NormalizeEmail(b.Email),
		FirstName:            b.FirstName,
		LastName:             b.LastName,
		TourPackageID:        b.TourPackageID,
		TourName:             b.TourName,
		TourDate:             formatDate(b.TourDate),
		ReturnDate:           formatDate(b.ReturnDate),
		OriginalTourCost:     decimalToString(b.OriginalTourCost),
		DiscountedTourCost:   decimalPtrToString(b.DiscountedTourCost),
		Currency:             b.Currency,
		ReservationFee:       decimalToString(b.ReservationFee),
		ReservationFeePaidAt: formatTimePtr(b.ReservationFeePaidAt),
		PaymentPlan:          b.PaymentPlan,
		PaymentTermID:        b.PaymentTermID,
		BookingStatus:        string(b.BookingStatus),
		PaymentProgress:      b.PaymentProgress,
		SourcePaymentID:      b.SourcePaymentID,
		Version:              b.Version,
		CreatedAt:            formatTime(b.CreatedAt),
		UpdatedAt:            formatTime(b.UpdatedAt),
	}
}

func fromBookingItem(dec *itemDecoder, it bookingItem) entities.Booking {
	return entities.Booking{
		DocumentID:           it.DocumentID,
		BookingID:            it.BookingID,
		GroupID:              it.GroupID,
		MemberCode:           it.MemberCode,
		BookingType:          entities.BookingType(it.BookingType),
		IsMainBooker:         it.IsMainBooker,
		Email:                it.Email,
		FirstName:            it.FirstName,
		LastName:             it.LastName,
		TourPackageID:        it.TourPackageID,
		TourName:             it.TourName,
		TourDate:             dec.date("tour_date", it.TourDate),
		ReturnDate:           dec.date("return_date", it.ReturnDate),
		OriginalTourCost:     dec.decimal("original_tour_cost", it.OriginalTourCost),
		DiscountedTourCost:   dec.decimalPtr("discounted_tour_cost", it.DiscountedTourCost),
		Currency:             it.Currency,
		ReservationFee:       dec.decimal("reservation_fee", it.ReservationFee),
		ReservationFeePaidAt: dec.timePtr("reservation_fee_paid_at", it.ReservationFeePaidAt),
		PaymentPlan:          it.PaymentPlan,
		PaymentTermID:        it.PaymentTermID,
		BookingStatus:        entities.BookingStatus(it.BookingStatus),
		PaymentProgress:      it.PaymentProgress,
		SourcePaymentID:      it.SourcePaymentID,
		Version:              it.Version,
		CreatedAt:            dec.time("created_at", it.CreatedAt),
		UpdatedAt:            dec.time("updated_at", it.UpdatedAt),
	}
}

func slotPrefix(term entities.InstallmentTerm) string {
	return strings.ToLower(string(term))
}

func stringAttr(av map[string]types.AttributeValue, name string) (string, bool) {
	s, ok := av[name].(*types.AttributeValueMemberS)
	if !ok {
		return "", false
	}
	return s.Value, true
}

func groupEmailKey(groupID, email string) string {
	return "group#" + groupID + "#email#" + entities.NormalizeEmail(email)
}

func isTransactionConditionFailed(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}
