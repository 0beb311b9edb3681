package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"tour_billing/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// dynamoAPI is the subset of *dynamodb.Client the repositories use.
type dynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ dynamoAPI = (*dynamodb.Client)(nil)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func stringKey(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		name: &types.AttributeValueMemberS{Value: value},
	}
}

// storageErr tags SDK failures as ErrStorageUnavailable while keeping the
// original error in the chain.
func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", entities.ErrStorageUnavailable, op, err)
}

func isConditionFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTimePtr(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.DateOnly)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.DateOnly, s)
}

func decimalToString(d decimal.Decimal) string {
	return d.String()
}

func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func decimalPtrToString(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func parseDecimalPtr(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ErrCorruptItem marks a stored item whose attributes cannot be decoded.
var ErrCorruptItem = errors.New("corrupt stored item")

// itemDecoder converts the string attributes of one stored item and keeps the
// first malformed one, so converters stay flat and report through err().
type itemDecoder struct {
	kind string
	id   string
	bad  error
}

func newItemDecoder(kind, id string) *itemDecoder {
	return &itemDecoder{kind: kind, id: id}
}

func (d *itemDecoder) fail(attr string, err error) {
	if err != nil && d.bad == nil {
		d.bad = fmt.Errorf("%w: %s %s: attribute %s: %w", ErrCorruptItem, d.kind, d.id, attr, err)
	}
}

func (d *itemDecoder) time(attr, s string) time.Time {
	t, err := parseTime(s)
	d.fail(attr, err)
	return t
}

func (d *itemDecoder) timePtr(attr, s string) *time.Time {
	t, err := parseTimePtr(s)
	d.fail(attr, err)
	return t
}

func (d *itemDecoder) date(attr, s string) time.Time {
	t, err := parseDate(s)
	d.fail(attr, err)
	return t
}

func (d *itemDecoder) decimal(attr, s string) decimal.Decimal {
	v, err := parseDecimal(s)
	d.fail(attr, err)
	return v
}

func (d *itemDecoder) decimalPtr(attr, s string) *decimal.Decimal {
	v, err := parseDecimalPtr(s)
	d.fail(attr, err)
	return v
}

func (d *itemDecoder) err() error {
	return d.bad
}
