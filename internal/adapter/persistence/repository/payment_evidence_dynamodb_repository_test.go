package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"tour_billing/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentEvidenceDynamoRepository_UpdateStatus(t *testing.T) {
	decidedAt := time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)

	t.Run("rejection stores reason", func(t *testing.T) {
		stored := entities.PaymentEvidence{
			ID:              "ev-1",
			InstallmentTerm: "P2",
			Amount:          decimal.NewFromInt(250),
			Status:          entities.EvidenceStatusRejected,
			RejectionReason: "blurry",
			DecidedAt:       &decidedAt,
		}
		av, err := attributevalue.MarshalMap(toPaymentEvidenceItem(stored))
		require.NoError(t, err)

		repo := NewPaymentEvidenceDynamoRepository(&fakeDynamo{
			updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				assert.Equal(t, "attribute_exists(#id) AND #status = :from", aws.ToString(in.ConditionExpression))
				assert.Equal(t, "SET #status = :to, #decided_at = :decided_at, #rejection_reason = :reason", aws.ToString(in.UpdateExpression))
				assert.Equal(t, "pending", in.ExpressionAttributeValues[":from"].(*types.AttributeValueMemberS).Value)
				return &dynamodb.UpdateItemOutput{Attributes: av}, nil
			},
		})

		got, err := repo.UpdateStatus(context.Background(), "ev-1", entities.EvidenceStatusPending, entities.EvidenceStatusRejected, "blurry", decidedAt)
		require.NoError(t, err)
		assert.Equal(t, entities.EvidenceStatusRejected, got.Status)
		require.NotNil(t, got.DecidedAt)
		assert.True(t, got.DecidedAt.Equal(decidedAt))
	})

	t.Run("decided elsewhere is a conflict", func(t *testing.T) {
		repo := NewPaymentEvidenceDynamoRepository(&fakeDynamo{
			updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				assert.NotContains(t, in.ExpressionAttributeValues, ":reason")
				return nil, &types.ConditionalCheckFailedException{}
			},
		})

		_, err := repo.UpdateStatus(context.Background(), "ev-1", entities.EvidenceStatusPending, entities.EvidenceStatusApproved, "", decidedAt)
		assert.True(t, errors.Is(err, entities.ErrConflict), "got %v", err)
	})
}

func TestPaymentEvidenceDynamoRepository_ListByStatus(t *testing.T) {
	item, err := attributevalue.MarshalMap(toPaymentEvidenceItem(entities.PaymentEvidence{ID: "ev-1", Status: entities.EvidenceStatusPending, Amount: decimal.NewFromInt(10)}))
	require.NoError(t, err)

	repo := NewPaymentEvidenceDynamoRepository(&fakeDynamo{
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			assert.Equal(t, evidenceStatusIndex, aws.ToString(in.IndexName))
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{item}}, nil
		},
	})

	got, err := repo.ListByStatus(context.Background(), entities.EvidenceStatusPending)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ev-1", got[0].ID)
}

func TestPaymentEvidenceDynamoRepository_StorageFailure(t *testing.T) {
	repo := NewPaymentEvidenceDynamoRepository(&fakeDynamo{
		getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return nil, errors.New("connection reset")
		},
	})

	_, err := repo.GetByID(context.Background(), "ev-1")
	assert.True(t, errors.Is(err, entities.ErrStorageUnavailable), "got %v", err)
}
