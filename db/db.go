package db

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/triadex/constants"
	"github.com/jsphweid/triadex/model"
)

const (
	voicingPrefix = "VOICING#"
	sessionPrefix = "SESSION#"
)

type voicingItem struct {
	PK      string        `dynamodbav:"PK"`
	Span    int           `dynamodbav:"Span"`
	Frets   []int         `dynamodbav:"Frets"`
	Voicing model.Voicing `dynamodbav:"Voicing"`
}

type sessionItem struct {
	PK        string   `dynamodbav:"PK"`
	StartedAt string   `dynamodbav:"StartedAt"`
	Keys      []string `dynamodbav:"Keys"`
}

// first wait before resubmitting unprocessed items; doubled on each attempt
var retryBase = 50 * time.Millisecond

// wait blocks before retry attempt n (1-based) or until ctx is done.
func wait(ctx context.Context, attempt int) error {
	t := time.NewTimer(retryBase << uint(attempt-1))
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type Store struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func NewClient(endpoint, region string) (dynamodbiface.DynamoDBAPI, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(region),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return nil, fmt.Errorf("creating DynamoDB session: %w", err)
	}
	return dynamodb.New(sess), nil
}

func NewStore(client dynamodbiface.DynamoDBAPI, table string) *Store {
	return &Store{client: client, table: table}
}

func (s *Store) PutVoicings(ctx context.Context, voicings []model.Voicing) error {
	for start := 0; start < len(voicings); start += constants.DynamoWriteBatchSize {
		end := start + constants.DynamoWriteBatchSize
		if end > len(voicings) {
			end = len(voicings)
		}

		var requests []*dynamodb.WriteRequest
		for _, v := range voicings[start:end] {
			frets := v.Frets()
			item, err := dynamodbattribute.MarshalMap(voicingItem{
				PK:      voicingPrefix + v.Key(),
				Span:    v.Span(),
				Frets:   frets[:],
				Voicing: v,
			})
			if err != nil {
				return fmt.Errorf("marshaling voicing %v: %w", v.Key(), err)
			}
			requests = append(requests, &dynamodb.WriteRequest{
				PutRequest: &dynamodb.PutRequest{Item: item},
			})
		}

		input := &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]*dynamodb.WriteRequest{s.table: requests},
		}
		for attempt := 0; len(input.RequestItems) > 0; attempt++ {
			if attempt > constants.DynamoMaxRetries {
				return fmt.Errorf("writing voicings: %d items still unprocessed after %d retries",
					len(input.RequestItems[s.table]), constants.DynamoMaxRetries)
			}
			if attempt > 0 {
				if err := wait(ctx, attempt); err != nil {
					return fmt.Errorf("writing voicings: %w", err)
				}
			}
			out, err := s.client.BatchWriteItemWithContext(ctx, input)
			if err != nil {
				return fmt.Errorf("writing voicings: %w", err)
			}
			input.RequestItems = out.UnprocessedItems
		}
	}
	return nil
}

// GetVoicings looks voicings up by key. Keys that are not stored are absent
// from the result; keys DynamoDB leaves unprocessed are requested again.
func (s *Store) GetVoicings(ctx context.Context, keys []string) (map[string]model.Voicing, error) {
	// BatchGetItem rejects duplicate keys
	seen := make(map[string]bool, len(keys))
	var unique []string
	for _, key := range keys {
		if !seen[key] {
			seen[key] = true
			unique = append(unique, key)
		}
	}
	keys = unique

	res := make(map[string]model.Voicing)
	for start := 0; start < len(keys); start += constants.DynamoGetBatchSize {
		end := start + constants.DynamoGetBatchSize
		if end > len(keys) {
			end = len(keys)
		}

		var attrs []map[string]*dynamodb.AttributeValue
		for _, key := range keys[start:end] {
			attrs = append(attrs, map[string]*dynamodb.AttributeValue{
				"PK": {S: aws.String(voicingPrefix + key)},
			})
		}

		input := &dynamodb.BatchGetItemInput{
			RequestItems: map[string]*dynamodb.KeysAndAttributes{
				s.table: {Keys: attrs},
			},
		}
		for attempt := 0; len(input.RequestItems) > 0; attempt++ {
			if attempt > constants.DynamoMaxRetries {
				return nil, fmt.Errorf("reading voicings: keys still unprocessed after %d retries", constants.DynamoMaxRetries)
			}
			if attempt > 0 {
				if err := wait(ctx, attempt); err != nil {
					return nil, fmt.Errorf("reading voicings: %w", err)
				}
			}
			out, err := s.client.BatchGetItemWithContext(ctx, input)
			if err != nil {
				return nil, fmt.Errorf("reading voicings: %w", err)
			}

			for _, raw := range out.Responses[s.table] {
				var item voicingItem
				if err := dynamodbattribute.UnmarshalMap(raw, &item); err != nil {
					return nil, fmt.Errorf("unmarshaling voicing: %w", err)
				}
				res[item.PK[len(voicingPrefix):]] = item.Voicing
			}
			input.RequestItems = out.UnprocessedKeys
		}
	}
	return res, nil
}

func (s *Store) PutSession(ctx context.Context, rec model.SessionRecord) error {
	item, err := dynamodbattribute.MarshalMap(sessionItem{
		PK:        sessionPrefix + rec.ID,
		StartedAt: rec.StartedAt.UTC().Format(time.RFC3339),
		Keys:      rec.Keys,
	})
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}

	_, err = s.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("writing session %v: %w", rec.ID, err)
	}
	return nil
}

func (s *Store) GetSession(ctx context.Context, id string) (model.SessionRecord, bool, error) {
	out, err := s.client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(sessionPrefix + id)},
		},
	})
	if err != nil {
		return model.SessionRecord{}, false, fmt.Errorf("reading session %v: %w", id, err)
	}
	if len(out.Item) == 0 {
		return model.SessionRecord{}, false, nil
	}

	var item sessionItem
	if err := dynamodbattribute.UnmarshalMap(out.Item, &item); err != nil {
		return model.SessionRecord{}, false, fmt.Errorf("unmarshaling session: %w", err)
	}
	startedAt, err := time.Parse(time.RFC3339, item.StartedAt)
	if err != nil {
		return model.SessionRecord{}, false, fmt.Errorf("parsing session start: %w", err)
	}
	return model.SessionRecord{ID: id, StartedAt: startedAt, Keys: item.Keys}, true, nil
}
