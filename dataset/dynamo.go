package dataset

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cockroachdb/errors"
	"github.com/letmevibethatforyou/voicesearch"
	"github.com/segmentio/ksuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Item is one dataset row as stored in DynamoDB.
type Item struct {
	ID       string   `dynamodbav:"pk"`       // PK field
	Domain   string   `dynamodbav:"sk"`       // SK field
	Position int      `dynamodbav:"position"` // dataset order
	Fields   []string `dynamodbav:"fields"`
}

// PutItemAPI is the subset of the DynamoDB client used to write rows.
type PutItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// Table reads and writes the rows of one DynamoDB table.
type Table struct {
	name   string
	tracer trace.Tracer
}

// NewTable returns a Table for the named DynamoDB table.
func NewTable(name string) *Table {
	return &Table{
		name:   name,
		tracer: otel.Tracer("voicesearch-dataset"),
	}
}

// Load scans every row of domain and returns the records in stored dataset order.
func (t *Table) Load(ctx context.Context, client dynamodb.ScanAPIClient, domain string) ([]voicesearch.Record, error) {
	ctx, span := t.tracer.Start(ctx, "dataset.load_table",
		trace.WithAttributes(
			attribute.String("dynamodb.table_name", t.name),
			attribute.String("dataset.domain", domain),
		),
	)
	defer span.End()

	input := &dynamodb.ScanInput{
		TableName:        aws.String(t.name),
		FilterExpression: aws.String("sk = :domain"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":domain": &types.AttributeValueMemberS{Value: domain},
		},
	}

	var items []Item
	paginator := dynamodb.NewScanPaginator(client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to scan table")
			return nil, errors.Wrapf(voicesearch.ErrDatasetUnavailable, "failed to scan table %s: %v", t.name, err)
		}

		var pageItems []Item
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &pageItems); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to unmarshal rows")
			return nil, errors.Wrapf(voicesearch.ErrDatasetUnavailable, "failed to unmarshal rows from %s: %v", t.name, err)
		}
		items = append(items, pageItems...)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Position < items[j].Position
	})

	records := make([]voicesearch.Record, len(items))
	for i, item := range items {
		records[i] = voicesearch.Record(item.Fields)
	}

	span.SetAttributes(attribute.Int("dataset.record_count", len(records)))
	span.SetStatus(codes.Ok, "table loaded")
	return records, nil
}

// Write stores records as rows of domain, numbering them in slice order.
// Each row gets a fresh KSUID partition key.
func (t *Table) Write(ctx context.Context, client PutItemAPI, domain string, records []voicesearch.Record) error {
	ctx, span := t.tracer.Start(ctx, "dataset.write_table",
		trace.WithAttributes(
			attribute.String("dynamodb.table_name", t.name),
			attribute.String("dataset.domain", domain),
			attribute.Int("dataset.record_count", len(records)),
		),
	)
	defer span.End()

	for i, r := range records {
		item, err := attributevalue.MarshalMap(Item{
			ID:       ksuid.New().String(),
			Domain:   domain,
			Position: i,
			Fields:   []string(r),
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to marshal row")
			return errors.Wrapf(err, "failed to marshal record %d", i)
		}

		_, err = client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(t.name),
			Item:      item,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to put row")
			return errors.Wrapf(err, "failed to put record %d in DynamoDB", i)
		}
	}

	span.SetStatus(codes.Ok, "table written")
	return nil
}
