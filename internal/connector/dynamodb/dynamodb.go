// Package dynamodb implements the connector capability against a DynamoDB
// table, grounded on the teacher's internal/providers/aws.getDynamoDBTable
// for table metadata, extended with an actual Scan-based data fetch chunked
// DocumentChunkDocs items (documents) at a time the way spec.md's §4.2
// document-kind chunking rule describes.
package dynamodb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/catherinevee/sensiscan/internal/errors"
	"github.com/catherinevee/sensiscan/pkg/models"
)

// Config configures a Connector against a single DynamoDB table.
type Config struct {
	TableName string
	Region    string
}

// Connector implements connector.Connector against DynamoDB, representing
// the whole table as a single Object whose Size is its approximate item
// count (DynamoDB's DescribeTable ItemCount is an estimate updated roughly
// every six hours, the same caveat the reference service's document-count
// chunk planner accepts).
type Connector struct {
	cfg    Config
	client *dynamodb.Client
}

// New constructs a Connector, loading AWS credentials from the default
// provider chain.
func New(ctx context.Context, cfg Config) (*Connector, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, errors.Wrap(err, errors.KindPermanent, "dynamodb: loading AWS config")
	}
	return &Connector{cfg: cfg, client: dynamodb.NewFromConfig(awsCfg)}, nil
}

// Discover describes the table as a single Object; document-kind chunk
// planning (ChunkCount(KindDocument, size)) is applied to its ItemCount by
// the caller.
func (c *Connector) Discover(ctx context.Context) (models.DiscoveryResult, error) {
	result := models.DiscoveryResult{SourceID: c.cfg.TableName}

	desc, err := c.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(c.cfg.TableName),
	})
	if err != nil {
		return result, errors.NewNotFound(fmt.Sprintf("dynamodb: table %s not found", c.cfg.TableName)).WithCause(err)
	}

	table := desc.Table
	object := models.Object{
		ID:         c.cfg.TableName,
		SourceID:   c.cfg.TableName,
		FullPath:   c.cfg.TableName,
		FetchPath:  c.cfg.TableName,
		ObjectName: c.cfg.TableName,
		Size:       aws.ToInt64(table.ItemCount),
	}
	if table.CreationDateTime != nil {
		object.CreatedAt = *table.CreationDateTime
		object.ModifiedAt = *table.CreationDateTime
	}
	result.Objects = append(result.Objects, object)
	return result, nil
}

// Fetch scans up to limit documents starting after skipping offset items,
// returning each item JSON-encoded and newline-delimited for the
// classifier's textual scan. DynamoDB's Scan API has no native row-offset
// concept, so offset is honored by paging through and discarding items —
// acceptable given document chunks are only 1,000 items wide.
func (c *Connector) Fetch(ctx context.Context, fetchPath string, offset, limit int64) ([]byte, error) {
	var buf []byte
	var skipped, collected int64
	var lastKey map[string]interface{}

	for collected < limit {
		input := &dynamodb.ScanInput{TableName: aws.String(fetchPath)}
		if lastKey != nil {
			startKey, err := attributevalue.MarshalMap(lastKey)
			if err != nil {
				return nil, errors.Wrap(err, errors.KindPermanent, "dynamodb: marshaling pagination key")
			}
			input.ExclusiveStartKey = startKey
		}

		page, err := c.client.Scan(ctx, input)
		if err != nil {
			return nil, errors.Wrap(err, errors.KindTransient, "dynamodb: scanning table "+fetchPath)
		}

		for _, item := range page.Items {
			if skipped < offset {
				skipped++
				continue
			}
			if collected >= limit {
				break
			}
			var decoded map[string]interface{}
			if err := attributevalue.UnmarshalMap(item, &decoded); err != nil {
				continue
			}
			encoded, err := json.Marshal(decoded)
			if err != nil {
				continue
			}
			buf = append(buf, encoded...)
			buf = append(buf, '\n')
			collected++
		}

		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		if err := attributevalue.UnmarshalMap(page.LastEvaluatedKey, &lastKey); err != nil {
			break
		}
	}
	return buf, nil
}

// ExcludeRedundant has no DynamoDB-specific noise pattern today.
func (c *Connector) ExcludeRedundant(objects []models.Object) []models.Object {
	return objects
}

// SourceConfiguration reports the table name and region back to the
// control plane.
func (c *Connector) SourceConfiguration() map[string]string {
	return map[string]string{
		"table":  c.cfg.TableName,
		"region": c.cfg.Region,
	}
}
