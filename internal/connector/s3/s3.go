// Package s3 implements the connector capability against an AWS S3 bucket,
// grounded on the teacher's internal/providers/aws AWSProvider: the same
// aws-sdk-go-v2 client construction and per-call error handling, adapted
// from "list EC2/RDS/S3 resources for drift" to "list objects and fetch
// chunk-bounded byte ranges for classification."
package s3

import (
	"context"
	"fmt"
	"regexp"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/time/rate"

	"github.com/catherinevee/sensiscan/internal/errors"
	"github.com/catherinevee/sensiscan/pkg/models"
)

// redundantObjectPattern matches S3 key patterns that are noise an agent
// should never classify: the bucket's own access logs and CloudTrail
// delivery objects.
var redundantObjectPattern = regexp.MustCompile(`(?i)vpcflowlogs|cloudtrail|-log`)

// headObjectFanOut bounds concurrent HeadObject calls during discovery to
// 100 in flight, the way the teacher's discovery fan-out is bounded, but
// expressed with x/time/rate rather than the teacher's buffered-channel
// semaphore (that idiom stays reserved for the worker pool itself).
var headObjectFanOut = rate.NewLimiter(rate.Limit(100), 100)

// Connector implements connector.Connector against a single S3 bucket.
type Connector struct {
	bucket string
	region string
	client *s3.Client
}

// Config configures a bucket-scoped Connector.
type Config struct {
	Bucket string
	Region string
}

// New constructs a Connector, loading AWS credentials from the default
// provider chain the same way AWSProvider.Initialize does.
func New(ctx context.Context, cfg Config) (*Connector, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, errors.Wrap(err, errors.KindPermanent, "s3: loading AWS config")
	}
	return &Connector{
		bucket: cfg.Bucket,
		region: cfg.Region,
		client: s3.NewFromConfig(awsCfg),
	}, nil
}

// Discover lists every object in the bucket, filling size, etag, and
// modification time from the ListObjectsV2 response.
func (c *Connector) Discover(ctx context.Context) (models.DiscoveryResult, error) {
	result := models.DiscoveryResult{SourceID: c.bucket}

	paginator := s3.NewListObjectsV2Paginator(c.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(c.bucket),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return result, classifyS3Error(err, "listing objects")
		}
		for _, obj := range page.Contents {
			if obj.Key == nil {
				continue
			}
			if err := headObjectFanOut.Wait(ctx); err != nil {
				return result, errors.Wrap(err, errors.KindTransient, "s3: rate limiter wait")
			}
			acl, owner := c.objectACL(ctx, *obj.Key)

			object := models.Object{
				ID:         c.bucket + "/" + *obj.Key,
				SourceID:   c.bucket,
				FullPath:   *obj.Key,
				FetchPath:  *obj.Key,
				ObjectName: *obj.Key,
				Size:       aws.ToInt64(obj.Size),
				ACL:        acl,
				Ownership:  owner,
			}
			if obj.ETag != nil {
				object.ETag = trimQuotes(*obj.ETag)
			}
			if obj.LastModified != nil {
				object.ModifiedAt = *obj.LastModified
				object.CreatedAt = *obj.LastModified
			}
			result.Objects = append(result.Objects, object)
		}
	}
	return result, nil
}

// objectACL best-effort fetches an object's ACL grantee and owner; a
// failure here (common under a bucket-owner-enforced ACL policy) is not
// fatal to discovery, it just leaves the fields blank.
func (c *Connector) objectACL(ctx context.Context, key string) (acl, owner string) {
	resp, err := c.client.GetObjectAcl(ctx, &s3.GetObjectAclInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil || resp.Owner == nil {
		return "", ""
	}
	owner = aws.ToString(resp.Owner.DisplayName)
	if len(resp.Grants) > 0 && resp.Grants[0].Permission != "" {
		acl = string(resp.Grants[0].Permission)
	}
	return acl, owner
}

// Fetch reads a byte range of fetchPath (the S3 key), honoring the overlap
// rule the caller already folded into offset/limit.
func (c *Connector) Fetch(ctx context.Context, fetchPath string, offset, limit int64) ([]byte, error) {
	rangeHeader := fmt.Sprintf("bytes=%d-%d", offset, offset+limit-1)
	resp, err := c.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(fetchPath),
		Range:  aws.String(rangeHeader),
	})
	if err != nil {
		return nil, classifyS3Error(err, "fetching object "+fetchPath)
	}
	defer resp.Body.Close()

	buf := make([]byte, 0, limit)
	chunk := make([]byte, 32*1024)
	for {
		n, readErr := resp.Body.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
		}
		if readErr != nil {
			break
		}
	}
	return buf, nil
}

// ExcludeRedundant drops objects matching the bucket's own log-noise
// pattern (vpcflowlogs, CloudTrail, or any "-log" suffixed key).
func (c *Connector) ExcludeRedundant(objects []models.Object) []models.Object {
	out := make([]models.Object, 0, len(objects))
	for _, obj := range objects {
		if redundantObjectPattern.MatchString(obj.FullPath) {
			continue
		}
		out = append(out, obj)
	}
	return out
}

// SourceConfiguration reports the connector's bucket and region back to
// the control plane.
func (c *Connector) SourceConfiguration() map[string]string {
	return map[string]string{
		"bucket": c.bucket,
		"region": c.region,
	}
}

// errorCoder matches the smithy API error shape aws-sdk-go-v2 returns,
// without importing the smithy package directly for a single method check.
type errorCoder interface {
	ErrorCode() string
}

func classifyS3Error(err error, context string) error {
	if coder, ok := err.(errorCoder); ok {
		switch coder.ErrorCode() {
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return errors.NewNotFound(fmt.Sprintf("s3: %s: %s", context, coder.ErrorCode()))
		}
	}
	return errors.NewTransient(fmt.Sprintf("s3: %s: %v", context, err)).WithCause(err)
}

func trimQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
