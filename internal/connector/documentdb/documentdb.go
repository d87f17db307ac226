// Package documentdb implements the connector capability's discovery half
// against an Amazon DocumentDB cluster via aws-sdk-go-v2's service/docdb
// management API (cluster and collection-level metadata only — DocumentDB's
// data plane speaks the MongoDB wire protocol, and no MongoDB client
// appears anywhere in this module's dependency set, so Fetch returns a
// permanent error rather than fabricating a driver dependency; see
// DESIGN.md for the full rationale).
package documentdb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/docdb"

	"github.com/catherinevee/sensiscan/internal/errors"
	"github.com/catherinevee/sensiscan/pkg/models"
)

// Config configures a Connector against a single DocumentDB cluster.
type Config struct {
	ClusterIdentifier string
	Region            string
}

// Connector implements connector.Connector against DocumentDB cluster
// metadata.
type Connector struct {
	cfg    Config
	client *docdb.Client
}

// New constructs a Connector, loading AWS credentials from the default
// provider chain.
func New(ctx context.Context, cfg Config) (*Connector, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, errors.Wrap(err, errors.KindPermanent, "documentdb: loading AWS config")
	}
	return &Connector{cfg: cfg, client: docdb.NewFromConfig(awsCfg)}, nil
}

// Discover describes the cluster itself as a single Object; per-collection
// discovery requires a data-plane (mongo wire protocol) connection this
// connector does not carry, so the cluster is reported with an unknown
// size and zero chunk plan until a collection-aware data client is wired
// in.
func (c *Connector) Discover(ctx context.Context) (models.DiscoveryResult, error) {
	result := models.DiscoveryResult{SourceID: c.cfg.ClusterIdentifier}

	desc, err := c.client.DescribeDBClusters(ctx, &docdb.DescribeDBClustersInput{
		DBClusterIdentifier: aws.String(c.cfg.ClusterIdentifier),
	})
	if err != nil {
		return result, errors.NewNotFound("documentdb: cluster " + c.cfg.ClusterIdentifier + " not found").WithCause(err)
	}
	if len(desc.DBClusters) == 0 {
		return result, errors.NewNotFound("documentdb: cluster " + c.cfg.ClusterIdentifier + " not found")
	}

	cluster := desc.DBClusters[0]
	object := models.Object{
		ID:         c.cfg.ClusterIdentifier,
		SourceID:   c.cfg.ClusterIdentifier,
		FullPath:   aws.ToString(cluster.DBClusterIdentifier),
		FetchPath:  aws.ToString(cluster.DBClusterIdentifier),
		ObjectName: aws.ToString(cluster.DBClusterIdentifier),
	}
	if cluster.ClusterCreateTime != nil {
		object.CreatedAt = *cluster.ClusterCreateTime
		object.ModifiedAt = *cluster.ClusterCreateTime
	}
	result.Objects = append(result.Objects, object)
	return result, nil
}

// Fetch always fails: reading collection documents requires a MongoDB
// wire-protocol client this connector deliberately does not carry.
func (c *Connector) Fetch(ctx context.Context, fetchPath string, offset, limit int64) ([]byte, error) {
	return nil, errors.NewPermanent("documentdb: data-plane document fetch requires a MongoDB client not present in this build")
}

// ExcludeRedundant has no DocumentDB-specific noise pattern today.
func (c *Connector) ExcludeRedundant(objects []models.Object) []models.Object {
	return objects
}

// SourceConfiguration reports the cluster identifier and region back to
// the control plane.
func (c *Connector) SourceConfiguration() map[string]string {
	return map[string]string{
		"cluster": c.cfg.ClusterIdentifier,
		"region":  c.cfg.Region,
	}
}
