package main

import (
	"context"
	"fmt"

	"github.com/catherinevee/sensiscan/internal/connector"
	"github.com/catherinevee/sensiscan/internal/connector/bitbucket"
	"github.com/catherinevee/sensiscan/internal/connector/blob"
	"github.com/catherinevee/sensiscan/internal/connector/documentdb"
	"github.com/catherinevee/sensiscan/internal/connector/dynamodb"
	"github.com/catherinevee/sensiscan/internal/connector/github"
	"github.com/catherinevee/sensiscan/internal/connector/gitlab"
	"github.com/catherinevee/sensiscan/internal/connector/rds"
	"github.com/catherinevee/sensiscan/internal/connector/redshift"
	"github.com/catherinevee/sensiscan/internal/connector/s3"
	"github.com/catherinevee/sensiscan/internal/connector/snowflake"
	"github.com/catherinevee/sensiscan/internal/controlplane"
	"github.com/catherinevee/sensiscan/pkg/models"
)

// objectKindForConnector maps a connector_type to the chunking shape its
// objects take, the way each concrete connector's own domain dictates
// (a database table chunks by row, a blob by byte range).
func objectKindForConnector(connectorType string) connector.ObjectKind {
	switch connectorType {
	case "rds", "snowflake", "redshift":
		return connector.KindTable
	case "dynamodb", "documentdb":
		return connector.KindDocument
	default:
		return connector.KindBlob
	}
}

// buildConnector constructs the concrete connector for src, fetching
// credentials from the control plane's cloud-account endpoint when the
// source's own configuration doesn't already carry them (the Test/Develop
// sourceconfig.Definition.ToSource path embeds everything a blob source
// needs directly).
func buildConnector(ctx context.Context, cp *controlplane.Client, src models.Source) (connector.Connector, error) {
	switch src.ConnectorType {
	case "blob":
		return blob.New(blob.Config{SourceID: src.ID, RootPath: src.Configuration["root_path"]})
	case "s3":
		creds, err := cp.CloudAccount(ctx, src.AccountID)
		if err != nil {
			return nil, err
		}
		return s3.New(ctx, s3.Config{Bucket: src.Name, Region: firstNonEmpty(creds.Region, src.Region)})
	case "rds":
		creds, err := cp.CloudAccount(ctx, src.AccountID)
		if err != nil {
			return nil, err
		}
		return rds.New(ctx, rds.Config{
			InstanceIdentifier: src.Name,
			Region:             firstNonEmpty(creds.Region, src.Region),
			Host:               src.Configuration["host"],
			Database:           src.Configuration["database"],
			User:               creds.Extra["user"],
			Password:           creds.Extra["password"],
		})
	case "dynamodb":
		return dynamodb.New(ctx, dynamodb.Config{TableName: src.Name, Region: src.Region})
	case "documentdb":
		return documentdb.New(ctx, documentdb.Config{ClusterIdentifier: src.Name, Region: src.Region})
	case "github":
		return github.New(github.Config{Owner: src.Configuration["owner"], Repo: src.Name, Branch: src.Configuration["branch"], Token: src.Configuration["token"]}), nil
	case "gitlab":
		return gitlab.New(gitlab.Config{BaseURL: src.Configuration["base_url"], ProjectID: src.Name, Branch: src.Configuration["branch"], Token: src.Configuration["token"]}), nil
	case "bitbucket":
		return bitbucket.New(bitbucket.Config{Workspace: src.Configuration["workspace"], RepoSlug: src.Name, Username: src.Configuration["username"], AppPassword: src.Configuration["app_password"]}), nil
	case "snowflake":
		creds, err := cp.CloudAccount(ctx, src.AccountID)
		if err != nil {
			return nil, err
		}
		return snowflake.New(snowflake.Config{
			Account:   src.Configuration["account"],
			User:      creds.Extra["user"],
			Password:  creds.Extra["password"],
			Database:  src.Name,
			Schema:    src.Configuration["schema"],
			Warehouse: src.Configuration["warehouse"],
		}), nil
	case "redshift":
		creds, err := cp.CloudAccount(ctx, src.AccountID)
		if err != nil {
			return nil, err
		}
		return redshift.New(redshift.Config{
			ClusterIdentifier: src.Name,
			Host:              src.Configuration["host"],
			Database:          src.Configuration["database"],
			User:              creds.Extra["user"],
			Password:          creds.Extra["password"],
		}), nil
	default:
		return nil, fmt.Errorf("scanneragent: unknown connector_type %q for source %s", src.ConnectorType, src.ID)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
