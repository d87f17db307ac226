package documentdb

import (
	"context"
	"testing"

	"github.com/catherinevee/sensiscan/internal/errors"
)

func TestFetch_AlwaysReturnsPermanentError(t *testing.T) {
	c := &Connector{cfg: Config{ClusterIdentifier: "cluster-1"}}
	_, err := c.Fetch(context.Background(), "collection", 0, 100)
	if err == nil {
		t.Fatal("expected an error from Fetch")
	}
	if !errors.IsPermanent(err) {
		t.Errorf("expected a permanent error, got %v", err)
	}
}

func TestSourceConfiguration(t *testing.T) {
	c := &Connector{cfg: Config{ClusterIdentifier: "cluster-1", Region: "us-east-1"}}
	cfg := c.SourceConfiguration()
	if cfg["cluster"] != "cluster-1" || cfg["region"] != "us-east-1" {
		t.Errorf("unexpected configuration: %+v", cfg)
	}
}
