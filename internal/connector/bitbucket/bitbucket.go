// Package bitbucket implements the connector capability against a
// Bitbucket Cloud repository via Bitbucket's REST API, the same
// direct-net/http approach internal/connector/gitlab uses (no Bitbucket
// SDK appears anywhere in this module's dependency set).
package bitbucket

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/catherinevee/sensiscan/internal/errors"
	"github.com/catherinevee/sensiscan/pkg/models"
)

// Config configures a Connector against a single Bitbucket Cloud
// repository.
type Config struct {
	Workspace string
	RepoSlug  string
	Branch    string
	Username  string
	AppPassword string
}

// Connector implements connector.Connector against a Bitbucket repository.
type Connector struct {
	cfg    Config
	client *http.Client
}

// New constructs a Connector.
func New(cfg Config) *Connector {
	return &Connector{cfg: cfg, client: http.DefaultClient}
}

type srcEntry struct {
	Path string `json:"path"`
	Type string `json:"type"`
	Size int64  `json:"size"`
}

type srcListing struct {
	Values []srcEntry `json:"values"`
	Next   string     `json:"next"`
}

// Discover lists every file in the repository's source tree at the
// configured branch, following Bitbucket's paginated "next" links.
func (c *Connector) Discover(ctx context.Context) (models.DiscoveryResult, error) {
	result := models.DiscoveryResult{SourceID: c.cfg.Workspace + "/" + c.cfg.RepoSlug}

	endpoint := fmt.Sprintf("https://api.bitbucket.org/2.0/repositories/%s/%s/src/%s/?max_depth=9999",
		url.PathEscape(c.cfg.Workspace), url.PathEscape(c.cfg.RepoSlug), url.PathEscape(c.cfg.Branch))

	for endpoint != "" {
		body, err := c.get(ctx, endpoint)
		if err != nil {
			return result, err
		}
		var listing srcListing
		if err := json.Unmarshal(body, &listing); err != nil {
			return result, errors.Wrap(err, errors.KindPermanent, "bitbucket: decoding source listing")
		}
		for _, entry := range listing.Values {
			if entry.Type != "commit_file" {
				continue
			}
			result.Objects = append(result.Objects, models.Object{
				ID:         result.SourceID + "/" + entry.Path,
				SourceID:   result.SourceID,
				FullPath:   entry.Path,
				FetchPath:  entry.Path,
				ObjectName: entry.Path,
				Size:       entry.Size,
			})
		}
		endpoint = listing.Next
	}
	return result, nil
}

// Fetch reads fetchPath's raw content at the configured branch.
func (c *Connector) Fetch(ctx context.Context, fetchPath string, offset, limit int64) ([]byte, error) {
	endpoint := fmt.Sprintf("https://api.bitbucket.org/2.0/repositories/%s/%s/src/%s/%s",
		url.PathEscape(c.cfg.Workspace), url.PathEscape(c.cfg.RepoSlug), url.PathEscape(c.cfg.Branch), fetchPath)

	data, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	end := offset + limit
	if offset > int64(len(data)) {
		return nil, nil
	}
	if end > int64(len(data)) {
		end = int64(len(data))
	}
	return data[offset:end], nil
}

// ExcludeRedundant has no Bitbucket-specific noise pattern today.
func (c *Connector) ExcludeRedundant(objects []models.Object) []models.Object {
	return objects
}

// SourceConfiguration reports the workspace and repository slug back to
// the control plane.
func (c *Connector) SourceConfiguration() map[string]string {
	return map[string]string{
		"workspace": c.cfg.Workspace,
		"repo_slug": c.cfg.RepoSlug,
		"branch":    c.cfg.Branch,
	}
}

func (c *Connector) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindPermanent, "bitbucket: building request")
	}
	req.SetBasicAuth(c.cfg.Username, c.cfg.AppPassword)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.NewTransient("bitbucket: request failed").WithCause(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindTransient, "bitbucket: reading response body")
	}

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusUnprocessableEntity:
		return nil, errors.NewNotFound("bitbucket: " + endpoint + " not found")
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, errors.NewAuth("bitbucket: unauthorized")
	case resp.StatusCode >= 500:
		return nil, errors.NewTransient(fmt.Sprintf("bitbucket: server error %d", resp.StatusCode))
	case resp.StatusCode >= 400:
		return nil, errors.NewPermanent(fmt.Sprintf("bitbucket: request error %d", resp.StatusCode))
	}
	return body, nil
}
