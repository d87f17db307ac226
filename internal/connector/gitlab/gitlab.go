// Package gitlab implements the connector capability against a GitLab
// project's repository tree via GitLab's REST API. No GitLab SDK appears
// anywhere in this module's dependency set (unlike GitHub's go-github), so
// this connector talks to the API directly over net/http the way the
// reference service's own requests-based GitLab client does; see
// DESIGN.md for why no third-party client was substituted.
package gitlab

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

// Config configures a Connector against a single GitLab project.
type Config struct {
	BaseURL   string // e.g. https://gitlab.com
	ProjectID string
	Branch    string
	Token     string
}

// Connector implements connector.Connector against a GitLab project.
type Connector struct {
	cfg    Config
	client *http.Client
}

// New constructs a Connector.
func New(cfg Config) *Connector {
	return &Connector{cfg: cfg, client: http.DefaultClient}
}

type treeEntry struct {
	Path string `json:"path"`
	Type string `json:"type"`
}

// Discover lists every blob in the project's repository tree recursively.
func (c *Connector) Discover(ctx context.Context) (models.DiscoveryResult, error) {
	result := models.DiscoveryResult{SourceID: c.cfg.ProjectID}

	endpoint := fmt.Sprintf("%s/api/v4/projects/%s/repository/tree?recursive=true&per_page=100&ref=%s",
		c.cfg.BaseURL, url.PathEscape(c.cfg.ProjectID), url.QueryEscape(c.cfg.Branch))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return result, err
	}
	var entries []treeEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return result, errors.Wrap(err, errors.KindPermanent, "gitlab: decoding tree response")
	}

	for _, entry := range entries {
		if entry.Type != "blob" {
			continue
		}
		result.Objects = append(result.Objects, models.Object{
			ID:         c.cfg.ProjectID + "/" + entry.Path,
			SourceID:   c.cfg.ProjectID,
			FullPath:   entry.Path,
			FetchPath:  entry.Path,
			ObjectName: entry.Path,
		})
	}
	return result, nil
}

// Fetch reads fetchPath's raw content at the configured branch.
func (c *Connector) Fetch(ctx context.Context, fetchPath string, offset, limit int64) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/api/v4/projects/%s/repository/files/%s/raw?ref=%s",
		c.cfg.BaseURL, url.PathEscape(c.cfg.ProjectID), url.PathEscape(fetchPath), url.QueryEscape(c.cfg.Branch))

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

// ExcludeRedundant has no GitLab-specific noise pattern today.
func (c *Connector) ExcludeRedundant(objects []models.Object) []models.Object {
	return objects
}

// SourceConfiguration reports the project coordinates back to the control
// plane.
func (c *Connector) SourceConfiguration() map[string]string {
	return map[string]string{
		"base_url":   c.cfg.BaseURL,
		"project_id": c.cfg.ProjectID,
		"branch":     c.cfg.Branch,
	}
}

func (c *Connector) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindPermanent, "gitlab: building request")
	}
	req.Header.Set("PRIVATE-TOKEN", c.cfg.Token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.NewTransient("gitlab: request failed").WithCause(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindTransient, "gitlab: reading response body")
	}

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusUnprocessableEntity:
		return nil, errors.NewNotFound("gitlab: " + endpoint + " not found")
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, errors.NewAuth("gitlab: unauthorized")
	case resp.StatusCode >= 500:
		return nil, errors.NewTransient(fmt.Sprintf("gitlab: server error %d", resp.StatusCode))
	case resp.StatusCode >= 400:
		return nil, errors.NewPermanent(fmt.Sprintf("gitlab: request error %d", resp.StatusCode))
	}
	return body, nil
}
