package controlplane

import (
	"context"
	"net/http"
	"time"

	"github.com/catherinevee/sensiscan/pkg/models"
)

// ScannerInstance is the control plane's record of this agent (spec.md §6,
// customer_account/scanner).
type ScannerInstance struct {
	ID            string    `json:"id,omitempty"`
	InstanceID    string    `json:"instance_id"`
	AccountID     string    `json:"account_id,omitempty"`
	LastHeartbeat time.Time `json:"last_heartbeat,omitempty"`
}

// RegisterScanner creates this agent's scanner record.
func (c *Client) RegisterScanner(ctx context.Context, s ScannerInstance) (*ScannerInstance, error) {
	var out ScannerInstance
	err := c.do(ctx, request{Method: http.MethodPost, Path: "/customer_account/scanner", Body: s}, &out)
	return &out, err
}

// Heartbeat publishes this agent's liveness, invoked once a minute by the
// background scheduler (spec.md §4.5).
func (c *Client) Heartbeat(ctx context.Context, scannerID string) error {
	body := ScannerInstance{ID: scannerID, LastHeartbeat: time.Now().UTC()}
	return c.do(ctx, request{Method: http.MethodPatch, Path: "/customer_account/scanner", Body: body}, nil)
}

// UserAccountID resolves an AWS account id to the owning control-plane
// user id (customer_account/users_account_id).
func (c *Client) UserAccountID(ctx context.Context, awsAccountID string) (string, error) {
	var out struct {
		UserID string `json:"user_id"`
	}
	q := queryParams(map[string]string{"account_id": awsAccountID})
	err := c.do(ctx, request{Method: http.MethodGet, Path: "/customer_account/users_account_id", Query: q}, &out)
	return out.UserID, err
}

// CloudAccountCredentials is the connector-credential bundle returned by
// customer_account/cloud-account.
type CloudAccountCredentials struct {
	AccountID       string            `json:"account_id"`
	ConnectorType   string            `json:"connector_type"`
	Region          string            `json:"region,omitempty"`
	AccessKeyID     string            `json:"access_key_id,omitempty"`
	SecretAccessKey string            `json:"secret_access_key,omitempty"`
	RoleARN         string            `json:"role_arn,omitempty"`
	Extra           map[string]string `json:"extra,omitempty"`
}

// CloudAccount fetches the credential bundle for accountID.
func (c *Client) CloudAccount(ctx context.Context, accountID string) (*CloudAccountCredentials, error) {
	var out CloudAccountCredentials
	q := queryParams(map[string]string{"account_id": accountID})
	err := c.do(ctx, request{Method: http.MethodGet, Path: "/customer_account/cloud-account", Query: q}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ClassificationGroup aggregates classifications under a shared scanner
// assignment (spec.md GLOSSARY).
type ClassificationGroup struct {
	ID               string   `json:"id"`
	ScannerID        string   `json:"scanner_id,omitempty"`
	AWSScoped        bool     `json:"aws_scoped"`
	ClassificationID string   `json:"classification_id"`
	AccountID        string   `json:"account_id,omitempty"`
	Services         []string `json:"services,omitempty"`
}

// DataClassificationGroups lists every classification group the control
// plane knows about; the foreground scheduler's detect_new_tasks job
// filters this down to the ones assigned to this agent (spec.md §4.5).
func (c *Client) DataClassificationGroups(ctx context.Context) ([]ClassificationGroup, error) {
	var out []ClassificationGroup
	err := c.do(ctx, request{Method: http.MethodGet, Path: "/customer_account/data_classification_groups"}, &out)
	return out, err
}

// DataClassificationSources lists the configured Source records for a
// single classification id.
func (c *Client) DataClassificationSources(ctx context.Context, classificationID string) ([]models.Source, error) {
	var out []models.Source
	q := queryParams(map[string]string{"classification_id": classificationID})
	err := c.do(ctx, request{Method: http.MethodGet, Path: "/customer_account/data-classification-sources", Query: q}, &out)
	return out, err
}

// DataClassification is a single classification's catalog-version and
// rescan cadence metadata (data-classification/filter).
type DataClassification struct {
	ID                    string   `json:"id"`
	CatalogVersion        string   `json:"catalog_version"`
	ScanningPeriodMinutes int      `json:"scanning_period_minutes"`
	DataSources           []string `json:"data_sources,omitempty"`
	// DataObjects, when non-empty, restricts discovery to objects named
	// here (spec.md §4.3 step 7); empty means no restriction.
	DataObjects []string `json:"data_objects,omitempty"`
}

// DataClassifications fetches classification metadata for ids (empty ids
// fetches all).
func (c *Client) DataClassifications(ctx context.Context, ids []string) ([]DataClassification, error) {
	var out []DataClassification
	q := queryParams(map[string]string{"ids": joinCSV(ids)})
	err := c.do(ctx, request{Method: http.MethodGet, Path: "/data-classification/filter", Query: q}, &out)
	return out, err
}

// SetLastScanned records the wall-clock time a classification was last
// swept by detect_new_tasks.
func (c *Client) SetLastScanned(ctx context.Context, classificationID string, when time.Time) error {
	body := struct {
		ClassificationID string    `json:"classification_id"`
		LastScanned      time.Time `json:"last_scanned"`
	}{classificationID, when}
	return c.do(ctx, request{Method: http.MethodPut, Path: "/customer_account/data_classification_last_scanned", Body: body}, nil)
}

// Classifiers fetches the classifier catalog for a classification id.
func (c *Client) Classifiers(ctx context.Context, classificationID string) ([]models.Classifier, error) {
	var out []models.Classifier
	q := queryParams(map[string]string{"classification_id": classificationID})
	err := c.do(ctx, request{Method: http.MethodGet, Path: "/customer_account/data-classifiers/filter", Query: q}, &out)
	return out, err
}

// FileMetadata fetches every known Object for a source id, the set
// internal/chunkstate.ReconcileSource diffs discovery results against.
func (c *Client) FileMetadata(ctx context.Context, sourceID string) ([]models.Object, error) {
	var out []models.Object
	q := queryParams(map[string]string{"source_id": sourceID})
	err := c.do(ctx, request{Method: http.MethodGet, Path: "/customer_account/file-metadata/filter", Query: q}, &out)
	return out, err
}

// BatchUpsertFileMetadata creates or updates objects in one call, used for
// the ObjectsToCreate/ObjectsToUpdate/ObjectsNewlyIgnored sides of a
// chunkstate.SourcePlan.
func (c *Client) BatchUpsertFileMetadata(ctx context.Context, objects []models.Object) error {
	if len(objects) == 0 {
		return nil
	}
	return c.do(ctx, request{Method: http.MethodPost, Path: "/customer_account/batch-file-metadata", Body: objects}, nil)
}

// UnignoreFileMetadata clears the ignored flag on objects whose filename
// classifier match no longer applies (chunkstate.SourcePlan.ObjectsUnignored).
func (c *Client) UnignoreFileMetadata(ctx context.Context, objectIDs []string) error {
	if len(objectIDs) == 0 {
		return nil
	}
	body := struct {
		ObjectIDs []string `json:"object_ids"`
	}{objectIDs}
	return c.do(ctx, request{Method: http.MethodPatch, Path: "/customer_account/not-ignored-file-metadata", Body: body}, nil)
}

// DeleteFileMetadata tombstones objects (and cascades to their chunks and
// findings), the chunkstate.SourcePlan.ObjectsToDelete side.
func (c *Client) DeleteFileMetadata(ctx context.Context, objectIDs []string) error {
	if len(objectIDs) == 0 {
		return nil
	}
	body := struct {
		ObjectIDs []string `json:"object_ids"`
	}{objectIDs}
	return c.do(ctx, request{Method: http.MethodDelete, Path: "/customer_account/delete-batch-metadata", Body: body}, nil)
}

// UpsertChunk creates or replaces a single chunk record
// (customer_account/data-chunks PUT).
func (c *Client) UpsertChunk(ctx context.Context, chunk models.Chunk) error {
	return c.do(ctx, request{Method: http.MethodPut, Path: "/customer_account/data-chunks", Body: chunk}, nil)
}

// leaseRequest is the compare-and-swap body for a lease attempt: the
// control plane only applies the status transition if the chunk's
// current status still matches Expected.
type leaseRequest struct {
	ChunkID  string        `json:"chunk_id"`
	Expected models.Status `json:"expected_status"`
	Status   models.Status `json:"status"`
}

// Lease acquires exclusive ownership of chunkID via a compare-and-swap
// PATCH from WAIT_FOR_SCAN to IN_PROGRESS (spec.md §4.4 step 1, invariant
// 5). It satisfies internal/scanpipeline.LeaseStore.
func (c *Client) Lease(ctx context.Context, chunkID string) (bool, error) {
	var out struct {
		Acquired bool `json:"acquired"`
	}
	body := leaseRequest{ChunkID: chunkID, Expected: models.StatusWaitForScan, Status: models.StatusInProgress}
	err := c.do(ctx, request{Method: http.MethodPatch, Path: "/customer_account/data-chunks", Body: body}, &out)
	if err != nil {
		return false, err
	}
	return out.Acquired, nil
}

// finalizeRequest is the terminal-status PATCH body a chunk is given at
// the end of the scan pipeline.
type finalizeRequest struct {
	ChunkID    string        `json:"chunk_id"`
	Status     models.Status `json:"status"`
	DataType   string        `json:"latest_data_type,omitempty"`
	InstanceID string        `json:"instance_id,omitempty"`
	ScannedAt  time.Time     `json:"scanned_at"`
}

// Finalize transitions chunkID to its terminal status (SCANNED or FAILED)
// for this scan, recording which agent instance and catalog data-type
// version produced it. It satisfies internal/scanpipeline.ReportStore.
func (c *Client) Finalize(ctx context.Context, chunkID string, status models.Status, dataType, instanceID string) error {
	body := finalizeRequest{
		ChunkID:    chunkID,
		Status:     status,
		DataType:   dataType,
		InstanceID: instanceID,
		ScannedAt:  time.Now().UTC(),
	}
	return c.do(ctx, request{Method: http.MethodPatch, Path: "/customer_account/data-chunks", Body: body}, nil)
}

// BatchCreateChunks creates the newly-discovered chunk rows a
// chunkstate.ChunkPlan.ChunksToCreate produces.
func (c *Client) BatchCreateChunks(ctx context.Context, chunks []models.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}
	return c.do(ctx, request{Method: http.MethodPost, Path: "/customer_account/data-chunks-batch", Body: chunks}, nil)
}

// BatchUpdateChunks resets the chunks a chunkstate.ChunkPlan.ChunksToUpdate
// plan entry names back to WAIT_FOR_SCAN with a cleared hash.
func (c *Client) BatchUpdateChunks(ctx context.Context, chunks []models.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}
	return c.do(ctx, request{Method: http.MethodPatch, Path: "/customer_account/data-chunks-batch", Body: chunks}, nil)
}

// BatchDeleteChunks tombstones the chunks a chunkstate.ChunkPlan.ChunksToDelete
// plan entry names.
func (c *Client) BatchDeleteChunks(ctx context.Context, chunkIDs []string) error {
	if len(chunkIDs) == 0 {
		return nil
	}
	body := struct {
		ChunkIDs []string `json:"chunk_ids"`
	}{chunkIDs}
	return c.do(ctx, request{Method: http.MethodDelete, Path: "/customer_account/data-chunks-batch", Body: body}, nil)
}

// WaitForScanChunks fetches the chunks a source's worker pool should pick
// up next (customer_account/data-chunks/filter, status=WAIT_FOR_SCAN).
func (c *Client) WaitForScanChunks(ctx context.Context, sourceID string, limit int) ([]models.Chunk, error) {
	var out []models.Chunk
	q := queryParams(map[string]string{
		"source_id": sourceID,
		"status":    string(models.StatusWaitForScan),
		"limit":     itoa(int64(limit)),
	})
	err := c.do(ctx, request{Method: http.MethodGet, Path: "/customer_account/data-chunks/filter", Query: q}, &out)
	return out, err
}

// RescanChunks fetches chunks already SCANNED under an older catalog
// data-type version, the rescan_by_data_type job's work queue (spec.md
// §4.5, fixed 15-minute cadence — see DESIGN.md open-question decision).
func (c *Client) RescanChunks(ctx context.Context, sourceID, dataType string) ([]models.Chunk, error) {
	var out []models.Chunk
	q := queryParams(map[string]string{
		"source_id":         sourceID,
		"exclude_data_type": dataType,
	})
	err := c.do(ctx, request{Method: http.MethodGet, Path: "/customer_account/rescan/data-chunks/filter", Query: q}, &out)
	return out, err
}

// ReportFindings posts a batch of findings to the sensitive-data endpoint.
// Callers are expected to have already split findings into control-plane
// sized batches (classifier.Batch, up to 100 000 per spec.md §4.4 step 6);
// it satisfies internal/scanpipeline.ReportStore.
func (c *Client) ReportFindings(ctx context.Context, findings []models.Finding) error {
	if len(findings) == 0 {
		return nil
	}
	return c.do(ctx, request{Method: http.MethodPost, Path: "/customer_account/sensitive-data", Body: findings}, nil)
}

func joinCSV(ss []string) string {
	if len(ss) == 0 {
		return ""
	}
	out := ss[0]
	for _, s := range ss[1:] {
		out += "," + s
	}
	return out
}
