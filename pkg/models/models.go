// Package models holds the data types shared between the scan pipeline,
// the chunk state machine, and the control-plane client.
package models

import (
	"time"

	"github.com/google/uuid"
)

// EngineKind identifies which classification engine a recognizer belongs to.
type EngineKind string

const (
	EngineHyperscan EngineKind = "HYPERSCAN"
	EngineRE2       EngineKind = "RE2"
	EngineRE        EngineKind = "RE"
	EngineNER       EngineKind = "NER"
)

// ClassifierCategory distinguishes allow-list from deny-list recognizers.
type ClassifierCategory string

const (
	CategoryInclude ClassifierCategory = "INCLUDE"
	CategoryExclude ClassifierCategory = "EXCLUDE"
)

// ClassifierKind distinguishes recognizers that match file content from
// recognizers that match file/object names.
type ClassifierKind string

const (
	KindData     ClassifierKind = "DATA"
	KindFilename ClassifierKind = "FILENAME"
)

// Classifier is a single named recognizer: a set of regex patterns (or the
// reserved NER entity extractor) bound to an engine, a category and a kind.
type Classifier struct {
	ID          int                `json:"id"`
	Name        string             `json:"name"`
	Engine      EngineKind         `json:"engine"`
	Patterns    []string           `json:"patterns"`
	Category    ClassifierCategory `json:"category"`
	Kind        ClassifierKind     `json:"kind"`
	Labels      []string           `json:"labels,omitempty"`
	Sensitivity string             `json:"sensitivity,omitempty"`
}

// Status is the lifecycle state of a Chunk.
type Status string

const (
	StatusIgnored          Status = "IGNORED"
	StatusWaitForScan      Status = "WAIT_FOR_SCAN"
	StatusInProgress       Status = "IN_PROGRESS"
	StatusScanned          Status = "SCANNED"
	StatusRescanInProgress Status = "RESCAN_IN_PROGRESS"
	StatusSkipped          Status = "SKIPPED"
	StatusFailed           Status = "FAILED"
)

// Source describes a configured connector instance: a cloud account, bucket,
// database, or repository that objects are discovered from.
type Source struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	ConnectorType    string            `json:"connector_type"`
	Region           string            `json:"region,omitempty"`
	AccountID        string            `json:"account_id,omitempty"`
	Configuration    map[string]string `json:"configuration,omitempty"`
	ClassificationID string            `json:"classification_id"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// Object is a single discovered item within a Source: an S3 key, a database
// table, a repository file. Its chunk set is the unit the scan pipeline
// operates over.
type Object struct {
	ID         string    `json:"id"`
	SourceID   string    `json:"source_id"`
	FullPath   string    `json:"full_path"`
	FetchPath  string    `json:"fetch_path"`
	ObjectName string    `json:"object_name"`
	ETag       string    `json:"etag,omitempty"`
	Size       int64     `json:"size"`
	ACL        string    `json:"acl,omitempty"`
	Ownership  string    `json:"ownership,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
	Labels     []string  `json:"labels,omitempty"`
	Ignored    bool      `json:"ignored"`
}

// Chunk is a byte-range slice of an Object that the scan pipeline leases,
// classifies, and reports findings for independently of its siblings.
type Chunk struct {
	ID             string     `json:"id"`
	MetadataID     string     `json:"metadata_id"`
	FullPath       string     `json:"full_path"`
	FetchPath      string     `json:"fetch_path"`
	Offset         int64      `json:"offset"`
	Limit          int64      `json:"limit"`
	Hash           *string    `json:"hash,omitempty"`
	Status         Status     `json:"status"`
	ScannedAt      *time.Time `json:"scanned_at,omitempty"`
	InstanceID     *string    `json:"instance_id,omitempty"`
	LatestDataType *string    `json:"latest_data_type,omitempty"`
}

// Key returns the (metadata_id, offset) tuple used throughout the chunk
// state machine to identify a chunk independent of its database ID.
func (c Chunk) Key() string {
	return c.MetadataID + "#" + itoa64(c.Offset)
}

// Finding is a single classification hit reported for a chunk.
type Finding struct {
	MetadataID     string  `json:"metadata_id"`
	ChunkID        string  `json:"chunk_id"`
	ClassifierName string  `json:"classifier_name"`
	Region         string  `json:"region"`
	Score          float64 `json:"score"`
	MaskedValue    string  `json:"masked_value"`
	ContentHash    string  `json:"content_hash"`
	Column         *string `json:"column,omitempty"`
}

// NewID generates a fresh random identifier for client-side entities that
// do not yet have a control-plane assigned ID.
func NewID() string {
	return uuid.NewString()
}

func itoa64(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
