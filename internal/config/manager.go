// Package config loads the scanner agent's settings from the environment,
// following the same env-var-first convention as the Python service this
// agent replaces.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// ExecutionMode selects between a real deployment and the in-process test
// harness used by the worker pool and the EC2 instance-identity bootstrap.
type ExecutionMode string

const (
	ModeTest    ExecutionMode = "Test"
	ModeDevelop ExecutionMode = "Develop"
)

// InstanceIDError is returned when the EC2 instance-identity document could
// not be fetched after the bounded number of bootstrap attempts.
type InstanceIDError struct {
	Attempts int
}

func (e *InstanceIDError) Error() string {
	return fmt.Sprintf("could not resolve scanner instance id after %d attempts", e.Attempts)
}

// Settings holds every environment-driven knob the scanner agent reads at
// startup. Field names mirror the original service's env vars so that an
// operator migrating a deployment does not need to relearn the surface.
type Settings struct {
	ServerName  string
	ProjectName string
	Version     string

	DeploymentType string
	ExecutionMode  ExecutionMode
	CustomerAccountID string

	CORSOrigins []string
	ServerDomain string

	SharedSecret        string
	CustomerAccessToken string
	WaitObjectsLimit    int

	AWSDefaultRegion string
	RDSDatabaseUser  string
	ScannerID        string

	GitHubToken    string
	GitHubUsername string

	BitbucketLogin    string
	BitbucketPassword string

	GitLabToken string

	MaxPythonProcesses int

	UnsupportedExtensions []string

	EncryptIterations int
	SecretToken       string
	DefaultEncoding   string

	PostgresPoolSize     int
	PostgresMaxOverflow  int
	PostgresPoolRecycle  time.Duration

	UploadedFilesFolder   string
	LocalStoredArchivesPath string

	ChunkBytesCapacity int64
	OverlapBytes       int64
	ChunkRowsCapacity  int64
	ChunkJSONCapacity  int64

	TestStringForPatterns string
}

var defaultUnsupportedExtensions = []string{
	".png", ".jpg", ".jpeg", ".gif", ".bmp", ".svg",
	".tif", ".tiff", ".ico", ".mbox", ".webm",
}

// Load reads Settings from the process environment, applying the same
// defaults and validation as the reference service, and resolves
// ScannerID via ec2InstanceID.
func Load() (*Settings, error) {
	s := &Settings{
		ServerName:  "sensitive data scanner",
		ProjectName: "sensitive data scanner",
		Version:     envOr("SCANNER_VERSION", "dev"),

		DeploymentType:    envOr("DEPLOYMENT_TYPE", "development"),
		ExecutionMode:     ExecutionMode(envOr("EXECUTION_MODE", string(ModeDevelop))),
		CustomerAccountID: truncate(os.Getenv("CUSTOMER_ACCOUNT_ID"), 12),

		CORSOrigins:  splitCSV(os.Getenv("CORS_ORIGINS")),
		ServerDomain: envOr("SERVER_DOMAIN", "NDA.io"),

		SharedSecret:        envOr("SHARED_SECRET", "tenant::stack::secret"),
		CustomerAccessToken: os.Getenv("CUSTOMER_ACCESS_TOKEN"),
		WaitObjectsLimit:    100,

		AWSDefaultRegion: envOr("AWS_DEFAULT_REGION", "us-east-1"),
		RDSDatabaseUser:  envOr("RDS_DATABASE_USER", "NDA-user"),

		GitHubToken:    os.Getenv("GITHUB_TOKEN"),
		GitHubUsername: os.Getenv("GITHUB_USERNAME"),

		BitbucketLogin:    os.Getenv("BITBUCKET_LOGIN"),
		BitbucketPassword: os.Getenv("BITBUCKET_PASSWORD"),

		GitLabToken: os.Getenv("GITLAB_TOKEN"),

		MaxPythonProcesses: envOrInt("MAX_PYTHON_PROCESSES", 5),

		UnsupportedExtensions: defaultUnsupportedExtensions,

		EncryptIterations: envOrInt("ENCRYPT_ITERATIONS", 100_000),
		SecretToken:       os.Getenv("SECRET_TOKEN"),
		DefaultEncoding:   envOr("DEFAULT_ENCODING", "UTF-8"),

		PostgresPoolSize:    100,
		PostgresMaxOverflow: 10,
		PostgresPoolRecycle: 1800 * time.Second,

		UploadedFilesFolder: "uploaded_files",

		ChunkBytesCapacity: 1_000_000,
		OverlapBytes:       255,
		ChunkRowsCapacity:  100_000,
		ChunkJSONCapacity:  1000,

		TestStringForPatterns: "George Washington went to Washington.",
	}
	s.LocalStoredArchivesPath = s.UploadedFilesFolder

	if s.SecretToken == "" && s.ExecutionMode != ModeTest {
		return nil, fmt.Errorf("config: SECRET_TOKEN is required outside test execution mode")
	}

	id, err := ResolveInstanceID(s.ExecutionMode, http.DefaultClient)
	if err != nil {
		return nil, err
	}
	s.ScannerID = id

	return s, nil
}

const instanceIdentityURL = "http://169.254.169.254/latest/dynamic/instance-identity/document"

type instanceIdentityDocument struct {
	InstanceID string `json:"instanceId"`
}

// ResolveInstanceID resolves the SCANNER_ID the same way the reference
// service does: a synthetic id in test mode, or the EC2 instance-identity
// document fetched with a linear backoff of up to 10 attempts.
func ResolveInstanceID(mode ExecutionMode, client *http.Client) (string, error) {
	if mode == ModeTest {
		return "test-" + randomLowerAlnum(17), nil
	}

	for attempt := 0; attempt <= 10; attempt++ {
		resp, err := client.Get(instanceIdentityURL)
		if err == nil {
			body, readErr := io.ReadAll(resp.Body)
			resp.Body.Close()
			if readErr == nil {
				var doc instanceIdentityDocument
				if jsonErr := json.Unmarshal(body, &doc); jsonErr == nil && doc.InstanceID != "" {
					return doc.InstanceID, nil
				}
			}
		}
		time.Sleep(time.Duration(attempt) * 10 * time.Second)
	}
	return "", &InstanceIDError{Attempts: 11}
}

func randomLowerAlnum(n int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(buf)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func splitCSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// ParseSharedSecret splits the tenant::stack::secret format used to derive
// the control-plane base URL.
func ParseSharedSecret(shared string) (tenant, stack, secret string, err error) {
	parts := strings.Split(shared, "::")
	if len(parts) != 3 {
		return "", "", "", fmt.Errorf("config: SHARED_SECRET must have the form tenant::stack::secret")
	}
	return parts[0], parts[1], parts[2], nil
}
