// Package blob implements the connector capability against a local
// filesystem tree, grounded on the s3 connector's Discover/Fetch shape but
// walking os.DirFS instead of calling a cloud API. It exists for
// EXECUTION_MODE=Test and Develop, where a run is pointed at a fixture
// directory through an HCL source definition (internal/connector/
// sourceconfig) rather than a live cloud account.
package blob

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/catherinevee/sensiscan/internal/errors"
	"github.com/catherinevee/sensiscan/pkg/models"
)

var redundantObjectPattern = regexp.MustCompile(`(?i)\.DS_Store$|Thumbs\.db$`)

// Connector implements connector.Connector against a directory tree
// rooted at RootPath.
type Connector struct {
	sourceID string
	rootPath string
	excludes []*regexp.Regexp
}

// Config configures a Connector.
type Config struct {
	SourceID string
	RootPath string
	// FilenameExclusions are shell-style glob patterns (matched against
	// the file's base name) a discovered object must not match.
	FilenameExclusions []string
}

// New constructs a Connector rooted at cfg.RootPath.
func New(cfg Config) (*Connector, error) {
	excludes := make([]*regexp.Regexp, 0, len(cfg.FilenameExclusions))
	for _, glob := range cfg.FilenameExclusions {
		re, err := globToRegexp(glob)
		if err != nil {
			return nil, errors.Wrap(err, errors.KindPermanent, "blob: compiling filename_exclusions pattern "+glob)
		}
		excludes = append(excludes, re)
	}
	return &Connector{sourceID: cfg.SourceID, rootPath: cfg.RootPath, excludes: excludes}, nil
}

// Discover walks the directory tree rooted at RootPath, reporting every
// regular file as an Object keyed by its path relative to the root.
func (c *Connector) Discover(ctx context.Context) (models.DiscoveryResult, error) {
	result := models.DiscoveryResult{SourceID: c.sourceID}

	err := filepath.WalkDir(c.rootPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			return nil
		}
		if c.excluded(d.Name()) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(c.rootPath, path)
		if err != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		result.Objects = append(result.Objects, models.Object{
			ID:         c.sourceID + "/" + rel,
			SourceID:   c.sourceID,
			FullPath:   rel,
			FetchPath:  path,
			ObjectName: filepath.Base(path),
			Size:       info.Size(),
			ModifiedAt: info.ModTime(),
			CreatedAt:  info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return result, errors.Wrap(err, errors.KindTransient, "blob: walking "+c.rootPath)
	}
	return result, nil
}

// Fetch reads the byte range [offset, offset+limit) of fetchPath (an
// absolute path produced by Discover), clamping to the file's actual size.
func (c *Connector) Fetch(ctx context.Context, fetchPath string, offset, limit int64) ([]byte, error) {
	f, err := os.Open(fetchPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound("blob: " + fetchPath + " no longer exists")
		}
		return nil, errors.NewTransient("blob: opening " + fetchPath).WithCause(err)
	}
	defer f.Close()

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return nil, errors.NewTransient("blob: seeking " + fetchPath).WithCause(err)
	}

	buf := make([]byte, limit)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, errors.NewTransient("blob: reading " + fetchPath).WithCause(err)
	}
	return buf[:n], nil
}

// ExcludeRedundant drops OS noise files (.DS_Store, Thumbs.db) a customer
// never wants classified.
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

// SourceConfiguration reports the connector's root path back to the
// control plane.
func (c *Connector) SourceConfiguration() map[string]string {
	return map[string]string{"root_path": c.rootPath}
}

func (c *Connector) excluded(name string) bool {
	for _, re := range c.excludes {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// globToRegexp compiles a shell-style glob (only `*` and `?` are special)
// into an anchored regexp, the minimal subset filename_exclusions needs.
func globToRegexp(glob string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")
	for _, r := range glob {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")
	return regexp.Compile(b.String())
}
