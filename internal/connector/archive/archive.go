// Package archive expands zip and tar archives (including their gzip- and
// bzip2-compressed tar variants) into a local cache directory, computing
// the recursive uncompressed size of nested archives before committing to
// an extraction so the caller can check it against free disk first.
//
// archive/zip and archive/tar have no third-party replacement in this
// module's dependency set (neither the teacher nor any other example repo
// imports one), so both are used directly from the standard library;
// klauspost/compress's gzip reader replaces compress/gzip for the
// .tar.gz path the way the teacher's own go.mod prefers it elsewhere.
package archive

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/bzip2"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Kind identifies which archive format a file is, independent of its
// extension — the PK-magic-bytes quirk means a ".tar" or ".tar.gz" name can
// actually be a zip file in disguise.
type Kind int

const (
	KindUnknown Kind = iota
	KindZip
	KindTar
	KindTarGZ
	KindTarBZ2
)

// pkMagic is the zip local-file-header signature. A file named .tar/.tar.gz
// whose first two bytes are "PK" is actually a zip archive and must be
// retried as one.
var pkMagic = []byte{'P', 'K'}

// DetectKind inspects name and the first bytes of content to decide which
// archive format it actually is, applying the PK-magic-bytes-means-zip
// override regardless of extension.
func DetectKind(name string, head []byte) Kind {
	if bytes.HasPrefix(head, pkMagic) {
		return KindZip
	}
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".zip"):
		return KindZip
	case strings.HasSuffix(lower, ".tar.gz") || strings.HasSuffix(lower, ".tgz"):
		return KindTarGZ
	case strings.HasSuffix(lower, ".tar.bz2"):
		return KindTarBZ2
	case strings.HasSuffix(lower, ".tar"):
		return KindTar
	default:
		return KindUnknown
	}
}

// IsArchiveExtension reports whether name's extension marks it as an
// archive the connector layer should expand rather than scan directly.
func IsArchiveExtension(name string) bool {
	lower := strings.ToLower(name)
	for _, suffix := range []string{".zip", ".tar", ".tar.gz", ".tgz", ".tar.bz2"} {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// ErrInsufficientDisk is returned by UncompressedSize's caller-side check
// when the archive (including nested archives) would not fit in the
// available free disk space.
var ErrInsufficientDisk = errors.New("archive: insufficient free disk space to expand")

// UncompressedSize walks data (interpreting it per kind) and returns the
// total uncompressed size of every member, recursing into nested archives
// so the caller can compare the true expansion footprint against free disk
// before committing to ExpandTo.
func UncompressedSize(kind Kind, data []byte) (int64, error) {
	switch kind {
	case KindZip:
		return zipUncompressedSize(data)
	case KindTar:
		return tarUncompressedSize(bytes.NewReader(data))
	case KindTarGZ:
		gz, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return 0, fmt.Errorf("archive: opening gzip stream: %w", err)
		}
		defer gz.Close()
		return tarUncompressedSize(gz)
	case KindTarBZ2:
		return tarUncompressedSize(bzip2.NewReader(bytes.NewReader(data)))
	default:
		return 0, fmt.Errorf("archive: unknown archive kind")
	}
}

func zipUncompressedSize(data []byte) (int64, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("archive: opening zip: %w", err)
	}
	var total int64
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		total += int64(f.UncompressedSize64)
		if IsArchiveExtension(f.Name) {
			nested, err := readZipMember(f)
			if err != nil {
				return 0, err
			}
			nestedKind := DetectKind(f.Name, head(nested))
			nestedSize, err := UncompressedSize(nestedKind, nested)
			if err != nil {
				return 0, err
			}
			total += nestedSize
		}
	}
	return total, nil
}

func tarUncompressedSize(r io.Reader) (int64, error) {
	tr := tar.NewReader(r)
	var total int64
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("archive: reading tar header: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		total += hdr.Size
		if IsArchiveExtension(hdr.Name) {
			member := make([]byte, hdr.Size)
			if _, err := io.ReadFull(tr, member); err != nil {
				return 0, fmt.Errorf("archive: reading nested member %s: %w", hdr.Name, err)
			}
			nestedKind := DetectKind(hdr.Name, head(member))
			nestedSize, err := UncompressedSize(nestedKind, member)
			if err != nil {
				return 0, err
			}
			total += nestedSize
		}
	}
	return total, nil
}

func readZipMember(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("archive: opening member %s: %w", f.Name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("archive: reading member %s: %w", f.Name, err)
	}
	return data, nil
}

func head(data []byte) []byte {
	if len(data) > 4 {
		return data[:4]
	}
	return data
}

// Member is a single file extracted from an archive, with its path
// relative to the archive root and the absolute path it was written to on
// disk.
type Member struct {
	RelativePath string
	DiskPath     string
	Size         int64
}

// ExpandTo extracts every regular-file member of data (interpreted per
// kind) into destDir, recursively expanding any nested archive member in
// place under a "<name>_extracted_archive" subdirectory, and returns every
// leaf (non-archive) file written.
func ExpandTo(kind Kind, data []byte, destDir string) ([]Member, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("archive: creating destination %s: %w", destDir, err)
	}
	switch kind {
	case KindZip:
		return expandZip(data, destDir)
	case KindTar:
		return expandTar(bytes.NewReader(data), destDir)
	case KindTarGZ:
		gz, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("archive: opening gzip stream: %w", err)
		}
		defer gz.Close()
		return expandTar(gz, destDir)
	case KindTarBZ2:
		return expandTar(bzip2.NewReader(bytes.NewReader(data)), destDir)
	default:
		return nil, fmt.Errorf("archive: unknown archive kind")
	}
}

func expandZip(data []byte, destDir string) ([]Member, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("archive: opening zip: %w", err)
	}
	var members []Member
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		content, err := readZipMember(f)
		if err != nil {
			return nil, err
		}
		extracted, err := writeAndMaybeExpand(f.Name, content, destDir)
		if err != nil {
			return nil, err
		}
		members = append(members, extracted...)
	}
	return members, nil
}

func expandTar(r io.Reader, destDir string) ([]Member, error) {
	tr := tar.NewReader(r)
	var members []Member
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("archive: reading tar header: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		content := make([]byte, hdr.Size)
		if _, err := io.ReadFull(tr, content); err != nil {
			return nil, fmt.Errorf("archive: reading member %s: %w", hdr.Name, err)
		}
		extracted, err := writeAndMaybeExpand(hdr.Name, content, destDir)
		if err != nil {
			return nil, err
		}
		members = append(members, extracted...)
	}
	return members, nil
}

// writeAndMaybeExpand writes a single archive member to disk, and if the
// member's own name looks like an archive (honoring the PK-magic quirk),
// recursively expands it into a sibling "_extracted_archive" directory
// instead of leaving the raw archive bytes as a leaf file.
func writeAndMaybeExpand(relPath string, content []byte, destDir string) ([]Member, error) {
	diskPath := filepath.Join(destDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(diskPath), 0o755); err != nil {
		return nil, fmt.Errorf("archive: creating member directory: %w", err)
	}
	if err := os.WriteFile(diskPath, content, 0o644); err != nil {
		return nil, fmt.Errorf("archive: writing member %s: %w", relPath, err)
	}

	kind := DetectKind(relPath, head(content))
	if kind == KindUnknown {
		return []Member{{RelativePath: relPath, DiskPath: diskPath, Size: int64(len(content))}}, nil
	}

	nestedDest := diskPath + "_extracted_archive"
	nested, err := ExpandTo(kind, content, nestedDest)
	if err != nil {
		return nil, fmt.Errorf("archive: expanding nested archive %s: %w", relPath, err)
	}
	return nested, nil
}
