// Package upload implements content-based file validation and secure
// persistence for attachment uploads.
//
// File types are detected from byte signatures only; a client-supplied
// Content-Type is never trusted as a detection source. Persistence defends
// in depth against path traversal: filenames are generator-controlled,
// destinations are containment-checked against a canonicalized root, and
// writes through symlinked ancestors are refused.
package upload

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Error is the file-validation failure kind. Persistence failures use a
// generic message so OS error text is never leaked to clients.
type Error struct {
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

func errorf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// MaxFileSize is the upload size ceiling in bytes (10 MiB).
const MaxFileSize = 10 << 20

// Detected MIME types.
const (
	MIMEPNG  = "image/png"
	MIMEJPEG = "image/jpeg"
	MIMEPDF  = "application/pdf"
)

// Byte signatures. Static and never mutated.
var (
	pngMagic = []byte("\x89PNG\r\n\x1a\n")
	jpegSOI  = []byte{0xff, 0xd8}
	jpegEOI  = []byte{0xff, 0xd9}
	pdfMagic = []byte("%PDF-")

	// allowedMagic maps a declared content type to its acceptable leading
	// signatures, for the strict declared-type check in Validate.
	allowedMagic = map[string][][]byte{
		MIMEJPEG: {{0xff, 0xd8, 0xff}},
		MIMEPNG:  {pngMagic},
		MIMEPDF:  {pdfMagic},
	}

	// extByMIME derives the stored extension from the detected type,
	// never from client-supplied filename text.
	extByMIME = map[string]string{
		MIMEPNG:  ".png",
		MIMEJPEG: ".jpg",
		MIMEPDF:  ".pdf",
	}
)

// Sniff detects the true file type from byte content, or returns "" when
// no supported signature matches.
//
// The JPEG rule is deliberately permissive: a valid start-of-image marker
// plus either a JFIF/Exif marker near the start, a trailing end-of-image
// marker, or simply more than 10 bytes of content counts as JPEG. That is
// a weaker guarantee than the PNG/PDF checks and is documented behavior,
// not a defect.
func Sniff(data []byte) string {
	if bytes.HasPrefix(data, pngMagic) {
		return MIMEPNG
	}
	if bytes.HasPrefix(data, jpegSOI) {
		head := data
		if len(head) > 20 {
			head = head[:20]
		}
		if len(data) > 4 && (bytes.Contains(head, []byte("JFIF")) ||
			bytes.Contains(head, []byte("Exif")) ||
			bytes.HasSuffix(data, jpegEOI)) {
			return MIMEJPEG
		}
		if len(data) > 10 {
			return MIMEJPEG
		}
		return ""
	}
	if bytes.HasPrefix(data, pdfMagic) {
		return MIMEPDF
	}
	return ""
}

// ValidatedFile is the ephemeral result of a successful upload validation.
// GeneratedFilename is random with an extension derived from the verified
// content type; it never depends on any path segment of OriginalFilename.
type ValidatedFile struct {
	OriginalFilename  string `json:"original_filename"`
	DetectedMIME      string `json:"detected_mime"`
	SizeBytes         int64  `json:"size_bytes"`
	GeneratedFilename string `json:"generated_filename"`
}

// Validate performs the pre-persistence upload check: size ceiling, then a
// magic-byte match against the declared content type specifically. A body
// whose bytes are a valid file of a different supported type still fails,
// which stops content-type spoofing at the API boundary.
func Validate(content []byte, filename, contentType string) (*ValidatedFile, error) {
	if len(content) > MaxFileSize {
		return nil, errorf("file is too large (maximum %d bytes)", MaxFileSize)
	}
	if !magicMatches(content, contentType) {
		return nil, errorf("invalid file type")
	}
	return &ValidatedFile{
		OriginalFilename:  filename,
		DetectedMIME:      contentType,
		SizeBytes:         int64(len(content)),
		GeneratedFilename: uuid.NewString() + extByMIME[contentType],
	}, nil
}

func magicMatches(content []byte, contentType string) bool {
	expected, ok := allowedMagic[contentType]
	if !ok {
		return false
	}
	for _, magic := range expected {
		if bytes.HasPrefix(content, magic) {
			return true
		}
	}
	return false
}

// Persister writes validated uploads inside a canonicalized root directory.
// The zero value is not usable; construct with NewPersister.
type Persister struct {
	root string
}

// NewPersister returns a Persister rooted at dir. The directory is created
// if missing so the root can always be canonicalized at save time.
func NewPersister(dir string) (*Persister, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create upload root: %w", err)
	}
	return &Persister{root: dir}, nil
}

// Root returns the configured (non-canonicalized) upload root.
func (p *Persister) Root() string { return p.root }

// Save validates content and writes it under the canonical upload root,
// returning the absolute destination path. Steps, in order:
//
//  1. size ceiling
//  2. content sniffing (client input plays no part)
//  3. root canonicalization (must already exist)
//  4. random filename with an extension from the detected type
//  5. containment check of the composed destination against the root
//  6. symlink check over every ancestor directory of the destination
//  7. write; I/O failures surface as a generic "error while saving"
func (p *Persister) Save(content []byte) (string, error) {
	if len(content) > MaxFileSize {
		return "", errorf("file is too large (maximum %d bytes)", MaxFileSize)
	}

	detected := Sniff(content)
	if detected == "" {
		return "", errorf("invalid file type")
	}

	root, err := filepath.EvalSymlinks(p.root)
	if err != nil {
		return "", errorf("upload directory is unavailable")
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return "", errorf("upload directory is unavailable")
	}

	name := uuid.NewString() + extByMIME[detected]
	dest := filepath.Join(root, name)

	// Defense in depth: the filename is generator-controlled, but verify
	// containment anyway.
	if !strings.HasPrefix(dest, root+string(filepath.Separator)) {
		return "", errorf("path traversal detected")
	}

	for dir := filepath.Dir(dest); ; dir = filepath.Dir(dir) {
		info, err := os.Lstat(dir)
		if err == nil && info.Mode()&os.ModeSymlink != 0 {
			return "", errorf("symbolic link detected in path")
		}
		if dir == filepath.Dir(dir) {
			break
		}
	}

	if err := os.WriteFile(dest, content, 0o640); err != nil {
		return "", errorf("error while saving file")
	}
	return dest, nil
}

// CheckPathSafety canonicalizes path (resolving ".", ".." and symlinks of
// existing components) and verifies it lies under the canonical upload
// root. Separately, it fails when the path itself is a symlink. Both
// checks run; either can fail independently.
func (p *Persister) CheckPathSafety(path string) (string, error) {
	canonical, err := filepath.EvalSymlinks(path)
	if err != nil {
		// Nonexistent targets still get a canonical form for the
		// containment check.
		canonical, err = filepath.Abs(filepath.Clean(path))
		if err != nil {
			return "", errorf("unsafe file path")
		}
	} else if canonical, err = filepath.Abs(canonical); err != nil {
		return "", errorf("unsafe file path")
	}

	root, err := filepath.EvalSymlinks(p.root)
	if err == nil {
		root, err = filepath.Abs(root)
	}
	if err != nil {
		return "", errorf("upload directory is unavailable")
	}

	if canonical != root && !strings.HasPrefix(canonical, root+string(filepath.Separator)) {
		return "", errorf("unsafe file path")
	}

	if info, lerr := os.Lstat(path); lerr == nil && info.Mode()&os.ModeSymlink != 0 {
		return "", errorf("symbolic links are forbidden")
	}

	return canonical, nil
}
