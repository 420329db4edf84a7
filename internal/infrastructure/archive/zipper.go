package archive

import (
	"archive/zip"
	"compress/flate"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Zipper creates zip archives under a fixed local directory.
type Zipper struct {
	dir string
}

func NewZipper(dir string) *Zipper {
	if dir == "" {
		dir = os.TempDir()
	}

	return &Zipper{dir: dir}
}

// Create opens a new archive. The on-disk name carries a random suffix so
// concurrent archives with the same logical name never collide.
func (z *Zipper) Create(name string) (*Builder, error) {
	if err := os.MkdirAll(z.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create archive directory %s: %w", z.dir, err)
	}

	archiveUUID, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	name = strings.TrimSuffix(name, ".zip")
	path := filepath.Join(z.dir, fmt.Sprintf("%s_%s.zip", name, archiveUUID.String()[:8]))

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create archive file %s: %w", path, err)
	}

	zw := zip.NewWriter(file)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestCompression)
	})

	return &Builder{
		file: file,
		zw:   zw,
		path: path,
	}, nil
}

// Builder accumulates entries for one archive. Callers must finish with
// either Close or Discard.
type Builder struct {
	file    *os.File
	zw      *zip.Writer
	path    string
	entries int
}

func (b *Builder) Path() string {
	return b.path
}

func (b *Builder) Entries() int {
	return b.entries
}

func (b *Builder) AddEntry(name string, src io.Reader) error {
	w, err := b.zw.Create(name)
	if err != nil {
		return fmt.Errorf("create archive entry %s: %w", name, err)
	}

	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("write archive entry %s: %w", name, err)
	}

	b.entries++

	return nil
}

// Close finalizes the archive. The file is removed on failure.
func (b *Builder) Close() error {
	if err := b.zw.Close(); err != nil {
		b.file.Close()
		os.Remove(b.path)

		return fmt.Errorf("finalize archive %s: %w", b.path, err)
	}

	if err := b.file.Close(); err != nil {
		os.Remove(b.path)

		return err
	}

	return nil
}

// Discard abandons a partially written archive and removes it from disk.
func (b *Builder) Discard() {
	b.zw.Close()
	b.file.Close()
	os.Remove(b.path)
}
