package usecase

import (
	"bytes"
	"context"
	"fmt"

	"sitesnap/internal/domain/entity"
	"sitesnap/internal/domain/repository/database"
	"sitesnap/internal/domain/repository/minio"
	"sitesnap/internal/infrastructure/archive"
)

type Archiver struct {
	finder database.Finder
	blobs  minio.Reader
	zipper *archive.Zipper
}

func NewArchiver(finder database.Finder, blobs minio.Reader, zipper *archive.Zipper) *Archiver {
	return &Archiver{
		finder: finder,
		blobs:  blobs,
		zipper: zipper,
	}
}

// Archive collects every image matching the exact (site, date) pair into a
// fresh zip on local disk and returns its path. A query failure or a blob
// missing from the store fails the whole request and leaves no file behind;
// a filter matching nothing yields a valid archive with zero entries. The
// caller owns the returned file and must remove it after streaming.
func (a *Archiver) Archive(ctx context.Context, site, date string) (entity.Archive, error) {
	records, err := a.finder.FindBySiteAndDate(ctx, site, date)
	if err != nil {
		return entity.Archive{}, fmt.Errorf("query image records: %w", err)
	}

	builder, err := a.zipper.Create(fmt.Sprintf("%s_%s_images", date, site))
	if err != nil {
		return entity.Archive{}, err
	}

	for _, record := range records {
		data, err := a.blobs.Read(ctx, record.BlobKey)
		if err != nil {
			builder.Discard()

			return entity.Archive{}, fmt.Errorf("read blob %s: %w", record.BlobKey, err)
		}

		if err := builder.AddEntry(record.BlobKey, bytes.NewReader(data)); err != nil {
			builder.Discard()

			return entity.Archive{}, err
		}
	}

	if err := builder.Close(); err != nil {
		return entity.Archive{}, err
	}

	return entity.Archive{
		Path:    builder.Path(),
		Entries: builder.Entries(),
	}, nil
}
