package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"sitesnap/internal/domain/entity"
	"sitesnap/internal/domain/model"
	"sitesnap/internal/domain/repository/broker"
	"sitesnap/internal/domain/repository/database"
	"sitesnap/internal/domain/repository/metadata"
	"sitesnap/internal/domain/repository/minio"
	"sitesnap/pkg/logger"
	"sitesnap/pkg/utils"
)

// ErrNoFiles rejects an upload batch that carries no files at all.
var ErrNoFiles = errors.New("no files to process")

type Uploader struct {
	extractor metadata.Extractor
	blobs     minio.Uploader
	writer    database.Writer
	publisher broker.Publisher
}

func NewUploader(extractor metadata.Extractor, blobs minio.Uploader, writer database.Writer,
	publisher broker.Publisher,
) *Uploader {
	return &Uploader{
		extractor: extractor,
		blobs:     blobs,
		writer:    writer,
		publisher: publisher,
	}
}

// Upload processes a batch of files tagged with one construction-site label.
// Files are handled strictly in order: a file whose metadata cannot be
// extracted is reported as skipped and leaves no blob or record behind, while
// a blob-store or record-store failure aborts the whole batch. Files already
// written before such a failure remain; there is no rollback.
func (u *Uploader) Upload(ctx context.Context, site string, files []entity.File) (entity.BatchReport, error) {
	report := entity.BatchReport{Site: site}

	if len(files) == 0 {
		return report, ErrNoFiles
	}

	for _, file := range files {
		capture, err := u.extractor.Extract(file.Data)
		if err != nil {
			logger.Info("skipping file without readable metadata", "filename", file.Name, "err", err)
			report.Results = append(report.Results, entity.FileResult{
				Filename: file.Name,
				Status:   entity.FileSkipped,
				Reason:   "no readable capture metadata",
			})

			continue
		}

		key := fmt.Sprintf("images/%d_%s", time.Now().UnixMilli(), utils.SanitizeFilename(file.Name))

		obj, err := u.blobs.Put(ctx, key, file.Data)
		if err != nil {
			return report, fmt.Errorf("store blob for %s: %w", file.Name, err)
		}

		if err := u.writer.Write(ctx, buildRecord(site, file.Name, capture, obj)); err != nil {
			return report, fmt.Errorf("write record for %s: %w", file.Name, err)
		}

		if u.publisher != nil {
			if err := u.publisher.Publish(ctx, entity.ImageStored{
				Key:      obj.Key,
				Site:     site,
				Filename: file.Name,
			}); err != nil {
				logger.Error("failed to publish stored-image event", "key", obj.Key, "err", err)
			}
		}

		report.Results = append(report.Results, entity.FileResult{
			Filename: file.Name,
			Status:   entity.FileStored,
			Key:      obj.Key,
			URL:      obj.Location,
			Size:     obj.Size,
		})
	}

	return report, nil
}

func buildRecord(site, filename string, capture *entity.Capture, obj entity.StoredObject) *model.ImageRecord {
	record := &model.ImageRecord{
		ID:               uuid.New().String(),
		Filename:         filename,
		BlobKey:          obj.Key,
		ImageURL:         obj.Location,
		UploadTime:       time.Now(),
		CaptureTime:      capture.TakenAt,
		Latitude:         capture.Latitude,
		Longitude:        capture.Longitude,
		Size:             obj.Size,
		ConstructionSite: site,
	}

	if capture.TakenAt != nil {
		record.CaptureDate = capture.TakenAt.Format("2006-01-02")
	}

	keys := make([]string, 0, len(capture.Fields))
	for k := range capture.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		record.Metadata = append(record.Metadata, model.Tag{Key: k, Value: capture.Fields[k]})
	}

	return record
}
