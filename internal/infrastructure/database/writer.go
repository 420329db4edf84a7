package database

import (
	"context"

	"sitesnap/internal/domain/model"
)

type ImageWriter struct {
	db *Database
}

func NewImageWriter(db *Database) *ImageWriter {
	return &ImageWriter{db: db}
}

func (w *ImageWriter) Write(ctx context.Context, record *model.ImageRecord) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	coll := w.db.Client.Database(w.db.DBName).Collection(ImageCollection)

	_, err := coll.InsertOne(ctx, record)

	return err
}
