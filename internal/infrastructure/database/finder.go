package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"sitesnap/internal/domain/model"
)

type ImageFinder struct {
	db *Database
}

func NewImageFinder(db *Database) *ImageFinder {
	return &ImageFinder{db: db}
}

// FindBySiteAndDate returns every record whose construction site and capture
// date equal the given values exactly. No range matching is done.
func (f *ImageFinder) FindBySiteAndDate(ctx context.Context, site, date string) ([]model.ImageRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, f.db.QueryTimeout)
	defer cancel()

	coll := f.db.Client.Database(f.db.DBName).Collection(ImageCollection)

	filter := bson.M{
		"construction_site": site,
		"capture_date":      date,
	}

	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []model.ImageRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}
