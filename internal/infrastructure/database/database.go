package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ImageCollection = "images"

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetBSONOptions(&options.BSONOptions{
			NilSliceAsEmpty: true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initImageCollection(db); err != nil {
		return nil, err
	}

	return db, nil
}

func initImageCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": ImageCollection})
	if err != nil {
		return err
	}
	if len(collections) > 0 {
		return nil // already exists
	}

	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{
				"_id", "filename", "blob_key", "image_url",
				"upload_time", "size", "construction_site",
			},
			"properties": bson.M{
				"_id":          bson.M{"bsonType": "string"},
				"filename":     bson.M{"bsonType": "string"},
				"blob_key":     bson.M{"bsonType": "string"},
				"image_url":    bson.M{"bsonType": "string"},
				"upload_time":  bson.M{"bsonType": "date"},
				"capture_time": bson.M{"bsonType": []string{"date", "null"}},
				"capture_date": bson.M{"bsonType": "string"},
				"latitude":     bson.M{"bsonType": []string{"double", "null"}},
				"longitude":    bson.M{"bsonType": []string{"double", "null"}},
				"size":         bson.M{"bsonType": "long"},
				"construction_site": bson.M{
					"bsonType":  "string",
					"minLength": 1,
				},
				"metadata": bson.M{
					"bsonType": "array",
					"items": bson.M{
						"bsonType": "object",
						"required": []string{"key", "value"},
						"properties": bson.M{
							"key":   bson.M{"bsonType": "string"},
							"value": bson.M{"bsonType": "string"},
						},
					},
				},
			},
		},
	})

	err = db.Client.Database(db.DBName).CreateCollection(ctx, ImageCollection, collOpts)
	if err != nil {
		return err
	}
	coll := db.Client.Database(db.DBName).Collection(ImageCollection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "construction_site", Value: 1}, {Key: "capture_date", Value: 1}},
	})

	return err
}

func (db *Database) Stop() error {
	if err := db.Client.Disconnect(context.Background()); err != nil {
		return err
	}

	return nil
}
