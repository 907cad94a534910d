package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"assetgate/internal/domain/model"
)

const AssetCollection = "asset"

// assetDocument is the stored form of a record, keyed by asset id.
type assetDocument struct {
	ID        string        `json:"_id"`
	Record    *model.Record `json:"record"`
	UpdatedAt time.Time     `json:"updated_at"`
}

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
			UseJSONStructTags: true,
			NilSliceAsEmpty:   true,
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

	if err := initAssetCollection(db); err != nil {
		return nil, err
	}

	return db, nil
}

func (db *Database) collection() *mongo.Collection {
	return db.Client.Database(db.DBName).Collection(AssetCollection)
}

func initAssetCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": AssetCollection})
	if err != nil {
		return err
	}
	if len(collections) > 0 {
		return nil // already exists
	}

	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"_id", "record", "updated_at"},
			"properties": bson.M{
				"_id": bson.M{
					"bsonType":  "string",
					"minLength": 1,
					"maxLength": 128,
				},
				"record": bson.M{
					"bsonType": "object",
					"required": []string{"storage_mode", "is_image"},
					"properties": bson.M{
						"storage_mode": bson.M{"enum": []string{
							string(model.ExternalURL), string(model.InternalKey),
						}},
						"is_image": bson.M{"bsonType": "bool"},
						"variants": bson.M{"bsonType": []string{"object", "null"}},
					},
				},
				"updated_at": bson.M{"bsonType": "date"},
			},
		},
	})

	return db.Client.Database(db.DBName).CreateCollection(ctx, AssetCollection, collOpts)
}

func (db *Database) Stop() error {
	if err := db.Client.Disconnect(context.Background()); err != nil {
		return err
	}

	return nil
}

func (db *Database) Ping(ctx context.Context) error {
	return db.Client.Ping(ctx, nil)
}
