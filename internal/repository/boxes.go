// Package repository provides data access for box catalogs.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/packwise/boxfit-service/internal/domain/model"
)

// BoxCatalogConfig represents a versioned box catalog document. Only one
// catalog is active at a time; creating a new one deactivates the rest.
type BoxCatalogConfig struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Boxes     []model.BoxSpec        `bson:"boxes" json:"boxes"`
	Active    bool                   `bson:"active" json:"active"`
	Version   int                    `bson:"version" json:"version"`
	CreatedAt time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time              `bson:"updated_at" json:"updated_at"`
	CreatedBy string                 `bson:"created_by,omitempty" json:"created_by,omitempty"`
	Metadata  map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

// BoxCatalogRepository provides methods for box catalog operations.
type BoxCatalogRepository struct {
	collection *mongo.Collection
}

// NewBoxCatalogRepository creates a new box catalog repository.
func NewBoxCatalogRepository(db *MongoDB) *BoxCatalogRepository {
	return &BoxCatalogRepository{
		collection: db.BoxCatalogs,
	}
}

// GetActive returns the active box catalog.
func (r *BoxCatalogRepository) GetActive(ctx context.Context) (*BoxCatalogConfig, error) {
	var config BoxCatalogConfig
	err := r.collection.FindOne(ctx, bson.M{"active": true}).Decode(&config)
	if err == mongo.ErrNoDocuments {
		return nil, nil // No active catalog found
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Create creates a new box catalog and deactivates any previously active one.
func (r *BoxCatalogRepository) Create(ctx context.Context, boxes []model.BoxSpec, createdBy string) (*BoxCatalogConfig, error) {
	_, err := r.collection.UpdateMany(
		ctx,
		bson.M{"active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
	)
	if err != nil {
		return nil, err
	}

	config := BoxCatalogConfig{
		ID:        primitive.NewObjectID(),
		Boxes:     boxes,
		Active:    true,
		Version:   1,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		CreatedBy: createdBy,
		Metadata:  make(map[string]interface{}),
	}

	_, err = r.collection.InsertOne(ctx, config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// Update replaces the boxes of an existing catalog, bumping its version.
func (r *BoxCatalogRepository) Update(ctx context.Context, id primitive.ObjectID, boxes []model.BoxSpec, updatedBy string) (*BoxCatalogConfig, error) {
	var current BoxCatalogConfig
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&current)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"$set": bson.M{
			"boxes":      boxes,
			"updated_at": time.Now(),
			"version":    current.Version + 1,
		},
	}
	if updatedBy != "" {
		if setDoc, ok := update["$set"].(bson.M); ok {
			setDoc["updated_by"] = updatedBy
		}
	}

	var config BoxCatalogConfig
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// List returns box catalogs, newest first.
func (r *BoxCatalogRepository) List(ctx context.Context, limit int) ([]BoxCatalogConfig, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var configs []BoxCatalogConfig
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, err
	}

	return configs, nil
}
