package device

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"push-console/internal/database"
)

type DeviceRepository interface {
	// Upsert registers a token, refreshing the owner and platform when the
	// token is already known
	Upsert(ctx context.Context, device *Device) error
}

type DeviceRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewDeviceRepository(mongodb *database.MongodbDB) DeviceRepository {
	return &DeviceRepositoryImpl{
		Collection: mongodb.DB.Collection("devices"),
	}
}

func (r *DeviceRepositoryImpl) Upsert(ctx context.Context, device *Device) error {
	now := time.Now()
	_, err := r.Collection.UpdateOne(ctx,
		bson.M{"token": device.Token},
		bson.M{
			"$set": bson.M{
				"platform":   device.Platform,
				"email":      device.Email,
				"updated_at": now,
			},
			"$setOnInsert": bson.M{"created_at": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}
