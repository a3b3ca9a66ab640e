package device

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Device is a registered FCM token for a staff device
type Device struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Token     string             `bson:"token" json:"token"`
	Platform  string             `bson:"platform,omitempty" json:"platform,omitempty"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}
