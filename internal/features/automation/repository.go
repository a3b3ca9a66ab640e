package automation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"push-console/internal/config"
	"push-console/internal/database"
)

type AutomationRepository interface {
	Create(ctx context.Context, rule *AutomationRule) error
	GetByID(ctx context.Context, id string) (*AutomationRule, error)
	GetByEventType(ctx context.Context, eventType string) (*AutomationRule, error)
	List(ctx context.Context, filter ListFilter) ([]AutomationRule, error)
	ListEnabled(ctx context.Context) ([]AutomationRule, error)
	Update(ctx context.Context, rule *AutomationRule) error
	SetEnabled(ctx context.Context, id string, enabled bool) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	// RecordResult applies one delivery outcome: counters via atomic $inc,
	// history via capped atomic $push. Never a client read-modify-write.
	RecordResult(ctx context.Context, id string, rec ExecutionRecord) error
}

type AutomationRepositoryImpl struct {
	Collection   *mongo.Collection
	HistoryLimit int
}

func NewAutomationRepository(mongodb *database.MongodbDB, cfg *config.Config) AutomationRepository {
	return &AutomationRepositoryImpl{
		Collection:   mongodb.DB.Collection("automations"),
		HistoryLimit: cfg.HistoryLimit,
	}
}

func (r *AutomationRepositoryImpl) Create(ctx context.Context, rule *AutomationRule) error {
	rule.ID = primitive.NewObjectID()
	now := time.Now()
	rule.CreatedAt = now
	rule.UpdatedAt = now
	_, err := r.Collection.InsertOne(ctx, rule)
	return err
}

func (r *AutomationRepositoryImpl) GetByID(ctx context.Context, id string) (*AutomationRule, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var rule AutomationRule
	err = r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&rule)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &rule, nil
}

func (r *AutomationRepositoryImpl) GetByEventType(ctx context.Context, eventType string) (*AutomationRule, error) {
	var rule AutomationRule
	err := r.Collection.FindOne(ctx, bson.M{"event_type": eventType}).Decode(&rule)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &rule, nil
}

// sortFields maps API sort keys onto document paths
var sortFields = map[string]string{
	"name":      "name",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"sent":      "stats.sent",
	"success":   "stats.success",
}

func (r *AutomationRepositoryImpl) List(ctx context.Context, filter ListFilter) ([]AutomationRule, error) {
	query := bson.M{}

	switch filter.Status {
	case "active":
		query["enabled"] = true
		query["archived"] = false
	case "inactive":
		query["enabled"] = false
		query["archived"] = false
	case "archived":
		query["archived"] = true
	}

	switch filter.Platform {
	case "ios", "android":
		query["target."+filter.Platform] = true
	}

	sortField, ok := sortFields[filter.Sort]
	if !ok {
		sortField = "created_at"
	}
	dir := -1
	if filter.Order == "asc" {
		dir = 1
	}

	cursor, err := r.Collection.Find(ctx, query, options.Find().SetSort(bson.D{{Key: sortField, Value: dir}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rules := []AutomationRule{}
	if err = cursor.All(ctx, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *AutomationRepositoryImpl) ListEnabled(ctx context.Context) ([]AutomationRule, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"enabled": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rules []AutomationRule
	if err = cursor.All(ctx, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *AutomationRepositoryImpl) Update(ctx context.Context, rule *AutomationRule) error {
	rule.UpdatedAt = time.Now()

	set := bson.M{
		"name":         rule.Name,
		"notification": rule.Notification,
		"target":       rule.Target,
		"enabled":      rule.Enabled,
		"updated_at":   rule.UpdatedAt,
	}
	unset := bson.M{}

	setOrUnset(set, unset, "event_type", rule.EventType != "", rule.EventType)
	setOrUnset(set, unset, "audience_name", rule.AudienceName != "", rule.AudienceName)
	setOrUnset(set, unset, "schedule", rule.Schedule != nil, rule.Schedule)

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": rule.ID}, update)
	return err
}

func setOrUnset(set, unset bson.M, field string, present bool, value interface{}) {
	if present {
		set[field] = value
	} else {
		unset[field] = ""
	}
}

func (r *AutomationRepositoryImpl) SetEnabled(ctx context.Context, id string, enabled bool) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": oid},
		bson.M{"$set": bson.M{"enabled": enabled, "updated_at": time.Now()}})
	return err
}

func (r *AutomationRepositoryImpl) Archive(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": oid},
		bson.M{"$set": bson.M{"archived": true, "enabled": false, "updated_at": time.Now()}})
	return err
}

func (r *AutomationRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

func (r *AutomationRepositoryImpl) RecordResult(ctx context.Context, id string, rec ExecutionRecord) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	// Every attempt bumps sent plus exactly one of success/failure, so
	// sent == success + failure holds after each delivery.
	inc := bson.M{"stats.sent": 1}
	if rec.Success {
		inc["stats.success"] = 1
	} else {
		inc["stats.failure"] = 1
	}

	entry := HistoryEntry{
		ID:         uuid.NewString(),
		Timestamp:  rec.At,
		Success:    rec.Success,
		Error:      rec.Error,
		Recipients: rec.Recipients,
	}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$inc": inc,
		"$set": bson.M{
			"stats.last_run": rec.At,
			"last_triggered": rec.At,
			"updated_at":     rec.At,
		},
		"$push": bson.M{
			"history": bson.M{
				"$each":  []HistoryEntry{entry},
				"$slice": -r.HistoryLimit,
			},
		},
	})
	return err
}
