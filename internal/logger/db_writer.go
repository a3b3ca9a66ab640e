package logger

import (
	"context"
	"fmt"
	"time"

	"push-console/internal/config"
	"push-console/internal/database"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap/zapcore"
)

// LogEntry holds the data passed from Zap to the worker
type LogEntry struct {
	Level   zapcore.Level
	Message string
	RuleID  string
	Caller  string // Function name
}

type logDocument struct {
	AppID     string    `bson:"app_id"`
	Level     string    `bson:"level"`
	Message   string    `bson:"message"`
	RuleID    string    `bson:"rule_id,omitempty"`
	Caller    string    `bson:"caller,omitempty"`
	Timestamp time.Time `bson:"timestamp"`
}

// DBLogWriter handles the async writing
type DBLogWriter struct {
	collection *mongo.Collection
	logChan    chan LogEntry
	appId      string
}

// NewDBLogWriter initializes the worker
func NewDBLogWriter(mongodb *database.MongodbDB, cfg *config.Config) *DBLogWriter {
	writer := &DBLogWriter{
		collection: mongodb.DB.Collection("logs"),
		logChan:    make(chan LogEntry, 1000), // Buffer 1000 logs
		appId:      cfg.AppId,
	}

	// Start the background worker immediately
	go writer.processLogs()

	return writer
}

// AddLog is called by our Zap hook
func (w *DBLogWriter) AddLog(entry LogEntry) {
	select {
	case w.logChan <- entry:
	default:
		// Channel full: drop rather than block the request path
		fmt.Println("DB Log Channel Full! Dropping log:", entry.Message)
	}
}

func (w *DBLogWriter) processLogs() {
	for entry := range w.logChan {
		doc := logDocument{
			AppID:     w.appId,
			Level:     entry.Level.String(),
			Message:   entry.Message,
			RuleID:    entry.RuleID,
			Caller:    entry.Caller,
			Timestamp: time.Now(),
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if _, err := w.collection.InsertOne(ctx, doc); err != nil {
			fmt.Println("Failed to persist log entry:", err)
		}
		cancel()
	}
}
