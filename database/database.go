package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"portfolio-backend/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DB is the shared store handle, set once at startup and read-only after
// that. nil means the store is unavailable; handlers check and answer 500.
var DB Store

var client *mongo.Client

// InitDB connects to the document store. Unlike a hard dependency, a
// missing or unreachable store does not abort the process: the API keeps
// serving and the /test endpoint reports what is wrong.
func InitDB() {
	uri := config.DATABASE_URL
	if uri == "" {
		log.Println("❌ DATABASE_URL not set, store disabled")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Println("❌ Failed to connect to document store:", err)
		return
	}
	client = c

	// The driver connects lazily, so a failed ping is only a warning;
	// the handle still works once the store comes up.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Println("⚠️ Document store not reachable yet:", err)
	}

	DB = &mongoStore{db: client.Database(config.DB_NAME)}

	fmt.Println("✅ Document store handle ready:", config.DB_NAME)
}

// CloseDB releases the driver connection on shutdown.
func CloseDB() {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Println("⚠️ Error closing document store:", err)
	}
}
