package health

import (
	"net/http"

	"portfolio-backend/config"
	"portfolio-backend/database"

	"github.com/gin-gonic/gin"
)

// Root answers the liveness probe.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Architecture Portfolio Backend is running"})
}

// storeProbe is the outcome of each diagnostic step, kept separate so a
// failing step never hides the ones before it.
type storeProbe struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// TestDatabase reports the store's health best-effort. Every probe failure
// is rendered as status text in the payload; this endpoint never answers
// with an HTTP error.
func TestDatabase(c *gin.Context) {
	resp := storeProbe{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	db := database.DB
	if db == nil {
		c.JSON(http.StatusOK, resp)
		return
	}
	resp.Database = "✅ Available"

	urlStatus := "❌ Not Set"
	if config.DATABASE_URL != "" {
		urlStatus = "✅ Set"
	}
	resp.DatabaseURL = &urlStatus

	name := db.Name()
	if name == "" {
		name = "❌ Unknown"
	}
	resp.DatabaseName = &name

	collections, err := db.CollectionNames(c.Request.Context())
	if err != nil {
		resp.Database = "⚠️ Connected but error: " + truncate(err.Error(), 50)
		c.JSON(http.StatusOK, resp)
		return
	}

	if collections == nil {
		collections = []string{}
	}
	if len(collections) > config.DiagCollectionLimit {
		collections = collections[:config.DiagCollectionLimit]
	}
	resp.Collections = collections
	resp.ConnectionStatus = "Connected"
	resp.Database = "✅ Connected & Working"

	c.JSON(http.StatusOK, resp)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
