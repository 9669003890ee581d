package works

import (
	"errors"
	"net/http"
	"strconv"

	"portfolio-backend/config"
	"portfolio-backend/database"
	"portfolio-backend/internal/domain/works"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

func mustStore(c *gin.Context) (database.Store, bool) {
	if database.DB == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not available"})
		return nil, false
	}
	return database.DB, true
}

// ------------------------------
// POST /api/works
// ------------------------------
func CreateWork(c *gin.Context) {
	var req CreateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db, ok := mustStore(c)
	if !ok {
		return
	}

	gallery := req.Gallery
	if gallery == nil {
		gallery = []string{}
	}

	doc := bson.M{
		"title":       req.Title,
		"description": req.Description,
		"year":        req.Year,
		"location":    req.Location,
		"cover_image": req.CoverImage,
		"gallery":     gallery,
	}

	id, err := db.Insert(c.Request.Context(), works.Collection, doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create work"})
		return
	}

	// Re-fetch so the response reflects the document as stored, not the
	// input echoed back.
	inserted, err := db.FindByID(c.Request.Context(), works.Collection, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load created work"})
		return
	}

	c.JSON(http.StatusOK, serializeDoc(inserted))
}

// ------------------------------
// GET /api/works?limit=N
// ------------------------------
func ListWorks(c *gin.Context) {
	db, ok := mustStore(c)
	if !ok {
		return
	}

	limit := config.DefaultListLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	docs, err := db.Find(c.Request.Context(), works.Collection, bson.M{}, int64(limit))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load works"})
		return
	}

	out := make([]bson.M, 0, len(docs))
	for _, d := range docs {
		out = append(out, serializeDoc(d))
	}
	c.JSON(http.StatusOK, out)
}

// ------------------------------
// GET /api/works/:id
// ------------------------------
func GetWorkByID(c *gin.Context) {
	id, err := works.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	db, ok := mustStore(c)
	if !ok {
		return
	}

	doc, err := db.FindByID(c.Request.Context(), works.Collection, id)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load work"})
		return
	}

	c.JSON(http.StatusOK, serializeDoc(doc))
}
