package works

// ---------- requests

// CreateWorkRequest carries the domain fields of a new Work. The id is
// never accepted from the caller; the store assigns it at insert time.
type CreateWorkRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description *string  `json:"description"`
	Year        *int     `json:"year" binding:"omitempty,gte=1900,lte=2100"`
	Location    *string  `json:"location"`
	CoverImage  *string  `json:"cover_image"`
	Gallery     []string `json:"gallery"`
}
