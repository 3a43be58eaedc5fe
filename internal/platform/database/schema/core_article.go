package schema

// CoreArticleTable represents the 'core.article' table
type CoreArticleTable struct {
	Table       string
	ID          string
	Slug        string
	Title       string
	Description string
	Body        string
	AuthorID    string
	CreatedAt   string
	UpdatedAt   string
}

// CoreArticle is the schema definition for core.article
var CoreArticle = CoreArticleTable{
	Table:       "core.article",
	ID:          "id",
	Slug:        "slug",
	Title:       "title",
	Description: "description",
	Body:        "body",
	AuthorID:    "authorid",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names
func (t CoreArticleTable) Columns() []string {
	return []string{
		t.ID, t.Slug, t.Title, t.Description, t.Body,
		t.AuthorID, t.CreatedAt, t.UpdatedAt,
	}
}
