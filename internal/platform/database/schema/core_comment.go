package schema

// CoreCommentTable represents the 'core.comment' table
type CoreCommentTable struct {
	Table     string
	ID        string
	Body      string
	ArticleID string
	AuthorID  string
	CreatedAt string
	UpdatedAt string
}

// CoreComment is the schema definition for core.comment
var CoreComment = CoreCommentTable{
	Table:     "core.comment",
	ID:        "id",
	Body:      "body",
	ArticleID: "articleid",
	AuthorID:  "authorid",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names
func (t CoreCommentTable) Columns() []string {
	return []string{t.ID, t.Body, t.ArticleID, t.AuthorID, t.CreatedAt, t.UpdatedAt}
}
