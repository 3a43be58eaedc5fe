package schema

// CoreArticleTagTable represents the 'core.articletag' join table
type CoreArticleTagTable struct {
	Table     string
	ArticleID string
	TagID     string
}

// CoreArticleTag is the schema definition for core.articletag
var CoreArticleTag = CoreArticleTagTable{
	Table:     "core.articletag",
	ArticleID: "articleid",
	TagID:     "tagid",
}
