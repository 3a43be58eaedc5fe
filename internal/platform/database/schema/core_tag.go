package schema

// CoreTagTable represents the 'core.tag' table
type CoreTagTable struct {
	Table     string
	ID        string
	Name      string
	CreatedAt string
}

// CoreTag is the schema definition for core.tag
var CoreTag = CoreTagTable{
	Table:     "core.tag",
	ID:        "id",
	Name:      "name",
	CreatedAt: "createdat",
}

func (t CoreTagTable) Columns() []string {
	return []string{t.ID, t.Name, t.CreatedAt}
}
