package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
//
// Note: tags.name deliberately carries no UNIQUE constraint; name-based
// reuse is enforced by the resolver inside the write transaction instead.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS tags (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS todos (
	id          TEXT PRIMARY KEY,
	timestamp   DATETIME NOT NULL,
	title       TEXT NOT NULL,
	description TEXT NOT NULL,
	due_date    DATETIME,
	status      TEXT NOT NULL DEFAULT 'OPEN'
		CHECK(status IN ('OPEN', 'WORKING', 'PENDING REVIEW', 'COMPLETED', 'OVERDUE', 'CANCELLED'))
);

CREATE TABLE IF NOT EXISTS todo_tags (
	todo_id TEXT NOT NULL REFERENCES todos(id) ON DELETE CASCADE,
	tag_id  TEXT NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
	PRIMARY KEY (todo_id, tag_id)
);

CREATE INDEX IF NOT EXISTS idx_tags_name ON tags(name);
CREATE INDEX IF NOT EXISTS idx_todos_status ON todos(status);
CREATE INDEX IF NOT EXISTS idx_todos_due_date ON todos(due_date);
CREATE INDEX IF NOT EXISTS idx_todos_timestamp ON todos(timestamp);
CREATE INDEX IF NOT EXISTS idx_todo_tags_tag_id ON todo_tags(tag_id);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
