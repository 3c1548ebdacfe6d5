package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS tool_uses (
    file_path   TEXT NOT NULL,
    tool        TEXT NOT NULL,
    target      TEXT NOT NULL,
    ts          TEXT
);

CREATE TABLE IF NOT EXISTS file_tracker (
    file_path   TEXT PRIMARY KEY,
    mtime_ns    INTEGER NOT NULL,
    size_bytes  INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_tool_uses_file ON tool_uses(file_path);
`
