package sqlite

const schema = `
-- Named word lists. Scheduling is scoped to the collection a word belongs to.
CREATE TABLE IF NOT EXISTS collections (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS words (
    id TEXT PRIMARY KEY,
    collection_id TEXT NOT NULL,
    term TEXT NOT NULL,
    definition TEXT NOT NULL,
    created_at DATETIME NOT NULL,

    FOREIGN KEY(collection_id) REFERENCES collections(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS word_examples (
    id TEXT PRIMARY KEY,
    word_id TEXT NOT NULL,
    example_text TEXT NOT NULL,
    context_notes TEXT NOT NULL DEFAULT '',

    FOREIGN KEY(word_id) REFERENCES words(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS word_relations (
    id TEXT PRIMARY KEY,
    word_id TEXT NOT NULL,
    relation_type TEXT NOT NULL,
    related_term TEXT NOT NULL,

    FOREIGN KEY(word_id) REFERENCES words(id) ON DELETE CASCADE
);

-- One spaced-repetition schedule per word per collection. Created with the
-- word, updated after each due-card review, removed with the word.
CREATE TABLE IF NOT EXISTS schedules (
    word_id TEXT NOT NULL,
    collection_id TEXT NOT NULL,
    ease_factor REAL NOT NULL,
    repetitions INTEGER NOT NULL DEFAULT 0,
    interval_days INTEGER NOT NULL DEFAULT 0,
    next_review_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL,

    PRIMARY KEY (word_id, collection_id),
    FOREIGN KEY(word_id) REFERENCES words(id) ON DELETE CASCADE,
    FOREIGN KEY(collection_id) REFERENCES collections(id) ON DELETE CASCADE
);

-- Append-only review log. Deliberately no foreign keys: records outlive the
-- words and collections they refer to.
CREATE TABLE IF NOT EXISTS session_records (
    id TEXT PRIMARY KEY,
    word_id TEXT NOT NULL,
    collection_id TEXT NOT NULL,
    correct INTEGER NOT NULL,
    quality INTEGER NOT NULL,
    mode TEXT NOT NULL,
    created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_words_collection ON words(collection_id, created_at);
CREATE INDEX IF NOT EXISTS idx_schedules_due ON schedules(collection_id, next_review_at);
CREATE INDEX IF NOT EXISTS idx_session_records_collection ON session_records(collection_id);
`
