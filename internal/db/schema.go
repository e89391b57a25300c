package db

import (
	"database/sql"
)

// The two services own independent schemas, one database each.

const quizSchema = `
CREATE TABLE IF NOT EXISTS questions (
    id BIGSERIAL PRIMARY KEY,
    text TEXT NOT NULL,
    correct_answer_index INTEGER,
    explanation TEXT
);

CREATE TABLE IF NOT EXISTS alternatives (
    id BIGSERIAL PRIMARY KEY,
    question_id BIGINT NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
    position INTEGER NOT NULL DEFAULT 0,
    alternative TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_alternatives_question ON alternatives(question_id);
`

const userSchema = `
CREATE TABLE IF NOT EXISTS users (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    login TEXT NOT NULL UNIQUE,
    credential TEXT NOT NULL,
    session_token TEXT NOT NULL,
    score INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_users_session_token ON users(session_token);
`

func InitQuizSchema(db *sql.DB) error {
	_, err := db.Exec(quizSchema)
	return err
}

func InitUserSchema(db *sql.DB) error {
	_, err := db.Exec(userSchema)
	return err
}
