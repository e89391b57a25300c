package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ad/go-quiz-backend/internal/db"
	"github.com/ad/go-quiz-backend/internal/models"
	"github.com/ad/go-quiz-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	_ "modernc.org/sqlite"
)

const quizTestSchema = `
CREATE TABLE questions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    text TEXT NOT NULL,
    correct_answer_index INTEGER,
    explanation TEXT
);

CREATE TABLE alternatives (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    question_id INTEGER NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
    position INTEGER NOT NULL DEFAULT 0,
    alternative TEXT NOT NULL
);
`

func setupQuizApp(t *testing.T) *fiber.App {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if _, err := sqlDB.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		t.Fatal(err)
	}
	if _, err := sqlDB.Exec(quizTestSchema); err != nil {
		t.Fatal(err)
	}

	repo := db.NewQuestionRepository(db.NewGateway(sqlDB))
	app := fiber.New()
	NewQuizHandler(services.NewQuizService(repo)).Register(app)
	return app
}

func TestQuestionLifecycleOverHTTP(t *testing.T) {
	app := setupQuizApp(t)

	created := postJSON(t, app, "/questions", []map[string]any{{
		"text":               "2+2?",
		"correctAnswerIndex": 1,
		"explanation":        "basic arithmetic",
		"alternatives":       []string{"3", "4", "5"},
	}})
	if created.StatusCode != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", created.StatusCode)
	}

	var createdBody []models.Question
	decodeJSON(t, created, &createdBody)
	if len(createdBody) != 1 || createdBody[0].ID == 0 {
		t.Fatalf("Expected one created question with an id, got %+v", createdBody)
	}

	list, err := app.Test(httptest.NewRequest(http.MethodGet, "/questions", nil))
	if err != nil {
		t.Fatal(err)
	}
	if list.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", list.StatusCode)
	}
	var listed []models.Question
	decodeJSON(t, list, &listed)
	if len(listed) != 1 {
		t.Fatalf("Expected 1 question listed, got %d", len(listed))
	}
	for i, want := range []string{"3", "4", "5"} {
		if listed[0].Alternatives[i] != want {
			t.Errorf("Alternative %d: expected %q, got %q", i, want, listed[0].Alternatives[i])
		}
	}

	del := httptest.NewRequest(http.MethodDelete, "/questions/1", nil)
	delResp, err := app.Test(del)
	if err != nil {
		t.Fatal(err)
	}
	if delResp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 on delete, got %d", delResp.StatusCode)
	}

	list, err = app.Test(httptest.NewRequest(http.MethodGet, "/questions", nil))
	if err != nil {
		t.Fatal(err)
	}
	listed = nil
	decodeJSON(t, list, &listed)
	if len(listed) != 0 {
		t.Errorf("Expected empty listing after delete, got %d", len(listed))
	}
}

func TestCreateQuestionBadRequests(t *testing.T) {
	app := setupQuizApp(t)

	empty := postJSON(t, app, "/questions", []map[string]any{})
	if empty.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400 for empty payload list, got %d", empty.StatusCode)
	}

	outOfRange := postJSON(t, app, "/questions", []map[string]any{{
		"text":               "2+2?",
		"correctAnswerIndex": 7,
		"alternatives":       []string{"3", "4"},
	}})
	if outOfRange.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400 for out-of-range answer index, got %d", outOfRange.StatusCode)
	}
}

func TestDeleteQuestionBadID(t *testing.T) {
	app := setupQuizApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/questions/abc", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed id, got %d", resp.StatusCode)
	}
}
