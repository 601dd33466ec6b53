package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func ptr[T any](v T) *T { return &v }

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
	if s.Dialect() != "sqlite3" {
		t.Errorf("dialect = %q, want sqlite3", s.Dialect())
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL
	}
	for _, tt := range tests {
		var got string
		if err := s.DB().QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestIsPostgres(t *testing.T) {
	cases := []struct {
		dsn  string
		want bool
	}{
		{"postgres://u:p@localhost/dayne", true},
		{"postgresql://localhost/dayne", true},
		{"/home/u/.local/share/dayne.db", false},
		{"file::memory:?cache=shared", false},
	}
	for _, c := range cases {
		if got := IsPostgres(c.dsn); got != c.want {
			t.Errorf("IsPostgres(%q) = %v, want %v", c.dsn, got, c.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if got != want {
			t.Errorf("next = %d, want %d", got, want)
		}
	}

	// Re-seeding must not reset the counter.
	if _, err := newSequenceCounter(s.DB()); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	got, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if got != 4 {
		t.Errorf("after reseed next = %d, want 4", got)
	}
}

func TestUploadLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.UploadRepo()
	ctx := context.Background()

	id, err := repo.CreateUpload(ctx, UploadData{
		Name:     "biology.pdf",
		UserID:   ptr("user-1"),
		FileSize: ptr(int64(2048)),
		FileType: ptr("application/pdf"),
		BlobKey:  ptr("user-1/1700000000000_biology.pdf"),
	})
	if err != nil {
		t.Fatalf("create upload: %v", err)
	}

	u, err := repo.GetUpload(ctx, id)
	if err != nil {
		t.Fatalf("get upload: %v", err)
	}
	if u == nil || u.Processed {
		t.Fatalf("expected unprocessed upload, got %+v", u)
	}

	qs := []QuestionData{
		{Text: "What is ATP?", Answer: "Energy carrier", Options: []string{"Energy carrier", "Enzyme", "Lipid", "Sugar"}, Type: "multiple_choice"},
		{Text: "Where does photosynthesis happen?", Answer: "Chloroplast", Options: []string{"Chloroplast", "Nucleus"}},
	}
	if err := repo.AddQuestions(ctx, id, qs); err != nil {
		t.Fatalf("add questions: %v", err)
	}
	if err := repo.MarkProcessed(ctx, id); err != nil {
		t.Fatalf("mark processed: %v", err)
	}

	u, err = repo.GetUpload(ctx, id)
	if err != nil {
		t.Fatalf("get upload: %v", err)
	}
	if !u.Processed {
		t.Error("expected processed = true")
	}
	if u.QuestionCount != 2 {
		t.Errorf("question count = %d, want 2", u.QuestionCount)
	}
	if u.UserID != "user-1" || u.FileSize != 2048 || u.FileType != "application/pdf" {
		t.Errorf("unexpected upload fields: %+v", u)
	}

	stored, err := repo.UploadQuestions(ctx, id)
	if err != nil {
		t.Fatalf("upload questions: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("got %d questions, want 2", len(stored))
	}
	if stored[0].Text != "What is ATP?" || stored[1].Answer != "Chloroplast" {
		t.Errorf("questions out of order: %+v", stored)
	}
	if stored[1].Type != "multiple_choice" || stored[1].Difficulty != "medium" {
		t.Errorf("defaults not applied: %+v", stored[1])
	}
	if len(stored[0].Options) != 4 {
		t.Errorf("options = %v", stored[0].Options)
	}
}

func TestGetUploadMissing(t *testing.T) {
	s := openTestStore(t)
	u, err := s.UploadRepo().GetUpload(context.Background(), 999)
	if err != nil {
		t.Fatalf("get upload: %v", err)
	}
	if u != nil {
		t.Fatalf("expected nil, got %+v", u)
	}
}

func TestListUploadsScopedToUser(t *testing.T) {
	s := openTestStore(t)
	repo := s.UploadRepo()
	ctx := context.Background()

	for _, name := range []string{"a.txt", "b.txt"} {
		if _, err := repo.CreateUpload(ctx, UploadData{Name: name, UserID: ptr("user-1")}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if _, err := repo.CreateUpload(ctx, UploadData{Name: "other.txt", UserID: ptr("user-2")}); err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := repo.ListUploads(ctx, "user-1", 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d uploads, want 2", len(list))
	}
	if list[0].Name != "b.txt" {
		t.Errorf("newest first: got %q", list[0].Name)
	}
}

func TestStudySessions(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	uploadID, err := s.UploadRepo().CreateUpload(ctx, UploadData{Name: "a.txt", UserID: ptr("user-1")})
	if err != nil {
		t.Fatalf("create upload: %v", err)
	}

	repo := s.StudySessionRepo()
	if _, err := repo.RecordStudySession(ctx, StudySessionData{
		UserID: "user-1", UploadID: &uploadID, Mode: "test", Score: ptr(2), Total: 3, TimeSpentSecs: 42,
	}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := repo.RecordStudySession(ctx, StudySessionData{UserID: "user-1", Mode: "flashcards", Total: 5}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := repo.RecordStudySession(ctx, StudySessionData{UserID: "user-1", Mode: "quiz", Total: 1}); err == nil {
		t.Fatal("expected error for unknown mode")
	}

	list, err := repo.ListStudySessions(ctx, "user-1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d sessions, want 2", len(list))
	}
	var graded *StudySession
	for i := range list {
		if list[i].Mode == "test" {
			graded = &list[i]
		}
	}
	if graded == nil || graded.Score == nil || *graded.Score != 2 || graded.Total != 3 {
		t.Fatalf("graded session not stored correctly: %+v", graded)
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-3.5-turbo", Purpose: "questions", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true, RequestBody: "[user]\nhi", ResponseBody: "{}"},
		{Provider: "openai", Model: "gpt-3.5-turbo", Purpose: "questions", InputTokens: 10, LatencyMs: 100, Success: false, ErrorMessage: "429"},
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "other", InputTokens: 5, OutputTokens: 5, LatencyMs: 50, Success: true},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	list, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("got %d events, want 3", len(list))
	}
	if list[0].Purpose != "other" || list[0].Sequence <= list[1].Sequence {
		t.Errorf("expected newest first, got %+v", list[0])
	}

	filtered, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "questions"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(filtered) != 2 {
		t.Errorf("filtered = %d, want 2", len(filtered))
	}

	ev, err := repo.GetLLMEvent(ctx, list[2].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ev == nil || ev.RequestBody != "[user]\nhi" || ev.ResponseBody != "{}" {
		t.Errorf("unexpected event: %+v", ev)
	}
	if missing, _ := repo.GetLLMEvent(ctx, 12345); missing != nil {
		t.Error("expected nil for missing event")
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	q := byPurpose[1]
	if q.Purpose != "questions" || q.Calls != 2 || q.Failures != 1 || q.InputTokens != 110 || q.AvgLatencyMs != 150 {
		t.Errorf("unexpected usage row: %+v", q)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Errorf("models = %d, want 2", len(byModel))
	}
}
