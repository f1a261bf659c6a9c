package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), MemoryDSN)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is covered by TestOpenFileUsesWAL.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpenFileUsesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.db")
	s, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"llm_request_events", "turn_events", "global_sequence"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("table %s: %v", table, err)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestLLMEventsAppendQueryGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, purpose := range []string{"crop-doctor", "crop-doctor", "other"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "gemini-2.5-flash",
			Model:        "gemini-2.5-flash",
			Purpose:      purpose,
			InputTokens:  100,
			OutputTokens: 40,
			LatencyMs:    250,
			Success:      true,
			RequestBody:  "[user]\nhello",
			ResponseBody: `{"type":"CONVERSATION"}`,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	if all[0].Sequence < all[1].Sequence {
		t.Error("events should be newest first")
	}
	if all[0].Timestamp.IsZero() {
		t.Error("timestamp not scanned")
	}

	doctor, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "crop-doctor", Limit: 1})
	if err != nil {
		t.Fatalf("query purpose: %v", err)
	}
	if len(doctor) != 1 || doctor[0].Purpose != "crop-doctor" {
		t.Fatalf("purpose filter = %+v", doctor)
	}

	got, err := repo.GetLLMEvent(ctx, all[2].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.RequestBody != "[user]\nhello" {
		t.Fatalf("get = %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Model: "gemini-2.5-flash", Purpose: "crop-doctor", InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: true},
		{Model: "gemini-2.5-flash", Purpose: "crop-doctor", InputTokens: 20, OutputTokens: 5, LatencyMs: 300, Success: true},
		{Model: "gpt-4o-mini", Purpose: "ask", InputTokens: 7, OutputTokens: 3, LatencyMs: 50},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("len = %d, want 2", len(byPurpose))
	}
	top := byPurpose[0]
	if top.Purpose != "crop-doctor" || top.Calls != 2 || top.InputTokens != 30 || top.AvgLatencyMs != 200 {
		t.Errorf("top purpose = %+v", top)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("by model: %v", err)
	}
	if len(byModel) != 2 || byModel[0].Model != "gemini-2.5-flash" {
		t.Errorf("by model = %+v", byModel)
	}
}

func TestTurnEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	turns := []TurnEventData{
		{Language: "English", InputKind: "image", Outcome: OutcomeOK, ResponseType: "DIAGNOSIS", DiseaseLabel: "Tomato___Early_blight", Grounded: true},
		{Language: "English", InputKind: "text", Outcome: OutcomeTransport, ResponseType: "CONVERSATION", ErrorMessage: "timeout"},
	}
	for _, d := range turns {
		if err := repo.AppendTurn(ctx, d); err != nil {
			t.Fatalf("append turn: %v", err)
		}
	}

	all, err := repo.QueryTurns(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2", len(all))
	}
	if all[0].Outcome != OutcomeTransport {
		t.Errorf("newest outcome = %q, want transport", all[0].Outcome)
	}

	ok, err := repo.QueryTurns(ctx, QueryOpts{Outcome: OutcomeOK})
	if err != nil {
		t.Fatalf("query ok: %v", err)
	}
	if len(ok) != 1 || !ok[0].Grounded || ok[0].DiseaseLabel != "Tomato___Early_blight" {
		t.Errorf("ok turns = %+v", ok)
	}
}

func TestSequenceSharedAcrossTables(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Model: "m", Purpose: "p"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendTurn(ctx, TurnEventData{Language: "English", InputKind: "text", Outcome: OutcomeOK, ResponseType: "CONVERSATION"}); err != nil {
		t.Fatal(err)
	}

	llmEvents, _ := repo.QueryLLMEvents(ctx, QueryOpts{})
	turnEvents, _ := repo.QueryTurns(ctx, QueryOpts{})
	if len(llmEvents) != 1 || len(turnEvents) != 1 {
		t.Fatalf("got %d llm, %d turn events", len(llmEvents), len(turnEvents))
	}
	if turnEvents[0].Sequence <= llmEvents[0].Sequence {
		t.Errorf("turn sequence %d should follow llm sequence %d",
			turnEvents[0].Sequence, llmEvents[0].Sequence)
	}
}
