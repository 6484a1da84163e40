package draftsmith_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"draftsmith-go/pkg/draftsmith"
)

var testTime = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func noteTreeFixture() []draftsmith.TreeNote {
	content := "root content"
	return []draftsmith.TreeNote{
		{
			ID:      1,
			Title:   "Root",
			Content: &content,
			Children: []draftsmith.TreeNote{
				{
					ID:    2,
					Title: "Child",
					Children: []draftsmith.TreeNote{
						{ID: 3, Title: "Grandchild"},
					},
					Tags: []draftsmith.TreeTag{{ID: 9, Name: "project"}},
				},
				{ID: 5, Title: "Second child"},
			},
		},
		{ID: 4, Title: "Second root"},
	}
}

func TestNotes(t *testing.T) {
	backendHits := 0

	mux := http.NewServeMux()

	mux.HandleFunc("/notes/flat", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			var req draftsmith.CreateNoteRequest
			json.NewDecoder(r.Body).Decode(&req)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(draftsmith.Note{
				ID:         1,
				Title:      req.Title,
				Content:    req.Content,
				CreatedAt:  testTime,
				ModifiedAt: testTime,
			})
			return
		}
		if r.Method == http.MethodGet {
			if r.URL.Query().Get("exclude_content") == "true" {
				json.NewEncoder(w).Encode([]draftsmith.NoteSummary{
					{ID: 1, Title: "Meeting Notes", CreatedAt: testTime, ModifiedAt: testTime},
					{ID: 2, Title: "Shopping List", CreatedAt: testTime, ModifiedAt: testTime},
				})
				return
			}
			json.NewEncoder(w).Encode([]draftsmith.Note{
				{ID: 1, Title: "Meeting Notes", Content: "agenda", CreatedAt: testTime, ModifiedAt: testTime},
				{ID: 2, Title: "Shopping List", Content: "milk", CreatedAt: testTime, ModifiedAt: testTime},
			})
		}
	})

	mux.HandleFunc("/notes/flat/1", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			if r.URL.Query().Get("exclude_content") == "true" {
				json.NewEncoder(w).Encode(draftsmith.NoteSummary{
					ID: 1, Title: "Meeting Notes", CreatedAt: testTime, ModifiedAt: testTime,
				})
				return
			}
			json.NewEncoder(w).Encode(draftsmith.Note{
				ID: 1, Title: "Meeting Notes", Content: "agenda", CreatedAt: testTime, ModifiedAt: testTime,
			})
		case http.MethodPut:
			var body map[string]interface{}
			json.NewDecoder(r.Body).Decode(&body)
			if _, ok := body["content"]; ok {
				t.Errorf("unset content field should be omitted from update body, got %v", body)
			}
			title, _ := body["title"].(string)
			json.NewEncoder(w).Encode(draftsmith.Note{
				ID: 1, Title: title, Content: "agenda", CreatedAt: testTime, ModifiedAt: testTime,
			})
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	})

	mux.HandleFunc("/notes/flat/404", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "note not found"}`))
	})

	mux.HandleFunc("/notes/flat/99", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": `)) // truncated JSON
	})

	mux.HandleFunc("/notes/hierarchy", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]draftsmith.NoteHierarchyRelation{
			{ParentID: 1, ChildID: 2},
			{ParentID: 2, ChildID: 3},
		})
	})

	mux.HandleFunc("/notes/hierarchy/attach", func(w http.ResponseWriter, r *http.Request) {
		var req draftsmith.AttachNoteRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.HierarchyType != "block" {
			t.Errorf("expected default hierarchy type block, got %q", req.HierarchyType)
		}
		if req.ChildNoteID != 2 || req.ParentNoteID != 1 {
			t.Errorf("unexpected attach request: %+v", req)
		}
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("/notes/hierarchy/detach/2", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("/notes/tree", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			var notes []draftsmith.TreeNote
			if err := json.NewDecoder(r.Body).Decode(&notes); err != nil {
				t.Errorf("failed to decode tree body: %v", err)
			}
			if len(notes) != 2 || notes[0].ID != 1 {
				t.Errorf("unexpected tree body: %+v", notes)
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}
		json.NewEncoder(w).Encode(noteTreeFixture())
	})

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backendHits++
		mux.ServeHTTP(w, r)
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)
	ctx := context.Background()

	t.Run("CreateNote", func(t *testing.T) {
		note, err := client.CreateNote(ctx, "Meeting Notes", "agenda")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if note.ID != 1 || note.Title != "Meeting Notes" || note.Content != "agenda" {
			t.Errorf("unexpected note: %+v", note)
		}
	})

	t.Run("CreateNote empty title fails before the network", func(t *testing.T) {
		before := backendHits
		_, err := client.CreateNote(ctx, "", "body")
		if !errors.Is(err, draftsmith.ErrValidation) {
			t.Errorf("expected validation error, got %v", err)
		}
		if backendHits != before {
			t.Errorf("validation failure must not reach the backend")
		}
	})

	t.Run("GetNote", func(t *testing.T) {
		note, err := client.GetNote(ctx, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if note.ID != 1 || note.Content != "agenda" || !note.CreatedAt.Equal(testTime) {
			t.Errorf("unexpected note: %+v", note)
		}
	})

	t.Run("GetNoteWithoutContent", func(t *testing.T) {
		note, err := client.GetNoteWithoutContent(ctx, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if note.ID != 1 || note.Title != "Meeting Notes" {
			t.Errorf("unexpected note summary: %+v", note)
		}
	})

	t.Run("ListNotes", func(t *testing.T) {
		notes, err := client.ListNotes(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(notes) != 2 || notes[1].Title != "Shopping List" {
			t.Errorf("unexpected notes: %+v", notes)
		}
	})

	t.Run("ListNotesWithoutContent", func(t *testing.T) {
		notes, err := client.ListNotesWithoutContent(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(notes) != 2 {
			t.Errorf("unexpected notes: %+v", notes)
		}
	})

	t.Run("UpdateNote omits unset fields", func(t *testing.T) {
		title := "Renamed"
		note, err := client.UpdateNote(ctx, 1, draftsmith.UpdateNoteRequest{Title: &title})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if note.Title != "Renamed" {
			t.Errorf("unexpected note: %+v", note)
		}
	})

	t.Run("DeleteNote", func(t *testing.T) {
		if err := client.DeleteNote(ctx, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("AttachNoteToParent defaults hierarchy type", func(t *testing.T) {
		if err := client.AttachNoteToParent(ctx, 2, 1, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("DetachNoteFromParent", func(t *testing.T) {
		if err := client.DetachNoteFromParent(ctx, 2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("GetNoteHierarchyRelations", func(t *testing.T) {
		relations, err := client.GetNoteHierarchyRelations(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(relations) != 2 || relations[0].ParentID != 1 || relations[0].ChildID != 2 {
			t.Errorf("unexpected relations: %+v", relations)
		}
	})

	t.Run("GetNotesTree reconstructs links", func(t *testing.T) {
		tree, err := client.GetNotesTree(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		seen := map[int]int{}
		parents := map[int]int{}
		draftsmith.WalkNotesTree(tree, func(parent, node *draftsmith.TreeNote) {
			seen[node.ID]++
			if parent != nil {
				parents[node.ID] = parent.ID
			}
		})

		if len(seen) != 5 {
			t.Fatalf("expected 5 distinct nodes, got %d", len(seen))
		}
		for id, count := range seen {
			if count != 1 {
				t.Errorf("node %d visited %d times", id, count)
			}
		}
		want := map[int]int{2: 1, 5: 1, 3: 2}
		for child, parent := range want {
			if parents[child] != parent {
				t.Errorf("node %d: expected parent %d, got %d", child, parent, parents[child])
			}
		}
		if _, ok := parents[1]; ok {
			t.Errorf("root node 1 must have no parent")
		}
		if _, ok := parents[4]; ok {
			t.Errorf("root node 4 must have no parent")
		}
		if tree[0].Children[0].Tags[0].Name != "project" {
			t.Errorf("expected tag on child node, got %+v", tree[0].Children[0].Tags)
		}
	})

	t.Run("UpdateNotesTree", func(t *testing.T) {
		if err := client.UpdateNotesTree(ctx, noteTreeFixture()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("NotFound surfaces APIError", func(t *testing.T) {
		_, err := client.GetNote(ctx, 404)
		var apiErr *draftsmith.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusNotFound || apiErr.Message != "note not found" {
			t.Errorf("unexpected APIError: %+v", apiErr)
		}
		if !draftsmith.IsNotFound(err) {
			t.Errorf("IsNotFound should report true")
		}
	})

	t.Run("MalformedBody surfaces DecodeError", func(t *testing.T) {
		_, err := client.GetNote(ctx, 99)
		var decErr *draftsmith.DecodeError
		if !errors.As(err, &decErr) {
			t.Fatalf("expected DecodeError, got %v", err)
		}
	})

	t.Run("Server Down", func(t *testing.T) {
		badClient := newTestClient(t, "http://localhost:59999")
		_, err := badClient.GetNote(ctx, 1)
		if err == nil {
			t.Fatalf("expected connection refused error")
		}
		var apiErr *draftsmith.APIError
		var decErr *draftsmith.DecodeError
		if errors.As(err, &apiErr) || errors.As(err, &decErr) {
			t.Errorf("transport failure must not masquerade as API or decode error: %v", err)
		}
	})
}

func TestNoteRoundTrip(t *testing.T) {
	in := draftsmith.Note{
		ID: 12, Title: "Round", Content: "trip",
		CreatedAt: testTime, ModifiedAt: testTime.Add(time.Hour),
	}
	raw, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out draftsmith.Note
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("round trip mismatch: %+v != %+v", out, in)
	}
}
