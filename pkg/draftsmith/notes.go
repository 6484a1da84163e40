package draftsmith

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateNote creates a new note via POST /notes/flat.
func (c *Client) CreateNote(ctx context.Context, title, content string) (*Note, error) {
	req := CreateNoteRequest{Title: title, Content: content}
	if err := checkRequest("create note", req); err != nil {
		return nil, err
	}

	var note Note
	if err := c.do(ctx, http.MethodPost, "/notes/flat", nil, req, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// GetNote fetches a single note by its ID.
func (c *Client) GetNote(ctx context.Context, id int) (*Note, error) {
	var note Note
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/notes/flat/%d", id), nil, nil, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// GetNoteWithoutContent fetches a note by its ID with the content field
// excluded.
func (c *Client) GetNoteWithoutContent(ctx context.Context, id int) (*NoteSummary, error) {
	query := url.Values{"exclude_content": {"true"}}

	var note NoteSummary
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/notes/flat/%d", id), query, nil, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// ListNotes fetches all notes.
func (c *Client) ListNotes(ctx context.Context) ([]Note, error) {
	var notes []Note
	if err := c.do(ctx, http.MethodGet, "/notes/flat", nil, nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// ListNotesWithoutContent fetches all notes with their content excluded.
func (c *Client) ListNotesWithoutContent(ctx context.Context) ([]NoteSummary, error) {
	query := url.Values{"exclude_content": {"true"}}

	var notes []NoteSummary
	if err := c.do(ctx, http.MethodGet, "/notes/flat", query, nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// UpdateNote updates an existing note via PUT /notes/flat/{id}. Unset fields
// are left untouched by the backend.
func (c *Client) UpdateNote(ctx context.Context, id int, req UpdateNoteRequest) (*Note, error) {
	var note Note
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/notes/flat/%d", id), nil, req, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// DeleteNote deletes a note by its ID.
func (c *Client) DeleteNote(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/notes/flat/%d", id), nil, nil, nil)
}

// AttachNoteToParent attaches a note as a child of another note.
// An empty hierarchyType defaults to "block".
func (c *Client) AttachNoteToParent(ctx context.Context, childID, parentID int, hierarchyType string) error {
	if hierarchyType == "" {
		hierarchyType = DefaultHierarchyType
	}
	req := AttachNoteRequest{
		ChildNoteID:   childID,
		ParentNoteID:  parentID,
		HierarchyType: hierarchyType,
	}
	if err := checkRequest("attach note", req); err != nil {
		return err
	}

	return c.do(ctx, http.MethodPost, "/notes/hierarchy/attach", nil, req, nil)
}

// DetachNoteFromParent detaches a note from its parent.
func (c *Client) DetachNoteFromParent(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/notes/hierarchy/detach/%d", id), nil, nil, nil)
}

// GetNoteHierarchyRelations fetches all parent-child links between notes.
func (c *Client) GetNoteHierarchyRelations(ctx context.Context) ([]NoteHierarchyRelation, error) {
	var relations []NoteHierarchyRelation
	if err := c.do(ctx, http.MethodGet, "/notes/hierarchy", nil, nil, &relations); err != nil {
		return nil, err
	}
	return relations, nil
}

// GetNotesTree fetches all notes as a nested tree.
func (c *Client) GetNotesTree(ctx context.Context) ([]TreeNote, error) {
	var tree []TreeNote
	if err := c.do(ctx, http.MethodGet, "/notes/tree", nil, nil, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// UpdateNotesTree replaces the entire notes tree structure via PUT /notes/tree.
func (c *Client) UpdateNotesTree(ctx context.Context, notes []TreeNote) error {
	return c.do(ctx, http.MethodPut, "/notes/tree", nil, notes, nil)
}
