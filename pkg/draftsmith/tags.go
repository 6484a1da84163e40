package draftsmith

import (
	"context"
	"fmt"
	"net/http"
)

// CreateTag creates a new tag via POST /tags.
func (c *Client) CreateTag(ctx context.Context, name string) (*Tag, error) {
	req := CreateTagRequest{Name: name}
	if err := checkRequest("create tag", req); err != nil {
		return nil, err
	}

	var tag Tag
	if err := c.do(ctx, http.MethodPost, "/tags", nil, req, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetTag fetches a single tag by its ID.
func (c *Client) GetTag(ctx context.Context, id int) (*Tag, error) {
	var tag Tag
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tags/%d", id), nil, nil, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// ListTags fetches all tags.
func (c *Client) ListTags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	if err := c.do(ctx, http.MethodGet, "/tags", nil, nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// UpdateTag renames an existing tag via PUT /tags/{id}.
func (c *Client) UpdateTag(ctx context.Context, id int, name string) (*Tag, error) {
	req := CreateTagRequest{Name: name}
	if err := checkRequest("update tag", req); err != nil {
		return nil, err
	}

	var tag Tag
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tags/%d", id), nil, req, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// DeleteTag deletes a tag by its ID.
func (c *Client) DeleteTag(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tags/%d", id), nil, nil, nil)
}

// AttachTagToNote attaches a tag to a note.
func (c *Client) AttachTagToNote(ctx context.Context, noteID, tagID int) error {
	req := AttachTagRequest{NoteID: noteID, TagID: tagID}
	if err := checkRequest("attach tag to note", req); err != nil {
		return err
	}

	return c.do(ctx, http.MethodPost, "/tags/notes", nil, req, nil)
}

// DetachTagFromNote detaches a tag from a note.
func (c *Client) DetachTagFromNote(ctx context.Context, noteID, tagID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tags/notes/%d/%d", noteID, tagID), nil, nil, nil)
}

// GetNoteTagRelations fetches all note-tag associations.
func (c *Client) GetNoteTagRelations(ctx context.Context) ([]NoteTagRelation, error) {
	var relations []NoteTagRelation
	if err := c.do(ctx, http.MethodGet, "/tags/notes", nil, nil, &relations); err != nil {
		return nil, err
	}
	return relations, nil
}

// AttachTagToParent attaches a tag as a child of another tag.
func (c *Client) AttachTagToParent(ctx context.Context, childID, parentID int) error {
	req := AttachTagHierarchyRequest{ParentID: parentID, ChildID: childID}
	if err := checkRequest("attach tag to parent", req); err != nil {
		return err
	}

	return c.do(ctx, http.MethodPost, "/tags/hierarchy/attach", nil, req, nil)
}

// DetachTagFromParent detaches a tag from its parent.
func (c *Client) DetachTagFromParent(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tags/hierarchy/detach/%d", id), nil, nil, nil)
}

// GetTagHierarchyRelations fetches all parent-child links between tags.
func (c *Client) GetTagHierarchyRelations(ctx context.Context) ([]TagHierarchyRelation, error) {
	var relations []TagHierarchyRelation
	if err := c.do(ctx, http.MethodGet, "/tags/hierarchy", nil, nil, &relations); err != nil {
		return nil, err
	}
	return relations, nil
}

// GetTagsTree fetches all tags as a nested tree, with the notes tagged by
// each tag.
func (c *Client) GetTagsTree(ctx context.Context) ([]TreeTagWithNotes, error) {
	var tree []TreeTagWithNotes
	if err := c.do(ctx, http.MethodGet, "/tags/tree", nil, nil, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}
