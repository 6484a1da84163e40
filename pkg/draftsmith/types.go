package draftsmith

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"draftsmith-go/pkg/log"
)

// Doer executes a single HTTP request. *http.Client satisfies it; tests can
// substitute a fake backend.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds Draftsmith client configuration
type Config struct {
	BaseURL     string
	AccessToken string             // static bearer token, sent as-is
	TokenSource oauth2.TokenSource // takes precedence over AccessToken when set
	HTTPClient  Doer
	Timeout     time.Duration // applied only when HTTPClient is nil
	RateLimit   *rate.Limiter // 0/nil disables client-side throttling
	Logger      log.Logger
}

// Validate validates the configuration and fills in defaults.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("draftsmith: invalid base URL %q", c.BaseURL)
	}
	if c.HTTPClient == nil {
		timeout := c.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		c.HTTPClient = &http.Client{Timeout: timeout}
	}
	if c.Logger == nil {
		c.Logger = log.NewNoop()
	}
	return nil
}

// ---- Notes ----

// Note is a Draftsmith note as returned by the flat endpoints.
type Note struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// NoteSummary is a note with the content field excluded
// (exclude_content=true views).
type NoteSummary struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// CreateNoteRequest is the body for POST /notes/flat.
type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

// UpdateNoteRequest is the body for PUT /notes/flat/{id}. Unset fields are
// omitted so the backend leaves them untouched.
type UpdateNoteRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// AttachNoteRequest is the body for POST /notes/hierarchy/attach.
type AttachNoteRequest struct {
	ChildNoteID   int    `json:"child_note_id" validate:"required"`
	ParentNoteID  int    `json:"parent_note_id" validate:"required"`
	HierarchyType string `json:"hierarchy_type" validate:"required"`
}

// NoteHierarchyRelation is a single parent-child link between notes.
type NoteHierarchyRelation struct {
	ParentID int `json:"parent_id"`
	ChildID  int `json:"child_id"`
}

// TreeTag is the slim tag shape embedded in tree note responses.
type TreeTag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TreeNote is a note in the nested /notes/tree response. Children recurse.
type TreeNote struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Content       *string    `json:"content,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	ModifiedAt    *time.Time `json:"modified_at,omitempty"`
	HierarchyType *string    `json:"hierarchy_type,omitempty"`
	Children      []TreeNote `json:"children,omitempty"`
	Tags          []TreeTag  `json:"tags,omitempty"`
}

// ---- Tags ----

// Tag is a Draftsmith tag.
type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CreateTagRequest is the body for POST /tags and PUT /tags/{id}.
type CreateTagRequest struct {
	Name string `json:"name" validate:"required"`
}

// AttachTagRequest is the body for POST /tags/notes.
type AttachTagRequest struct {
	NoteID int `json:"note_id" validate:"required"`
	TagID  int `json:"tag_id" validate:"required"`
}

// NoteTagRelation is a single note-tag association.
type NoteTagRelation struct {
	NoteID int `json:"note_id"`
	TagID  int `json:"tag_id"`
}

// TagHierarchyRelation is a single parent-child link between tags.
type TagHierarchyRelation struct {
	ParentID int `json:"parent_id"`
	ChildID  int `json:"child_id"`
}

// AttachTagHierarchyRequest is the body for POST /tags/hierarchy/attach.
type AttachTagHierarchyRequest struct {
	ParentID int `json:"parent_id" validate:"required"`
	ChildID  int `json:"child_id" validate:"required"`
}

// TreeTagWithNotes is a tag in the nested /tags/tree response, carrying both
// child tags and the notes tagged with it.
type TreeTagWithNotes struct {
	ID       int                `json:"id"`
	Name     string             `json:"name"`
	Children []TreeTagWithNotes `json:"children,omitempty"`
	Notes    []TreeNote         `json:"notes,omitempty"`
}

// ---- Tasks ----

// TaskStatus is the enumerated state of a task.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// Valid reports whether s is a status the backend accepts.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone, TaskStatusCancelled:
		return true
	}
	return false
}

// Priority bounds enforced on create/update requests.
const (
	MinPriority = 1
	MaxPriority = 5
)

// Task is a Draftsmith task.
type Task struct {
	ID               int        `json:"id"`
	NoteID           *int       `json:"note_id"`
	Status           TaskStatus `json:"status"`
	EffortEstimate   *float64   `json:"effort_estimate"`
	ActualEffort     *float64   `json:"actual_effort"`
	Deadline         *time.Time `json:"deadline"`
	Priority         *int       `json:"priority"`
	CreatedAt        time.Time  `json:"created_at"`
	ModifiedAt       time.Time  `json:"modified_at"`
	AllDay           bool       `json:"all_day"`
	GoalRelationship *string    `json:"goal_relationship"`
}

// CreateTaskRequest is the body for POST /tasks. Status defaults to todo.
type CreateTaskRequest struct {
	NoteID           *int       `json:"note_id,omitempty"`
	Status           TaskStatus `json:"status" validate:"oneof=todo in_progress done cancelled"`
	EffortEstimate   *float64   `json:"effort_estimate,omitempty"`
	ActualEffort     *float64   `json:"actual_effort,omitempty"`
	Deadline         *time.Time `json:"deadline,omitempty"`
	Priority         *int       `json:"priority,omitempty" validate:"omitempty,min=1,max=5"`
	AllDay           bool       `json:"all_day"`
	GoalRelationship *string    `json:"goal_relationship,omitempty"`
}

// UpdateTaskRequest is the body for PUT /tasks/{id}. Unset fields are omitted
// so the backend leaves them untouched.
type UpdateTaskRequest struct {
	NoteID           *int        `json:"note_id,omitempty"`
	Status           *TaskStatus `json:"status,omitempty" validate:"omitempty,oneof=todo in_progress done cancelled"`
	EffortEstimate   *float64    `json:"effort_estimate,omitempty"`
	ActualEffort     *float64    `json:"actual_effort,omitempty"`
	Deadline         *time.Time  `json:"deadline,omitempty"`
	Priority         *int        `json:"priority,omitempty" validate:"omitempty,min=1,max=5"`
	AllDay           *bool       `json:"all_day,omitempty"`
	GoalRelationship *string     `json:"goal_relationship,omitempty"`
}

// AttachTaskRequest is the body for POST /tasks/hierarchy/attach.
type AttachTaskRequest struct {
	ChildTaskID  int `json:"child_task_id" validate:"required"`
	ParentTaskID int `json:"parent_task_id" validate:"required"`
}

// TaskHierarchyRelation is a single parent-child link between tasks.
type TaskHierarchyRelation struct {
	ParentID int `json:"parent_id"`
	ChildID  int `json:"child_id"`
}

// TreeTask is a task in the nested /tasks/tree response. Children recurse.
type TreeTask struct {
	ID               int        `json:"id"`
	NoteID           *int       `json:"note_id"`
	Status           TaskStatus `json:"status"`
	EffortEstimate   *float64   `json:"effort_estimate"`
	ActualEffort     *float64   `json:"actual_effort"`
	Deadline         *time.Time `json:"deadline"`
	Priority         *int       `json:"priority"`
	CreatedAt        time.Time  `json:"created_at"`
	ModifiedAt       time.Time  `json:"modified_at"`
	AllDay           bool       `json:"all_day"`
	GoalRelationship *string    `json:"goal_relationship"`
	Children         []TreeTask `json:"children,omitempty"`
}
