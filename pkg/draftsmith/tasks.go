package draftsmith

import (
	"context"
	"fmt"
	"net/http"
)

// CreateTask creates a new task via POST /tasks. An empty status defaults
// to todo.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	if req.Status == "" {
		req.Status = TaskStatusTodo
	}
	if err := checkRequest("create task", req); err != nil {
		return nil, err
	}

	var task Task
	if err := c.do(ctx, http.MethodPost, "/tasks", nil, req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// GetTask fetches a single task by its ID.
func (c *Client) GetTask(ctx context.Context, id int) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tasks/%d", id), nil, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// ListTasks fetches all tasks.
func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateTask updates an existing task via PUT /tasks/{id}. Unset fields are
// omitted from the body so the backend leaves them untouched.
func (c *Client) UpdateTask(ctx context.Context, id int, req UpdateTaskRequest) (*Task, error) {
	if err := checkRequest("update task", req); err != nil {
		return nil, err
	}

	var task Task
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", id), nil, req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask deletes a task by its ID.
func (c *Client) DeleteTask(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, nil, nil)
}

// AttachTaskToParent attaches a task as a child of another task.
func (c *Client) AttachTaskToParent(ctx context.Context, childID, parentID int) error {
	req := AttachTaskRequest{ChildTaskID: childID, ParentTaskID: parentID}
	if err := checkRequest("attach task to parent", req); err != nil {
		return err
	}

	return c.do(ctx, http.MethodPost, "/tasks/hierarchy/attach", nil, req, nil)
}

// DetachTaskFromParent detaches a task from its parent.
func (c *Client) DetachTaskFromParent(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/hierarchy/detach/%d", id), nil, nil, nil)
}

// GetTaskHierarchyRelations fetches all parent-child links between tasks.
func (c *Client) GetTaskHierarchyRelations(ctx context.Context) ([]TaskHierarchyRelation, error) {
	var relations []TaskHierarchyRelation
	if err := c.do(ctx, http.MethodGet, "/tasks/hierarchy", nil, nil, &relations); err != nil {
		return nil, err
	}
	return relations, nil
}

// GetTasksTree fetches all tasks as a nested tree.
func (c *Client) GetTasksTree(ctx context.Context) ([]TreeTask, error) {
	var tree []TreeTask
	if err := c.do(ctx, http.MethodGet, "/tasks/tree", nil, nil, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}
