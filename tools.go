// tools.go registers the MCP tools. Each handler is a thin adapter over one
// TaskStore operation; no task state lives here.
package main

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// toolHandlers binds the tool surface to one session's store.
type toolHandlers struct {
	store  *TaskStore
	logger *slog.Logger
}

// newServer builds an MCP server with every task tool registered.
func newServer(store *TaskStore, logger *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "gotodo", Version: version}, nil)
	h := &toolHandlers{store: store, logger: logger}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_task",
		Description: "Add a task to the front of the list. Empty titles are rejected without error (added=false).",
	}, h.addTask)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "toggle_task",
		Description: "Flip a task between active and completed. Unknown IDs are ignored (toggled=false).",
	}, h.toggleTask)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_task",
		Description: "Permanently remove a task. Unknown IDs are ignored (deleted=false).",
	}, h.deleteTask)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_tasks",
		Description: "List tasks newest first, optionally filtered to active or completed, with counts for the whole list.",
	}, h.listTasks)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_task",
		Description: "Look up specific tasks by ID.",
	}, h.getTask)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "count_tasks",
		Description: "Return active, completed and total counts.",
	}, h.countTasks)

	return server
}

func (h *toolHandlers) addTask(ctx context.Context, req *mcp.CallToolRequest, args AddTaskArgs) (*mcp.CallToolResult, AddTaskOutput, error) {
	task, ok := h.store.Add(args.Title, args.Description)
	if !ok {
		h.logger.Debug("add rejected: empty title")
		return nil, AddTaskOutput{Counts: h.store.Counts()}, nil
	}
	h.logger.Debug("task added", "task_id", task.ID)
	view := viewOf(task)
	return nil, AddTaskOutput{Added: true, Task: &view, Counts: h.store.Counts()}, nil
}

func (h *toolHandlers) toggleTask(ctx context.Context, req *mcp.CallToolRequest, args ToggleTaskArgs) (*mcp.CallToolResult, ToggleTaskOutput, error) {
	if !h.store.Toggle(args.TaskID) {
		h.logger.Debug("toggle ignored: no such task", "task_id", args.TaskID)
		return nil, ToggleTaskOutput{Counts: h.store.Counts()}, nil
	}
	out := ToggleTaskOutput{Toggled: true, Counts: h.store.Counts()}
	// A concurrent delete can remove the task between Toggle and Get.
	if task, ok := h.store.Get(args.TaskID); ok {
		view := viewOf(task)
		out.Task = &view
		h.logger.Debug("task toggled", "task_id", task.ID, "completed", task.Completed)
	}
	return nil, out, nil
}

func (h *toolHandlers) deleteTask(ctx context.Context, req *mcp.CallToolRequest, args DeleteTaskArgs) (*mcp.CallToolResult, DeleteTaskOutput, error) {
	deleted := h.store.Delete(args.TaskID)
	if deleted {
		h.logger.Debug("task deleted", "task_id", args.TaskID)
	} else {
		h.logger.Debug("delete ignored: no such task", "task_id", args.TaskID)
	}
	return nil, DeleteTaskOutput{Deleted: deleted, Counts: h.store.Counts()}, nil
}

func (h *toolHandlers) listTasks(ctx context.Context, req *mcp.CallToolRequest, args ListTasksArgs) (*mcp.CallToolResult, ListTasksOutput, error) {
	status, err := ParseStatus(args.Status)
	if err != nil {
		return nil, ListTasksOutput{}, err
	}
	return nil, ListTasksOutput{
		Status: status,
		Tasks:  viewsOf(h.store.ListFiltered(status)),
		Counts: h.store.Counts(),
	}, nil
}

func (h *toolHandlers) getTask(ctx context.Context, req *mcp.CallToolRequest, args GetTaskArgs) (*mcp.CallToolResult, GetTaskOutput, error) {
	results := make([]TaskResult, 0, len(args.TaskIDs))
	for _, id := range args.TaskIDs {
		task, ok := h.store.Get(id)
		if !ok {
			results = append(results, TaskResult{ID: id, Error: "task not found"})
			continue
		}
		view := viewOf(task)
		results = append(results, TaskResult{ID: id, Found: true, Task: &view})
	}
	return nil, GetTaskOutput{Results: results}, nil
}

func (h *toolHandlers) countTasks(ctx context.Context, req *mcp.CallToolRequest, args CountTasksArgs) (*mcp.CallToolResult, CountTasksOutput, error) {
	return nil, CountTasksOutput{Counts: h.store.Counts()}, nil
}
