package http

import (
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/service"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

type TasksHandler struct {
	TaskService *service.TaskService
}

func toTaskResponse(t domain.Task) tasksdk.Task {
	return tasksdk.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Owner:       t.Owner,
		CreatedAt:   t.CreatedAt.UTC(),
		UpdatedAt:   t.UpdatedAt.UTC(),
	}
}

// owner returns the authenticated caller set by AuthnMiddleware.
func owner(w http.ResponseWriter, r *http.Request) (string, bool) {
	name, ok := httpx.UserNameFromContext(r.Context())
	if !ok {
		tasksdk.ErrAccessDenied.WriteError(w)
	}
	return name, ok
}

// HandleList returns the caller's tasks.
//
//	@Summary	List tasks
//	@Tags		Tasks
//	@Security	TokenAuth
//	@Produce	json
//	@Success	200	{array}		tasksdk.Task
//	@Failure	400	{object}	tasksdk.APIError	"Invalid Token"
//	@Failure	401	{object}	tasksdk.APIError	"Access Denied"
//	@Failure	500	{object}	tasksdk.APIError	"Error fetching tasks"
//	@Router		/tasks [get].
func (h *TasksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	name, ok := owner(w, r)
	if !ok {
		return
	}

	tasks, err := h.TaskService.List(r.Context(), name)
	if err != nil {
		writeServiceError(w, r, err, "Error fetching tasks")
		return
	}

	out := make([]tasksdk.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate adds a task owned by the caller.
//
//	@Summary	Create task
//	@Tags		Tasks
//	@Security	TokenAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		tasksdk.CreateTaskRequest	true	"title is required"
//	@Success	201		{object}	tasksdk.Task
//	@Failure	400		{object}	tasksdk.APIError	"Invalid input or Invalid Token"
//	@Failure	401		{object}	tasksdk.APIError	"Access Denied"
//	@Failure	500		{object}	tasksdk.APIError	"Error creating task"
//	@Router		/tasks [post].
func (h *TasksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	name, ok := owner(w, r)
	if !ok {
		return
	}

	var req tasksdk.CreateTaskRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeServiceError(w, r, err, "Error creating task")
		return
	}

	task, err := h.TaskService.Create(r.Context(), name, req.Title, req.Description)
	if err != nil {
		writeServiceError(w, r, err, "Error creating task")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toTaskResponse(task))
}

// HandleMarkDone completes one of the caller's tasks.
//
//	@Summary	Mark task done
//	@Tags		Tasks
//	@Security	TokenAuth
//	@Produce	json
//	@Param		id	path		string	true	"task id"
//	@Success	200	{object}	tasksdk.Task
//	@Failure	400	{object}	tasksdk.APIError	"Invalid Token"
//	@Failure	401	{object}	tasksdk.APIError	"Access Denied"
//	@Failure	404	{object}	tasksdk.APIError	"Task not found"
//	@Failure	500	{object}	tasksdk.APIError	"Error updating task"
//	@Router		/tasks/{id} [put].
func (h *TasksHandler) HandleMarkDone(w http.ResponseWriter, r *http.Request) {
	name, ok := owner(w, r)
	if !ok {
		return
	}

	task, err := h.TaskService.MarkDone(r.Context(), name, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "Error updating task")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTaskResponse(task))
}

// HandleDelete removes one of the caller's tasks.
//
//	@Summary	Delete task
//	@Tags		Tasks
//	@Security	TokenAuth
//	@Produce	json
//	@Param		id	path		string	true	"task id"
//	@Success	200	{object}	tasksdk.MessageResponse	"Task deleted successfully"
//	@Failure	400	{object}	tasksdk.APIError		"Invalid Token"
//	@Failure	401	{object}	tasksdk.APIError		"Access Denied"
//	@Failure	404	{object}	tasksdk.APIError		"Task not found"
//	@Failure	500	{object}	tasksdk.APIError		"Error deleting task"
//	@Router		/tasks/{id} [delete].
func (h *TasksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	name, ok := owner(w, r)
	if !ok {
		return
	}

	if err := h.TaskService.Delete(r.Context(), name, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "Error deleting task")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.MessageResponse{Message: "Task deleted successfully"})
}
