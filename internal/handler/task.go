package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ticklist/ticklist/internal/ctxkeys"
	"github.com/ticklist/ticklist/internal/model"
	"github.com/ticklist/ticklist/internal/repository"
	"github.com/ticklist/ticklist/internal/service"
	"github.com/ticklist/ticklist/internal/ui"
)

type taskHandler struct {
	taskService *service.TaskService
}

func NewTaskHandler(taskService *service.TaskService) *taskHandler {
	return &taskHandler{
		taskService: taskService,
	}
}

func (h *taskHandler) ListPage(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	tasks, err := h.taskService.Tasks(r.Context(), user.ID)
	if err != nil {
		slog.Error("failed to list tasks", "error", err, "user_id", user.ID)
		serverError(w, r)
		return
	}

	ui.Render(w, r, "tasks.html", ui.Data{Tasks: tasks})
}

func (h *taskHandler) AddPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, "task_form.html", ui.Data{
		Task:       &model.Task{},
		FormAction: "/add",
	})
}

func (h *taskHandler) Add(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	title := r.FormValue("title")
	status := parseStatus(r.FormValue("status"))

	_, err := h.taskService.Add(r.Context(), user.ID, title, status)
	if err != nil {
		ui.Render(w, r, "task_form.html", ui.Data{
			Task:       &model.Task{Title: title, Status: status},
			FormAction: "/add",
			Error:      err.Error(),
		})
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *taskHandler) ChangePage(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	taskID, err := parseID(r)
	if err != nil {
		notFound(w, r)
		return
	}

	task, err := h.taskService.Task(r.Context(), user.ID, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			notFound(w, r)
			return
		}
		slog.Error("failed to get task", "error", err, "user_id", user.ID, "task_id", taskID)
		serverError(w, r)
		return
	}

	ui.Render(w, r, "task_form.html", ui.Data{
		Task:       task,
		FormAction: "/change/" + strconv.FormatInt(task.ID, 10),
	})
}

func (h *taskHandler) Change(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	taskID, err := parseID(r)
	if err != nil {
		notFound(w, r)
		return
	}

	title := r.FormValue("title")
	status := parseStatus(r.FormValue("status"))

	_, err = h.taskService.Update(r.Context(), user.ID, taskID, title, status)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			notFound(w, r)
			return
		}
		ui.Render(w, r, "task_form.html", ui.Data{
			Task:       &model.Task{ID: taskID, Title: title, Status: status},
			FormAction: "/change/" + strconv.FormatInt(taskID, 10),
			Error:      err.Error(),
		})
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *taskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	taskID, err := parseID(r)
	if err != nil {
		notFound(w, r)
		return
	}

	err = h.taskService.Delete(r.Context(), user.ID, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			notFound(w, r)
			return
		}
		slog.Error("failed to delete task", "error", err, "user_id", user.ID, "task_id", taskID)
		serverError(w, r)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func parseStatus(value string) int {
	if value == "1" {
		return model.TaskStatusDone
	}
	return model.TaskStatusOpen
}
