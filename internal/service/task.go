package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ticklist/ticklist/internal/cache"
	"github.com/ticklist/ticklist/internal/model"
	"github.com/ticklist/ticklist/internal/repository"
	"github.com/ticklist/ticklist/internal/validation"
)

type TaskService struct {
	taskRepository repository.TaskRepository
	taskCache      *cache.TaskCache
}

func NewTaskService(taskRepository repository.TaskRepository, taskCache *cache.TaskCache) *TaskService {
	return &TaskService{
		taskRepository: taskRepository,
		taskCache:      taskCache,
	}
}

// Tasks returns all of the owner's tasks in insertion order, read through
// the cache when one is configured.
func (s *TaskService) Tasks(ctx context.Context, userID int64) ([]*model.Task, error) {
	tasks, ok := s.taskCache.Tasks(ctx, userID)
	if ok {
		return tasks, nil
	}

	tasks, err := s.taskRepository.ByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	s.taskCache.SetTasks(ctx, userID, tasks)
	return tasks, nil
}

func (s *TaskService) Task(ctx context.Context, userID, taskID int64) (*model.Task, error) {
	return s.taskRepository.ByID(userID, taskID)
}

func (s *TaskService) Add(ctx context.Context, userID int64, title string, status int) (*model.Task, error) {
	title = strings.TrimSpace(title)

	err := validation.ValidateTitle(title)
	if err != nil {
		return nil, err
	}

	task := &model.Task{
		UserID:     userID,
		Title:      title,
		Status:     normalizeStatus(status),
		CreateTime: time.Now().UTC(),
	}

	err = s.taskRepository.Create(task)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.taskCache.Invalidate(ctx, userID)
	return task, nil
}

// Update mutates title and status. Missing tasks (including tasks owned by
// someone else) surface as repository.ErrTaskNotFound.
func (s *TaskService) Update(ctx context.Context, userID, taskID int64, title string, status int) (*model.Task, error) {
	title = strings.TrimSpace(title)

	err := validation.ValidateTitle(title)
	if err != nil {
		return nil, err
	}

	task := &model.Task{
		ID:     taskID,
		UserID: userID,
		Title:  title,
		Status: normalizeStatus(status),
	}

	err = s.taskRepository.Update(task)
	if err != nil {
		return nil, err
	}

	s.taskCache.Invalidate(ctx, userID)
	return s.taskRepository.ByID(userID, taskID)
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID int64) error {
	err := s.taskRepository.Delete(userID, taskID)
	if err != nil {
		return err
	}

	s.taskCache.Invalidate(ctx, userID)
	return nil
}

func normalizeStatus(status int) int {
	if status == model.TaskStatusDone {
		return model.TaskStatusDone
	}
	return model.TaskStatusOpen
}
