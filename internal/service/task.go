package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/mkrylova/task-tracker-api/internal/model"
	"github.com/mkrylova/task-tracker-api/internal/repo"
)

var (
	ErrValidation = errors.New("validation error")
	ErrTaskNotFound = errors.New("task not found")
	ErrNotOwner = errors.New("not authorized")
)

type TaskService struct {
	repo repo.TaskRepository
}

func NewTaskService(repo repo.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) Create(ctx context.Context, ownerID string, t model.Task) (model.Task, error) {
	if strings.TrimSpace(t.Title) == "" {
		return t, ErrValidation
	}

	// Владелец проставляется один раз при создании и больше не меняется
	t.UserID = ownerID
	t.ID = ""
	return s.repo.Create(ctx, t)
}

func (s *TaskService) List(ctx context.Context, ownerID string) ([]model.Task, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *TaskService) Get(ctx context.Context, ownerID, id string) (model.Task, error) {
	return s.ownedTask(ctx, ownerID, id)
}

func (s *TaskService) Update(ctx context.Context, ownerID, id string, upd model.TaskUpdate) (model.Task, error) {
	t, err := s.ownedTask(ctx, ownerID, id)
	if err != nil {
		return t, err
	}

	// Накладываем только присланные поля поверх существующих
	if upd.Title != nil {
		t.Title = *upd.Title
	}
	if upd.Description != nil {
		t.Description = *upd.Description
	}
	if upd.Completed != nil {
		t.Completed = *upd.Completed
	}

	if strings.TrimSpace(t.Title) == "" {
		return t, ErrValidation
	}

	return s.repo.Update(ctx, t)
}

func (s *TaskService) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.ownedTask(ctx, ownerID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ownedTask - единая проверка владения для всех операций по id:
// битый или несуществующий id -> ErrTaskNotFound, чужая задача -> ErrNotOwner
func (s *TaskService) ownedTask(ctx context.Context, ownerID, id string) (model.Task, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.Task{}, ErrTaskNotFound
	}

	t, err := s.repo.Get(ctx, id)
	if errors.Is(err, repo.ErrorNotFound) {
		return t, ErrTaskNotFound
	}
	if err != nil {
		return t, err
	}

	if t.UserID != ownerID {
		return model.Task{}, ErrNotOwner
	}
	return t, nil
}
