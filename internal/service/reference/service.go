// Package reference serves the read-only exercise catalog.
package reference

import (
	"context"
	"log/slog"

	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

type exerciseRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Exercise, error)
	List(ctx context.Context, filter domain.ExerciseFilter) ([]domain.Exercise, error)
	ListMuscleGroups(ctx context.Context) ([]domain.MuscleGroup, error)
}

// Service serves reference-data lookups.
type Service struct {
	log       *slog.Logger
	exercises exerciseRepo
}

// NewService creates a new reference service.
func NewService(logger *slog.Logger, exercises exerciseRepo) *Service {
	return &Service{
		log:       logger.With("service", "reference"),
		exercises: exercises,
	}
}

// GetExercise returns one exercise with its muscle group.
func (s *Service) GetExercise(ctx context.Context, id int64) (*domain.Exercise, error) {
	return s.exercises.GetByID(ctx, id)
}

// ListExercises returns exercises matching the filter.
func (s *Service) ListExercises(ctx context.Context, filter domain.ExerciseFilter) ([]domain.Exercise, error) {
	return s.exercises.List(ctx, filter)
}

// ListMuscleGroups returns all muscle groups.
func (s *Service) ListMuscleGroups(ctx context.Context) ([]domain.MuscleGroup, error) {
	return s.exercises.ListMuscleGroups(ctx)
}
