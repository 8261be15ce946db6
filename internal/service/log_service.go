package service

import (
	"context"
	"errors"

	"carbon-tracker/internal/domain"
	"carbon-tracker/internal/emissions"
	"carbon-tracker/internal/repository"
)

// LogInputs are the raw values a caller submits for one computation.
type LogInputs struct {
	Date           string
	TravelKm       float64
	TravelMode     string
	ElectricityKwh float64
	Diet           string
}

// LogService persists footprint computations scoped to their owning user.
type LogService interface {
	// Append runs the engine once and stores inputs plus the frozen outputs.
	Append(ctx context.Context, ownerID string, inputs LogInputs) (*domain.LogEntry, error)
	// List returns the owner's entries in creation order.
	List(ctx context.Context, ownerID string) ([]domain.LogEntry, error)
}

type logService struct {
	logs   repository.LogRepository
	engine *emissions.Engine
}

func NewLogService(logs repository.LogRepository, engine *emissions.Engine) LogService {
	return &logService{
		logs:   logs,
		engine: engine,
	}
}

func (s *logService) Append(ctx context.Context, ownerID string, inputs LogInputs) (*domain.LogEntry, error) {
	if ownerID == "" {
		return nil, errors.New("owner id is required")
	}

	result := s.engine.Compute(inputs.TravelKm, inputs.TravelMode, inputs.ElectricityKwh, inputs.Diet)

	entry := &domain.LogEntry{
		UserID:         ownerID,
		Date:           inputs.Date,
		TravelKm:       inputs.TravelKm,
		TravelMode:     inputs.TravelMode,
		ElectricityKwh: inputs.ElectricityKwh,
		Diet:           inputs.Diet,
		TravelKg:       result.TravelKg,
		ElectricityKg:  result.ElectricityKg,
		FoodKg:         result.FoodKg,
		TotalKg:        result.TotalKg,
	}

	if err := s.logs.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *logService) List(ctx context.Context, ownerID string) ([]domain.LogEntry, error) {
	if ownerID == "" {
		return nil, errors.New("owner id is required")
	}
	return s.logs.ListByUser(ctx, ownerID)
}
