package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"carbon-tracker/internal/domain"
	"carbon-tracker/internal/repository"
)

const createLogsTable = `
CREATE TABLE IF NOT EXISTS logs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id TEXT NOT NULL REFERENCES users(id),
	date TEXT NOT NULL DEFAULT '',
	travel_km REAL NOT NULL DEFAULT 0,
	travel_mode TEXT NOT NULL DEFAULT 'car',
	electricity_kwh REAL NOT NULL DEFAULT 0,
	diet TEXT NOT NULL DEFAULT 'mixed',
	travel_kg REAL NOT NULL DEFAULT 0,
	electricity_kg REAL NOT NULL DEFAULT 0,
	food_kg REAL NOT NULL DEFAULT 0,
	total_kg REAL NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL
);
`

const createLogsUserIndex = `
CREATE INDEX IF NOT EXISTS idx_logs_user_id ON logs(user_id);
`

type LogRepository struct {
	db *sql.DB
}

func NewLogRepository(db *sql.DB) repository.LogRepository {
	return &LogRepository{db: db}
}

func (r *LogRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createLogsTable); err != nil {
		return fmt.Errorf("create logs table: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, createLogsUserIndex); err != nil {
		return fmt.Errorf("create logs user index: %w", err)
	}
	return nil
}

func (r *LogRepository) Create(ctx context.Context, entry *domain.LogEntry) error {
	entry.CreatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
INSERT INTO logs (user_id, date, travel_km, travel_mode, electricity_kwh, diet, travel_kg, electricity_kg, food_kg, total_kg, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.UserID,
		entry.Date,
		entry.TravelKm,
		entry.TravelMode,
		entry.ElectricityKwh,
		entry.Diet,
		entry.TravelKg,
		entry.ElectricityKg,
		entry.FoodKg,
		entry.TotalKg,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert log: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("log last insert id: %w", err)
	}
	entry.ID = id
	return nil
}

func (r *LogRepository) ListByUser(ctx context.Context, userID string) ([]domain.LogEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, date, travel_km, travel_mode, electricity_kwh, diet, travel_kg, electricity_kg, food_kg, total_kg, created_at
FROM logs
WHERE user_id = ?
ORDER BY id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query logs: %w", err)
	}
	defer rows.Close()

	entries := []domain.LogEntry{}
	for rows.Next() {
		var e domain.LogEntry
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.Date,
			&e.TravelKm,
			&e.TravelMode,
			&e.ElectricityKwh,
			&e.Diet,
			&e.TravelKg,
			&e.ElectricityKg,
			&e.FoodKg,
			&e.TotalKg,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan log: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate logs: %w", err)
	}
	return entries, nil
}
