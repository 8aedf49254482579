package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"hospital-records/internal/models"
)

type ChartService struct {
	db           *sql.DB
	queryTimeout time.Duration
}

func NewChartService(db *sql.DB, queryTimeout time.Duration) *ChartService {
	return &ChartService{
		db:           db,
		queryTimeout: queryTimeout,
	}
}

// Summary counts patients per doctor. Doctors without patients are included
// with a zero count.
func (s *ChartService) Summary(ctx context.Context) (models.ChartSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	query := `SELECT d.name, COUNT(p.id)
	          FROM doctors d
	          LEFT JOIN patients p ON p.doctor_id = d.id
	          GROUP BY d.id, d.name
	          ORDER BY d.id`

	summary := models.ChartSummary{
		Labels: []string{},
		Counts: []int{},
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return summary, fmt.Errorf("failed to query chart summary: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			name  sql.NullString
			count int
		)
		if err := rows.Scan(&name, &count); err != nil {
			return summary, fmt.Errorf("failed to scan chart row: %w", err)
		}
		summary.Labels = append(summary.Labels, name.String)
		summary.Counts = append(summary.Counts, count)
	}

	return summary, rows.Err()
}
