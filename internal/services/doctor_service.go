package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hospital-records/internal/models"
)

type DoctorService struct {
	db           *sql.DB
	queryTimeout time.Duration
}

func NewDoctorService(db *sql.DB, queryTimeout time.Duration) *DoctorService {
	return &DoctorService{
		db:           db,
		queryTimeout: queryTimeout,
	}
}

// List returns all doctors ordered by id.
func (s *DoctorService) List(ctx context.Context) ([]models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, specialty FROM doctors ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	defer rows.Close()

	doctors := []models.Doctor{}
	for rows.Next() {
		var (
			d               models.Doctor
			name, specialty sql.NullString
		)
		if err := rows.Scan(&d.ID, &name, &specialty); err != nil {
			return nil, fmt.Errorf("failed to scan doctor: %w", err)
		}
		d.Name = name.String
		d.Specialty = specialty.String
		doctors = append(doctors, d)
	}

	return doctors, rows.Err()
}

func (s *DoctorService) Get(ctx context.Context, id int64) (models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	var (
		d               models.Doctor
		name, specialty sql.NullString
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, specialty FROM doctors WHERE id = ?`, id).
		Scan(&d.ID, &name, &specialty)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Doctor{}, ErrNotFound
	}
	if err != nil {
		return models.Doctor{}, fmt.Errorf("failed to get doctor %d: %w", id, err)
	}

	d.Name = name.String
	d.Specialty = specialty.String
	return d, nil
}

// Create inserts a doctor and returns the id the store assigned to it.
func (s *DoctorService) Create(ctx context.Context, in models.DoctorInput) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO doctors (name, specialty) VALUES (?, ?)`,
		in.Name, in.Specialty)
	if err != nil {
		return 0, fmt.Errorf("failed to create doctor: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read doctor id: %w", err)
	}
	return id, nil
}

// Update overwrites every mutable field. Updating an unknown id is not an error.
func (s *DoctorService) Update(ctx context.Context, id int64, in models.DoctorInput) error {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx,
		`UPDATE doctors SET name = ?, specialty = ? WHERE id = ?`,
		in.Name, in.Specialty, id)
	if err != nil {
		return fmt.Errorf("failed to update doctor %d: %w", id, err)
	}
	return nil
}

// Delete removes the doctor and unassigns every patient that referenced it,
// in one transaction. It returns the number of patients unassigned.
func (s *DoctorService) Delete(ctx context.Context, id int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM doctors WHERE id = ?`, id); err != nil {
		return 0, fmt.Errorf("failed to delete doctor %d: %w", id, err)
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE patients SET doctor_id = ? WHERE doctor_id = ?`,
		models.UnassignedDoctorID, id)
	if err != nil {
		return 0, fmt.Errorf("failed to unassign patients of doctor %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit doctor delete: %w", err)
	}

	unassigned, _ := res.RowsAffected()
	return unassigned, nil
}
