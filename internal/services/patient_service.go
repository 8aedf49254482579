package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hospital-records/internal/models"
)

type PatientService struct {
	db           *sql.DB
	queryTimeout time.Duration
}

func NewPatientService(db *sql.DB, queryTimeout time.Duration) *PatientService {
	return &PatientService{
		db:           db,
		queryTimeout: queryTimeout,
	}
}

// List returns all patients ordered by id. DoctorName is set only when the
// referenced doctor exists.
func (s *PatientService) List(ctx context.Context) ([]models.PatientView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	query := `SELECT p.id, p.name, p.ailment, p.doctor_id, d.name
	          FROM patients p
	          LEFT JOIN doctors d ON p.doctor_id = d.id
	          ORDER BY p.id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	defer rows.Close()

	patients := []models.PatientView{}
	for rows.Next() {
		var (
			p                      models.PatientView
			name, ailment, docName sql.NullString
			doctorID               sql.NullInt64
		)
		if err := rows.Scan(&p.ID, &name, &ailment, &doctorID, &docName); err != nil {
			return nil, fmt.Errorf("failed to scan patient: %w", err)
		}
		p.Name = name.String
		p.Ailment = ailment.String
		p.DoctorID = doctorID.Int64
		if docName.Valid {
			n := docName.String
			p.DoctorName = &n
		}
		patients = append(patients, p)
	}

	return patients, rows.Err()
}

func (s *PatientService) Get(ctx context.Context, id int64) (models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	var (
		p             models.Patient
		name, ailment sql.NullString
		doctorID      sql.NullInt64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, ailment, doctor_id FROM patients WHERE id = ?`, id).
		Scan(&p.ID, &name, &ailment, &doctorID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Patient{}, ErrNotFound
	}
	if err != nil {
		return models.Patient{}, fmt.Errorf("failed to get patient %d: %w", id, err)
	}

	p.Name = name.String
	p.Ailment = ailment.String
	p.DoctorID = doctorID.Int64
	return p, nil
}

func (s *PatientService) Create(ctx context.Context, in models.PatientInput) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO patients (name, ailment, doctor_id) VALUES (?, ?, ?)`,
		in.Name, in.Ailment, in.DoctorID)
	if err != nil {
		return 0, fmt.Errorf("failed to create patient: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read patient id: %w", err)
	}
	return id, nil
}

func (s *PatientService) Update(ctx context.Context, id int64, in models.PatientInput) error {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx,
		`UPDATE patients SET name = ?, ailment = ?, doctor_id = ? WHERE id = ?`,
		in.Name, in.Ailment, in.DoctorID, id)
	if err != nil {
		return fmt.Errorf("failed to update patient %d: %w", id, err)
	}
	return nil
}

func (s *PatientService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM patients WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete patient %d: %w", id, err)
	}
	return nil
}
