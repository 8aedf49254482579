package services

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"hospital-records/internal/models"

	"github.com/robfig/cron/v3"
)

const orphanCondition = `doctor_id <> 0 AND doctor_id NOT IN (SELECT id FROM doctors)`

// MaintenanceService periodically checks the store for patients whose doctor
// reference names no existing doctor, and can reset those references to 0.
type MaintenanceService struct {
	db            *sql.DB
	schemaService *SchemaService
	queryTimeout  time.Duration

	mutex         sync.RWMutex
	cron          *cron.Cron
	entryID       cron.EntryID
	isRunning     bool
	cronSchedule  string
	repairOrphans bool
	lastRunTime   time.Time
	lastReport    *models.OrphanReport
}

func NewMaintenanceService(db *sql.DB, schemaService *SchemaService, cronSchedule string, repairOrphans bool, queryTimeout time.Duration) *MaintenanceService {
	return &MaintenanceService{
		db:            db,
		schemaService: schemaService,
		queryTimeout:  queryTimeout,
		cron:          cron.New(),
		cronSchedule:  cronSchedule,
		repairOrphans: repairOrphans,
	}
}

// Start schedules the maintenance job on the configured cron spec.
func (s *MaintenanceService) Start() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.isRunning {
		return fmt.Errorf("maintenance already running")
	}
	if s.cronSchedule == "" {
		return fmt.Errorf("maintenance schedule is not configured")
	}

	entryID, err := s.cron.AddFunc(s.cronSchedule, func() {
		if _, err := s.RunOnce(context.Background()); err != nil {
			log.Printf("Maintenance run failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	s.entryID = entryID
	s.cron.Start()
	s.isRunning = true

	log.Printf("Maintenance started with schedule: %s (Entry ID: %d)", s.cronSchedule, entryID)
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *MaintenanceService) Stop() error {
	s.mutex.Lock()
	if !s.isRunning {
		s.mutex.Unlock()
		return fmt.Errorf("maintenance is not running")
	}
	s.cron.Remove(s.entryID)
	ctx := s.cron.Stop()
	s.isRunning = false
	s.mutex.Unlock()

	// RunOnce takes the mutex, so wait outside of it.
	<-ctx.Done()

	log.Println("Maintenance stopped")
	return nil
}

func (s *MaintenanceService) IsRunning() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.isRunning
}

// RunOnce performs a single maintenance pass and records its report.
func (s *MaintenanceService) RunOnce(ctx context.Context) (models.OrphanReport, error) {
	now := time.Now()
	report := models.OrphanReport{RanAt: now.Format(time.RFC3339)}

	err := s.run(ctx, &report)
	if err != nil {
		report.Error = err.Error()
	}

	s.mutex.Lock()
	s.lastRunTime = now
	s.lastReport = &report
	s.mutex.Unlock()

	log.Printf("Maintenance run: tables present %v, orphans %d, repaired %d",
		report.TablesPresent, report.Orphans, report.Repaired)

	return report, err
}

func (s *MaintenanceService) run(ctx context.Context, report *models.OrphanReport) error {
	for _, table := range []string{"doctors", "patients"} {
		exists, err := s.schemaService.TableExists(ctx, table)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("table %s is missing", table)
		}
	}
	report.TablesPresent = true

	orphans, err := s.CountOrphans(ctx)
	if err != nil {
		return err
	}
	report.Orphans = orphans

	s.mutex.RLock()
	repair := s.repairOrphans
	s.mutex.RUnlock()

	if repair && orphans > 0 {
		repaired, err := s.RepairOrphans(ctx)
		if err != nil {
			return err
		}
		report.Repaired = repaired
	}

	return nil
}

// CountOrphans counts patients whose non-zero doctor_id references no doctor.
func (s *MaintenanceService) CountOrphans(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM patients WHERE `+orphanCondition).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count orphaned patients: %w", err)
	}
	return count, nil
}

// RepairOrphans resets dangling doctor references to unassigned.
func (s *MaintenanceService) RepairOrphans(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	res, err := s.db.ExecContext(ctx,
		`UPDATE patients SET doctor_id = ? WHERE `+orphanCondition,
		models.UnassignedDoctorID)
	if err != nil {
		return 0, fmt.Errorf("failed to repair orphaned patients: %w", err)
	}

	n, _ := res.RowsAffected()
	if n > 0 {
		log.Printf("Unassigned %d patients with dangling doctor references", n)
	}
	return n, nil
}

func (s *MaintenanceService) GetStatus() map[string]interface{} {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var lastRun, nextRun string
	if !s.lastRunTime.IsZero() {
		lastRun = s.lastRunTime.Format("2006-01-02 15:04:05")
	}
	if s.isRunning {
		if next := s.cron.Entry(s.entryID).Next; !next.IsZero() {
			nextRun = next.Format("2006-01-02 15:04:05")
		}
	}

	return map[string]interface{}{
		"isRunning":     s.isRunning,
		"cronSchedule":  s.cronSchedule,
		"repairOrphans": s.repairOrphans,
		"lastRun":       lastRun,
		"nextRun":       nextRun,
		"lastReport":    s.lastReport,
	}
}

// UpdateConfig changes the schedule and repair flag. A new schedule takes
// effect on the next Start.
func (s *MaintenanceService) UpdateConfig(cronSchedule string, repairOrphans *bool) error {
	if cronSchedule != "" {
		if _, err := cron.ParseStandard(cronSchedule); err != nil {
			return fmt.Errorf("invalid cron schedule: %w", err)
		}
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if cronSchedule != "" && cronSchedule != s.cronSchedule {
		s.cronSchedule = cronSchedule
		if s.isRunning {
			log.Println("Schedule changed - restart maintenance to apply new schedule")
		}
	}
	if repairOrphans != nil {
		s.repairOrphans = *repairOrphans
	}

	log.Printf("Maintenance configuration updated - Schedule: %s, Repair Orphans: %v",
		s.cronSchedule, s.repairOrphans)
	return nil
}
