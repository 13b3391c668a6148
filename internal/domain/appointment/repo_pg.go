package appointment

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// pgRepo stores the appointment collection in Postgres. It exists for
// deployments that want a transactional store instead of the single-writer
// device file; the Repository contract is unchanged, with insertion order
// preserved through the seq column.
type pgRepo struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPGRepo creates a Postgres-backed Repository. Run Migrate once before
// first use.
func NewPGRepo(pool *pgxpool.Pool, logger zerolog.Logger) *pgRepo {
	return &pgRepo{pool: pool, logger: logger}
}

// Migrate creates the appointment table if it does not exist.
func (r *pgRepo) Migrate(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS appointment (
			seq           BIGSERIAL PRIMARY KEY,
			id            TEXT NOT NULL UNIQUE,
			doctor_id     TEXT NOT NULL,
			doctor_name   TEXT NOT NULL,
			specialty     TEXT NOT NULL,
			hospital_name TEXT NOT NULL,
			date          TEXT NOT NULL,
			time          TEXT NOT NULL,
			token         TEXT NOT NULL,
			fee           INT NOT NULL,
			status        TEXT NOT NULL,
			patient_name  TEXT,
			patient_age   INT
		)`)
	if err != nil {
		return fmt.Errorf("create appointment table: %w", err)
	}
	return nil
}

const apptCols = `id, doctor_id, doctor_name, specialty, hospital_name,
	date, time, token, fee, status, patient_name, patient_age`

func (r *pgRepo) List(ctx context.Context) ([]Appointment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+apptCols+` FROM appointment ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()
	var appts []Appointment
	for rows.Next() {
		var a Appointment
		var patientName *string
		if err := rows.Scan(&a.ID, &a.DoctorID, &a.DoctorName, &a.Specialty, &a.HospitalName,
			&a.Date, &a.Time, &a.Token, &a.Fee, &a.Status, &patientName, &a.PatientAge); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		if patientName != nil {
			a.PatientName = *patientName
		}
		appts = append(appts, a)
	}
	return appts, rows.Err()
}

func (r *pgRepo) Save(ctx context.Context, a Appointment) error {
	var patientName *string
	if a.PatientName != "" {
		patientName = &a.PatientName
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO appointment (`+apptCols+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		a.ID, a.DoctorID, a.DoctorName, a.Specialty, a.HospitalName,
		a.Date, a.Time, a.Token, a.Fee, a.Status, patientName, a.PatientAge)
	if err != nil {
		return fmt.Errorf("save appointment: %w", err)
	}
	return nil
}

func (r *pgRepo) Remove(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM appointment WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("remove appointment: %w", err)
	}
	return nil
}
