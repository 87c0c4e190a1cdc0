package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"bid-ledger-api/internal/models"
	"bid-ledger-api/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createApplicationTable = `
CREATE TABLE IF NOT EXISTS job_application (
	id                       UUID PRIMARY KEY,
	job_id                   UUID NOT NULL,
	freelancer_id            UUID NOT NULL,
	freelancer_name          TEXT NOT NULL DEFAULT '',
	freelancer_username      TEXT NOT NULL DEFAULT '',
	freelancer_avatar        TEXT NOT NULL DEFAULT '',
	freelancer_gradient_from TEXT NOT NULL DEFAULT '',
	freelancer_gradient_to   TEXT NOT NULL DEFAULT '',
	freelancer_rating        DOUBLE PRECISION NOT NULL DEFAULT 0,
	proposed_price           DOUBLE PRECISION NOT NULL CHECK (proposed_price > 0),
	delivery_days            INTEGER NOT NULL CHECK (delivery_days > 0),
	pitch                    TEXT NOT NULL,
	portfolio_sample_url     TEXT NOT NULL DEFAULT '',
	question_for_creator     TEXT NOT NULL DEFAULT '',
	position                 INTEGER NOT NULL CHECK (position > 0),
	status                   TEXT NOT NULL,
	created_at               TIMESTAMPTZ NOT NULL,
	updated_at               TIMESTAMPTZ NOT NULL,
	UNIQUE (job_id, freelancer_id),
	UNIQUE (job_id, position)
);`

const selectApplications = `
SELECT id, job_id, freelancer_id,
	freelancer_name, freelancer_username, freelancer_avatar,
	freelancer_gradient_from, freelancer_gradient_to, freelancer_rating,
	proposed_price, delivery_days, pitch, portfolio_sample_url, question_for_creator,
	position, status, created_at, updated_at
FROM job_application
ORDER BY created_at ASC, job_id ASC, position ASC;`

// Identity, position and snapshot columns are immutable, so only the
// mutable columns are touched when a row already exists.
const upsertApplication = `
INSERT INTO job_application (
	id, job_id, freelancer_id,
	freelancer_name, freelancer_username, freelancer_avatar,
	freelancer_gradient_from, freelancer_gradient_to, freelancer_rating,
	proposed_price, delivery_days, pitch, portfolio_sample_url, question_for_creator,
	position, status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
ON CONFLICT (id) DO UPDATE SET
	status = EXCLUDED.status,
	updated_at = EXCLUDED.updated_at;`

// ApplicationRepo implements storage.ApplicationStore on a PostgreSQL table,
// one row per application.
type ApplicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// Compile-time check to ensure ApplicationRepo implements ApplicationStore
var _ storage.ApplicationStore = (*ApplicationRepo)(nil)

// EnsureSchema creates the job_application table if it does not exist.
func (r *ApplicationRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, createApplicationTable); err != nil {
		log.Printf("Error creating job_application table: %v\n", err)
		return fmt.Errorf("failed to ensure job_application schema: %w", err)
	}
	return nil
}

func (r *ApplicationRepo) Load(ctx context.Context) ([]models.Application, error) {
	rows, err := r.db.Query(ctx, selectApplications)
	if err != nil {
		log.Printf("Error querying job applications: %v\n", err)
		return nil, fmt.Errorf("failed to load job applications: %w", err)
	}
	defer rows.Close()

	apps := []models.Application{}
	for rows.Next() {
		var app models.Application
		err := rows.Scan(
			&app.ID, &app.JobID, &app.FreelancerID,
			&app.Freelancer.Name, &app.Freelancer.Username, &app.Freelancer.Avatar,
			&app.Freelancer.GradientFrom, &app.Freelancer.GradientTo, &app.Freelancer.Rating,
			&app.ProposedPrice, &app.DeliveryDays, &app.Pitch, &app.PortfolioSampleURL, &app.QuestionForCreator,
			&app.Position, &app.Status, &app.CreatedAt, &app.UpdatedAt,
		)
		if err != nil {
			log.Printf("Error scanning job application: %v\n", err)
			return nil, fmt.Errorf("%w: %v", storage.ErrCorrupt, err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate job applications: %w", err)
	}
	return apps, nil
}

// Save upserts every record inside one transaction.
func (r *ApplicationRepo) Save(ctx context.Context, apps []models.Application) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		log.Printf("Error beginning transaction: %v\n", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) // Rollback if anything fails

	batch := &pgx.Batch{}
	for _, app := range apps {
		batch.Queue(upsertApplication,
			app.ID, app.JobID, app.FreelancerID,
			app.Freelancer.Name, app.Freelancer.Username, app.Freelancer.Avatar,
			app.Freelancer.GradientFrom, app.Freelancer.GradientTo, app.Freelancer.Rating,
			app.ProposedPrice, app.DeliveryDays, app.Pitch, app.PortfolioSampleURL, app.QuestionForCreator,
			app.Position, app.Status, app.CreatedAt, app.UpdatedAt,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			results.Close()
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
				log.Printf("Job application unique constraint violated: %v\n", err)
				return fmt.Errorf("failed to save job applications: %w", storage.ErrConflict)
			}
			log.Printf("Error saving job application %s: %v\n", apps[i].ID, err)
			return fmt.Errorf("failed to save job application %s: %w", apps[i].ID, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Error committing job applications: %v\n", err)
		return fmt.Errorf("failed to commit job applications: %w", err)
	}
	return nil
}
