package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/lexilens-ai/lexilens-engine/pkg/apperrors"
	"github.com/lexilens-ai/lexilens-engine/pkg/database"
	"github.com/lexilens-ai/lexilens-engine/pkg/models"
	"github.com/lexilens-ai/lexilens-engine/pkg/schedule"
)

// WordRepository defines the interface for vocabulary record data access.
type WordRepository interface {
	// FindByKey retrieves the record for a (user, lexical key) pair.
	// Returns apperrors.ErrNotFound if the word has never been observed.
	FindByKey(ctx context.Context, userID, lexicalKey string) (*models.WordRecord, error)

	// UpsertObservation records one observation of a word. If the record
	// exists its attributes are overwritten and its review schedule advances;
	// otherwise a new record is created with a one-day review window.
	// Returns the committed record and whether this was a repeat observation.
	// Concurrent observations of the same (user, key) serialize on the row:
	// no duplicate records, no lost increments.
	UpsertObservation(ctx context.Context, userID, lexicalKey string, attrs models.WordAttributes, now time.Time) (*models.WordRecord, bool, error)

	// ListByUser retrieves a user's full vocabulary, most recently seen first.
	ListByUser(ctx context.Context, userID string) ([]*models.WordRecord, error)

	// ListDue retrieves the user's words whose next review time has passed,
	// most overdue first.
	ListDue(ctx context.Context, userID string, now time.Time) ([]*models.WordRecord, error)
}

// wordRepository implements WordRepository using PostgreSQL.
type wordRepository struct {
	db *database.DB
}

// NewWordRepository creates a new word repository.
func NewWordRepository(db *database.DB) WordRepository {
	return &wordRepository{db: db}
}

const wordColumns = `id, user_id, lexical_key, translation, pronunciation, cultural_note,
		times_seen, last_seen_at, next_review_at, created_at`

// FindByKey retrieves the record for a (user, lexical key) pair.
func (r *wordRepository) FindByKey(ctx context.Context, userID, lexicalKey string) (*models.WordRecord, error) {
	query := `
		SELECT ` + wordColumns + `
		FROM word_records
		WHERE user_id = $1 AND lexical_key = $2`

	record, err := scanWordRecord(r.db.QueryRow(ctx, query, userID, lexicalKey))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get word record: %w", err)
	}

	return record, nil
}

// UpsertObservation records one observation of a word.
func (r *wordRepository) UpsertObservation(ctx context.Context, userID, lexicalKey string, attrs models.WordAttributes, now time.Time) (record *models.WordRecord, isReview bool, err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	// Insert-if-absent. ON CONFLICT DO NOTHING keeps the review rule in one
	// place (the schedule package) instead of duplicating it in SQL; the
	// conflict path below re-reads the row under a lock.
	timesSeen, nextReview := schedule.Next(0, now)
	insertQuery := `
		INSERT INTO word_records (` + wordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id, lexical_key) DO NOTHING
		RETURNING ` + wordColumns

	record, err = scanWordRecord(tx.QueryRow(ctx, insertQuery,
		uuid.New(),
		userID,
		lexicalKey,
		attrs.Translation,
		attrs.Pronunciation,
		attrs.CulturalNote,
		timesSeen,
		now,
		nextReview,
		now,
	))
	if err == nil {
		if err = tx.Commit(ctx); err != nil {
			return nil, false, fmt.Errorf("failed to commit observation: %w", err)
		}
		return record, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to insert word record: %w", err)
	}

	// The record exists. Lock it so concurrent observations of the same word
	// apply their increments one at a time.
	var current models.WordRecord
	lockQuery := `
		SELECT id, times_seen
		FROM word_records
		WHERE user_id = $1 AND lexical_key = $2
		FOR UPDATE`
	err = tx.QueryRow(ctx, lockQuery, userID, lexicalKey).Scan(&current.ID, &current.TimesSeen)
	if err != nil {
		return nil, false, fmt.Errorf("failed to lock word record: %w", err)
	}

	timesSeen, nextReview = schedule.Next(current.TimesSeen, now)
	updateQuery := `
		UPDATE word_records
		SET translation = $1,
		    pronunciation = $2,
		    cultural_note = $3,
		    times_seen = $4,
		    last_seen_at = $5,
		    next_review_at = $6
		WHERE id = $7
		RETURNING ` + wordColumns

	record, err = scanWordRecord(tx.QueryRow(ctx, updateQuery,
		attrs.Translation,
		attrs.Pronunciation,
		attrs.CulturalNote,
		timesSeen,
		now,
		nextReview,
		current.ID,
	))
	if err != nil {
		return nil, false, fmt.Errorf("failed to update word record: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, false, fmt.Errorf("failed to commit observation: %w", err)
	}

	return record, true, nil
}

// ListByUser retrieves a user's full vocabulary, most recently seen first.
func (r *wordRepository) ListByUser(ctx context.Context, userID string) ([]*models.WordRecord, error) {
	query := `
		SELECT ` + wordColumns + `
		FROM word_records
		WHERE user_id = $1
		ORDER BY last_seen_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list word records: %w", err)
	}
	defer rows.Close()

	return collectWordRecords(rows)
}

// ListDue retrieves words whose next review time has passed, most overdue first.
func (r *wordRepository) ListDue(ctx context.Context, userID string, now time.Time) ([]*models.WordRecord, error) {
	query := `
		SELECT ` + wordColumns + `
		FROM word_records
		WHERE user_id = $1 AND next_review_at <= $2
		ORDER BY next_review_at ASC`

	rows, err := r.db.Query(ctx, query, userID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list due word records: %w", err)
	}
	defer rows.Close()

	return collectWordRecords(rows)
}

// scanWordRecord scans a single word record row.
func scanWordRecord(row pgx.Row) (*models.WordRecord, error) {
	var record models.WordRecord
	err := row.Scan(
		&record.ID,
		&record.UserID,
		&record.LexicalKey,
		&record.Translation,
		&record.Pronunciation,
		&record.CulturalNote,
		&record.TimesSeen,
		&record.LastSeenAt,
		&record.NextReviewAt,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// collectWordRecords drains rows into a slice.
func collectWordRecords(rows pgx.Rows) ([]*models.WordRecord, error) {
	var records []*models.WordRecord
	for rows.Next() {
		record, err := scanWordRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan word record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating word records: %w", err)
	}
	return records, nil
}

// Ensure wordRepository implements WordRepository at compile time.
var _ WordRepository = (*wordRepository)(nil)
