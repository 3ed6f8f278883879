package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lokomotiv/rink-ticketing/internal/domain"
)

// DirectoryRepository реализует справочник отделов и должностей
type DirectoryRepository struct {
	db DBTX
}

// NewDirectoryRepository создает новый DirectoryRepository
func NewDirectoryRepository(db DBTX) *DirectoryRepository {
	return &DirectoryRepository{db: db}
}

func directoryTable(kind domain.DirectoryKind) (string, error) {
	switch kind {
	case domain.DirectoryDepartment:
		return "departments", nil
	case domain.DirectoryPosition:
		return "positions", nil
	}
	return "", domain.NewValidationError("kind", fmt.Sprintf("unknown directory %q", kind))
}

// GetOrCreate возвращает ID записи, создавая ее при отсутствии
func (r *DirectoryRepository) GetOrCreate(ctx context.Context, kind domain.DirectoryKind, name string) (int64, bool, error) {
	table, err := directoryTable(kind)
	if err != nil {
		return 0, false, err
	}

	var id int64
	err = conn(ctx, r.db).QueryRow(ctx,
		`INSERT INTO `+table+` (name) VALUES ($1)
		 ON CONFLICT (name) DO NOTHING
		 RETURNING id`,
		name,
	).Scan(&id)
	if err == nil {
		return id, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, false, fmt.Errorf("repository: failed to create %s %q: %w", kind, name, err)
	}

	// Запись уже существует
	err = conn(ctx, r.db).QueryRow(ctx,
		`SELECT id FROM `+table+` WHERE name = $1`,
		name,
	).Scan(&id)
	if err != nil {
		return 0, false, fmt.Errorf("repository: failed to get %s %q: %w", kind, name, err)
	}

	return id, false, nil
}

// Search ищет записи справочника по подстроке
func (r *DirectoryRepository) Search(ctx context.Context, kind domain.DirectoryKind, query string, limit int) ([]domain.DirectoryEntry, error) {
	table, err := directoryTable(kind)
	if err != nil {
		return nil, err
	}

	rows, err := conn(ctx, r.db).Query(ctx,
		`SELECT id, name FROM `+table+`
		 WHERE name ILIKE '%' || $1 || '%'
		 ORDER BY name
		 LIMIT $2`,
		query, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to search %s: %w", kind, err)
	}
	defer rows.Close()

	entries := []domain.DirectoryEntry{}
	for rows.Next() {
		var e domain.DirectoryEntry
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, fmt.Errorf("repository: failed to scan %s: %w", kind, err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating %s: %w", kind, err)
	}

	return entries, nil
}
