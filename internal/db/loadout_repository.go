package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/melnikovdev/hordego/internal/game/skill"
)

// LoadoutRepository хранит наборы скиллов игроков.
// Движок комбинирования сам ничего не сохраняет: загруженный loadout
// просто прогоняется через Combine при входе игрока.
type LoadoutRepository struct {
	db *pgxpool.Pool
}

// NewLoadoutRepository создаёт новый LoadoutRepository.
func NewLoadoutRepository(db *pgxpool.Pool) *LoadoutRepository {
	return &LoadoutRepository{db: db}
}

// CreatePlayer inserts a player row and returns its id.
func (r *LoadoutRepository) CreatePlayer(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO players (name, created_at) VALUES ($1, $2) RETURNING player_id`,
		name, time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("creating player %q: %w", name, err)
	}
	return id, nil
}

// Load возвращает loadout игрока. Пустой срез если скиллов нет.
func (r *LoadoutRepository) Load(ctx context.Context, playerID int64) ([]skill.ActiveSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT skill_id, skill_level
		 FROM player_skills
		 WHERE player_id = $1
		 ORDER BY skill_id`, playerID)
	if err != nil {
		return nil, fmt.Errorf("querying loadout for player %d: %w", playerID, err)
	}
	defer rows.Close()

	loadout := make([]skill.ActiveSkill, 0, 16)
	for rows.Next() {
		var as skill.ActiveSkill
		if err := rows.Scan(&as.SkillID, &as.Level); err != nil {
			return nil, fmt.Errorf("scanning loadout row: %w", err)
		}
		loadout = append(loadout, as)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating loadout rows: %w", err)
	}
	return loadout, nil
}

// Save сохраняет весь loadout игрока (полная перезапись).
// Удаляет старые строки, вставляет новые в одной транзакции.
func (r *LoadoutRepository) Save(ctx context.Context, playerID int64, loadout []skill.ActiveSkill) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // no-op after commit
	}()

	if _, err := tx.Exec(ctx,
		`DELETE FROM player_skills WHERE player_id = $1`, playerID); err != nil {
		return fmt.Errorf("deleting existing loadout: %w", err)
	}

	for _, as := range loadout {
		if _, err := tx.Exec(ctx,
			`INSERT INTO player_skills (player_id, skill_id, skill_level) VALUES ($1, $2, $3)`,
			playerID, as.SkillID, as.Level,
		); err != nil {
			return fmt.Errorf("inserting skill %q: %w", as.SkillID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing loadout save: %w", err)
	}
	return nil
}

// UpsertSkill записывает один скилл loadout-а (UPSERT).
func (r *LoadoutRepository) UpsertSkill(ctx context.Context, playerID int64, as skill.ActiveSkill) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO player_skills (player_id, skill_id, skill_level)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (player_id, skill_id)
		 DO UPDATE SET skill_level = $3`,
		playerID, as.SkillID, as.Level)
	if err != nil {
		return fmt.Errorf("upserting skill %q for player %d: %w", as.SkillID, playerID, err)
	}
	return nil
}

// PlayerName returns the player's name, or "" with no error when the
// player does not exist.
func (r *LoadoutRepository) PlayerName(ctx context.Context, playerID int64) (string, error) {
	var name string
	err := r.db.QueryRow(ctx,
		`SELECT name FROM players WHERE player_id = $1`, playerID).Scan(&name)
	if err == pgx.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("querying player %d: %w", playerID, err)
	}
	return name, nil
}
