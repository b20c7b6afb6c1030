// Package ratings хранит оценки треков (лайк/дизлайк) в SQLite.
package ratings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Rating оценка трека.
type Rating int

const (
	None    Rating = 0
	Like    Rating = 1
	Dislike Rating = -1
)

func (r Rating) String() string {
	switch r {
	case Like:
		return "like"
	case Dislike:
		return "dislike"
	default:
		return "none"
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS ratings (
	track      TEXT PRIMARY KEY,
	rating     INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
)`

// Store хранилище оценок.
type Store struct {
	db *sql.DB
}

// Open открывает (или создаёт) базу по пути path. ":memory:" для базы в памяти.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("открытие %s: %w", path, err)
	}
	// База в памяти живёт в одном соединении
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("создание схемы: %w", err)
	}
	return &Store{db: db}, nil
}

// Set сохраняет оценку трека. None удаляет запись.
func (s *Store) Set(ctx context.Context, track string, r Rating) error {
	if r == None {
		_, err := s.db.ExecContext(ctx, `DELETE FROM ratings WHERE track = ?`, track)
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ratings (track, rating, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(track) DO UPDATE SET rating = excluded.rating, updated_at = excluded.updated_at`,
		track, int(r), time.Now().Unix())
	return err
}

// Get возвращает оценку трека, None если её нет.
func (s *Store) Get(ctx context.Context, track string) (Rating, error) {
	var r int
	err := s.db.QueryRowContext(ctx, `SELECT rating FROM ratings WHERE track = ?`, track).Scan(&r)
	if errors.Is(err, sql.ErrNoRows) {
		return None, nil
	}
	if err != nil {
		return None, err
	}
	return Rating(r), nil
}

// Liked возвращает треки с лайком, новые первыми.
func (s *Store) Liked(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT track FROM ratings WHERE rating = ? ORDER BY updated_at DESC, track`, int(Like))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var track string
		if err := rows.Scan(&track); err != nil {
			return nil, err
		}
		out = append(out, track)
	}
	return out, rows.Err()
}

// Close закрывает базу.
func (s *Store) Close() error {
	return s.db.Close()
}
