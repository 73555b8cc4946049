package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	_ "github.com/tursodatabase/libsql-client-go/libsql" // Turso driver
	_ "modernc.org/sqlite"                               // Local SQLite driver

	"github.com/wadjakorntonsri/go-linkpage/pkg/core/domain"
	"github.com/wadjakorntonsri/go-linkpage/pkg/ports"
)

type SQLiteRepository struct {
	db *sql.DB
}

var _ ports.Repository = (*SQLiteRepository)(nil)

func NewSQLiteRepository(dbURL string) (*SQLiteRepository, error) {
	driverName := "sqlite"
	if strings.Contains(dbURL, "libsql://") || strings.Contains(dbURL, "wss://") {
		driverName = "libsql"
	}

	db, err := sql.Open(driverName, dbURL)
	if err != nil {
		return nil, err
	}
	if driverName == "sqlite" {
		// one connection keeps :memory: databases shared and serializes writers
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	if err := migrate(db); err != nil {
		return nil, err
	}

	return &SQLiteRepository{db: db}, nil
}

func migrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		email TEXT UNIQUE,
		name TEXT DEFAULT '',
		bio TEXT DEFAULT '',
		profile_image_url TEXT DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_users_username ON users(username);

	CREATE TABLE IF NOT EXISTS links (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		title TEXT NOT NULL,
		url TEXT NOT NULL,
		icon TEXT,
		layout TEXT DEFAULT 'default',
		position INTEGER NOT NULL DEFAULT 0,
		clicks INTEGER DEFAULT 0,
		is_active INTEGER DEFAULT 1,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
	);
	CREATE INDEX IF NOT EXISTS idx_links_user_position ON links(user_id, position);

	CREATE TABLE IF NOT EXISTS themes (
		user_id INTEGER PRIMARY KEY,
		settings JSON NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS visits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		link_id INTEGER NOT NULL,
		referer TEXT,
		user_agent TEXT,
		ip_hash TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(link_id) REFERENCES links(id) ON DELETE CASCADE
	);
	CREATE INDEX IF NOT EXISTS idx_visits_link_id ON visits(link_id);
	`
	if _, err := db.Exec(query); err != nil {
		return err
	}

	// Older databases predate the layout column. SQLite has no ADD COLUMN IF NOT EXISTS.
	_, _ = db.Exec(`ALTER TABLE links ADD COLUMN layout TEXT DEFAULT 'default'`)

	return nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Users

const userColumns = `id, username, COALESCE(email, ''), COALESCE(name, ''), COALESCE(bio, ''), COALESCE(profile_image_url, ''), created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Name, &u.Bio, &u.ProfileImageURL, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *SQLiteRepository) CreateUser(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (username, email, name, bio, profile_image_url, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, query, user.Username, nullIfEmpty(user.Email), user.Name, user.Bio,
		user.ProfileImageURL, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return domain.ErrUsernameTaken
		}
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

func (r *SQLiteRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
}

func (r *SQLiteRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username))
}

func (r *SQLiteRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email))
}

func (r *SQLiteRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET name = ?, bio = ?, profile_image_url = ?, updated_at = ? WHERE id = ?`
	user.UpdatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, user.Name, user.Bio, user.ProfileImageURL, user.UpdatedAt, user.ID)
	return err
}

func (r *SQLiteRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// Links

const linkColumns = `id, user_id, title, url, icon, COALESCE(layout, 'default'), position, COALESCE(clicks, 0), is_active, created_at, updated_at`

func scanLink(row interface{ Scan(...any) error }) (*domain.Link, error) {
	var l domain.Link
	var icon sql.NullString
	var layout string
	err := row.Scan(&l.ID, &l.UserID, &l.Title, &l.URL, &icon, &layout, &l.Position, &l.Clicks, &l.IsActive,
		&l.CreatedAt, &l.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if icon.Valid {
		l.Icon = domain.IconPtr(icon.String)
	}
	l.Layout = domain.ParseLayout(layout)
	return &l, nil
}

func (r *SQLiteRepository) CreateLink(ctx context.Context, link *domain.Link) error {
	query := `INSERT INTO links (user_id, title, url, icon, layout, position, is_active, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	now := time.Now().UTC()
	link.CreatedAt, link.UpdatedAt = now, now

	res, err := r.db.ExecContext(ctx, query, link.UserID, link.Title, link.URL, link.Icon, string(link.Layout),
		link.Position, link.IsActive, link.CreatedAt, link.UpdatedAt)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	link.ID = id
	return nil
}

func (r *SQLiteRepository) GetLink(ctx context.Context, id int64) (*domain.Link, error) {
	return scanLink(r.db.QueryRowContext(ctx, `SELECT `+linkColumns+` FROM links WHERE id = ?`, id))
}

func (r *SQLiteRepository) UpdateLink(ctx context.Context, link *domain.Link) error {
	query := `UPDATE links SET title = ?, url = ?, icon = ?, layout = ?, is_active = ?, updated_at = ? WHERE id = ?`
	link.UpdatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, link.Title, link.URL, link.Icon, string(link.Layout), link.IsActive,
		link.UpdatedAt, link.ID)
	return err
}

// DeleteLink removes the link and closes the gap it leaves in its owner's
// positions, in one transaction.
func (r *SQLiteRepository) DeleteLink(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var userID int64
	var position int
	err = tx.QueryRowContext(ctx, `SELECT user_id, position FROM links WHERE id = ?`, id).Scan(&userID, &position)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM visits WHERE link_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM links WHERE id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE links SET position = position - 1 WHERE user_id = ? AND position > ?`, userID, position); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *SQLiteRepository) ListLinks(ctx context.Context, userID int64) ([]domain.Link, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+linkColumns+` FROM links WHERE user_id = ? ORDER BY position ASC, id ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := []domain.Link{}
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, *l)
	}
	return links, rows.Err()
}

func (r *SQLiteRepository) CountLinks(ctx context.Context, userID int64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM links WHERE user_id = ?`, userID).Scan(&n)
	return n, err
}

// ReorderLinks writes every position in one transaction. Applying the same
// payload twice leaves the same state.
func (r *SQLiteRepository) ReorderLinks(ctx context.Context, positions []domain.LinkPosition) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `UPDATE links SET position = ?, updated_at = ? WHERE id = ?`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, p := range positions {
		if _, err := stmt.ExecContext(ctx, p.Position, now, p.ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *SQLiteRepository) RecordVisit(ctx context.Context, visit *domain.Visit) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	queryVisit := `INSERT INTO visits (link_id, referer, user_agent, ip_hash, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err = tx.ExecContext(ctx, queryVisit, visit.LinkID, visit.Referer, visit.UserAgent, visit.IPHash, visit.CreatedAt.Format("2006-01-02 15:04:05"))
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `UPDATE links SET clicks = clicks + 1 WHERE id = ?`, visit.LinkID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Themes

func (r *SQLiteRepository) GetTheme(ctx context.Context, userID int64) (*domain.ThemeRecord, error) {
	var raw []byte
	err := r.db.QueryRowContext(ctx, `SELECT settings FROM themes WHERE user_id = ?`, userID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rec domain.ThemeRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *SQLiteRepository) SaveTheme(ctx context.Context, userID int64, theme domain.ThemeRecord) error {
	raw, err := json.Marshal(theme)
	if err != nil {
		return err
	}

	query := `INSERT INTO themes (user_id, settings, updated_at) VALUES (?, ?, ?)
			  ON CONFLICT(user_id) DO UPDATE SET settings = excluded.settings, updated_at = excluded.updated_at`
	_, err = r.db.ExecContext(ctx, query, userID, string(raw), time.Now().UTC())
	return err
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
