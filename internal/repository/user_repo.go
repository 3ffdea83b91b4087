package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"finance_tracker/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL        = `INSERT INTO users (name, email, password_hash, profile_picture) VALUES (?, ?, ?, ?)`
	selectUserByEmailSQL = `SELECT id, name, email, password_hash, profile_picture FROM users WHERE email = ?`
	selectUserByIDSQL    = `SELECT id, name, email, password_hash, profile_picture FROM users WHERE id = ?`
)

// Create inserts a new user and returns its ID.
func (r *UserRepository) Create(name, email, passwordHash string, profilePicture *string) (int64, error) {
	res, err := r.db.Exec(insertUserSQL, name, email, passwordHash, profilePicture)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", email, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", email, err)
	}
	return lastID, nil
}

// GetByEmail fetches a user by email. Returns (nil, nil) if not found.
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	return scanUser(r.db.QueryRow(selectUserByEmailSQL, email), email)
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(id int64) (*models.User, error) {
	return scanUser(r.db.QueryRow(selectUserByIDSQL, id), id)
}

func scanUser(row *sql.Row, key any) (*models.User, error) {
	var (
		u       models.User
		picture sql.NullString
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &picture)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %v: %w", key, err)
	}
	if picture.Valid {
		u.ProfilePicture = &picture.String
	}
	return &u, nil
}
