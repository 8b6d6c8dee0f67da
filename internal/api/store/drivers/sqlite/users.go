package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/certmint/certmint/internal/api/domain"
)

type usersRepo struct {
	db DBTX
}

const userColumns = `id, email, wallet_address, name, password_hash, role, email_verified, created_at, updated_at`

func (r *usersRepo) scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var (
		u             domain.User
		walletAddress sql.NullString
		passwordHash  sql.NullString
		role          string
	)

	err := row.Scan(
		&u.ID,
		&u.Email,
		&walletAddress,
		&u.Name,
		&passwordHash,
		&role,
		&u.EmailVerified,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}

	u.WalletAddress = mapNullString(walletAddress)
	u.PasswordHash = mapNullString(passwordHash)
	u.Role = domain.Role(role)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)

	u, err := r.scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)

	u, err := r.scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID,
		u.Email,
		mapOptionalString(u.WalletAddress),
		u.Name,
		mapOptionalString(u.PasswordHash),
		string(u.Role),
		u.EmailVerified,
		u.CreatedAt,
		u.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *usersRepo) SetEmailVerified(ctx context.Context, userID string, verified bool) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET email_verified = ?, updated_at = ? WHERE id = ?`,
		verified, time.Now().UTC(), userID)
	return err
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID string, newHash string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		newHash, time.Now().UTC(), userID)
	return err
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := r.scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
