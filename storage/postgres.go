package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Abhay12911/collaborative-draw-app/domain"
)

// PostgreSQL error codes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type PostgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresRepo(ctx context.Context, connString string) (*PostgresRepo, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	return &PostgresRepo{pool: pool}, nil
}

func (pg *PostgresRepo) Close() {
	pg.pool.Close()
}

func (pg *PostgresRepo) CreateUser(ctx context.Context, username string, passwordHash string) (string, error) {
	row := pg.pool.QueryRow(ctx, "INSERT INTO users(username, password_hash) VALUES($1, $2) RETURNING id", username, passwordHash)

	var id string
	err := row.Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return "", domain.ErrDuplicateUsername
		}

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}

		return "", fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}

	return id, nil
}

func (pg *PostgresRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	user := domain.User{Username: username}

	row := pg.pool.QueryRow(ctx, "SELECT id, password_hash FROM users WHERE username = $1", username)

	err := row.Scan(&user.Id, &user.PasswordHash)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return domain.User{}, domain.ErrUserNotFound
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return domain.User{}, err
		default:
			return domain.User{}, fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
		}
	}

	return user, nil
}

func (pg *PostgresRepo) GetUserById(ctx context.Context, id string) (domain.User, error) {
	user := domain.User{Id: id}

	row := pg.pool.QueryRow(ctx, "SELECT username, password_hash FROM users WHERE id = $1", id)

	err := row.Scan(&user.Username, &user.PasswordHash)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return domain.User{}, domain.ErrUserNotFound
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return domain.User{}, err
		default:
			return domain.User{}, fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
		}
	}

	return user, nil
}

func (pg *PostgresRepo) CreateRoom(ctx context.Context, slug, adminId string) (string, error) {
	row := pg.pool.QueryRow(ctx, "INSERT INTO rooms(slug, admin_id) VALUES($1, $2) RETURNING id", slug, adminId)

	var id string
	err := row.Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return "", domain.ErrDuplicateSlug
		}

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}

		return "", fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}

	return id, nil
}

func (pg *PostgresRepo) GetRoomBySlug(ctx context.Context, slug string) (domain.Room, error) {
	room := domain.Room{Slug: slug}

	row := pg.pool.QueryRow(ctx, "SELECT id, admin_id, created_at FROM rooms WHERE slug = $1", slug)

	err := row.Scan(&room.Id, &room.AdminId, &room.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return domain.Room{}, domain.ErrRoomNotFound
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return domain.Room{}, err
		default:
			return domain.Room{}, fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
		}
	}

	return room, nil
}

// RoomExists implements the broadcaster's lazy existence check.
func (pg *PostgresRepo) RoomExists(ctx context.Context, roomId string) (bool, error) {
	row := pg.pool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM rooms WHERE id = $1)", roomId)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false, err
		}
		return false, fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}

	return exists, nil
}

// CreateChat appends one drawing event. The returned BIGSERIAL id is the
// room's durable ordering.
func (pg *PostgresRepo) CreateChat(ctx context.Context, roomId, userId, message string) (int64, error) {
	row := pg.pool.QueryRow(ctx, "INSERT INTO chats(room_id, user_id, message) VALUES($1, $2, $3) RETURNING id", roomId, userId, message)

	var id int64
	err := row.Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return 0, domain.ErrRoomNotFound
		}

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return 0, err
		}

		return 0, fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}

	return id, nil
}

// GetChatsByRoom returns a room's persisted events in durable order, oldest
// first, the order clients seed their shape store with.
func (pg *PostgresRepo) GetChatsByRoom(ctx context.Context, roomId string, limit int) ([]domain.Chat, error) {
	rows, err := pg.pool.Query(ctx, "SELECT id, user_id, message FROM chats WHERE room_id = $1 ORDER BY id ASC LIMIT $2", roomId, limit)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}
	defer rows.Close()

	chats := make([]domain.Chat, 0, 64)
	for rows.Next() {
		chat := domain.Chat{RoomId: roomId}
		if err := rows.Scan(&chat.Id, &chat.UserId, &chat.Message); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
		}
		chats = append(chats, chat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}

	return chats, nil
}
