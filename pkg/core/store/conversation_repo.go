package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"finwise/pkg/core/advisor"
)

// ConversationRepo stores chat exchanges for later review. The advisory core
// never touches it; only the HTTP layer writes here, best-effort.
type ConversationRepo struct {
	pool *pgxpool.Pool
}

// NewConversationRepo creates a new conversation repository.
func NewConversationRepo(pool *pgxpool.Pool) *ConversationRepo {
	return &ConversationRepo{pool: pool}
}

// Exchange is one stored question/answer pair.
type Exchange struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Message    string    `json:"message"`
	Response   string    `json:"response"`
	Confidence float64   `json:"confidence"`
	CreatedAt  time.Time `json:"created_at"`
}

// SaveExchange persists one chat exchange and returns its generated ID.
func (r *ConversationRepo) SaveExchange(ctx context.Context, userID, message string, resp advisor.ChatResponse) (string, error) {
	if r.pool == nil {
		return "", fmt.Errorf("database pool not configured")
	}

	structuredJSON, err := json.Marshal(resp.StructuredData)
	if err != nil {
		return "", fmt.Errorf("failed to marshal structured data: %w", err)
	}

	id := uuid.NewString()
	query := `
		INSERT INTO advisor_exchanges (
			id, user_id, message, response, confidence, structured_data, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	if _, err := r.pool.Exec(ctx, query, id, userID, message, resp.Response, resp.Confidence, structuredJSON); err != nil {
		return "", fmt.Errorf("failed to save exchange: %w", err)
	}
	return id, nil
}

// RecentExchanges returns the latest stored exchanges for a user.
func (r *ConversationRepo) RecentExchanges(ctx context.Context, userID string, limit int) ([]Exchange, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("database pool not configured")
	}
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, user_id, message, response, confidence, created_at
		FROM advisor_exchanges
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchanges: %w", err)
	}
	defer rows.Close()

	var exchanges []Exchange
	for rows.Next() {
		var e Exchange
		if err := rows.Scan(&e.ID, &e.UserID, &e.Message, &e.Response, &e.Confidence, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan exchange: %w", err)
		}
		exchanges = append(exchanges, e)
	}
	return exchanges, rows.Err()
}
