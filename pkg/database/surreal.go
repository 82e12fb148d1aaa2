package database

import (
	"context"
	"fmt"

	surrealdb "github.com/surrealdb/surrealdb.go"
)

// NewSurrealDB connects over the WebSocket RPC endpoint, signs in when
// credentials are configured, and selects the namespace/database pair.
func NewSurrealDB(ctx context.Context, url, namespace, database, user, pass string) (*surrealdb.DB, error) {
	db, err := surrealdb.FromEndpointURLString(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect to SurrealDB: %w", err)
	}

	if user != "" {
		if _, err := db.SignIn(ctx, surrealdb.Auth{
			Username: user,
			Password: pass,
		}); err != nil {
			return nil, fmt.Errorf("authenticate with SurrealDB: %w", err)
		}
	}

	if err := db.Use(ctx, namespace, database); err != nil {
		return nil, fmt.Errorf("select SurrealDB namespace/database: %w", err)
	}

	return db, nil
}
