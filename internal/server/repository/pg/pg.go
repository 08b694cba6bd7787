package pg

import (
	"context"
	"fmt"

	"github.com/avdeyev/authgate/internal/server/repository/pg/migrator"
	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/gorm"
)

// Store владеет соединением и схемой: применяет миграции при старте.
type Store struct {
	conn *gorm.DB
}

func NewStore(conn *gorm.DB) (*Store, error) {
	err := migrator.ApplyMigrations(conn, "file://./migrations")
	if err != nil {
		return nil, fmt.Errorf("no migrations: %w", err)
	}

	return &Store{
		conn: conn,
	}, nil
}

func (st *Store) Ping(ctx context.Context) error {
	err := st.conn.WithContext(ctx).Exec("SELECT 1").Error
	if err != nil {
		return fmt.Errorf("no ping in repository: %w", err)
	}
	return nil
}
