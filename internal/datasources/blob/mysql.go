package blob

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/huandu/go-sqlbuilder"
)

const driverParamStr string = "?parseTime=true"

var _ Storage = (*MySQL)(nil)

// MySQL stores the slot as a single row in a key/value table, giving the
// collection the same wholesale-overwrite semantics as the other drivers
// while letting deployments reuse an existing database.
type MySQL struct {
	db   *sql.DB
	slot string
}

func ConnectMySQL(ctx context.Context, uri, slot string) (*MySQL, error) {
	db, err := sql.Open("mysql", uri+driverParamStr)
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL DB: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("checking MySQL DB connection: %w", err)
	}

	m := &MySQL{db: db, slot: slot}
	if err := m.ensureTable(ctx); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *MySQL) ensureTable(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS blob_slots (
			slot VARCHAR(191) NOT NULL PRIMARY KEY,
			data LONGBLOB NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("creating blob_slots table: %w", err)
	}
	return nil
}

func (m *MySQL) Load(ctx context.Context) ([]byte, bool, error) {
	sb := sqlbuilder.Select("data")
	sb.From("blob_slots")
	sb.Where(sb.Equal("slot", m.slot))

	query, args := sb.Build()

	var data []byte
	err := m.db.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading blob slot: %w", err)
	}

	return data, true, nil
}

func (m *MySQL) Store(ctx context.Context, data []byte) error {
	ib := sqlbuilder.NewInsertBuilder()
	ib.InsertInto("blob_slots")
	ib.Cols("slot", "data")
	ib.Values(m.slot, data)
	ib.SQL("ON DUPLICATE KEY UPDATE data = VALUES(data)")

	query, args := ib.Build()

	if _, err := m.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("writing blob slot: %w", err)
	}
	return nil
}

func (m *MySQL) Close() error {
	return m.db.Close()
}
