package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/jackc/pgx/v4"
)

var (
	ErrInsertFailed           = errors.New("insert operation failed")
	ErrTransactionStartFailed = errors.New("transaction start failed")
	ErrSelectFailed           = errors.New("select operation failed")
)

func (db *DB) UpsertDevices(ctx context.Context, devices []Device) error {
	const fn = "DB:UpsertDevices"
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrTransactionStartFailed, err)
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		} else {
			tx.Commit(ctx)
		}
	}()

	for _, device := range devices {
		_, err = tx.Exec(ctx, `
			INSERT INTO devices (
				id,
				name,
				last_update,
				status
			) VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				last_update = EXCLUDED.last_update,
				status = EXCLUDED.status
		`, device.ID, device.Name, device.LastUpdate, device.Status)
		if err != nil {
			return fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
		}
	}
	return nil
}

// LoadDevices returns the whole directory ordered by id, which is the order
// devices are clustered in.
func (db *DB) LoadDevices(ctx context.Context) ([]Device, error) {
	const fn = "DB:LoadDevices"
	var devices []Device
	err := pgxscan.Select(ctx, db.pool, &devices, `
			SELECT
				id,
				name,
				last_update,
				status
			FROM devices
			ORDER BY id ASC
		`)
	if err != nil {
		if err == pgx.ErrNoRows {
			return []Device{}, nil
		}
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	if devices == nil {
		devices = []Device{}
	}
	return devices, nil
}
