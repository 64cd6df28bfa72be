package db

import "time"

type Device struct {
	ID         int64     `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	LastUpdate time.Time `db:"last_update" json:"last_update"`
	Status     string    `db:"status" json:"status"`
}
