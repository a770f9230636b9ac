package models

import "time"

// Settings is a row of the user_settings table.
type Settings struct {
	UserID           string    `db:"user_id"`
	Theme            string    `db:"theme"`
	CurrencyCode     string    `db:"currency_code"`
	PreviousCurrency *string   `db:"previous_currency_code"`
	UpdatedAt        time.Time `db:"updated_at"`
}
