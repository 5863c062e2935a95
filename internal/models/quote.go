package models

import "time"

// Quote is one successfully fetched exchange rate.
type Quote struct {
	Pair      SymbolPair `json:"pair"`
	Bid       string     `json:"bid"`
	FetchedAt time.Time  `json:"fetched_at"`
}

// RateDB mirrors a row of the rates history table.
type RateDB struct {
	ID        int64     `db:"id"`
	Pair      string    `db:"pair"`
	Bid       string    `db:"bid"`
	FetchedAt time.Time `db:"fetched_at"`
}

// RateEvent is the payload published to Kafka after each successful fetch.
type RateEvent struct {
	EventID   string `json:"event_id"`
	Pair      string `json:"pair"`
	Bid       string `json:"bid"`
	FetchedAt int64  `json:"fetched_at"`
}
