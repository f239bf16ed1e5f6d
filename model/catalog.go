package model

import "time"

type CatalogEntry struct {
	Key     string
	Voicing Voicing
	// empty when the voicing solved
	Err string
}

type SessionRecord struct {
	ID        string
	StartedAt time.Time
	Keys      []string
}
