package postgres

import (
	"database/sql"

	"toolrental-pos/internal/repository"

	_ "github.com/lib/pq"
)

// Store bundles the Postgres-backed repositories.
type Store struct {
	db *sql.DB
	repository.AgreementRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		AgreementRepository: NewAgreementRepository(db),
	}
}
