package sqlite

import (
	"database/sql"

	"github.com/certmint/certmint/internal/api/store"
)

// tx is a transaction-scoped view over the same repos.
type tx struct {
	db *sql.Tx
}

func (t *tx) Users() store.Users               { return &usersRepo{db: t.db} }
func (t *tx) Quizzes() store.Quizzes           { return &quizzesRepo{db: t.db} }
func (t *tx) Submissions() store.Submissions   { return &submissionsRepo{db: t.db} }
func (t *tx) Certificates() store.Certificates { return &certificatesRepo{db: t.db} }
