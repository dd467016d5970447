package inmemdb

import (
	"github.com/trezcool/shule/core/progress"
)

type progressRepository struct {
	db *progressTable
}

var _ progress.Repository = (*progressRepository)(nil) // interface compliance check

func NewProgressRepository(db *DB) progress.Repository {
	return &progressRepository{db: db.progress}
}

func (repo *progressRepository) UpsertQuizScore(username string, score int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	rec, ok := repo.db.table[username]
	if !ok {
		rec = &progress.Record{Username: username}
		repo.db.table[username] = rec
	}
	rec.QuizScore = &score
	return nil
}

func (repo *progressRepository) GetRecord(username string) (progress.Record, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	rec, ok := repo.db.table[username]
	if !ok {
		return progress.Record{}, progress.ErrNotFound
	}

	out := progress.Record{Username: rec.Username}
	if rec.QuizScore != nil {
		score := *rec.QuizScore
		out.QuizScore = &score
	}
	return out, nil
}
