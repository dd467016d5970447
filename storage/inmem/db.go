// Package inmemdb provides the in-memory repositories backing the Directory
// and progress records. Nothing survives a restart; that is the point.
//
// Each table carries its own RWMutex: the original design was single-user, but
// the HTTP server serves concurrent clients, so writes are serialized here.
package inmemdb

import (
	"sync"

	"github.com/trezcool/shule/core/course"
	"github.com/trezcool/shule/core/progress"
	"github.com/trezcool/shule/core/user"
)

type (
	DB struct {
		users    *userTable
		courses  *courseTable
		progress *progressTable
	}

	userTable struct {
		sync.RWMutex
		table map[string]*user.User // keyed by username (case-sensitive)
	}

	courseTable struct {
		sync.RWMutex
		seq   int // last assigned course ID; IDs are strictly increasing
		table []*course.Course
	}

	progressTable struct {
		sync.RWMutex
		table map[string]*progress.Record // keyed by username
	}
)

func Open() (*DB, error) {
	db := &DB{
		users:    &userTable{table: make(map[string]*user.User)},
		courses:  &courseTable{},
		progress: &progressTable{table: make(map[string]*progress.Record)},
	}
	return db, nil
}
