package inmemdb

import (
	"github.com/trezcool/shule/core/course"
)

type courseRepository struct {
	db *courseTable
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *DB) course.Repository {
	return &courseRepository{db: db.courses}
}

func (repo *courseRepository) CreateCourse(crs course.Course) (course.Course, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.seq++
	crs.ID = repo.db.seq
	repo.db.table = append(repo.db.table, &crs)
	return crs, nil
}

func (repo *courseRepository) CoursesByInstructor(username string) ([]course.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	// the table is append-only, so iteration order is creation order
	courses := make([]course.Course, 0, len(repo.db.table))
	for _, crs := range repo.db.table {
		if crs.Instructor == username {
			courses = append(courses, *crs)
		}
	}
	return courses, nil
}

func (repo *courseRepository) CountCourses() (int, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return len(repo.db.table), nil
}
