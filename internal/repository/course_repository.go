package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/superengulfing/site-backend/internal/model"
)

// CourseRepository handles course, lesson, and progress data access.
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

// ListCourses retrieves all courses ordered by position.
func (r *CourseRepository) ListCourses(ctx context.Context) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, slug, title_en, title_am, description_en, description_am, position, created_at, updated_at
		 FROM courses ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.Slug, &c.TitleEN, &c.TitleAM, &c.DescriptionEN, &c.DescriptionAM, &c.Position, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// GetCourseByID retrieves a single course.
func (r *CourseRepository) GetCourseByID(ctx context.Context, id int) (*model.Course, error) {
	c := &model.Course{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, slug, title_en, title_am, description_en, description_am, position, created_at, updated_at
		 FROM courses WHERE id = $1`, id,
	).Scan(&c.ID, &c.Slug, &c.TitleEN, &c.TitleAM, &c.DescriptionEN, &c.DescriptionAM, &c.Position, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListLessonsByCourse retrieves a course's lessons ordered by position.
func (r *CourseRepository) ListLessonsByCourse(ctx context.Context, courseID int) ([]model.Lesson, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, course_id, title_en, title_am, video_url, duration_seconds, position, created_at
		 FROM lessons WHERE course_id = $1 ORDER BY position ASC`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lessons []model.Lesson
	for rows.Next() {
		var l model.Lesson
		if err := rows.Scan(&l.ID, &l.CourseID, &l.TitleEN, &l.TitleAM, &l.VideoURL, &l.DurationSeconds, &l.Position, &l.CreatedAt); err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}
	return lessons, rows.Err()
}

// GetLessonByID retrieves a single lesson.
func (r *CourseRepository) GetLessonByID(ctx context.Context, id int) (*model.Lesson, error) {
	l := &model.Lesson{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, course_id, title_en, title_am, video_url, duration_seconds, position, created_at
		 FROM lessons WHERE id = $1`, id,
	).Scan(&l.ID, &l.CourseID, &l.TitleEN, &l.TitleAM, &l.VideoURL, &l.DurationSeconds, &l.Position, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// MarkWatched upserts a progress row for the user and lesson.
func (r *CourseRepository) MarkWatched(ctx context.Context, userID, lessonID int) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO lesson_progress (user_id, lesson_id, watched_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (user_id, lesson_id) DO NOTHING`,
		userID, lessonID)
	return err
}

// ListProgress retrieves all watched lessons for a user.
func (r *CourseRepository) ListProgress(ctx context.Context, userID int) ([]model.LessonProgress, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT lesson_id, watched_at FROM lesson_progress WHERE user_id = $1 ORDER BY watched_at ASC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var progress []model.LessonProgress
	for rows.Next() {
		var p model.LessonProgress
		if err := rows.Scan(&p.LessonID, &p.WatchedAt); err != nil {
			return nil, err
		}
		progress = append(progress, p)
	}
	return progress, rows.Err()
}
