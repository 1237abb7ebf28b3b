package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/superengulfing/site-backend/internal/locale"
	"github.com/superengulfing/site-backend/internal/model"
	"github.com/superengulfing/site-backend/internal/repository"
)

// CourseService serves localized course content and watch progress.
type CourseService struct {
	courseRepo *repository.CourseRepository
	log        zerolog.Logger
}

// NewCourseService creates a new CourseService.
func NewCourseService(courseRepo *repository.CourseRepository, log zerolog.Logger) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		log:        log.With().Str("component", "course_service").Logger(),
	}
}

// ListCourses returns every course localized for l, with the user's
// watch state folded in.
func (s *CourseService) ListCourses(ctx context.Context, l locale.Locale, userID int) ([]model.CourseView, error) {
	courses, err := s.courseRepo.ListCourses(ctx)
	if err != nil {
		return nil, err
	}

	watched, err := s.watchedSet(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]model.CourseView, 0, len(courses))
	for _, c := range courses {
		lessons, err := s.courseRepo.ListLessonsByCourse(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, localizeCourse(&c, lessons, l, watched))
	}
	return views, nil
}

// GetCourse returns one localized course with lessons and progress.
func (s *CourseService) GetCourse(ctx context.Context, id int, l locale.Locale, userID int) (*model.CourseView, error) {
	c, err := s.courseRepo.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	lessons, err := s.courseRepo.ListLessonsByCourse(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	watched, err := s.watchedSet(ctx, userID)
	if err != nil {
		return nil, err
	}
	view := localizeCourse(c, lessons, l, watched)
	return &view, nil
}

// MarkWatched records lesson completion for the user. The lesson must
// exist; unknown IDs surface as a not-found error from the repository.
func (s *CourseService) MarkWatched(ctx context.Context, userID, lessonID int) error {
	if _, err := s.courseRepo.GetLessonByID(ctx, lessonID); err != nil {
		return err
	}
	return s.courseRepo.MarkWatched(ctx, userID, lessonID)
}

// ListProgress returns the user's watched lessons.
func (s *CourseService) ListProgress(ctx context.Context, userID int) ([]model.LessonProgress, error) {
	return s.courseRepo.ListProgress(ctx, userID)
}

func (s *CourseService) watchedSet(ctx context.Context, userID int) (map[int]bool, error) {
	progress, err := s.courseRepo.ListProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	watched := make(map[int]bool, len(progress))
	for _, p := range progress {
		watched[p.LessonID] = true
	}
	return watched, nil
}

func localizeCourse(c *model.Course, lessons []model.Lesson, l locale.Locale, watched map[int]bool) model.CourseView {
	view := model.CourseView{
		ID:       c.ID,
		Slug:     c.Slug,
		Position: c.Position,
	}
	if l == locale.LocaleAM && c.TitleAM != "" {
		view.Title, view.Description = c.TitleAM, c.DescriptionAM
	} else {
		view.Title, view.Description = c.TitleEN, c.DescriptionEN
	}

	view.Lessons = make([]model.LessonView, 0, len(lessons))
	for _, lesson := range lessons {
		lv := model.LessonView{
			ID:              lesson.ID,
			VideoURL:        lesson.VideoURL,
			DurationSeconds: lesson.DurationSeconds,
			Position:        lesson.Position,
			Watched:         watched[lesson.ID],
		}
		if l == locale.LocaleAM && lesson.TitleAM != "" {
			lv.Title = lesson.TitleAM
		} else {
			lv.Title = lesson.TitleEN
		}
		view.Lessons = append(view.Lessons, lv)
	}
	return view
}
