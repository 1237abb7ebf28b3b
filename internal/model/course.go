package model

import "time"

// Course groups lessons into a chapter of the video course. Titles and
// descriptions are stored for both locales; views localize on read.
type Course struct {
	ID            int       `json:"id"`
	Slug          string    `json:"slug"`
	TitleEN       string    `json:"title_en"`
	TitleAM       string    `json:"title_am"`
	DescriptionEN string    `json:"description_en"`
	DescriptionAM string    `json:"description_am"`
	Position      int       `json:"position"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Lesson is a single video within a course.
type Lesson struct {
	ID              int       `json:"id"`
	CourseID        int       `json:"course_id"`
	TitleEN         string    `json:"title_en"`
	TitleAM         string    `json:"title_am"`
	VideoURL        string    `json:"video_url"`
	DurationSeconds int       `json:"duration_seconds"`
	Position        int       `json:"position"`
	CreatedAt       time.Time `json:"created_at"`
}

// LessonProgress marks a lesson as watched by a user.
type LessonProgress struct {
	LessonID  int       `json:"lesson_id"`
	WatchedAt time.Time `json:"watched_at"`
}

// CourseView is a localized course with its lessons, as served to the
// dashboard.
type CourseView struct {
	ID          int          `json:"id"`
	Slug        string       `json:"slug"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Position    int          `json:"position"`
	Lessons     []LessonView `json:"lessons"`
}

// LessonView is a localized lesson.
type LessonView struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	VideoURL        string `json:"video_url"`
	DurationSeconds int    `json:"duration_seconds"`
	Position        int    `json:"position"`
	Watched         bool   `json:"watched"`
}
