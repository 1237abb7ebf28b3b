package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/superengulfing/site-backend/internal/locale"
	"github.com/superengulfing/site-backend/internal/middleware"
	"github.com/superengulfing/site-backend/internal/response"
	"github.com/superengulfing/site-backend/internal/service"
)

// CourseHandler serves localized course content to authenticated members.
type CourseHandler struct {
	courseService *service.CourseService
	userService   *service.UserService
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courseService *service.CourseService, userService *service.UserService) *CourseHandler {
	return &CourseHandler{courseService: courseService, userService: userService}
}

// ListCourses godoc
// GET /api/v1/courses
// Content language follows the profile locale; ?locale= overrides it
// for a single request.
func (h *CourseHandler) ListCourses(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	l, ok := h.contentLocale(c, claims.UserID)
	if !ok {
		return
	}

	courses, err := h.courseService.ListCourses(c.Request.Context(), l, claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"courses": courses, "locale": l})
}

// GetCourse godoc
// GET /api/v1/courses/:id
func (h *CourseHandler) GetCourse(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	l, ok := h.contentLocale(c, claims.UserID)
	if !ok {
		return
	}

	course, err := h.courseService.GetCourse(c.Request.Context(), id, l, claims.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"course": course, "locale": l})
}

// MarkWatched godoc
// POST /api/v1/lessons/:id/progress
func (h *CourseHandler) MarkWatched(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	lessonID, err := strconv.Atoi(c.Param("id"))
	if err != nil || lessonID < 1 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.courseService.MarkWatched(c.Request.Context(), claims.UserID, lessonID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"lesson_id": lessonID, "watched": true})
}

// ListProgress godoc
// GET /api/v1/me/progress
func (h *CourseHandler) ListProgress(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	progress, err := h.courseService.ListProgress(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"progress": progress})
}

// contentLocale resolves the language for course content. The profile
// locale wins; an explicit ?locale= query can override it. Replies with
// an error response and returns false when the override is bogus.
func (h *CourseHandler) contentLocale(c *gin.Context, userID int) (locale.Locale, bool) {
	if raw := c.Query("locale"); raw != "" {
		l := locale.Locale(raw)
		if !locale.Valid(l) {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidLocale)
			return "", false
		}
		return l, true
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return "", false
	}
	if locale.Valid(user.Locale) {
		return user.Locale, true
	}
	return locale.LocaleEN, true
}
