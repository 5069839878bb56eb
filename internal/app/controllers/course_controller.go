package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/gradebook/internal/app/models/dto"
	"github.com/yigit/gradebook/internal/app/services"
	"github.com/yigit/gradebook/internal/middleware"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService services.CourseService
	scoreService  services.ScoreService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService, scoreService services.ScoreService) *CourseController {
	return &CourseController{
		courseService: courseService,
		scoreService:  scoreService,
	}
}

// ListCourses lists every course
// @Summary List courses
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Course}
// @Failure 401 {object} dto.APIResponse "Login required"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.courseService.List(ctx.Request.Context(), middleware.CurrentSession(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccess(courses, ""))
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course created"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 403 {object} dto.APIResponse "Admin only"
// @Failure 409 {object} dto.APIResponse "Course ID already exists"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	course, err := c.courseService.Create(ctx.Request.Context(), middleware.CurrentSession(ctx), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccess(course, "Course created"))
}

// GetCourse retrieves a course by ID
// @Summary Get course by ID
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.courseService.Get(ctx.Request.Context(), middleware.CurrentSession(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccess(course, ""))
}

// ListCourseScores lists the scores recorded for a course
// @Summary Scores of a course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]models.CourseScoreEntry}
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /courses/{id}/scores [get]
func (c *CourseController) ListCourseScores(ctx *gin.Context) {
	entries, err := c.scoreService.ListByCourse(ctx.Request.Context(), middleware.CurrentSession(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccess(entries, ""))
}

// UpdateCourse changes some fields of a course
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.ChangeResponse}
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 403 {object} dto.APIResponse "Admin only"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req dto.UpdateCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	changed, err := c.courseService.Update(ctx.Request.Context(), middleware.CurrentSession(ctx), ctx.Param("id"), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := "Course updated"
	if !changed {
		message = "No changes"
	}
	ctx.JSON(http.StatusOK, dto.NewSuccess(dto.ChangeResponse{Changed: changed}, message))
}

// DeleteCourse removes a course that has no scores
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} dto.APIResponse{data=dto.DeleteResponse}
// @Failure 400 {object} dto.APIResponse "Confirmation required"
// @Failure 403 {object} dto.APIResponse "Admin only"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Failure 409 {object} dto.APIResponse "Course has scores"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	var q dto.ConfirmQuery
	if !middleware.BindQuery(ctx, &q) {
		return
	}

	if err := c.courseService.Delete(ctx.Request.Context(), middleware.CurrentSession(ctx), ctx.Param("id"), q.Confirm); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccess(dto.DeleteResponse{Deleted: true}, "Course deleted"))
}
