package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/gradebook/internal/app/models/dto"
	"github.com/yigit/gradebook/internal/app/services"
	"github.com/yigit/gradebook/internal/middleware"
)

// ScoreController handles score entry
type ScoreController struct {
	scoreService services.ScoreService
}

// NewScoreController creates a new ScoreController
func NewScoreController(scoreService services.ScoreService) *ScoreController {
	return &ScoreController{
		scoreService: scoreService,
	}
}

// CreateScore records a score
// @Summary Record a score
// @Description Records the score of a student in a course. Each pair can be scored once.
// @Tags scores
// @Accept json
// @Produce json
// @Param request body dto.CreateScoreRequest true "Score"
// @Success 201 {object} dto.APIResponse{data=models.Score} "Score recorded"
// @Failure 400 {object} dto.APIResponse "Score is not a number in [0, 100]"
// @Failure 403 {object} dto.APIResponse "Admin only"
// @Failure 404 {object} dto.APIResponse "Student or course not found"
// @Failure 409 {object} dto.APIResponse "Score already recorded"
// @Router /scores [post]
func (c *ScoreController) CreateScore(ctx *gin.Context) {
	var req dto.CreateScoreRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	score, err := c.scoreService.Create(ctx.Request.Context(), middleware.CurrentSession(ctx), req.StudentID, req.CourseID, req.Score.String())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccess(score, "Score recorded"))
}

// UpdateScore replaces a recorded score
// @Summary Update a score
// @Tags scores
// @Accept json
// @Produce json
// @Param studentId path string true "Student ID"
// @Param courseId path string true "Course ID"
// @Param request body dto.UpdateScoreRequest true "New score"
// @Success 200 {object} dto.APIResponse{data=dto.ChangeResponse}
// @Failure 400 {object} dto.APIResponse "Score is not a number in [0, 100]"
// @Failure 403 {object} dto.APIResponse "Admin only"
// @Failure 404 {object} dto.APIResponse "Score not found"
// @Router /scores/{studentId}/{courseId} [put]
func (c *ScoreController) UpdateScore(ctx *gin.Context) {
	var req dto.UpdateScoreRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	changed, err := c.scoreService.Update(ctx.Request.Context(), middleware.CurrentSession(ctx),
		ctx.Param("studentId"), ctx.Param("courseId"), req.Score.String())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := "Score updated"
	if !changed {
		message = "No changes"
	}
	ctx.JSON(http.StatusOK, dto.NewSuccess(dto.ChangeResponse{Changed: changed}, message))
}

// DeleteScore removes a recorded score
// @Summary Delete a score
// @Tags scores
// @Produce json
// @Param studentId path string true "Student ID"
// @Param courseId path string true "Course ID"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} dto.APIResponse{data=dto.DeleteResponse}
// @Failure 400 {object} dto.APIResponse "Confirmation required"
// @Failure 403 {object} dto.APIResponse "Admin only"
// @Failure 404 {object} dto.APIResponse "Score not found"
// @Router /scores/{studentId}/{courseId} [delete]
func (c *ScoreController) DeleteScore(ctx *gin.Context) {
	var q dto.ConfirmQuery
	if !middleware.BindQuery(ctx, &q) {
		return
	}

	err := c.scoreService.Delete(ctx.Request.Context(), middleware.CurrentSession(ctx),
		ctx.Param("studentId"), ctx.Param("courseId"), q.Confirm)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccess(dto.DeleteResponse{Deleted: true}, "Score deleted"))
}
