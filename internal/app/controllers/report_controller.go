package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/app/models/dto"
	"github.com/yigit/gradebook/internal/app/services"
	"github.com/yigit/gradebook/internal/middleware"
)

// ReportController serves rankings and score statistics
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// Ranking lists every student by mean grade point
// @Summary GPA ranking
// @Tags reports
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.RankEntry}
// @Failure 401 {object} dto.APIResponse "Login required"
// @Router /reports/ranking [get]
func (c *ReportController) Ranking(ctx *gin.Context) {
	entries, err := c.reportService.Ranking(ctx.Request.Context(), middleware.CurrentSession(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccess(entries, ""))
}

// ExportRanking downloads the ranking
// @Summary Export GPA ranking
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet,text/csv
// @Param format query string false "xlsx (default) or csv"
// @Success 200 {file} file
// @Router /reports/ranking/export [get]
func (c *ReportController) ExportRanking(ctx *gin.Context) {
	format, ok := exportFormat(ctx)
	if !ok {
		return
	}

	entries, err := c.reportService.Ranking(ctx.Request.Context(), middleware.CurrentSession(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sendTable(ctx, services.RankingTable(entries), format, "gpa_ranking", "Ranking")
}

// Statistics summarizes the scores of a course
// @Summary Score statistics
// @Description Band counts, percentages and the mean score of a course, within one class when class is given
// @Tags reports
// @Produce json
// @Param course query string true "Course ID"
// @Param class query string false "Class name"
// @Success 200 {object} dto.APIResponse{data=models.ScoreStatistics}
// @Failure 404 {object} dto.APIResponse "Course not found or no scores"
// @Router /reports/statistics [get]
func (c *ReportController) Statistics(ctx *gin.Context) {
	var q dto.StatisticsQuery
	if !middleware.BindQuery(ctx, &q) {
		return
	}

	var (
		stats *models.ScoreStatistics
		err   error
	)
	sess := middleware.CurrentSession(ctx)
	if q.ClassName == "" {
		stats, err = c.reportService.CourseStatistics(ctx.Request.Context(), sess, q.CourseID)
	} else {
		stats, err = c.reportService.ClassCourseStatistics(ctx.Request.Context(), sess, q.ClassName, q.CourseID)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccess(stats, ""))
}

// StatisticsChart renders the score distribution of a course as a PNG
// @Summary Score distribution chart
// @Tags reports
// @Produce png
// @Param course query string true "Course ID"
// @Param class query string false "Class name"
// @Success 200 {file} file
// @Failure 404 {object} dto.APIResponse "Course not found or no scores"
// @Router /reports/statistics/chart [get]
func (c *ReportController) StatisticsChart(ctx *gin.Context) {
	var q dto.StatisticsQuery
	if !middleware.BindQuery(ctx, &q) {
		return
	}

	img, err := c.reportService.StatisticsChart(ctx.Request.Context(), middleware.CurrentSession(ctx), q.ClassName, q.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sendFile(ctx, img, "image/png", "statistics_"+q.CourseID+".png")
}
