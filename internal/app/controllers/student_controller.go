package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/gradebook/internal/app/models/dto"
	"github.com/yigit/gradebook/internal/app/services"
	"github.com/yigit/gradebook/internal/middleware"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// ListStudents lists students
// @Summary List students
// @Description Lists students ordered by ID, optionally limited to one class
// @Tags students
// @Produce json
// @Param class query string false "Class name"
// @Success 200 {object} dto.APIResponse{data=[]models.Student}
// @Failure 401 {object} dto.APIResponse "Login required"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	var q dto.StudentListQuery
	if !middleware.BindQuery(ctx, &q) {
		return
	}

	students, err := c.studentService.List(ctx.Request.Context(), middleware.CurrentSession(ctx), q.ClassName)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccess(students, ""))
}

// ExportStudents downloads the student list
// @Summary Export students
// @Tags students
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet,text/csv
// @Param class query string false "Class name"
// @Param format query string false "xlsx (default) or csv"
// @Success 200 {file} file
// @Failure 401 {object} dto.APIResponse "Login required"
// @Router /students/export [get]
func (c *StudentController) ExportStudents(ctx *gin.Context) {
	format, ok := exportFormat(ctx)
	if !ok {
		return
	}
	var q dto.StudentListQuery
	if !middleware.BindQuery(ctx, &q) {
		return
	}

	students, err := c.studentService.List(ctx.Request.Context(), middleware.CurrentSession(ctx), q.ClassName)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sendTable(ctx, services.StudentsTable(students), format, "students", "Students")
}

// CreateStudent handles student creation
// @Summary Create a new student
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student created"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Login required"
// @Failure 403 {object} dto.APIResponse "Admin only"
// @Failure 409 {object} dto.APIResponse "Student ID already exists"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := c.studentService.Create(ctx.Request.Context(), middleware.CurrentSession(ctx), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccess(student, "Student created"))
}

// GetStudent retrieves a student by ID
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 401 {object} dto.APIResponse "Login required"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.Get(ctx.Request.Context(), middleware.CurrentSession(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccess(student, ""))
}

// GetProfile returns a student with every score and the mean grade point
// @Summary Student profile
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.StudentProfile}
// @Failure 401 {object} dto.APIResponse "Login required"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id}/profile [get]
func (c *StudentController) GetProfile(ctx *gin.Context) {
	profile, err := c.studentService.GetProfile(ctx.Request.Context(), middleware.CurrentSession(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccess(profile, ""))
}

// ExportProfile downloads a student's score sheet
// @Summary Export student profile
// @Tags students
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet,text/csv
// @Param id path string true "Student ID"
// @Param format query string false "xlsx (default) or csv"
// @Success 200 {file} file
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id}/profile/export [get]
func (c *StudentController) ExportProfile(ctx *gin.Context) {
	format, ok := exportFormat(ctx)
	if !ok {
		return
	}

	profile, err := c.studentService.GetProfile(ctx.Request.Context(), middleware.CurrentSession(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sendTable(ctx, services.ProfileTable(profile), format, "student_"+profile.Student.StudentID, "Scores")
}

// UpdateStudent changes some fields of a student
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.ChangeResponse}
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 403 {object} dto.APIResponse "Admin only"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	changed, err := c.studentService.Update(ctx.Request.Context(), middleware.CurrentSession(ctx), ctx.Param("id"), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := "Student updated"
	if !changed {
		message = "No changes"
	}
	ctx.JSON(http.StatusOK, dto.NewSuccess(dto.ChangeResponse{Changed: changed}, message))
}

// DeleteStudent removes a student and every score of the student
// @Summary Delete a student
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} dto.APIResponse{data=dto.DeleteResponse}
// @Failure 400 {object} dto.APIResponse "Confirmation required"
// @Failure 403 {object} dto.APIResponse "Admin only"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	var q dto.ConfirmQuery
	if !middleware.BindQuery(ctx, &q) {
		return
	}

	removed, err := c.studentService.Delete(ctx.Request.Context(), middleware.CurrentSession(ctx), ctx.Param("id"), q.Confirm)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccess(dto.DeleteResponse{Deleted: true, ScoresRemoved: int(removed)}, "Student deleted"))
}
