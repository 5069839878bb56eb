package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/gradebook/internal/app/controllers"
	"github.com/yigit/gradebook/internal/middleware"
)

// Controllers groups every controller the router needs
type Controllers struct {
	Auth    *controllers.AuthController
	Student *controllers.StudentController
	Course  *controllers.CourseController
	Score   *controllers.ScoreController
	Report  *controllers.ReportController
}

// SetupRouter configures all application routes. The session middleware
// must already be installed on router.
func SetupRouter(router *gin.Engine, c Controllers) {
	v1 := router.Group("/api/v1")
	v1.Use(middleware.SessionAuth())

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.Auth.Login)
		auth.POST("/logout", c.Auth.Logout)
		auth.GET("/session", c.Auth.Session)
	}

	// --- Authenticated Routes Group ---
	// Role checks happen in the services so that every entry point shares them
	authenticated := v1.Group("")
	authenticated.Use(middleware.LoginRequired())

	authenticated.GET("/menu", c.Auth.Menu)

	students := authenticated.Group("/students")
	{
		students.GET("", c.Student.ListStudents)
		students.POST("", c.Student.CreateStudent)
		students.GET("/export", c.Student.ExportStudents)
		students.GET("/:id", c.Student.GetStudent)
		students.PUT("/:id", c.Student.UpdateStudent)
		students.DELETE("/:id", c.Student.DeleteStudent)
		students.GET("/:id/profile", c.Student.GetProfile)
		students.GET("/:id/profile/export", c.Student.ExportProfile)
	}

	courses := authenticated.Group("/courses")
	{
		courses.GET("", c.Course.ListCourses)
		courses.POST("", c.Course.CreateCourse)
		courses.GET("/:id", c.Course.GetCourse)
		courses.PUT("/:id", c.Course.UpdateCourse)
		courses.DELETE("/:id", c.Course.DeleteCourse)
		courses.GET("/:id/scores", c.Course.ListCourseScores)
	}

	scores := authenticated.Group("/scores")
	{
		scores.POST("", c.Score.CreateScore)
		scores.PUT("/:studentId/:courseId", c.Score.UpdateScore)
		scores.DELETE("/:studentId/:courseId", c.Score.DeleteScore)
	}

	reports := authenticated.Group("/reports")
	{
		reports.GET("/ranking", c.Report.Ranking)
		reports.GET("/ranking/export", c.Report.ExportRanking)
		reports.GET("/statistics", c.Report.Statistics)
		reports.GET("/statistics/chart", c.Report.StatisticsChart)
	}
}
