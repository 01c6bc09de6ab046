package app

import (
	"lls_backend/docs"
	"lls_backend/internal/config"
	"lls_backend/internal/middleware"
	"lls_backend/internal/model"
	"lls_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/login", c.auth.Login)
		public.POST("/student/register", c.student.Register)
	}

	// 2. 需要登录的路由
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(&cfg.JWT))
	{
		a.registerLearningRoutes(api, c)
		a.registerSubmissionRoutes(api, c)
		a.registerAcademicRoutes(api, c)
		a.registerPeopleRoutes(api, c)
		a.registerAdminRoutes(api, c)
	}
}

func (a *App) registerLearningRoutes(api *gin.RouterGroup, c *controllers) {
	learning := api.Group("/learning")
	staffOnly := middleware.RoleMiddleware(model.RoleStaff)
	anyone := middleware.RoleMiddleware(model.RoleStudent, model.RoleStaff)
	{
		// 测验与作业，学生只能以自己的身份提交
		learning.POST("/quiz/submit", anyone, c.learning.SubmitQuiz)
		learning.GET("/quiz/results/:student_id/:material_id", c.learning.GetQuizResults)
		learning.POST("/assignments/submit", anyone, c.submission.SubmitAssignment)
		learning.GET("/student/:student_id/material/:material_id/submissions", c.submission.GetStudentMaterialSubmissions)
		learning.GET("/student/:student_id/course/:course_id/progress", c.learning.GetCourseProgress)

		// 材料维护
		learning.POST("/materials", staffOnly, c.learning.CreateMaterial)
		learning.POST("/materials/upload", staffOnly, c.learning.UploadMaterial)
		learning.GET("/courses/:course_id/materials", c.learning.GetCourseMaterials)
		learning.GET("/materials/:material_id", c.learning.GetMaterial)
		learning.DELETE("/materials/:material_id", staffOnly, c.learning.DeleteMaterial)
		learning.POST("/assignments", staffOnly, c.learning.CreateAssignment)
		learning.GET("/materials/:material_id/assignments", c.learning.GetAssignments)
		learning.POST("/mcqs", staffOnly, c.learning.CreateMCQ)
		learning.GET("/materials/:material_id/mcqs", c.learning.GetMCQs)
		learning.DELETE("/mcqs/:mcq_id", staffOnly, c.learning.DeleteMCQ)
		learning.GET("/staff/:staff_id/courses", c.learning.GetStaffCourses)
	}
}

func (a *App) registerSubmissionRoutes(api *gin.RouterGroup, c *controllers) {
	submission := api.Group("/submission")
	staffOnly := middleware.RoleMiddleware(model.RoleStaff)
	{
		submission.POST("/submissions", middleware.RoleMiddleware(model.RoleStudent, model.RoleStaff), c.submission.SubmitAssignment)
		submission.POST("/evaluations", staffOnly, c.submission.EvaluateSubmission)
		submission.GET("/students/:student_id/results", c.submission.GetStudentResults)
		submission.GET("/staff/:staff_id/submissions", staffOnly, c.submission.GetStaffSubmissions)
	}
}

func (a *App) registerAcademicRoutes(api *gin.RouterGroup, c *controllers) {
	academic := api.Group("/academic")
	adminOnly := middleware.RoleMiddleware(model.RoleAdmin)
	{
		academic.POST("/academic-years", adminOnly, c.academic.CreateAcademicYear)
		academic.GET("/academic-years", c.academic.GetAcademicYears)
		academic.POST("/programs", adminOnly, c.academic.CreateProgram)
		academic.GET("/programs", c.academic.GetPrograms)
		academic.POST("/courses", adminOnly, c.academic.CreateCourse)
		academic.GET("/courses", c.academic.GetCourses)
		academic.POST("/programs/:program_id/courses", adminOnly, c.academic.AddCourseToProgram)
		academic.GET("/programs/:program_id/courses", c.academic.GetProgramCourses)
		academic.GET("/staff/:staff_id/courses", c.academic.GetStaffCourses)
	}
}

func (a *App) registerPeopleRoutes(api *gin.RouterGroup, c *controllers) {
	adminOnly := middleware.RoleMiddleware(model.RoleAdmin)
	staffOnly := middleware.RoleMiddleware(model.RoleStaff)

	staff := api.Group("/staff")
	{
		staff.POST("/staff", adminOnly, c.staff.CreateStaff)
		staff.GET("/staff", adminOnly, c.staff.GetStaff)
		staff.PUT("/staff/:staff_id", adminOnly, c.staff.UpdateStaff)
	}

	student := api.Group("/student")
	{
		student.POST("/students", adminOnly, c.student.CreateStudent)
		student.GET("/students", staffOnly, c.student.GetStudents)
		student.GET("/students/:student_id", c.student.GetStudent)
		student.GET("/staff/:staff_id/students", staffOnly, c.student.GetStaffStudents)
	}
}

func (a *App) registerAdminRoutes(api *gin.RouterGroup, c *controllers) {
	admin := api.Group("/admin")
	adminOnly := middleware.RoleMiddleware(model.RoleAdmin)
	{
		admin.POST("/payments", adminOnly, c.admin.RecordPayment)
		admin.GET("/payments", adminOnly, c.admin.GetPayments)
		admin.POST("/certificates", adminOnly, c.admin.IssueCertificate)
		admin.GET("/certificates", middleware.RoleMiddleware(model.RoleStaff), c.admin.GetCertificates)
		// 学生可以提交自己的反馈
		admin.POST("/feedback", c.admin.SubmitFeedback)
		admin.GET("/feedback", adminOnly, c.admin.GetFeedback)
		admin.POST("/communications", middleware.RoleMiddleware(model.RoleStaff), c.admin.LogCommunication)
		admin.GET("/communications", middleware.RoleMiddleware(model.RoleStaff), c.admin.GetCommunications)
	}
}
