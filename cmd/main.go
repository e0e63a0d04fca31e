package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/raqazhet/informatics/internal/admin"
	"github.com/raqazhet/informatics/internal/config"
	"github.com/raqazhet/informatics/internal/handlers"
	"github.com/raqazhet/informatics/internal/repository"
	"github.com/raqazhet/informatics/internal/services"
	"github.com/raqazhet/informatics/pkg/database"
	"github.com/raqazhet/informatics/pkg/storage"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Подключаемся к базе данных
	db, err := database.NewDatabase(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Создаем администратора по умолчанию
	if err := db.CreateDefaultAdmin(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Printf("Failed to create default admin: %v", err)
	}

	// Инициализируем файловое хранилище
	files, err := storage.NewStorage(cfg.UploadPath, cfg.MaxFileSize)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Строим реестр списочных представлений
	registry := admin.BuildRegistry()

	// Создаем репозитории
	userRepo := repository.NewUserRepository(db.DB, registry)
	profileRepo := repository.NewProfileRepository(db.DB)
	schoolRepo := repository.NewSchoolRepository(db.DB)
	courseRepo := repository.NewCourseRepository(db.DB)
	lessonRepo := repository.NewLessonRepository(db.DB)
	assignmentRepo := repository.NewAssignmentRepository(db.DB)
	submissionRepo := repository.NewSubmissionRepository(db.DB, registry)
	recommendationRepo := repository.NewRecommendationRepository(db.DB, registry)
	classGroupRepo := repository.NewClassGroupRepository(db.DB, registry)

	// Создаем сервисы
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiration)
	userService := services.NewUserService(userRepo, profileRepo)
	courseService := services.NewCourseService(courseRepo, lessonRepo, assignmentRepo)
	gradingService := services.NewGradingService(submissionRepo, recommendationRepo, files)
	classService := services.NewClassService(classGroupRepo)
	reportService := services.NewReportService(db.DB, registry)

	// Создаем обработчики
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	schoolHandler := handlers.NewSchoolHandler(schoolRepo, reportService)
	courseHandler := handlers.NewCourseHandler(courseService, reportService)
	gradingHandler := handlers.NewGradingHandler(gradingService)
	classHandler := handlers.NewClassHandler(classService, reportService)

	router := gin.Default()
	router.Use(handlers.CORSMiddleware())

	router.POST("/api/auth/login", authHandler.Login)

	// Все операции админ-консоли требуют роль admin
	api := router.Group("/api/admin")
	api.Use(handlers.AuthMiddleware(authService), handlers.AdminOnly())
	{
		api.GET("/users", userHandler.ListUsers)
		api.POST("/users", userHandler.CreateUser)
		api.GET("/users/:id", userHandler.GetUser)
		api.PUT("/users/:id", userHandler.UpdateUser)
		api.DELETE("/users/:id", userHandler.DeleteUser)
		api.POST("/student-profiles", userHandler.CreateStudentProfile)
		api.PUT("/student-profiles/:id", userHandler.UpdateStudentProfile)
		api.POST("/teacher-profiles", userHandler.CreateTeacherProfile)
		api.PUT("/teacher-profiles/:id", userHandler.UpdateTeacherProfile)

		api.GET("/schools", schoolHandler.ListSchools)
		api.POST("/schools", schoolHandler.CreateSchool)
		api.GET("/schools/:id", schoolHandler.GetSchool)
		api.PUT("/schools/:id", schoolHandler.UpdateSchool)
		api.DELETE("/schools/:id", schoolHandler.DeleteSchool)

		api.GET("/courses", courseHandler.ListCourses)
		api.POST("/courses", courseHandler.CreateCourse)
		api.GET("/courses/:id", courseHandler.GetCourse)
		api.PUT("/courses/:id", courseHandler.SaveCourse)
		api.DELETE("/courses/:id", courseHandler.DeleteCourse)

		api.GET("/lessons", courseHandler.ListLessons)
		api.POST("/lessons", courseHandler.CreateLesson)
		api.GET("/lessons/:id", courseHandler.GetLesson)
		api.PUT("/lessons/:id", courseHandler.SaveLesson)
		api.DELETE("/lessons/:id", courseHandler.DeleteLesson)

		api.GET("/assignments", courseHandler.ListAssignments)
		api.POST("/assignments", courseHandler.CreateAssignment)
		api.GET("/assignments/:id", courseHandler.GetAssignment)
		api.PUT("/assignments/:id", courseHandler.UpdateAssignment)
		api.DELETE("/assignments/:id", courseHandler.DeleteAssignment)

		api.GET("/submissions", gradingHandler.ListSubmissions)
		api.POST("/submissions", gradingHandler.CreateSubmission)
		api.GET("/submissions/:id", gradingHandler.GetSubmission)
		api.PUT("/submissions/:id", gradingHandler.UpdateSubmission)
		api.DELETE("/submissions/:id", gradingHandler.DeleteSubmission)
		api.POST("/submissions/:id/file", gradingHandler.UploadSubmissionFile)
		api.POST("/submissions/:id/grade", gradingHandler.GradeSubmission)

		api.GET("/recommendations", gradingHandler.ListRecommendations)
		api.POST("/recommendations", gradingHandler.CreateRecommendation)
		api.GET("/recommendations/:id", gradingHandler.GetRecommendation)
		api.PUT("/recommendations/:id", gradingHandler.UpdateRecommendation)
		api.DELETE("/recommendations/:id", gradingHandler.DeleteRecommendation)

		api.GET("/class-groups", classHandler.ListClassGroups)
		api.POST("/class-groups", classHandler.CreateClassGroup)
		api.GET("/class-groups/:id", classHandler.GetClassGroup)
		api.PUT("/class-groups/:id", classHandler.SaveClassGroup)
		api.DELETE("/class-groups/:id", classHandler.DeleteClassGroup)
		api.POST("/class-groups/:id/students", classHandler.AddStudent)
		api.DELETE("/class-groups/:id/students/:student_id", classHandler.RemoveStudent)
		api.GET("/class-students", classHandler.ListClassStudents)
	}

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	log.Printf("Starting server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
