package main

import (
	"log"
	"time"

	"exam-portal/internal/config"
	"exam-portal/internal/db"
	"exam-portal/internal/event"
	"exam-portal/internal/handlers"
	"exam-portal/internal/middleware"
	"exam-portal/internal/models"
	"exam-portal/internal/repository"
	"exam-portal/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.New()
	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(cfg.MongoURI)
	defer db.Disconnect()

	// RabbitMQ event publisher
	var publisher *event.Publisher
	if cfg.RabbitMQURI != "" && cfg.RabbitMQExchange != "" {
		var err error
		publisher, err = event.NewPublisher(cfg.RabbitMQURI, cfg.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, portal events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FEAddress},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database(cfg.MongoDatabase)

	// Users
	userRepo := repository.NewUserRepository(database)
	userService := service.NewUserService(userRepo)
	userHandler := handlers.NewUserHandler(userService)

	// Auth
	authService := service.NewAuthService(userRepo, service.PlaintextVerifier{}, cfg)
	authHandler := handlers.NewAuthHandler(authService)

	// Questions
	questionRepo := repository.NewQuestionRepository(database)
	questionService := service.NewQuestionService(questionRepo)
	questionHandler := handlers.NewQuestionHandler(questionService)

	// Quiz and results
	quizService := service.NewQuizService(questionRepo)
	resultService := service.NewResultService()
	quizHandler := handlers.NewQuizHandler(quizService, resultService)

	api := r.Group("/api")
	{
		api.POST("/login", authHandler.Login)
		api.POST("/logout", middleware.Auth(authService), authHandler.Logout)
	}

	admin := api.Group("/admin", middleware.Auth(authService), middleware.RequireRole(models.RoleAdmin))
	{
		admin.POST("/users", func(c *gin.Context) {
			userHandler.CreateUser(c)
			publisher.Publish("user.created", gin.H{"timestamp": time.Now()})
		})
	}

	teacher := api.Group("/teacher", middleware.Auth(authService), middleware.RequireRole(models.RoleTeacher))
	{
		teacher.POST("/questions", func(c *gin.Context) {
			questionHandler.CreateQuestion(c)
			publisher.Publish("question.created", gin.H{"timestamp": time.Now()})
		})
	}

	student := api.Group("/student", middleware.Auth(authService), middleware.RequireRole(models.RoleStudent))
	{
		student.GET("/quiz", quizHandler.GetQuiz)
		student.POST("/quiz/submit", func(c *gin.Context) {
			quizHandler.SubmitQuiz(c)
			publisher.Publish("quiz.submitted", gin.H{"timestamp": time.Now()})
		})
	}

	r.Run(":" + cfg.Port)
}
