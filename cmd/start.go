/*
Copyright © 2025 studydrop
*/
package cmd

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/studydrop/studydrop-be/config"
	"github.com/studydrop/studydrop-be/handler"
	"github.com/studydrop/studydrop-be/middleware"
	"github.com/studydrop/studydrop-be/service"
	"github.com/studydrop/studydrop-be/types"
)

// startServerCmd represents the start command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the StudyDrop API server",
	Long:  `Starts the HTTP server serving upload, generation and tutor endpoints`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		// Initialize services
		pdfService := service.NewPDFService(types.DocumentServiceConfig{
			MaxChars:    cfg.MaxDocChars,
			PreviewSize: cfg.PreviewSize,
		})
		documentStore := service.NewDocumentStore()

		aiService, err := newAIService(cmd.Context(), cfg)
		if err != nil {
			log.Fatalf("Failed to initialize AI service: %v", err)
		}
		studyService := service.NewStudyService(aiService)
		tutorService := service.NewTutorService(aiService)
		wsService := service.NewWebSocketService(tutorService, documentStore)

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		uploadHandler := handler.NewUploadHandler(pdfService, documentStore)
		generateHandler := handler.NewGenerateHandler(studyService, documentStore)
		tutorHandler := handler.NewTutorHandler(tutorService, documentStore)

		// Setup Gin router
		router := gin.Default()

		// Apply global middleware
		router.Use(corsHandler.CorsMiddleware)
		router.Use(middleware.RequestTimeout(cfg.RequestTimeout))

		router.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "StudyDrop API is running"})
		})

		api := router.Group("/api")
		{
			api.POST("/upload/pdf", uploadHandler.HandleUploadPDF)

			generate := api.Group("/generate")
			{
				generate.POST("/quiz/:doc_id", generateHandler.HandleQuiz)
				generate.POST("/flashcards/:doc_id", generateHandler.HandleFlashcards)
				generate.POST("/mindmap/:doc_id", generateHandler.HandleMindmap)
				generate.POST("/summary/:doc_id", generateHandler.HandleSummary)
				generate.POST("/all/:doc_id", generateHandler.HandleAll)
			}

			tutor := api.Group("/tutor")
			{
				tutor.POST("/chat", tutorHandler.HandleChat)
				tutor.POST("/chat/stream", tutorHandler.HandleChatStream)
			}
		}

		router.GET("/ws/tutor", gin.WrapF(wsService.HandleTutor))

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(startServerCmd)
	startServerCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
}
