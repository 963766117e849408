package main

import (
	"log"
	"net/http"
	"os"

	"github.com/curioquest/backend/internal/catalog"
	"github.com/curioquest/backend/internal/database"
	"github.com/curioquest/backend/internal/ledger"
	"github.com/curioquest/backend/internal/tutor"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Missing .env is fine; real deployments set env directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	catalogStore, ledgerStore := buildStores()

	catalogService := catalog.NewService(catalogStore)
	ledgerService := ledger.NewService(ledgerStore, catalogService)
	tutorService := tutor.NewService(tutor.NewClient(), ledgerService)

	catalogHandler := catalog.NewHandler(catalogService)
	ledgerHandler := ledger.NewHandler(ledgerService)
	tutorHandler := tutor.NewHandler(tutorService)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	// Users
	api.HandleFunc("/users", ledgerHandler.CreateUser).Methods("POST")
	api.HandleFunc("/users/{id}", ledgerHandler.GetUser).Methods("GET")
	api.HandleFunc("/users/{id}/score", ledgerHandler.UpdateScore).Methods("POST")
	api.HandleFunc("/users/{id}/streak", ledgerHandler.UpdateStreak).Methods("POST")
	api.HandleFunc("/users/{id}/progress", ledgerHandler.GetProgress).Methods("GET")
	api.HandleFunc("/users/{userId}/progress/{subjectId}", ledgerHandler.UpdateProgress).Methods("POST")
	api.HandleFunc("/users/{id}/quiz-stats", ledgerHandler.QuizStats).Methods("GET")
	api.HandleFunc("/users/{id}/achievements", ledgerHandler.UserAchievements).Methods("GET")

	// Catalog
	api.HandleFunc("/subjects", catalogHandler.ListSubjects).Methods("GET")
	api.HandleFunc("/subjects/{subjectId}/videos", catalogHandler.ListVideosBySubject).Methods("GET")
	api.HandleFunc("/subjects/{subjectId}/quizzes", catalogHandler.ListQuizzesBySubject).Methods("GET")
	api.HandleFunc("/videos", catalogHandler.ListVideos).Methods("GET")
	api.HandleFunc("/videos/{id}/view", ledgerHandler.RecordVideoView).Methods("POST")
	api.HandleFunc("/achievements", catalogHandler.ListAchievements).Methods("GET")

	// Quizzes & leaderboard
	api.HandleFunc("/quiz/random", catalogHandler.RandomQuiz).Methods("GET")
	api.HandleFunc("/quiz/attempt", ledgerHandler.SubmitAttempt).Methods("POST")
	api.HandleFunc("/leaderboard", ledgerHandler.Leaderboard).Methods("GET")

	// AI teacher
	api.HandleFunc("/ai-teacher", tutorHandler.Chat).Methods("POST")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// buildStores picks the storage backend: Postgres when configured, the
// in-memory stores (with demo data) otherwise.
func buildStores() (catalog.Store, ledger.Store) {
	if database.Configured() {
		db, err := database.Connect()
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}

		catalogStore := catalog.NewSQLStore(db)
		if err := catalog.Seed(catalogStore); err != nil {
			log.Fatalf("Failed to seed catalog: %v", err)
		}
		log.Println("Using Postgres storage")
		return catalogStore, ledger.NewSQLStore(db)
	}

	catalogStore := catalog.NewMemStore()
	if err := catalog.Seed(catalogStore); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
	ledgerStore := ledger.NewMemStore()
	ledger.SeedDemoUsers(ledgerStore)
	log.Println("Using in-memory storage")
	return catalogStore, ledgerStore
}
