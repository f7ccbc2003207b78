package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/nepal-utilities/backend/internal/auth"
	"github.com/nepal-utilities/backend/internal/bank"
	"github.com/nepal-utilities/backend/internal/calendar"
	"github.com/nepal-utilities/backend/internal/config"
	"github.com/nepal-utilities/backend/internal/contact"
	"github.com/nepal-utilities/backend/internal/database"
	"github.com/nepal-utilities/backend/internal/exam"
	"github.com/nepal-utilities/backend/internal/middleware"
	"github.com/robfig/cron/v3"
	"github.com/rs/cors"
)

func main() {
	cfg := config.Load()

	// Question banks
	var (
		db    *sql.DB
		store *bank.Store
		src   bank.Source
	)
	switch cfg.BankSource {
	case config.BankSourceDB:
		var err error
		db, err = database.Connect(database.Options{
			Driver:     cfg.DBDriver,
			Host:       cfg.DBHost,
			Port:       cfg.DBPort,
			User:       cfg.DBUser,
			Password:   cfg.DBPassword,
			Name:       cfg.DBName,
			SSLMode:    cfg.DBSSLMode,
			SQLitePath: cfg.SQLitePath,
		})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := database.Migrate(db, cfg.DBDriver); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		store = bank.NewStore(db)
		src = store
	case config.BankSourceHTTP:
		if cfg.BankBaseURL == "" {
			log.Fatal("BANK_BASE_URL is required when BANK_SOURCE=http")
		}
		src = bank.NewHTTPSource(cfg.BankBaseURL, &http.Client{Timeout: 15 * time.Second})
	default:
		src = bank.NewDirSource(cfg.BankDir)
	}
	log.Printf("[bank] serving question banks from %s", cfg.BankSource)

	cache := bank.NewCache(src)
	manager := exam.NewManager(cache, exam.WithTimeLimit(exam.DefaultConfig(), cfg.ExamTimeLimitMins))

	// Initialize handlers
	calendarHandler := calendar.NewHandler()
	examHandler := exam.NewHandler(manager, exam.NewPractice(cache))
	authHandler := auth.NewHandler(cfg.AdminUsername, cfg.AdminPasswordHash, []byte(cfg.JWTSecret))

	// Setup router
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger)
	api := r.PathPrefix("/api/v1").Subrouter()

	// Calendar
	api.HandleFunc("/calendar/to-bs", calendarHandler.ConvertToBS).Methods("POST")
	api.HandleFunc("/calendar/to-ad", calendarHandler.ConvertToAD).Methods("POST")
	api.HandleFunc("/calendar/today", calendarHandler.Today).Methods("GET")
	api.HandleFunc("/calendar/bs/{year:[0-9]+}/{month:[0-9]+}", calendarHandler.MonthGrid).Methods("GET")

	// Exam sessions
	api.HandleFunc("/exam/categories", examHandler.ListCategories).Methods("GET")
	api.HandleFunc("/exam/sessions", examHandler.CreateSession).Methods("POST")
	api.HandleFunc("/exam/sessions/{id}", examHandler.GetSession).Methods("GET")
	api.HandleFunc("/exam/sessions/{id}", examHandler.ExitSession).Methods("DELETE")
	api.HandleFunc("/exam/sessions/{id}/category", examHandler.SelectCategory).Methods("POST")
	api.HandleFunc("/exam/sessions/{id}/language", examHandler.ChooseLanguage).Methods("POST")
	api.HandleFunc("/exam/sessions/{id}/display", examHandler.SetDisplayMode).Methods("POST")
	api.HandleFunc("/exam/sessions/{id}/begin", examHandler.Begin).Methods("POST")
	api.HandleFunc("/exam/sessions/{id}/answers", examHandler.RecordAnswer).Methods("PUT")
	api.HandleFunc("/exam/sessions/{id}/navigate", examHandler.Navigate).Methods("POST")
	api.HandleFunc("/exam/sessions/{id}/flags/{index}", examHandler.ToggleFlag).Methods("POST")
	api.HandleFunc("/exam/sessions/{id}/complete", examHandler.Complete).Methods("POST")
	api.HandleFunc("/exam/sessions/{id}/review", examHandler.EnterReview).Methods("POST")
	api.HandleFunc("/exam/sessions/{id}/review", examHandler.ExitReview).Methods("DELETE")
	api.HandleFunc("/exam/sessions/{id}/retake", examHandler.Retake).Methods("POST")

	// Practice
	api.HandleFunc("/exam/banks/{category}/sections", examHandler.ListSections).Methods("GET")
	api.HandleFunc("/exam/banks/{category}/sections/{index}/flashcards", examHandler.Flashcards).Methods("GET")
	api.HandleFunc("/exam/banks/{category}/check", examHandler.CheckPractice).Methods("POST")

	// Contact
	if cfg.ContactEnabled() {
		relay := contact.NewEmailJS(contact.EmailJSConfig{
			ServiceID:  cfg.EmailJSServiceID,
			TemplateID: cfg.EmailJSTemplateID,
			PublicKey:  cfg.EmailJSPublicKey,
			PrivateKey: cfg.EmailJSPrivateKey,
		}, &http.Client{Timeout: 10 * time.Second})
		api.HandleFunc("/contact", contact.NewHandler(relay).Submit).Methods("POST")
	} else {
		log.Println("WARN: EmailJS is not configured, contact form disabled")
	}

	// Admin
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	if authHandler.Enabled() {
		protected := api.PathPrefix("").Subrouter()
		protected.Use(middleware.AuthMiddleware([]byte(cfg.JWTSecret)))
		protected.HandleFunc("/auth/me", authHandler.GetCurrentAdmin).Methods("GET")

		if store != nil {
			bankHandler := bank.NewHandler(store, cache)
			protected.HandleFunc("/admin/banks", bankHandler.List).Methods("GET")
			protected.HandleFunc("/admin/banks/{category}", bankHandler.Put).Methods("PUT")
			protected.HandleFunc("/admin/banks/{category}", bankHandler.Delete).Methods("DELETE")
		}
	}

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	// Idle exam sessions
	sweeper := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := sweeper.AddFunc(cfg.SessionSweepSpec, func() {
		manager.Sweep(cfg.SessionIdleTimeout)
	}); err != nil {
		log.Fatalf("Invalid SESSION_SWEEP_SPEC %q: %v", cfg.SessionSweepSpec, err)
	}
	sweeper.Start()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           c.Handler(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	<-sweeper.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
}
