package main

import (
	"context"
	"log"

	"survey-interview-be/internal/bootstrap"
	"survey-interview-be/internal/config"
	"survey-interview-be/internal/server"
	"survey-interview-be/internal/tracer"
	"survey-interview-be/pkg/database"

	"gorm.io/gorm"
)

func main() {
	// 1. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Load Configuration
	cfg := config.Load()

	// Rule configuration is validated up front: a broken rule set must stop
	// the process, not produce undefined segmentation at runtime.
	surveyCfg, err := config.LoadSurveyConfig(cfg.Survey.ConfigPath)
	if err != nil {
		log.Fatalf("Fatal: %v", err)
	}

	// 3. Initialize Database (optional; in-memory store without it)
	var gormDB *gorm.DB
	if cfg.Database.Connection != "" {
		gormDB, err = database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Panicf("Unable to connect to GORM DB: %v", err)
		}
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, surveyCfg, cfg)

	// 5. Start Background Services
	go func() {
		log.Println("Background: Starting Session Events Consumer...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 6. Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
