package main

import (
	"log"
	"os"

	"woodcraft/internal/adapter/batch"
	"woodcraft/internal/adapter/persistence/repository"
	"woodcraft/internal/config"
	"woodcraft/internal/infrastructure/database"
	"woodcraft/internal/infrastructure/generation"
	"woodcraft/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.Generation.APIKey == "" {
		log.Fatalln("TRIPO_API_KEY is required to run the generation worker")
	}

	c, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
	})
	if err != nil {
		log.Fatalln("Unable to create Temporal client", err)
	}
	defer c.Close()

	ddb := database.ConnectDynamoDB(cfg.AWS)
	designRepo := repository.NewCustomerDesignDynamoRepository(ddb, cfg.DesignsTable)
	genCfg := generation.ConfigFrom(cfg.Generation)
	if err := batch.CheckWaitBudget(genCfg); err != nil {
		log.Fatalf("Invalid generation poll settings: %v", err)
	}
	generator := generation.NewClient(genCfg)
	designs := usecase.NewCustomerDesignUseCase(designRepo, usecase.NewPricingEstimator(), generator)

	identity := "design-worker-" + hostname()
	w := worker.New(c, cfg.Temporal.TaskQueue, worker.Options{
		Identity: identity,
		// Each activity holds a poll loop against the generation service.
		MaxConcurrentActivityExecutionSize: 10,
	})
	w.RegisterWorkflow(batch.GenerateDesignWorkflow)
	w.RegisterActivity(batch.NewActivities(designs, generator))

	log.Printf("[batch][worker] starting task_queue=%s identity=%s", cfg.Temporal.TaskQueue, identity)
	if err := w.Run(worker.InterruptCh()); err != nil {
		log.Fatalln("Unable to start worker", err)
	}
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
