package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
	"travel-planner-service/internal/adapters/catalog"
	"travel-planner-service/internal/adapters/planstore"
	"travel-planner-service/internal/api"
	"travel-planner-service/internal/config"
	"travel-planner-service/internal/platform/db"
	"travel-planner-service/internal/ports"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (embedded/Postgres catalog, memory/Redis
// plan store) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	catalogSource, closeDB := buildCatalog()
	if closeDB != nil {
		defer closeDB()
	}

	store := buildPlanStore()

	router := api.NewRouter(catalogSource, store)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// buildCatalog prefers a Postgres-backed catalog when DATABASE_URL is
// set; otherwise the embedded static catalog serves everything.
func buildCatalog() (ports.CatalogSource, func()) {
	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if databaseURL == "" {
		log.Println("DATABASE_URL not set, using embedded catalog")
		return catalog.NewStaticCatalog(), nil
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	log.Println("Using Postgres catalog")
	return catalog.NewSQLCatalog(conn), func() { conn.Close() }
}

// buildPlanStore prefers Redis when REDIS_URL is set; otherwise plans
// live in process memory for the lifetime of the server.
func buildPlanStore() ports.PlanStore {
	redisURL := strings.TrimSpace(os.Getenv("REDIS_URL"))
	if redisURL == "" {
		log.Println("REDIS_URL not set, using in-memory plan store")
		return planstore.NewMemoryStore()
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("verify redis connection: %v", err)
	}

	log.Println("Using Redis plan store")
	return planstore.NewRedisStore(client, 24*time.Hour)
}
