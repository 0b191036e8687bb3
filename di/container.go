package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"hours-server/config"
	"hours-server/dao/redis"
	"hours-server/db"
	"hours-server/server"
	"hours-server/server/handlers"
	services "hours-server/service"
)

// Container holds all application dependencies.
type Container struct {
	Config                 *config.Config
	RedisClient            db.RedisClient
	RedisVenueDao          *redis.RedisVenueDAO
	VenueService           *services.VenueService
	HoursHandler           *handlers.HoursHandler
	VenueHandler           *handlers.VenueHandler
	MuxRouter              *mux.Router
	Router                 *server.Router
	HoursHttpServer        *server.HoursHttpServer
	VenuesRefresherService *services.VenuesRefresherService
}

// NewContainer connects to Redis and wires up all dependencies. With env
// "test" an in-memory Redis is used instead.
func NewContainer(cfg *config.Config) (*Container, error) {
	log.Printf("initializing container - env: %s", cfg.Env)
	ctx := context.Background()

	var redisClient db.RedisClient
	if cfg.Env == "test" {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using in-memory redis")
	} else {
		redisClient = db.NewGeoRedisClient(ctx, goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}))
	}
	if err := redisClient.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Redis.Address, err)
	}
	return newContainer(cfg, redisClient)
}

func newContainer(cfg *config.Config, redisClient db.RedisClient) (*Container, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	redisVenueDao := redis.NewRedisVenueDAO(redisClient)
	venueService := services.NewVenueService(redisVenueDao, services.RealClock{}, loc)

	hoursHandler := handlers.NewHoursHandler(venueService)
	venueHandler := handlers.NewVenueHandler(venueService)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(hoursHandler, venueHandler, muxRouter)
	hoursHttpServer := server.NewHoursHttpServer(router, muxRouter, cfg.Server.ListenAddress)

	venuesRefresherService := services.NewVenuesRefresherService(redisVenueDao, cfg.Catalog.Path)

	return &Container{
		Config:                 cfg,
		RedisClient:            redisClient,
		RedisVenueDao:          redisVenueDao,
		VenueService:           venueService,
		HoursHandler:           hoursHandler,
		VenueHandler:           venueHandler,
		MuxRouter:              muxRouter,
		Router:                 router,
		HoursHttpServer:        hoursHttpServer,
		VenuesRefresherService: venuesRefresherService,
	}, nil
}
