package main

import (
	"database/sql"
	"log"

	"washradar/internal/config"
	"washradar/internal/handlers"
	"washradar/internal/repositories"
	"washradar/internal/services"

	"github.com/redis/go-redis/v9"
)

type application struct {
	infoLog   *log.Logger
	errorLog  *log.Logger
	jwtSecret string

	discoveryHandler *handlers.DiscoveryHandler
	favoritesHandler *handlers.FavoritesHandler
}

func initializeApp(db *sql.DB, rdb *redis.Client, cfg config.Config, infoLog, errorLog *log.Logger) *application {
	catalogRepo := &repositories.CatalogRepository{DB: db}
	favoritesRepo := &repositories.FavoritesRepository{RDB: rdb}

	discoveryService := &services.DiscoveryService{
		Catalog:   catalogRepo,
		Favorites: favoritesRepo,
	}
	favoritesService := &services.FavoritesService{
		Catalog: catalogRepo,
		Store:   favoritesRepo,
	}

	return &application{
		infoLog:   infoLog,
		errorLog:  errorLog,
		jwtSecret: cfg.Auth.JWTSecret,
		discoveryHandler: &handlers.DiscoveryHandler{Service: discoveryService},
		favoritesHandler: &handlers.FavoritesHandler{Service: favoritesService},
	}
}
