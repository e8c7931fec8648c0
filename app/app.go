package app

import (
	"context"
	"os"
	"time"

	"lostfound/config"
	"lostfound/db"
	"lostfound/geocache"
	"lostfound/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Aliases so handlers don't import gin directly for these.
type Ctx = gin.Context
type H = gin.H

// App aggregates the process-wide dependencies.
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	RDB    *redis.Client
	Log    *logger.Logger
	Config config.Config

	geo *geocache.Store
}

func (a *App) Geocache() *geocache.Store { return a.geo }

func MustNew() *App {
	cfg := config.Load()

	lg, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		panic(err)
	}

	dbConn := db.ConnectDB()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		lg.Fatal("redis unavailable", "addr", cfg.RedisAddr, "error", err)
	}

	r := gin.Default()
	useCORS(r, cfg.WebOrigin)

	return &App{
		Router: r,
		DB:     dbConn,
		RDB:    rdb,
		Log:    lg,
		Config: cfg,
		geo:    geocache.NewStore(rdb, cfg.GeocodeCacheTTL),
	}
}

func (a *App) Close() {
	_ = a.RDB.Close()
	a.Log.Sync()
}
