package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cloudwego/hertz/pkg/app/server"

	fielddatamock "farmatro/internal/adapter/fielddata/mock"
	httpadapter "farmatro/internal/adapter/http"
	metricsinmem "farmatro/internal/adapter/metrics/inmemory"
	gormrepo "farmatro/internal/adapter/repo/gorm"
	memrepo "farmatro/internal/adapter/repo/memory"
	"farmatro/internal/app/observe"
	"farmatro/internal/app/play"
	"farmatro/internal/app/ports"
	"farmatro/internal/app/replay"
	"farmatro/internal/app/session"
	"farmatro/internal/domain/farm"
)

type config struct {
	Addr          string  `env:"FARMATRO_ADDR" envDefault:":8080"`
	DBDSN         string  `env:"FARMATRO_DB_DSN"`
	MigrationsDir string  `env:"FARMATRO_MIGRATIONS_DIR" envDefault:"./internal/adapter/repo/gorm/migrations"`
	FieldLat      float64 `env:"FARMATRO_FIELD_LAT" envDefault:"-9.3963"`
	FieldLon      float64 `env:"FARMATRO_FIELD_LON" envDefault:"-40.5121"`
	FieldName     string  `env:"FARMATRO_FIELD_NAME" envDefault:"Northeast Brazil"`
	ShuffleSeed   int64   `env:"FARMATRO_SHUFFLE_SEED"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse env: %v", err)
	}

	gameRepo, eventRepo, txManager := mustBuildRepos(cfg)
	fieldData := &fielddatamock.Provider{}
	kpiRecorder := metricsinmem.NewRecorder()
	rounds := farm.NewRoundService(rand.New(rand.NewSource(shuffleSeed(cfg))))
	location := ports.Location{Lat: cfg.FieldLat, Lon: cfg.FieldLon, Name: cfg.FieldName}

	h := httpadapter.Handler{
		StartUC: session.StartUseCase{
			TxManager: txManager,
			GameRepo:  gameRepo,
			EventRepo: eventRepo,
			FieldData: fieldData,
			Rounds:    rounds,
			Location:  location,
			Now:       time.Now,
		},
		ReadingsUC: session.ReadingsUseCase{FieldData: fieldData, Location: location},
		ObserveUC:  observe.UseCase{GameRepo: gameRepo},
		PlayUC: play.UseCase{
			TxManager: txManager,
			GameRepo:  gameRepo,
			EventRepo: eventRepo,
			Metrics:   kpiRecorder,
			Rounds:    rounds,
			Now:       time.Now,
		},
		ReplayUC: replay.UseCase{Events: eventRepo},
		KPI:      kpiRecorder,
	}

	s := server.Default(server.WithHostPorts(cfg.Addr))
	h.RegisterRoutes(s)

	log.Printf("farmatro server listening on %s (field: %s)", cfg.Addr, cfg.FieldName)
	s.Spin()
}

func mustBuildRepos(cfg config) (ports.GameRepository, ports.EventRepository, ports.TxManager) {
	if cfg.DBDSN == "" {
		log.Println("FARMATRO_DB_DSN not set, using in-memory store")
		store := memrepo.NewStore()
		return memrepo.NewGameRepo(store), memrepo.NewEventRepo(store), memrepo.NewTxManager(store)
	}

	db, err := gormrepo.OpenPostgres(cfg.DBDSN)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, cfg.MigrationsDir); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}
	return gormrepo.NewGameRepo(db), gormrepo.NewEventRepo(db), gormrepo.NewTxManager(db)
}

func shuffleSeed(cfg config) int64 {
	if cfg.ShuffleSeed != 0 {
		return cfg.ShuffleSeed
	}
	return time.Now().UnixNano()
}
