package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pavelaverin/linksight/internal/api/handlers"
	"github.com/pavelaverin/linksight/internal/archive"
	"github.com/pavelaverin/linksight/internal/cli"
	"github.com/pavelaverin/linksight/internal/config"
	"github.com/pavelaverin/linksight/internal/loader"
	"github.com/pavelaverin/linksight/internal/metrics"
	"github.com/pavelaverin/linksight/internal/mock"
	"github.com/pavelaverin/linksight/internal/store"
	"github.com/pavelaverin/linksight/internal/worker"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	demo := false
	args := make([]string, 0, len(os.Args)-1)
	for _, a := range os.Args[1:] {
		if a == "--demo" {
			demo = true
			continue
		}
		args = append(args, a)
	}

	rebuild := func() (*store.Store, error) {
		opts := store.Options{
			LongTextWordMin: cfg.LongTextWordMin,
			OwnerName:       cfg.OwnerName,
		}
		if demo {
			return store.Build(mock.Export(), opts), nil
		}
		dir, err := loader.FindExportDir(cfg.ExportBaseDir)
		if err != nil {
			return nil, err
		}
		ex, err := loader.Load(dir)
		if err != nil {
			return nil, err
		}
		return store.Build(ex, opts), nil
	}

	started := time.Now()
	s, err := rebuild()
	if err != nil {
		logrus.Fatalln(err)
	}
	metrics.ObserveRebuild(s, time.Since(started))

	// One-shot subcommands run against the freshly built store and exit.
	if len(args) > 0 {
		switch args[0] {
		case "query":
			cli.HandleQuery(s, cfg, args[1:])
			return
		case "stats":
			cli.HandleStats(s, cfg)
			return
		case "serve":
			// fall through to the server below
		default:
			logrus.Fatalf("unknown command %q: use serve, query or stats", args[0])
		}
	}

	dbConn, err := config.LoadDatabase()
	if err != nil {
		// The dashboard still works from memory; surface the error on the API.
		logrus.WithError(err).Error("archive unavailable")
		cfg.DBInitErr = err
	}
	var arch *archive.DB
	if dbConn != nil {
		arch = archive.New(dbConn)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if _, err := arch.SaveSnapshot(ctx, s); err != nil {
			logrus.WithError(err).Error("archiving initial snapshot")
		}
		cancel()
		defer dbConn.Close()
	}

	holder := store.NewHolder(s)
	w := worker.New(holder, rebuild)
	if cfg.ReloadInterval > 0 {
		w.Start(cfg.ReloadInterval)
	}

	h := handlers.NewHandler(holder, cfg, dbConn, arch, w)
	r := h.Router()

	logrus.WithField("addr", cfg.ListenAddr).Info("dashboard API listening")
	if err := r.Run(cfg.ListenAddr); err != nil {
		logrus.Fatalln(err)
	}
}
