package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"tridivya/internal/config"
	"tridivya/internal/lib/logger/handlers/slogpretty"
	"tridivya/internal/lib/logger/sl"
	"tridivya/internal/seed"
	"tridivya/internal/storage/postgres"
)

func main() {
	var file string
	flag.StringVar(&file, "file", "seed/content.json", "path to the content seed file")

	cfg := config.MustLoad()

	log := slog.New(slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug},
	}.NewPrettyHandler(os.Stdout))

	f, err := os.Open(file)
	if err != nil {
		log.Error("failed to open seed file", slog.String("file", file), sl.Err(err))
		os.Exit(1)
	}
	defer f.Close()

	items, err := seed.Load(f)
	if err != nil {
		log.Error("failed to read seed file", slog.String("file", file), sl.Err(err))
		os.Exit(1)
	}

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}
	defer storage.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err = storage.Migrate(ctx); err != nil {
		log.Error("failed to migrate database", sl.Err(err))
		os.Exit(1)
	}

	sum, err := seed.Run(ctx, log, storage, items)
	log.Info("seed finished",
		slog.Int("inserted", sum.Inserted),
		slog.Int("updated", sum.Updated),
		slog.Int("total", len(items)),
	)

	if err != nil {
		log.Error("some items failed", sl.Err(err))
		os.Exit(1)
	}
}
