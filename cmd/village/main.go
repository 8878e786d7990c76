package main

import (
	"bufio"
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"village/internal/config"
	"village/internal/observability"
	"village/internal/repository"
	"village/internal/service"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stdout)
		os.Exit(1)
	}
	os.Exit(execute(os.Args[1:]))
}

func execute(args []string) int {
	cfg := config.Load()
	observability.InitLogger("village", cfg.Env, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := repository.Open(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Str("driver", cfg.StorageDriver).Msg("failed to open storage")
		return 1
	}
	defer storage.Close()

	session := service.NewSessionService(storage, cfg.StorageKey)
	if err := session.Restore(ctx); err != nil {
		log.Error().Err(err).Msg("starting without a saved session")
	}

	a := &app{
		ctx:       ctx,
		out:       os.Stdout,
		session:   session,
		community: service.NewCommunityService(nil),
		backup:    service.NewBackupService(storage, cfg.StorageKey),
	}

	if args[0] == "shell" {
		err = a.shell(bufio.NewScanner(os.Stdin))
	} else {
		err = a.run(args)
	}

	return exitCode(err, os.Stdout, os.Stderr)
}
