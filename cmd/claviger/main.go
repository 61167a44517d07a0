package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/dkotenko/claviger/internal/adapter"
	"github.com/dkotenko/claviger/internal/client"
	"github.com/dkotenko/claviger/internal/config"
	"github.com/dkotenko/claviger/internal/logger"
	"github.com/dkotenko/claviger/internal/service"
	"github.com/dkotenko/claviger/internal/store"
	"github.com/dkotenko/claviger/internal/tui"
	"github.com/dkotenko/claviger/internal/workers"
	"github.com/dkotenko/claviger/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// The TUI owns stdout, so logs go to a file next to the binary.
	log := logger.NewFileLogger("claviger")

	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	deviceID, err := storages.Vault.DeviceID(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("resolve device id")
	}

	remote := adapter.NewRemoteStore(adapter.RemoteConfig{
		Endpoint: cfg.Remote.Endpoint,
		Timeout:  cfg.Remote.RequestTimeout,
		DeviceID: deviceID,
	}, log)

	services := service.NewServices(*storages, remote, cfg, log)

	ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	background := workers.NewWorkers(
		workers.NewFlushWorker(services.Sync, cfg.App.FlushInterval, log),
	)

	// "claviger export-backup > vault.json" dumps the decrypted vault
	// without starting the TUI, for scripted backups.
	if len(os.Args) > 1 && os.Args[len(os.Args)-1] == "export-backup" {
		if err = exportBackup(services.Session); err != nil {
			log.Fatal().Err(err).Msg("export backup")
		}
		return
	}

	app, err := client.NewApp(services, ui, background, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func exportBackup(session service.SessionService) error {
	fmt.Fprint(os.Stderr, "Master password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	if _, err = session.Unlock(context.Background(), string(password)); err != nil {
		return err
	}
	defer session.Lock()

	backup, err := session.ExportBackup()
	if err != nil {
		return err
	}
	fmt.Println(backup)
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
