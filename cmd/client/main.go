package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/palavrapasse/import-web-api/internal/adapter"
	"github.com/palavrapasse/import-web-api/internal/client"
	"github.com/palavrapasse/import-web-api/internal/config"
	"github.com/palavrapasse/import-web-api/internal/logger"
	"github.com/palavrapasse/import-web-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	clientFlags := config.RegisterClientFlags(fs)
	formFlags := client.RegisterFormFlags(fs)
	version := fs.Bool("version", false, "Print build information and exit")
	_ = fs.Parse(os.Args[1:])

	if *version {
		info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
		fmt.Printf("Build version: %s\n", info.BuildVersion())
		fmt.Printf("Build date: %s\n", info.BuildDate())
		fmt.Printf("Build commit: %s\n", info.BuildCommit())
		return
	}

	log := logger.NewConsoleLogger("import-web-api-client")
	cfg, err := config.GetClientConfig(clientFlags)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	form, file, err := formFlags.LeakForm(time.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("invalid leak form")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)

	err = client.NewApp(serverAdapter, form, os.Stdout, log).Run(ctx)
	stop()
	file.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
