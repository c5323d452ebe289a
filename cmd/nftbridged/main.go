package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arkade-os/nftbridge/internal/config"
	grpcservice "github.com/arkade-os/nftbridge/internal/interface/grpc"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// Version will be set during build time
var Version string

func main() {
	app := cli.NewApp()
	app.Name = "nftbridged"
	app.Usage = "cross-chain NFT bridge daemon"
	app.Version = Version
	app.Flags = append([]cli.Flag{configFileFlag}, config.Flags...)
	app.Before = loadConfigFile
	app.Action = mainAction
	app.Commands = append(app.Commands, clientCommands...)

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func mainAction(c *cli.Context) error {
	cfg, err := config.LoadConfig(c)
	if err != nil {
		return fmt.Errorf("invalid config: %s", err)
	}

	log.SetLevel(log.Level(cfg.LogLevel))

	svcConfig := grpcservice.Config{
		Port:    cfg.Port,
		NoTLS:   cfg.NoTLS,
		TLSCert: cfg.TLSCert,
		TLSKey:  cfg.TLSKey,
	}

	svc, err := grpcservice.NewService(svcConfig, cfg)
	if err != nil {
		return fmt.Errorf("failed to create service: %s", err)
	}

	log.Infof("nftbridged config: %s", cfg)

	log.Info("starting service...")
	if err := svc.Start(); err != nil {
		return fmt.Errorf("failed to start service: %s", err)
	}

	log.RegisterExitHandler(svc.Stop)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)
	<-sigChan

	log.Info("shutting down service...")
	log.Exit(0)
	return nil
}
