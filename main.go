package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"smproxy/backend"
	"smproxy/config"
	"smproxy/handler"
	"smproxy/inference"
	"smproxy/logging"
)

var version = "dev"

func main() {
	cli, err := config.ParseArgs(os.Args[0], os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if cli.Version {
		fmt.Println(version)
		return
	}

	log := logging.InitLogger(logrus.InfoLevel)

	if err := config.LoadDotEnv(cli.EnvFile); err != nil {
		log.Fatalf("Failed to load environment: %v", err)
	}
	cfg, err := config.LoadConfig(cli.ConfigFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}
	if cli.Debug {
		level = logrus.DebugLevel
	}
	logging.InitLogger(level)

	b, err := backend.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to create %s backend: %v", cfg.Backend, err)
	}
	client := inference.NewClient(b, cfg.ContentType, log)
	h := handler.NewHandler(client, cfg.EndpointName, log)

	if logging.InLambda() {
		log.Infof("Starting Lambda handler for endpoint %s", cfg.EndpointName)
		lambda.Start(h.HandleAPIGateway)
		return
	}

	server := &http.Server{
		Addr:              cfg.ListenAddress,
		Handler:           handler.NewServeMux(handler.NewHTTPHandler(h)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Infof("Starting server on %s (backend %s, endpoint %s)", cfg.ListenAddress, cfg.Backend, cfg.EndpointName)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<-signals

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("Server shutdown failed: %v", err)
	}
	log.Infoln("Server stopped")
}
