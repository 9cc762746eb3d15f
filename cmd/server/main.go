package main

import (
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"

	"fieldpulse/config"
	"fieldpulse/internal/logger"
)

// initLogger configures the logging system before anything else runs.
func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	logger.GetAppLogger().Info("Logger system initialized successfully")
}

// serve starts the Fiber server, with TLS when configured.
func serve(app *application, fiberApp *fiber.App) {
	log := logger.GetAppLogger()
	cfg := app.cfg
	address := cfg.ListenAddress()

	if cfg.EnableTLS && cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		cert, err := tls.LoadX509KeyPair(cfg.TLSCertFile, cfg.TLSKeyFile)
		if err != nil {
			log.Fatalf("Error loading TLS certificate: %v", err)
		}

		ln, err := net.Listen("tcp", address)
		if err != nil {
			log.Fatalf("Error creating listener: %v", err)
		}
		tlsListener := tls.NewListener(ln, &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		})

		log.WithFields(map[string]interface{}{
			"address":  address,
			"protocol": "HTTPS",
		}).Info("Starting server")

		if err := fiberApp.Listener(tlsListener); err != nil {
			log.Fatalf("Error in Fiber Listener with TLS: %v", err)
		}
		return
	}

	log.WithFields(map[string]interface{}{
		"address":  address,
		"protocol": "HTTP",
	}).Info("Starting server")

	if err := fiberApp.Listen(address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

func main() {
	initLogger()
	log := logger.GetAppLogger()

	cfg := config.NewConfig()
	if cfg == nil {
		log.Fatal("Failed to load configuration")
	}

	app, err := buildApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}
	defer app.close()

	fiberApp := initFiberApp(app)

	// Shut down cleanly on SIGINT/SIGTERM so in-flight requests finish
	// and the Mongo client disconnects.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-stop
		log.WithField("signal", sig.String()).Info("Shutting down")
		if err := fiberApp.Shutdown(); err != nil {
			log.WithError(err).Error("Server shutdown failed")
		}
	}()

	serve(app, fiberApp)
}
