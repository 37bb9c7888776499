package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"gridnav/internal/network"
	"gridnav/internal/server"
	"gridnav/internal/sim"
	"gridnav/internal/version"
	"gridnav/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	cfg := sim.NewConfig()
	var seed int64
	flag.Int64Var(&seed, "seed", 0, "World seed (0 for random)")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "World width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "World height")
	flag.IntVar(&cfg.Agents, "agents", cfg.Agents, "Number of wandering agents")
	flag.BoolVar(&cfg.Periodic, "periodic", false, "Wrap the grid into a torus")
	flag.BoolVar(&cfg.UseHeightmap, "heightmap", false, "Route with the height map metric")
	flag.DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "Simulation tick interval")
	flag.Parse()

	logger.Log.Info("Starting gridnav demo...")
	logger.Log.Info(version.String())

	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random seed: %d", cfg.Seed)
	}

	port := os.Getenv("GRIDNAV_PORT")
	if port == "" {
		port = "8080"
	}

	// 2. Симуляция + рассылка снапшотов
	simulation, err := sim.New(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to build world:", err)
	}

	hub := network.NewBroadcaster()
	simulation.OnTick = hub.Broadcast

	ctx, cancel := context.WithCancel(context.Background())
	go simulation.Run(ctx)

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(simulation, hub, port)
	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
	cancel()
	logger.Log.Info("Done.")
}
