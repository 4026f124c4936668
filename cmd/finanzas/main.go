package main

import (
	"context"

	"finanzas/internal/cli"
	"finanzas/internal/config"
)

func main() {
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)
	app.Run(context.Background())
}
