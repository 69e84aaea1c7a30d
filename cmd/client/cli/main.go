package main

import (
	"context"
	"log"

	"github.com/okoshkin/feedline/internal/client/cli"
	"github.com/okoshkin/feedline/internal/client/config"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
