package main

import (
	"context"
	"log"

	"cardhub/internal/client/cli"
	"cardhub/internal/client/config"
	"cardhub/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg, logging.NewDefault())

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
