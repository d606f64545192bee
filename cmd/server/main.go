package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/youruser/mockupapp/internal/api"
	"github.com/youruser/mockupapp/internal/config"
	"github.com/youruser/mockupapp/internal/mockup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	gen, err := mockup.Setup(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := api.Serve(ctx, ":"+cfg.Port, gen); err != nil {
		log.Fatal(err)
	}
}
