package main

import (
	"context"
	"log"

	"github.com/rwi001/Valentine-Funs/internal/server"
	"github.com/rwi001/Valentine-Funs/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
