package main

import (
	"context"
	"log"

	"github.com/mzaytsev/taskmirror/internal/app"
	"github.com/mzaytsev/taskmirror/internal/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	a, err := app.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := a.Run(ctx); err != nil {
		log.Printf("%v", err)
	}
}
