package main

import (
	"context"
	"fmt"
	"os"

	"github.com/yungbote/agroregistry-backend/internal/app"
	"github.com/yungbote/agroregistry-backend/internal/seed"
)

func main() {
	ctx := context.Background()
	a, err := app.New(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init app: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	fixture, err := seed.Load(a.Log)
	if err != nil {
		a.Log.Error("Seed fixture invalid", "error", err)
		a.Close()
		os.Exit(1)
	}
	if _, err := seed.Apply(ctx, a.Registry, fixture, a.Log); err != nil {
		a.Log.Error("Seed failed", "error", err)
		a.Close()
		os.Exit(1)
	}
}
