package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/yigit/coursecatalog/internal/app/services"
	"github.com/yigit/coursecatalog/internal/client"
)

func main() {
	// .env is optional; CATALOG_URL may also come from the environment
	_ = godotenv.Load()

	app := newApp(os.Stdout, func(cCtx *cli.Context) services.CatalogService {
		return client.New(cCtx.String("url"), cCtx.Duration("timeout"))
	})

	if err := app.Run(os.Args); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}
