package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/goteller/internal/buildinfo"
	"github.com/dmitrijs2005/goteller/internal/cli"
	"github.com/dmitrijs2005/goteller/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)

	app.Run(ctx)

}
