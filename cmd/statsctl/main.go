package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"taskstats/internal/cli"
	"taskstats/internal/config"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	defer func() {
		_ = logger.Sync()
	}()

	cfg := config.LoadConfig()
	root := cli.NewRootCommand(cli.DatabaseFactory(cfg), os.Stdout)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
