package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/vulcansys/tablestore"
	"github.com/vulcansys/tablestore/config"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	verboseFlag = flag.Bool("verbose", false, "Enable debug logging")
)

func main() {
	// Parse flags early to catch version flag
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := tablestore.GetVersionInfo()
		fmt.Printf("tablestore tablectl version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if flag.Arg(0) != "tables" {
		fmt.Fprintln(os.Stderr, "usage: tablectl [-version] [-verbose] tables")
		os.Exit(2)
	}

	if err := listTables(*verboseFlag); err != nil {
		fmt.Fprintf(os.Stderr, "tablectl: %v\n", err)
		os.Exit(1)
	}
}

func listTables(verbose bool) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	logger := zerolog.Nop()
	if verbose {
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	opts := []tablestore.Option{tablestore.WithLogger(logger)}
	if cfg.Endpoint != "" {
		opts = append(opts, tablestore.WithEndpoint(cfg.Endpoint))
	}

	client := tablestore.New(cfg.AccountName, cfg.AccessKey, opts...)
	if err := client.Connect(); err != nil {
		return err
	}

	names, err := client.ListTables(context.Background())
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
