package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/cubahno/oasfix/internal/config"
	"github.com/cubahno/oasfix/internal/fixer"
	"github.com/joho/godotenv"
)

var (
	flagDryRun   bool
	flagValidate bool
	flagFill     bool
	flagBackup   bool
)

const cmdPath = "github.com/cubahno/oasfix/cmd/oasfix"

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: go run %s [options] [spec-file ...]\n\n", cmdPath)
		fmt.Fprintf(os.Stderr, "Moves schema-level `examples` to the content level in OpenAPI spec files.\n\n")
		fmt.Fprintf(os.Stderr, "Each file is rewritten in place. Without arguments the paths from\n")
		fmt.Fprintf(os.Stderr, "%s (or the built-in defaults) are used.\n\n", config.ConfigFileName)
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Rewrite the default files\n")
		fmt.Fprintf(os.Stderr, "  go run %s\n\n", cmdPath)
		fmt.Fprintf(os.Stderr, "  # Preview the changes for a single file\n")
		fmt.Fprintf(os.Stderr, "  go run %s -dry-run openapi.yml\n", cmdPath)
	}
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	flag.BoolVar(&flagDryRun, "dry-run", false, "Report relocation candidates without writing.")
	flag.BoolVar(&flagValidate, "validate", false, "Check that rewritten files still load as OpenAPI documents (warn-only).")
	flag.BoolVar(&flagFill, "fill", false, "Generate examples for content media types that have a schema but no examples.")
	flag.BoolVar(&flagBackup, "backup", false, "Copy each file to <file>.bak before overwriting.")
	flag.Parse()

	_ = godotenv.Load(".env")

	cfg := config.MustConfig(".")
	if flag.NArg() > 0 {
		cfg.Specs = flag.Args()
	}
	if flagValidate {
		cfg.Validate = true
	}
	if flagFill {
		cfg.Fill = true
	}
	if flagBackup {
		cfg.Backup = true
	}

	f := fixer.NewFixer(cfg, os.Stdout)

	var err error
	if flagDryRun {
		err = f.DryRun()
	} else {
		err = f.Run()
	}
	if err != nil {
		os.Exit(1)
	}
}
