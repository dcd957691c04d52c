package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"decanter/internal/config"
	"decanter/internal/core/migrate"
	"decanter/internal/core/subnet"
	"decanter/internal/source/pfsense"
	"decanter/internal/target/kea"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/sirupsen/logrus"
)

func main() {
	var (
		cfgPath  = flag.String("config", "", "optional config file (yaml)")
		input    = flag.String("input", "", "source configuration (pfSense-style config.xml)")
		output   = flag.String("output", "", "output file path")
		format   = flag.String("format", "", "output format: kea or yaml")
		report   = flag.String("report", "", "report file path (default: stdout)")
		logLevel = flag.String("log-level", "", "log level: debug, info, warn, error")
		strict   = flag.Bool("strict", false, "fail the run on pre-flight issues or per-record errors")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	// flags override file/env values
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *input
		case "output":
			cfg.Output = *output
		case "format":
			cfg.Format = *format
		case "report":
			cfg.Report = *report
		case "log-level":
			cfg.LogLevel = *logLevel
		case "strict":
			cfg.Strict = *strict
		}
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	log := logrus.New()
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	if err := run(cfg, log); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *logrus.Logger) error {
	fs := osfs.New("/")

	inputPath, err := filepath.Abs(cfg.Input)
	if err != nil {
		return err
	}
	data, err := util.ReadFile(fs, inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	doc, err := pfsense.Decode(data)
	if err != nil {
		return err
	}
	subnets := pfsense.Subnets(doc)
	mappings := pfsense.Mappings(doc)
	log.WithFields(logrus.Fields{
		"subnets":  len(subnets),
		"mappings": len(mappings),
	}).Info("parsed source configuration")

	matcher, warnings := subnet.NewSubnetMatcher(subnets)
	for _, w := range warnings {
		log.Warn(w)
	}

	svc := migrate.NewMigrateService(matcher)

	preflight := svc.ValidateMigration(mappings)
	if !preflight.Valid {
		for _, issue := range preflight.Issues {
			log.Warnf("pre-flight: %s", issue)
		}
		if cfg.Strict {
			return fmt.Errorf("pre-flight check failed: %d issue(s)", len(preflight.Issues))
		}
	}

	result := svc.Migrate(mappings)
	stats := svc.GetStats(mappings, result)
	log.WithFields(logrus.Fields{
		"migrated":  stats.Successful,
		"failed":    stats.Failed,
		"unmatched": stats.Unmatched,
	}).Info("migration pass finished")

	writer := kea.NewKeaWriter(fs)
	var out []byte
	switch cfg.Format {
	case config.FormatYaml:
		out, err = writer.RenderYaml(result.Reservations)
	default:
		out, err = writer.Render(result.Reservations, matcher)
	}
	if err != nil {
		return fmt.Errorf("render output: %w", err)
	}

	outputPath, err := filepath.Abs(cfg.Output)
	if err != nil {
		return err
	}
	if err := writer.WriteFile(outputPath, out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.WithField("path", cfg.Output).Info("wrote reservations")

	text := svc.GenerateReport(result, stats)
	if cfg.Report == "" {
		fmt.Print(text)
	} else {
		reportPath, err := filepath.Abs(cfg.Report)
		if err != nil {
			return err
		}
		if err := writer.WriteFile(reportPath, []byte(text)); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	if cfg.Strict && stats.Errors > 0 {
		return fmt.Errorf("%d mapping(s) had invalid data", stats.Errors)
	}
	return nil
}
