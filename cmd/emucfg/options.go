package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"

	"emucfg/internal/config"
	"emucfg/internal/vdf"
)

// options are the resolved settings of one command run.
type options struct {
	cfg    *config.Config
	format vdf.Format
	files  []string

	// appinfo only
	detailsPath string
	appID       uint
}

// parseOptions resolves settings in order: defaults or -config file, then
// the environment, then flags.
func parseOptions(name string, args []string, defaultFormat vdf.Format, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "settings file (.yaml, .yml or .ini)")
	envFile := fs.String("env", "", "env file with EMUCFG_* variables (default ./.env)")
	outDir := fs.String("out", "", "output directory")
	debug := fs.Bool("debug", false, "print diagnostics and dump extracted models")
	jobs := fs.Int("jobs", 0, "files processed at once")
	format := fs.String("format", defaultFormat.String(), "input format: binary or text")

	opts := &options{}
	if name == "appinfo" {
		fs.StringVar(&opts.detailsPath, "details", "", "store app details JSON")
		fs.UintVar(&opts.appID, "appid", 0, "appid of the app details envelope")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() == 0 {
		return nil, errors.New("no input files")
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}

	if err := config.ApplyEnv(cfg, envFiles...); err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.OutDir = *outDir
		case "debug":
			cfg.Debug = *debug
		case "jobs":
			if *jobs > 0 {
				cfg.Jobs = *jobs
			}
		}
	})

	f, err := vdf.ParseFormat(*format)
	if err != nil {
		return nil, fmt.Errorf("-format: %w", err)
	}

	opts.cfg = cfg
	opts.format = f
	opts.files = fs.Args()

	if name == "appinfo" && opts.detailsPath != "" && opts.appID == 0 {
		return nil, errors.New("-details needs -appid")
	}

	if cfg.Debug {
		data, err := config.Marshal(cfg)
		if err != nil {
			return nil, err
		}

		log.Printf("settings:\n%s", data)
	}

	return opts, nil
}
