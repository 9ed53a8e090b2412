package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"emucfg/internal/appinfo"
	"emucfg/internal/controller"
	"emucfg/internal/export"
	"emucfg/internal/stats"
	"emucfg/internal/vdf"
	"emucfg/tree"
)

type command struct {
	format vdf.Format
	handle handler
}

var commands = map[string]command{
	"controller": {format: vdf.FormatText, handle: runController},
	"stats":      {format: vdf.FormatBinary, handle: runStats},
	"dump":       {format: vdf.FormatBinary, handle: runDump},
	"appinfo":    {format: vdf.FormatBinary, handle: runAppInfo},
}

func runController(opts *options, in *input) error {
	res := controller.Extract(in.root)
	logDiagnostics(opts, in, res.Diagnostics)
	debugDump(opts, in.path, res.Presets)

	paths, err := export.WritePresets(filepath.Join(opts.cfg.OutDir, in.name, "controller"), res.Presets)
	if err != nil {
		return err
	}

	log.Printf("%s: %d presets written", in.path, len(paths))

	return nil
}

func runStats(opts *options, in *input) error {
	res := stats.ExtractSchema(in.root)
	logDiagnostics(opts, in, res.Diagnostics)
	debugDump(opts, in.path, res.Stats)

	r := &export.Report{
		Source:       in.path,
		Languages:    stats.Languages(res.Achievements),
		Stats:        res.Stats,
		Achievements: res.Achievements,
	}
	r.AddDiagnostics(res.Diagnostics)

	if err := export.WriteReport(filepath.Join(opts.cfg.OutDir, in.name, "stats.yaml"), r); err != nil {
		return err
	}

	log.Printf("%s: %d stats, %d achievements, %d icons",
		in.path, len(res.Stats), len(res.Achievements), len(stats.UniqueIcons(res.Achievements)))

	return nil
}

func runDump(opts *options, in *input) error {
	path := filepath.Join(opts.cfg.OutDir, in.name+".json")
	if err := export.WriteTreeJSON(path, in.root); err != nil {
		return err
	}

	log.Printf("%s: written to %s", in.path, path)

	return nil
}

func runAppInfo(opts *options, in *input) error {
	info := in.root
	if inner := info.Get("appinfo"); inner != nil {
		info = inner
	}

	var details *tree.Node
	if opts.detailsPath != "" {
		body, err := os.ReadFile(opts.detailsPath)
		if err != nil {
			return err
		}

		details, err = appinfo.ParseAppDetails(body, uint32(opts.appID))
		if err != nil {
			return err
		}
	}

	name, _ := appinfo.Name(info)
	r := &export.Report{
		Source:    in.path,
		Name:      name,
		Languages: appinfo.SupportedLanguages(info),
		Depots:    appinfo.Depots(info),
		Branches:  appinfo.Branches(info.Get("depots"), time.Now()),
		DLCs:      appinfo.DLCs(details, info),
		Demos:     appinfo.Demos(details),
		SaveFiles: appinfo.SaveFiles(info),
	}

	overrides, diags := appinfo.RootOverrides(info)
	logDiagnostics(opts, in, diags)
	r.RootOverrides = overrides
	r.AddDiagnostics(diags)

	configs := appinfo.ControllerConfigs(info)
	if cfg, ok := controller.SelectConfig(configs, opts.cfg.SupportedControllerTypes); ok {
		log.Printf("%s: controller config %d (%s) selected", in.path, cfg.ID, cfg.Type)
	}

	debugDump(opts, in.path, r)

	if err := export.WriteReport(filepath.Join(opts.cfg.OutDir, in.name, "appinfo.yaml"), r); err != nil {
		return err
	}

	log.Printf("%s: %d depots, %d branches, %d DLCs, %d demos, %d save files",
		in.path, len(r.Depots), len(r.Branches), len(r.DLCs), len(r.Demos), len(r.SaveFiles))

	return nil
}
