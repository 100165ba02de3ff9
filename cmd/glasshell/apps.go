package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/1broseidon/glasshell/internal/apps"
	"github.com/1broseidon/glasshell/internal/logging"
)

func runApps(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  glasshell apps list [--config PATH] [--json]")
		fmt.Fprintln(os.Stderr, "  glasshell apps cache [--root DIR] [--out FILE]")
		return 2
	}

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("list", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := configFlag(fs)
		jsonOut := fs.Bool("json", false, "Print JSON")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		res, err := loadConfig(*path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		cfg := res.Config

		list, err := discoverer(cfg.Apps.Cache, cfg.Apps.Root, cfg.Apps.ScanManifests, logging.NewNop()).Discover()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		if *jsonOut {
			if list == nil {
				list = []apps.AppInfo{}
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(list); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			return 0
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPATH")
		for _, a := range list {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", a.ID, a.Name, a.Category, a.Path)
		}
		_ = tw.Flush()
		return 0

	case "cache":
		fs := flag.NewFlagSet("cache", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		root := fs.String("root", "", "Apps root directory (default: apps.root from config)")
		out := fs.String("out", "", "Cache file to write (default: apps.cache from config)")
		path := configFlag(fs)
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		if *root == "" || *out == "" {
			res, err := loadConfig(*path)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			if *root == "" {
				*root = res.Config.Apps.Root
			}
			if *out == "" {
				*out = res.Config.Apps.Cache
			}
		}

		list, err := (&apps.ManifestDiscoverer{Root: *root}).Discover()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if err := apps.WriteCache(*out, list); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Printf("wrote %d apps to %s\n", len(list), *out)
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown apps subcommand: %s\n", args[0])
		return 2
	}
}
