package main

import (
	"flag"
	"os"

	"github.com/stagelink/apctl/cmd"
	"github.com/stagelink/apctl/internal/brand"
)

var printer = cmd.Printer

func main() {
	command, args := commandLine(os.Args)

	switch command {
	case "on", "start":
		startFlags := flag.NewFlagSet("start", flag.ExitOnError)
		configFile := startFlags.String("config", "", "Configuration file")
		startFlags.StringVar(configFile, "c", "", "Configuration file (short)")
		dryRun := startFlags.Bool("dry-run", false, "Log intended actions without applying")
		startFlags.BoolVar(dryRun, "n", false, "Dry run (short)")
		startFlags.Parse(args)

		if err := cmd.RunStart(*configFile, *dryRun); err != nil {
			printer.Fprintf(os.Stderr, "Start failed: %v\n", err)
			os.Exit(1)
		}

	case "off", "stop":
		stopFlags := flag.NewFlagSet("stop", flag.ExitOnError)
		configFile := stopFlags.String("config", "", "Configuration file")
		stopFlags.StringVar(configFile, "c", "", "Configuration file (short)")
		dryRun := stopFlags.Bool("dry-run", false, "Log intended actions without applying")
		stopFlags.BoolVar(dryRun, "n", false, "Dry run (short)")
		stopFlags.Parse(args)

		if err := cmd.RunStop(*configFile, *dryRun); err != nil {
			printer.Fprintf(os.Stderr, "Stop failed: %v\n", err)
			os.Exit(1)
		}

	case "status":
		statusFlags := flag.NewFlagSet("status", flag.ExitOnError)
		configFile := statusFlags.String("config", "", "Configuration file")
		statusFlags.StringVar(configFile, "c", "", "Configuration file (short)")
		statusFlags.Parse(args)

		if err := cmd.RunStatus(*configFile); err != nil {
			printer.Fprintf(os.Stderr, "Status failed: %v\n", err)
			os.Exit(1)
		}

	case "setup":
		setupFlags := flag.NewFlagSet("setup", flag.ExitOnError)
		configDir := setupFlags.String("config-dir", "", "Configuration directory")
		setupFlags.StringVar(configDir, "d", "", "Configuration directory (short)")
		force := setupFlags.Bool("force", false, "Overwrite an existing config file")
		setupFlags.Parse(args)

		if err := cmd.RunSetup(*configDir, *force); err != nil {
			printer.Fprintf(os.Stderr, "Setup failed: %v\n", err)
			os.Exit(1)
		}

	case "version":
		printer.Printf("%s version %s\n", brand.Name, brand.Version)
		printer.Printf("Build: %s\n", brand.BuildTime)

	case "help", "-h", "--help":
		printUsage()

	default:
		printer.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// commandLine splits argv into the subcommand and its flag arguments.
// A bare invocation means "status".
func commandLine(argv []string) (string, []string) {
	if len(argv) < 2 {
		return "status", nil
	}
	return argv[1], argv[2:]
}

func printUsage() {
	printer.Printf(`%s - %s

Usage:
  %s <command> [options]

Commands:
  on | start    Bring the access point up
                Options: --config (-c) <file>, --dry-run (-n)
  off | stop    Take the access point down
                Options: --config (-c) <file>, --dry-run (-n)
  status        Show bridge, daemon and radio state (default)
                Options: --config (-c) <file>
  setup         Write a starter configuration file
                Options: --config-dir (-d), --force
  version       Print version info

Examples:
  %s on                      # Start the AP with /etc/apctl/apctl.hcl (or defaults)
  %s on --dry-run            # Show what would happen
  %s off                     # Stop the AP and remove the bridge
  %s                         # Same as "%s status"
`,
		brand.Name, brand.Description,
		brand.LowerName,
		brand.LowerName, brand.LowerName, brand.LowerName, brand.LowerName, brand.LowerName)
}
