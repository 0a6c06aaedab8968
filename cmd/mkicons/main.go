// mkicons writes the app's placeholder icons (icon-192x192.png,
// icon-512x512.png, favicon.ico) into the working directory.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/Mavwarf/mkicons/internal/config"
	"github.com/Mavwarf/mkicons/internal/paths"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		fatal(err)
	}
	setupLogging(env.LogLevel)
	if env.NoColor != "" {
		noColor = true
	}

	args, configPath, err := parseGlobalFlags(os.Args[1:])
	if err != nil {
		fatal(err)
	}
	if configPath == "" {
		configPath = env.ConfigPath
	}

	if len(args) == 0 {
		cfg, err := config.Load(configPath)
		if err != nil {
			fatal(err)
		}
		if err := generate(".", cfg, paths.DBPath(), os.Stdout); err != nil {
			fatal(err)
		}
		return
	}

	switch args[0] {
	case "help", "-h", "--help":
		printUsage()
	case "version", "-V", "--version":
		printVersion()
	case "verify":
		os.Exit(verifyCmd(args[1:], os.Stdout))
	case "history":
		if err := historyCmd(args[1:], paths.DBPath(), os.Stdout); err != nil {
			fatal(err)
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", args[0])
		fmt.Fprintf(os.Stderr, "Run 'mkicons help' for usage.\n")
		os.Exit(1)
	}
}

// parseGlobalFlags strips --config/-c from args.
func parseGlobalFlags(args []string) ([]string, string, error) {
	configPath := ""
	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config", "-c":
			if i+1 >= len(args) {
				return nil, "", fmt.Errorf("--config requires a file path")
			}
			configPath = args[i+1]
			i++
		default:
			filtered = append(filtered, args[i])
		}
	}
	return filtered, configPath, nil
}

// setupLogging sets the logrus level from LOG_LEVEL, keeping the default
// (warn) on unknown values.
func setupLogging(level string) {
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)
	if lvl, err := logrus.ParseLevel(level); err == nil {
		logrus.SetLevel(lvl)
	}
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("count must be a non-negative number, got %q", s)
	}
	return n, nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printVersion() {
	fmt.Printf("mkicons %s (built %s)\n", version, buildDate)
}

func printUsage() {
	fmt.Printf("mkicons %s - Generate placeholder app icons\n", version)
	fmt.Println(`
Usage:
  mkicons [options]                Write the icons into the current directory
  mkicons verify [dir|file...]     Check generated icons (default: .)
  mkicons history [N | clear]      Show the last N recorded runs (default 10)

Options:
  --config, -c <path>    Path to mkicons-config.json

Output:
  icon-192x192.png   192x192 PNG, bordered
  icon-512x512.png   512x512 PNG, bordered
  favicon.ico        32x32 ICO

Config resolution:
  1. --config <path> or MKICONS_CONFIG
  2. mkicons-config.json next to binary
  3. ~/.config/mkicons/mkicons-config.json

Environment:
  LOG_LEVEL          logrus level (default: warn)
  NO_COLOR           disable colored history output`)
}
