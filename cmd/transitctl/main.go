package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	logs "intercity/internal/infra/log"
	"intercity/internal/infra/routing/engine"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - menu:     Interactive menu over a loaded network
// - route:    One-shot route query
// - validate: Parse a data file and report what it contains

const defaultDataPath = "./data/transport.txt"

func main() {
	menuCmd := flag.NewFlagSet("menu", flag.ExitOnError)
	routeCmd := flag.NewFlagSet("route", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)

	// menu parameters
	menuData := menuCmd.String("data", defaultDataPath, "Transport data file")
	menuLogLevel := menuCmd.String("log-level", "warn", "Log level (debug, info, warn, error)")

	// route parameters
	routeData := routeCmd.String("data", defaultDataPath, "Transport data file")
	routeFrom := routeCmd.String("from", "", "Departure city")
	routeTo := routeCmd.String("to", "", "Destination city")
	routeDimension := routeCmd.String("dimension", "cost", "Search dimension (cost, time)")
	routeModes := routeCmd.String("modes", "", "Allowed modes, comma separated (empty = all)")

	// validate parameters
	validateData := validateCmd.String("data", defaultDataPath, "Transport data file")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	flags := transitFlags{
		Menu: menuFlags{
			cmd:      menuCmd,
			data:     menuData,
			logLevel: menuLogLevel,
		},
		Route: routeFlags{
			cmd:       routeCmd,
			data:      routeData,
			from:      routeFrom,
			to:        routeTo,
			dimension: routeDimension,
			modes:     routeModes,
		},
		Validate: validateFlags{
			cmd:  validateCmd,
			data: validateData,
		},
	}

	if err := runSubcommand(&flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type transitFlags struct {
	Menu     menuFlags
	Route    routeFlags
	Validate validateFlags
}

type menuFlags struct {
	cmd      *flag.FlagSet
	data     *string
	logLevel *string
}

type routeFlags struct {
	cmd       *flag.FlagSet
	data      *string
	from      *string
	to        *string
	dimension *string
	modes     *string
}

type validateFlags struct {
	cmd  *flag.FlagSet
	data *string
}

func runSubcommand(flags *transitFlags) error {
	switch os.Args[1] {
	case "menu":
		return handleMenu(flags)
	case "route":
		return handleRoute(flags)
	case "validate":
		return handleValidate(flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleMenu(flags *transitFlags) error {
	if err := flags.Menu.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse menu flags")
	}

	logger, err := logs.NewWithWriter(os.Stderr, *flags.Menu.logLevel, true)
	if err != nil {
		return err
	}

	return runMenu(*flags.Menu.data, logger)
}

func handleRoute(flags *transitFlags) error {
	if err := flags.Route.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse route flags")
	}

	if *flags.Route.from == "" || *flags.Route.to == "" {
		return errors.New("--from and --to flags are required for route command")
	}

	logger, err := logs.NewWithWriter(os.Stderr, "warn", true)
	if err != nil {
		return err
	}

	return runRoute(os.Stdout, newEngine(logger), routeOptions{
		data:      *flags.Route.data,
		from:      *flags.Route.from,
		to:        *flags.Route.to,
		dimension: *flags.Route.dimension,
		modes:     *flags.Route.modes,
	})
}

func handleValidate(flags *transitFlags) error {
	if err := flags.Validate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse validate flags")
	}

	logger, err := logs.NewWithWriter(os.Stderr, "error", true)
	if err != nil {
		return err
	}

	return runValidate(os.Stdout, *flags.Validate.data, logger)
}

func newEngine(logger *slog.Logger) *engine.Engine {
	return engine.NewEngine(engine.EngineConfig{}, logger, nil)
}

func printUsage() {
	fmt.Println("Transit Network CLI")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  transitctl <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  menu      Interactive menu: find routes, add and remove connections")
	fmt.Println("  route     Find the best route between two cities")
	fmt.Println("  validate  Check a transport data file")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  transitctl menu -data ./data/transport.txt")
	fmt.Println("  transitctl route -from Beijing -to Shanghai -dimension time -modes rail,air")
	fmt.Println("  transitctl validate -data ./data/transport.txt")
}
