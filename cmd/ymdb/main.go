package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"ymdb/internal/config"
	"ymdb/internal/logger"
	"ymdb/internal/services"
)

func main() {
	// Define flags
	showVersion := flag.Bool("v", false, "Show version information")
	flag.Bool("version", false, "Show version information")
	initialQuery := flag.String("q", "", "Start with this search query")
	printJSON := flag.Bool("json", false, "Print the selected movie as JSON on exit")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "YMDB - A TUI to search The Movie Database\n\n")
		fmt.Fprintf(os.Stderr, "Usage: ymdb [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fmt.Fprintf(os.Stderr, "  -q <text>     Start with this search query\n")
		fmt.Fprintf(os.Stderr, "  -json         Print the selected movie as JSON on exit\n")
		fmt.Fprintf(os.Stderr, "  -v, --version Show version information\n")
		fmt.Fprintf(os.Stderr, "  -h, --help    Show this help message\n")
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		fmt.Fprintf(os.Stderr, "  TMDB_API_KEY  TMDB v3 API key (required, may be set in .env)\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ymdb                     Launch the TUI with an empty search\n")
		fmt.Fprintf(os.Stderr, "  ymdb -q matrix           Launch and search for \"matrix\"\n")
		fmt.Fprintf(os.Stderr, "  ymdb -json > movie.json  Save the selected movie\n")
	}

	flag.Parse()

	// Handle --version flag (check both -v and --version)
	if *showVersion || isFlagPassed("version") {
		fmt.Printf("%s %s\n", services.AppName, services.AppVersion)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// The TUI owns the terminal, so logs go to a file.
	logFile, err := logger.OpenFile(cfg.Log.File)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()

	appLogger := logger.New(logger.Config{
		Level:  logger.Level(cfg.Log.Level),
		Format: logger.Format(cfg.Log.Format),
	}, logFile)
	slog.SetDefault(appLogger)

	// Initialize app service
	appService := services.NewAppService(cfg, nil, appLogger)
	defer appService.Cleanup()

	if *initialQuery != "" {
		appService.SetInitialQuery(*initialQuery)
	}

	if err := appService.Boot(); err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	// Build and run the TUI
	appService.BuildApp()
	if err := appService.GetApp().Run(); err != nil {
		appLogger.Error("application error", "error", err)
		log.Fatalf("Application error: %v", err)
	}

	if *printJSON {
		movie, ok := appService.GetSelection().Selected()
		if !ok {
			fmt.Fprintln(os.Stderr, "No movie selected")
			return
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(movie); err != nil {
			log.Fatalf("Failed to encode selection: %v", err)
		}
	}
}

// isFlagPassed checks if a flag was explicitly passed on the command line.
func isFlagPassed(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
