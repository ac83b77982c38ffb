// README: Interactive CLI: free-text request in, price comparison and booking out.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"cabnav/internal/automation"
	"cabnav/internal/config"
	"cabnav/internal/modules/compare"
	"cabnav/internal/modules/location"
	"cabnav/internal/modules/prefs"
	"cabnav/internal/modules/provider"
)

const welcomeMessage = `
=========================================
        CAB NAVIGATION SYSTEM
  Compare prices and book the cheapest
  ride across Uber, Ola and Rapido.
=========================================`

const helpMessage = `
USAGE EXAMPLES:
  - "Go to airport as rickshaw"
  - "Take me to the central station by car"
  - "Go to jiit sec 62 by rickshaw"
  - "Head to station, 2 of us, rickshaw preferred"
  - "Go to airport with luggage, premium car"

COMMANDS:
  help   show this message
  quit   exit

SUPPORTED RIDE TYPES:
  car / rickshaw / bike / auto / premium`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := log.New(os.Stderr, "cabnav ", log.LstdFlags)
	if !cfg.Device.Debug {
		logger.SetOutput(io.Discard)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	executor, err := automation.NewGeminiExecutor(ctx, cfg.AI.GeminiKey, cfg.Device.Serial, cfg.Device.Platform)
	if err != nil {
		log.Fatalf("automation init: %v", err)
	}
	defer executor.Close()

	registry := provider.NewRegistry(selectProfiles(cfg.Providers), executor, cfg.Timeouts, logger)
	orchestrator := compare.NewOrchestrator(registry, cfg.Timeouts.Compare, logger)
	extractor := prefs.NewExtractor(nil, logger)

	fmt.Println(welcomeMessage)
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("\nEnter your destination and preferences ('help' for examples, 'quit' to exit):\n> ")
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			break
		}
		input := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(input) {
		case "":
			continue
		case "quit":
			fmt.Println("Thank you for using Cab Navigation System!")
			return
		case "help":
			fmt.Println(helpMessage)
			continue
		}

		processRequest(ctx, scanner, orchestrator, extractor, input)
	}
}

func processRequest(ctx context.Context, scanner *bufio.Scanner, orchestrator *compare.Orchestrator, extractor *prefs.Extractor, input string) {
	fmt.Println("\nAnalyzing your request...")
	p := extractor.Extract(input)

	fmt.Println("\nPreferences extracted:")
	fmt.Printf("  Destination: %s\n", p.Destination)
	fmt.Printf("  Ride Type:   %s\n", p.RideType)
	if p.Passengers > 1 {
		fmt.Printf("  Passengers:  %d\n", p.Passengers)
	}
	if p.Luggage {
		fmt.Println("  Luggage:     required")
	}
	if p.AC != prefs.ACUnspecified {
		fmt.Printf("  AC:          %s\n", p.AC)
	}
	if p.Note != "" {
		fmt.Printf("  Note:        %s\n", p.Note)
	}

	fmt.Print("\nConfirm pickup location (Enter for 'Current Location'): ")
	pickup := "Current Location"
	if scanner.Scan() {
		if v := strings.TrimSpace(scanner.Text()); v != "" {
			pickup = location.Normalize(v)
		}
	}
	destination := location.Normalize(p.Destination)

	fmt.Printf("\nComparing prices...\n  From: %s\n  To:   %s\n", pickup, destination)

	result, err := orchestrator.ComparePrices(ctx, pickup, destination, p, nil)
	if err != nil {
		switch err {
		case compare.ErrTimeout:
			fmt.Println("\nRequest timed out. Please try again.")
		case compare.ErrNoQuotes:
			fmt.Println("\nNo provider could produce a quote. Please try again.")
		default:
			fmt.Printf("\nError: %v\n", err)
		}
		return
	}

	printComparison(result)
	maybeSaveSnapshot(result)

	fmt.Printf("\nBook the cheapest option (%s at %s)? [y/N]: ",
		strings.ToUpper(result.Cheapest), compare.FormatCurrency(result.CheapestPrice, "INR"))
	if !scanner.Scan() || !strings.EqualFold(strings.TrimSpace(scanner.Text()), "y") {
		return
	}

	booking, err := orchestrator.BookCheapest(ctx, pickup, destination, p, result)
	if err != nil {
		fmt.Printf("\nBooking failed: %v\n", err)
		return
	}

	fmt.Println("\nRide booked successfully!")
	fmt.Printf("  Provider:   %s\n", strings.ToUpper(booking.Provider))
	fmt.Printf("  Booking ID: %s\n", booking.BookingID)
	fmt.Printf("  Ride Type:  %s\n", booking.RideType)
	fmt.Printf("  Fare:       %s\n", compare.FormatCurrency(booking.EstimatedPrice, "INR"))
	fmt.Printf("  ETA:        %s\n", booking.EstimatedArrival)
	if booking.DriverName != nil {
		fmt.Printf("  Driver:     %s\n", *booking.DriverName)
	}
	if booking.VehicleDetails != nil {
		fmt.Printf("  Vehicle:    %s\n", *booking.VehicleDetails)
	}
}

func printComparison(result *compare.ComparisonResult) {
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "APP\tRIDE TYPE\tFARE\tETA\tDISTANCE")
	for _, q := range result.Prices {
		distance := "-"
		if q.Distance != nil {
			distance = *q.Distance
		}
		marker := ""
		if q.Provider == result.Cheapest {
			marker = " *"
		}
		fmt.Fprintf(w, "%s%s\t%s\t%s\t%s\t%s\n",
			strings.ToUpper(q.Provider), marker, q.RideType,
			compare.FormatCurrency(q.EstimatedPrice, q.Currency), q.EstimatedTime, distance)
	}
	w.Flush()
	fmt.Printf("\nCHEAPEST OPTION: %s at %s\n",
		strings.ToUpper(result.Cheapest), compare.FormatCurrency(result.CheapestPrice, "INR"))
}

// maybeSaveSnapshot writes the comparison to CABNAV_SNAPSHOT_DIR when set.
func maybeSaveSnapshot(result *compare.ComparisonResult) {
	dir := os.Getenv("CABNAV_SNAPSHOT_DIR")
	if dir == "" {
		return
	}
	path := filepath.Join(dir, fmt.Sprintf("comparison_%s.json", time.Now().Format("20060102_150405")))
	if err := compare.SaveSnapshot(path, result); err != nil {
		fmt.Printf("could not save snapshot: %v\n", err)
		return
	}
	fmt.Printf("Comparison saved to %s\n", path)
}

func selectProfiles(names []string) []provider.Profile {
	var out []provider.Profile
	for _, name := range names {
		for _, p := range provider.DefaultProfiles {
			if p.Name == name {
				out = append(out, p)
			}
		}
	}
	return out
}
