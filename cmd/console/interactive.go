package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"tourguide/internal/guide"
	"tourguide/internal/types"
)

// runInteractive drives the prompt loop: verify the place first, then ask
// which facets to fetch
func runInteractive(svc *guide.Service) {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Tourguide")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("\nEnter a place you want to visit, and I'll help you plan your trip!")
	fmt.Println("Type 'quit' or 'exit' to stop.")

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("\nEnter the place you want to visit: ")
		if !scanner.Scan() {
			break
		}

		placeName := strings.TrimSpace(scanner.Text())
		if placeName == "" {
			continue
		}
		if isQuit(placeName) {
			break
		}

		ctx := context.Background()

		fmt.Printf("\nVerifying %s...\n", placeName)
		outcome := svc.Verify(ctx, placeName)
		if outcome.Status != types.VerificationVerified {
			fmt.Println("\n" + guide.MsgUnknownPlace)
			if outcome.Place != nil {
				fmt.Printf("   (Note: Found similar place: %s)\n", outcome.Place.DisplayName)
			}
			continue
		}

		rec := outcome.Place
		fmt.Printf("Found: %s\n", rec.DisplayName)
		fmt.Printf("  Location: %s\n", rec.Country)
		fmt.Printf("  Coordinates: %s\n", rec.Coordinates)

		facets, ok := chooseFacets(scanner)
		if !ok {
			break
		}

		fmt.Println("\nProcessing your request...")
		response := svc.Answer(ctx, rec, facets)

		fmt.Println(strings.Repeat("=", 60))
		fmt.Println(response)
		fmt.Println(strings.Repeat("=", 60))
	}

	fmt.Println("\nThank you for using Tourguide. Have a great trip!")
}

func chooseFacets(scanner *bufio.Scanner) (types.Facets, bool) {
	options := []struct {
		label  string
		facets types.Facets
	}{
		{"Weather only", types.NewFacets(true, false)},
		{"Tourist places only", types.NewFacets(false, true)},
		{"Both weather and places", types.NewFacets(true, true)},
	}

	for {
		fmt.Println("\nWhat information would you like?")
		for i, option := range options {
			fmt.Printf("  %d. %s\n", i+1, option.label)
		}
		fmt.Printf("\nEnter your choice (1-%d): ", len(options))

		if !scanner.Scan() {
			return types.Facets{}, false
		}
		choice := strings.TrimSpace(scanner.Text())
		if isQuit(choice) {
			return types.Facets{}, false
		}

		switch choice {
		case "1":
			return options[0].facets, true
		case "2":
			return options[1].facets, true
		case "3":
			return options[2].facets, true
		}
		fmt.Printf("Please enter a number between 1 and %d\n", len(options))
	}
}

func isQuit(input string) bool {
	switch strings.ToLower(input) {
	case "quit", "exit", "q":
		return true
	}
	return false
}
