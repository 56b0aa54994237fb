package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"tourguide/internal/config"
	"tourguide/internal/guide"
	"tourguide/internal/types"

	"github.com/spf13/cobra"
)

var (
	flagWeather bool
	flagPlaces  bool
)

var rootCmd = &cobra.Command{
	Use:   "tourguide [place]",
	Short: "weather and tourist attractions for a place",
	Long: `
tourguide answers questions about a place by combining live geocoding,
weather, and tourist-attraction data. Give it a place name and the facets
you want, or run it without arguments for an interactive session.
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			runInteractive(svc)
			return nil
		}

		facets := types.NewFacets(flagWeather, flagPlaces)
		if !facets.Any() {
			facets = types.NewFacets(true, true)
		}

		result := svc.Ask(cmd.Context(), args[0], facets)
		fmt.Println(result.Response)
		if !result.Verified {
			os.Exit(1)
		}
		return nil
	},
}

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "answer a free-text question using the language model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		result, err := svc.AskFreeText(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(result.Response)
		return nil
	},
}

func newService() (*guide.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return guide.NewService(cfg, cfg.NewLogger()), nil
}

func init() {
	rootCmd.Flags().BoolVarP(&flagWeather, "weather", "w", false, "include current weather")
	rootCmd.Flags().BoolVarP(&flagPlaces, "places", "p", false, "include tourist attractions")
	rootCmd.AddCommand(askCmd)
	rootCmd.SilenceUsage = true
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimSpace(err.Error()))
		os.Exit(1)
	}
}
