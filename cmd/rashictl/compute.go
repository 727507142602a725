package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/rashi-tree-guide/internal/adapters/http/dto"
)

var (
	birthDate  string
	birthTime  string
	birthPlace string
	latitude   float64
	longitude  float64
	tzOffset   float64
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute a rashi through the running service",
	Example: `  rashictl compute --date 1990-07-15 --place "Ahmedabad, India"
  rashictl compute --date 1990-07-15 --time 06:30 --lat 23.0225 --lon 72.5714 --tz 5.5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if local {
			return errors.New("compute needs the service: it calls the geocoder and astrology gateways")
		}

		req := dto.ComputeRequest{DateOfBirth: birthDate, TimeOfBirth: birthTime, Place: birthPlace}

		flags := cmd.Flags()
		if flags.Changed("lat") {
			req.Latitude = &latitude
		}

		if flags.Changed("lon") {
			req.Longitude = &longitude
		}

		if flags.Changed("tz") {
			req.Timezone = &tzOffset
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		api, err := newGuideAPI()
		if err != nil {
			return err
		}

		result, err := api.compute(ctx, req)
		if err != nil {
			return fmt.Errorf("computing rashi: %w", err)
		}

		if asJSON {
			return printJSON(result)
		}

		fmt.Printf("Rashi:      %s  %s\n", result.RashiLabel, result.RashiNative)
		fmt.Printf("Moon:       sign %d, %.4f deg sidereal\n", result.MoonSignNumber, result.SiderealLongitude)
		fmt.Printf("Location:   %.4f, %.4f (UTC%+.1f) %s\n",
			result.Location.Lat, result.Location.Lon, result.Location.Timezone, result.Location.DisplayName)
		fmt.Printf("Confidence: %s\n\n", result.ConfidenceNote)

		printTrees("Recommended trees", result.Trees)

		return nil
	},
}

func init() {
	flags := computeCmd.Flags()
	flags.StringVar(&birthDate, "date", "", "Date of birth, YYYY-MM-DD")
	flags.StringVar(&birthTime, "time", "", "Time of birth, HH:MM 24-hour (optional)")
	flags.StringVar(&birthPlace, "place", "", "Place of birth")
	flags.Float64Var(&latitude, "lat", 0, "Latitude in decimal degrees")
	flags.Float64Var(&longitude, "lon", 0, "Longitude in decimal degrees")
	flags.Float64Var(&tzOffset, "tz", 0, "UTC offset in hours, e.g. 5.5")

	_ = computeCmd.MarkFlagRequired("date")
	computeCmd.MarkFlagsRequiredTogether("lat", "lon")
	computeCmd.MarkFlagsOneRequired("place", "lat")

	rootCmd.AddCommand(computeCmd)
}
