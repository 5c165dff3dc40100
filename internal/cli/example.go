package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/kundali/pkg/chart"
	kio "github.com/matzehuels/kundali/pkg/io"
)

// exampleRequest is the chart printed by `kundali example`.
func exampleRequest() chart.Request {
	return chart.Request{
		Name:      "Example",
		Ascendant: "Capricorn",
		Placements: []chart.Placement{
			{Name: "Sun", Sign: "Taurus", Degree: 3, Minute: 12, Nakshatra: "Krittika", Pada: 2, Status: "[C]"},
			{Name: "Moon", Sign: "Scorpio", Degree: 17, Minute: 40, Nakshatra: "Jyeshtha", Pada: 1, Debilitated: true},
			{Name: "Mars", Sign: "Aries", Degree: 22, Minute: 5, Nakshatra: "Bharani", Pada: 3},
			{Name: "Mercury", Sign: "Taurus", Degree: 9, Minute: 58, Nakshatra: "Krittika", Pada: 4, Status: "[R C]"},
			{Name: "Jupiter", Sign: "Cancer", Degree: 5, Nakshatra: "Pushya", Pada: 1, Exalted: true},
			{Name: "Venus", Sign: "Pisces", Degree: 27, Minute: 1, Nakshatra: "Revati", Pada: 4, Exalted: true},
			{Name: "Saturn", Sign: "Capricorn", Degree: 11, Minute: 33, Nakshatra: "Shravana", Pada: 1, Status: "[R]"},
			{Name: "Rahu", Sign: "Gemini", Degree: 14, Minute: 20, Nakshatra: "Ardra", Pada: 3, Status: "[R]"},
			{Name: "Ketu", Sign: "Sagittarius", Degree: 14, Minute: 20, Nakshatra: "Purva Ashadha", Pada: 1, Status: "[R]"},
		},
	}
}

// exampleCommand prints a sample request to start from.
func (c *CLI) exampleCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print a sample chart request",
		Example: `  kundali example -f yaml > chart.yaml
  kundali render chart.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := kio.ParseFormat(format)
			if err != nil {
				return err
			}
			return kio.WriteRequest(cmd.OutOrStdout(), exampleRequest(), f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "request format: json, yaml, toml")

	return cmd
}
