package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hours-server/util"
)

func newStatusCmd() *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "status VENUE_ID",
		Short: "Ask the server whether a venue is open",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			when, err := parseAtFlag(at)
			if err != nil {
				return err
			}
			st, err := newAPI(viper.GetString("server")).GetVenueStatus(cmd.Context(), args[0], when)
			if err != nil {
				return err
			}
			name := st.VenueName
			if name == "" {
				name = st.VenueID
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ", name)
			printStatus(cmd, st.Hours, st.Open, st.SecondsUntilChange, st.ChangesAt)
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "instant to check, RFC 3339 (default now)")
	return cmd
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Upload a YAML or JSON venue catalog to the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := util.ReadVenueCatalog(args[0])
			if err != nil {
				return err
			}
			client := newAPI(viper.GetString("server"))

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tHours\tResult")
			failed := 0
			for _, v := range catalog.Venues {
				stored, err := client.PutVenue(cmd.Context(), v)
				if err != nil {
					failed++
					fmt.Fprintf(w, "%s\t%s\t%v\n", v.VenueID, v.Hours, err)
					continue
				}
				fmt.Fprintf(w, "%s\t%s\tok\n", stored.VenueID, stored.Hours)
			}
			w.Flush()
			if failed > 0 {
				return fmt.Errorf("%d of %d venues failed", failed, len(catalog.Venues))
			}
			return nil
		},
	}
}
