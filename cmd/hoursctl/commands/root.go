package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hours-server/api"
	"hours-server/api/hoursapi"
)

// newAPI builds the server client. Tests replace it.
var newAPI = func(server string) hoursapi.HoursAPI {
	return hoursapi.NewHoursApiClient(api.NewHTTPClient(server))
}

// NewRootCmd builds the hoursctl command tree.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "hoursctl",
		Short: "hoursctl - check opening hours specifications",
		Long: `hoursctl parses compact opening hours such as "MTWRF9-17|A10-14",
reports whether an instant is inside them and how long until that changes,
and talks to a running hours server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cfgFile)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.hoursctl.yaml)")
	root.PersistentFlags().String("server", "http://localhost:8080", "hours server URL")
	root.PersistentFlags().String("tz", "Local", "time zone for day boundaries and raw ranges")
	viper.BindPFlag("server", root.PersistentFlags().Lookup("server"))
	viper.BindPFlag("tz", root.PersistentFlags().Lookup("tz"))

	root.AddCommand(
		newClassifyCmd(),
		newCheckCmd(),
		newChartCmd(),
		newStatusCmd(),
		newImportCmd(),
	)
	return root
}

func initConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".hoursctl")
	}
	viper.SetEnvPrefix("HOURSCTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

func location() (*time.Location, error) {
	tz := viper.GetString("tz")
	if tz == "" || tz == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid --tz %q: %w", tz, err)
	}
	return loc, nil
}

// parseAtFlag reads an RFC 3339 --at value; empty means zero.
func parseAtFlag(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --at %q: %w", s, err)
	}
	return t, nil
}
