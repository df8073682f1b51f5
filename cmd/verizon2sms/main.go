// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the verizon2sms CLI, which converts a
// Verizon Messages database into an SMS Backup & Restore XML file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/verizon2sms/internal/backup"
	"github.com/pdiddy/verizon2sms/internal/convert"
	"github.com/pdiddy/verizon2sms/internal/logging"
	"github.com/pdiddy/verizon2sms/internal/phone"
	"github.com/pdiddy/verizon2sms/internal/store"
	"github.com/pdiddy/verizon2sms/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd converts a database when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "verizon2sms [options] [Verizon Messages SQLite DB]",
	Short: "Convert a Verizon Messages database to SMS Backup XML",
	Long: `verizon2sms reads the Message table of a Verizon Messages SQLite database
and writes an SMS Backup & Restore XML document that can be restored on
another device.

Phone numbers are normalized to E.164 using --region, or the region of the
current locale when no region is given. Numbers passed with --sender are
always treated as the owner of the phone, which fixes messages the database
records with the wrong direction. A contacts file adds contact names.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	home, _ := os.UserHomeDir()
	defaultDB := store.DefaultPath(home)

	flags := rootCmd.Flags()
	flags.StringP("contacts", "c", "", `contacts file ("number name" lines, or number: name YAML)`)
	flags.StringP("output", "o", "-", "output file (default: -)")
	flags.CountP("quiet", "q", "decrease verbosity (less detailed output)")
	flags.StringP("region", "r", "", "region of phone numbers, for normalization (default from locale)")
	flags.StringArrayP("sender", "s", nil, "phone number to always treat as the sender")
	flags.CountP("verbose", "v", "increase verbosity (more detailed output)")
	flags.BoolP("version", "V", false, "output version and license information")
	flags.String("phone-parser", string(phone.ModeLibphonenumber), "phone number normalizer: libphonenumber or digits")

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./verizon2sms.yaml or ~/.config/verizon2sms/config.yaml)")

	for _, key := range []string{"contacts", "output", "region", "sender", "phone-parser"} {
		if err := viper.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(err)
		}
	}
	viper.SetDefault("database", defaultDB)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("verizon2sms")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "verizon2sms"))
		}
	}

	viper.SetEnvPrefix("VERIZON2SMS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig merges viper settings with the positional database argument
// and the verbosity counters.
func loadConfig(cmd *cobra.Command, args []string) (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	if len(args) > 0 {
		cfg.Database = args[0]
	}
	quiet, _ := cmd.Flags().GetCount("quiet")
	verbose, _ := cmd.Flags().GetCount("verbose")
	cfg.Verbosity = quiet - verbose
	return cfg, nil
}

// resolveRegion uppercases an explicit region or guesses one from the
// locale environment.
func resolveRegion(region string, getenv func(string) string, log logging.Sink) string {
	if region != "" {
		return strings.ToUpper(region)
	}
	return phone.GuessRegionOrWarn(getenv, log)
}

func runConvert(cmd *cobra.Command, args []string) (err error) {
	if showVersion, _ := cmd.Flags().GetBool("version"); showVersion {
		fmt.Fprint(cmd.OutOrStdout(), versionText())
		return nil
	}

	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	log := logging.New(cmd.ErrOrStderr(), cfg.Verbosity)
	defer log.Sync()

	norm, err := phone.New(phone.Mode(cfg.PhoneParser))
	if err != nil {
		return err
	}
	region := resolveRegion(cfg.Region, os.Getenv, log)

	s, err := store.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer s.Close()

	out := convert.NewOutput(cfg.Output, cmd.OutOrStdout())
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = convert.Run(cmd.Context(), s, convert.Options{
		Normalizer:   norm,
		Region:       region,
		Senders:      cfg.Senders,
		ContactsPath: cfg.Contacts,
		Version:      version,
		Builder:      backup.Builder{},
		Log:          log,
	}, out)
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "verizon2sms:", err)
		stop()
		os.Exit(1)
	}
}
