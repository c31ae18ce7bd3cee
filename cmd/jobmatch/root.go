package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/metinatakli/jobmatch/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const appName = "jobmatch"

var (
	cfgFile string
	v       = config.New()

	rootCmd = &cobra.Command{
		Use:           appName,
		Short:         "jobmatch serves the job matching API and reconciles its payments",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is jobmatch.yaml in current directory)")
	rootCmd.PersistentFlags().String("env", "dev", "Environment (dev|staging|prod)")
	rootCmd.PersistentFlags().String("db-dsn", "", "PostgreSQL DSN")

	v.BindPFlag("env", rootCmd.PersistentFlags().Lookup("env"))
	v.BindPFlag("db.dsn", rootCmd.PersistentFlags().Lookup("db-dsn"))
}

// initConfig preloads .env and reads the optional config file. Environment
// variables and flags still win over both.
func initConfig() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(appName)
		v.SetConfigType("yaml")
	}

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	return nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	err = cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
