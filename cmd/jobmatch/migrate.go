package main

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/metinatakli/jobmatch/internal/repository"
	"github.com/spf13/cobra"
)

var (
	migrationsPath string
	assumeYes      bool
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply or roll back database migrations",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(repository.MigrateUp), string(repository.MigrateDown)},
	RunE: func(cmd *cobra.Command, args []string) error {
		direction := repository.MigrateUp
		if len(args) == 1 {
			direction = repository.MigrationDirection(args[0])
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if direction == repository.MigrateDown && !assumeYes {
			prompt := promptui.Prompt{
				Label:     "Roll back every migration and drop all data",
				IsConfirm: true,
			}

			_, err := prompt.Run()
			if err != nil {
				if errors.Is(err, promptui.ErrAbort) {
					fmt.Fprintln(cmd.OutOrStdout(), "aborted")
					return nil
				}

				return err
			}
		}

		err = repository.RunMigrations(cfg.DB.DSN, migrationsPath, direction)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "migrations %s: done\n", direction)

		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrationsPath, "path", "file://migrations", "migration source URL")
	migrateCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "do not ask for confirmation")

	rootCmd.AddCommand(migrateCmd)
}
