package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{Use: "resguard", SilenceUsage: true, SilenceErrors: true}
	runCmd := &cobra.Command{
		Use:   "run -- <command> [args...]",
		Short: "Run a command in a guarded temporary work directory that is removed again when the command exits",
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			baseDir, err := flags.GetString("dir")
			if err != nil {
				return err
			}
			keep, err := flags.GetBool("keep")
			if err != nil {
				return err
			}
			kept, err := Run(baseDir, keep, args)
			if err != nil {
				return err
			}
			if kept != "" {
				fmt.Println(kept)
			}
			return nil
		},
	}
	lockCmd := &cobra.Command{
		Use:   "lock -- <command> [args...]",
		Short: "Run a command while holding an exclusive lock file that is removed again when the command exits",
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			file, err := flags.GetString("file")
			if err != nil {
				return err
			}
			return Lock(file, args)
		},
	}
	runFlags := runCmd.Flags()
	runFlags.String("dir", "", "base directory for the work directory (defaults to the system temp directory)")
	runFlags.Bool("keep", false, "release the work directory instead of removing it and print its path")

	lockFlags := lockCmd.Flags()
	lockFlags.String("file", "", "path of the lock file")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(lockCmd)
	if err := rootCmd.Execute(); err != nil {
		// Print error with stack trace.
		log.Fatalf("error: %+v\n", err)
	}
}
