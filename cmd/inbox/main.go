// Command inbox reads stored contact-form submissions from the messages file.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/portfolio/backend/internal/config"
	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd(config.Load().MessagesFile).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(defaultFile string) *cobra.Command {
	var file string

	root := &cobra.Command{
		Use:          "inbox",
		Short:        "Inspect contact-form submissions",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&file, "file", "f", defaultFile, "path to the messages JSON file")

	var format string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print every submission in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			subs, outcome, err := repository.NewFileSubmissionRepository(file).List(cmd.Context())
			if err != nil {
				return err
			}
			if outcome == repository.OutcomeReset {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s is not a valid submission array\n", file)
			}
			return writeSubmissions(cmd.OutOrStdout(), format, subs)
		},
	}
	listCmd.Flags().StringVarP(&format, "format", "o", "text", "output format: text, json or yaml")

	countCmd := &cobra.Command{
		Use:   "count",
		Short: "Print the number of stored submissions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			subs, _, err := repository.NewFileSubmissionRepository(file).List(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), len(subs))
			return err
		},
	}

	root.AddCommand(listCmd, countCmd)
	return root
}

func writeSubmissions(w io.Writer, format string, subs []model.Submission) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(subs)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(subs)
	case "text":
		for i, s := range subs {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "[%s] %s <%s>\n%s\n", s.Time, s.Name, s.Email, s.Message)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
