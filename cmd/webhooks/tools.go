package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jeffleon2/draftea-webhook-pipeline/internal/router"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/signature"
	"github.com/spf13/cobra"
)

func signCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign [file]",
		Short: "Print the X-Webhook-Signature header for a payload (stdin when no file)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, _ := cmd.Flags().GetString("secret")
			if secret == "" {
				secret = os.Getenv("SIGNATURE_SECRET")
			}
			if secret == "" {
				return fmt.Errorf("--secret or SIGNATURE_SECRET is required")
			}

			var (
				payload []byte
				err     error
			)
			if len(args) == 1 {
				payload, err = os.ReadFile(args[0])
			} else {
				payload, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("error reading payload: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", signature.HeaderName, signature.Sign(secret, payload, time.Now()))
			return nil
		},
	}

	cmd.Flags().StringP("secret", "s", "", "Signing secret")
	return cmd
}

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect routing rules",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "validate [path]",
		Short: "Validate a routing rules file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := router.LoadFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rules OK\n", args[0], len(set.Rules))
			for _, rule := range set.Rules {
				state := "enabled"
				if !rule.IsEnabled() {
					state = "disabled"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %-24s -> %-5s (%s)\n", rule.Name, rule.Target, state)
			}
			return nil
		},
	})

	return cmd
}
