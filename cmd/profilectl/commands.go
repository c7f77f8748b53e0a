package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/light-bringer/partner-profile-service/internal/app/partner/domain"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/payload"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/validation"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/wire"
	"github.com/light-bringer/partner-profile-service/internal/config"
	"github.com/light-bringer/partner-profile-service/internal/transport/taskapi"
)

func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "profilectl",
		Short:         "Inspect partner profiles",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", os.Getenv("PPS_CONFIG_FILE"), "optional YAML config file")

	root.AddCommand(
		newFetchCmd(&configFile),
		newDiffCmd(),
		newPayloadCmd(),
		newValidateCmd(),
		newEventsCmd(&configFile),
		newHistoryCmd(&configFile),
		newSessionCmd(),
	)
	return root
}

func newFetchCmd(configFile *string) *cobra.Command {
	var partnerID, userID string
	var asDomain bool

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch a partner profile from the task service",
		Long: `Fetch a partner profile through the partner_profile_get task and print it.

By default the wire object is printed as returned. With --domain the profile
is converted to the in-memory model first, which shows exactly which values
survive enum filtering.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configFile)
			if err != nil {
				return err
			}
			client := taskapi.NewClient(taskapi.Config{
				BaseURL: cfg.TaskAPI.BaseURL,
				Token:   cfg.TaskAPI.Token,
				Timeout: cfg.TaskAPI.Timeout,
			}, zap.NewNop())

			obj, err := client.FetchProfile(cmd.Context(), partnerID, userID)
			if err != nil {
				return err
			}
			if asDomain {
				return printJSON(cmd.OutOrStdout(), wire.ToDomain(obj))
			}
			return printJSON(cmd.OutOrStdout(), obj)
		},
	}
	cmd.Flags().StringVar(&partnerID, "partner", "", "partner id")
	cmd.Flags().StringVar(&userID, "user", "", "user id")
	cmd.Flags().BoolVar(&asDomain, "domain", false, "print the converted domain model")
	_ = cmd.MarkFlagRequired("partner")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newDiffCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "diff DRAFT.json SAVED.json",
		Short: "List the fields that differ between two wire profiles",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, saved, err := loadPair(args[0], args[1])
			if err != nil {
				return err
			}
			diff := domain.ComputeProfileDiff(draft, saved)
			if asJSON {
				return printJSON(cmd.OutOrStdout(), wire.FieldsToWire(draft, diff.Fields()))
			}
			out := cmd.OutOrStdout()
			if diff.IsEmpty() {
				fmt.Fprintln(out, "no changes")
				return nil
			}
			for _, f := range diff.Fields() {
				marker := " "
				if domain.IsTracked(f) {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s\n", marker, f)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print changed values as a wire object")
	return cmd
}

func newPayloadCmd() *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "payload DRAFT.json [SAVED.json]",
		Short: "Print the update payload a save would send",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			builder, err := payload.ForStrategy(strategy)
			if err != nil {
				return err
			}
			draft, err := loadProfile(args[0])
			if err != nil {
				return err
			}
			var saved *domain.PartnerProfile
			if len(args) == 2 {
				if saved, err = loadProfile(args[1]); err != nil {
					return err
				}
			}
			return printJSON(cmd.OutOrStdout(), builder.Build(draft, saved))
		},
	}
	cmd.Flags().StringVar(&strategy, "strategy", payload.StrategyFull, "payload strategy: full or changed")
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate PROFILE.json",
		Short: "Run pre-save validation on a wire profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProfile(args[0])
			if err != nil {
				return err
			}
			if err := validation.New().Validate(p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

func loadPair(draftPath, savedPath string) (draft, saved *domain.PartnerProfile, err error) {
	if draft, err = loadProfile(draftPath); err != nil {
		return nil, nil, err
	}
	if saved, err = loadProfile(savedPath); err != nil {
		return nil, nil, err
	}
	return draft, saved, nil
}

// loadProfile reads a wire profile, bare or wrapped in partner_profile.
func loadProfile(path string) (*domain.PartnerProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	obj, err := wire.DecodeGetResult(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return wire.ToDomain(obj), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
