package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/partner-profile-service/internal/app/partner/contracts"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/queries/list_events"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/queries/list_history"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/repo"
	"github.com/light-bringer/partner-profile-service/internal/config"
	"github.com/light-bringer/partner-profile-service/internal/models/m_outbox"
	"github.com/light-bringer/partner-profile-service/internal/transport/grpc/profile"
)

func newEventsCmd(configFile *string) *cobra.Command {
	req := &list_events.Request{}

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List recent profile events from the outbox",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configFile)
			if err != nil {
				return err
			}
			client, err := spanner.NewClient(cmd.Context(), cfg.Spanner.Database)
			if err != nil {
				return fmt.Errorf("failed to create Spanner client: %w", err)
			}
			defer client.Close()

			events, err := list_events.NewQuery(repo.NewEventsReadModel(client)).Execute(cmd.Context(), req)
			if err != nil {
				return err
			}
			printEvents(cmd.OutOrStdout(), events)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.EventType, "type", "", "event type, e.g. partner_profile.saved")
	cmd.Flags().StringVar(&req.AggregateID, "partner", "", "partner id")
	cmd.Flags().StringVar(&req.Status, "status", "", "pending, completed or failed")
	cmd.Flags().IntVar(&req.Limit, "limit", 10, "maximum events to list")
	return cmd
}

func printEvents(w io.Writer, events []*m_outbox.Data) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No events found")
		return
	}
	for i, e := range events {
		fmt.Fprintf(w, "%d. %s - %s (partner: %s, status: %s, created: %s)\n",
			i+1, e.EventType, e.EventID, e.AggregateID, e.Status, e.CreatedAt.UTC().Format(time.RFC3339))
	}
	fmt.Fprintf(w, "\nTotal: %d events\n", len(events))
}

func newHistoryCmd(configFile *string) *cobra.Command {
	req := &list_history.Request{}
	var since string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved snapshots of a partner profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if since != "" {
				t, err := time.Parse(time.RFC3339, since)
				if err != nil {
					return fmt.Errorf("invalid --since: %w", err)
				}
				req.Since = t
			}
			cfg, err := config.Load(*configFile)
			if err != nil {
				return err
			}
			client, err := spanner.NewClient(cmd.Context(), cfg.Spanner.Database)
			if err != nil {
				return fmt.Errorf("failed to create Spanner client: %w", err)
			}
			defer client.Close()

			snapshots, err := list_history.NewQuery(repo.NewHistoryReadModel(client)).Execute(cmd.Context(), req)
			if err != nil {
				return err
			}
			printSnapshots(cmd.OutOrStdout(), snapshots)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.PartnerID, "partner", "", "partner id")
	cmd.Flags().StringVar(&req.UserID, "user", "", "user id")
	cmd.Flags().StringVar(&req.Field, "field", "", "only snapshots that changed this field")
	cmd.Flags().StringVar(&since, "since", "", "RFC 3339 lower bound on saved_at")
	cmd.Flags().IntVar(&req.Limit, "limit", list_history.DefaultLimit, "maximum snapshots to list")
	_ = cmd.MarkFlagRequired("partner")
	return cmd
}

func printSnapshots(w io.Writer, snapshots []*contracts.SnapshotDTO) {
	if len(snapshots) == 0 {
		fmt.Fprintln(w, "No snapshots found")
		return
	}
	for _, s := range snapshots {
		fmt.Fprintf(w, "%s  %s  user=%s task=%s  %s\n",
			s.SavedAt.UTC().Format(time.RFC3339), s.SnapshotID, s.UserID, s.TaskID, strings.Join(s.ChangedFields, ","))
	}
}

func newSessionCmd() *cobra.Command {
	var (
		addr, partnerID, userID string
		sets                    []string
		save                    bool
	)

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Edit a profile through the session service",
		Long: `Open an editing session on a running server, apply --set edits, print the
diff and optionally save. The session is always closed afterwards.

Values are JSON; anything that does not parse as JSON is sent as a string:

  profilectl session --partner p-1 --user u-1 --set 'goals=["long_term"]' --set name=Sam --save`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			edits, err := parseSets(sets)
			if err != nil {
				return err
			}
			conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
			if err != nil {
				return fmt.Errorf("failed to connect: %w", err)
			}
			defer conn.Close()

			return runSession(cmd, profile.NewClient(conn), partnerID, userID, edits, save)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "localhost:9090", "gRPC server address")
	cmd.Flags().StringVar(&partnerID, "partner", "", "partner id")
	cmd.Flags().StringVar(&userID, "user", "", "user id")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "field=value edit, repeatable")
	cmd.Flags().BoolVar(&save, "save", false, "save the draft after editing")
	_ = cmd.MarkFlagRequired("partner")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

type edit struct {
	field string
	value any
}

func parseSets(sets []string) ([]edit, error) {
	edits := make([]edit, 0, len(sets))
	for _, s := range sets {
		field, raw, ok := strings.Cut(s, "=")
		if !ok || field == "" {
			return nil, fmt.Errorf("invalid --set %q, want field=value", s)
		}
		var value any
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			value = raw
		}
		edits = append(edits, edit{field: field, value: value})
	}
	return edits, nil
}

func runSession(cmd *cobra.Command, client *profile.Client, partnerID, userID string, edits []edit, save bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	call := func(method string, in map[string]any) (map[string]any, error) {
		req, err := structpb.NewStruct(in)
		if err != nil {
			return nil, err
		}
		reply, err := client.Call(ctx, method, req)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		return reply.AsMap(), nil
	}

	opened, err := call("OpenSession", map[string]any{"partner_id": partnerID, "user_id": userID})
	if err != nil {
		return err
	}
	sessionID, _ := opened["session_id"].(string)
	defer func() { _, _ = call("CloseSession", map[string]any{"session_id": sessionID}) }()

	for _, e := range edits {
		if _, err := call("UpdateField", map[string]any{"session_id": sessionID, "field": e.field, "value": e.value}); err != nil {
			return err
		}
	}

	diff, err := call("DiffSession", map[string]any{"session_id": sessionID})
	if err != nil {
		return err
	}
	if err := printJSON(out, diff); err != nil {
		return err
	}

	if !save {
		return nil
	}
	saved, err := call("SaveSession", map[string]any{"session_id": sessionID})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "saved=%v task_id=%v\n", saved["saved"], saved["task_id"])
	return nil
}
