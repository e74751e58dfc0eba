// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

package main

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/skillsdisplay/internal/settings"
)

// payloadFunc is a facade call that returns a JSON payload.
type payloadFunc func(ctx context.Context, args []string) (json.RawMessage, error)

// optionalArg returns args[0], or "" when there is none.
func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func (c *cli) payloadCmd(use, short string, args cobra.PositionalArgs, call payloadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := call(cmd.Context(), args)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), payload)
		},
	}
}

func (c *cli) skillsCommands() []*cobra.Command {
	iconCSS := &cobra.Command{
		Use:   "icon-css",
		Short: "Print the project's custom icon stylesheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			css, err := c.skills.GetCustomIconCSS(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), css)
			return err
		},
	}

	return []*cobra.Command{
		c.payloadCmd("summary", "Print the user's skills summary", cobra.NoArgs,
			func(ctx context.Context, _ []string) (json.RawMessage, error) {
				return c.skills.GetUserSkills(ctx)
			}),
		iconCSS,
		c.payloadCmd("subject <subject-id>", "Print the user's summary for one subject", cobra.ExactArgs(1),
			func(ctx context.Context, args []string) (json.RawMessage, error) {
				return c.skills.GetSubjectSummary(ctx, args[0])
			}),
		c.payloadCmd("badge <badge-id>", "Print the skills summary for one badge", cobra.ExactArgs(1),
			func(ctx context.Context, args []string) (json.RawMessage, error) {
				return c.skills.GetBadgeSkills(ctx, args[0])
			}),
		c.payloadCmd("points-history [subject-id]", "Print the user's point history", cobra.MaximumNArgs(1),
			func(ctx context.Context, args []string) (json.RawMessage, error) {
				return c.skills.GetPointsHistory(ctx, optionalArg(args))
			}),
		c.payloadCmd("add-skill <skill-id>", "Report that the user performed a skill", cobra.ExactArgs(1),
			func(ctx context.Context, args []string) (json.RawMessage, error) {
				return c.skills.AddUserSkill(ctx, args[0])
			}),
		c.payloadCmd("rank [subject-id]", "Print the user's rank", cobra.MaximumNArgs(1),
			func(ctx context.Context, args []string) (json.RawMessage, error) {
				return c.skills.GetUserSkillsRanking(ctx, optionalArg(args))
			}),
		c.payloadCmd("rank-distribution [subject-id]", "Print the rank distribution", cobra.MaximumNArgs(1),
			func(ctx context.Context, args []string) (json.RawMessage, error) {
				return c.skills.GetUserSkillsRankingDistribution(ctx, optionalArg(args))
			}),
	}
}

func (c *cli) settingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setting",
		Short: "Read or write project settings",
	}

	var group string
	save := c.payloadCmd("save <name> <value>", "Save a project setting", cobra.ExactArgs(2),
		func(ctx context.Context, args []string) (json.RawMessage, error) {
			return c.settings.SaveSetting(ctx, c.skills.ProjectID(), settings.Setting{
				ProjectID:    c.skills.ProjectID(),
				Setting:      args[0],
				Value:        args[1],
				SettingGroup: group,
			})
		})
	save.Flags().StringVar(&group, "group", "", "setting group")

	cmd.AddCommand(
		c.payloadCmd("get <name>", "Print a project setting", cobra.ExactArgs(1),
			func(ctx context.Context, args []string) (json.RawMessage, error) {
				return c.settings.GetSetting(ctx, c.skills.ProjectID(), args[0])
			}),
		save,
	)
	return cmd
}
