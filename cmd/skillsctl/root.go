// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/skillsdisplay/internal/apiclient"
	"github.com/tomtom215/skillsdisplay/internal/config"
	"github.com/tomtom215/skillsdisplay/internal/logging"
	"github.com/tomtom215/skillsdisplay/internal/settings"
	"github.com/tomtom215/skillsdisplay/internal/skills"
)

// cli holds flag values and the facades built from them.
type cli struct {
	out io.Writer

	// loadConfig is config.Load outside tests.
	loadConfig func() (*config.Config, error)

	serviceURL string
	projectID  string
	userID     string
	token      string
	pageURL    string
	timeout    time.Duration
	debug      bool

	skills   *skills.Service
	settings *settings.Service
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{out: out, loadConfig: config.Load}
	return c.rootCmd()
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "skillsctl",
		Short: "Command-line client for the skills API",
		Long: `skillsctl calls the user skills and settings endpoints of a skills backend
and prints the JSON it returns.

When --user (or a userId in --page-url) is set, requests are made on that
user's behalf through /admin/projects instead of /api/projects.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}
	root.SetOut(c.out)

	flags := root.PersistentFlags()
	flags.StringVar(&c.serviceURL, "service-url", "", "skills API base URL (overrides SKILLS_SERVICE_URL)")
	flags.StringVar(&c.projectID, "project", "", "project ID (overrides SKILLS_PROJECT_ID)")
	flags.StringVar(&c.userID, "user", "", "acting user ID (overrides SKILLS_USER_ID and --page-url)")
	flags.StringVar(&c.token, "token", "", "bearer token (overrides SKILLS_TOKEN)")
	flags.StringVar(&c.pageURL, "page-url", "", "page URL whose userId query parameter, when present, selects the acting user")
	flags.DurationVar(&c.timeout, "timeout", 0, "per-request timeout, 0 for none (overrides SKILLS_TIMEOUT)")
	flags.BoolVar(&c.debug, "debug", false, "log requests at debug level")

	root.AddCommand(c.skillsCommands()...)
	root.AddCommand(c.settingCmd())
	return root
}

// setup resolves configuration and flags into the facades. Flags win over
// configuration; --user wins over --page-url, which only applies when it
// carries a userId parameter.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logCfg := logging.Config{
		Level:     cfg.Logging.Level,
		Format:    "console",
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    cmd.ErrOrStderr(),
	}
	if c.debug {
		logCfg.Level = "debug"
	}
	logging.Init(logCfg)

	client := cfg.Client
	flags := cmd.Flags()

	if c.pageURL != "" {
		userID, ok, err := skills.UserIDFromURL(c.pageURL)
		if err != nil {
			return err
		}
		if ok {
			client.UserID = userID
		}
	}
	if flags.Changed("service-url") {
		client.ServiceURL = c.serviceURL
	}
	if flags.Changed("project") {
		client.ProjectID = c.projectID
	}
	if flags.Changed("user") {
		client.UserID = c.userID
	}
	if flags.Changed("token") {
		client.Token = c.token
	}
	if flags.Changed("timeout") {
		client.Timeout = c.timeout
	}

	if client.ServiceURL == "" {
		return errors.New("no service URL: set --service-url or SKILLS_SERVICE_URL")
	}
	if client.ProjectID == "" {
		return errors.New("no project: set --project or SKILLS_PROJECT_ID")
	}

	api, err := apiclient.New(apiclient.Options{
		Timeout:   client.Timeout,
		UserAgent: "skillsctl/" + version,
	})
	if err != nil {
		return err
	}
	api.SetToken(client.Token)

	c.skills = skills.NewService(api, skills.Context{
		ServiceURL: client.ServiceURL,
		ProjectID:  client.ProjectID,
		UserID:     client.UserID,
	})
	c.settings = settings.NewService(api, client.ServiceURL)
	return nil
}
