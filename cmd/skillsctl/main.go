// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

// Package main implements skillsctl, a command-line client for the skills API.
//
// Every subcommand maps to one facade operation and prints the response.
// Connection settings come from the same configuration as the dev server
// (SKILLS_SERVICE_URL, SKILLS_PROJECT_ID, SKILLS_USER_ID, SKILLS_TOKEN or a
// config file) and can be overridden with flags:
//
//	skillsctl --service-url http://localhost:8080 --project movies summary
//	skillsctl --project movies --user jdoe rank subj1
//	skillsctl --project movies --page-url 'http://localhost:8082/?userId=jdoe' points-history
//	skillsctl --project movies setting save help.url https://docs.example.com
package main

import (
	"os"
)

var version = "dev"

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
