// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

/*
Package skills provides the user skills facade.

A Service holds the service URL, project and acting user, and turns each
call into one request against

	{serviceURL}/api/projects/{projectID}/...     no acting user
	{serviceURL}/admin/projects/{projectID}/...   acting user set

Subject-scoped calls take an optional subject ID. When it is empty the
subjects/{subjectID} pair is left out of the path:

	GetUserSkillsRanking(ctx, "")    -> .../proj1/rank?userId=
	GetUserSkillsRanking(ctx, "s1")  -> .../proj1/subjects/s1/rank?userId=

Calls that carry the acting user always send userId, empty or not.

Usage:

	api, _ := apiclient.New(apiclient.Options{})
	c, _ := skills.ContextFromURL(pageURL)
	c.ServiceURL, c.ProjectID = "https://skills.example.com", "proj1"

	svc := skills.NewService(api, c)
	svc.SetToken(token)
	summary, err := svc.GetUserSkills(ctx)

Errors from the transport are returned unchanged.
*/
package skills
