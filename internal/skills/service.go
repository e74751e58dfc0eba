// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

package skills

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/goccy/go-json"
)

// Transport issues the HTTP requests for a Service. *apiclient.Client
// implements it.
type Transport interface {
	GetJSON(ctx context.Context, operation, rawURL string, query url.Values, out interface{}) error
	GetText(ctx context.Context, operation, rawURL string, query url.Values) (string, error)
	SetToken(token string)
}

// Context is the initial state of a Service.
type Context struct {
	ServiceURL string
	ProjectID  string

	// UserID is the acting user. When set, requests go to the admin mount on
	// that user's behalf.
	UserID string
}

// ContextFromURL returns a Context whose UserID is the userId query
// parameter of pageURL.
func ContextFromURL(pageURL string) (Context, error) {
	userID, _, err := UserIDFromURL(pageURL)
	if err != nil {
		return Context{}, err
	}
	return Context{UserID: userID}, nil
}

// UserIDFromURL returns the userId query parameter of pageURL and whether
// the parameter is present at all.
func UserIDFromURL(pageURL string) (string, bool, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return "", false, fmt.Errorf("invalid page URL: %w", err)
	}
	q := u.Query()
	return q.Get("userId"), q.Has("userId"), nil
}

// Service is the user skills facade. It is safe for concurrent use; each
// call reads the configuration once before building its request.
type Service struct {
	api Transport

	mu         sync.RWMutex
	serviceURL string
	projectID  string
	userID     string
}

// NewService creates a Service on top of api.
func NewService(api Transport, c Context) *Service {
	return &Service{
		api:        api,
		serviceURL: c.ServiceURL,
		projectID:  c.ProjectID,
		userID:     c.UserID,
	}
}

// SetServiceURL changes the base URL used by later calls.
func (s *Service) SetServiceURL(serviceURL string) {
	s.mu.Lock()
	s.serviceURL = serviceURL
	s.mu.Unlock()
}

// SetProjectID changes the project used by later calls.
func (s *Service) SetProjectID(projectID string) {
	s.mu.Lock()
	s.projectID = projectID
	s.mu.Unlock()
}

// SetUserID changes the acting user. An empty ID switches back to the public mount.
func (s *Service) SetUserID(userID string) {
	s.mu.Lock()
	s.userID = userID
	s.mu.Unlock()
}

// SetToken sets the bearer token on the underlying transport. It applies to
// every facade sharing that transport. An empty token removes the header.
func (s *Service) SetToken(token string) {
	s.api.SetToken(token)
}

// ServiceURL returns the current base URL.
func (s *Service) ServiceURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.serviceURL
}

// ProjectID returns the current project.
func (s *Service) ProjectID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.projectID
}

// UserID returns the current acting user, or "" when there is none.
func (s *Service) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// ServicePath returns the API mount for the current acting user.
func (s *Service) ServicePath() string {
	return prefixFor(s.UserID())
}

// snapshot returns the endpoint and acting user for one request.
func (s *Service) snapshot() (endpoint, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return endpoint{
		serviceURL: s.serviceURL,
		prefix:     prefixFor(s.userID),
		projectID:  s.projectID,
	}, s.userID
}

func userQuery(userID string) url.Values {
	return url.Values{"userId": {userID}}
}

// GetUserSkills fetches the user's skills summary for the project.
func (s *Service) GetUserSkills(ctx context.Context) (json.RawMessage, error) {
	ep, userID := s.snapshot()
	var out json.RawMessage
	err := s.api.GetJSON(ctx, "summary", ep.path(lit("summary")), userQuery(userID), &out)
	return out, err
}

// GetCustomIconCSS fetches the project's custom icon stylesheet.
func (s *Service) GetCustomIconCSS(ctx context.Context) (string, error) {
	ep, _ := s.snapshot()
	return s.api.GetText(ctx, "customIconCss", ep.path(lit("customIconCss")), nil)
}

// GetSubjectSummary fetches the user's summary for one subject.
func (s *Service) GetSubjectSummary(ctx context.Context, subjectID string) (json.RawMessage, error) {
	ep, userID := s.snapshot()
	var out json.RawMessage
	u := ep.path(lit("subjects"), val(subjectID), lit("summary"))
	err := s.api.GetJSON(ctx, "subjectSummary", u, userQuery(userID), &out)
	return out, err
}

// GetBadgeSkills fetches the skills summary for one badge.
func (s *Service) GetBadgeSkills(ctx context.Context, badgeID string) (json.RawMessage, error) {
	ep, _ := s.snapshot()
	var out json.RawMessage
	u := ep.path(lit("badges"), val(badgeID), lit("summary"))
	err := s.api.GetJSON(ctx, "badgeSummary", u, nil, &out)
	return out, err
}

// GetPointsHistory returns the pointsHistory field of the point history
// response, project-wide when subjectID is empty.
func (s *Service) GetPointsHistory(ctx context.Context, subjectID string) (json.RawMessage, error) {
	ep, userID := s.snapshot()
	var out struct {
		PointsHistory json.RawMessage `json:"pointsHistory"`
	}
	u := ep.path(optional("subjects", subjectID), lit("pointHistory"))
	if err := s.api.GetJSON(ctx, "pointHistory", u, userQuery(userID), &out); err != nil {
		return nil, err
	}
	return out.PointsHistory, nil
}

// AddUserSkill reports that the user performed skillID.
func (s *Service) AddUserSkill(ctx context.Context, skillID string) (json.RawMessage, error) {
	ep, userID := s.snapshot()
	var out json.RawMessage
	u := ep.path(lit("addSkill"), val(skillID))
	err := s.api.GetJSON(ctx, "addSkill", u, userQuery(userID), &out)
	return out, err
}

// GetUserSkillsRanking fetches the user's rank, project-wide when subjectID
// is empty.
func (s *Service) GetUserSkillsRanking(ctx context.Context, subjectID string) (json.RawMessage, error) {
	ep, userID := s.snapshot()
	var out json.RawMessage
	u := ep.path(optional("subjects", subjectID), lit("rank"))
	err := s.api.GetJSON(ctx, "rank", u, userQuery(userID), &out)
	return out, err
}

// GetUserSkillsRankingDistribution fetches the rank distribution. A
// non-empty subjectID is sent both in the path and as a query parameter.
func (s *Service) GetUserSkillsRankingDistribution(ctx context.Context, subjectID string) (json.RawMessage, error) {
	ep, userID := s.snapshot()
	query := userQuery(userID)
	if subjectID != "" {
		query.Set("subjectId", subjectID)
	}
	var out json.RawMessage
	u := ep.path(optional("subjects", subjectID), lit("rankDistribution"))
	err := s.api.GetJSON(ctx, "rankDistribution", u, query, &out)
	return out, err
}
