// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

package settings

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/goccy/go-json"

	"github.com/tomtom215/skillsdisplay/internal/validation"
)

// Transport issues the HTTP requests for a Service. *apiclient.Client
// implements it.
type Transport interface {
	GetJSON(ctx context.Context, operation, rawURL string, query url.Values, out interface{}) error
	PostJSON(ctx context.Context, operation, rawURL string, payload, out interface{}) error
}

// Setting is a project setting as the skills API stores it. Value is always
// sent, even when empty. Extra holds any further fields of the caller's
// setting object; they are sent alongside the named ones, which win on a
// clash.
type Setting struct {
	ProjectID    string `json:"projectId,omitempty"`
	Setting      string `json:"setting" validate:"required"`
	Value        string `json:"value"`
	SettingGroup string `json:"settingGroup,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// MarshalJSON encodes the named fields together with Extra.
func (s Setting) MarshalJSON() ([]byte, error) {
	type plain Setting
	named, err := json.Marshal(plain(s))
	if err != nil {
		return nil, err
	}
	if len(s.Extra) == 0 {
		return named, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(named, &fields); err != nil {
		return nil, err
	}
	for k, v := range s.Extra {
		if _, ok := fields[k]; !ok {
			fields[k] = v
		}
	}
	return json.Marshal(fields)
}

// UnmarshalJSON decodes the named fields and keeps every other field in Extra.
func (s *Setting) UnmarshalJSON(data []byte) error {
	type plain Setting
	var named plain
	if err := json.Unmarshal(data, &named); err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for _, k := range []string{"projectId", "setting", "value", "settingGroup"} {
		delete(fields, k)
	}
	if len(fields) > 0 {
		named.Extra = fields
	}

	*s = Setting(named)
	return nil
}

// Service reads and writes project settings. Settings live under the admin
// mount whether or not an acting user is set.
type Service struct {
	api Transport

	mu         sync.RWMutex
	serviceURL string
}

// NewService creates a settings Service rooted at serviceURL.
func NewService(api Transport, serviceURL string) *Service {
	return &Service{api: api, serviceURL: serviceURL}
}

// SetServiceURL changes the base URL used by later calls.
func (s *Service) SetServiceURL(serviceURL string) {
	s.mu.Lock()
	s.serviceURL = serviceURL
	s.mu.Unlock()
}

// ServiceURL returns the current base URL.
func (s *Service) ServiceURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.serviceURL
}

func (s *Service) settingURL(projectID, settingName string) string {
	return strings.TrimSuffix(s.ServiceURL(), "/") +
		"/admin/projects/" + url.PathEscape(projectID) +
		"/settings/" + url.PathEscape(settingName)
}

// GetSetting fetches one setting of a project.
func (s *Service) GetSetting(ctx context.Context, projectID, settingName string) (json.RawMessage, error) {
	var out json.RawMessage
	err := s.api.GetJSON(ctx, "getSetting", s.settingURL(projectID, settingName), nil, &out)
	return out, err
}

// SaveSetting posts the whole setting to the path named by setting.Setting
// and returns the response body.
func (s *Service) SaveSetting(ctx context.Context, projectID string, setting Setting) (json.RawMessage, error) {
	if verr := validation.ValidateStruct(&setting); verr != nil {
		return nil, verr
	}

	var out json.RawMessage
	err := s.api.PostJSON(ctx, "saveSetting", s.settingURL(projectID, setting.Setting), setting, &out)
	return out, err
}
