// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

package settings

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/skillsdisplay/internal/apiclient"
	"github.com/tomtom215/skillsdisplay/internal/validation"
)

type captured struct {
	method string
	uri    string
	body   []byte
}

func newBackend(t *testing.T, response string) (*httptest.Server, *[]captured) {
	t.Helper()
	var reqs []captured
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		reqs = append(reqs, captured{method: r.Method, uri: r.URL.RequestURI(), body: body})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)
	return server, &reqs
}

func newService(t *testing.T, serviceURL string) *Service {
	t.Helper()
	api, err := apiclient.New(apiclient.Options{})
	if err != nil {
		t.Fatalf("apiclient.New() error = %v", err)
	}
	return NewService(api, serviceURL)
}

func TestSaveSetting(t *testing.T) {
	server, reqs := newBackend(t, `{"success":true,"explanation":null}`)
	svc := newService(t, server.URL)

	got, err := svc.SaveSetting(context.Background(), "proj1", Setting{Setting: "foo", Value: "bar"})
	if err != nil {
		t.Fatalf("SaveSetting() error = %v", err)
	}

	if len(*reqs) != 1 {
		t.Fatalf("expected 1 request, got %d", len(*reqs))
	}
	req := (*reqs)[0]
	if req.method != http.MethodPost {
		t.Errorf("method = %s, want POST", req.method)
	}
	if req.uri != "/admin/projects/proj1/settings/foo" {
		t.Errorf("uri = %s", req.uri)
	}

	var sent map[string]interface{}
	if err := json.Unmarshal(req.body, &sent); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if sent["setting"] != "foo" || sent["value"] != "bar" {
		t.Errorf("body = %s", req.body)
	}
	if _, ok := sent["settingGroup"]; ok {
		t.Error("empty settingGroup should be omitted")
	}
	if string(got) != `{"success":true,"explanation":null}` {
		t.Errorf("response = %s", got)
	}
}

func TestSaveSetting_FullObject(t *testing.T) {
	server, reqs := newBackend(t, `{}`)
	svc := newService(t, server.URL)

	setting := Setting{ProjectID: "proj1", Setting: "level.points.enabled", Value: "true", SettingGroup: "levels"}
	if _, err := svc.SaveSetting(context.Background(), "proj1", setting); err != nil {
		t.Fatalf("SaveSetting() error = %v", err)
	}

	var sent Setting
	if err := json.Unmarshal((*reqs)[0].body, &sent); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if sent.ProjectID != setting.ProjectID || sent.Setting != setting.Setting ||
		sent.Value != setting.Value || sent.SettingGroup != setting.SettingGroup || sent.Extra != nil {
		t.Errorf("sent = %+v, want %+v", sent, setting)
	}
	if (*reqs)[0].uri != "/admin/projects/proj1/settings/level.points.enabled" {
		t.Errorf("uri = %s", (*reqs)[0].uri)
	}
}

func TestSaveSetting_EmptyValueIsSent(t *testing.T) {
	server, reqs := newBackend(t, `{}`)
	svc := newService(t, server.URL)

	if _, err := svc.SaveSetting(context.Background(), "proj1", Setting{Setting: "foo", Value: ""}); err != nil {
		t.Fatalf("SaveSetting() error = %v", err)
	}

	var sent map[string]interface{}
	if err := json.Unmarshal((*reqs)[0].body, &sent); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	value, ok := sent["value"]
	if !ok {
		t.Fatalf("value key missing from body %s", (*reqs)[0].body)
	}
	if value != "" {
		t.Errorf("value = %v, want empty string", value)
	}
}

func TestSaveSetting_ExtraFieldsAreSent(t *testing.T) {
	server, reqs := newBackend(t, `{}`)
	svc := newService(t, server.URL)

	setting := Setting{
		Setting: "home_page",
		Value:   "progress",
		Extra: map[string]json.RawMessage{
			"isEnabled": json.RawMessage(`true`),
			"setting":   json.RawMessage(`"ignored"`),
		},
	}
	if _, err := svc.SaveSetting(context.Background(), "proj1", setting); err != nil {
		t.Fatalf("SaveSetting() error = %v", err)
	}

	req := (*reqs)[0]
	if req.uri != "/admin/projects/proj1/settings/home_page" {
		t.Errorf("uri = %s", req.uri)
	}
	var sent map[string]interface{}
	if err := json.Unmarshal(req.body, &sent); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if sent["isEnabled"] != true {
		t.Errorf("isEnabled = %v, want true", sent["isEnabled"])
	}
	if sent["setting"] != "home_page" || sent["value"] != "progress" {
		t.Errorf("named fields should win over Extra: %s", req.body)
	}
}

func TestSettingUnmarshalKeepsExtra(t *testing.T) {
	var s Setting
	err := json.Unmarshal([]byte(`{"setting":"a","value":"","projectId":"p","isEnabled":true}`), &s)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if s.Setting != "a" || s.ProjectID != "p" {
		t.Errorf("named fields = %+v", s)
	}
	if len(s.Extra) != 1 || string(s.Extra["isEnabled"]) != "true" {
		t.Errorf("Extra = %v", s.Extra)
	}

	out, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var back map[string]interface{}
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(back) != 4 || back["isEnabled"] != true {
		t.Errorf("re-encoded = %s", out)
	}
}

func TestSaveSetting_RequiresName(t *testing.T) {
	server, reqs := newBackend(t, `{}`)
	svc := newService(t, server.URL)

	_, err := svc.SaveSetting(context.Background(), "proj1", Setting{Value: "bar"})
	var verr *validation.RequestValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !verr.HasField("setting") {
		t.Errorf("expected setting field error, got %v", verr)
	}
	if len(*reqs) != 0 {
		t.Error("no request should be sent for an invalid setting")
	}
}

func TestGetSetting(t *testing.T) {
	server, reqs := newBackend(t, `{"setting":"help.url","value":"https://docs"}`)
	svc := newService(t, server.URL+"/")

	got, err := svc.GetSetting(context.Background(), "proj 1", "help.url")
	if err != nil {
		t.Fatalf("GetSetting() error = %v", err)
	}

	req := (*reqs)[0]
	if req.method != http.MethodGet {
		t.Errorf("method = %s, want GET", req.method)
	}
	if req.uri != "/admin/projects/proj%201/settings/help.url" {
		t.Errorf("uri = %s", req.uri)
	}
	if string(got) != `{"setting":"help.url","value":"https://docs"}` {
		t.Errorf("payload = %s", got)
	}
}

func TestGetSetting_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	svc := newService(t, server.URL)
	_, err := svc.GetSetting(context.Background(), "proj1", "x")
	if apiclient.StatusCode(err) != http.StatusForbidden {
		t.Errorf("expected 403 ResponseError, got %v", err)
	}
}

func TestServiceURLSetter(t *testing.T) {
	svc := NewService(nil, "http://a")
	svc.SetServiceURL("http://b")
	if svc.ServiceURL() != "http://b" {
		t.Errorf("ServiceURL() = %s", svc.ServiceURL())
	}
	if got := svc.settingURL("p", "s"); got != "http://b/admin/projects/p/settings/s" {
		t.Errorf("settingURL() = %s", got)
	}
}
