// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

package skills

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/skillsdisplay/internal/apiclient"
)

// recordingTransport captures requests instead of sending them.
type recordingTransport struct {
	mu      sync.Mutex
	calls   []recordedCall
	token   string
	payload string
	err     error
}

type recordedCall struct {
	operation string
	url       string
}

func (r *recordingTransport) record(operation, rawURL string, query url.Values) {
	r.mu.Lock()
	defer r.mu.Unlock()
	full := rawURL
	if len(query) > 0 {
		full += "?" + query.Encode()
	}
	r.calls = append(r.calls, recordedCall{operation: operation, url: full})
}

func (r *recordingTransport) GetJSON(_ context.Context, operation, rawURL string, query url.Values, out interface{}) error {
	r.record(operation, rawURL, query)
	if r.err != nil {
		return r.err
	}
	payload := r.payload
	if payload == "" {
		payload = `{}`
	}
	return json.Unmarshal([]byte(payload), out)
}

func (r *recordingTransport) GetText(_ context.Context, operation, rawURL string, query url.Values) (string, error) {
	r.record(operation, rawURL, query)
	return r.payload, r.err
}

func (r *recordingTransport) SetToken(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.token = token
}

func (r *recordingTransport) lastURL(t *testing.T) string {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		t.Fatal("no request recorded")
	}
	return r.calls[len(r.calls)-1].url
}

func TestRankingURL_Examples(t *testing.T) {
	rt := &recordingTransport{}
	svc := NewService(rt, Context{ServiceURL: "https://api.x", ProjectID: "proj1"})
	ctx := context.Background()

	_, err := svc.GetUserSkillsRanking(ctx, "")
	checkNoError(t, err)
	checkStringEqual(t, "no user", rt.lastURL(t), "https://api.x/api/projects/proj1/rank?userId=")

	svc.SetUserID("u1")
	_, err = svc.GetUserSkillsRanking(ctx, "")
	checkNoError(t, err)
	checkStringEqual(t, "with user", rt.lastURL(t), "https://api.x/admin/projects/proj1/rank?userId=u1")
}

func TestOperationURLs(t *testing.T) {
	type call func(ctx context.Context, s *Service) error

	tests := []struct {
		name      string
		userID    string
		call      call
		wantURL   string
		operation string
	}{
		{
			name:      "summary",
			call:      func(ctx context.Context, s *Service) error { _, err := s.GetUserSkills(ctx); return err },
			wantURL:   "https://api.x/api/projects/proj1/summary?userId=",
			operation: "summary",
		},
		{
			name:      "summary admin",
			userID:    "u1",
			call:      func(ctx context.Context, s *Service) error { _, err := s.GetUserSkills(ctx); return err },
			wantURL:   "https://api.x/admin/projects/proj1/summary?userId=u1",
			operation: "summary",
		},
		{
			name:      "custom icon css",
			userID:    "u1",
			call:      func(ctx context.Context, s *Service) error { _, err := s.GetCustomIconCSS(ctx); return err },
			wantURL:   "https://api.x/admin/projects/proj1/customIconCss",
			operation: "customIconCss",
		},
		{
			name:      "subject summary",
			call:      func(ctx context.Context, s *Service) error { _, err := s.GetSubjectSummary(ctx, "subj1"); return err },
			wantURL:   "https://api.x/api/projects/proj1/subjects/subj1/summary?userId=",
			operation: "subjectSummary",
		},
		{
			name:      "badge summary has no userId",
			userID:    "u1",
			call:      func(ctx context.Context, s *Service) error { _, err := s.GetBadgeSkills(ctx, "badge1"); return err },
			wantURL:   "https://api.x/admin/projects/proj1/badges/badge1/summary",
			operation: "badgeSummary",
		},
		{
			name:      "points history project",
			call:      func(ctx context.Context, s *Service) error { _, err := s.GetPointsHistory(ctx, ""); return err },
			wantURL:   "https://api.x/api/projects/proj1/pointHistory?userId=",
			operation: "pointHistory",
		},
		{
			name:      "points history subject",
			userID:    "u1",
			call:      func(ctx context.Context, s *Service) error { _, err := s.GetPointsHistory(ctx, "subj1"); return err },
			wantURL:   "https://api.x/admin/projects/proj1/subjects/subj1/pointHistory?userId=u1",
			operation: "pointHistory",
		},
		{
			name:      "add skill",
			call:      func(ctx context.Context, s *Service) error { _, err := s.AddUserSkill(ctx, "skill1"); return err },
			wantURL:   "https://api.x/api/projects/proj1/addSkill/skill1?userId=",
			operation: "addSkill",
		},
		{
			name:      "rank subject",
			call:      func(ctx context.Context, s *Service) error { _, err := s.GetUserSkillsRanking(ctx, "subj1"); return err },
			wantURL:   "https://api.x/api/projects/proj1/subjects/subj1/rank?userId=",
			operation: "rank",
		},
		{
			name:      "rank distribution project",
			call:      func(ctx context.Context, s *Service) error { _, err := s.GetUserSkillsRankingDistribution(ctx, ""); return err },
			wantURL:   "https://api.x/api/projects/proj1/rankDistribution?userId=",
			operation: "rankDistribution",
		},
		{
			name:   "rank distribution subject sends subjectId twice",
			userID: "u1",
			call: func(ctx context.Context, s *Service) error {
				_, err := s.GetUserSkillsRankingDistribution(ctx, "subj1")
				return err
			},
			wantURL:   "https://api.x/admin/projects/proj1/subjects/subj1/rankDistribution?subjectId=subj1&userId=u1",
			operation: "rankDistribution",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := &recordingTransport{}
			svc := NewService(rt, Context{ServiceURL: "https://api.x", ProjectID: "proj1", UserID: tt.userID})

			checkNoError(t, tt.call(context.Background(), svc))
			checkStringEqual(t, "url", rt.lastURL(t), tt.wantURL)
			checkStringEqual(t, "operation", rt.calls[0].operation, tt.operation)
		})
	}
}

func TestSubjectScoped_NoEmptySegment(t *testing.T) {
	rt := &recordingTransport{}
	svc := NewService(rt, Context{ServiceURL: "https://api.x", ProjectID: "proj1"})
	ctx := context.Background()

	_, _ = svc.GetPointsHistory(ctx, "")
	_, _ = svc.GetUserSkillsRanking(ctx, "")
	_, _ = svc.GetUserSkillsRankingDistribution(ctx, "")

	for _, c := range rt.calls {
		if strings.Contains(c.url, "subjects") || strings.Contains(c.url, "proj1//") {
			t.Errorf("%s: unexpected subject or empty segment in %q", c.operation, c.url)
		}
		if strings.Contains(c.url, "subjectId") {
			t.Errorf("%s: subjectId should not be sent when absent: %q", c.operation, c.url)
		}
	}
}

func TestGetPointsHistory_ReturnsField(t *testing.T) {
	rt := &recordingTransport{payload: `{"pointsHistory":[{"dayPerformed":"2026-01-01","points":10}],"achievements":[]}`}
	svc := NewService(rt, Context{ServiceURL: "https://api.x", ProjectID: "proj1"})

	got, err := svc.GetPointsHistory(context.Background(), "")
	checkNoError(t, err)
	checkStringEqual(t, "pointsHistory", string(got), `[{"dayPerformed":"2026-01-01","points":10}]`)
}

func TestGetCustomIconCSS_RawBody(t *testing.T) {
	rt := &recordingTransport{payload: ".a { color: red; }"}
	svc := NewService(rt, Context{ServiceURL: "https://api.x", ProjectID: "proj1"})

	got, err := svc.GetCustomIconCSS(context.Background())
	checkNoError(t, err)
	checkStringEqual(t, "css", got, ".a { color: red; }")
}

func TestErrorsPropagate(t *testing.T) {
	sentinel := errors.New("transport down")
	rt := &recordingTransport{err: sentinel}
	svc := NewService(rt, Context{ServiceURL: "https://api.x", ProjectID: "proj1"})
	ctx := context.Background()

	if _, err := svc.GetUserSkills(ctx); !errors.Is(err, sentinel) {
		t.Errorf("GetUserSkills error = %v", err)
	}
	if _, err := svc.GetPointsHistory(ctx, "s"); !errors.Is(err, sentinel) {
		t.Errorf("GetPointsHistory error = %v", err)
	}
	if _, err := svc.GetCustomIconCSS(ctx); !errors.Is(err, sentinel) {
		t.Errorf("GetCustomIconCSS error = %v", err)
	}
}

func TestSettersAndReaders(t *testing.T) {
	rt := &recordingTransport{}
	svc := NewService(rt, Context{})

	checkStringEqual(t, "ServicePath", svc.ServicePath(), PublicPrefix)

	svc.SetServiceURL("https://skills.example.com")
	svc.SetProjectID("movies")
	svc.SetUserID("admin-view")
	svc.SetToken("tok")

	checkStringEqual(t, "ServiceURL", svc.ServiceURL(), "https://skills.example.com")
	checkStringEqual(t, "ProjectID", svc.ProjectID(), "movies")
	checkStringEqual(t, "UserID", svc.UserID(), "admin-view")
	checkStringEqual(t, "ServicePath", svc.ServicePath(), AdminPrefix)
	checkStringEqual(t, "token", rt.token, "tok")

	svc.SetUserID("")
	checkStringEqual(t, "ServicePath after clear", svc.ServicePath(), PublicPrefix)
}

func TestContextFromURL(t *testing.T) {
	tests := []struct {
		name    string
		pageURL string
		want    string
		wantErr bool
	}{
		{"with user", "https://app.example.com/skills?userId=jdoe&x=1", "jdoe", false},
		{"without user", "https://app.example.com/skills", "", false},
		{"encoded user", "http://localhost:8082/?userId=j%40doe.com", "j@doe.com", false},
		{"invalid", "http://[::1", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ContextFromURL(tt.pageURL)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			checkNoError(t, err)
			checkStringEqual(t, "UserID", c.UserID, tt.want)
		})
	}
}

func TestUserIDFromURL(t *testing.T) {
	tests := []struct {
		name      string
		pageURL   string
		want      string
		wantFound bool
	}{
		{"present", "http://localhost:8082/?userId=jdoe", "jdoe", true},
		{"present but empty", "http://localhost:8082/?userId=", "", true},
		{"absent", "http://localhost:8082/?tab=rank", "", false},
		{"no query", "http://localhost:8082/", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found, err := UserIDFromURL(tt.pageURL)
			checkNoError(t, err)
			checkStringEqual(t, "userId", got, tt.want)
			if found != tt.wantFound {
				t.Errorf("found = %v, want %v", found, tt.wantFound)
			}
		})
	}

	if _, _, err := UserIDFromURL("http://[::1"); err == nil {
		t.Error("expected error for an invalid URL")
	}
}

func TestConcurrentAccess(t *testing.T) {
	rt := &recordingTransport{}
	svc := NewService(rt, Context{ServiceURL: "https://api.x", ProjectID: "proj1"})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = svc.GetUserSkillsRanking(ctx, "")
		}()
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				svc.SetUserID("u1")
			} else {
				svc.SetUserID("")
			}
		}(i)
	}
	wg.Wait()

	for _, c := range rt.calls {
		admin := c.url == "https://api.x/admin/projects/proj1/rank?userId=u1"
		public := c.url == "https://api.x/api/projects/proj1/rank?userId="
		if !admin && !public {
			t.Errorf("torn request URL %q", c.url)
		}
	}
}

// TestService_OverHTTP drives the facade through a real apiclient.Client.
func TestService_OverHTTP(t *testing.T) {
	type seen struct {
		method  string
		uri     string
		auth    string
		hasAuth bool
	}
	var mu sync.Mutex
	var requests []seen

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth := r.Header["Authorization"]
		mu.Lock()
		requests = append(requests, seen{r.Method, r.URL.RequestURI(), r.Header.Get("Authorization"), hasAuth})
		mu.Unlock()
		_, _ = w.Write([]byte(`{"skillsLevel":2,"points":120}`))
	}))
	defer server.Close()

	api, err := apiclient.New(apiclient.Options{})
	checkNoError(t, err)
	svc := NewService(api, Context{ServiceURL: server.URL, ProjectID: "proj1"})
	ctx := context.Background()

	svc.SetToken("abc")
	summary, err := svc.GetUserSkills(ctx)
	checkNoError(t, err)
	checkStringEqual(t, "summary", string(summary), `{"skillsLevel":2,"points":120}`)

	svc.SetToken("")
	_, err = svc.GetUserSkills(ctx)
	checkNoError(t, err)

	if len(requests) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(requests))
	}
	checkStringEqual(t, "method", requests[0].method, http.MethodGet)
	checkStringEqual(t, "uri", requests[0].uri, "/api/projects/proj1/summary?userId=")
	checkStringEqual(t, "auth", requests[0].auth, "Bearer abc")
	if requests[1].hasAuth {
		t.Error("Authorization header should be removed after clearing the token")
	}
}

func TestService_OverHTTP_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"explanation":"no such subject"}`, http.StatusNotFound)
	}))
	defer server.Close()

	api, err := apiclient.New(apiclient.Options{})
	checkNoError(t, err)
	svc := NewService(api, Context{ServiceURL: server.URL, ProjectID: "proj1"})

	_, err = svc.GetSubjectSummary(context.Background(), "missing")
	if got := apiclient.StatusCode(err); got != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404 (err = %v)", got, err)
	}
}

func checkNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func checkStringEqual(t *testing.T, name, got, want string) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %q, want %q", name, got, want)
	}
}
