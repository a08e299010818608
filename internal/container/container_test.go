package container

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/saulo-duarte/ignite-guild/internal/config"
	"github.com/saulo-duarte/ignite-guild/internal/dom"
	"github.com/saulo-duarte/ignite-guild/internal/reminder"
	"github.com/saulo-duarte/ignite-guild/internal/visitor"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Storage = config.StorageConfig{Driver: config.StorageFile, Path: filepath.Join(t.TempDir(), "kv.json")}
	cfg.VisitorSecret = "0123456789abcdef0123456789abcdef"
	cfg.CSRFKey = "0123456789abcdef0123456789abcdef"
	return cfg
}

type site struct {
	t      *testing.T
	server *httptest.Server
	client *http.Client
}

func newSite(t *testing.T, cfg *config.Config) *site {
	t.Helper()
	c, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	c.Start()
	srv := httptest.NewServer(c.Handler())
	t.Cleanup(func() {
		srv.Close()
		c.Close(context.Background())
	})

	jar, _ := cookiejar.New(nil)
	return &site{t: t, server: srv, client: &http.Client{Jar: jar}}
}

func (s *site) get(path string) (*http.Response, *html.Node) {
	s.t.Helper()
	resp, err := s.client.Get(s.server.URL + path)
	if err != nil {
		s.t.Fatal(err)
	}
	defer resp.Body.Close()
	doc, err := html.Parse(resp.Body)
	if err != nil {
		s.t.Fatal(err)
	}
	return resp, doc
}

func (s *site) post(path string, form url.Values) *http.Response {
	s.t.Helper()
	resp, err := s.client.PostForm(s.server.URL+path, form)
	if err != nil {
		s.t.Fatal(err)
	}
	resp.Body.Close()
	return resp
}

func csrfToken(doc *html.Node) string {
	input := dom.Find(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && dom.Attr(n, "name") == reminder.CSRFField
	})
	if input == nil {
		return ""
	}
	return dom.Attr(input, "value")
}

func TestPages(t *testing.T) {
	s := newSite(t, testConfig(t))

	cases := []struct {
		path   string
		status int
		check  func(*html.Node) bool
	}{
		{"/", http.StatusOK, func(doc *html.Node) bool { return dom.Attr(dom.ByTag(doc, "body"), "id") == "home" }},
		{"/events", http.StatusOK, func(doc *html.Node) bool { return len(dom.AllByClass(doc, "event-card")) == 6 }},
		{"/calendar?month=2025-09", http.StatusOK, func(doc *html.Node) bool {
			return dom.TextContent(dom.ByID(doc, "calendar-month-year")) == "September 2025"
		}},
		{"/directory?q=council", http.StatusOK, func(doc *html.Node) bool { return len(dom.AllByClass(doc, "member-card")) == 3 }},
		{"/council", http.StatusOK, func(doc *html.Node) bool { return len(dom.AllByClass(doc, "council-card")) == 5 }},
		{"/reminders", http.StatusOK, func(doc *html.Node) bool { return len(dom.AllByClass(doc, "reminder-item")) == 5 }},
		{"/treasure", http.StatusNotFound, func(doc *html.Node) bool { return dom.ByClass(doc, "event-list") == nil }},
	}
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			resp, doc := s.get(c.path)
			if resp.StatusCode != c.status {
				t.Fatalf("status = %d, want %d", resp.StatusCode, c.status)
			}
			if !c.check(doc) {
				t.Errorf("unexpected page for %s", c.path)
			}
		})
	}
}

func TestReminderFlow(t *testing.T) {
	s := newSite(t, testConfig(t))

	_, doc := s.get("/reminders")
	token := csrfToken(doc)
	if token == "" {
		t.Fatal("reminders page has no CSRF token")
	}

	resp := s.post("/reminders/1/toggle", url.Values{reminder.CSRFField: {token}})
	if resp.StatusCode != http.StatusOK || resp.Request.URL.Path != "/reminders" {
		t.Fatalf("toggle ended at %s with %d", resp.Request.URL.Path, resp.StatusCode)
	}

	_, doc = s.get("/reminders")
	items := dom.AllByClass(doc, "reminder-item")
	if len(items) != 5 || !dom.HasClass(items[1], "completed") || dom.HasClass(items[0], "completed") {
		t.Fatal("task 1 should be the only completed task")
	}

	t.Run("OtherBrowserIsSeparate", func(t *testing.T) {
		other := &site{t: t, server: s.server, client: &http.Client{}}
		jar, _ := cookiejar.New(nil)
		other.client.Jar = jar
		_, doc := other.get("/reminders")
		if len(dom.AllByClass(doc, "completed")) != 0 {
			t.Error("a new visitor should start with an empty checklist")
		}
	})

	t.Run("API", func(t *testing.T) {
		resp, err := s.client.Get(s.server.URL + "/api/reminders")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		var body struct {
			Completed []int `json:"completed"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatal(err)
		}
		if len(body.Completed) != 1 || body.Completed[0] != 1 {
			t.Errorf("completed = %v", body.Completed)
		}
	})

	t.Run("MissingToken", func(t *testing.T) {
		if resp := s.post("/reminders/clear", nil); resp.StatusCode != http.StatusForbidden {
			t.Errorf("status = %d", resp.StatusCode)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		s.post("/reminders/clear", url.Values{reminder.CSRFField: {token}})
		_, doc := s.get("/reminders")
		if len(dom.AllByClass(doc, "completed")) != 0 {
			t.Error("clear should empty the checklist")
		}
	})
}

func TestVisitorCookie(t *testing.T) {
	s := newSite(t, testConfig(t))
	s.get("/")

	u, _ := url.Parse(s.server.URL)
	var found bool
	for _, c := range s.client.Jar.Cookies(u) {
		if c.Name == visitor.CookieName {
			found = true
		}
	}
	if !found {
		t.Error("visitor cookie was not issued")
	}
}

func TestEndpoints(t *testing.T) {
	s := newSite(t, testConfig(t))

	cases := []struct {
		path        string
		contentType string
		contains    string
	}{
		{"/health", "application/json", `"status":"ok"`},
		{"/api/events", "application/json", `"date":"2025-09-03"`},
		{"/api/calendar?month=2025-09", "application/json", `"label":"September 2025"`},
		{"/api/members?q=blaz", "application/json", `"username":"blazie"`},
		{"/events.ics", "text/calendar", "BEGIN:VCALENDAR"},
		{"/static/style.css", "text/css", ".event-card"},
	}
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			resp, err := s.client.Get(s.server.URL + c.path)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			buf := new(strings.Builder)
			if _, err := io.Copy(buf, resp.Body); err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d", resp.StatusCode)
			}
			if !strings.Contains(resp.Header.Get("Content-Type"), c.contentType) {
				t.Errorf("content type = %s", resp.Header.Get("Content-Type"))
			}
			if !strings.Contains(buf.String(), c.contains) {
				t.Errorf("body missing %s", c.contains)
			}
		})
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	t.Run("Timezone", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Timezone = "Mars/Olympus_Mons"
		if _, err := New(cfg); err == nil {
			t.Error("expected an error for an unknown timezone")
		}
	})

	t.Run("Schedule", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.ReminderResetCron = "whenever"
		if _, err := New(cfg); err == nil {
			t.Error("expected an error for an invalid schedule")
		}
	})

	t.Run("DataFile", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.DataFile = filepath.Join(t.TempDir(), "missing.yaml")
		if _, err := New(cfg); err == nil {
			t.Error("expected an error for a missing data file")
		}
	})
}
