package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/goliatone/go-formkit/internal/logging"
	"github.com/goliatone/go-formkit/pkg/model"
	"github.com/goliatone/go-formkit/pkg/orchestrator"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	def, err := model.ParseDefinition([]byte(signupDefinition))
	if err != nil {
		t.Fatalf("parse definition: %v", err)
	}
	log, err := logging.New(logging.Options{Level: "debug", Writer: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	server := newFormServer(orchestrator.New(), orchestrator.Request{Definition: &def}, log)
	server.token = func() (string, error) { return "tok", nil }
	return server.routes()
}

func postForm(handler http.Handler, values url.Values, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestServer_RendersFormWithToken(t *testing.T) {
	handler := newTestServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?age=7", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content type = %q", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{`name="_csrf" value="tok"`, `name="email"`, `value="7"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in body:\n%s", want, body)
		}
	}
	if cookie := rec.Header().Get("Set-Cookie"); !strings.Contains(cookie, csrfCookieName+"=tok") {
		t.Fatalf("expected csrf cookie, got %q", cookie)
	}
}

func TestServer_RejectsMissingToken(t *testing.T) {
	handler := newTestServer(t)

	rec := postForm(handler, url.Values{"email": {"ada@example.com"}}, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d", rec.Code)
	}

	rec = postForm(handler, url.Values{"email": {"ada@example.com"}, csrfFieldName: {"other"}}, "tok")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("mismatched token status = %d", rec.Code)
	}
}

func TestServer_InvalidSubmissionRerenders(t *testing.T) {
	handler := newTestServer(t)

	rec := postForm(handler, url.Values{"email": {""}, csrfFieldName: {"tok"}}, "tok")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{submitError, "*Required", `name="_csrf" value="tok"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in body:\n%s", want, body)
		}
	}
}

func TestServer_AcceptsValidSubmission(t *testing.T) {
	handler := newTestServer(t)

	rec := postForm(handler, url.Values{"email": {"ada@example.com"}, "age": {"41"}, csrfFieldName: {"tok"}}, "tok")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
	if got := rec.Body.String(); got != `{"values":{"age":41,"email":"ada@example.com"}}` {
		t.Fatalf("unexpected body %s", got)
	}
}

func TestServer_AssetsAndRouting(t *testing.T) {
	handler := newTestServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/formkit.css", nil))
	if rec.Code != http.StatusOK || rec.Body.Len() == 0 {
		t.Fatalf("stylesheet status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown path status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/", nil))
	if rec.Code != http.StatusMethodNotAllowed || rec.Header().Get("Allow") == "" {
		t.Fatalf("delete status = %d", rec.Code)
	}
}
