package main

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"github.com/goliatone/go-formkit/internal/logging"
	"github.com/goliatone/go-formkit/pkg/model"
	"github.com/goliatone/go-formkit/pkg/orchestrator"
	"github.com/goliatone/go-formkit/pkg/render"
	"github.com/goliatone/go-formkit/pkg/renderers/vanilla"
)

const (
	csrfFieldName  = "_csrf"
	csrfCookieName = "formkit_csrf"
	submitError    = "Please correct the highlighted fields."
)

type formServer struct {
	orch  *orchestrator.Orchestrator
	base  orchestrator.Request
	log   *logging.Logger
	token func() (string, error)
}

func newFormServer(orch *orchestrator.Orchestrator, base orchestrator.Request, log *logging.Logger) *formServer {
	return &formServer{orch: orch, base: base, log: log, token: randomToken}
}

func (s *formServer) routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.FS(vanilla.AssetsFS()))))
	mux.HandleFunc("/", s.handleForm)
	return s.logRequests(mux)
}

func (s *formServer) handleForm(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		s.renderForm(w, r)
	case http.MethodPost:
		s.submitForm(w, r)
	default:
		w.Header().Set("Allow", "GET, HEAD, POST")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (s *formServer) renderForm(w http.ResponseWriter, r *http.Request) {
	token, err := s.token()
	if err != nil {
		s.fail(w, err, "issue csrf token")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     csrfCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	req := s.base
	req.Values = mergeQuery(s.base, r)
	req.RenderOptions.Hidden = render.MergeHiddenFields(s.base.RenderOptions.Hidden, render.CSRFToken(csrfFieldName, token))

	result, err := s.orch.Execute(r.Context(), req)
	if err != nil {
		s.fail(w, err, "render form")
		return
	}
	s.write(w, http.StatusOK, result.ContentType, result.Output)
}

func (s *formServer) submitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return
	}
	cookie, err := r.Cookie(csrfCookieName)
	posted := r.PostForm.Get(csrfFieldName)
	if err != nil || posted == "" || subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(posted)) != 1 {
		s.log.WithFields(map[string]any{"remote": r.RemoteAddr}).Warn("csrf token mismatch")
		http.Error(w, "invalid csrf token", http.StatusForbidden)
		return
	}

	req := s.base
	req.Values = r.PostForm
	req.Submit = true
	req.SubmitError = submitError
	req.RenderOptions.Hidden = render.MergeHiddenFields(s.base.RenderOptions.Hidden, render.CSRFToken(csrfFieldName, posted))

	result, err := s.orch.Execute(r.Context(), req)
	if err != nil {
		s.fail(w, err, "submit form")
		return
	}
	if !result.Valid {
		s.write(w, http.StatusUnprocessableEntity, result.ContentType, result.Output)
		return
	}

	payload, err := json.Marshal(submission{Values: result.Values})
	if err != nil {
		s.fail(w, err, "encode submission")
		return
	}
	s.log.WithFields(map[string]any{"fields": len(result.Values)}).Info("form accepted")
	s.write(w, http.StatusOK, "application/json", payload)
}

type submission struct {
	Values map[string]model.Value `json:"values"`
}

// mergeQuery lets a GET prefill fields from its query string on top of the
// configured values.
func mergeQuery(base orchestrator.Request, r *http.Request) map[string][]string {
	query := r.URL.Query()
	if len(query) == 0 {
		return base.Values
	}
	merged := make(map[string][]string, len(base.Values)+len(query))
	for key, value := range base.Values {
		merged[key] = value
	}
	for key, value := range query {
		merged[key] = value
	}
	return merged
}

func (s *formServer) write(w http.ResponseWriter, status int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		s.log.Error(err, "write response")
	}
}

func (s *formServer) fail(w http.ResponseWriter, err error, msg string) {
	s.log.Error(err, msg)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *formServer) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.WithFields(map[string]any{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start).String(),
		}).Debug("request")
	})
}

func randomToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
