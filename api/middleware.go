package api

import (
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/descope/go-sdk/descope/client"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// authMiddleware delegates session validation to Descope. The backend never
// inspects credentials itself; it only requires that mutating endpoints run
// in an already-authenticated context.
type authMiddleware struct {
	descope   *client.DescopeClient
	responder Responder
	logger    zerolog.Logger
}

func newAuthMiddleware(projectID string) authMiddleware {
	logger := log.With().Str("handlerName", "authMiddleware").Logger()
	m := authMiddleware{
		responder: NewResponder(logger),
		logger:    logger,
	}

	if projectID == "" {
		logger.Warn().Msg("DESCOPE_PROJECT_ID is not set; authenticated endpoints will reject all requests")
		return m
	}

	descopeClient, err := client.NewWithConfig(&client.Config{ProjectID: projectID})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize Descope client; authenticated endpoints will reject all requests")
		return m
	}
	m.descope = descopeClient
	return m
}

func (m authMiddleware) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Fail closed when the identity provider is unavailable.
		if m.descope == nil {
			m.responder.WriteError(w, errs.NewUnauthorizedError("authentication is not configured"))
			return
		}

		ok, token, err := m.descope.Auth.ValidateSessionWithRequest(r)
		if err != nil || !ok {
			m.responder.WriteError(w, errs.NewUnauthorizedError("invalid or missing session"))
			return
		}

		next.ServeHTTP(w, r.WithContext(ctxWithUserID(r.Context(), token.ID)))
	})
}

type statusResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

// RecoverPanics converts handler panics into logged 500 responses.
func RecoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Interface("panic", err).
					Str("stack", string(debug.Stack())).
					Msg("Recovered from panic")

				if !srw.wroteHeader {
					srw.WriteHeader(http.StatusInternalServerError)
				}
			}
		}()

		next.ServeHTTP(srw, r)
	})
}

// RequestLoggingMiddleware logs every request with a level keyed to the
// response status.
func RequestLoggingMiddleware(next http.Handler) http.Handler {
	colorLogger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		next.ServeHTTP(srw, r)

		var logEvent *zerolog.Event
		switch {
		case srw.status >= 500:
			logEvent = colorLogger.Error()
		case srw.status >= 400:
			logEvent = colorLogger.Warn()
		default:
			logEvent = colorLogger.Info()
		}

		logEvent.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", srw.status).
			Dur("duration", time.Since(start)).
			Str("remote_addr", r.RemoteAddr).
			Msg("HTTP Request")
	})
}
