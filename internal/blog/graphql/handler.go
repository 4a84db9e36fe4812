package graphql

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/quill/internal/blog/service"
	"github.com/aussiebroadwan/quill/pkg/httpx"
	"github.com/aussiebroadwan/quill/pkg/slogx"
	graphql "github.com/graph-gophers/graphql-go"
	gqlerrors "github.com/graph-gophers/graphql-go/errors"
)

// MaxRequestBytes bounds the size of a POSTed GraphQL request.
const MaxRequestBytes = 1 << 20

type request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// Error is one entry of the response "errors" array. Status and Data are
// only present for failures raised by the blog itself; parse and validation
// errors of the query document carry just a message and locations.
type Error struct {
	Message   string               `json:"message"`
	Status    int                  `json:"status,omitempty"`
	Data      any                  `json:"data,omitempty"`
	Locations []gqlerrors.Location `json:"locations,omitempty"`
	Path      []any                `json:"path,omitempty"`
}

// Response is the GraphQL response envelope.
type Response struct {
	Data   json.RawMessage `json:"data,omitempty"`
	Errors []Error         `json:"errors,omitempty"`
}

// Handler serves the schema over HTTP (GET with query parameters, POST with a
// JSON body).
type Handler struct {
	Schema *graphql.Schema
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	req, err := decodeRequest(w, r)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	res := h.Schema.Exec(ctx, req.Query, req.OperationName, req.Variables)

	out := Response{Data: res.Data, Errors: make([]Error, 0, len(res.Errors))}
	for _, qe := range res.Errors {
		e := FormatError(qe)
		if e.Status >= http.StatusInternalServerError {
			log.Error("graphql resolver failed", slog.Any("path", qe.Path), slog.String("error", qe.Error()))
		}
		out.Errors = append(out.Errors, e)
	}

	status := http.StatusOK
	if len(res.Data) == 0 && len(res.Errors) > 0 {
		// The document never executed (syntax or validation error).
		status = http.StatusBadRequest
	}

	httpx.WriteJSON(w, status, out)
}

// FormatError renders a query error. Resolver failures (including recovered
// panics, which carry a path but no resolver error) become
// {message, status, data, locations, path}; anything else keeps only the
// framework's message and locations.
func FormatError(qe *gqlerrors.QueryError) Error {
	if qe.ResolverError == nil && len(qe.Path) == 0 {
		msg := qe.Message
		if msg == "" {
			msg = service.DefaultMessage
		}
		return Error{Message: msg, Locations: qe.Locations}
	}

	return Error{
		Message:   service.MessageOf(qe.ResolverError),
		Status:    service.StatusOf(qe.ResolverError),
		Data:      service.DataOf(qe.ResolverError),
		Locations: qe.Locations,
		Path:      qe.Path,
	}
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (request, error) {
	var req request

	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		req.Query = q.Get("query")
		req.OperationName = q.Get("operationName")
		if v := q.Get("variables"); v != "" {
			if err := json.Unmarshal([]byte(v), &req.Variables); err != nil {
				return req, httpx.NewError(http.StatusBadRequest, "Variables are invalid JSON.")
			}
		}

	case http.MethodPost:
		ct := r.Header.Get("Content-Type")
		if ct != "" && !strings.HasPrefix(strings.ToLower(ct), "application/json") {
			return req, httpx.NewError(http.StatusUnsupportedMediaType, "Content-Type must be application/json.")
		}
		body := http.MaxBytesReader(w, r.Body, MaxRequestBytes)
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return req, httpx.NewError(http.StatusRequestEntityTooLarge, "Request body too large.")
			}
			if errors.Is(err, io.EOF) {
				return req, httpx.NewError(http.StatusBadRequest, "Must provide query string.")
			}
			return req, httpx.NewError(http.StatusBadRequest, "POST body is invalid JSON.")
		}

	default:
		return req, httpx.NewError(http.StatusMethodNotAllowed, "GraphQL only supports GET and POST requests.")
	}

	if strings.TrimSpace(req.Query) == "" {
		return req, httpx.NewError(http.StatusBadRequest, "Must provide query string.")
	}
	if r.Method == http.MethodGet && operationType(req.Query, req.OperationName) == "mutation" {
		w.Header().Set("Allow", http.MethodPost)
		return req, httpx.NewError(http.StatusMethodNotAllowed, "Can only perform a mutation operation from a POST request.")
	}
	return req, nil
}
