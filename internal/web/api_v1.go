package web

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/rook-computer/wallclock/internal/config"
	"github.com/rook-computer/wallclock/internal/i18n"
)

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

type shareResponse struct {
	URL   string `json:"url"`
	Query string `json:"query"`
}

const maxPatchBody = 4 << 10 // a config patch is a handful of scalars

func apiV1Router(deps APIV1Deps) http.Handler {
	deps = deps.withDefaults()
	mux := http.NewServeMux()
	mux.HandleFunc("/config", func(w http.ResponseWriter, r *http.Request) { handleConfig(w, r, deps) })
	mux.HandleFunc("/reset", func(w http.ResponseWriter, r *http.Request) { handleReset(w, r, deps) })
	mux.HandleFunc("/share", func(w http.ResponseWriter, r *http.Request) { handleShare(w, r, deps) })
	mux.HandleFunc("/labels", handleLabels)
	mux.HandleFunc("/share/apply", func(w http.ResponseWriter, r *http.Request) { handleShareApply(w, r, deps) })
	mux.HandleFunc("/preview.png", func(w http.ResponseWriter, r *http.Request) { handlePreview(w, r, deps) })
	return mux
}

func handleConfig(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, deps.Config.Snapshot())
	case http.MethodPatch:
		body, err := io.ReadAll(io.LimitReader(r.Body, maxPatchBody))
		if err != nil {
			writeAPIError(w, http.StatusBadRequest, "bad_body", "could not read request body")
			return
		}
		var patch config.Patch
		if err := json.Unmarshal(body, &patch); err != nil {
			writeAPIError(w, http.StatusBadRequest, "bad_json", "body must be a partial configuration object")
			return
		}
		// Out-of-domain field values are dropped, not rejected: the rest
		// of the patch still applies, same as any other decode boundary.
		writeJSON(w, http.StatusOK, deps.Config.Update(patch.Sanitize()))
	default:
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	}
}

func handleReset(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if r.Method != http.MethodPost {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, deps.Config.Reset())
}

func handleShare(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, shareResponse{
		URL:   deps.Config.ShareURL(),
		Query: config.Serialize(deps.Config.Snapshot()),
	})
}

// handleLabels serves the settings-UI dictionaries, so the page and the
// device present the same translations.
func handleLabels(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, i18n.Dictionaries())
}

// handleShareApply spools a share query for the next boot. The body (or
// the q parameter) is the raw query string from a share link.
func handleShareApply(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if r.Method != http.MethodPost {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	query := r.URL.Query().Get("q")
	if query == "" {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxPatchBody))
		if err != nil {
			writeAPIError(w, http.StatusBadRequest, "bad_body", "could not read request body")
			return
		}
		query = strings.TrimSpace(string(body))
	}
	query = strings.TrimPrefix(query, "?")
	if query == "" {
		writeAPIError(w, http.StatusBadRequest, "empty_query", "no share query provided")
		return
	}
	if !deps.SpoolShare(query) {
		writeAPIError(w, http.StatusInsufficientStorage, "spool_failed", "could not store the share link")
		return
	}
	writeJSON(w, http.StatusAccepted, okResponse{OK: true})
}

func handlePreview(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	raw, err := deps.PreviewPNG()
	if err != nil {
		writeAPIError(w, http.StatusServiceUnavailable, "no_preview", err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
