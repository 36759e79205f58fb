package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/target/bookshelf-web/internal/domain/theme"
	"github.com/target/bookshelf-web/internal/service"
)

// ThemeHandlers reads and writes the color-scheme preference.
type ThemeHandlers struct {
	Svc    *service.ThemeService
	Logger *slog.Logger
}

type themeReply struct {
	Theme theme.Theme `json:"theme"`
	// Class is the root element class when the client does not prefer dark.
	Class string `json:"class"`
}

type themeRequest struct {
	Theme string `json:"theme"`
}

var errNoOwner = errors.New("no preference owner for this request")

// Get returns the stored theme.
// GET /api/theme.
func (h *ThemeHandlers) Get(w http.ResponseWriter, r *http.Request) {
	t := h.Svc.Get(r.Context(), PreferenceOwner(r.Context()))
	WriteJSON(w, http.StatusOK, themeReply{Theme: t, Class: theme.ClassName(t, prefersDark(r))})
}

// Put stores a new theme.
// PUT /api/theme.
func (h *ThemeHandlers) Put(w http.ResponseWriter, r *http.Request) {
	owner := PreferenceOwner(r.Context())
	if owner == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "no_owner", Err: errNoOwner})
		return
	}
	var req themeRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	t, err := h.Svc.Set(r.Context(), owner, req.Theme)
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	triggerThemeChanged(w, t)
	WriteJSON(w, http.StatusOK, themeReply{Theme: t, Class: theme.ClassName(t, prefersDark(r))})
}

const themeKeepAlive = 25 * time.Second

// Events streams theme changes for the caller's owner as server-sent events,
// so other open tabs re-apply a theme set elsewhere.
// GET /api/theme/events.
func (h *ThemeHandlers) Events(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	owner := PreferenceOwner(ctx)
	if owner == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "no_owner", Err: errNoOwner})
		return
	}

	changes, err := h.Svc.Watch(ctx, owner)
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}

	rc := http.NewResponseController(w)
	// The stream outlives the server's write timeout.
	_ = rc.SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	if _, err := fmt.Fprint(w, ": watching\n\n"); err != nil || rc.Flush() != nil {
		return
	}

	dark := prefersDark(r)
	keepAlive := time.NewTicker(themeKeepAlive)
	defer keepAlive.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-keepAlive.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
		case t, ok := <-changes:
			if !ok {
				return
			}
			data, err := json.Marshal(themeReply{Theme: t, Class: theme.ClassName(t, dark)})
			if err != nil {
				return
			}
			if _, err := fmt.Fprintf(w, "event: theme\ndata: %s\n\n", data); err != nil {
				return
			}
		}
		if rc.Flush() != nil {
			return
		}
	}
}

// prefersDark reads the client hint browsers send when asked via Accept-CH.
func prefersDark(r *http.Request) bool {
	return r.Header.Get("Sec-Ch-Prefers-Color-Scheme") == "dark"
}
