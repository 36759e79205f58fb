package httpx

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/target/bookshelf-web/internal/domain/theme"
)

// Headers exchanged with the page shell's htmx runtime.
const (
	hxRequest        = "Hx-Request"
	hxHistoryRestore = "Hx-History-Restore-Request"
	hxCurrentURL     = "Hx-Current-Url"
	hxRedirect       = "Hx-Redirect"
	hxTrigger        = "Hx-Trigger"
)

// themeChangedEvent is the client event the shell listens for to swap the
// theme class on <html>.
const themeChangedEvent = "themeChanged"

// IsHTMX reports whether the page shell issued the request.
func IsHTMX(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get(hxRequest), "true")
}

// WantsPartial reports whether only the page body should be rendered. A
// history restore replaces the whole document, so it gets the full shell.
func WantsPartial(r *http.Request) bool {
	return IsHTMX(r) && !strings.EqualFold(r.Header.Get(hxHistoryRestore), "true")
}

// originURL is the page the navigation started from: the shell's current
// URL for htmx requests, the Referer otherwise.
func originURL(r *http.Request) string {
	if IsHTMX(r) {
		if cur := r.Header.Get(hxCurrentURL); cur != "" {
			return cur
		}
	}
	return r.Header.Get("Referer")
}

// SetHXRedirect makes the shell load url as a full navigation.
func SetHXRedirect(w http.ResponseWriter, url string) { w.Header().Set(hxRedirect, url) }

// navigate sends the browser to dest. htmx requests get a 200 with
// Hx-Redirect since htmx does not follow 3xx into a page load.
func navigate(w http.ResponseWriter, r *http.Request, dest string) {
	if IsHTMX(r) {
		SetHXRedirect(w, dest)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

// SetHXTrigger sets Hx-Trigger to {"<event>": payload}, or true when payload
// is nil or cannot be encoded.
func SetHXTrigger(w http.ResponseWriter, event string, payload any) {
	var value any = true
	if payload != nil {
		value = payload
	}
	b, err := json.Marshal(map[string]any{event: value})
	if err != nil {
		b, _ = json.Marshal(map[string]bool{event: true})
	}
	w.Header().Set(hxTrigger, string(b))
}

// triggerThemeChanged tells the shell to re-apply t.
func triggerThemeChanged(w http.ResponseWriter, t theme.Theme) {
	SetHXTrigger(w, themeChangedEvent, map[string]string{"theme": string(t)})
}
