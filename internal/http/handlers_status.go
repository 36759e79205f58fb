package httpx

import (
	"net/http"
	"strconv"

	"github.com/target/bookshelf-web/internal/domain/status"
)

type statusReply struct {
	Domain status.Domain `json:"domain"`
	Code   int           `json:"code"`
	Label  string        `json:"label"`
	Type   string        `json:"type"`
}

// statusEntries lists a registry.
// GET /api/status/{domain}.
func statusEntries(w http.ResponseWriter, r *http.Request) {
	d, err := status.ParseDomain(r.PathValue("domain"))
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "unknown_domain", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, status.Entries(d))
}

// describeStatus resolves one code; unregistered codes yield the fallback.
// GET /api/status/{domain}/{code}.
func describeStatus(w http.ResponseWriter, r *http.Request) {
	d, err := status.ParseDomain(r.PathValue("domain"))
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "unknown_domain", Err: err})
		return
	}
	code, err := strconv.Atoi(r.PathValue("code"))
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_code", Err: err})
		return
	}
	desc := status.Describe(d, code)
	WriteJSON(w, http.StatusOK, statusReply{Domain: d, Code: code, Label: desc.Label, Type: desc.Severity.Tag()})
}
