package htmx

import (
	"encoding/json"
	"net/http"
)

// LocationOptions is the JSON payload of the HX-Location header.
type LocationOptions struct {
	Path    string            `json:"path"`
	Target  string            `json:"target,omitempty"`
	Swap    string            `json:"swap,omitempty"`
	Select  string            `json:"select,omitempty"`
	Source  string            `json:"source,omitempty"`
	Event   string            `json:"event,omitempty"`
	Handler string            `json:"handler,omitempty"`
	Values  map[string]string `json:"values,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
}

// Location navigates client-side with a history entry for HTMX requests,
// falls back to a 302 for plain ones.
func Location(w http.ResponseWriter, r *http.Request, path string) {
	if !IsHTMX(r) {
		http.Redirect(w, r, path, http.StatusFound)
		return
	}
	setLocation(w, path)
}

// LocationTarget navigates client-side and swaps the response into target.
func LocationTarget(w http.ResponseWriter, r *http.Request, path, target string) {
	LocationWithOptions(w, r, LocationOptions{Path: path, Target: target})
}

// LocationWithOptions navigates client-side with the full option payload.
func LocationWithOptions(w http.ResponseWriter, r *http.Request, opts LocationOptions) {
	if !IsHTMX(r) {
		http.Redirect(w, r, opts.Path, http.StatusFound)
		return
	}

	payload, err := json.Marshal(opts)
	if err != nil {
		// Unmarshalable values degrade to a bare path navigation.
		setLocation(w, opts.Path)
		return
	}
	setLocation(w, string(payload))
}

func setLocation(w http.ResponseWriter, value string) {
	w.Header().Set(HeaderHXLocation, value)
	w.WriteHeader(http.StatusOK)
}
