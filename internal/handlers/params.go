package handlers

import "net/http"

// getParam reads a path parameter whether the router exposes it as a
// colon-prefixed query value (pat does) or through the net/http
// PathValue API.
func getParam(r *http.Request, name string) string {
	if r == nil {
		return ""
	}
	if v := r.URL.Query().Get(":" + name); v != "" {
		return v
	}
	if v := r.URL.Query().Get(name); v != "" {
		return v
	}
	return r.PathValue(name)
}
