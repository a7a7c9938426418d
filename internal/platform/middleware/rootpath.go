package middleware

import (
	"net/http"
	"net/url"
	"strings"
)

// RootPath removes root from the front of the request path when present.
//
// The service sits behind a reverse proxy that addresses it as
// /p/<host>/<port>. Depending on the proxy configuration the prefix is
// either stripped before forwarding or passed through; both forms must
// reach the same route. Unlike http.StripPrefix, requests without the
// prefix are served unchanged.
func RootPath(root string) func(http.Handler) http.Handler {
	root = strings.TrimRight(root, "/")
	return func(next http.Handler) http.Handler {
		if root == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := trimRoot(r.URL.Path, root)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			r2 := new(http.Request)
			*r2 = *r
			r2.URL = new(url.URL)
			*r2.URL = *r.URL
			r2.URL.Path = p
			if r.URL.RawPath != "" {
				if rp, ok := trimRoot(r.URL.RawPath, root); ok {
					r2.URL.RawPath = rp
				} else {
					r2.URL.RawPath = ""
				}
			}
			next.ServeHTTP(w, r2)
		})
	}
}

// trimRoot strips root only on a segment boundary: /p/a/80x is not under /p/a/80.
func trimRoot(path, root string) (string, bool) {
	rest, ok := strings.CutPrefix(path, root)
	if !ok {
		return path, false
	}
	switch {
	case rest == "":
		return "/", true
	case rest[0] == '/':
		return rest, true
	default:
		return path, false
	}
}
