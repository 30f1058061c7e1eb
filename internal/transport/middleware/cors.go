package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/visaletter-backend/internal/config"
)

// exposedHeaders are readable by browser clients on every response.
const exposedHeaders = RequestIDHeader + ",Retry-After"

// CORS answers preflight requests itself and decorates the rest with the
// allow-origin headers. Origins are matched exactly; "*" admits any origin
// and echoes it back.
func CORS(cfg config.CORSConfig) Middleware {
	allowAny, origins := parseOrigins(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			if origin != "" {
				if _, ok := origins[origin]; ok || allowAny {
					h.Set("Access-Control-Allow-Origin", origin)
					h.Set("Access-Control-Expose-Headers", exposedHeaders)
					if cfg.AllowCredentials {
						h.Set("Access-Control-Allow-Credentials", "true")
					}
				}
			}

			if r.Method != http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
			h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
			h.Set("Access-Control-Max-Age", maxAge)
			w.WriteHeader(http.StatusNoContent)
		})
	}
}

func parseOrigins(raw string) (bool, map[string]struct{}) {
	set := make(map[string]struct{})
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			return true, nil
		default:
			set[o] = struct{}{}
		}
	}
	return false, set
}
