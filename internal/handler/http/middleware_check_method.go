// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler intended for [chi.Mux.MethodNotAllowed].
//
// Every GET path matches the catch-all route, so chi reports 405 for any
// other method on an unknown path. Such requests are answered with a JSON
// 404. Only paths registered verbatim keep the 405 together with an Allow
// header listing their methods.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if allowed := allowedMethods(router, r.URL.Path); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
			writeErrorMessage(w, http.StatusMethodNotAllowed, MsgRouteNotFound)
			return
		}

		writeErrorMessage(w, http.StatusNotFound, MsgRouteNotFound)
	}
}

func allowedMethods(routes chi.Routes, path string) []string {
	var allowed []string
	_ = chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if route == path {
			allowed = append(allowed, method)
		}
		return nil
	})
	return allowed
}
