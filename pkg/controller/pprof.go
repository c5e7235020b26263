package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPrefix is the path PprofMux serves under. pprof.Index resolves named
// profiles relative to it, so the mux must be mounted without stripping it.
const PprofPrefix = "/debug/pprof/"

// PprofMux returns an http.ServeMux with net/http/pprof handlers registered
// under PprofPrefix.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc(PprofPrefix, pprof.Index)
	mux.HandleFunc(PprofPrefix+"cmdline", pprof.Cmdline)
	mux.HandleFunc(PprofPrefix+"profile", pprof.Profile)
	mux.HandleFunc(PprofPrefix+"symbol", pprof.Symbol)
	mux.HandleFunc(PprofPrefix+"trace", pprof.Trace)

	return mux
}
