// Command floatinspectd serves the same float/hex inspection report as
// floatinspect over HTTP, as JSON — the server-side half of what the
// original project's browser front-end called into directly; the
// event wiring itself is a browser concern this module doesn't take on.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"

	"github.com/zerfoo/softfloat/internal/inspect"
)

type response struct {
	Input  string `json:"input"`
	Report string `json:"report,omitempty"`
	Error  string `json:"error,omitempty"`
}

func inspectHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(response{Error: "missing query parameter q"})
		return
	}

	report, err := inspect.Report(q)
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(response{Input: q, Error: err.Error()})
		return
	}
	json.NewEncoder(w).Encode(response{Input: q, Report: report})
}

func main() {
	addr := flag.String("addr", ":8080", "address to listen on")
	flag.Parse()

	http.HandleFunc("/inspect", inspectHandler)
	log.Printf("floatinspectd listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}
