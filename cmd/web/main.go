package main

import (
	_ "embed"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/tomz197/gallery/internal/config"
)

//go:embed index.html
var htmlPage string

func main() {
	cfg := config.Load()
	logger := config.NewLogger(os.Stderr, cfg)

	page := strings.ReplaceAll(htmlPage, "{{.SSHHost}}", cfg.SSHDisplayHost)
	page = strings.ReplaceAll(page, "{{.SSHPort}}", cfg.SSHPort)
	page = strings.ReplaceAll(page, "{{.RoundDuration}}", fmt.Sprintf("%g", cfg.RoundDuration))

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})

	addr := fmt.Sprintf("%s:%s", cfg.WebHost, cfg.WebPort)
	logger.Info("starting web server", "url", "http://"+addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
