package main

import (
	"log"
	"net/http"
	"os"

	"github.com/docuvault/authgate-go/internal/audit"
	"github.com/docuvault/authgate-go/internal/authz"
	"github.com/docuvault/authgate-go/internal/di"
	"github.com/docuvault/authgate-go/internal/server"
	"github.com/docuvault/authgate-go/internal/store"
)

func main() {
	flags := di.ProvideFlags()
	mem := store.NewSeededStore()

	h := server.BuildRouter(server.Deps{
		Docs:     mem,
		Users:    mem.Users(),
		Authz:    di.ProvideAuthorizer(flags),
		Filter:   authz.NewProfileFilter(flags),
		Identity: di.ProvideResolver(mem.Users()),
		Audit:    audit.NewLog(1024),
	}, server.Options{EnableCORS: true})

	addr := os.Getenv("AUTHGATE_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Print("listening on " + addr)
	log.Fatal(http.ListenAndServe(addr, h))
}
