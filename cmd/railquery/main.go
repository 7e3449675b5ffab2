package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"
	// The service zone must load on hosts without zoneinfo.
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"github.com/theoremus-urban-solutions/rail-ticket-query/config"
	"github.com/theoremus-urban-solutions/rail-ticket-query/internal"
	"github.com/theoremus-urban-solutions/rail-ticket-query/kyfw"
	"github.com/theoremus-urban-solutions/rail-ticket-query/server"
	"github.com/theoremus-urban-solutions/rail-ticket-query/service"
)

func main() {
	mode := flag.String("mode", "oneshot", "oneshot|serve")
	configPath := flag.String("config", "", "config file (default: config.yml, ./config/config.yml)")
	toolName := flag.String("tool", "get-current-date", "tool to call in oneshot mode")
	args := flag.String("args", "", "tool arguments: inline JSON, @file or - for stdin")
	listTools := flag.Bool("list", false, "list tools and exit")
	flag.Parse()

	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	internal.InitLogging()
	var paths []string
	if *configPath != "" {
		paths = []string{*configPath}
	}
	if err := config.LoadAppConfig(paths...); err != nil {
		log.Fatalf("config: %v", err)
	}
	if config.LoadedFrom != "" {
		log.Printf("config loaded from %s", config.LoadedFrom)
	}
	cfg := config.Config

	client := kyfw.NewClient(kyfw.Options{
		APIBase:        cfg.Upstream.APIBase,
		SearchAPIBase:  cfg.Upstream.SearchAPIBase,
		WebURL:         cfg.Upstream.WebURL,
		LCQueryInitURL: cfg.Upstream.LCQueryInitURL,
		UserAgent:      cfg.Upstream.UserAgent,
		Timeout:        time.Duration(cfg.Upstream.TimeoutMS) * time.Millisecond,
	})

	ctx := context.Background()
	svc, err := service.Bootstrap(ctx, client, service.Options{
		TimeZone:              cfg.Query.TimeZone,
		MaxPages:              cfg.Query.InterlineMaxPages,
		DefaultInterlineLimit: cfg.Query.DefaultInterlineLimit,
	})
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	registry := server.NewRegistry(svc)

	if *listTools {
		for _, t := range registry.Tools() {
			fmt.Printf("%-28s %s\n", t.Name, t.Description)
		}
		return
	}

	switch *mode {
	case "oneshot":
		raw, err := readArgs(*args)
		if err != nil {
			log.Fatalf("args: %v", err)
		}
		out, err := registry.Call(ctx, *toolName, raw)
		if err != nil {
			log.Fatalf("%s: %v", *toolName, err)
		}
		fmt.Println(out)
	case "serve":
		srv := server.New(registry, cfg.Server.Port)
		srv.Start()
		srv.HandleGracefulShutdown()
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		os.Exit(2)
	}
}
