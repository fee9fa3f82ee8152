package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/homocury/rusti/config"
	"github.com/homocury/rusti/executor"
	"github.com/homocury/rusti/loader"
	"github.com/homocury/rusti/repl"
	"github.com/homocury/rusti/session"
)

func main() {
	// .envは開発時の利便のためで、無くても構わない
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("RUSTI_CONFIG"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	backend := executor.NewRustcBackend(cfg.CompilerPath)
	evaluator := executor.NewExecutor(backend, cfg.JITEnabled())
	crateLoader := loader.NewLoader(backend)

	interactive := isatty.IsTerminal(os.Stdin.Fd())
	if interactive {
		repl.PrintBanner()
	}

	s := session.New(cfg.Prompt, os.Args[0])
	s.LibSearchPaths = append(s.LibSearchPaths, cfg.LibSearchPaths...)

	r := repl.NewRepl(evaluator, crateLoader, interactive)
	r.Run(s)
}
