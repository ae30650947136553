package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/saad-pie/steveai/internal/chat"
	"github.com/saad-pie/steveai/internal/command"
	"github.com/saad-pie/steveai/internal/config"
	"github.com/saad-pie/steveai/internal/image"
	"github.com/saad-pie/steveai/internal/providers"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	modeFlag := flag.String("mode", "", "initial conversation mode (see /help)")
	timeoutFlag := flag.Duration("timeout", 0, "per-request timeout (default 60s)")
	typewriterFlag := flag.Bool("typewriter", false, "replay bot answers line by line")
	saveFlag := flag.Bool("save-config", false, "persist provider, keys, mode and typewriter to the config file")
	flag.Parse()

	if err := run(*modeFlag, *timeoutFlag, *typewriterFlag, *saveFlag); err != nil {
		log.Fatalf("steveai failed: %v", err)
	}
}

func run(mode string, timeout time.Duration, typewriter, saveConfig bool) error {
	mgr, cfg := loadConfig()
	if mode == "" {
		mode = cfg.Mode
	}
	typewriter = typewriter || cfg.Typewriter

	if saveConfig {
		if err := persistConfig(mgr, cfg, mode, typewriter); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
	}

	transport, err := providers.NewTransportFromEnv()
	if err != nil {
		return fmt.Errorf("configuring LLM provider: %w", err)
	}

	keys := providers.SplitKeys(os.Getenv("STEVEAI_API_KEYS"))
	imageKey := ""
	if len(keys) > 0 {
		imageKey = keys[0]
	}
	baseURL := os.Getenv("STEVEAI_BASE_URL")
	if baseURL == "" {
		baseURL = providers.DefaultBaseURL
	}
	images := image.NewClient(imageKey, baseURL)

	console := NewConsole(typewriter)
	orch := chat.New(transport, console, nil, chat.Options{Mode: mode, Timeout: timeout})
	dispatcher := command.NewDispatcher(console, orch, images, cfg.ExportDir)
	orch.SetImages(dispatcher)

	fmt.Printf("SteveAI ready (mode: %s, session: %s). Type /help for commands, Ctrl-D to quit.\n",
		orch.Mode(), orch.ID())

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		console.Prompt()
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		if command.IsCommand(line) {
			dispatcher.Handle(ctx, line)
			continue
		}
		orch.Reply(ctx, line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	fmt.Println("\nBye 👋")
	return nil
}

// loadConfig reads the persistent config and exports its credentials into
// the environment. A broken config file is logged and ignored; the
// environment alone can still carry everything needed.
func loadConfig() (*config.Manager, *config.Config) {
	mgr, err := config.NewManager()
	if err != nil {
		log.Printf("config unavailable: %v", err)
		return nil, &config.Config{}
	}
	cfg, err := mgr.Load()
	if err != nil {
		log.Printf("ignoring config at %s: %v", mgr.GetConfigPath(), err)
		return mgr, &config.Config{}
	}
	mgr.ApplyEnv(cfg)
	return mgr, cfg
}

// persistConfig writes the effective settings back to the config file, so
// a one-time `-save-config` run with env credentials makes them stick.
func persistConfig(mgr *config.Manager, cfg *config.Config, mode string, typewriter bool) error {
	if mgr == nil {
		return fmt.Errorf("no config directory available")
	}

	if p := os.Getenv("LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if keys := providers.SplitKeys(os.Getenv("STEVEAI_API_KEYS")); len(keys) > 0 {
		cfg.APIKeys = keys
	}
	if u := os.Getenv("STEVEAI_BASE_URL"); u != "" {
		cfg.BaseURL = u
	}
	cfg.Mode = mode
	cfg.Typewriter = typewriter

	created := !mgr.Exists()
	if err := mgr.Save(cfg); err != nil {
		return err
	}
	if created {
		fmt.Println("Created config at " + mgr.GetConfigPath())
	} else {
		fmt.Println("Updated config at " + mgr.GetConfigPath())
	}
	return nil
}
