package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/sahaj"
	"github.com/aretw0/sahaj/internal/config"
	"github.com/aretw0/sahaj/internal/presentation/tui"
)

// ChatOptions configures the interactive chat command.
type ChatOptions struct {
	ConfigPath string
	SessionID  string
	Fresh      bool
	Debug      bool
	Plain      bool
}

// RunChat starts the interactive filing dialogue on the terminal.
func RunChat(opts ChatOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	logger := createLogger(cfg.Log, opts.Debug)

	assistant, closeStore := buildAssistant(cfg, logger, nil)
	defer func() { _ = closeStore() }()

	ctx := NewSignalContext(context.Background())
	defer ctx.Cancel()

	if opts.Fresh {
		if err := assistant.ResetSession(ctx, opts.SessionID); err != nil {
			logger.Warn("failed to reset session", "session_id", opts.SessionID, "err", err)
		}
	}

	interactive := isTerminal() && !opts.Plain
	render := func(s string) string { return s }
	if interactive {
		tui.PrintBanner(sahaj.Version)
		glam := tui.NewRenderer()
		render = func(s string) string {
			out, err := glam(s)
			if err != nil {
				return s
			}
			return out
		}
	}

	// Kick off the dialogue with an empty message so the welcome prompt
	// appears before the first user input.
	reply, err := assistant.Process(ctx, opts.SessionID, "")
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	printReply(render, reply.Text, reply.Options)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		reply, err := assistant.Process(ctx, opts.SessionID, line)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				break
			}
			logger.Error("turn failed", "err", err)
			fmt.Println("Something went wrong, please try again.")
			continue
		}
		printReply(render, reply.Text, reply.Options)
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("read input: %w", err)
	}

	fmt.Println("\nGoodbye!")
	return nil
}

func printReply(render func(string) string, text string, options []string) {
	fmt.Println(render(text))
	if len(options) > 0 {
		fmt.Printf("Options: %s\n\n", strings.Join(options, " | "))
	}
}
