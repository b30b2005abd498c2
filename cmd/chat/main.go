package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"supermind-backend/internal/assistant"
	"supermind-backend/internal/logging"
	"supermind-backend/internal/relayclient"
)

type options struct {
	server   string
	message  string
	timeout  time.Duration
	logLevel string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the analytics assistant through the chat relay",
		Long: "Sends messages to a running relay server's /chat endpoint. " +
			"With --message a single question is asked, otherwise lines are read from stdin.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.server, "server", "s", envOr("RELAY_URL", "http://localhost:3000"), "relay server base URL")
	cmd.Flags().StringVarP(&opts.message, "message", "m", "", "ask a single question and exit")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 60*time.Second, "per-request timeout")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "error", "log level (debug, info, warn, error)")

	return cmd
}

func run(ctx context.Context, opts *options, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger, _ := logging.New(logging.Options{Level: opts.logLevel, Format: "console"})

	client, err := relayclient.New(opts.server, relayclient.WithLogger(logger))
	if err != nil {
		return errors.Wrap(err, "create relay client")
	}
	session := assistant.NewSession(client, logger)

	ask := func(text string) {
		reqCtx, cancel := context.WithTimeout(ctx, opts.timeout)
		defer cancel()
		if reply, sent := session.Send(reqCtx, text); sent && reply.Text != "" {
			fmt.Fprintf(out, "assistant> %s\n", reply.Text)
		}
	}

	if strings.TrimSpace(opts.message) != "" {
		ask(opts.message)
		return nil
	}

	fmt.Fprintf(out, "assistant> %s\n", assistant.Greeting)
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "you> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return errors.Wrap(scanner.Err(), "read input")
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "/quit" || line == "/exit" {
			return nil
		}
		ask(line)
	}
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
