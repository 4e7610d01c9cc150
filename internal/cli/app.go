// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-fort-note/internal/adapter"
	"github.com/MKhiriev/go-fort-note/internal/config"
	"github.com/MKhiriev/go-fort-note/internal/crypto"
	"github.com/MKhiriev/go-fort-note/internal/logger"
	"github.com/MKhiriev/go-fort-note/internal/service"
	"github.com/MKhiriev/go-fort-note/internal/store"
	"github.com/MKhiriev/go-fort-note/internal/utils"
	"github.com/MKhiriev/go-fort-note/models"
)

// App holds the collaborators shared by every command. Commands resolve the
// note service lazily so that --help and flag errors never open storage.
type App struct {
	buildInfo models.AppBuildInfo

	notes   service.NoteService
	closer  io.Closer
	flags   *config.Flags
	prompt  PasswordPrompter
	clip    Clipboard
	logger  *logger.Logger
	logSink io.Writer

	root *cobra.Command
}

// Option configures an [App].
type Option func(*App)

// WithNoteService skips configuration and uses svc for every command.
func WithNoteService(svc service.NoteService) Option {
	return func(a *App) {
		a.notes = svc
	}
}

// WithPrompter replaces the terminal password prompt.
func WithPrompter(p PasswordPrompter) Option {
	return func(a *App) {
		a.prompt = p
	}
}

// WithClipboard replaces the system clipboard.
func WithClipboard(c Clipboard) Option {
	return func(a *App) {
		a.clip = c
	}
}

// WithLogSink sets where CLI logs are written, os.Stderr by default.
func WithLogSink(w io.Writer) Option {
	return func(a *App) {
		a.logSink = w
	}
}

// NewApp builds the fortnote command tree.
func NewApp(buildInfo models.AppBuildInfo, opts ...Option) *App {
	a := &App{
		buildInfo: buildInfo,
		clip:      systemClipboard{},
		logSink:   os.Stderr,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.prompt == nil {
		a.prompt = newTerminalPrompter(os.Stdin, os.Stderr)
	}
	a.logger = logger.NewClientLogger("fortnote", a.logSink)

	root := &cobra.Command{
		Use:           "fortnote",
		Short:         "Password-protected notes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	a.flags = config.BindFlags(root.PersistentFlags())
	_ = root.PersistentFlags().MarkHidden("address")

	root.AddCommand(
		a.listCommand(),
		a.showCommand(),
		a.createCommand(),
		a.updateCommand(),
		a.deleteCommand(),
		a.lockCommand(),
		a.unlockCommand(),
		a.lockAllCommand(),
		a.unlockAllCommand(),
		a.reconcileCommand(),
		a.versionCommand(),
	)

	a.root = root
	return a
}

// Root returns the root command, mainly for output redirection in tests.
func (a *App) Root() *cobra.Command {
	return a.root
}

// Execute runs the command selected by the command line and closes storage
// whether or not the command succeeded.
func (a *App) Execute(ctx context.Context) error {
	err := a.root.ExecuteContext(ctx)
	if closeErr := a.teardown(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

// setup resolves configuration and opens the note service unless one was
// injected.
func (a *App) setup(cmd *cobra.Command) error {
	ctx := utils.WithTraceID(cmd.Context(), uuid.NewString())
	defer func() {
		// services log through the context, warnings included
		cmd.SetContext(a.logger.WithContext(ctx))
	}()

	if a.notes != nil {
		return nil
	}

	cfg, err := config.GetClientConfig(a.flags)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	a.logger = a.logger.WithLevel(cfg.App.LogLevel)

	if cfg.Remote() {
		remote, err := adapter.NewHTTPNoteAdapter(cfg.Adapter, a.logger)
		if err != nil {
			return fmt.Errorf("create server adapter: %w", err)
		}
		a.notes = remote
		a.logger.Debug().Str("server", cfg.Adapter.HTTPAddress).Msg("using remote note store")
		return nil
	}

	storage, err := store.NewStorage(ctx, cfg.Storage, a.logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	a.closer = storage
	a.notes = service.NewNoteService(store.NewNoteRepository(storage, a.logger), crypto.NewCodec(), a.logger)

	return nil
}

func (a *App) teardown() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	if err != nil {
		return fmt.Errorf("close storage: %w", err)
	}
	return nil
}
