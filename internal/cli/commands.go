// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-fort-note/internal/crypto"
	"github.com/MKhiriev/go-fort-note/internal/markup"
)

// readContent resolves a --content value; "-" reads the whole of stdin.
func readContent(cmd *cobra.Command, value string) (string, error) {
	if value != "-" {
		return value, nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read content from stdin: %w", err)
	}
	return string(b), nil
}

func (a *App) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			notes, err := a.notes.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(notes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), helpStyle.Render("no notes yet"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderNoteTable(notes))
			return nil
		},
	}
}

func (a *App) showCommand() *cobra.Command {
	var copyContent bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			note, err := a.notes.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if copyContent {
				if note.Locked {
					return ErrNoteIsLocked
				}
				if err = a.clip.WriteAll(markup.PlainText(note.Content)); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "copied to clipboard")
				return nil
			}

			renderNote(cmd.OutOrStdout(), note)
			return nil
		},
	}
	cmd.Flags().BoolVar(&copyContent, "copy", false, "Copy the note text to the clipboard instead of printing it")

	return cmd
}

func (a *App) createCommand() *cobra.Command {
	var title, content string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			body, err := readContent(cmd, content)
			if err != nil {
				return err
			}

			note, err := a.notes.Create(cmd.Context(), title, body)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), note.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Note title")
	cmd.Flags().StringVar(&content, "content", "", `Note content markup, "-" reads stdin`)

	return cmd
}

func (a *App) updateCommand() *cobra.Command {
	var title, content string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the title and/or content of an unlocked note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			titleSet, contentSet := cmd.Flags().Changed("title"), cmd.Flags().Changed("content")
			if !titleSet && !contentSet {
				return ErrNothingToUpdate
			}

			note, err := a.notes.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if titleSet {
				note.Title = title
			}
			if contentSet {
				if note.Content, err = readContent(cmd, content); err != nil {
					return err
				}
			}

			return a.notes.Update(cmd.Context(), note.ID, note.Title, note.Content)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&content, "content", "", `New content markup, "-" reads stdin`)

	return cmd
}

func (a *App) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.notes.Delete(cmd.Context(), args[0])
		},
	}
}

func (a *App) lockCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lock <id>",
		Short: "Encrypt a note with a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := a.newPassword()
			if err != nil {
				return err
			}

			if err = a.notes.Lock(cmd.Context(), args[0], password); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "locked")
			return nil
		},
	}
}

func (a *App) unlockCommand() *cobra.Command {
	var copyContent bool

	cmd := &cobra.Command{
		Use:   "unlock <id>",
		Short: "Decrypt a note and print its text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := a.prompt.Prompt("Password")
			if err != nil {
				return err
			}

			content, err := a.notes.Unlock(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}

			text := markup.PlainText(content)
			if copyContent {
				if err = a.clip.WriteAll(text); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "unlocked, text copied to clipboard")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().BoolVar(&copyContent, "copy", false, "Copy the unlocked text to the clipboard instead of printing it")

	return cmd
}

func (a *App) lockAllCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lock-all",
		Short: "Encrypt every unlocked note with one password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := a.newPassword()
			if err != nil {
				return err
			}

			result, err := a.notes.LockAll(cmd.Context(), password)
			if err != nil {
				return err
			}

			renderBulkResult(cmd.OutOrStdout(), "locked", result)
			return nil
		},
	}
}

func (a *App) unlockAllCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unlock-all",
		Short: "Decrypt every note that opens with the password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := a.prompt.Prompt("Password")
			if err != nil {
				return err
			}

			result, err := a.notes.UnlockAll(cmd.Context(), password)
			if err != nil {
				return err
			}

			renderBulkResult(cmd.OutOrStdout(), "unlocked", result)
			return nil
		},
	}
}

func (a *App) reconcileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Repair locked flags that disagree with note content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.notes.Reconcile(cmd.Context())
			if err != nil {
				return err
			}

			renderBulkResult(cmd.OutOrStdout(), "repaired", result)
			return nil
		},
	}
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if _, err := a.buildInfo.WriteTo(out); err != nil {
				return err
			}

			if remote, ok := a.notes.(VersionReporter); ok {
				version, err := remote.ServerVersion(cmd.Context())
				if err != nil {
					return fmt.Errorf("server version: %w", err)
				}
				fmt.Fprintf(out, "Server version: %s\n", version)
			}
			return nil
		},
	}
}

// newPassword prompts twice and refuses mismatching entries. Emptiness is
// left to the note service.
func (a *App) newPassword() (string, error) {
	password, err := a.prompt.Prompt("New password")
	if err != nil {
		return "", err
	}
	confirm, err := a.prompt.Prompt("Repeat password")
	if err != nil {
		return "", err
	}
	if password != confirm {
		return "", ErrPasswordMismatch
	}
	return password, nil
}

// ExitCode maps a command error to the process exit code: 2 for usage
// mistakes, 3 for a wrong password, 1 for anything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrPasswordMismatch), errors.Is(err, ErrNothingToUpdate):
		return 2
	case errors.Is(err, crypto.ErrAuthentication):
		return 3
	default:
		return 1
	}
}
