package main

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/facturakit/facturakit/internal/invoice"
	"github.com/facturakit/facturakit/internal/session"
	"github.com/facturakit/facturakit/internal/store"
	"github.com/facturakit/facturakit/internal/tui"
	facturaerrors "github.com/facturakit/facturakit/pkg/errors"
)

type editFlags struct {
	output string
	user   string
}

func newEditCmd(flags *rootFlags) *cobra.Command {
	edit := editFlags{}

	cmd := &cobra.Command{
		Use:   "edit [invoice.json]",
		Short: "Edit an invoice in the interactive builder",
		Long: `Open the interactive builder with a live preview. Without an argument the
builder starts from the sample invoice. The final draft is written to
--output and, when --user is set, saved to that account.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(flags, edit, args)
		},
	}

	cmd.Flags().StringVarP(&edit.output, "output", "o", "", "Write the edited invoice to this JSON file")
	cmd.Flags().StringVarP(&edit.user, "user", "u", "", "Save the edited invoice under this account")

	return cmd
}

func runEdit(flags *rootFlags, edit editFlags, args []string) error {
	settings, err := loadSettings(flags)
	if err != nil {
		return err
	}
	log, err := newLogger(flags, settings)
	if err != nil {
		return err
	}

	inv := invoice.Sample()
	inv.TemplateID = settings.DefaultTemplate
	inv.AccentColor = ""
	if len(args) == 1 {
		loaded, err := readInvoice(args[0])
		if err != nil {
			return err
		}
		inv = loaded
	}

	editor, err := session.New(inv)
	if err != nil {
		return err
	}
	editor.SetCurrencySymbol(settings.CurrencySymbol)

	program := tea.NewProgram(tui.New(editor, log), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("builder failed: %w", err)
	}

	model, ok := final.(tui.Model)
	if !ok {
		return fmt.Errorf("builder returned unexpected model")
	}
	draft := model.Editor().Draft()

	if err := invoice.Validate(&draft); err != nil {
		log.Warn("draft failed validation: " + err.Error())
	}

	if edit.output != "" {
		if err := writeInvoice(edit.output, draft); err != nil {
			return err
		}
		log.WithFields(map[string]any{"path": edit.output}).Info("invoice written")
	}

	if edit.user != "" {
		accounts, err := store.New(settings.StorePath)
		if err != nil {
			return err
		}
		if _, ok := accounts.Get(edit.user); !ok {
			if _, err := accounts.Register(edit.user); err != nil {
				return err
			}
		}
		if err := accounts.SaveInvoice(edit.user, draft); err != nil {
			return err
		}
		if err := accounts.Save(); err != nil {
			return err
		}
		log.WithFields(map[string]any{"user": edit.user}).Info("invoice saved to account")
	}

	return nil
}

func readInvoice(path string) (invoice.Invoice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return invoice.Invoice{}, facturaerrors.NewParseError(path, err)
	}
	var inv invoice.Invoice
	if err := json.Unmarshal(data, &inv); err != nil {
		return invoice.Invoice{}, facturaerrors.NewParseError(path, err)
	}
	return inv, nil
}

func writeInvoice(path string, inv invoice.Invoice) error {
	data, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
