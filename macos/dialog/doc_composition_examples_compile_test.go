package dialog_test

import (
	"errors"
	"fmt"
	"time"

	"github.com/spachava753/duh/macos/chooser"
	"github.com/spachava753/duh/macos/dialog"
	"github.com/spachava753/duh/macos/notify"
	"github.com/spachava753/duh/macos/script"
)

// Compile-only composition examples: these are the call shapes the package
// docs describe, kept here so they break loudly if the API drifts.

func composeConfirmThenNotify() error {
	res, err := dialog.Show(dialog.Input{
		Message:       "Archive 12 old reports?",
		Buttons:       []string{"Cancel", "Archive"},
		DefaultButton: dialog.ButtonLabel("Archive"),
		CancelButton:  dialog.ButtonIndex(1),
		Icon:          dialog.IconCaution,
	})
	if errors.Is(err, script.ErrCancelled) {
		return nil
	}
	if err != nil {
		return err
	}

	return notify.Post(notify.Notification{
		Title: "Reports",
		Text:  fmt.Sprintf("archived via %q", res.Button),
	})
}

func composePasswordPrompt() (string, error) {
	empty := ""
	hidden := true
	res, err := dialog.Show(dialog.Input{
		Message:       "Enter the vault passphrase",
		DefaultAnswer: &empty,
		HiddenAnswer:  &hidden,
		Title:         "Vault",
		GiveUpAfter:   2 * time.Minute,
	})
	if err != nil {
		return "", err
	}
	if res.GaveUp {
		return "", errors.New("no passphrase entered in time")
	}
	return res.Text, nil
}

func composePickDestination() ([]string, error) {
	multiple := false
	return chooser.Folder(chooser.FolderInput{
		Prompt:   "Where should the export go?",
		Location: script.LocationPath("/Users/Shared"),
		Multiple: &multiple,
	})
}
