package dialog

import (
	"os"
	"testing"
	"time"

	"github.com/nalgeon/be"
)

const dialogLiveTestFlagEnv = "DUH_LIVE_TEST"

func TestLiveDialogHelpers(t *testing.T) {
	if os.Getenv(dialogLiveTestFlagEnv) != "1" {
		t.Skipf("set %s=1 to run live dialog integration tests", dialogLiveTestFlagEnv)
	}

	// Self-dismissing, so an unattended run does not hang.
	res, err := Show(Input{
		Message:     "duh live test: this dialog dismisses itself",
		Title:       "duh",
		GiveUpAfter: 3 * time.Second,
	})
	be.Err(t, err, nil)
	be.True(t, res.GaveUp || res.Button != "")

	alertRes, err := Alert(AlertInput{
		Text:        "duh live test",
		Message:     "this alert dismisses itself",
		Severity:    SeverityInformational,
		GiveUpAfter: 3 * time.Second,
	})
	be.Err(t, err, nil)
	be.True(t, alertRes.GaveUp || alertRes.Button != "")
}
