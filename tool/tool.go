// Package tool exposes the interaction helpers as MCP tools so agents can
// ask the person at the machine for input, show them choices, and notify
// them.
//
// Register the tools on any mcp.Server with AddTools, or run the bundled
// stdio server (cmd/duh-mcp). User cancellation is reported as structured
// output (cancelled: true) rather than a tool error, so agents can branch on
// it without special error handling.
package tool

import (
	"context"
	"errors"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/spachava753/duh/macos/chooser"
	"github.com/spachava753/duh/macos/dialog"
	"github.com/spachava753/duh/macos/notify"
	"github.com/spachava753/duh/macos/script"
	"github.com/spachava753/duh/macos/speech"
)

// AddTools registers all interaction tools on server.
func AddTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ask_text",
		Description: "Ask the user a question in a modal dialog and return their typed answer.",
	}, askText)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "choose_from_list",
		Description: "Present the user a list of options and return the ones they pick.",
	}, chooseFromList)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "notify",
		Description: "Post a Notification Center notification to the user.",
	}, postNotification)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "speak",
		Description: "Speak text aloud through the system speech synthesizer.",
	}, speak)
}

// AskTextInput is the ask_text request.
type AskTextInput struct {
	Question       string `json:"question"`
	DefaultAnswer  string `json:"default_answer,omitempty"`
	Hidden         bool   `json:"hidden,omitempty"`
	Title          string `json:"title,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"`
}

// AskTextOutput is the ask_text response.
type AskTextOutput struct {
	Answer    string `json:"answer"`
	Button    string `json:"button"`
	Cancelled bool   `json:"cancelled"`
	GaveUp    bool   `json:"gave_up,omitempty"`
}

func askText(ctx context.Context, req *mcp.CallToolRequest, in AskTextInput) (*mcp.CallToolResult, AskTextOutput, error) {
	_ = ctx
	_ = req

	answer := in.DefaultAnswer
	dlg := dialog.Input{
		Message:       in.Question,
		DefaultAnswer: &answer,
		Title:         in.Title,
	}
	if in.Hidden {
		hidden := true
		dlg.HiddenAnswer = &hidden
	}
	if in.TimeoutSeconds > 0 {
		dlg.GiveUpAfter = time.Duration(in.TimeoutSeconds) * time.Second
	}

	res, err := dialog.Show(dlg)
	if errors.Is(err, script.ErrCancelled) {
		return nil, AskTextOutput{Cancelled: true}, nil
	}
	if err != nil {
		return nil, AskTextOutput{}, err
	}
	return nil, AskTextOutput{
		Answer: res.Text,
		Button: res.Button,
		GaveUp: res.GaveUp,
	}, nil
}

// ChooseInput is the choose_from_list request.
type ChooseInput struct {
	Prompt   string   `json:"prompt,omitempty"`
	Items    []string `json:"items"`
	Defaults []string `json:"defaults,omitempty"`
	Multiple bool     `json:"multiple,omitempty"`
}

// ChooseOutput is the choose_from_list response.
type ChooseOutput struct {
	Chosen    []string `json:"chosen"`
	Cancelled bool     `json:"cancelled"`
}

func chooseFromList(ctx context.Context, req *mcp.CallToolRequest, in ChooseInput) (*mcp.CallToolResult, ChooseOutput, error) {
	_ = ctx
	_ = req

	list := chooser.ListInput{
		Items:        anySlice(in.Items),
		Prompt:       in.Prompt,
		DefaultItems: anySlice(in.Defaults),
	}
	if in.Multiple {
		multiple := true
		list.Multiple = &multiple
	}

	chosen, err := chooser.FromList(list)
	if errors.Is(err, script.ErrCancelled) {
		return nil, ChooseOutput{Chosen: []string{}, Cancelled: true}, nil
	}
	if err != nil {
		return nil, ChooseOutput{}, err
	}
	return nil, ChooseOutput{Chosen: chosen}, nil
}

// NotifyInput is the notify request.
type NotifyInput struct {
	Text     string `json:"text,omitempty"`
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	Sound    string `json:"sound,omitempty"`
}

// NotifyOutput is the notify response.
type NotifyOutput struct {
	Posted bool `json:"posted"`
}

func postNotification(ctx context.Context, req *mcp.CallToolRequest, in NotifyInput) (*mcp.CallToolResult, NotifyOutput, error) {
	_ = ctx
	_ = req

	err := notify.Post(notify.Notification{
		Text:     in.Text,
		Title:    in.Title,
		Subtitle: in.Subtitle,
		Sound:    in.Sound,
	})
	if err != nil {
		return nil, NotifyOutput{}, err
	}
	return nil, NotifyOutput{Posted: true}, nil
}

// SpeakInput is the speak request.
type SpeakInput struct {
	Text       string `json:"text"`
	Voice      string `json:"voice,omitempty"`
	Background bool   `json:"background,omitempty"`
}

// SpeakOutput is the speak response.
type SpeakOutput struct {
	Spoken bool `json:"spoken"`
}

func speak(ctx context.Context, req *mcp.CallToolRequest, in SpeakInput) (*mcp.CallToolResult, SpeakOutput, error) {
	_ = ctx
	_ = req

	say := speech.Input{
		Text:  in.Text,
		Voice: in.Voice,
	}
	if in.Background {
		wait := false
		say.WaitUntilCompletion = &wait
	}

	if err := speech.Say(say); err != nil {
		return nil, SpeakOutput{}, err
	}
	return nil, SpeakOutput{Spoken: true}, nil
}

func anySlice(items []string) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
