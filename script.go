package splat

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an event script.
type scriptStep struct {
	Action string `json:"action"`
	Key    string `json:"key,omitempty"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// script is the top-level JSON structure for an event script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected window events and screenshots across
// frames for automated runs. Call Step once per frame before polling events.
//
// Actions: "key" (inject a key press, key name in "key"), "quit",
// "wait" (skip "frames" frames), and "screenshot" (label in "label").
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON event script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "key", "quit", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame, injecting into win and queueing
// screenshots on ctx (which may be nil).
func (r *ScriptRunner) Step(ctx *Context, win Injector) {
	if r.done {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "key":
		win.InjectKeyDown(st.Key)
	case "quit":
		win.InjectQuit()
	case "screenshot":
		if ctx != nil {
			ctx.Screenshot(st.Label)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
