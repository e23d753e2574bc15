package gesturepad

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	From   float64 `json:"from,omitempty"`
	To     float64 `json:"to,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Radius float64 `json:"radius,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a JSON gesture script against a Controller, one
// step at a time, waiting for each injected sequence to drain before
// advancing. Call Step once per frame before Controller.Advance.
//
// Supported actions: "tap2", "tap3" (x, y), "pinch" (x, y anchor, from/to
// spread, frames), "rotate" (x, y anchor, from/to radians, radius,
// frames), "pan" (fromX/fromY to toX/toY, frames), and "wait" (frames).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON gesture script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed and drained.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the script by one frame, injecting the next gesture when
// the previous one has fully drained.
func (r *ScriptRunner) Step(c *Controller) {
	if r.done {
		return
	}
	// Wait for pending injected frames to drain before advancing.
	if c.PendingInjected() > 0 {
		return
	}
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
	case "tap2":
		c.InjectTap(2, st.X, st.Y)
	case "tap3":
		c.InjectTap(3, st.X, st.Y)
	case "pinch":
		c.InjectPinch(Vec2{X: st.X, Y: st.Y}, st.From, st.To, st.Frames)
	case "rotate":
		c.InjectRotate(Vec2{X: st.X, Y: st.Y}, st.From, st.To, st.Radius, st.Frames)
	case "pan":
		c.InjectPan(Vec2{X: st.FromX, Y: st.FromY}, Vec2{X: st.ToX, Y: st.ToY}, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && c.PendingInjected() == 0 {
		r.done = true
	}
}
