package gesturepad

import (
	"strings"
	"testing"
)

func TestLoadScriptInvalidJSON(t *testing.T) {
	_, err := LoadScript([]byte("{not json"))
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestLoadScriptEmpty(t *testing.T) {
	_, err := LoadScript([]byte(`{"steps": []}`))
	if err == nil {
		t.Fatal("expected error for empty script")
	}
	if !strings.Contains(err.Error(), "no steps") {
		t.Errorf("error = %v, want mention of no steps", err)
	}
}

func TestScriptRunnerTapSequence(t *testing.T) {
	script, err := LoadScript([]byte(`{
		"steps": [
			{"action": "tap2", "x": 400, "y": 300},
			{"action": "tap2", "x": 400, "y": 300},
			{"action": "tap3", "x": 400, "y": 300}
		]
	}`))
	if err != nil {
		t.Fatal(err)
	}

	c := newTestController()
	for i := 0; i < 100 && !script.Done(); i++ {
		script.Step(c)
		c.Advance(nil)
	}

	if !script.Done() {
		t.Fatal("script did not finish")
	}
	if c.Indicators().Count() != 4 {
		t.Errorf("Count = %d, want 4 (two undos, one redo)", c.Indicators().Count())
	}
}

func TestScriptRunnerPinch(t *testing.T) {
	script, err := LoadScript([]byte(`{
		"steps": [
			{"action": "pinch", "x": 512, "y": 384, "from": 100, "to": 200, "frames": 6}
		]
	}`))
	if err != nil {
		t.Fatal(err)
	}

	c := newTestController()
	for i := 0; i < 100 && !script.Done(); i++ {
		script.Step(c)
		c.Advance(nil)
	}

	assertNear(t, "scale", c.Surface().Scale(), 2.0)
}

func TestScriptRunnerWait(t *testing.T) {
	script, err := LoadScript([]byte(`{
		"steps": [
			{"action": "wait", "frames": 5},
			{"action": "tap2", "x": 100, "y": 100}
		]
	}`))
	if err != nil {
		t.Fatal(err)
	}

	c := newTestController()

	// During the wait no frames are injected.
	for i := 0; i < 5; i++ {
		script.Step(c)
		if c.PendingInjected() != 0 {
			t.Fatalf("frame %d: injected during wait", i)
		}
		c.Advance(nil)
	}

	script.Step(c)
	if c.PendingInjected() == 0 {
		t.Fatal("tap not injected after wait")
	}
}

func TestScriptRunnerDoneStaysDone(t *testing.T) {
	script, err := LoadScript([]byte(`{"steps": [{"action": "wait", "frames": 1}]}`))
	if err != nil {
		t.Fatal(err)
	}
	c := newTestController()
	for i := 0; i < 10; i++ {
		script.Step(c)
		c.Advance(nil)
	}
	if !script.Done() {
		t.Fatal("script should be done")
	}
	script.Step(c) // no-op after done
	if c.PendingInjected() != 0 {
		t.Error("done script injected frames")
	}
}

func TestScriptRunnerUnknownActionSkipped(t *testing.T) {
	script, err := LoadScript([]byte(`{
		"steps": [
			{"action": "frobnicate"},
			{"action": "tap2", "x": 1, "y": 1}
		]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	c := newTestController()
	for i := 0; i < 50 && !script.Done(); i++ {
		script.Step(c)
		c.Advance(nil)
	}
	if c.Indicators().Count() != 4 {
		t.Errorf("Count = %d, want 4 (unknown action skipped, tap applied)", c.Indicators().Count())
	}
}
