package ui

import (
	"encoding/json"
	"testing"

	"github.com/m-lima/passifier/internal/store"
)

func TestRenderTree(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	s := store.New()
	raw := `{"z":"last","db":{"user":"root","creds":{"pass":"hunter2"}},"cert":[1,2,3]}`
	if err := json.Unmarshal([]byte(raw), s); err != nil {
		t.Fatalf("failed to build store: %v", err)
	}

	redactedWant := "» db/\n" +
		"  » creds/\n" +
		"    - pass = <redacted>\n" +
		"  - user = <redacted>\n" +
		"- cert = (3 bytes)\n" +
		"- z = <redacted>\n"
	if got := RenderTree(s.Root(), false); got != redactedWant {
		t.Errorf("RenderTree(redacted) =\n%s\nwant\n%s", got, redactedWant)
	}

	revealedWant := "» db/\n" +
		"  » creds/\n" +
		"    - pass = hunter2\n" +
		"  - user = root\n" +
		"- cert = (3 bytes)\n" +
		"- z = last\n"
	if got := RenderTree(s.Root(), true); got != revealedWant {
		t.Errorf("RenderTree(revealed) =\n%s\nwant\n%s", got, revealedWant)
	}

	if got := RenderTree(store.New().Root(), true); got != "" {
		t.Errorf("RenderTree(empty) = %q, want empty", got)
	}
}
