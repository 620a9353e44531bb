package tray

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestEditorCommand(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")

	tests := []struct {
		name     string
		editor   string
		visual   string
		env      string
		wantBase string
		wantArgs []string
	}{
		{
			name:     "Configured editor with flags",
			editor:   "code --wait",
			wantBase: "code",
			wantArgs: []string{"--wait", "/tmp/atrofac.yaml"},
		},
		{
			name:     "VISUAL before EDITOR",
			visual:   "gedit",
			env:      "vim",
			wantBase: "gedit",
			wantArgs: []string{"/tmp/atrofac.yaml"},
		},
		{
			name:     "EDITOR fallback",
			env:      "nano",
			wantBase: "nano",
			wantArgs: []string{"/tmp/atrofac.yaml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("VISUAL", tt.visual)
			t.Setenv("EDITOR", tt.env)

			cmd := EditorCommand(tt.editor, "/tmp/atrofac.yaml")
			if got := filepath.Base(cmd.Args[0]); got != tt.wantBase {
				t.Errorf("command = %q, want %q", got, tt.wantBase)
			}
			args := cmd.Args[1:]
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("args = %v, want %v", args, tt.wantArgs)
			}
			for i := range args {
				if args[i] != tt.wantArgs[i] {
					t.Errorf("args[%d] = %q, want %q", i, args[i], tt.wantArgs[i])
				}
			}
		})
	}
}

func TestEditorCommandPlatformDefault(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")

	cmd := EditorCommand("", "/tmp/atrofac.yaml")
	want := map[string]string{"windows": "cmd", "darwin": "open"}[runtime.GOOS]
	if want == "" {
		want = "xdg-open"
	}
	if cmd.Args[0] != want {
		t.Errorf("default opener = %q, want %q", cmd.Args[0], want)
	}
	if last := cmd.Args[len(cmd.Args)-1]; last != "/tmp/atrofac.yaml" {
		t.Errorf("last arg = %q, want the config path", last)
	}
}
