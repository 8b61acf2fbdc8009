package payload

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{
			name: "minimal",
			raw: `{
				"session": "s1",
				"terrain": {"size": 16, "spacing": 2},
				"avatar": {"spawn": {"x": 0, "y": 1, "z": 0}}
			}`,
		},
		{
			name: "full",
			raw: `{
				"session": "s2",
				"terrain": {"size": 2, "spacing": 1, "heights": [0, 0, 0, 1], "vegetation_density": 3},
				"avatar": {"spawn": {"x": 1, "y": 2, "z": 3}, "yaw": 1.57},
				"clips": ["idle", "walk", "jump"],
				"script": "prim(\"box\", 0, 0, 0)"
			}`,
		},
		{
			name:    "not_json",
			raw:     `{`,
			wantErr: "decode",
		},
		{
			name:    "missing_session",
			raw:     `{"terrain": {"size": 4, "spacing": 1}, "avatar": {"spawn": {"x":0,"y":0,"z":0}}}`,
			wantErr: "validate",
		},
		{
			name:    "tiny_grid",
			raw:     `{"session": "s", "terrain": {"size": 1, "spacing": 1}, "avatar": {"spawn": {"x":0,"y":0,"z":0}}}`,
			wantErr: "validate",
		},
		{
			name:    "zero_spacing",
			raw:     `{"session": "s", "terrain": {"size": 4, "spacing": 0}, "avatar": {"spawn": {"x":0,"y":0,"z":0}}}`,
			wantErr: "validate",
		},
		{
			name:    "height_count_mismatch",
			raw:     `{"session": "s", "terrain": {"size": 4, "spacing": 1, "heights": [1, 2, 3]}, "avatar": {"spawn": {"x":0,"y":0,"z":0}}}`,
			wantErr: "heights",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := Parse([]byte(c.raw))
			if c.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", c.wantErr)
				}
				if !strings.Contains(err.Error(), c.wantErr) {
					t.Fatalf("error %q does not mention %q", err, c.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if p.Session == "" {
				t.Fatalf("session should survive decode")
			}
		})
	}
}

func TestParseFull(t *testing.T) {
	raw := `{
		"session": "abc",
		"terrain": {"size": 2, "spacing": 1, "heights": [0, 0, 0, 4]},
		"avatar": {"spawn": {"x": 1, "y": 2, "z": 3}, "yaw": 0.5},
		"clips": ["idle", "walk"]
	}`
	p, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Avatar.Spawn.Vec().Y() != 2 {
		t.Fatalf("spawn.y = %v, want 2", p.Avatar.Spawn.Vec().Y())
	}
	if p.Avatar.Yaw != 0.5 {
		t.Fatalf("yaw = %v, want 0.5", p.Avatar.Yaw)
	}
	if len(p.Clips) != 2 || p.Clips[0] != "idle" {
		t.Fatalf("clips = %v", p.Clips)
	}
}
