package core

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "record id", content: "cka"},
		{name: "empty string", content: ""},
		{name: "long content", content: "aws-certified-solutions-architect-professional"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	if IDFromContent("cka") == IDFromContent("ckad") {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "entry", want: LevelEntry},
		{in: "intermediate", want: LevelIntermediate},
		{in: "advanced", want: LevelAdvanced},
		{in: "expert", wantErr: true},
		{in: "", wantErr: true},
		{in: "Entry", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseLevel(%q) error = nil, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLevel(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatchType_Priority(t *testing.T) {
	order := []MatchType{MatchExact, MatchPartial, MatchSemantic, MatchFuzzy}
	for i := 0; i < len(order)-1; i++ {
		if order[i].Priority() <= order[i+1].Priority() {
			t.Errorf("%s priority %d should exceed %s priority %d",
				order[i], order[i].Priority(), order[i+1], order[i+1].Priority())
		}
	}
	if MatchType("bogus").Priority() != 0 {
		t.Errorf("unknown match type should have priority 0")
	}
}

func TestTopic_UnmarshalYAML(t *testing.T) {
	src := `
name: Workloads
topics:
  - Pods
  - name: Services
    url: https://kubernetes.io/docs/concepts/services-networking/service/
`
	var d Domain
	if err := yaml.Unmarshal([]byte(src), &d); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if len(d.Topics) != 2 {
		t.Fatalf("got %d topics, want 2", len(d.Topics))
	}
	if d.Topics[0] != (Topic{Name: "Pods"}) {
		t.Errorf("scalar topic = %+v", d.Topics[0])
	}
	if d.Topics[1].Name != "Services" || d.Topics[1].URL == "" {
		t.Errorf("mapping topic = %+v", d.Topics[1])
	}
}
