package view

import (
	"strings"
	"testing"
)

func TestSocialIconSVGKnownKey(t *testing.T) {
	svg := SocialIconSVG("github")
	if !strings.Contains(svg, "<svg") {
		t.Fatalf("expected svg markup, got %q", svg)
	}
	if svg == DefaultSocialIconSVG() {
		t.Fatalf("known key should not fall back to default")
	}
}

func TestSocialIconSVGFallback(t *testing.T) {
	cases := []string{"", "   ", "unknown-platform"}
	for _, key := range cases {
		if SocialIconSVG(key) != DefaultSocialIconSVG() {
			t.Fatalf("expected fallback for key %q", key)
		}
	}
}

func TestSocialIconSVGCaseInsensitive(t *testing.T) {
	if SocialIconSVG("GitHub") != SocialIconSVG("github") {
		t.Fatalf("expected icon lookup to ignore case")
	}
}

func TestSocialIconOptionsExcludeDefault(t *testing.T) {
	for _, option := range SocialIconOptions() {
		if option.Key == "default" {
			t.Fatalf("default icon should not be a selectable option")
		}
		if option.Label == "" {
			t.Fatalf("option %q is missing a label", option.Key)
		}
	}
}
