package util_test

import (
	"testing"

	"mysonai/internal/pkg/util"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Yapay Zeka Asistanları", "yapay-zeka-asistanlari"},
		{"KOBİ'ler için Çözümler", "kobi-ler-icin-cozumler"},
		{"  Hello,  World!  ", "hello-world"},
		{"---", ""},
	}

	for _, tc := range cases {
		if got := util.Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSplitJoinTags(t *testing.T) {
	tags := util.SplitTags("ai, seo ,, pazarlama")
	if len(tags) != 3 || tags[0] != "ai" || tags[2] != "pazarlama" {
		t.Fatalf("unexpected tags: %v", tags)
	}

	if got := util.JoinTags(tags); got != "ai,seo,pazarlama" {
		t.Fatalf("JoinTags = %q", got)
	}

	if tags = util.SplitTags(""); tags == nil || len(tags) != 0 {
		t.Fatalf("empty input must give empty non-nil slice, got %v", tags)
	}
}
