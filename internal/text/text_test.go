package text

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"I love to eat pizza", "love eat pizza"},
		{"Hello, World!!!", "hello world"},
		{"the a an of", ""},
		{"", ""},
		{"  Mixed   CASE  text  ", "mixed case text"},
		{"numbers 123 vanish", "numbers vanish"},
	}
	for _, tt := range tests {
		if got := Clean(tt.input); got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCleanAlnum_KeepsDigits(t *testing.T) {
	if got := CleanAlnum("Room 42, floor 3!"); got != "room 42 floor 3" {
		t.Errorf("CleanAlnum = %q", got)
	}
}

func TestJaccard_Identity(t *testing.T) {
	if got := Jaccard("the cat sat", "the cat sat"); got != 1.0 {
		t.Errorf("identical text: got %v, want 1.0", got)
	}
}

func TestJaccard_Empty(t *testing.T) {
	if got := Jaccard("", "anything at all"); got != 0.0 {
		t.Errorf("empty left: got %v, want 0.0", got)
	}
	if got := Jaccard("anything at all", ""); got != 0.0 {
		t.Errorf("empty right: got %v, want 0.0", got)
	}
	if got := Jaccard("", ""); got != 0.0 {
		t.Errorf("both empty: got %v, want 0.0", got)
	}
}

func TestJaccard_SymmetryAndBounds(t *testing.T) {
	pairs := [][2]string{
		{"go is a compiled language", "python is interpreted"},
		{"user loves tea", "user loves coffee"},
		{"completely unrelated words here", "nothing shared whatsoever"},
		{"Punctuation, should! not? matter", "punctuation should not matter"},
	}
	for _, p := range pairs {
		ab := Jaccard(p[0], p[1])
		ba := Jaccard(p[1], p[0])
		if ab != ba {
			t.Errorf("Jaccard(%q, %q) = %v but reversed = %v", p[0], p[1], ab, ba)
		}
		if ab < 0 || ab > 1 {
			t.Errorf("Jaccard(%q, %q) = %v out of [0, 1]", p[0], p[1], ab)
		}
	}
}

func TestJaccard_Overlap(t *testing.T) {
	// {user, loves, tea} vs {user, loves, coffee}: 2 shared of 4 total.
	if got := Jaccard("user loves tea", "user loves coffee"); got != 0.5 {
		t.Errorf("got %v, want 0.5", got)
	}
}

func TestJaccard_DuplicateTokensCollapse(t *testing.T) {
	if got := Jaccard("tea tea tea", "tea"); got != 1.0 {
		t.Errorf("got %v, want 1.0", got)
	}
}

func TestRemoveStopWords(t *testing.T) {
	got := RemoveStopWords([]string{"i", "love", "the", "coffee"})
	if len(got) != 2 || got[0] != "love" || got[1] != "coffee" {
		t.Errorf("got %v", got)
	}
}
