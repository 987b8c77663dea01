package generators

import "testing"

func TestContentMerge(t *testing.T) {
	a := Content{Role: RoleAssistant, Parts: []Part{Text("a"), Thought("x")}}
	merged, ok := a.Merge(&Content{Role: RoleAssistant, Parts: []Part{Thought("y"), Text("b")}})
	if !ok {
		t.Fatal()
	}
	if len(merged.Parts) != 3 || merged.Parts[1] != Thought("xy") {
		t.Fatalf("got %+v", merged.Parts)
	}
	if merged.Text() != "ab" {
		t.Fatalf("got %q", merged.Text())
	}
	if _, ok := a.Merge(&Content{Role: RoleUser}); ok {
		t.Fatal("different roles merged")
	}
}

func TestPromptsAppend(t *testing.T) {
	p := NewPrompts("sys", nil)
	s1, err := p.AppendContent(&Content{Role: RoleUser, Parts: []Part{Text("a")}})
	if err != nil {
		t.Fatal(err)
	}
	s2, err := s1.AppendContent(&Content{Role: RoleUser, Parts: []Part{Text("b")}})
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Contents()) != 0 || len(s1.Contents()) != 1 {
		t.Fatal("append mutated its receiver")
	}
	if LastText(s2, RoleUser) != "ab" {
		t.Fatalf("got %q", LastText(s2, RoleUser))
	}
	if LastText(s2, RoleAssistant) != "" {
		t.Fatal()
	}
	if _, err := p.AppendContent(&Content{}); err == nil {
		t.Fatal("empty role accepted")
	}
}
