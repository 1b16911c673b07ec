package levels

import "testing"

func TestLoadEmbeddedDemo(t *testing.T) {
	for _, name := range []string{"demo", "demo.json", "levels/demo.json"} {
		t.Run(name, func(t *testing.T) {
			doc, err := Load(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if doc.Name != "Demo" || doc.Len() == 0 {
				t.Fatalf("unexpected document %q with %d tiles", doc.Name, doc.Len())
			}
		})
	}
}

func TestNamesIncludesDemo(t *testing.T) {
	found := false
	for _, n := range Names() {
		if n == "demo" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected demo in %v", Names())
	}
}
