package assets

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	b, err := Template()
	if err != nil {
		t.Fatalf("Template: %v", err)
	}
	if !strings.Contains(string(b), "guess me") {
		t.Errorf("template lacks sample secrets:\n%s", b)
	}
}

func TestDemo(t *testing.T) {
	d, err := Demo()
	if err != nil {
		t.Fatalf("Demo: %v", err)
	}
	if !strings.HasPrefix(d, "- ") || strings.Contains(d, "\n") {
		t.Errorf("Demo() = %q, want a single secret line", d)
	}
}

func TestImages(t *testing.T) {
	imgs, err := Images()
	if err != nil {
		t.Fatalf("Images: %v", err)
	}
	if len(imgs) != 3 {
		t.Fatalf("got %d images, want 3", len(imgs))
	}
	for i, img := range imgs {
		if len(img) == 0 {
			t.Errorf("image %d is empty", i)
		}
		if img[len(img)-1] == "" {
			t.Errorf("image %d ends with a blank line", i)
		}
	}
}
