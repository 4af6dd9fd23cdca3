package cmaptools

import (
	"image"
	"testing"
)

func previewDynamic(t *testing.T) *DynamicColormap {
	t.Helper()
	cm, err := Parse("preview", []byte(divergingCPT))
	if err != nil {
		t.Fatal(err)
	}
	return cm.(*DynamicColormap)
}

func TestPreviewDimensions(t *testing.T) {
	d := previewDynamic(t)

	img, err := d.Preview(64, 24)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 64, 24) {
		t.Errorf("Bounds() = %v, want 64x24", got)
	}

	if _, err := d.Preview(1, 24); err == nil {
		t.Error("too narrow: err = nil")
	}
	if _, err := d.Preview(64, 0); err == nil {
		t.Error("zero height: err = nil")
	}
}

func TestPreviewTopStripIgnoresRange(t *testing.T) {
	d := previewDynamic(t)
	if err := d.SetRange(-1000, 0, 1); err != nil {
		t.Fatal(err)
	}

	const w, h = 64, 36
	img, err := d.Preview(w, h)
	if err != nil {
		t.Fatal(err)
	}

	// The top strip is the raw [0, 1] gradient, unaffected by the range.
	for _, x := range []int{0, w / 4, w / 2, 3 * w / 4, w - 1} {
		want := d.At(float64(x) / float64(w-1))
		got := FromColor(img.At(x, 1))
		if !colorsEqual(got, want, 2.0/255) {
			t.Errorf("pixel (%d, 1) = %v, want %v", x, got, want)
		}
	}
}

func TestPreviewGradient(t *testing.T) {
	gray, _ := Lookup("gray")

	img, err := PreviewGradient(gray, 32, 8)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 32, 8) {
		t.Fatalf("Bounds() = %v, want 32x8", got)
	}

	left := FromColor(img.At(0, 4))
	right := FromColor(img.At(31, 4))
	if !colorsEqual(left, RGB(0, 0, 0), 2.0/255) {
		t.Errorf("left pixel = %v, want black", left)
	}
	if !colorsEqual(right, RGB(1, 1, 1), 2.0/255) {
		t.Errorf("right pixel = %v, want white", right)
	}
}

func TestSavePreviewPNG(t *testing.T) {
	d := previewDynamic(t)
	path := t.TempDir() + "/preview.png"
	if err := SavePreviewPNG(path, d, 64, 24); err != nil {
		t.Fatal(err)
	}
}

func TestPreviewMiddleStripUsesOriginalRange(t *testing.T) {
	d := previewDynamic(t)
	// Push the current range far away from the construction range; the
	// middle strip must keep showing the original normalization.
	if err := d.SetRange(-1e6, 0, 1e6); err != nil {
		t.Fatal(err)
	}

	const w, h = 96, 36
	img, err := d.Preview(w, h)
	if err != nil {
		t.Fatal(err)
	}

	gap := h / 12
	stripH := (h - 2*gap) / 3
	yMid := stripH + gap + stripH/2

	// Sample away from the hinge tick. Construction range was [-1, 0.95].
	x := w / 5
	tt := float64(x) / float64(w-1)
	v := -1 + tt*(0.95-(-1))
	norm := HingeNorm{VMin: -1, Hinge: 0, VMax: 0.95, Frac: d.SplitFraction()}
	want := d.At(norm.Normalize(v))
	got := FromColor(img.At(x, yMid))
	if !colorsEqual(got, want, 2.0/255) {
		t.Errorf("middle strip pixel (%d, %d) = %v, want %v", x, yMid, got, want)
	}
}
