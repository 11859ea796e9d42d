package imaging

import (
	"image"
	"testing"
)

func TestParseRegion(t *testing.T) {
	tests := []struct {
		input   string
		want    Region
		wantErr bool
	}{
		{"10,20,110,70", Region{10, 20, 110, 70}, false},
		{" 1, 2, 3, 4 ", Region{1, 2, 3, 4}, false},
		{"10,20,110", Region{}, true},
		{"10,20,110,70,5", Region{}, true},
		{"a,b,c,d", Region{}, true},
		{"", Region{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRegion(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRegion(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseRegion(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCrop(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 100, 100))

	out, err := Crop(img, Region{10, 10, 60, 40})
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	if out.Bounds().Dx() != 50 || out.Bounds().Dy() != 30 {
		t.Errorf("dimensions: got %dx%d, want 50x30", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestCrop_Invalid(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 100, 100))

	tests := []struct {
		name string
		r    Region
	}{
		{"outside bounds", Region{-1, 0, 50, 50}},
		{"past right edge", Region{0, 0, 101, 50}},
		{"inverted x", Region{60, 0, 50, 50}},
		{"zero area", Region{50, 50, 50, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Crop(img, tt.r); err == nil {
				t.Error("Crop should fail")
			}
		})
	}
}
