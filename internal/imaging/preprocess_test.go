package imaging

import (
	"image"
	"image/color"
	"testing"
)

// createGradientImage builds a grayscale test image whose left half is
// dark and right half is light.
func createGradientImage(w, h int, dark, light uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := dark
			if x >= w/2 {
				v = light
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img
}

func TestPreprocess_Dimensions(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 40, 30))
	out := Preprocess(img, DefaultContrast)

	if out.Bounds().Dx() != 40 || out.Bounds().Dy() != 30 {
		t.Errorf("dimensions: got %dx%d, want 40x30", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestPreprocess_ContrastSpread(t *testing.T) {
	// Dark 100, light 150, mean 125. Factor 2 pushes them to 75 and 175.
	img := createGradientImage(40, 20, 100, 150)
	out := Preprocess(img, 2.0)

	if got := out.GrayAt(0, 0).Y; got != 75 {
		t.Errorf("dark half: got %d, want 75", got)
	}
	if got := out.GrayAt(39, 0).Y; got != 175 {
		t.Errorf("light half: got %d, want 175", got)
	}
}

func TestPreprocess_Clamps(t *testing.T) {
	img := createGradientImage(40, 20, 10, 245)
	out := Preprocess(img, 2.0)

	if got := out.GrayAt(0, 0).Y; got != 0 {
		t.Errorf("dark half should clamp to 0, got %d", got)
	}
	if got := out.GrayAt(39, 0).Y; got != 255 {
		t.Errorf("light half should clamp to 255, got %d", got)
	}
}

func TestPreprocess_FactorOneIsIdentity(t *testing.T) {
	img := createGradientImage(20, 10, 80, 200)
	out := Preprocess(img, 1.0)

	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			if out.GrayAt(x, y).Y != img.GrayAt(x, y).Y {
				t.Fatalf("pixel (%d,%d) changed under factor 1.0", x, y)
			}
		}
	}
}

func TestPreprocess_UniformImageUnchanged(t *testing.T) {
	// Every pixel equals the mean, so the contrast stretch is a no-op.
	img := image.NewGray(image.Rect(0, 0, 10, 10))
	for i := range img.Pix {
		img.Pix[i] = 128
	}
	out := Preprocess(img, 2.0)
	for i, v := range out.Pix {
		if v != 128 {
			t.Fatalf("pixel %d changed to %d on uniform image", i, v)
		}
	}
}

func TestPreprocess_DefaultFactor(t *testing.T) {
	img := createGradientImage(40, 20, 100, 150)
	explicit := Preprocess(img, DefaultContrast)
	implicit := Preprocess(img, 0)

	for i := range explicit.Pix {
		if explicit.Pix[i] != implicit.Pix[i] {
			t.Fatal("factor 0 does not select the default contrast")
		}
	}
}

func TestExpandRGB(t *testing.T) {
	gray := createGradientImage(10, 10, 50, 200)
	out := ExpandRGB(gray)

	r, g, b, a := out.At(0, 0).RGBA()
	if r>>8 != 50 || g>>8 != 50 || b>>8 != 50 || a>>8 != 255 {
		t.Errorf("dark pixel: got (%d,%d,%d,%d), want (50,50,50,255)", r>>8, g>>8, b>>8, a>>8)
	}

	r, g, b, _ = out.At(9, 0).RGBA()
	if r>>8 != 200 || g>>8 != 200 || b>>8 != 200 {
		t.Errorf("light pixel: got (%d,%d,%d), want (200,200,200)", r>>8, g>>8, b>>8)
	}
}

func TestUpscale(t *testing.T) {
	small := image.NewGray(image.Rect(0, 0, 100, 50))

	out := Upscale(small, 400)
	if out.Bounds().Dx() != 400 {
		t.Errorf("width: got %d, want 400", out.Bounds().Dx())
	}
	if out.Bounds().Dy() != 200 {
		t.Errorf("height: got %d, want 200 (aspect preserved)", out.Bounds().Dy())
	}
}

func TestUpscale_PassThrough(t *testing.T) {
	big := image.NewGray(image.Rect(0, 0, 1200, 900))
	if out := Upscale(big, 400); out != image.Image(big) {
		t.Error("already-wide photo should pass through untouched")
	}
	if out := Upscale(big, 0); out != image.Image(big) {
		t.Error("minWidth 0 should disable upscaling")
	}
}
