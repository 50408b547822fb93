package imgproc

import (
	"fmt"
	"testing"
)

// linearCurve fakes an encoder whose output grows monotonically with
// quality: size = quality * bytesPerQuality.
func linearCurve(bytesPerQuality int, calls *[]int) encodeAtQuality {
	return func(quality int) ([]byte, error) {
		if calls != nil {
			*calls = append(*calls, quality)
		}
		return make([]byte, quality*bytesPerQuality), nil
	}
}

func TestFindBestQualityPicksHighestFittingQuality(t *testing.T) {
	tests := []struct {
		name        string
		maxBytes    int
		wantQuality int
	}{
		{name: "ceiling at 60", maxBytes: 60_000, wantQuality: 60},
		{name: "ceiling at 90", maxBytes: 90_000, wantQuality: 90},
		{name: "ceiling between steps", maxBytes: 72_500, wantQuality: 72},
		{name: "ceiling at floor", maxBytes: 35_000, wantQuality: 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := findBestQuality(linearCurve(1000, nil), tt.maxBytes, 0)
			if err != nil {
				t.Fatalf("findBestQuality: %v", err)
			}
			if !result.fits {
				t.Fatalf("expected a fitting result, got fits=false quality=%d", result.quality)
			}
			if result.quality != tt.wantQuality {
				t.Errorf("quality = %d, want %d", result.quality, tt.wantQuality)
			}
			if len(result.data) > tt.maxBytes {
				t.Errorf("size %d exceeds ceiling %d", len(result.data), tt.maxBytes)
			}
		})
	}
}

func TestFindBestQualityFailsOpenWhenNothingFits(t *testing.T) {
	var calls []int
	result, err := findBestQuality(linearCurve(1000, &calls), 10_000, 0)
	if err != nil {
		t.Fatalf("findBestQuality: %v", err)
	}
	if result.fits {
		t.Fatal("expected fits=false for unreachable ceiling")
	}
	if result.quality != searchMinQuality {
		t.Errorf("fail-open quality = %d, want %d", result.quality, searchMinQuality)
	}
	if len(result.data) != searchMinQuality*1000 {
		t.Errorf("fail-open size = %d, want %d", len(result.data), searchMinQuality*1000)
	}
}

func TestFindBestQualityProbesUpwardTowardDesiredBytes(t *testing.T) {
	// Best in [35,90] is 90 at 90k, well under the 150k soft target, so the
	// probes should push on to the 95 cap.
	result, err := findBestQuality(linearCurve(1000, nil), 200_000, 150_000)
	if err != nil {
		t.Fatalf("findBestQuality: %v", err)
	}
	if result.quality != probeMaxQuality {
		t.Errorf("quality = %d, want probe cap %d", result.quality, probeMaxQuality)
	}
	if !result.fits {
		t.Error("probed result must still satisfy the ceiling")
	}
}

func TestFindBestQualityProbeNeverAcceptsOversized(t *testing.T) {
	// Sizes jump over the ceiling past quality 60: probes above it must be
	// rejected and the pre-probe winner kept.
	curve := func(quality int) ([]byte, error) {
		if quality > 60 {
			return make([]byte, 500_000), nil
		}
		return make([]byte, quality*1000), nil
	}

	result, err := findBestQuality(curve, 60_000, 100_000)
	if err != nil {
		t.Fatalf("findBestQuality: %v", err)
	}
	if result.quality != 60 {
		t.Errorf("quality = %d, want 60", result.quality)
	}
	if len(result.data) != 60_000 {
		t.Errorf("size = %d, want 60000", len(result.data))
	}
}

func TestFindBestQualityIsBounded(t *testing.T) {
	var calls []int
	if _, err := findBestQuality(linearCurve(1000, &calls), 60_000, 55_000); err != nil {
		t.Fatalf("findBestQuality: %v", err)
	}
	if len(calls) > searchRounds+probeLimit {
		t.Errorf("%d encode calls, want at most %d", len(calls), searchRounds+probeLimit)
	}
}

func TestFindBestQualityPropagatesEncoderError(t *testing.T) {
	wantErr := fmt.Errorf("codec exploded")
	_, err := findBestQuality(func(int) ([]byte, error) { return nil, wantErr }, 60_000, 0)
	if err == nil {
		t.Fatal("expected encoder error to propagate")
	}
}
