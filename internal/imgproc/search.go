package imgproc

import "math"

const (
	searchMinQuality = 35
	searchMaxQuality = 90
	searchRounds     = 7

	probeStep       = 5
	probeLimit      = 3
	probeMaxQuality = 95
)

// encodeAtQuality produces the encoded bytes for a single quality value.
// Keeping the codec behind this callback makes the search testable with a
// synthetic size curve.
type encodeAtQuality func(quality int) ([]byte, error)

type searchResult struct {
	data    []byte
	quality int
	fits    bool
}

// findBestQuality binary-searches quality in [35,90] for the highest value
// whose encoding fits maxBytes, assuming encoded size grows with quality.
// When no quality fits it fails open: the encoding at the smallest attempted
// quality is returned with fits=false instead of an error. When desiredBytes
// is set and the winner leaves slack below it, up to three +5 probes (capped
// at 95) spend the remaining budget on extra fidelity.
func findBestQuality(encode encodeAtQuality, maxBytes, desiredBytes int) (searchResult, error) {
	lo, hi := searchMinQuality, searchMaxQuality
	var best *searchResult

	for round := 0; round < searchRounds && lo <= hi; round++ {
		mid := int(math.Round(float64(lo+hi) / 2))
		data, err := encode(mid)
		if err != nil {
			return searchResult{}, err
		}
		if len(data) <= maxBytes {
			best = &searchResult{data: data, quality: mid, fits: true}
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	if best == nil {
		data, err := encode(lo)
		if err != nil {
			return searchResult{}, err
		}
		return searchResult{data: data, quality: lo, fits: false}, nil
	}

	if desiredBytes > 0 && len(best.data) < desiredBytes {
		for probe := 0; probe < probeLimit; probe++ {
			quality := best.quality + probeStep
			if quality > probeMaxQuality {
				quality = probeMaxQuality
			}
			if quality <= best.quality {
				break
			}
			data, err := encode(quality)
			if err != nil {
				return searchResult{}, err
			}
			if len(data) > maxBytes {
				break
			}
			best = &searchResult{data: data, quality: quality, fits: true}
			if len(data) >= desiredBytes {
				break
			}
		}
	}

	return *best, nil
}
