package common

const (
	// MaxVendorPhotoCount represents the number of gallery photos a vendor can register.
	MaxVendorPhotoCount = 10
	// MaxListingPhotoCount represents the number of photos accepted per listing.
	MaxListingPhotoCount = 10
	// MaxReviewPhotoCount represents the number of photos accepted per review.
	MaxReviewPhotoCount = 5
	// MaxAboutRunes limits vendor about/description length to keep payloads sane.
	MaxAboutRunes = 2000
	// MaxJSONRequestBody limits JSON request bodies for API endpoints.
	MaxJSONRequestBody = 1 << 20
	// MaxUploadRequestBody limits image upload bodies, data-URL overhead included.
	MaxUploadRequestBody = 20 << 20
)
