package errors

// MaxDPI bounds the raster resolution. An A4 page at this resolution is
// already above 200 megapixels.
const MaxDPI = 2400

// ValidatePageCount checks that at least one output page was requested.
func ValidatePageCount(n int) error {
	if n < 1 {
		return New(ErrCodeInvalidArgument, "page count must be at least 1, got %d", n)
	}
	return nil
}

// ValidateDPI checks that the output resolution is positive and bounded.
func ValidateDPI(dpi int) error {
	if dpi < 1 {
		return New(ErrCodeInvalidArgument, "dpi must be at least 1, got %d", dpi)
	}
	if dpi > MaxDPI {
		return New(ErrCodeInvalidArgument, "dpi too large (max %d), got %d", MaxDPI, dpi)
	}
	return nil
}

// ValidateMinSize checks the recursion floor. Zero is allowed and recurses
// until the hole can no longer be resolved.
func ValidateMinSize(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidArgument, "min size cannot be negative, got %d", n)
	}
	return nil
}
