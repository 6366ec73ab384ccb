package pagination

// Window reports the skip/limit a caller asked for without altering what is
// forwarded. Absent or negative skip reads as 0. Absent or non-positive limit
// reads as 0, meaning the backend default applies.
func Window(skip, limit *int) (int, int) {
	requestedSkip := 0
	if skip != nil && *skip > 0 {
		requestedSkip = *skip
	}

	requestedLimit := 0
	if limit != nil && *limit > 0 {
		requestedLimit = *limit
	}

	return requestedSkip, requestedLimit
}

// Page returns the 1-based page a window starts on.
func Page(skip, limit int) int {
	if limit <= 0 {
		return 1
	}

	return skip/limit + 1
}
