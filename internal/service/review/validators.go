package review

func isValidRating(rating int64) bool {
	return rating >= 1 && rating <= 5
}
