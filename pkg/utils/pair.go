package utils

// NormalizePair orders a pair of user ids so that (a,b) and (b,a) map to the
// same tuple. Direct-conversation uniqueness is defined over the unordered
// pair, matching the unique index on (least(user_one, user_two),
// greatest(user_one, user_two)).
func NormalizePair(a, b int64) (int64, int64) {
	if a > b {
		return b, a
	}
	return a, b
}
