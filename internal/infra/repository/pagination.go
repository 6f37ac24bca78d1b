package repository

import "math"

// page(1始まり) → offset。int に収まらないページは false（空ページ扱い）
func pageOffset(page int, limit int) (int, bool) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		return 0, false
	}
	if page-1 > math.MaxInt/limit {
		return 0, false
	}
	return (page - 1) * limit, true
}
