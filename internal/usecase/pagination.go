package usecase

import (
	"errors"
	"strconv"
)

// 一覧系で共通のページサイズ（設定で上書き可）
const DefaultPageSize = 5

// ページング情報
type Page struct {
	Current    int   `json:"current_page"`
	Size       int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

func newPage(current int, size int, total int64) Page {
	pages := 0
	if size > 0 {
		// ceil(total / size)
		pages = int((total + int64(size) - 1) / int64(size))
	}
	return Page{
		Current:    current,
		Size:       size,
		TotalItems: total,
		TotalPages: pages,
	}
}

// 数値でない・0以下のページは1にする。
// int を超える正の値は最大値に丸める（範囲外＝空ページ）
func ParsePage(raw string) int {
	p, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) && p > 0 {
		return p
	}
	if err != nil || p < 1 {
		return 1
	}
	return p
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func pageSizeOrDefault(size int) int {
	if size < 1 {
		return DefaultPageSize
	}
	return size
}
