package repository

import "errors"

// 見つからないを統一
var ErrNotFound = errors.New("not found")

// 一意制約違反（二重送信の競合など）
var ErrDuplicate = errors.New("duplicate")
