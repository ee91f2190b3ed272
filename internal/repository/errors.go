package repository

import "errors"

// 見つかりませんを統一
var ErrNotFound = errors.New("not found")

// 一意制約違反（email重複・同名商品など）
var ErrConflict = errors.New("conflict")
