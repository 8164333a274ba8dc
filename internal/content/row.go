package content

import (
	"strconv"
	"time"
)

// Row 一条查询结果，列名 -> 驱动返回的原始值
type Row map[string]any

// String 缺失或 NULL 返回空串
func (r Row) String(col string) string {
	s, _ := r.OptString(col)
	return s
}

// OptString 区分 NULL 与空串
func (r Row) OptString(col string) (string, bool) {
	switch v := r[col].(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case []byte:
		return string(v), true
	case time.Time:
		return v.UTC().Format(time.RFC3339), true
	case int64:
		return strconv.FormatInt(v, 10), true
	default:
		return "", false
	}
}

// Int 缺失或无法识别返回 0
func (r Row) Int(col string) int64 {
	n, _ := r.OptInt(col)
	return n
}

// OptInt NOT NULL 的 TINYINT/SMALLINT 列由驱动以 int8/int16/uint8/uint16 返回
func (r Row) OptInt(col string) (int64, bool) {
	switch v := r[col].(type) {
	case nil:
		return 0, false
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int16:
		return int64(v), true
	case int8:
		return int64(v), true
	case uint:
		return int64(v), true
	case uint64:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint8:
		return int64(v), true
	case float64:
		return int64(v), true
	case float32:
		return int64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case []byte:
		n, err := strconv.ParseInt(string(v), 10, 64)
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// Bool 0/1 整数列，非 0 即 true
func (r Row) Bool(col string) bool {
	return r.Int(col) != 0
}
