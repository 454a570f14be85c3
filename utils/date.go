package utils

import (
	"strings"
	"time"
)

// DaysBetween tính số ngày dương lịch giữa hai mốc thời gian (end - start),
// chỉ dùng để hiển thị kèm đơn nghỉ phép
func DaysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

// MonthNames liệt kê tên tháng hợp lệ cho filter bảng lương
var MonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthIndex trả về số tháng (1-12) từ tên tháng, không phân biệt hoa thường.
// Trả về 0 nếu tên tháng không hợp lệ.
func MonthIndex(name string) int {
	for i, m := range MonthNames {
		if strings.EqualFold(m, name) {
			return i + 1
		}
	}
	return 0
}
