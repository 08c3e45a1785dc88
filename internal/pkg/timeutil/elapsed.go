/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-03 10:02:33
 * @LastEditTime: 2025-09-03 10:02:38
 * @LastEditors: 安知鱼
 */
package timeutil

import (
	"fmt"
	"time"
)

// ElapsedSince 把创建时间到 now 的间隔渲染成人类可读的相对时间。
// 断点按顺序求值，首个命中即返回；该字符串永远不落库，每次读取时重新计算。
func ElapsedSince(createdAt, now time.Time) string {
	since := now.Sub(createdAt)

	days := since.Hours() / 24

	switch {
	case days > 365:
		return plural(int(days/365), "year")
	case days > 30:
		return plural(int(days/30), "month")
	case days > 7:
		return plural(int(days/7), "week")
	case days >= 1:
		return plural(int(days), "day")
	case since.Hours() >= 1:
		return plural(int(since.Hours()), "hour")
	case since.Minutes() >= 1:
		return plural(int(since.Minutes()), "minute")
	default:
		return "just now"
	}
}

// Elapsed 是 ElapsedSince 以当前时钟为 now 的便捷形式。
func Elapsed(createdAt time.Time) string {
	return ElapsedSince(createdAt, time.Now())
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
