// Package dateutil содержит вспомогательные функции для работы с календарными
// датами отчётов: парсинг с молчаливым откатом на значение по умолчанию,
// нормализация периода и разница в днях. Все вычисления ведутся с точностью
// до календарного дня в UTC.
package dateutil

import "time"

// ISO формат дат, используемый во входных параметрах и хранилище.
const ISO = "2006-01-02"

// Day обрезает время до начала календарного дня в UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseOrFallback парсит дату в формате 2006-01-02. При любой ошибке парсинга
// возвращает fallback, обрезанный до дня; ошибка наружу не возвращается.
func ParseOrFallback(value string, fallback time.Time) time.Time {
	parsed, err := time.Parse(ISO, value)
	if err != nil {
		return Day(fallback)
	}
	return Day(parsed)
}

// NormalizeRange переставляет границы периода, если начало позже конца.
func NormalizeRange(start, end time.Time) (time.Time, time.Time) {
	if start.After(end) {
		return end, start
	}
	return start, end
}

// DaysBetween возвращает разницу между датами в календарных днях.
// Результат отрицателен, если b раньше a.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)) / (24 * time.Hour))
}

// MonthBounds возвращает первый и последний день календарного месяца даты t.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}
