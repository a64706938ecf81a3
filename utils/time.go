package utils

import "time"

// EcuadorTime возвращает текущее время в часовом поясе Эквадора
// (используется в кодах заказов и отметках фида каталога)
func EcuadorTime() time.Time {
	loc, err := time.LoadLocation("America/Guayaquil")
	if err != nil {
		loc = time.FixedZone("ECT", -5*60*60)
	}
	return time.Now().In(loc)
}
