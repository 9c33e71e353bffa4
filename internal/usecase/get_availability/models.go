package get_availability

import "time"

// Request модель запроса календаря доступности.
// Незаполненные границы диапазона подставляются по умолчанию:
// от сегодняшнего дня на DefaultCalendarRangeDays вперед.
type Request struct {
	From *time.Time // Начало диапазона (опционально)
	To   *time.Time // Конец диапазона включительно (опционально)
}

// Day день календаря с классификацией доступности
type Day struct {
	Fecha time.Time // Дата
	Band  string    // Классификация: OPEN, LIMITED, FULL, PAST
	Color string    // Цвет для виджета календаря: verde, amarillo, rojo, gris
}

// Response модель ответа с календарем доступности
type Response struct {
	From time.Time // Начало диапазона
	To   time.Time // Конец диапазона
	Days []Day     // Дни в хронологическом порядке, один на каждую дату диапазона
}
