package analytics

import "github.com/alligatorO15/expense-analytics/internal/models"

type EventKind int

const (
	// EventWindowCommitted окно заменено целиком (построение, расширение, фильтр, сортировка)
	EventWindowCommitted EventKind = iota
	// EventCustomRangeRequested окно очищено, ждем диапазон от RangePicker
	EventCustomRangeRequested
	// EventCategorySelected выбрана строка категории
	EventCategorySelected
)

func (k EventKind) String() string {
	switch k {
	case EventWindowCommitted:
		return "window_committed"
	case EventCustomRangeRequested:
		return "custom_range_requested"
	case EventCategorySelected:
		return "category_selected"
	default:
		return "unknown"
	}
}

type Event struct {
	Kind          EventKind
	Period        models.TimePeriod
	SelectedIndex int
	WindowLength  int
	Detail        *CategoryDetail
}

// Observer получает события синхронно, в порядке подписки, один раз на каждую завершенную операцию.
// Промежуточные состояния окна наружу не видны
type Observer interface {
	OnAnalyticsEvent(event Event)
}

type ObserverFunc func(event Event)

func (f ObserverFunc) OnAnalyticsEvent(event Event) {
	f(event)
}
