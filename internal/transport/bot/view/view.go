// Package view тексты и шаблоны сообщений бота.
package view

const (
	StartMessage = `👋 <b>Deal Factory</b>

Команды:
/status - состояние сканера и базы
/briefing - сводка дня
/hotdeals - сделки от 80 баллов
/properties - все объекты
/analyze - пересчитать скоринг
/startscan, /stopscan - фоновый сканер
/watchzip, /unwatchzip, /setwatch, /watchlist, /clearwatch - фильтр по индексам`

	StatusTemplate = `📊 <b>Статус системы</b>

🔍 <b>Сканер:</b> %s
⏱ <b>Интервал:</b> %s
📮 <b>Индексы:</b> %s
🏠 <b>Объектов в базе:</b> %d
🔥 <b>Горячих сделок:</b> %d
`

	ScannerRunning = "🟢 работает"
	ScannerStopped = "🔴 остановлен"
	AllZipCodes    = "все"

	StoreError       = "❌ Ошибка получения данных"
	NoProperties     = "📭 В базе нет объектов. Запустите /scrape через API."
	NoHotDeals       = "📭 Горячих сделок нет. Снизьте порог или добавьте объекты."
	AnalyzeTemplate  = "✅ Проанализировано объектов: %d\n\n"
	BriefingTemplate = "🗓 <b>Сводка на %s</b>\nВсего объектов: %d\n\n"

	PropertiesPageTemplate = "📚 <b>Объекты</b> (Стр. %d/%d)\n\n"
	PropertyItemTemplate   = "%d. <b>%s</b>\n   %s · балл %s\n"

	ScannerAlreadyRunning = "Сканер уже запущен!"
	ScannerNotRunning     = "Сканер не запущен!"
	ScannerStarted        = "Сканер запущен!"
	ScannerStoppedMessage = "Сканер остановлен!"
	ScannerStartError     = "Ошибка запуска сканера: %v"

	WatchUsage       = "❌ Использование: /watchzip <code>19122</code>"
	UnwatchUsage     = "❌ Использование: /unwatchzip <code>19122</code>"
	SetWatchUsage    = "❌ Использование: /setwatch <code>19121</code> <code>19122</code> ..."
	InvalidZip       = "❌ Неверный индекс: %s"
	ZipAdded         = "✅ Индекс <code>%s</code> добавлен"
	ZipAlreadyWatch  = "⚠️ Индекс <code>%s</code> уже в списке"
	ZipRemoved       = "✅ Индекс <code>%s</code> удалён"
	ZipNotWatched    = "⚠️ Индекс <code>%s</code> не найден в списке"
	WatchListEmpty   = "📋 <b>Список индексов пуст</b>\n\nУведомления приходят по всем объектам."
	WatchListHeader  = "📋 <b>Отслеживаемые индексы (%d):</b>\n\n"
	WatchListCleared = "✅ Список очищен\n\n💡 Уведомления приходят по всем объектам"
)
