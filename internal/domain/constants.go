package domain

// DateFormat бизнес-формат дат в отчетах (DD/MM/YYYY)
// Формат времени суток закреплен в pkg/types.TimeString
const DateFormat = "02/01/2006"

// UnlimitedSlotCount sentinel-значение количества слотов для типов услуг,
// исключенных из учета вместимости (disregarded)
const UnlimitedSlotCount = 99

// DefaultTimezone бизнес-таймзона по умолчанию
// Сервис работает в одной настроенной таймзоне, без поддержки нескольких зон
const DefaultTimezone = "America/Sao_Paulo"
