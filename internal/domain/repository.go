package domain

import "io"

// ConfigReader интерфейс для чтения конфигурации
type ConfigReader interface {
	ReadConfig(path string) (*Config, error)
}

// TableWriter интерфейс для вывода результатов
type TableWriter interface {
	WriteTable(out io.Writer, table *Table, formatter func(float64) string) error
}
