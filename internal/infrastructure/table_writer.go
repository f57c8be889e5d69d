package infrastructure

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"hartree-fock/internal/domain"
)

// FmtFunc formats one value for output.
type FmtFunc = func(float64) string

var _ domain.TableWriter = (*TXTTableWriter)(nil)

type TXTTableWriter struct {
	logger *zap.Logger
}

func NewTXTTableWriter(logger *zap.Logger) *TXTTableWriter {
	return &TXTTableWriter{logger: logger}
}

// WriteTable пишет таблицу в w: строка заголовков, затем по строке на точку сетки
func (w *TXTTableWriter) WriteTable(out io.Writer, table *domain.Table, formatter FmtFunc) error {
	writer := bufio.NewWriter(out)

	if _, err := fmt.Fprintln(writer, strings.Join(table.Names(), "\t")); err != nil {
		return err
	}

	row := make([]string, len(table.Columns))
	for i, rows := 0, table.Rows(); i < rows; i++ {
		for j, column := range table.Columns {
			row[j] = formatter(column.Values[i])
		}
		if _, err := fmt.Fprintln(writer, strings.Join(row, "\t")); err != nil {
			return err
		}
	}

	if err := writer.Flush(); err != nil {
		return err
	}

	w.logger.Debug("Table written",
		zap.Int("rows", table.Rows()),
		zap.Int("cols", len(table.Columns)))
	return nil
}
