package app

import (
	"fmt"
	"hartree-fock/internal/domain"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

const (
	ColumnGrid   = "x"
	ColumnSlater = "sto"
)

type OrbitalSampler struct {
	logger *zap.Logger
	config *domain.Config
}

func NewOrbitalSampler(logger *zap.Logger, config *domain.Config) *OrbitalSampler {
	return &OrbitalSampler{
		logger: logger,
		config: config,
	}
}

// Sample evaluates the Slater orbital and every configured STO-nG basis on
// Linspace(Start, Stop, Points). Deviations are max |cgf - sto| per basis.
func (s *OrbitalSampler) Sample() (*domain.Table, error) {
	grid, err := domain.Linspace(s.config.Start, s.config.Stop, s.config.Points)
	if err != nil {
		return nil, fmt.Errorf("build grid: %w", err)
	}
	s.logGrid(grid)

	sto := domain.EvalOnGrid(domain.SlaterOrbital{Zeta: s.config.Zeta}, grid)

	table := &domain.Table{
		Columns: []domain.Series{
			{Name: ColumnGrid, Values: grid},
			{Name: ColumnSlater, Values: sto},
		},
		Deviations: make(map[string]float64, len(s.config.Basis)),
	}

	for _, name := range s.config.Basis {
		cgf, err := domain.BasisByName(name, s.config.Zeta)
		if err != nil {
			return nil, fmt.Errorf("basis %q: %w", name, err)
		}
		if _, dup := table.Column(cgf.Name); dup {
			s.logger.Warn("Duplicate basis skipped", zap.String("basis", name))
			continue
		}

		values := domain.EvalOnGrid(cgf, grid)
		// Расстояние в норме L-inf: максимальное отклонение от STO
		deviation := floats.Distance(sto, values, math.Inf(1))

		table.Columns = append(table.Columns, domain.Series{Name: cgf.Name, Values: values})
		table.Deviations[cgf.Name] = deviation

		s.logger.Info("Basis sampled",
			zap.String("basis", cgf.Name),
			zap.Int("primitives", len(cgf.Primitives)),
			zap.Float64("max_deviation", deviation))
	}

	return table, nil
}

func (s *OrbitalSampler) logGrid(grid []float64) {
	fields := []zap.Field{
		zap.Float64("start", s.config.Start),
		zap.Float64("stop", s.config.Stop),
		zap.Int("points", len(grid)),
	}
	if step, err := domain.Step(s.config.Start, s.config.Stop, s.config.Points); err == nil {
		fields = append(fields, zap.Float64("step", step))
	}
	s.logger.Debug("Grid built", fields...)
}
