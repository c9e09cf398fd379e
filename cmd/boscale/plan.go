package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/thalesfsp/boscale"
)

var (
	planConfig  string
	planOutput  string
	planDesign  string
	planSamples int
	planSeed    uint64
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a sampling plan in real units",
	Long: `Generate a DOE sampling plan from a TOML experiment definition.

The plan is drawn in the unit hypercube (full-factorial over the configured
level counts, or Latin hypercube with --samples points) and converted to real
units per variable. Variables marked log = true are sampled uniformly in
log10 space. The output format follows the file extension: .xlsx writes a
workbook, anything else CSV.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		exp, err := loadExperiment(planConfig)
		if err != nil {
			return err
		}

		logger.Debug("loaded experiment", "title", exp.Title, "variables", len(exp.Variables))

		var unit [][]float64

		switch planDesign {
		case "fullfact":
			levels := make([]int, len(exp.Variables))

			for i, v := range exp.Variables {
				if v.Levels < 2 {
					return fmt.Errorf("variable %q needs at least 2 levels for a full-factorial design", v.Name)
				}

				levels[i] = v.Levels
			}

			unit, err = boscale.FullFactorial(levels)
		case "lhs":
			unit, err = boscale.LatinHypercube(len(exp.Variables), planSamples, planSeed)
		default:
			return fmt.Errorf("unknown design %q (want fullfact or lhs)", planDesign)
		}

		if err != nil {
			return err
		}

		plan := toRealUnits(unit, exp.Variables)

		names := make([]string, len(exp.Variables))
		for i, v := range exp.Variables {
			names[i] = v.Name
		}

		if err := writePlan(planOutput, names, plan); err != nil {
			return err
		}

		logger.Info("wrote sampling plan",
			"design", planDesign,
			"rows", len(plan),
			"output", planOutput,
		)

		return nil
	},
}

func init() {
	planCmd.Flags().StringVarP(&planConfig, "config", "c", "experiment.toml", "experiment definition (TOML)")
	planCmd.Flags().StringVarP(&planOutput, "output", "o", "plan.csv", "output file (.csv or .xlsx)")
	planCmd.Flags().StringVar(&planDesign, "design", "fullfact", "sampling design: fullfact or lhs")
	planCmd.Flags().IntVar(&planSamples, "samples", 25, "number of points for lhs designs")
	planCmd.Flags().Uint64Var(&planSeed, "seed", 0, "random seed for lhs designs")

	rootCmd.AddCommand(planCmd)
}

// toRealUnits converts a unit-hypercube plan into real units column by
// column. Log-flagged variables are mapped through log10 bounds so the unit
// samples spread uniformly over decades rather than linearly.
func toRealUnits(unit [][]float64, vars []Variable) [][]float64 {
	rows := len(unit)

	out := make([][]float64, rows)
	for k := range out {
		out[k] = make([]float64, len(vars))
	}

	for i, v := range vars {
		col := make([]float64, rows)
		for k := range unit {
			col[k] = unit[k][i]
		}

		var real []float64

		if v.Log {
			r := boscale.Range{Min: math.Log10(v.Min), Max: math.Log10(v.Max)}

			real = boscale.InverseUnitScaleVector(col, r)
			for k := range real {
				real[k] = math.Pow(10, real[k])
			}
		} else {
			real = boscale.InverseUnitScaleVector(col, boscale.Range{Min: v.Min, Max: v.Max})
		}

		for k := range real {
			out[k][i] = real[k]
		}
	}

	return out
}

// writePlan writes the plan table to path, picking the format from the
// extension.
func writePlan(path string, names []string, plan [][]float64) error {
	if filepath.Ext(path) == ".xlsx" {
		return writeXLSX(path, names, plan)
	}

	return writeCSV(path, names, plan)
}

func writeCSV(path string, names []string, plan [][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(names); err != nil {
		return err
	}

	rec := make([]string, len(names))

	for _, row := range plan {
		for i, v := range row {
			rec[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}

		if err := w.Write(rec); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}

func writeXLSX(path string, names []string, plan [][]float64) error {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(names))
	for i, n := range names {
		header[i] = n
	}

	if err := f.SetSheetRow("Sheet1", "A1", &header); err != nil {
		return err
	}

	cells := make([]interface{}, len(names))

	for k, row := range plan {
		for i, v := range row {
			cells[i] = v
		}

		cell, err := excelize.CoordinatesToCellName(1, k+2)
		if err != nil {
			return err
		}

		if err := f.SetSheetRow("Sheet1", cell, &cells); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
