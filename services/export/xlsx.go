// Package exportsvc renders table grids as spreadsheets.
package exportsvc

import (
	"io"
	"log"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/escola/core/table"
)

// MIMEXLSX is the content type of the documents written by WriteXLSX.
const MIMEXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const defaultSheet = "Sheet1"

// WriteXLSX writes grid to w as a single sheet workbook: a bold header row followed by
// one row per grid row.
func WriteXLSX(w io.Writer, sheet string, grid table.Grid) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("closing workbook: %v", err)
		}
	}()

	if sheet == "" {
		sheet = defaultSheet
	}
	if sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return errors.Wrapf(err, "naming sheet %q", sheet)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "creating header style")
	}

	if err = setRow(f, sheet, 1, grid.Headers); err != nil {
		return err
	}
	if err = f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return errors.Wrap(err, "styling header")
	}
	for i, row := range grid.Rows {
		if err = setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	if err = f.Write(w); err != nil {
		return errors.Wrap(err, "writing workbook")
	}
	return nil
}

func setRow(f *excelize.File, sheet string, n int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return errors.Wrapf(err, "row %d", n)
	}
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	if err = f.SetSheetRow(sheet, cell, &values); err != nil {
		return errors.Wrapf(err, "writing row %d", n)
	}
	return nil
}
