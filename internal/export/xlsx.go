package export

import (
	"io"

	"github.com/tgienger/ctrack/internal/models"
	"github.com/xuri/excelize/v2"
)

// SheetName is the single worksheet written by XLSX
const SheetName = "Campaigns"

// XLSX writes an Excel workbook with a header row and one row per campaign
type XLSX struct{}

func (XLSX) Format() Format   { return FormatXLSX }
func (XLSX) Filename() string { return "campaigns.xlsx" }

func (XLSX) Export(w io.Writer, campaigns []models.Campaign) error {
	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	if err := xl.SetSheetName(xl.GetSheetName(0), SheetName); err != nil {
		return err
	}

	header := Header
	if err := xl.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}
	for i, c := range campaigns {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		record := row(c)
		if err := xl.SetSheetRow(SheetName, cell, &record); err != nil {
			return err
		}
	}

	_, err := xl.WriteTo(w)
	return err
}
