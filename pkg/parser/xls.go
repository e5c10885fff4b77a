package parser

import (
	"bytes"
	"fmt"

	"github.com/extrame/xls"

	"github.com/ulugbek-dev/tanga/pkg/models"
)

// ParseXLSStatement reads a legacy XLS workbook export and feeds its cell
// grid through the same header mapping and row extraction as the CSV
// statement extractor. Workbooks from the local banks carry cp1251 text.
func (p *Parser) ParseXLSStatement(data []byte) ([]*models.Transaction, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "cp1251")
	if err != nil {
		return nil, fmt.Errorf("error creating workbook: %w", err)
	}

	rows := workbook.ReadAllCells(1000)
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in sheet")
	}

	// Workbooks open with decoration rows (bank name, export period); the
	// header is the first row where at least two cells map to known columns.
	start := -1
	for i, row := range rows {
		if len(mapHeader(row)) >= 2 {
			start = i
			break
		}
	}
	if start == -1 {
		p.logger.Debug("no recognizable header row in workbook")
		return nil, nil
	}

	return p.extractStatementRows(rows[start:]), nil
}
