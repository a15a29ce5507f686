// seehuhn.de/go/gangsheet - print-ready sticker sheets
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package order reads line items from shop order exports and turns them
// into sticker requests.
package order

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Default column names, as used by Shopify order exports.
const (
	DefaultNameColumn     = "Lineitem name"
	DefaultQuantityColumn = "Lineitem quantity"
)

// Line is one line item of an order export.
type Line struct {
	// Name is the product name, for example "Custom Text - AB / Black".
	Name string

	// Quantity is the number of copies ordered.
	Quantity int

	// Row is the line number in the input file, starting at 1 for the
	// header row.
	Row int
}

// Columns selects the columns which contain the line item data.
// Empty fields select the default column names.
type Columns struct {
	Name     string
	Quantity string
}

// ErrNoColumn is returned by [ReadCSV] if a required column is missing.
var ErrNoColumn = errors.New("column not found")

// ReadCSV reads the line items from a CSV file with a header row.
//
// The name column is required.  If the quantity column is missing, or a
// quantity field is empty, one copy is assumed.  A quantity which is not
// a non-negative integer is an error.
func ReadCSV(r io.Reader, cols *Columns) ([]Line, error) {
	nameCol, qtyCol := DefaultNameColumn, DefaultQuantityColumn
	if cols != nil {
		if cols.Name != "" {
			nameCol = cols.Name
		}
		if cols.Quantity != "" {
			qtyCol = cols.Quantity
		}
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%q: %w", nameCol, ErrNoColumn)
	} else if err != nil {
		return nil, err
	}
	nameIdx, qtyIdx := -1, -1
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		switch strings.TrimSpace(h) {
		case nameCol:
			if nameIdx < 0 {
				nameIdx = i
			}
		case qtyCol:
			if qtyIdx < 0 {
				qtyIdx = i
			}
		}
	}
	if nameIdx < 0 {
		return nil, fmt.Errorf("%q: %w", nameCol, ErrNoColumn)
	}

	var lines []Line
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		row, _ := cr.FieldPos(0)

		line := Line{Quantity: 1, Row: row}
		if nameIdx < len(rec) {
			line.Name = rec[nameIdx]
		}
		if qtyIdx >= 0 && qtyIdx < len(rec) {
			field := strings.TrimSpace(rec[qtyIdx])
			if field != "" {
				q, err := parseQuantity(field)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", row, err)
				}
				line.Quantity = q
			}
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// MaxQuantity is the largest number of copies accepted for a single
// line item.
const MaxQuantity = 10_000

// parseQuantity accepts integers, and also floating point numbers without
// fractional part as written by some spreadsheet programs.
func parseQuantity(s string) (int, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("invalid quantity %q", s)
	}
	switch {
	case f < 0:
		return 0, fmt.Errorf("negative quantity %q", s)
	case f > MaxQuantity:
		return 0, fmt.Errorf("quantity %s exceeds the limit of %d", s, MaxQuantity)
	}
	return int(f), nil
}
