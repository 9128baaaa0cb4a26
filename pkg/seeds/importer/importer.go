// Package importer reads seed packets out of an .xlsx inventory sheet.
// Vendors and spreadsheet templates disagree on column names, so headers
// are matched loosely the same way the catalog CSV loader does.
package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"sprout/entities"
)

func normHeader(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// ReadXLSX parses the first sheet. Required column: a plant name. Rows
// without one are skipped, not errors.
func ReadXLSX(r io.Reader, uid string) ([]entities.SeedPacket, error) {
	x, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx has no sheets")
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	hmap := map[string]int{}
	for i, h := range rows[0] {
		hmap[normHeader(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[normHeader(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cPlant := findAny("Plant", "PlantName", "Crop", "Name")
	cVariety := findAny("Variety", "Cultivar", "VarietyName")
	cVendor := findAny("Vendor", "Source", "Supplier")
	cYear := findAny("PackedFor", "Year", "PackedForYear")
	cCount := findAny("SeedCount", "Count", "Qty", "Seeds")
	cNotes := findAny("Notes", "Note", "Remark")

	if cPlant == -1 {
		return nil, fmt.Errorf("no plant name column; found headers: %v", rows[0])
	}

	var out []entities.SeedPacket
	for _, rec := range rows[1:] {
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		plant := get(cPlant)
		if plant == "" {
			continue
		}
		p := entities.SeedPacket{
			UserID:      uid,
			PlantName:   plant,
			VarietyName: get(cVariety),
			Vendor:      get(cVendor),
			Notes:       get(cNotes),
		}
		if y, err := strconv.Atoi(get(cYear)); err == nil {
			p.PackedFor = y
		}
		if n, err := strconv.Atoi(get(cCount)); err == nil {
			p.SeedCount = &n
		}
		out = append(out, p)
	}
	return out, nil
}
