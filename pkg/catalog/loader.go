package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"sprout/entities"
	"sprout/pkg/catalog/repository"
)

// ProfileRow is one parsed line of the bundled timing defaults CSV.
type ProfileRow struct {
	PlantType string
	Category  string
	Profile   entities.PlantProfile
}

// LoadProfilesCSV reads plant-profile timing defaults from a CSV. Header
// matching is loose: case, spaces, dashes, underscores and a UTF-8 BOM
// are all ignored, and the common column names have aliases.
func LoadProfilesCSV(path string) ([]ProfileRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	head, err := cr.Read()
	if err != nil {
		return nil, err
	}

	norm := func(s string) string {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "\uFEFF")
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "-", "")
		s = strings.ReplaceAll(s, "_", "")
		return s
	}
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cPlant := findAny("PlantType", "plant", "crop", "name")
	cCat := findAny("Category", "group")
	cSIW := findAny("StartIndoorsWeeks", "weeks_to_start_indoors", "indoorweeks")
	cSIWMin := findAny("StartIndoorsWeeksMin", "indoorweeksmin")
	cSIWMax := findAny("StartIndoorsWeeksMax", "indoorweeksmax")
	cTW := findAny("TransplantWeeksAfterFrost", "transplantweeks")
	cTWMin := findAny("TransplantWeeksAfterFrostMin", "transplantweeksmin")
	cTWMax := findAny("TransplantWeeksAfterFrostMax", "transplantweeksmax")
	cSW := findAny("SowWeeksFromFrost", "sowweeks", "directsowweeks")
	cSWMin := findAny("SowWeeksFromFrostMin", "sowweeksmin")
	cSWMax := findAny("SowWeeksFromFrostMax", "sowweeksmax")
	cDTM := findAny("DaysToMaturity", "dtm", "maturitydays")
	cDTMMin := findAny("DaysToMaturityMin", "dtmmin")
	cDTMMax := findAny("DaysToMaturityMax", "dtmmax")
	cTrellis := findAny("NeedsTrellis", "trellis", "support")

	if cPlant == -1 {
		return nil, fmt.Errorf("profiles CSV missing a plant type column; headers: %v", head)
	}

	var rows []ProfileRow
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		optInt := func(idx int) *int {
			if v, err := strconv.Atoi(get(idx)); err == nil {
				return &v
			}
			return nil
		}

		name := get(cPlant)
		if name == "" {
			continue
		}
		var trellis *bool
		if s := strings.ToLower(get(cTrellis)); s != "" {
			b := s == "true" || s == "yes" || s == "1"
			trellis = &b
		}
		rows = append(rows, ProfileRow{
			PlantType: name,
			Category:  get(cCat),
			Profile: entities.PlantProfile{
				Name:                         name + " (default)",
				StartIndoorsWeeks:            optInt(cSIW),
				StartIndoorsWeeksMin:         optInt(cSIWMin),
				StartIndoorsWeeksMax:         optInt(cSIWMax),
				TransplantWeeksAfterFrost:    optInt(cTW),
				TransplantWeeksAfterFrostMin: optInt(cTWMin),
				TransplantWeeksAfterFrostMax: optInt(cTWMax),
				SowWeeksFromFrost:            optInt(cSW),
				SowWeeksFromFrostMin:         optInt(cSWMin),
				SowWeeksFromFrostMax:         optInt(cSWMax),
				DaysToMaturity:               optInt(cDTM),
				DaysToMaturityMin:            optInt(cDTMMin),
				DaysToMaturityMax:            optInt(cDTMMax),
				NeedsTrellis:                 trellis,
			},
		})
	}
	return rows, nil
}

// SeedDefaults inserts the bundled catalog on first boot. A non-empty
// plant_types table means the user already has data; do nothing then.
func SeedDefaults(repo repository.CatalogRepository, rows []ProfileRow) error {
	n, err := repo.CountPlantTypes()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, row := range rows {
		pt := &entities.PlantType{Name: row.PlantType, Category: row.Category}
		if err := repo.CreatePlantType(pt); err != nil {
			return err
		}
		p := row.Profile
		p.PlantTypeID = pt.PlantTypeID
		if err := repo.CreateProfile(&p); err != nil {
			return err
		}
	}
	log.Printf("[catalog] seeded %d plant types from CSV", len(rows))
	return nil
}
