package database

import (
	"fmt"
	"log"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"sprout/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	// Run the crop_tasks rebuild BEFORE AutoMigrate so GORM doesn't
	// trip over the legacy single-date schema.
	if err := migrateCropTasksSplitDates(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Garden{},
		&entities.GrowSpace{},
		&entities.PlantType{},
		&entities.PlantProfile{},
		&entities.Variety{},
		&entities.SeedPacket{},
		&entities.Season{},
		&entities.UserSettings{},
		&entities.CropPlan{},
		&entities.CropTask{},
		&entities.JournalEntry{},
		&entities.GuideDoc{},
		&entities.GuideChunk{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// migrateCropTasksSplitDates rebuilds crop_tasks if it still has the old
// single `date` column: every task now carries a [start_date, end_date]
// window, and old rows become zero-width windows.
func migrateCropTasksSplitDates(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='crop_tasks'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}

	type colInfo struct {
		Cid  int
		Name string
	}
	var cols []colInfo
	if err := db.Raw(`PRAGMA table_info(crop_tasks)`).Scan(&cols).Error; err != nil {
		return fmt.Errorf("table_info: %w", err)
	}
	hasDate, hasStart := false, false
	for _, c := range cols {
		switch strings.ToLower(c.Name) {
		case "date":
			hasDate = true
		case "start_date":
			hasStart = true
		}
	}
	if !hasDate || hasStart {
		// already on the windowed schema
		return nil
	}

	createSQL := `
CREATE TABLE crop_tasks_new (
    task_id INTEGER PRIMARY KEY AUTOINCREMENT,
    plan_id INTEGER,
    season_id INTEGER,
    type TEXT,
    title TEXT,
    start_date DATETIME,
    end_date DATETIME,
    qty_target INTEGER,
    qty_done INTEGER,
    color TEXT,
    status TEXT,
    created_at DATETIME,
    updated_at DATETIME
);
`
	// old installs may lack some of the newer columns
	oldCols := map[string]bool{}
	for _, c := range cols {
		oldCols[strings.ToLower(c.Name)] = true
	}
	sel := func(name string) string {
		if oldCols[name] {
			return name
		}
		return "NULL AS " + name
	}
	copySQL := fmt.Sprintf(`
INSERT INTO crop_tasks_new (plan_id, season_id, type, title, start_date, end_date, qty_target, qty_done, color, status, created_at, updated_at)
SELECT %s, %s, %s, %s, date, date, %s, %s, %s, %s, %s, %s FROM crop_tasks;
`,
		sel("plan_id"), sel("season_id"), sel("type"), sel("title"),
		sel("qty_target"), sel("qty_done"), sel("color"), sel("status"),
		sel("created_at"), sel("updated_at"),
	)

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`PRAGMA foreign_keys=OFF`).Error; err != nil {
			return err
		}
		if err := tx.Exec(createSQL).Error; err != nil {
			return err
		}
		if err := tx.Exec(copySQL).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DROP TABLE crop_tasks`).Error; err != nil {
			return err
		}
		if err := tx.Exec(`ALTER TABLE crop_tasks_new RENAME TO crop_tasks`).Error; err != nil {
			return err
		}
		return tx.Exec(`PRAGMA foreign_keys=ON`).Error
	})
}
