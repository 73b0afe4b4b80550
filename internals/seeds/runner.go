package seeds

import (
	"log"
	"strings"

	"gorm.io/gorm"

	"hrms_backend/internals/configs"
	"hrms_backend/internals/seeds/employees"
)

// RunAllSeeds runs the seeders enabled in cfg. Failures are logged, not fatal.
func RunAllSeeds(db *gorm.DB, cfg configs.Config) {
	if path := strings.TrimSpace(cfg.SeedEmployeesFile); path != "" {
		if _, err := employees.SeedEmployeesFromJSON(db, path); err != nil {
			log.Printf("[SEED ERROR] employees: %v", err)
		}
	}
}
