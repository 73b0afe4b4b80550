package employees

import (
	"fmt"
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hrms_backend/internals/features/hrms/employees/dto"
	helper "hrms_backend/internals/helpers"
)

// SeedEmployeesFromJSON inserts employees from a JSON array of create
// payloads. Rows whose employee_id or email already exist are skipped.
// Returns the number of rows inserted.
func SeedEmployeesFromJSON(db *gorm.DB, filePath string) (int64, error) {
	log.Println("[SEED] Reading file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}

	var seeds []dto.CreateEmployeeRequest
	if err := sonic.Unmarshal(file, &seeds); err != nil {
		return 0, fmt.Errorf("decode seed file: %w", err)
	}

	var inserted int64
	err = db.Transaction(func(tx *gorm.DB) error {
		for i := range seeds {
			seeds[i].Normalize()
			if err := helper.ValidateStruct(seeds[i]); err != nil {
				log.Printf("[SEED] entry %d skipped: %v", i, err)
				continue
			}
			m := seeds[i].ToModel()
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&m)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				log.Printf("[SEED] employee %q already exists, skipped", m.EmployeeID)
				continue
			}
			inserted += res.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Printf("[SEED] %d employees inserted", inserted)
	return inserted, nil
}
