package configs

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ConnectionResult is the outcome of a connection probe. Probes never panic
// and never bubble raw driver errors; everything is folded into this shape.
type ConnectionResult struct {
	Success bool
	Error   string
}

func OpenConnection() (*gorm.DB, error) {
	if !IsDatabaseConfigured() {
		return nil, fmt.Errorf("database not configured")
	}

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		LoadENV.DBUser,
		LoadENV.DBPassword,
		LoadENV.DBHost,
		LoadENV.DBPort,
		LoadENV.DBName,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}

// TestConnection runs a lightweight existence check against the products
// table. Failure means the app keeps running in demo mode.
func TestConnection(db *gorm.DB) ConnectionResult {
	if db == nil {
		return ConnectionResult{Success: false, Error: "database not configured"}
	}

	var count int64
	if err := db.Table("products").Limit(1).Count(&count).Error; err != nil {
		return ConnectionResult{Success: false, Error: err.Error()}
	}
	return ConnectionResult{Success: true}
}
