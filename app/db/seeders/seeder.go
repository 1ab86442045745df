package seeders

import (
	"github.com/srikanth99-bot/looom-shop/app/db/fakers"
	"gorm.io/gorm"
)

type Seeder struct {
	Seeder interface{}
}

func SeedersRegister() []Seeder {
	seeders := make([]Seeder, 0, 12)
	for i := 0; i < 12; i++ {
		seeders = append(seeders, Seeder{Seeder: fakers.ProductFaker()})
	}
	return seeders
}

func DBSeed(db *gorm.DB) error {
	for _, seeder := range SeedersRegister() {
		if err := db.Create(seeder.Seeder).Error; err != nil {
			return err
		}
	}
	return nil
}
