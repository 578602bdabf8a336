package main

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lagtalk/internal/auth"
	"lagtalk/internal/config"
	"lagtalk/internal/db"
	"lagtalk/internal/model"
	"lagtalk/internal/repository"
)

var seedInstitutions = []model.Institution{
	{Name: "University of Lagos", Email: "info@unilag.edu.ng", Website: "https://unilag.edu.ng", Location: "Lagos"},
	{Name: "Obafemi Awolowo University", Email: "info@oauife.edu.ng", Website: "https://oauife.edu.ng", Location: "Ile-Ife"},
	{Name: "University of Ibadan", Email: "info@ui.edu.ng", Website: "https://ui.edu.ng", Location: "Ibadan"},
	{Name: "Covenant University", Email: "info@covenantuniversity.edu.ng", Website: "https://covenantuniversity.edu.ng", Location: "Ota"},
	{Name: "Ahmadu Bello University", Email: "info@abu.edu.ng", Website: "https://abu.edu.ng", Location: "Zaria"},
}

const (
	adminEmail    = "admin@lagtalk.app"
	adminPassword = "changeme-admin"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Institution{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	institutionRepo := repository.NewInstitutionRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	created := 0
	for _, inst := range seedInstitutions {
		if _, err := institutionRepo.FindByName(ctx, inst.Name); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to check institution %q: %v", inst.Name, err)
		}
		inst.ID = uuid.New().String()
		if err := institutionRepo.Create(ctx, &inst); err != nil {
			log.Fatalf("Failed to seed institution %q: %v", inst.Name, err)
		}
		created++
	}
	log.Printf("Seeded %d institutions (%d already present)", created, len(seedInstitutions)-created)

	if _, err := userRepo.FindByEmail(ctx, adminEmail); errors.Is(err, gorm.ErrRecordNotFound) {
		hash, err := auth.HashPassword(adminPassword)
		if err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}
		admin := &model.User{
			ID:             uuid.New().String(),
			Email:          adminEmail,
			Username:       "admin",
			FullName:       "Platform Admin",
			HashedPassword: hash,
			Role:           auth.RoleAdmin,
			IsVerified:     true,
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			log.Fatalf("Failed to seed admin user: %v", err)
		}
		log.Printf("Seeded admin user %s", adminEmail)
	} else if err != nil {
		log.Fatalf("Failed to check admin user: %v", err)
	} else {
		log.Println("Admin user already present")
	}

	log.Println("Seed complete")
}
