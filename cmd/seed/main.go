package main

import (
	"errors"
	"os"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"school-system-backend/internal/core/config"
	"school-system-backend/internal/core/database"
	"school-system-backend/internal/core/logger"
	"school-system-backend/internal/domain"
	"school-system-backend/pkg/utils"
)

// 引导数据：固定角色表 + 首个系统管理员。可重复执行。
func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("automigrate failed", zap.Error(err))
	}

	roles := []domain.Role{
		{RoleID: domain.RoleSystemAdmin, Name: domain.RoleNameSystem},
		{RoleID: domain.RoleSchoolAdmin, Name: domain.RoleNameSchool},
		{RoleID: domain.RoleTeacher, Name: domain.RoleNameTeacher},
		{RoleID: domain.RoleStudent, Name: domain.RoleNameStudent},
		{RoleID: domain.RoleParent, Name: domain.RoleNameParent},
	}
	for _, role := range roles {
		if err := db.Where("role_id = ?", role.RoleID).FirstOrCreate(&role).Error; err != nil {
			log.Fatal("seed role failed", zap.Int64("roleId", role.RoleID), zap.Error(err))
		}
	}
	log.Info("roles seeded", zap.Int("count", len(roles)))

	seed := cfg.Seed
	if seed.AdminUsername == "" {
		log.Info("no bootstrap admin configured, done")
		return
	}

	var existing domain.User
	err = db.First(&existing, "username = ?", seed.AdminUsername).Error
	if err == nil {
		log.Info("bootstrap admin already exists", zap.String("username", seed.AdminUsername))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatal("lookup bootstrap admin failed", zap.Error(err))
	}

	admin := domain.User{
		FirstName: seed.AdminFirstName,
		LastName:  seed.AdminLastName,
		Username:  seed.AdminUsername,
		Email:     seed.AdminEmail,
		Password:  utils.HashPassword(seed.AdminPassword),
		RoleID:    domain.RoleSystemAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("seed admin failed", zap.Error(err))
	}
	log.Info("bootstrap admin created",
		zap.Int64("userId", admin.UserID), zap.String("username", admin.Username))
}
