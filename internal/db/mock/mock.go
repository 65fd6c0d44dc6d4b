package mock

import (
	"context"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applog "vartheme/internal/log"
	"vartheme/models"
)

// DemoVisitorToken identifies the seeded visitor. Sending it as the
// visitor cookie shows a returning visitor's saved theme.
const DemoVisitorToken = "00000000-0000-4000-8000-000000000001"

// New returns an in-memory sqlite database seeded with representative visitors.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	db, err := gorm.Open(sqlite.Open("file:vartheme-mock?mode=memory&cache=shared"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		PrepareStmt:                              true,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Visitor{},
	); err != nil {
		return nil, err
	}

	if err := seed(ctx, db); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return db, nil
}

func seed(ctx context.Context, db *gorm.DB) error {
	applog.Debug(ctx, "seeding mock database")

	var count int64
	if err := db.WithContext(ctx).Model(&models.Visitor{}).Where("token = ?", DemoVisitorToken).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		applog.Debug(ctx, "mock database already seeded")
		return nil
	}

	visitors := []models.Visitor{
		{Token: DemoVisitorToken, ThemeName: "ocean", ThemeMode: "light"},
		{Token: "00000000-0000-4000-8000-000000000002", ThemeName: "sunset", ThemeMode: "dark"},
		{Token: "00000000-0000-4000-8000-000000000003", ThemeName: "rose", ThemeMode: "light"},
	}
	for _, visitor := range visitors {
		visitorCopy := visitor
		if err := db.WithContext(ctx).Create(&visitorCopy).Error; err != nil {
			return err
		}
	}

	applog.Debug(ctx, "mock database seeded")
	return nil
}
