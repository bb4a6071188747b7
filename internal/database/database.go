package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/danielmerja/stnh/internal/models"
)

// Service represents a service that interacts with a database.
type Service interface {
	// Health returns a map of health status information.
	// The keys and values in the map are service-specific.
	Health() map[string]string

	// Close terminates the database connection.
	Close() error

	GetDB() *gorm.DB
}

type service struct {
	db  *gorm.DB
	log *zap.Logger
}

// New opens a postgres connection through the pgx stdlib driver, runs
// migrations and seeds the category reference data.
func New(dsn string, log *zap.Logger) (Service, error) {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error initializing gorm: %w", err)
	}

	log.Info("database connected")

	if err := db.AutoMigrate(
		&models.Category{},
		&models.Post{},
		&models.Vote{},
		&models.Submission{},
	); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	if err := seedCategories(db); err != nil {
		return nil, fmt.Errorf("error seeding categories: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &service{db: db, log: log}, nil
}

// seedCategories inserts the fixed category set, skipping rows that
// already exist. Categories are reference data; nothing in the request
// path ever writes them.
func seedCategories(db *gorm.DB) error {
	categories := []models.Category{
		{Name: "Airplane Encounters", Slug: "airplane-encounters", Description: "Strangers on planes delivering life-changing wisdom"},
		{Name: "Everybody Clapped", Slug: "everybody-clapped", Description: "Rooms full of people bursting into spontaneous applause"},
		{Name: "Hustle Culture", Slug: "hustle-culture", Description: "5am routines and deals closed in elevators"},
		{Name: "My Kid Said", Slug: "my-kid-said", Description: "Toddlers with surprisingly sharp business insights"},
		{Name: "Overheard Conversations", Slug: "overheard-conversations", Description: "Conveniently overheard exchanges that prove a point"},
		{Name: "Recruiter Stories", Slug: "recruiter-stories", Description: "Interviews and hiring moments that definitely went that way"},
	}

	for _, c := range categories {
		if err := db.Where(models.Category{Slug: c.Slug}).FirstOrCreate(&c).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *service) GetDB() *gorm.DB {
	return s.db
}

// Health checks the health of the database connection by pinging the database.
func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats := make(map[string]string)

	sqlDB, err := s.db.DB()
	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db error: %v", err)
		return stats
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		return stats
	}

	stats["status"] = "up"

	dbStats := sqlDB.Stats()
	stats["open_connections"] = fmt.Sprintf("%d", dbStats.OpenConnections)
	stats["in_use"] = fmt.Sprintf("%d", dbStats.InUse)
	stats["idle"] = fmt.Sprintf("%d", dbStats.Idle)

	return stats
}

// Close closes the database connection.
func (s *service) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	s.log.Info("database connection closed")
	return sqlDB.Close()
}
