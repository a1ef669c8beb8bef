package db

import (
	"fmt"
	"strings"
	"time"

	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

const (
	connectAttempts = 5
	connectBackoff  = 2 * time.Second
)

type Options struct {
	Host            string
	Port            string
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Debug           bool
	Migrate         bool
}

func (o Options) dsn() string {
	sslMode := o.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	parts := []string{
		"host=" + o.Host,
		"port=" + o.Port,
		"user=" + o.User,
		"dbname=" + o.Name,
		"sslmode=" + sslMode,
	}
	if o.Password != "" {
		parts = append(parts, fmt.Sprintf("password='%s'", strings.ReplaceAll(o.Password, "'", `\'`)))
	}
	return strings.Join(parts, " ")
}

// Connect opens the pool once, waits for the server to answer and optionally migrates
func Connect(opts Options) error {
	if DB != nil {
		return nil
	}
	conn, err := gorm.Open(postgres.Open(opts.dsn()), &gorm.Config{Logger: gorm_logrus.New()})
	if err != nil {
		return errors.Wrap(err, "database connection failed")
	}
	if opts.Debug {
		conn = conn.Debug()
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return errors.Wrap(err, "database connection failed")
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}
	for attempt := 1; ; attempt++ {
		err = sqlDB.Ping()
		if err == nil {
			break
		}
		if attempt == connectAttempts {
			return errors.Wrapf(err, "database is not reachable after %d attempts", attempt)
		}
		log.WithError(err).WithField("attempt", attempt).Warn("database is not reachable yet")
		time.Sleep(connectBackoff)
	}
	DB = conn
	if opts.Migrate {
		if err = AutoMigrateDB(); err != nil {
			return err
		}
	}
	log.WithField("host", opts.Host).WithField("database", opts.Name).Info("connected to database")
	return nil
}

func PingDB() error {
	if DB == nil {
		return errors.New("database is not connected")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
