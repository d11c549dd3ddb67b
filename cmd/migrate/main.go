// Command migrate applies the embedded schema and optionally the demo seed.
//
//	migrate --db-host=localhost --db-name=drivent --seed
//
// Every flag can also be set through the same DB_* variables the server uses.
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/event-hotel-booking/internal/database"
)

type options struct {
	User    string        `long:"db-user" env:"DB_USER" default:"root" description:"database user"`
	Pass    string        `long:"db-pass" env:"DB_PASS" description:"database password"`
	Host    string        `long:"db-host" env:"DB_HOST" default:"localhost" description:"database host"`
	Port    string        `long:"db-port" env:"DB_PORT" default:"3306" description:"database port"`
	Name    string        `long:"db-name" env:"DB_NAME" required:"true" description:"database name"`
	Seed    bool          `long:"seed" description:"insert demo ticket types, hotels and rooms"`
	Timeout time.Duration `long:"timeout" default:"1m" description:"overall timeout"`
}

func main() {
	// a missing .env is fine; flags and the environment still apply
	_ = godotenv.Load()

	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	log := logrus.New()
	db, err := database.Open(database.DSN(opts.User, opts.Pass, opts.Host, opts.Port, opts.Name))
	if err != nil {
		log.WithError(err).Fatal("open database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()

	if err := database.Migrate(ctx, db); err != nil {
		log.WithError(err).Fatal("migrate")
	}
	log.Info("schema applied")

	if opts.Seed {
		if err := database.Seed(ctx, db); err != nil {
			log.WithError(err).Fatal("seed")
		}
		log.Info("seed applied")
	}
}
