package main

import (
	"flag"

	"go.uber.org/zap"

	"chirper/crud"
	"chirper/http"
)

// main is the app's entry point.
func main() {
	// Check if the flag "-prod" has been provided. It means that we're running in production.
	productionBool := flag.Bool("prod", false, "Provide this flag in production to ensure that a .config.json file is provided before the application starts.")
	seedBool := flag.Bool("seed", false, "Provide this flag to load the demo dataset after migrating.")
	resetBool := flag.Bool("reset", false, "Provide this flag to drop and rebuild all tables instead of migrating. Development only.")
	flag.Parse()

	// Load configuration from a .config.json file if present, otherwise use the default dev setup.
	config := LoadConfig(*productionBool)

	// Set up structured logging.
	log, err := newLogger(config.IsProd())
	must(err)
	defer log.Sync()
	zap.ReplaceGlobals(log)

	// Open a database connection and execute migrations.
	dbConfig := config.Database
	db := NewDB(dbConfig.ConnectionInfo())
	err = Open(db, config.IsProd())
	must(err)
	defer Close(db)
	if *resetBool {
		must(DestructiveReset(db))
	} else {
		must(AutoMigrate(db))
	}
	if *seedBool {
		must(Seed(db))
	}

	// Start the crud services.
	services, err := crud.NewServices(
		db.Gorm,
		crud.WithUser(),
		crud.WithTweet(),
		crud.WithMedia(),
		crud.WithFollow(),
		crud.WithLike(),
		crud.WithFeed(config.FeedScope),
	)
	must(err)

	// Set up a webserver.
	server := http.NewServer(
		log,
		services.User,
		services.Tweet,
		services.Media,
		services.Follow,
		services.Like,
		services.Feed,
	)

	// Serve the app.
	must(server.Run(config.Port))
}

// newLogger builds the zap logger for the current environment.
func newLogger(isProd bool) (*zap.Logger, error) {
	if isProd {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// must is a little helper for shortening the panic instruction.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
