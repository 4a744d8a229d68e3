package config

import "time"

type App struct {
	Port          string        `env:"APP_PORT" default:"8080"`
	MongoURI      string        `env:"MONGO_URI,required"`
	MongoDB       string        `env:"MONGO_DB" default:"bookstore"`
	JWTSecret     string        `env:"JWT_SECRET,required"`
	UploadDir     string        `env:"UPLOAD_DIR" default:"uploads"`
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" default:"0"`
	WarnWindow    time.Duration `env:"RENTAL_WARN_WINDOW" default:"72h"`
	Env           string        `env:"APP_ENV" default:"dev"`
}
