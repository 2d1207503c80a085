package main

import (
	"log"

	"github.com/FlixonCoder/Ketpa-backend/configuration"
	"github.com/FlixonCoder/Ketpa-backend/controllers"
	"github.com/FlixonCoder/Ketpa-backend/mailer"
	"github.com/FlixonCoder/Ketpa-backend/routes"
)

func main() {
	cfg, err := configuration.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := configuration.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	log.Println("connected to postgres")

	cache := configuration.InitRedis(cfg)

	mail := mailer.New(mailer.Config{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		From:        cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		FrontendURL: cfg.FrontendURL,
		City:        cfg.City,
		Timezone:    cfg.Timezone,
	})

	s := controllers.New(db, mail, cache, cfg)
	r := routes.SetupRouter(s)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
