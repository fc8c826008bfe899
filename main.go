package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/dineopen/reservation-app/config"
	"github.com/dineopen/reservation-app/cron"
	"github.com/dineopen/reservation-app/db"
	"github.com/dineopen/reservation-app/redis"
	"github.com/dineopen/reservation-app/routes"
)

func main() {
	config.LoadConfig()
	db.Init()

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "migrate":
			db.Migrate()
			return
		case "inspect":
			db.Inspect()
			return
		default:
			log.Fatalf("unknown command %q (expected migrate or inspect)", os.Args[1])
		}
	}

	redis.InitRedis()
	cron.StartCronJobs()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello, World!")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupAvailabilityRoutes(app)
	routes.SetupReservationRoutes(app)
	routes.SetupMenuRoutes(app)
	routes.SetupOrderRoutes(app)
	routes.SetupAdminRoutes(app)

	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
