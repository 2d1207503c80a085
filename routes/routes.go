package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/FlixonCoder/Ketpa-backend/authentication"
	"github.com/FlixonCoder/Ketpa-backend/controllers"
	"github.com/FlixonCoder/Ketpa-backend/middleware"
)

// SetupRouter wires every route group onto a new engine.
func SetupRouter(s *controllers.Server) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{s.Config.FrontendURL, "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	rl := middleware.NewRateLimiter(5, 10)
	secret := s.Config.JWTSecret

	api := r.Group("/api")

	// public
	api.POST("/user/register", middleware.RateLimit(rl), s.RegisterUser)
	api.POST("/user/login", middleware.RateLimit(rl), s.LoginUser)
	api.POST("/doctor/login", middleware.RateLimit(rl), s.DoctorLogin)
	api.GET("/doctor/list", s.ListDoctors)

	user := api.Group("/user")
	user.Use(authentication.UserAuthMiddleware(secret))
	{
		user.GET("/get-profile", s.GetProfile)
		user.POST("/update-profile", s.UpdateProfile)
		user.POST("/book-appointment", s.BookAppointment)
		user.GET("/appointments", s.ListAppointments)
		user.POST("/cancel-appointment", s.CancelAppointment)
		user.GET("/logout", s.Logout)
	}

	doctor := api.Group("/doctor")
	doctor.Use(authentication.DoctorAuthMiddleware(secret))
	{
		doctor.POST("/change-availability", s.ChangeAvailability)
		doctor.GET("/appointments", s.DoctorAppointments)
	}

	return r
}
