package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"wisma-backend/controllers"
	"wisma-backend/middleware"
	"wisma-backend/models"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// registerValidations adds the room status enum to the binding engine so
// payload DTOs can declare it as a tag.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("roomstatus", func(fl validator.FieldLevel) bool {
			return models.ValidRoomStatus(fl.Field().String())
		})
	}
}

// SetupRouter wires the controller instances onto the API surface.
func SetupRouter(
	ac *controllers.AvailabilityController,
	rc *controllers.ReservationController,
	rmc *controllers.RoomController,
	bc *controllers.BuildingController,
	ic *controllers.InstitutionController,
	tc *controllers.TransactionController,
) *gin.Engine {
	registerValidations()

	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Guest-facing availability probe
		availability := api.Group("/availability")
		{
			availability.GET("", ac.GetAvailability)
			availability.GET("/rooms", ac.GetAvailableRooms)
		}

		buildings := api.Group("/buildings")
		{
			buildings.GET("", bc.GetBuildings)
			buildings.GET("/:id", bc.GetBuildingByID)
			buildings.POST("", bc.CreateBuilding)
			buildings.PUT("/:id", bc.UpdateBuilding)
			buildings.DELETE("/:id", bc.DeleteBuilding)
		}

		institutions := api.Group("/institutions")
		{
			institutions.GET("", ic.GetInstitutions)
			institutions.GET("/:id", ic.GetInstitutionByID)
			institutions.POST("", ic.CreateInstitution)
			institutions.PUT("/:id", ic.UpdateInstitution)
			institutions.DELETE("/:id", ic.DeleteInstitution)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rmc.GetRooms)
			rooms.GET("/:id", rmc.GetRoomByID)
			rooms.POST("", rmc.CreateRoom)
			rooms.PUT("/:id", rmc.UpdateRoom)
			rooms.PATCH("/:id", rmc.UpdateRoom)
			rooms.DELETE("/:id", rmc.DeleteRoom)
		}

		reservations := api.Group("/reservations")
		{
			reservations.GET("", rc.GetReservations)
			reservations.GET("/:id", rc.GetReservationByID)
			reservations.POST("", rc.CreateReservation)
			reservations.POST("/:id/checkin", rc.CheckIn)
			reservations.POST("/:id/checkout", rc.CheckOut)
			reservations.POST("/:id/cancel", rc.Cancel)
		}

		transactions := api.Group("/transactions")
		{
			transactions.GET("", tc.GetTransactions)
			transactions.GET("/:id", tc.GetTransactionByID)
			transactions.POST("/:id/pay", tc.ConfirmPayment)
			transactions.POST("/:id/refund", tc.Refund)
		}
	}

	return r
}
