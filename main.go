package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"petcare-service/internal/handlers"
	"petcare-service/internal/middleware"
	"petcare-service/internal/observability"
	"petcare-service/internal/rabbitmq"
	"petcare-service/internal/seed"
	"petcare-service/internal/store"
	"petcare-service/internal/telemetry"
	"petcare-service/internal/ws"
)

func main() {
	_ = godotenv.Load()

	st := store.New(seed.Default())
	hub := ws.NewHub()

	amqpURL := getEnv("AMQP_URL", "")
	exchange := getEnv("AMQP_EXCHANGE", "petcare.events")

	publisher := rabbitmq.NewPublisher(amqpURL, exchange)
	defer publisher.Close()
	log.Printf("event publisher mode=%s", rabbitmq.Mode(publisher))

	if amqpURL != "" {
		if eventsPublisher, err := observability.NewAMQPPublisher(amqpURL, exchange); err != nil {
			log.Printf("ws event publisher disabled: %v", err)
		} else {
			observability.SetPublisher(eventsPublisher)
			defer eventsPublisher.Close()
		}
	}

	audit := telemetry.NewAuditEmitter(
		publisher,
		getEnv("AUDIT_ROUTING_KEY", "audit.petcare"),
		"petcare-service",
		getEnv("ENVIRONMENT", "development"),
	)

	authHandler := handlers.NewAuthHandler(st, audit)
	homeHandler := handlers.NewHomeHandler(st, st)
	petHandler := handlers.NewPetHandler(st, st, audit)
	planHandler := handlers.NewPlanHandler(st, audit)
	appointmentHandler := handlers.NewAppointmentHandler(st, audit)
	communityHandler := handlers.NewCommunityHandler(st, hub, audit)
	groupWS := ws.NewGroupWebSocketHandler(hub, st, st)

	router := gin.Default()

	// middlewares
	router.Use(gin.Recovery())
	router.Use(observability.HTTPMetricsMiddleware())

	sessionRequired := middleware.SessionRequired(st)

	router.POST("/auth/login", authHandler.Login)
	router.POST("/auth/register", authHandler.Register)
	router.POST("/auth/logout", sessionRequired, authHandler.Logout)

	router.GET("/home", sessionRequired, homeHandler.Home)

	router.GET("/pets", sessionRequired, petHandler.ListPets)
	router.POST("/pets", sessionRequired, petHandler.CreatePet)
	router.PATCH("/pets/:pet_id", sessionRequired, petHandler.UpdatePet)
	router.DELETE("/pets/:pet_id", sessionRequired, petHandler.DeletePet)
	router.POST("/pets/:pet_id/plan", sessionRequired, petHandler.AssignPlan)

	router.GET("/plans", sessionRequired, planHandler.ListPlans)
	router.POST("/plans/:plan_id/select", sessionRequired, planHandler.SelectPlan)

	router.GET("/appointments", sessionRequired, appointmentHandler.ListAppointments)
	router.POST("/appointments", sessionRequired, appointmentHandler.CreateAppointment)
	router.PATCH("/appointments/:appointment_id", sessionRequired, appointmentHandler.UpdateAppointment)
	router.DELETE("/appointments/:appointment_id", sessionRequired, appointmentHandler.DeleteAppointment)

	router.POST("/groups", sessionRequired, communityHandler.CreateGroup)
	router.GET("/groups", sessionRequired, communityHandler.ListGroups)
	router.GET("/groups/:group_id", sessionRequired, communityHandler.GetGroup)
	router.GET("/groups/:group_id/messages", sessionRequired, communityHandler.GetGroupMessages)
	router.POST("/groups/:group_id/messages", sessionRequired, communityHandler.PostGroupMessage)

	router.GET("/ws/groups/:group_id", groupWS.Handle)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	handlers.RegisterDebugRoutes(router, audit, st, st, st, getEnv("DEBUG_ROUTES", "") == "true")

	port := getEnv("PORT", "8083")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
