package server

import (
	"net/http"
	"time"

	"github.com/franciscozv/iglesia-admin/internal/config"
	"github.com/franciscozv/iglesia-admin/internal/handler"
	"github.com/franciscozv/iglesia-admin/internal/repository"
	"github.com/franciscozv/iglesia-admin/internal/service"
	"github.com/franciscozv/iglesia-admin/pkg/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine *gin.Engine
}

// NewServer wires repositories, services and handlers and mounts every route.
// redisClient and searchClient may be nil; the features they back degrade
// gracefully.
func NewServer(
	cfg *config.Config,
	db *gorm.DB,
	redisClient *redis.Client,
	searchClient meilisearch.ServiceManager,
	photos storage.PhotoStorage,
) *Server {
	userRepo := repository.NewUserRepository(db)
	userService := service.NewUserService(userRepo)
	userHandler := handler.NewUserHandler(userService)

	var personSearch service.PersonSearchService
	if searchClient != nil {
		personSearch = service.NewPersonSearchService(searchClient)
	}

	personRepo := repository.NewPersonRepository(db)
	personService := service.NewPersonService(personRepo, personSearch)
	personHandler := handler.NewPersonHandler(personService)

	peopleRoleRepo := repository.NewPeopleRoleRepository(db)
	peopleRoleService := service.NewPeopleRoleService(peopleRoleRepo)
	peopleRoleHandler := handler.NewPeopleRoleHandler(peopleRoleService)

	groupRepo := repository.NewGroupRepository(db)
	groupRoleRepo := repository.NewGroupRoleAssignmentRepository(db)
	groupService := service.NewGroupService(groupRepo, peopleRoleRepo, groupRoleRepo)

	memberRepo := repository.NewGroupMemberRepository(db)
	memberService := service.NewGroupMemberService(memberRepo, groupRepo, personRepo, peopleRoleRepo)
	groupHandler := handler.NewGroupHandler(groupService, memberService)

	eventTypeRepo := repository.NewEventTypeRepository(db)
	eventTypeService := service.NewEventTypeService(eventTypeRepo)
	eventTypeHandler := handler.NewEventTypeHandler(eventTypeService)

	placeRepo := repository.NewPlaceRepository(db)
	placeService := service.NewPlaceService(placeRepo)
	placeHandler := handler.NewPlaceHandler(placeService)

	notificationRepo := repository.NewNotificationRepository(db)
	notificationService := service.NewNotificationService(notificationRepo, redisClient)
	notificationHandler := handler.NewNotificationHandler(notificationService, redisClient)

	eventRepo := repository.NewEventRepository(db)
	eventService := service.NewEventService(eventRepo, eventTypeRepo, placeRepo, notificationService)

	responsibilityRepo := repository.NewResponsibilityRepository(db)
	responsibilityService := service.NewResponsibilityService(responsibilityRepo)
	responsibilityHandler := handler.NewResponsibilityHandler(responsibilityService)

	participantRepo := repository.NewParticipantRepository(db)
	participantService := service.NewParticipantService(participantRepo, eventRepo, personRepo, responsibilityRepo)
	eventHandler := handler.NewEventHandler(eventService, participantService)

	postEventRepo := repository.NewPostEventRepository(db)
	postEventService := service.NewPostEventService(postEventRepo, eventRepo, photos)
	postEventHandler := handler.NewPostEventHandler(postEventService)

	statService := service.NewStatService(eventRepo, memberRepo, redisClient)
	statHandler := handler.NewStatHandler(statService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Origins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Photos written by the local storage backend.
	router.Static("/uploads", cfg.UploadDir)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.POST("/users", userHandler.CreateUser)
		api.GET("/users", userHandler.GetUsers)
		api.GET("/users/:id", userHandler.GetUser)
		api.DELETE("/users/:id", userHandler.DeleteUser)

		api.POST("/people", personHandler.CreatePerson)
		api.GET("/people", personHandler.GetPeople)
		api.GET("/people/:id", personHandler.GetPerson)
		api.PUT("/people/:id", personHandler.UpdatePerson)
		api.DELETE("/people/:id", personHandler.DeletePerson)

		api.POST("/people-roles", peopleRoleHandler.CreateRole)
		api.GET("/people-roles", peopleRoleHandler.GetRoles)
		api.GET("/people-roles/:id", peopleRoleHandler.GetRole)
		api.PUT("/people-roles/:id", peopleRoleHandler.UpdateRole)
		api.DELETE("/people-roles/:id", peopleRoleHandler.DeleteRole)

		api.POST("/groups", groupHandler.CreateGroup)
		api.GET("/groups", groupHandler.GetGroups)
		api.GET("/groups/:groupId", groupHandler.GetGroup)
		api.PUT("/groups/:groupId", groupHandler.UpdateGroup)
		api.DELETE("/groups/:groupId", groupHandler.DeleteGroup)

		api.POST("/groups/:groupId/roles", groupHandler.AssignRole)
		api.GET("/groups/:groupId/roles", groupHandler.GetGroupRoles)
		api.DELETE("/groups/:groupId/roles/:roleId", groupHandler.RemoveRole)

		api.POST("/groups/:groupId/members", groupHandler.AddMember)
		api.GET("/groups/:groupId/members", groupHandler.GetMembers)
		api.PUT("/groups/:groupId/members/:personId", groupHandler.UpdateMember)
		api.DELETE("/groups/:groupId/members/:personId", groupHandler.RemoveMember)

		api.POST("/event-types", eventTypeHandler.CreateEventType)
		api.GET("/event-types", eventTypeHandler.GetEventTypes)
		api.GET("/event-types/:id", eventTypeHandler.GetEventType)
		api.PUT("/event-types/:id", eventTypeHandler.UpdateEventType)
		api.DELETE("/event-types/:id", eventTypeHandler.DeleteEventType)

		api.POST("/places", placeHandler.CreatePlace)
		api.GET("/places", placeHandler.GetPlaces)
		api.GET("/places/:id", placeHandler.GetPlace)
		api.PUT("/places/:id", placeHandler.UpdatePlace)
		api.DELETE("/places/:id", placeHandler.DeletePlace)

		api.POST("/responsibilities", responsibilityHandler.CreateResponsibility)
		api.GET("/responsibilities", responsibilityHandler.GetResponsibilities)
		api.GET("/responsibilities/:id", responsibilityHandler.GetResponsibility)
		api.PUT("/responsibilities/:id", responsibilityHandler.UpdateResponsibility)
		api.DELETE("/responsibilities/:id", responsibilityHandler.DeleteResponsibility)

		api.POST("/events", eventHandler.CreateEvent)
		api.GET("/events", eventHandler.GetEvents)
		api.GET("/events/:eventId", eventHandler.GetEvent)
		api.PUT("/events/:eventId", eventHandler.UpdateEvent)
		api.PATCH("/events/:eventId/status", eventHandler.UpdateEventStatus)
		api.DELETE("/events/:eventId", eventHandler.DeleteEvent)

		api.POST("/events/:eventId/participants", eventHandler.AddParticipant)
		api.GET("/events/:eventId/participants", eventHandler.GetParticipants)
		api.DELETE("/participants/:id", eventHandler.RemoveParticipant)

		api.POST("/post-events", postEventHandler.CreatePostEvent)
		api.GET("/post-events", postEventHandler.GetPostEvents)
		api.GET("/events/:eventId/post-events", postEventHandler.GetPostEventsByEvent)

		api.GET("/stats/events-per-month", statHandler.GetEventsPerMonth)
		api.GET("/stats/members-per-group", statHandler.GetMembersPerGroup)

		api.GET("/notifications", notificationHandler.GetNotifications)
		api.PUT("/notifications/:id/read", notificationHandler.MarkAsRead)
		api.GET("/notifications/ws", notificationHandler.HandleWebSocket)
	}

	return &Server{engine: router}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}
