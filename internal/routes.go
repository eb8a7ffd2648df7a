package internal

import (
	"net/http"

	"breathed/internal/controllers"
	"breathed/internal/providers"
	"breathed/internal/structures"
)

func InitRoutes(
	settingsController *controllers.SettingsController,
	appsController *controllers.AppsController,
	eventsController *controllers.EventsController,
	sessionsController *controllers.SessionsController,
	friendsController *controllers.FriendsController,
	conf *structures.Config,
) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/settings", http.HandlerFunc(settingsController.GetSettings))
	routers.Post("/settings/enabled", http.HandlerFunc(settingsController.SetEnabled))
	routers.Post("/settings/apps", http.HandlerFunc(settingsController.SetSelectedApps))
	routers.Post("/settings/windows/add", http.HandlerFunc(settingsController.AddTimeWindow))
	routers.Post("/settings/windows/remove", http.HandlerFunc(settingsController.RemoveTimeWindow))
	routers.Post("/settings/duration", http.HandlerFunc(settingsController.SetDefaultDuration))
	routers.Get("/stats", http.HandlerFunc(settingsController.GetStatistics))

	routers.Post("/lists/create", http.HandlerFunc(settingsController.CreateBreatheList))
	routers.Post("/lists/update", http.HandlerFunc(settingsController.UpdateBreatheList))
	routers.Post("/lists/delete", http.HandlerFunc(settingsController.DeleteBreatheList))

	routers.Get("/contacts/groups", http.HandlerFunc(settingsController.GetContactGroups))
	routers.Post("/contacts/groups/create", http.HandlerFunc(settingsController.CreateContactGroup))
	routers.Post("/contacts/groups/delete", http.HandlerFunc(settingsController.DeleteContactGroup))
	routers.Post("/contacts/prompt-shown", http.HandlerFunc(settingsController.MarkContactsPromptShown))

	routers.Get("/apps", http.HandlerFunc(appsController.GetInstalledApps))
	routers.Get("/apps/monitored", http.HandlerFunc(appsController.GetMonitoredPackages))
	routers.Post("/apps/launch", http.HandlerFunc(appsController.LaunchApp))
	routers.Post("/apps/overlay/dismiss", http.HandlerFunc(appsController.DismissOverlay))
	routers.Get("/permissions", http.HandlerFunc(appsController.GetPermissions))
	routers.Post("/permissions/request", http.HandlerFunc(appsController.RequestPermissions))

	routers.Post("/events/foreground", providers.RateLimitMiddleware(
		conf.Watcher.EventRateLimit,
		conf.Watcher.EventBurst,
		http.HandlerFunc(eventsController.ReceiveForeground),
	))

	routers.Get("/sessions", http.HandlerFunc(sessionsController.GetActiveSessions))
	routers.Post("/sessions/start", http.HandlerFunc(sessionsController.StartSession))
	routers.Post("/sessions/complete", http.HandlerFunc(sessionsController.CompleteSession))
	routers.Post("/sessions/skip", http.HandlerFunc(sessionsController.SkipSession))

	routers.Post("/friends/users", http.HandlerFunc(friendsController.EnsureUser))
	routers.Get("/friends/requests", http.HandlerFunc(friendsController.ListRequests))
	routers.Post("/friends/requests/send", http.HandlerFunc(friendsController.SendRequest))
	routers.Post("/friends/requests/accept", http.HandlerFunc(friendsController.AcceptRequest))
	routers.Post("/friends/requests/decline", http.HandlerFunc(friendsController.DeclineRequest))
	routers.Get("/friends", http.HandlerFunc(friendsController.ListFriends))
	routers.Get("/friends/nudges", http.HandlerFunc(friendsController.ListNudges))
	routers.Post("/friends/nudges/send", http.HandlerFunc(friendsController.SendNudge))
	routers.Get("/friends/invite", http.HandlerFunc(friendsController.GetInviteMessage))

	return routers
}
