package api

import (
	"net/http"

	"dealerhub/internal/auth"
	"dealerhub/internal/db"
	"dealerhub/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Dependencies struct {
	DB  *db.Pool
	Log *zap.Logger
	JWT *auth.JWTConfig

	Users       *service.UserService
	Dealers     *service.DealerService
	Templates   *service.TemplateService
	Submissions *service.SubmissionService
	Goals       *service.GoalService
	Dashboards  *service.DashboardService
	Notices     *service.NoticeService
	Forecasts   *service.ForecastService
}

func Routes(d Dependencies) http.Handler {
	r := chi.NewRouter()

	// Add request logging middleware
	r.Use(RequestLogger(d.Log))
	r.Use(d.JWT.Middleware)

	adminOnly := auth.RequireRole("Admin")
	signedIn := auth.RequireRole("Admin", "Dealer", "Guest")
	canSubmit := auth.RequireRole("Admin", "Dealer")

	// Auth endpoints
	r.Post("/auth/login", d.login)

	// Dealer endpoints
	r.Route("/dealers", func(r chi.Router) {
		r.With(signedIn).Get("/", d.listDealers)
		r.With(signedIn).Get("/{id}", d.getDealer)
		r.With(adminOnly).Post("/", d.createDealer)
		r.With(adminOnly).Put("/{id}", d.updateDealer)
		r.With(adminOnly).Delete("/{id}", d.deleteDealer)
	})

	// Form template endpoints
	r.Route("/forms", func(r chi.Router) {
		r.With(signedIn).Get("/", d.listTemplates)
		r.With(signedIn).Get("/{id}", d.getTemplate)
		r.With(adminOnly).Post("/", d.createTemplate)
		r.With(adminOnly).Put("/{id}/fields", d.updateTemplateFields)
		r.With(adminOnly).Post("/{id}/publish", d.publishTemplate)
		r.With(adminOnly).Post("/{id}/unpublish", d.unpublishTemplate)
		r.With(adminOnly).Post("/{id}/archive", d.archiveTemplate)
		r.With(adminOnly).Post("/{id}/clone", d.cloneTemplate)
	})

	// Submission endpoints
	r.Route("/submissions", func(r chi.Router) {
		r.With(canSubmit).Get("/", d.listSubmissions)
		r.With(canSubmit).Get("/{id}", d.getSubmission)
		r.With(canSubmit).Post("/", d.createSubmission)
		r.With(canSubmit).Put("/{id}/data", d.updateSubmissionData)
		r.With(adminOnly).Post("/{id}/status", d.setSubmissionStatus)
		r.With(canSubmit).Post("/{id}/quick-edit", d.quickEditSubmission)
	})

	// Goal endpoints
	r.Route("/goals", func(r chi.Router) {
		r.With(signedIn).Get("/", d.listGoals)
		r.With(canSubmit).Get("/progress", d.goalProgress)
		r.With(adminOnly).Post("/", d.createGoal)
		r.With(adminOnly).Put("/{id}", d.updateGoal)
		r.With(adminOnly).Delete("/{id}", d.deleteGoal)
	})

	// Dashboard endpoints
	r.Route("/dashboard", func(r chi.Router) {
		r.With(signedIn).Get("/", d.getDashboard)
		r.With(adminOnly).Post("/widgets", d.createWidget)
		r.With(adminOnly).Put("/widgets/{id}", d.updateWidget)
		r.With(adminOnly).Delete("/widgets/{id}", d.deleteWidget)
		r.With(signedIn).Get("/widgets/{id}/data", d.widgetData)
		r.With(adminOnly).Put("/layout", d.saveLayout)
	})

	// Notice board endpoints
	r.Route("/notices", func(r chi.Router) {
		r.With(signedIn).Get("/", d.listNotices)
		r.With(signedIn).Get("/{id}", d.getNotice)
		r.With(adminOnly).Post("/", d.createNotice)
		r.With(canSubmit).Post("/{id}/rsvp", d.rsvpNotice)
		r.With(adminOnly).Delete("/{id}", d.deleteNotice)
	})

	// Sales forecast endpoints
	r.Route("/forecasts", func(r chi.Router) {
		r.With(canSubmit).Get("/", d.listForecasts)
		r.With(canSubmit).Post("/", d.createForecast)
		r.With(canSubmit).Put("/{id}/actuals", d.updateForecastActuals)
		r.With(adminOnly).Delete("/{id}", d.deleteForecast)
	})
	r.With(signedIn).Get("/products", d.listProducts)

	// User admin endpoints
	r.Route("/users", func(r chi.Router) {
		r.With(adminOnly).Get("/", d.listUsers)
		r.With(adminOnly).Post("/", d.createUser)
		r.With(adminOnly).Put("/{id}/password", d.changePassword)
		r.With(adminOnly).Delete("/{id}", d.deleteUser)
	})

	return r
}

// actorFromContext resolves the caller into a submission actor. Dealers are
// pinned to their own dealer id; admins may act on any submission.
func actorFromContext(r *http.Request) service.Actor {
	return service.Actor{
		Role:     roleFromContext(r),
		DealerID: auth.GetDealerID(r.Context()),
	}
}
