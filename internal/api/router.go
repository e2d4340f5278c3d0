package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Jackson-Multifacet/Jackson-Multifacet/docs" //nolint:revive,nolintlint
	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
)

func NewRouter(h *Handler, hub *FeedHub, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Log, mw.Recover, mw.Cors, mw.WithIP)

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/health", h.Health)
			r.Get("/swagger/*", httpSwagger.WrapHandler)

			r.Post("/auth/provider", h.SignInWithProvider)
			r.Post("/auth/sign-in", h.SignInWithPassword)
			r.Post("/auth/refresh", h.Refresh)

			r.Get("/news", h.PublishedPosts)
			r.Get("/news/feed", hub.ServeFeed)
			r.With(mw.WithSession).Post("/news/{id}/like", h.LikePost)

			r.With(mw.RateLimit).Post("/chat", h.Chat)
			r.Post("/newsletter", h.SubscribeNewsletter)
		})

		// The contact flow runs these without a token, the candidate
		// and partner flows with one.
		r.Group(func(r chi.Router) {
			r.Use(mw.OptionalAuth)

			r.Post("/drafts", h.StartDraft)
			r.Route("/drafts/{id}", func(r chi.Router) {
				r.Get("/", h.Draft)
				r.Put("/", h.UpdateDraft)
				r.Post("/attachments", h.AttachFile)
				r.Post("/next", h.NextStep)
				r.Post("/back", h.PrevStep)
				r.Post("/submit", h.Submit)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth)

			r.Post("/auth/role", h.AssignRole)
			r.Post("/auth/sign-out", h.SignOut)
			r.Get("/me", h.Me)
			r.Get("/menu", h.Menu)

			r.Get("/notifications", h.MyNotifications)
			r.Put("/notifications/read", h.MarkAllNotificationsRead)
			r.Put("/notifications/{id}/read", h.MarkNotificationRead)

			r.Post("/news", h.CreatePost)

			r.Group(func(r chi.Router) {
				r.Use(mw.RequireRole(entity.RoleCandidate))

				r.Get("/jobs", h.Jobs)
				r.Post("/applications", h.Apply)
				r.Get("/applications", h.MyApplications)
				r.Get("/candidates/me", h.MyCandidateRecord)
				r.Post("/copilot/resume", h.EvaluateResume)
			})

			r.Group(func(r chi.Router) {
				r.Use(mw.RequireRole(entity.RoleClient))

				r.Get("/invoices", h.MyInvoices)
				r.Get("/projects", h.MyProjects)
			})

			r.Group(func(r chi.Router) {
				r.Use(mw.RequireRole(entity.RolePartner))

				r.Get("/tasks", h.MyTasks)
				r.Put("/tasks/{id}/status", h.MoveTask)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(mw.RequireRole(entity.RoleAdmin))

				r.Get("/candidates", h.CandidateRecords)
				r.Get("/candidates/{id}", h.CandidateRecord)
				r.Put("/candidates/{id}/status", h.ReviewCandidate)

				r.Get("/partners", h.PartnerRecords)
				r.Put("/partners/{id}/status", h.ReviewPartner)

				r.Get("/contacts", h.ContactSubmissions)
				r.Put("/contacts/{id}/reviewed", h.MarkContactReviewed)

				r.Get("/news", h.AllPosts)
				r.Put("/news/{id}/status", h.ModeratePost)
				r.Delete("/news/{id}", h.DeletePost)

				r.Post("/jobs", h.CreateJob)
				r.Delete("/jobs/{id}", h.DeleteJob)
				r.Put("/applications/{id}/status", h.AdvanceApplication)

				r.Post("/invoices", h.CreateInvoice)
				r.Put("/invoices/{id}/paid", h.MarkInvoicePaid)

				r.Post("/tasks", h.CreateTask)

				r.Post("/projects", h.CreateProject)
				r.Put("/projects/{id}/progress", h.UpdateProjectProgress)
			})
		})
	})

	return router
}
