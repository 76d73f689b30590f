package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/dwalbeck/job-tracker-sub001/internal/activity"
	"github.com/dwalbeck/job-tracker-sub001/internal/backend"
	"github.com/dwalbeck/job-tracker-sub001/internal/config"
	"github.com/dwalbeck/job-tracker-sub001/internal/handlers"
	"github.com/dwalbeck/job-tracker-sub001/internal/middleware"
	"github.com/dwalbeck/job-tracker-sub001/internal/selection"
	"github.com/dwalbeck/job-tracker-sub001/internal/usecase/calendarview"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.SessionMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	api := backend.NewClient(cfg.BackendURL)

	fetcher := calendarview.NewBackendFetcher(api)
	sessions := calendarview.NewRegistry(fetcher)

	nav := handlers.NavLinks{}

	activityLogger := activity.New(db)
	activityDispatcher := activity.NewDispatcher(activityLogger)

	selectionStore := selection.NewStore(rdb)

	// ======================================================
	// USE CASES - CALENDAR
	// ======================================================
	monthViewUC := calendarview.NewMonthView(sessions, nav)
	weekViewUC := calendarview.NewWeekView(sessions, nav)
	dayViewUC := calendarview.NewDayView(sessions, nav)

	detailUC := calendarview.NewAppointmentDetail(api, nav)

	deleteAppointmentUC := calendarview.NewDeleteAppointment(
		api,
		sessions,
		activityDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	calendarHandler := handlers.NewCalendarHandler(
		monthViewUC,
		weekViewUC,
		dayViewUC,
		detailUC,
		deleteAppointmentUC,
		api,
	)

	jobsHandler := handlers.NewJobsHandler(api, activityDispatcher)
	contactsHandler := handlers.NewContactsHandler(api, activityDispatcher)
	notesHandler := handlers.NewNotesHandler(api, activityDispatcher)
	documentsHandler := handlers.NewDocumentsHandler(api, activityDispatcher)
	remindersHandler := handlers.NewRemindersHandler(api, activityDispatcher)

	selectionHandler := handlers.NewSelectionHandler(selectionStore)
	activityHandler := handlers.NewActivityHandler(db)

	// ======================================================
	// EXPORT (non-JSON)
	// ======================================================
	r.GET("/calendar.ics", calendarHandler.ExportMonth)

	// ======================================================
	// API (JSON)
	// ======================================================
	apiGroup := r.Group("/api")
	{
		// ------------------------------
		// CALENDAR VIEWS
		// ------------------------------
		cal := apiGroup.Group("/calendar")
		{
			cal.GET("/month", calendarHandler.Month)
			cal.GET("/week", calendarHandler.Week)
			cal.GET("/day", calendarHandler.Day)

			cal.GET("/appointments/:id", calendarHandler.Detail)
			cal.DELETE("/appointments/:id", calendarHandler.Delete)
		}

		// ------------------------------
		// JOBS
		// ------------------------------
		apiGroup.GET("/jobs", jobsHandler.List)
		apiGroup.GET("/jobs/:id", jobsHandler.Get)
		apiGroup.POST("/jobs", jobsHandler.Create)
		apiGroup.PUT("/jobs/:id", jobsHandler.Update)
		apiGroup.DELETE("/jobs/:id", jobsHandler.Delete)

		// ------------------------------
		// CONTACTS
		// ------------------------------
		apiGroup.GET("/contacts", contactsHandler.List)
		apiGroup.GET("/contacts/:id", contactsHandler.Get)
		apiGroup.POST("/contacts", contactsHandler.Create)
		apiGroup.PUT("/contacts/:id", contactsHandler.Update)
		apiGroup.DELETE("/contacts/:id", contactsHandler.Delete)

		// ------------------------------
		// NOTES
		// ------------------------------
		apiGroup.GET("/notes", notesHandler.List)
		apiGroup.GET("/notes/:id", notesHandler.Get)
		apiGroup.POST("/notes", notesHandler.Create)
		apiGroup.PUT("/notes/:id", notesHandler.Update)
		apiGroup.DELETE("/notes/:id", notesHandler.Delete)

		// ------------------------------
		// DOCUMENTS
		// ------------------------------
		apiGroup.GET("/resumes", documentsHandler.ListResumes)
		apiGroup.GET("/resumes/:id", documentsHandler.GetResume)
		apiGroup.POST("/resumes", documentsHandler.CreateResume)
		apiGroup.PUT("/resumes/:id", documentsHandler.UpdateResume)
		apiGroup.DELETE("/resumes/:id", documentsHandler.DeleteResume)

		apiGroup.GET("/cover-letters", documentsHandler.ListCoverLetters)
		apiGroup.GET("/cover-letters/:id", documentsHandler.GetCoverLetter)
		apiGroup.POST("/cover-letters", documentsHandler.CreateCoverLetter)
		apiGroup.PUT("/cover-letters/:id", documentsHandler.UpdateCoverLetter)
		apiGroup.DELETE("/cover-letters/:id", documentsHandler.DeleteCoverLetter)

		// ------------------------------
		// REMINDERS
		// ------------------------------
		apiGroup.GET("/reminders", remindersHandler.List)
		apiGroup.GET("/reminders/:id", remindersHandler.Get)
		apiGroup.POST("/reminders", remindersHandler.Create)
		apiGroup.PUT("/reminders/:id", remindersHandler.Update)
		apiGroup.DELETE("/reminders/:id", remindersHandler.Delete)

		// ------------------------------
		// SELECTION
		// ------------------------------
		apiGroup.GET("/selection", selectionHandler.Get)
		apiGroup.PUT("/selection/job", selectionHandler.SetJob)
		apiGroup.DELETE("/selection/job", selectionHandler.ClearJob)
		apiGroup.PUT("/selection/reminder", selectionHandler.SetReminder)
		apiGroup.DELETE("/selection/reminder", selectionHandler.ClearReminder)

		// ------------------------------
		// ACTIVITY
		// ------------------------------
		apiGroup.GET("/activity", activityHandler.List)
	}
}
