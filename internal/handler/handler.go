package handler

import (
	"time"

	"github.com/gabxillaa/internship-tracker/internal/config"
	"github.com/gabxillaa/internship-tracker/internal/notifier"
	"github.com/gabxillaa/internship-tracker/internal/repository"
	"github.com/gabxillaa/internship-tracker/internal/timesheet"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client
	notifier    *notifier.Notifier
	location    *time.Location
	deadline    time.Time

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	// all yyyy-MM-dd / HH:mm strings are interpreted in this zone
	location, err := time.LoadLocation(cfg.Tracker.Timezone)
	if err != nil {
		return nil, err
	}

	deadline, err := time.ParseInLocation(timesheet.DateLayout, cfg.Tracker.Deadline, location)
	if err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,
		notifier:    notifier.New(rdb),
		location:    location,
		deadline:    deadline,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// authentication
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// everything below requires a logged-in user
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
			r.Route("/update-email", func(r chi.Router) {
				r.Post("/require", h.RequireUpdateEmail)
				r.Post("/confirm", h.ConfirmUpdateEmail)
			})
		})

		r.Route("/shifts", func(r chi.Router) {
			r.Get("/", h.GetMyShifts)
			r.Get("/summary", h.GetMySummary)
			r.Get("/subscribe", h.SubscribeMyShifts)
			r.Post("/clock", h.ClockToggle)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.shiftRecord)
				r.Patch("/", h.UpdateShift)
				r.Delete("/", h.DeleteShift)
				r.Route("/dtr-entries", func(r chi.Router) {
					r.Get("/", h.GetDTREntries)
					r.Get("/subscribe", h.SubscribeDTREntries)
					r.Post("/", h.CreateDTREntry)
					r.Route("/{entryID}", func(r chi.Router) {
						r.Use(h.dtrEntry)
						r.Patch("/", h.UpdateDTREntry)
						r.Delete("/", h.DeleteDTREntry)
					})
				})
			})
		})
	})
}
