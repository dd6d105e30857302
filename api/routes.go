package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/nickolss/madeforyou-server/internal/handlers/v1/account"
	"github.com/nickolss/madeforyou-server/internal/handlers/v1/habit"
	"github.com/nickolss/madeforyou-server/internal/handlers/v1/note"
	"github.com/nickolss/madeforyou-server/internal/handlers/v1/profile"
	"github.com/nickolss/madeforyou-server/internal/handlers/v1/project"
	"github.com/nickolss/madeforyou-server/internal/handlers/v1/status"
	"github.com/nickolss/madeforyou-server/internal/handlers/v1/task"
	"github.com/nickolss/madeforyou-server/internal/handlers/v1/transaction"
	"github.com/nickolss/madeforyou-server/internal/logging"
	"github.com/nickolss/madeforyou-server/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	humaAPI := humago.New(mux, huma.DefaultConfig("madeforyou-server", "1.0.0"))
	humaAPI.UseMiddleware(logging.Middleware(r.Logger))
	r.registerHandlers(humaAPI)

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

func (r *Rest) registerHandlers(humaAPI huma.API) {
	account.NewListAccountsHandler(r.Service.Finance).Register(humaAPI)
	account.NewGetAccountHandler(r.Service.Finance).Register(humaAPI)
	account.NewCreateAccountHandler(r.Service.Finance).Register(humaAPI)
	account.NewUpdateAccountHandler(r.Service.Finance).Register(humaAPI)
	account.NewDeleteAccountHandler(r.Service.Finance).Register(humaAPI)

	transaction.NewListTransactionsHandler(r.Service.Finance).Register(humaAPI)
	transaction.NewCreateTransactionHandler(r.Service.Finance).Register(humaAPI)
	transaction.NewUpdateTransactionHandler(r.Service.Finance).Register(humaAPI)
	transaction.NewDeleteTransactionHandler(r.Service.Finance).Register(humaAPI)

	note.NewListNotesHandler(r.Service.Note).Register(humaAPI)
	note.NewGetNoteHandler(r.Service.Note).Register(humaAPI)
	note.NewCreateNoteHandler(r.Service.Note).Register(humaAPI)
	note.NewUpdateNoteHandler(r.Service.Note).Register(humaAPI)
	note.NewDeleteNoteHandler(r.Service.Note).Register(humaAPI)

	task.NewListTasksHandler(r.Service.Task).Register(humaAPI)
	task.NewGetTaskHandler(r.Service.Task).Register(humaAPI)
	task.NewCreateTaskHandler(r.Service.Task).Register(humaAPI)
	task.NewUpdateTaskHandler(r.Service.Task).Register(humaAPI)
	task.NewToggleTaskHandler(r.Service.Task).Register(humaAPI)
	task.NewDeleteTaskHandler(r.Service.Task).Register(humaAPI)

	project.NewListProjectsHandler(r.Service.Project).Register(humaAPI)
	project.NewGetProjectHandler(r.Service.Project).Register(humaAPI)
	project.NewCreateProjectHandler(r.Service.Project).Register(humaAPI)
	project.NewUpdateProjectHandler(r.Service.Project).Register(humaAPI)
	project.NewDeleteProjectHandler(r.Service.Project).Register(humaAPI)

	habit.NewListHabitsHandler(r.Service.Habit).Register(humaAPI)
	habit.NewGetHabitHandler(r.Service.Habit).Register(humaAPI)
	habit.NewCreateHabitHandler(r.Service.Habit).Register(humaAPI)
	habit.NewUpdateHabitHandler(r.Service.Habit).Register(humaAPI)
	habit.NewDeleteHabitHandler(r.Service.Habit).Register(humaAPI)
	habit.NewListEntriesHandler(r.Service.Habit).Register(humaAPI)
	habit.NewUpsertEntryHandler(r.Service.Habit).Register(humaAPI)
	habit.NewDeleteEntryHandler(r.Service.Habit).Register(humaAPI)

	profile.NewGetProfileHandler(r.Service.Profile).Register(humaAPI)
	profile.NewSyncProfileHandler(r.Service.Profile).Register(humaAPI)
	profile.NewUpdateProfileHandler(r.Service.Profile).Register(humaAPI)
}
