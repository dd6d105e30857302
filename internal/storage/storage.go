package storage

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/nickolss/madeforyou-server/internal/config"
)

// Storage bundles the read-side table gateways, all bound to the shared
// connection pool. Multi-step writes go through Write, which hands out a
// Writer bound to a single database transaction.
type Storage struct {
	DB           *sql.DB
	bdb          bob.DB
	Accounts     IAccountTable
	Transactions ITransactionTable
	Notes        INoteTable
	Tasks        ITaskTable
	Projects     IProjectTable
	Habits       IHabitTable
	Profiles     IProfileTable
}

func NewStorage(env *config.Config) *Storage {
	db, err := sql.Open("postgres", env.ConnectionString())
	if err != nil {
		log.Fatal(err)
	}

	bdb := bob.NewDB(db)

	return &Storage{
		DB:           db,
		bdb:          bdb,
		Accounts:     NewAccountsTable(bdb),
		Transactions: NewTransactionsTable(bdb),
		Notes:        NewNotesTable(bdb),
		Tasks:        NewTasksTable(bdb),
		Projects:     NewProjectsTable(bdb),
		Habits:       NewHabitsTable(bdb),
		Profiles:     NewProfilesTable(bdb),
	}
}

// Write begins a database transaction and returns a Writer scoped to it.
// The caller owns the unit of work: Commit on success, Rollback otherwise.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bdb.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}
