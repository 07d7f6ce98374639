package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/gabxillaa/internship-tracker/internal/config"
	"github.com/gabxillaa/internship-tracker/internal/repository"
	"github.com/gabxillaa/internship-tracker/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var userID int64

	flag.IntVar(&op, "op", 0, "operation to run (1: insert random users, 2: insert random closed shifts, 3: fill a user's shifts with DTR entries)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.Int64Var(&userID, "user-id", 0, "user to seed shifts or DTR entries for")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// create the database connection pool
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to create database connection pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open only creates the pool object, it does not connect yet
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("failed to connect to database", "error", err)
		return
	}

	// create the repository
	repo := repository.NewRepository(cfg, dbpool)

	loc, err := time.LoadLocation(cfg.Tracker.Timezone)
	if err != nil {
		logger.Error("failed to load timezone", slog.String("error", err.Error()))
		return
	}

	// run the operation
	switch op {
	case 0:
		slog.Error("no operation given")
	case 1:
		if n <= 0 {
			slog.Error("please give a valid user count")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				user, err := utils.GenerateRandomUser(cfg.Seed.User.Password, cfg.Email.UserDomain)
				if err != nil {
					slog.Error("failed to generate random user", slog.String("error", err.Error()))
					continue
				}

				if err := repo.CreateUser(user); err != nil {
					slog.Error("failed to insert user", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("inserted users", slog.Int("count", n-cnt))
		}
	case 2:
		if userID <= 0 {
			slog.Error("please give a valid user id")
			return
		}
		if n <= 0 {
			slog.Error("please give a valid shift count")
			return
		}

		if _, err := repo.GetUserByID(userID); err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				slog.Error("the given user does not exist", slog.Int64("user_id", userID))
			default:
				slog.Error("failed to load user", slog.String("error", err.Error()))
			}
			return
		}

		cnt := 0
		for i := 1; i <= n; i++ {
			// one shift per weekday, most recent first
			shift := utils.GenerateRandomClosedShift(userID, i, loc)
			if shift.StartTime.Weekday() == time.Saturday || shift.StartTime.Weekday() == time.Sunday {
				continue
			}

			// insert the open row, then close it right away; a second
			// open row would trip the one-open-shift index
			if err := repo.CreateShift(shift); err != nil {
				slog.Error("failed to insert shift", slog.String("error", err.Error()))
				continue
			}
			if err := repo.CloseShift(shift, *shift.EndTime, *shift.NetHours); err != nil {
				slog.Error("failed to close shift", slog.String("error", err.Error()))
				continue
			}

			cnt++
		}

		slog.Info("inserted shifts", slog.Int("count", cnt))
	case 3:
		if userID <= 0 {
			slog.Error("please give a valid user id")
			return
		}

		shifts, err := repo.GetShiftsByUser(userID)
		if err != nil {
			slog.Error("failed to load shifts", slog.String("error", err.Error()))
			return
		}

		cnt := 0
		for _, shift := range shifts {
			if shift.IsActive() {
				continue
			}

			existing, err := repo.GetDTREntriesByShift(shift.ID)
			if err != nil {
				slog.Error("failed to load DTR entries", slog.String("error", err.Error()))
				continue
			}
			if len(existing) > 0 {
				continue
			}

			company := cfg.Tracker.DefaultCompany
			if rand.Intn(4) == 0 {
				company = "Client site"
			}

			for _, entry := range utils.GenerateRandomDTREntries(shift, company, loc) {
				if err := repo.CreateDTREntry(entry); err != nil {
					slog.Error("failed to insert DTR entry", slog.String("error", err.Error()))
					continue
				}
				cnt++
			}
		}

		slog.Info("inserted DTR entries", slog.Int("count", cnt))
	default:
		slog.Error("unknown operation")
	}
}
