// Package main seeds a catalog database with sample data for development.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cinelog/cinelog-server/internal/auth"
	"github.com/cinelog/cinelog-server/internal/config"
	"github.com/cinelog/cinelog-server/internal/domain"
	"github.com/cinelog/cinelog-server/internal/logger"
	"github.com/cinelog/cinelog-server/internal/store/sqlite"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		Environment: cfg.App.Environment,
	})

	st, err := sqlite.Open(cfg.Database.Path, log.Logger)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()
	hasher := auth.NewArgon2Hasher()

	genres := map[string]*domain.Genre{}
	for _, name := range []string{"sci-fi", "drama", "thriller", "comedy"} {
		g := &domain.Genre{Name: name}
		if err := st.CreateGenre(ctx, g); err != nil {
			return fmt.Errorf("create genre %q: %w", name, err)
		}
		genres[name] = g
	}

	titles := []*domain.Title{
		{
			Name:        "Arrival",
			Description: "A linguist decodes the language of visitors.",
			ReleaseDate: date(2016, time.November, 11),
		},
		{
			Name:        "Severance",
			Description: "Work-life balance, surgically enforced.",
			ReleaseDate: date(2022, time.February, 18),
			Seasons:     2,
		},
		{
			Name:        "Paddington 2",
			Description: "A bear seeks a birthday present.",
			ReleaseDate: date(2017, time.November, 10),
		},
	}
	for _, t := range titles {
		if err := st.CreateTitle(ctx, t); err != nil {
			return fmt.Errorf("create title %q: %w", t.Name, err)
		}
	}

	for _, link := range []struct {
		title *domain.Title
		genre *domain.Genre
	}{
		{titles[0], genres["sci-fi"]},
		{titles[0], genres["drama"]},
		{titles[1], genres["sci-fi"]},
		{titles[1], genres["thriller"]},
		{titles[2], genres["comedy"]},
	} {
		if err := st.LinkTitleGenre(ctx, link.title.ID, link.genre.ID); err != nil {
			return err
		}
	}

	actors := []*domain.Actor{
		{Name: "Amy Adams", Nationality: "American", BirthDate: date(1974, time.August, 20)},
		{Name: "Adam Scott", Nationality: "American", BirthDate: date(1973, time.April, 3)},
		{Name: "Hugh Grant", Nationality: "British", BirthDate: date(1960, time.September, 9)},
	}
	for i, a := range actors {
		if err := st.CreateActor(ctx, a); err != nil {
			return fmt.Errorf("create actor %q: %w", a.Name, err)
		}
		if err := st.LinkTitleActor(ctx, titles[i].ID, a.ID); err != nil {
			return err
		}
	}

	directors := []*domain.Director{
		{Name: "Denis Villeneuve", Nationality: "Canadian", BirthDate: date(1967, time.October, 3)},
		{Name: "Ben Stiller", Nationality: "American", BirthDate: date(1965, time.November, 30)},
		{Name: "Paul King", Nationality: "British", BirthDate: date(1978, time.July, 3)},
	}
	for i, d := range directors {
		if err := st.CreateDirector(ctx, d); err != nil {
			return fmt.Errorf("create director %q: %w", d.Name, err)
		}
		if err := st.LinkTitleDirector(ctx, titles[i].ID, d.ID); err != nil {
			return err
		}
	}

	hash, err := hasher.Hash("changeme-please")
	if err != nil {
		return err
	}
	users := []*domain.User{
		{Role: domain.RoleAdmin, Name: "Ada Admin", Alias: "ada", Email: "ada@example.com", PasswordHash: hash, RegisteredAt: time.Now()},
		{Role: domain.RoleMember, Name: "Mel Member", Alias: "mel", Email: "mel@example.com", PasswordHash: hash, RegisteredAt: time.Now()},
	}
	for _, u := range users {
		if err := st.CreateUser(ctx, u); err != nil {
			return fmt.Errorf("create user %q: %w", u.Alias, err)
		}
	}

	// Put a couple of titles in the members' libraries.
	if err := st.LinkUserTitle(ctx, users[0].ID, titles[0].ID); err != nil {
		return err
	}
	if err := st.LinkUserTitle(ctx, users[1].ID, titles[1].ID); err != nil {
		return err
	}

	comment := "Heptapod B changed how I think."
	review := &domain.Review{
		Comment: &comment,
		Rating:  9,
		Date:    time.Now(),
		TitleID: titles[0].ID,
		UserID:  users[1].ID,
	}
	if err := st.CreateReview(ctx, review); err != nil {
		return err
	}

	log.Info("Database seeded",
		"titles", len(titles),
		"genres", len(genres),
		"actors", len(actors),
		"directors", len(directors),
		"users", len(users),
	)
	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
