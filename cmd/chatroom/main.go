package main

import (
	"errors"
	"log"
	"net/http"
	"os"

	adapthttp "chatroom/internal/adapter/http"
	"chatroom/internal/adapter/memory"
	"chatroom/internal/adapter/postgres"
	"chatroom/internal/app"
	"chatroom/internal/domain"
)

func main() {
	addr := env("ADDR", ":3000")

	var (
		users    domain.UserRepository
		sessions domain.SessionRepository
		messages domain.MessageRepository
	)

	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		db, err := postgres.Open(connStr)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		defer func() { _ = db.Close() }()
		users, sessions, messages = db.Users(), db.Sessions(), db.Messages()
	} else {
		store := memory.New()
		users, sessions, messages = store.Users(), store.Sessions(), store.Messages()
		log.Print("DATABASE_URL not set, using in-memory store")
	}

	directory := app.NewDirectoryService(users)
	gate := app.NewSessionService(sessions)
	board := app.NewBoardService(messages)

	h := adapthttp.New(directory, gate, board).Handler()
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
