package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bcspragu/Ludo/dice"
	"github.com/bcspragu/Ludo/memdb"
	"github.com/bcspragu/Ludo/web"
	"github.com/gorilla/securecookie"
	"github.com/namsral/flag"
	log "github.com/sirupsen/logrus"
)

func main() {
	var (
		addr    = flag.String("addr", ":8080", "HTTP service address")
		keyDir  = flag.String("key_dir", ".", "Directory holding the cookie hash and block keys, they're generated if missing")
		seed    = flag.Int64("seed", 0, "Seed for the dice, zero means use crypto/rand")
		verbose = flag.Bool("verbose", false, "Log every roll and move")
	)

	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	var src rand.Source = dice.CryptoSource{}
	if *seed != 0 {
		src = rand.NewSource(*seed)
	}
	r := rand.New(src)

	sc, err := loadKeys(*keyDir)
	if err != nil {
		log.Fatalf("failed to load cookie keys: %v", err)
	}

	srv := &http.Server{
		Addr:    *addr,
		Handler: web.New(memdb.New(), r, sc),
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-c
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Errorf("failed to shut down cleanly: %v", err)
		}
	}()

	log.Infof("Server is running on %q", *addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("ListenAndServe: ", err)
	}
}

func loadKeys(dir string) (*securecookie.SecureCookie, error) {
	hashKey, err := loadOrGenKey(filepath.Join(dir, "hashKey"))
	if err != nil {
		return nil, err
	}

	blockKey, err := loadOrGenKey(filepath.Join(dir, "blockKey"))
	if err != nil {
		return nil, err
	}

	return securecookie.New(hashKey, blockKey), nil
}

func loadOrGenKey(name string) ([]byte, error) {
	f, err := os.ReadFile(name)
	if err == nil {
		return f, nil
	}

	dat := securecookie.GenerateRandomKey(32)
	if dat == nil {
		return nil, errors.New("failed to generate key")
	}

	if err := os.WriteFile(name, dat, 0600); err != nil {
		return nil, fmt.Errorf("failed to write key %q: %w", name, err)
	}
	return dat, nil
}
