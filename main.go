package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	config "github.com/bfarinango/student-store/configs"
	"github.com/bfarinango/student-store/internal/db"
	"github.com/bfarinango/student-store/internal/handlers"
	"github.com/bfarinango/student-store/internal/notifier"
	"github.com/bfarinango/student-store/internal/seed"
)

func main() {
	app := &cli.App{
		Name:           "student-store",
		Usage:          "student store REST API",
		DefaultCommand: "serve",
		Commands: []*cli.Command{
			serveCommand(),
			seedCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API",
		Action: func(c *cli.Context) (err error) {
			handle, err := db.Open(config.LoadDatabaseConfig())
			if err != nil {
				return err
			}
			defer func() {
				err = joinErr(err, db.Close(handle))
			}()

			n := notifier.New(config.LoadEmailConfig(), config.LoadAfricaTalkingConfig())
			api := handlers.NewAPI(handle, n)

			srv := &http.Server{
				Addr:    config.LoadServerConfig().Addr,
				Handler: handlers.NewRouter(api),
			}

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				log.Printf("Server running on %s", srv.Addr)
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})

			return g.Wait()
		},
	}
}

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "reset the catalog from the products fixture",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "data",
				Usage: "path to the products fixture",
				Value: "data/products.json",
			},
		},
		Action: func(c *cli.Context) (err error) {
			handle, err := db.Open(config.LoadDatabaseConfig())
			if err != nil {
				return err
			}
			defer func() {
				err = joinErr(err, db.Close(handle))
			}()

			count, err := seed.Run(handle, c.String("data"))
			if err != nil {
				return err
			}

			log.Printf("Seeded %d products", count)
			return nil
		},
	}
}

func joinErr(a, b error) error {
	if a != nil {
		return a
	}
	return b
}
