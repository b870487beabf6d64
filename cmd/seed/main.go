package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"fastkart-parcels/internal/config"
	"fastkart-parcels/internal/domain"
	"fastkart-parcels/internal/logx"
	"fastkart-parcels/internal/repository"
	"fastkart-parcels/internal/seed"
)

func main() {
	mongoCfg := config.LoadMongo()

	fs := pflag.NewFlagSet("seed", pflag.ExitOnError)
	reset := fs.Bool("reset", false, "delete existing customers and parcels first")
	customers := fs.Int("customers", 30, "number of customers to create")
	parcels := fs.Int("parcels", 200, "number of parcels to create")
	days := fs.Int("days", 90, "spread parcel creation over this many past days")
	seedValue := fs.Uint64("seed", uint64(time.Now().UnixNano()), "random seed for reproducible data")
	fs.StringVar(&mongoCfg.URI, "mongo-uri", mongoCfg.URI, "MongoDB connection string")
	fs.StringVar(&mongoCfg.Database, "db", mongoCfg.Database, "database name")
	_ = fs.Parse(os.Args[1:])

	logger := logx.NewJSON(os.Stderr, "info")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, mongoCfg, *seedValue, seed.Options{
		Reset:     *reset,
		Customers: *customers,
		Parcels:   *parcels,
		Days:      *days,
		CreatedBy: primitive.NewObjectID().Hex(),
	}); err != nil {
		logger.Error("seeding failed", logx.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger logx.Logger, mongoCfg config.Mongo, seedValue uint64, opts seed.Options) error {
	client, err := repository.Connect(ctx, mongoCfg.URI)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Warn("mongo disconnect error", logx.Err(err))
		}
	}()

	db := client.Database(mongoCfg.Database)
	if err := repository.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}
	logger.Info("seeding", logx.String("database", mongoCfg.Database), logx.Any("seed", seedValue))

	s := seed.New(repository.NewCustomerRepo(db), repository.NewParcelRepo(db), seedValue, nil, logger)
	sum, err := s.Run(ctx, opts)
	if err != nil {
		return err
	}
	printSummary(sum)
	return nil
}

func printSummary(sum seed.Summary) {
	fmt.Printf("Customers: %d\nParcels:   %d\n\nStatus distribution:\n", sum.Customers, sum.Parcels)
	for _, st := range domain.Statuses() {
		fmt.Printf("  %-17s %d\n", st, sum.ByStatus[st])
	}
	fmt.Println("\nMode distribution:")
	for _, m := range domain.Modes() {
		fmt.Printf("  %-17s %d\n", m, sum.ByMode[m])
	}
}
