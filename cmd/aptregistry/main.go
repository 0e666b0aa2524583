package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.llib.dev/aptregistry/internal/config"
	"go.llib.dev/aptregistry/pkg/aptlist"
	"go.llib.dev/frameless/pkg/logging"
)

func main() {
	ctx := logging.ContextWith(context.Background(), logging.Field("app", "aptregistry"))
	log := &logging.Logger{Out: os.Stderr}

	c, err := config.Load()
	if err != nil {
		log.Fatal(ctx, "failed to load configuration", logging.ErrField(err))
		os.Exit(1)
	}
	log.Level = c.LogLevel

	if err := Main(ctx, c, log, os.Stdout); err != nil {
		log.Fatal(ctx, "error in main", logging.ErrField(err))
		os.Exit(1)
	}
}

// Main builds the demo registries and prints them to out.
func Main(ctx context.Context, c config.Config, log *logging.Logger, out io.Writer) error {
	var building aptlist.List[string]
	building.PushTail(6, "a")
	building.PushTail(9, "aa")
	if err := printList(out, "building", &building); err != nil {
		return err
	}

	var wing aptlist.List[string]
	wing.PushTail(99, "c")
	wing.PushHead(8, "d")
	if err := printList(out, "wing", &wing); err != nil {
		return err
	}

	building.PushHeadList(&wing)
	log.Debug(ctx, "wing merged into building",
		logging.Field("wing_size", wing.Len()),
		logging.Field("building_size", building.Len()))
	if err := printList(out, "merged", &building); err != nil {
		return err
	}

	generated := aptlist.NewRandom[string](c.Count, c.Lower, c.Upper, c.Seed)
	log.Info(ctx, "random registry generated",
		logging.Field("count", generated.Len()),
		logging.Field("seed", c.Seed))
	if err := printList(out, "generated", generated); err != nil {
		return err
	}

	if err := generated.Update(1, "Manager"); err != nil {
		// an empty registry has nothing to update
		log.Warn(ctx, "apartment update skipped", logging.ErrField(err))
	}
	if removed := generated.Delete("Manager"); 0 < removed {
		log.Debug(ctx, "tenants removed", logging.Field("removed", removed))
	}
	return printList(out, "cleaned", generated)
}

func printList(out io.Writer, label string, l *aptlist.List[string]) error {
	_, err := fmt.Fprintf(out, "%s (%d): %s\n", label, l.Len(), l.String())
	return err
}
